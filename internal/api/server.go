package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/soomin/lingocare/internal/api/handler"
	"github.com/soomin/lingocare/internal/api/middleware"
	"github.com/soomin/lingocare/internal/core/domain"
	"github.com/soomin/lingocare/internal/core/service"
	"github.com/soomin/lingocare/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	scheduleService *service.ScheduleService,
	interpreterService *service.InterpreterService,
	keywordService *service.KeywordService,
	postService *service.PostService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() && cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.LoggerWithWriter(requestLogWriter(cfg.LogFile)))
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	interpreterHandler := handler.NewInterpreterHandler(interpreterService)
	keywordHandler := handler.NewKeywordHandler(keywordService)
	postHandler := handler.NewPostHandler(postService)

	// Public routes (no auth required)
	router.POST("/auth/login", authHandler.Login)

	// Public blog, published posts only
	blog := router.Group("/blog")
	{
		blog.GET("/:locale", postHandler.ListPublishedPosts)
		blog.GET("/:locale/:slug", postHandler.GetPublishedPost)
	}

	// Protected routes (auth required)
	authMiddleware := middleware.AuthMiddleware(authService)

	// Publish schedule. Editors may inspect it; changing it is admin-only.
	settings := router.Group("/settings")
	settings.Use(authMiddleware)
	{
		settings.GET("/schedule", scheduleHandler.GetSchedule)
		settings.PUT("/schedule", middleware.RequireRole(domain.RoleAdmin), scheduleHandler.UpdateSchedule)
		settings.GET("/schedule/preview", scheduleHandler.PreviewSchedule)
	}

	// Interpreters
	interpreters := router.Group("/interpreters")
	interpreters.Use(authMiddleware)
	{
		interpreters.POST("", interpreterHandler.CreateInterpreter)
		interpreters.GET("", interpreterHandler.ListInterpreters)
		interpreters.GET("/:id", interpreterHandler.GetInterpreter)
		interpreters.PUT("/:id", interpreterHandler.UpdateInterpreter)
		interpreters.DELETE("/:id", interpreterHandler.DeleteInterpreter)
	}

	// Keywords
	keywords := router.Group("/keywords")
	keywords.Use(authMiddleware)
	{
		keywords.POST("", keywordHandler.CreateKeyword)
		keywords.GET("", keywordHandler.ListKeywords)
		keywords.GET("/:id", keywordHandler.GetKeyword)
		keywords.PUT("/:id", keywordHandler.UpdateKeyword)
		keywords.DELETE("/:id", keywordHandler.DeleteKeyword)
	}

	// Posts
	posts := router.Group("/posts")
	posts.Use(authMiddleware)
	{
		posts.POST("", postHandler.CreatePost)
		posts.GET("", postHandler.ListPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.PUT("/:id", postHandler.UpdatePost)
		posts.DELETE("/:id", postHandler.DeletePost)
		posts.POST("/:id/publish", postHandler.PublishPost)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	server := &Server{
		router: router,
		config: cfg,
	}

	return server
}

// requestLogWriter returns the destination for gin's request log: stdout,
// plus the configured log file when one is set. A file that cannot be
// opened is skipped rather than blocking startup.
func requestLogWriter(logFile string) io.Writer {
	if logFile == "" {
		return os.Stdout
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logFile, err)
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, f)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		fmt.Printf("Starting HTTPS server on %s\n", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
