package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/soomin/lingocare/internal/core/service"
	"github.com/soomin/lingocare/internal/infrastructure/sqlite"
)

// testEnv holds all test dependencies
type testEnv struct {
	db     *sqlite.DB
	router *gin.Engine
}

// setupTestEnv creates a test environment with in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Use in-memory SQLite database
	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Create repositories
	interpreterRepo := sqlite.NewInterpreterRepository(db)
	keywordRepo := sqlite.NewKeywordRepository(db)
	postRepo := sqlite.NewPostRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)

	// Create services
	scheduleService := service.NewScheduleService(settingsRepo)
	interpreterService := service.NewInterpreterService(interpreterRepo, postRepo)
	keywordService := service.NewKeywordService(keywordRepo)
	postService := service.NewPostService(postRepo, interpreterRepo, keywordRepo)

	// Create handlers
	scheduleHandler := NewScheduleHandler(scheduleService)
	interpreterHandler := NewInterpreterHandler(interpreterService)
	keywordHandler := NewKeywordHandler(keywordService)
	postHandler := NewPostHandler(postService)

	// Setup gin router in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Register routes without auth middleware
	router.GET("/settings/schedule", scheduleHandler.GetSchedule)
	router.PUT("/settings/schedule", scheduleHandler.UpdateSchedule)
	router.GET("/settings/schedule/preview", scheduleHandler.PreviewSchedule)
	router.POST("/interpreters", interpreterHandler.CreateInterpreter)
	router.GET("/interpreters", interpreterHandler.ListInterpreters)
	router.POST("/keywords", keywordHandler.CreateKeyword)
	router.GET("/keywords", keywordHandler.ListKeywords)
	router.POST("/posts", postHandler.CreatePost)
	router.GET("/posts", postHandler.ListPosts)
	router.GET("/posts/:id", postHandler.GetPost)
	router.POST("/posts/:id/publish", postHandler.PublishPost)
	router.GET("/blog/:locale", postHandler.ListPublishedPosts)
	router.GET("/blog/:locale/:slug", postHandler.GetPublishedPost)

	return &testEnv{
		db:     db,
		router: router,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// seedPosts populates the database with a mix of draft and published posts
func (env *testEnv) seedPosts(t *testing.T) {
	t.Helper()

	// Base time: Jun 1, 2025
	baseTime := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	posts := []struct {
		id          string
		locale      string
		slug        string
		title       string
		status      string
		publishedAt *time.Time
		createdAt   time.Time
	}{
		{"post-001", "en", "knee-surgery-guide", "Knee Surgery Guide", "published", ptr(baseTime), baseTime},
		{"post-002", "en", "dental-implants-faq", "Dental Implants FAQ", "published", ptr(baseTime.Add(24 * time.Hour)), baseTime.Add(24 * time.Hour)},
		{"post-003", "en", "visa-checklist", "Visa Checklist", "draft", nil, baseTime.Add(48 * time.Hour)},
		{"post-004", "ko", "knee-surgery-guide", "무릎 수술 안내", "published", ptr(baseTime.Add(72 * time.Hour)), baseTime.Add(72 * time.Hour)},
		{"post-005", "ko", "visa-checklist", "비자 체크리스트", "draft", nil, baseTime.Add(96 * time.Hour)},
	}

	for _, p := range posts {
		var publishedAt interface{}
		if p.publishedAt != nil {
			publishedAt = p.publishedAt.Format(time.RFC3339)
		}
		_, err := env.db.Exec(`
			INSERT INTO post (id, locale, slug, title, body, status, published_at, created_at, updated_at)
			VALUES (?, ?, ?, ?, 'body', ?, ?, ?, ?)
		`, p.id, p.locale, p.slug, p.title, p.status, publishedAt, p.createdAt.Format(time.RFC3339), p.createdAt.Format(time.RFC3339))
		if err != nil {
			t.Fatalf("failed to seed post %s: %v", p.id, err)
		}
	}
}

// makeRequest performs a request with an optional JSON body and returns the response
func (env *testEnv) makeRequest(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// parseResponse parses the response body into the given type
func parseResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// ptr is a helper to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}
