package cli

import (
	"context"
	"fmt"

	"github.com/soomin/lingocare/internal/core/repository"
	"github.com/soomin/lingocare/internal/core/service"
	"github.com/soomin/lingocare/internal/infrastructure/sqlite"
	"github.com/soomin/lingocare/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lingocare",
	Short: "LingoCare - Multilingual medical tourism content platform",
	Long: `LingoCare manages interpreter profiles and a localized blog for a
medical tourism service.

It provides:
- Interpreter and SEO keyword management
- Localized blog post authoring and publishing
- A configurable publishing schedule with cron expressions
- REST API for remote management
- JWT authentication`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/lingocare/config.yml)")
}

// initServices initializes all services
func initServices(ctx context.Context) (*Services, error) {
	// Initialize database
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	userRepo := sqlite.NewUserRepository(db)
	interpreterRepo := sqlite.NewInterpreterRepository(db)
	keywordRepo := sqlite.NewKeywordRepository(db)
	postRepo := sqlite.NewPostRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecretKey, cfg.JWTAlgorithm)
	scheduleService := service.NewScheduleService(settingsRepo)
	interpreterService := service.NewInterpreterService(interpreterRepo, postRepo)
	keywordService := service.NewKeywordService(keywordRepo)
	postService := service.NewPostService(postRepo, interpreterRepo, keywordRepo)

	return &Services{
		DB:                 db,
		UserRepo:           userRepo,
		AuthService:        authService,
		ScheduleService:    scheduleService,
		InterpreterService: interpreterService,
		KeywordService:     keywordService,
		PostService:        postService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB                 *sqlite.DB
	UserRepo           repository.UserRepository
	AuthService        *service.AuthService
	ScheduleService    *service.ScheduleService
	InterpreterService *service.InterpreterService
	KeywordService     *service.KeywordService
	PostService        *service.PostService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
