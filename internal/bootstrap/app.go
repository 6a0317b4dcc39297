package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resumewise-backend/internal/ai"
	googleauth "resumewise-backend/internal/auth"
	"resumewise-backend/internal/billing"
	"resumewise-backend/internal/llm"
	openai "resumewise-backend/internal/llm/openai"
	"resumewise-backend/internal/resumes"
	"resumewise-backend/internal/shared/config"
	"resumewise-backend/internal/shared/server"
	"resumewise-backend/internal/shared/storage/db"
	"resumewise-backend/internal/shared/storage/object"
	localstore "resumewise-backend/internal/shared/storage/object/local"
	s3store "resumewise-backend/internal/shared/storage/object/s3"
	"resumewise-backend/internal/shared/telemetry"
	"resumewise-backend/internal/templates"
	"resumewise-backend/internal/users"
)

// App holds shared dependencies wired for the HTTP server.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	ResumesRepo     resumes.Repo
	ReportsRepo     ai.ReportsRepo
	UsersRepo       users.Repo
	ResumesService  *resumes.Service
	AIService       *ai.Service
	BillingService  *billing.Service
	UsersService    *users.Service
	ResumeHandler   *resumes.Handler
	TemplateHandler *templates.Handler
	AIHandler       *ai.Handler
	BillingHandler  *billing.Handler
	UsersHandler    *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ResumeHandler:   app.ResumeHandler,
		TemplateHandler: app.TemplateHandler,
		AIHandler:       app.AIHandler,
		BillingHandler:  app.BillingHandler,
		UserHandler:     app.UsersHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory", map[string]any{
				"reason": "DATABASE_URL empty",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory", map[string]any{
				"reason": "database connect failed",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var resumesRepo resumes.Repo
	var reportsRepo ai.ReportsRepo
	var userRepo users.Repo
	var billingSvc *billing.Service

	if app.DB != nil {
		resumesRepo = &resumes.PGRepo{DB: app.DB}
		reportsRepo = &ai.PGReportsRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		billingSvc = billing.NewPostgresService(billing.NewPGStore(app.DB), billing.MockGateway{})
	} else {
		resumesRepo = resumes.NewMemoryRepo()
		reportsRepo = ai.NewMemoryReportsRepo()
		userRepo = users.NewMemoryRepo()
		billingSvc = billing.NewService(billing.MockGateway{})
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	resumesSvc := &resumes.Service{Repo: resumesRepo, Billing: billingSvc}
	aiSvc := ai.NewService(llmClient, app.Store, reportsRepo, app.Config.ATSPromptVersion)
	userSvc := users.NewService(userRepo)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.ResumesRepo = resumesRepo
	app.ReportsRepo = reportsRepo
	app.UsersRepo = userRepo
	app.ResumesService = resumesSvc
	app.AIService = aiSvc
	app.BillingService = billingSvc
	app.UsersService = userSvc
	app.ResumeHandler = resumes.NewHandler(resumesSvc)
	app.TemplateHandler = templates.NewHandler(billingSvc)
	app.AIHandler = ai.NewHandler(aiSvc)
	app.BillingHandler = billing.NewHandler(billingSvc)
	app.UsersHandler = users.NewHandler(userSvc, billingSvc)
	app.GoogleAuth = googleAuthSvc

	if app.ResumeHandler == nil || app.AIHandler == nil || app.BillingHandler == nil {
		return errors.New("failed to initialize handlers")
	}

	return nil
}
