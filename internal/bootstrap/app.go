package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"limitless-backend/internal/requests"
	"limitless-backend/internal/resumes"
	"limitless-backend/internal/shared/auth"
	"limitless-backend/internal/shared/config"
	"limitless-backend/internal/shared/server"
	"limitless-backend/internal/shared/storage/db"
	"limitless-backend/internal/shared/storage/object"
	localstore "limitless-backend/internal/shared/storage/object/local"
	s3store "limitless-backend/internal/shared/storage/object/s3"
	"limitless-backend/internal/shared/telemetry"
	"limitless-backend/internal/users"
)

// App holds shared dependencies wired from config.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	Tokens          *auth.Tokens
	UsersRepo       users.Repo
	RequestsRepo    requests.Repo
	UsersService    *users.Service
	RequestsService *requests.Service
	ResumesService  *resumes.Service
	UsersHandler    *users.Handler
	RequestsHandler *requests.Handler
	ResumesHandler  *resumes.Handler
}

// Build prepares all dependencies and the router.
//
// Connect policy: production refuses to start without a reachable
// database or a configured JWT secret; dev and local fall back to
// in-memory repositories so the service still serves.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if cfg.IsProduction() && strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
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
		Tokens: auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
	}

	if sqlDB != nil {
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
		app.RequestsRepo = &requests.PGRepo{DB: sqlDB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.RequestsRepo = requests.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo, app.Tokens)
	app.RequestsService = requests.NewService(app.RequestsRepo)
	app.ResumesService = resumes.NewService(app.Store, app.UsersRepo)

	app.UsersHandler = users.NewHandler(app.UsersService)
	app.RequestsHandler = requests.NewHandler(app.RequestsService)
	app.ResumesHandler = resumes.NewHandler(app.ResumesService, cfg.MaxUploadBytes)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Tokens:          app.Tokens,
		UsersHandler:    app.UsersHandler,
		RequestsHandler: app.RequestsHandler,
		ResumesHandler:  app.ResumesHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db", map[string]any{"msg": "DATABASE_URL empty; using in-memory repositories"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db", map[string]any{"msg": "database connect failed; using in-memory repositories", "error": err.Error()})
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
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
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
