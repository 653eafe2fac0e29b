package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/export"
	"resume-tailor/internal/extract"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/llm/gemini"
	openai "resume-tailor/internal/llm/openai"
	"resume-tailor/internal/records"
	"resume-tailor/internal/services/health"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/server"
	"resume-tailor/internal/shared/storage/db"
	"resume-tailor/internal/shared/storage/kv"
	"resume-tailor/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  kv.Store

	UsersRepo   users.Repo
	RecordsRepo records.Repo
	Sessions    users.Sessions
	LLM         llm.Client

	UsersService   *users.Service
	RecordsService *records.Service

	UsersHandler   *users.Handler
	ExtractHandler *extract.Handler
	RecordsHandler *records.Handler
	ExportHandler  *export.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := buildStore(cfg)

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		Sessions:       app.UsersService,
		Health:         health.NewService(storeBackend(app), app.Config.LLMProvider),
		UsersHandler:   app.UsersHandler,
		ExtractHandler: app.ExtractHandler,
		RecordsHandler: app.RecordsHandler,
		ExportHandler:  app.ExportHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using local store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using local store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

// buildStore always returns a key-value store: the session pointer lives
// there even when user and record rows live in Postgres.
func buildStore(cfg config.Config) kv.Store {
	if strings.TrimSpace(cfg.DataDir) == "" {
		return kv.NewMemoryStore()
	}
	return kv.NewFileStore(cfg.DataDir)
}

func buildServices(app *App) error {
	var userRepo users.Repo
	var recordRepo records.Repo
	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		recordRepo = &records.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewKVRepo(app.Store)
		recordRepo = records.NewKVRepo(app.Store)
	}

	llmClient, err := buildLLM(app.Config)
	if err != nil {
		return err
	}

	sessions := users.NewKVSessions(app.Store)
	userSvc := users.NewService(userRepo, sessions)
	recordSvc := &records.Service{
		Repo:     recordRepo,
		UserRepo: userRepo,
		LLM:      llmClient,
	}

	app.UsersRepo = userRepo
	app.RecordsRepo = recordRepo
	app.Sessions = sessions
	app.LLM = llmClient
	app.UsersService = userSvc
	app.RecordsService = recordSvc
	app.UsersHandler = users.NewHandler(userSvc)
	app.ExtractHandler = extract.NewHandler()
	app.RecordsHandler = records.NewHandler(recordSvc)
	app.ExportHandler = export.NewHandler(recordSvc)

	return nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("openai client: %w", err)
		}
		return client, nil
	case "gemini":
		apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		if apiKey == "" {
			// Gemini is the default provider; without a key the app still
			// serves everything except improvements.
			log.Printf("bootstrap: GEMINI_API_KEY empty; improvements disabled")
			return llm.PlaceholderClient{}, nil
		}
		client, err := gemini.NewClient(context.Background(), apiKey, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return client, nil
	default:
		return llm.PlaceholderClient{}, nil
	}
}

func storeBackend(app *App) string {
	if app.DB != nil {
		return "postgres"
	}
	if strings.TrimSpace(app.Config.DataDir) != "" {
		return "file"
	}
	return "memory"
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
