package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-text2sql/internal/database"
	"github.com/sbilibin2017/gw-text2sql/internal/facades"
	"github.com/sbilibin2017/gw-text2sql/internal/handlers"
	"github.com/sbilibin2017/gw-text2sql/internal/jwt"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/middlewares"
	"github.com/sbilibin2017/gw-text2sql/internal/prompt"
	"github.com/sbilibin2017/gw-text2sql/internal/repositories"
	"github.com/sbilibin2017/gw-text2sql/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Prompt modes.
const (
	promptModeDynamic = "dynamic"
	promptModeFixed   = "fixed"
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	UsersDBPath    string
	TargetDBDriver string
	TargetDBDSN    string

	PromptMode     string
	LLMProvider    string
	LLMAPIKey      string
	LLMModel       string
	LLMBaseURL     string
	LLMTemperature float64
	QueryReadOnly  bool

	RedisHost      string
	RedisPort      int
	RedisDB        int
	RedisPassword  string
	SchemaCacheTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	CORSOrigins  []string
}

// @title gw-text2sql API
// @version 1.0.0
// @description Answers English questions by translating them to SQL and running them
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration. A missing file is not an error.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		UsersDBPath:    getEnv("USERS_DB_PATH", "users.db"),
		TargetDBDriver: getEnv("TARGET_DB_DRIVER", database.DriverSQLite),
		TargetDBDSN:    getEnv("TARGET_DB_DSN", "student.db"),

		PromptMode:  getEnv("PROMPT_MODE", promptModeDynamic),
		LLMProvider: getEnv("LLM_PROVIDER", facades.ProviderGoogleAI),
		LLMAPIKey:   getEnv("GOOGLE_GEMINI_KEY", ""),
		LLMModel:    getEnv("LLM_MODEL", "gemini-1.5-flash"),
		LLMBaseURL:  getEnv("LLM_BASE_URL", ""),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "text2sql.queries"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		CORSOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}

	var err error
	if cfg.LLMTemperature, err = strconv.ParseFloat(getEnv("LLM_TEMPERATURE", "0"), 64); err != nil {
		return nil, fmt.Errorf("LLM_TEMPERATURE: %w", err)
	}
	if cfg.QueryReadOnly, err = strconv.ParseBool(getEnv("QUERY_READ_ONLY", "false")); err != nil {
		return nil, fmt.Errorf("QUERY_READ_ONLY: %w", err)
	}
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("REDIS_PORT: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	ttl, err := strconv.Atoi(getEnv("SCHEMA_CACHE_TTL_SECOND", "300"))
	if err != nil {
		return nil, fmt.Errorf("SCHEMA_CACHE_TTL_SECOND: %w", err)
	}
	cfg.SchemaCacheTTL = time.Duration(ttl) * time.Second

	switch cfg.PromptMode {
	case promptModeDynamic, promptModeFixed:
	default:
		return nil, fmt.Errorf("PROMPT_MODE: unknown mode %q", cfg.PromptMode)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// app bundles the services the router needs.
type app struct {
	tokens   *jwt.JWT
	sessions *repositories.SessionRepository
	auth     *services.AuthService
	schema   *services.SchemaService
	query    *services.QueryService
	tables   *services.TableService
}

// newRouter sets up routes and middleware.
func newRouter(cfg *config, a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(a.auth))
	r.Post("/login", handlers.NewLoginHandler(a.auth))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(a.tokens, a.sessions))
		r.Post("/logout", handlers.NewLogoutHandler(a.auth))
		r.Post("/query", handlers.NewQueryHandler(a.query))
		r.Get("/schema", handlers.NewSchemaHandler(a.schema))
		r.Get("/tables", handlers.NewListTablesHandler(a.tables))
		r.Post("/tables", handlers.NewCreateTableHandler(a.tables))
		r.Get("/tables/columns", handlers.NewPendingColumnsHandler(a.tables))
		r.Post("/tables/columns", handlers.NewAddColumnHandler(a.tables))
		r.Delete("/tables/columns", handlers.NewClearColumnsHandler(a.tables))
		r.Post("/tables/{table}/rows", handlers.NewInsertRowHandler(a.tables))
	})

	return r
}

// run initializes the logger, databases, optional Redis and Kafka clients,
// the language model and the HTTP server, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Open databases
	usersDB, err := database.OpenUsers(ctx, cfg.UsersDBPath)
	if err != nil {
		return fmt.Errorf("users database: %w", err)
	}
	defer usersDB.Close()

	targetDB, err := database.OpenTarget(ctx, cfg.TargetDBDriver, cfg.TargetDBDSN)
	if err != nil {
		return fmt.Errorf("target database: %w", err)
	}
	defer targetDB.Close()
	logger.Log.Infow("databases opened", "users", cfg.UsersDBPath, "target_driver", cfg.TargetDBDriver)

	// Prompt composer
	composer := prompt.NewSchemaComposer()
	if cfg.PromptMode == promptModeFixed {
		composer = prompt.NewFixedComposer()
		if err := repositories.NewStudentRepository(targetDB).EnsureTable(ctx); err != nil {
			return fmt.Errorf("student table: %w", err)
		}
	}

	// Optional schema cache in Redis
	var schemaCache services.SchemaCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		schemaCache = repositories.NewSchemaCacheRepository(rdb, cfg.TargetDBDSN, cfg.SchemaCacheTTL)
	}

	// Optional query audit events in Kafka
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		events = writer
	}

	// Language model
	model, err := facades.NewLanguageModel(ctx, facades.ModelConfig{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.LLMAPIKey,
		Model:    cfg.LLMModel,
		BaseURL:  cfg.LLMBaseURL,
	})
	if err != nil {
		return fmt.Errorf("language model: %w", err)
	}

	a := newApp(cfg, usersDB, targetDB, composer,
		facades.NewCompletionFacade(model, cfg.LLMTemperature), schemaCache, events)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, a),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
