package main

import (
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-text2sql/internal/jwt"
	"github.com/sbilibin2017/gw-text2sql/internal/repositories"
	"github.com/sbilibin2017/gw-text2sql/internal/services"
)

// newApp wires repositories and services. cache and events may be nil.
func newApp(
	cfg *config,
	usersDB, targetDB *sqlx.DB,
	composer services.PromptComposer,
	completer services.Completer,
	cache services.SchemaCache,
	events services.KafkaWriter,
) *app {
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(usersDB)
	userWriteRepo := repositories.NewUserWriteRepository(usersDB)
	sessionRepo := repositories.NewSessionRepository()
	schemaRepo := repositories.NewSchemaRepository(targetDB)
	queryRepo := repositories.NewQueryRepository(targetDB)
	tableRepo := repositories.NewTableRepository(targetDB)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionRepo, tokens)
	schemaService := services.NewSchemaService(schemaRepo, cache)
	translator := services.NewTranslatorService(completer)
	queryService := services.NewQueryService(composer, schemaService, translator, queryRepo, events, cfg.QueryReadOnly)
	tableService := services.NewTableService(sessionRepo, tableRepo, schemaService)

	return &app{
		tokens:   tokens,
		sessions: sessionRepo,
		auth:     authService,
		schema:   schemaService,
		query:    queryService,
		tables:   tableService,
	}
}
