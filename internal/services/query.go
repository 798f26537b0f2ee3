package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/metrics"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
	"github.com/segmentio/kafka-go"
)

// PromptComposer builds the prompt for a question.
type PromptComposer interface {
	Compose(question, schema string) string
	Fixed() bool // true when the composer ignores the schema
}

// SchemaDescriber provides prompt context and drops it after schema changes.
type SchemaDescriber interface {
	Describe(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

// Translator converts a prompt into a SQL string.
type Translator interface {
	Translate(ctx context.Context, prompt string) (string, error)
}

// QueryExecutor runs a statement and returns all rows.
type QueryExecutor interface {
	Execute(ctx context.Context, query string) (*models.QueryResult, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// QueryService runs the question → SQL → rows pipeline.
type QueryService struct {
	composer    PromptComposer
	describer   SchemaDescriber
	translator  Translator
	executor    QueryExecutor
	kafkaWriter KafkaWriter
	readOnly    bool
}

// NewQueryService creates a QueryService. kafkaWriter may be nil.
// With readOnly set, generated statements must pass CheckReadOnly.
func NewQueryService(
	composer PromptComposer,
	describer SchemaDescriber,
	translator Translator,
	executor QueryExecutor,
	kafkaWriter KafkaWriter,
	readOnly bool,
) *QueryService {
	return &QueryService{
		composer:    composer,
		describer:   describer,
		translator:  translator,
		executor:    executor,
		kafkaWriter: kafkaWriter,
		readOnly:    readOnly,
	}
}

// Ask translates the question and executes the result. The generated SQL is
// returned even when execution fails so it can be shown to the user.
func (s *QueryService) Ask(ctx context.Context, username, question string) (string, *models.QueryResult, error) {
	var schema string
	if !s.composer.Fixed() {
		desc, err := s.describer.Describe(ctx)
		if err != nil {
			logger.Log.Errorw("failed to describe schema", "error", err)
			return "", nil, err
		}
		schema = desc
	}

	prompt := s.composer.Compose(question, schema)

	sql, err := s.translator.Translate(ctx, prompt)
	if err != nil {
		logger.Log.Errorw("failed to translate question", "username", username, "error", err)
		s.publishEvent(ctx, username, question, "", nil, err)
		return "", nil, err
	}

	if s.readOnly {
		if err := CheckReadOnly(sql); err != nil {
			logger.Log.Warnw("generated statement rejected", "username", username, "sql", sql)
			s.publishEvent(ctx, username, question, sql, nil, err)
			return sql, nil, err
		}
	}

	result, err := s.executor.Execute(ctx, sql)
	rowCount := 0
	if result != nil {
		rowCount = len(result.Rows)
	}
	metrics.ObserveExecution(metrics.Outcome(err), rowCount)

	if err != nil {
		logger.Log.Errorw("failed to execute generated statement", "username", username, "sql", sql, "error", err)
	} else if IsSchemaChange(sql) {
		_ = s.describer.Invalidate(ctx)
	}

	s.publishEvent(ctx, username, question, sql, result, err)
	return sql, result, err
}

// publishEvent publishes an audit event to Kafka.
func (s *QueryService) publishEvent(ctx context.Context, username, question, sql string, result *models.QueryResult, runErr error) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.QueryEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Username:  username,
		Question:  question,
		SQL:       sql,
	}
	if result != nil {
		event.RowCount = len(result.Rows)
	}
	if runErr != nil {
		event.Error = runErr.Error()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal query event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(username),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish query event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Query event published to Kafka", "event_id", event.EventID, "rows", event.RowCount)
	}
}
