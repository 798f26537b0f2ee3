package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
	"github.com/sbilibin2017/gw-text2sql/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryMocks struct {
	composer   *services.MockPromptComposer
	describer  *services.MockSchemaDescriber
	translator *services.MockTranslator
	executor   *services.MockQueryExecutor
	kafka      *services.MockKafkaWriter
}

func newQueryMocks(ctrl *gomock.Controller) queryMocks {
	return queryMocks{
		composer:   services.NewMockPromptComposer(ctrl),
		describer:  services.NewMockSchemaDescriber(ctrl),
		translator: services.NewMockTranslator(ctrl),
		executor:   services.NewMockQueryExecutor(ctrl),
		kafka:      services.NewMockKafkaWriter(ctrl),
	}
}

func TestQueryService_Ask_Dynamic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newQueryMocks(ctrl)
	svc := services.NewQueryService(m.composer, m.describer, m.translator, m.executor, nil, false)

	result := &models.QueryResult{Headers: []string{"name"}, Rows: [][]any{{"Ann"}}}

	gomock.InOrder(
		m.composer.EXPECT().Fixed().Return(false),
		m.describer.EXPECT().Describe(gomock.Any()).Return("Table: t1\n- name (TEXT)", nil),
		m.composer.EXPECT().Compose("list names", "Table: t1\n- name (TEXT)").Return("PROMPT"),
		m.translator.EXPECT().Translate(gomock.Any(), "PROMPT").Return("SELECT name FROM t1;", nil),
		m.executor.EXPECT().Execute(gomock.Any(), "SELECT name FROM t1;").Return(result, nil),
	)

	sql, res, err := svc.Ask(context.Background(), "alice", "list names")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name FROM t1;", sql)
	assert.Equal(t, result, res)
}

func TestQueryService_Ask_FixedSkipsSchema(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newQueryMocks(ctrl)
	svc := services.NewQueryService(m.composer, m.describer, m.translator, m.executor, nil, false)

	m.composer.EXPECT().Fixed().Return(true)
	m.composer.EXPECT().Compose("how many students", "").Return("PROMPT")
	m.translator.EXPECT().Translate(gomock.Any(), "PROMPT").Return("SELECT COUNT(*) FROM STUDENT;", nil)
	m.executor.EXPECT().Execute(gomock.Any(), "SELECT COUNT(*) FROM STUDENT;").
		Return(&models.QueryResult{Headers: []string{"COUNT(*)"}, Rows: [][]any{{int64(0)}}}, nil)

	_, res, err := svc.Ask(context.Background(), "alice", "how many students")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Rows[0][0])
}

func TestQueryService_Ask_Failures(t *testing.T) {
	t.Run("describe error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newQueryMocks(ctrl)
		svc := services.NewQueryService(m.composer, m.describer, m.translator, m.executor, nil, false)

		m.composer.EXPECT().Fixed().Return(false)
		m.describer.EXPECT().Describe(gomock.Any()).Return("", errors.New("database is locked"))

		sql, res, err := svc.Ask(context.Background(), "alice", "q")
		assert.EqualError(t, err, "database is locked")
		assert.Empty(t, sql)
		assert.Nil(t, res)
	})

	t.Run("translate error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newQueryMocks(ctrl)
		svc := services.NewQueryService(m.composer, m.describer, m.translator, m.executor, nil, false)

		m.composer.EXPECT().Fixed().Return(true)
		m.composer.EXPECT().Compose(gomock.Any(), gomock.Any()).Return("PROMPT")
		m.translator.EXPECT().Translate(gomock.Any(), "PROMPT").Return("", errors.New("invalid API key"))

		sql, _, err := svc.Ask(context.Background(), "alice", "q")
		assert.EqualError(t, err, "invalid API key")
		assert.Empty(t, sql)
	})

	t.Run("execute error keeps sql", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newQueryMocks(ctrl)
		svc := services.NewQueryService(m.composer, m.describer, m.translator, m.executor, nil, false)

		m.composer.EXPECT().Fixed().Return(true)
		m.composer.EXPECT().Compose(gomock.Any(), gomock.Any()).Return("PROMPT")
		m.translator.EXPECT().Translate(gomock.Any(), "PROMPT").Return("SELEC nonsense", nil)
		m.executor.EXPECT().Execute(gomock.Any(), "SELEC nonsense").Return(nil, errors.New(`near "SELEC": syntax error`))

		sql, res, err := svc.Ask(context.Background(), "alice", "q")
		assert.Error(t, err)
		assert.Equal(t, "SELEC nonsense", sql)
		assert.Nil(t, res)
	})
}

func TestQueryService_Ask_SchemaChangeInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newQueryMocks(ctrl)
	svc := services.NewQueryService(m.composer, m.describer, m.translator, m.executor, nil, false)

	m.composer.EXPECT().Fixed().Return(false)
	m.describer.EXPECT().Describe(gomock.Any()).Return("Table: t1", nil)
	m.composer.EXPECT().Compose(gomock.Any(), gomock.Any()).Return("PROMPT")
	m.translator.EXPECT().Translate(gomock.Any(), "PROMPT").Return("DROP TABLE t1;", nil)
	m.executor.EXPECT().Execute(gomock.Any(), "DROP TABLE t1;").Return(&models.QueryResult{}, nil)
	m.describer.EXPECT().Invalidate(gomock.Any()).Return(nil)

	_, res, err := svc.Ask(context.Background(), "alice", "drop t1")
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestQueryService_Ask_ReadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newQueryMocks(ctrl)
	svc := services.NewQueryService(m.composer, m.describer, m.translator, m.executor, nil, true)

	m.composer.EXPECT().Fixed().Return(true)
	m.composer.EXPECT().Compose(gomock.Any(), gomock.Any()).Return("PROMPT")
	m.translator.EXPECT().Translate(gomock.Any(), "PROMPT").Return("DELETE FROM STUDENT;", nil)

	sql, res, err := svc.Ask(context.Background(), "alice", "delete everyone")
	assert.ErrorIs(t, err, services.ErrStatementNotAllowed)
	assert.Equal(t, "DELETE FROM STUDENT;", sql)
	assert.Nil(t, res)
}

func TestQueryService_Ask_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newQueryMocks(ctrl)
	svc := services.NewQueryService(m.composer, m.describer, m.translator, m.executor, m.kafka, false)

	m.composer.EXPECT().Fixed().Return(true)
	m.composer.EXPECT().Compose(gomock.Any(), gomock.Any()).Return("PROMPT")
	m.translator.EXPECT().Translate(gomock.Any(), "PROMPT").Return("SELECT * FROM STUDENT;", nil)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(&models.QueryResult{Headers: []string{"PRN"}, Rows: [][]any{{int64(1)}, {int64(2)}}}, nil)

	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "alice", string(msgs[0].Key))

			var event models.QueryEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, "alice", event.Username)
			assert.Equal(t, "all students", event.Question)
			assert.Equal(t, "SELECT * FROM STUDENT;", event.SQL)
			assert.Equal(t, 2, event.RowCount)
			assert.Empty(t, event.Error)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	_, _, err := svc.Ask(context.Background(), "alice", "all students")
	require.NoError(t, err)
}

func TestQueryService_Ask_KafkaFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newQueryMocks(ctrl)
	svc := services.NewQueryService(m.composer, m.describer, m.translator, m.executor, m.kafka, false)

	m.composer.EXPECT().Fixed().Return(true)
	m.composer.EXPECT().Compose(gomock.Any(), gomock.Any()).Return("PROMPT")
	m.translator.EXPECT().Translate(gomock.Any(), "PROMPT").Return("SELECT 1;", nil)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(&models.QueryResult{}, nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	sql, _, err := svc.Ask(context.Background(), "alice", "one")
	assert.NoError(t, err)
	assert.Equal(t, "SELECT 1;", sql)
}
