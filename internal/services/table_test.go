package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-text2sql/internal/database"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
	"github.com/sbilibin2017/gw-text2sql/internal/repositories"
	"github.com/sbilibin2017/gw-text2sql/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateTable(t *testing.T) {
	tests := []struct {
		name    string
		def     models.TableDefinition
		want    string
		wantErr error
	}{
		{
			name: "single primary key inline",
			def: models.TableDefinition{Name: "t1", Columns: []models.ColumnSpec{
				{Name: "id", Type: "INTEGER", PrimaryKey: true},
				{Name: "name", Type: "TEXT"},
			}},
			want: "CREATE TABLE IF NOT EXISTS t1 (id INTEGER PRIMARY KEY, name TEXT);",
		},
		{
			name: "no primary key",
			def: models.TableDefinition{Name: "t2", Columns: []models.ColumnSpec{
				{Name: "x", Type: "real"},
			}},
			want: "CREATE TABLE IF NOT EXISTS t2 (x REAL);",
		},
		{
			name: "composite primary key",
			def: models.TableDefinition{Name: "grades", Columns: []models.ColumnSpec{
				{Name: "prn", Type: "INTEGER", PrimaryKey: true},
				{Name: "subject", Type: "TEXT", PrimaryKey: true},
				{Name: "passed", Type: "BOOLEAN"},
			}},
			want: "CREATE TABLE IF NOT EXISTS grades (prn INTEGER, subject TEXT, passed BOOLEAN, PRIMARY KEY (prn, subject));",
		},
		{
			name:    "no columns",
			def:     models.TableDefinition{Name: "t3"},
			wantErr: services.ErrNoColumns,
		},
		{
			name: "bad table name",
			def: models.TableDefinition{Name: "t1; DROP TABLE users", Columns: []models.ColumnSpec{
				{Name: "a", Type: "TEXT"},
			}},
			wantErr: services.ErrInvalidIdentifier,
		},
		{
			name: "bad column name",
			def: models.TableDefinition{Name: "t4", Columns: []models.ColumnSpec{
				{Name: "first name", Type: "TEXT"},
			}},
			wantErr: services.ErrInvalidIdentifier,
		},
		{
			name: "unsupported type",
			def: models.TableDefinition{Name: "t5", Columns: []models.ColumnSpec{
				{Name: "a", Type: "BLOB"},
			}},
			wantErr: services.ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.BuildCreateTable(tt.def)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableService_AddColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := services.NewMockSessionUpdater(ctrl)
	svc := services.NewTableService(sessions, services.NewMockTableWriter(ctrl), services.NewMockTableSchema(ctrl))

	id := uuid.New()
	session := &models.Session{ID: id, Columns: []models.ColumnSpec{{Name: "id", Type: "INTEGER", PrimaryKey: true}}}
	apply := func(_ context.Context, _ uuid.UUID, fn func(*models.Session)) (*models.Session, error) {
		fn(session)
		return session, nil
	}

	t.Run("appends and normalises type", func(t *testing.T) {
		sessions.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(apply)

		cols, err := svc.AddColumn(context.Background(), id, models.ColumnSpec{Name: "name", Type: " text "})
		require.NoError(t, err)
		assert.Equal(t, []models.ColumnSpec{
			{Name: "id", Type: "INTEGER", PrimaryKey: true},
			{Name: "name", Type: "TEXT"},
		}, cols)
	})

	t.Run("duplicate", func(t *testing.T) {
		sessions.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(apply)

		_, err := svc.AddColumn(context.Background(), id, models.ColumnSpec{Name: "NAME", Type: "TEXT"})
		assert.ErrorIs(t, err, services.ErrDuplicateColumn)
		assert.Len(t, session.Columns, 2)
	})

	t.Run("invalid type never touches session", func(t *testing.T) {
		_, err := svc.AddColumn(context.Background(), id, models.ColumnSpec{Name: "x", Type: "VARCHAR"})
		assert.ErrorIs(t, err, services.ErrUnsupportedType)
	})

	t.Run("unknown session", func(t *testing.T) {
		sessions.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, repositories.ErrSessionNotFound)

		_, err := svc.AddColumn(context.Background(), id, models.ColumnSpec{Name: "x", Type: "REAL"})
		assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
	})
}

func TestTableService_CreateTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := services.NewMockSessionUpdater(ctrl)
	writer := services.NewMockTableWriter(ctrl)
	schema := services.NewMockTableSchema(ctrl)
	svc := services.NewTableService(sessions, writer, schema)

	id := uuid.New()
	session := &models.Session{ID: id, Columns: []models.ColumnSpec{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "name", Type: "TEXT"},
	}}
	stmt := "CREATE TABLE IF NOT EXISTS t1 (id INTEGER PRIMARY KEY, name TEXT);"

	t.Run("writer failure keeps columns", func(t *testing.T) {
		sessions.EXPECT().Get(gomock.Any(), id).Return(session, nil)
		writer.EXPECT().Create(gomock.Any(), stmt).Return(errors.New("database is locked"))

		got, err := svc.CreateTable(context.Background(), id, "t1")
		assert.Error(t, err)
		assert.Equal(t, stmt, got)
		assert.Len(t, session.Columns, 2)
	})

	t.Run("success clears and invalidates", func(t *testing.T) {
		sessions.EXPECT().Get(gomock.Any(), id).Return(session, nil)
		writer.EXPECT().Create(gomock.Any(), stmt).Return(nil)
		sessions.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(*models.Session)) (*models.Session, error) {
				fn(session)
				return session, nil
			})
		schema.EXPECT().Invalidate(gomock.Any()).Return(nil)

		got, err := svc.CreateTable(context.Background(), id, "t1")
		require.NoError(t, err)
		assert.Equal(t, stmt, got)
		assert.Empty(t, session.Columns)
	})

	t.Run("no pending columns", func(t *testing.T) {
		sessions.EXPECT().Get(gomock.Any(), id).Return(&models.Session{ID: id}, nil)

		_, err := svc.CreateTable(context.Background(), id, "t1")
		assert.ErrorIs(t, err, services.ErrNoColumns)
	})
}

func TestTableService_InsertRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockTableWriter(ctrl)
	schema := services.NewMockTableSchema(ctrl)
	svc := services.NewTableService(services.NewMockSessionUpdater(ctrl), writer, schema)

	tables := []models.TableInfo{{Name: "t1", Columns: []models.ColumnInfo{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "name", Type: "TEXT"},
		{Name: "score", Type: "REAL"},
	}}}

	t.Run("ordered by table columns", func(t *testing.T) {
		schema.EXPECT().Tables(gomock.Any()).Return(tables, nil)
		writer.EXPECT().Insert(gomock.Any(), "t1", []string{"name", "score"}, []any{"Ann", "9.5"}).Return(nil)

		err := svc.InsertRow(context.Background(), "t1", map[string]string{"score": "9.5", "name": "Ann"})
		assert.NoError(t, err)
	})

	t.Run("unknown table", func(t *testing.T) {
		schema.EXPECT().Tables(gomock.Any()).Return(tables, nil)

		err := svc.InsertRow(context.Background(), "t9", map[string]string{"a": "1"})
		assert.ErrorIs(t, err, services.ErrUnknownTable)
	})

	t.Run("unknown column", func(t *testing.T) {
		schema.EXPECT().Tables(gomock.Any()).Return(tables, nil)

		err := svc.InsertRow(context.Background(), "t1", map[string]string{"age": "3"})
		assert.ErrorIs(t, err, services.ErrUnknownColumn)
	})

	t.Run("no values", func(t *testing.T) {
		err := svc.InsertRow(context.Background(), "t1", nil)
		assert.ErrorIs(t, err, services.ErrNoValues)
	})
}

func TestTableService_CreateTwiceOnSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	sessions := repositories.NewSessionRepository()
	schema := services.NewSchemaService(repositories.NewSchemaRepository(db), nil)
	svc := services.NewTableService(sessions, repositories.NewTableRepository(db), schema)

	id := uuid.New()
	require.NoError(t, sessions.Save(ctx, &models.Session{ID: id, Username: "alice"}))

	for i := 0; i < 2; i++ {
		_, err := svc.AddColumn(ctx, id, models.ColumnSpec{Name: "id", Type: "INTEGER", PrimaryKey: true})
		require.NoError(t, err)
		_, err = svc.AddColumn(ctx, id, models.ColumnSpec{Name: "name", Type: "TEXT"})
		require.NoError(t, err)

		_, err = svc.CreateTable(ctx, id, "t1")
		require.NoError(t, err)
	}

	require.NoError(t, svc.InsertRow(ctx, "t1", map[string]string{"id": "1", "name": "Ann"}))

	desc, err := schema.Describe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Table: t1\n- id (INTEGER)\n- name (TEXT)", desc)

	pending, err := svc.PendingColumns(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
