package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
	"github.com/sbilibin2017/gw-text2sql/internal/repositories"
	"github.com/sbilibin2017/gw-text2sql/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTables = []models.TableInfo{
	{Name: "t1", Columns: []models.ColumnInfo{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "name", Type: "TEXT"},
	}},
	{Name: "t2", Columns: []models.ColumnInfo{
		{Name: "x", Type: "REAL"},
	}},
}

func TestFormatSchema(t *testing.T) {
	assert.Equal(t,
		"Table: t1\n- id (INTEGER)\n- name (TEXT)\n\nTable: t2\n- x (REAL)",
		services.FormatSchema(sampleTables))
	assert.Equal(t, "", services.FormatSchema(nil))
}

func TestSchemaService_Describe_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockSchemaReader(ctrl)
	svc := services.NewSchemaService(reader, nil)

	reader.EXPECT().ListTables(gomock.Any()).Return(sampleTables, nil).Times(2)

	first, err := svc.Describe(context.Background())
	require.NoError(t, err)
	second, err := svc.Describe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NoError(t, svc.Invalidate(context.Background()))
}

func TestSchemaService_Describe_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockSchemaReader(ctrl)
	cache := services.NewMockSchemaCache(ctrl)
	svc := services.NewSchemaService(reader, cache)

	t.Run("miss fills cache", func(t *testing.T) {
		cache.EXPECT().Get(gomock.Any()).Return("", repositories.ErrCacheMiss)
		reader.EXPECT().ListTables(gomock.Any()).Return(sampleTables, nil)
		cache.EXPECT().Set(gomock.Any(), services.FormatSchema(sampleTables)).Return(nil)

		desc, err := svc.Describe(context.Background())
		require.NoError(t, err)
		assert.Contains(t, desc, "Table: t1")
	})

	t.Run("hit skips catalog", func(t *testing.T) {
		cache.EXPECT().Get(gomock.Any()).Return("Table: cached", nil)

		desc, err := svc.Describe(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Table: cached", desc)
	})

	t.Run("cache failure falls back", func(t *testing.T) {
		cache.EXPECT().Get(gomock.Any()).Return("", errors.New("connection refused"))
		reader.EXPECT().ListTables(gomock.Any()).Return(sampleTables, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		desc, err := svc.Describe(context.Background())
		require.NoError(t, err)
		assert.Contains(t, desc, "Table: t2")
	})

	t.Run("catalog failure", func(t *testing.T) {
		cache.EXPECT().Get(gomock.Any()).Return("", repositories.ErrCacheMiss)
		reader.EXPECT().ListTables(gomock.Any()).Return(nil, errors.New("disk I/O error"))

		_, err := svc.Describe(context.Background())
		assert.EqualError(t, err, "disk I/O error")
	})

	t.Run("invalidate", func(t *testing.T) {
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		assert.NoError(t, svc.Invalidate(context.Background()))
	})
}

func TestSchemaService_Tables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockSchemaReader(ctrl)
	svc := services.NewSchemaService(reader, nil)

	reader.EXPECT().ListTables(gomock.Any()).Return(sampleTables, nil)
	tables, err := svc.Tables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleTables, tables)
}
