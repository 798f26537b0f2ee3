package services_test

import (
	"testing"

	"github.com/sbilibin2017/gw-text2sql/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCheckReadOnly(t *testing.T) {
	allowed := []string{
		"SELECT * FROM STUDENT;",
		"select count(*) from STUDENT",
		"WITH x AS (SELECT 1) SELECT * FROM x;",
		"SELECT * FROM t1 WHERE name = 'DROP TABLE t1; --';",
		"-- list\nSELECT name FROM t1;",
		"EXPLAIN QUERY PLAN SELECT * FROM t1",
		"SELECT REPLACE(name, 'a', 'b') FROM t1",
		"SELECT replace (name, 'a', 'b') AS n FROM t1;",
	}
	for _, q := range allowed {
		assert.NoError(t, services.CheckReadOnly(q), q)
	}

	rejected := []string{
		"",
		"DROP TABLE t1;",
		"INSERT INTO t1 VALUES (1);",
		"SELECT 1; DROP TABLE t1;",
		"WITH x AS (DELETE FROM t1 RETURNING *) SELECT * FROM x",
		"/* hi */ UPDATE t1 SET a = 1",
		"SELECT 1 FROM t1; REPLACE INTO t1 VALUES (1)",
	}
	for _, q := range rejected {
		assert.ErrorIs(t, services.CheckReadOnly(q), services.ErrStatementNotAllowed, q)
	}
}

func TestIsSchemaChange(t *testing.T) {
	assert.True(t, services.IsSchemaChange("CREATE TABLE t (a TEXT);"))
	assert.True(t, services.IsSchemaChange("  drop table t1"))
	assert.True(t, services.IsSchemaChange("ALTER TABLE t1 RENAME TO t2"))
	assert.False(t, services.IsSchemaChange("SELECT * FROM t1"))
	assert.False(t, services.IsSchemaChange("INSERT INTO t1 VALUES ('CREATE')"))
	assert.False(t, services.IsSchemaChange(""))

	t.Run("later statement", func(t *testing.T) {
		assert.True(t, services.IsSchemaChange("SELECT 1; DROP TABLE t1"))
		assert.True(t, services.IsSchemaChange("INSERT INTO t1 VALUES (1);\n create index i on t1(a);"))
		assert.False(t, services.IsSchemaChange("SELECT 1; SELECT 'DROP TABLE t1';"))
	})
}
