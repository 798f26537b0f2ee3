package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
)

// TableRepository creates user-defined tables and inserts rows into them.
type TableRepository struct {
	db *sqlx.DB
}

func NewTableRepository(db *sqlx.DB) *TableRepository {
	return &TableRepository{db: db}
}

// Create executes a prepared CREATE TABLE statement.
func (r *TableRepository) Create(ctx context.Context, statement string) error {
	_, err := r.db.ExecContext(ctx, statement)

	logger.Log.Infow(
		"query", statement,
		"error", err,
	)

	return err
}

// Insert adds one row. Column names must already be validated by the caller;
// values are always bound as parameters.
func (r *TableRepository) Insert(ctx context.Context, table string, columns []string, values []any) error {
	if len(columns) != len(values) {
		return fmt.Errorf("insert into %s: %d columns but %d values", table, len(columns), len(values))
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")

	query := r.db.Rebind(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), placeholders,
	))

	res, err := r.db.ExecContext(ctx, query, values...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", values,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
