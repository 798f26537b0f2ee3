package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
)

// SchemaRepository lists the tables and columns of the target database.
type SchemaRepository struct {
	db *sqlx.DB
}

func NewSchemaRepository(db *sqlx.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// ListTables returns user tables in catalog order with their columns.
func (r *SchemaRepository) ListTables(ctx context.Context) ([]models.TableInfo, error) {
	if isPostgres(r.db) {
		return r.listPostgres(ctx)
	}
	return r.listSQLite(ctx)
}

type pragmaColumn struct {
	CID     int            `db:"cid"`
	Name    string         `db:"name"`
	Type    string         `db:"type"`
	NotNull int            `db:"notnull"`
	Default sql.NullString `db:"dflt_value"`
	PK      int            `db:"pk"`
}

func (r *SchemaRepository) listSQLite(ctx context.Context) ([]models.TableInfo, error) {
	const query = `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`

	var names []string
	err := r.db.SelectContext(ctx, &names, query)
	logger.Log.Infow(
		"query", query,
		"result", names,
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	tables := make([]models.TableInfo, 0, len(names))
	for _, name := range names {
		var cols []pragmaColumn
		pragma := fmt.Sprintf(`PRAGMA table_info(%s)`, quoteIdent(name))
		if err := r.db.SelectContext(ctx, &cols, pragma); err != nil {
			logger.Log.Errorw("failed to read table info", "table", name, "error", err)
			return nil, err
		}

		info := models.TableInfo{Name: name, Columns: make([]models.ColumnInfo, 0, len(cols))}
		for _, c := range cols {
			info.Columns = append(info.Columns, models.ColumnInfo{
				Name:       c.Name,
				Type:       c.Type,
				NotNull:    c.NotNull == 1,
				PrimaryKey: c.PK > 0,
			})
		}
		tables = append(tables, info)
	}

	return tables, nil
}

type pgColumn struct {
	Table    string `db:"table_name"`
	Name     string `db:"column_name"`
	Type     string `db:"data_type"`
	Nullable string `db:"is_nullable"`
	PK       bool   `db:"pk"`
}

func (r *SchemaRepository) listPostgres(ctx context.Context) ([]models.TableInfo, error) {
	const query = `
		SELECT c.table_name, c.column_name, UPPER(c.data_type) AS data_type, c.is_nullable,
			EXISTS (
				SELECT 1
				FROM information_schema.table_constraints tc
				JOIN information_schema.key_column_usage k
					ON tc.constraint_name = k.constraint_name AND tc.table_schema = k.table_schema
				WHERE tc.constraint_type = 'PRIMARY KEY'
					AND k.table_schema = c.table_schema
					AND k.table_name = c.table_name
					AND k.column_name = c.column_name
			) AS pk
		FROM information_schema.columns c
		JOIN information_schema.tables t
			ON t.table_schema = c.table_schema AND t.table_name = c.table_name
		WHERE c.table_schema = current_schema() AND t.table_type = 'BASE TABLE'
		ORDER BY c.table_name, c.ordinal_position
	`

	var cols []pgColumn
	err := r.db.SelectContext(ctx, &cols, query)
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(cols),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	var tables []models.TableInfo
	for _, c := range cols {
		if len(tables) == 0 || tables[len(tables)-1].Name != c.Table {
			tables = append(tables, models.TableInfo{Name: c.Table})
		}
		last := &tables[len(tables)-1]
		last.Columns = append(last.Columns, models.ColumnInfo{
			Name:       c.Name,
			Type:       c.Type,
			NotNull:    c.Nullable == "NO",
			PrimaryKey: c.PK,
		})
	}

	return tables, nil
}

func isPostgres(db *sqlx.DB) bool {
	return db.DriverName() == "pgx" || db.DriverName() == "postgres"
}

// quoteIdent quotes an identifier for use inside a statement.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
