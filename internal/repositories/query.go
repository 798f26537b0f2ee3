package repositories

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
)

// QueryRepository executes generated statements verbatim.
type QueryRepository struct {
	db *sqlx.DB
}

func NewQueryRepository(db *sqlx.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

// Statements SQLite refuses to run inside a transaction.
var outsideTxKeywords = map[string]struct{}{
	"VACUUM": {},
}

// Execute runs one statement on a dedicated connection inside its own
// transaction, reads every row and commits. No row limit is applied.
// VACUUM runs on the bare connection.
func (r *QueryRepository) Execute(ctx context.Context, query string) (*models.QueryResult, error) {
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	if _, ok := outsideTxKeywords[leadingKeyword(query)]; ok {
		result, err := fetchAll(ctx, conn, query)
		logQuery(query, result, err)
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	result, err := fetchAll(ctx, tx, query)
	logQuery(query, result, err)

	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return result, nil
}

type queryer interface {
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
}

func fetchAll(ctx context.Context, q queryer, query string) (*models.QueryResult, error) {
	rows, err := q.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Statements without result descriptors report no columns.
	headers, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &models.QueryResult{Headers: headers, Rows: [][]any{}}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(result.Headers) == 0 {
		result.Headers = nil
	}
	return result, nil
}

func logQuery(query string, result *models.QueryResult, err error) {
	logger.Log.Infow(
		"query", query,
		"headers", resultHeaders(result),
		"rows", resultRowCount(result),
		"error", err,
	)
}

// leadingKeyword returns the first word of query in upper case, skipping
// leading whitespace and comments.
func leadingKeyword(query string) string {
	s := query
	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		switch {
		case strings.HasPrefix(s, "--"):
			i := strings.IndexByte(s, '\n')
			if i < 0 {
				return ""
			}
			s = s[i+1:]
		case strings.HasPrefix(s, "/*"):
			i := strings.Index(s, "*/")
			if i < 0 {
				return ""
			}
			s = s[i+2:]
		default:
			end := strings.IndexFunc(s, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
			})
			if end >= 0 {
				s = s[:end]
			}
			return strings.ToUpper(s)
		}
	}
}

func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func resultHeaders(r *models.QueryResult) []string {
	if r == nil {
		return nil
	}
	return r.Headers
}

func resultRowCount(r *models.QueryResult) int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}
