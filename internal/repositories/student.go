package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
)

// StudentSchema is the definition of the fixed STUDENT table.
const StudentSchema = `
	CREATE TABLE IF NOT EXISTS STUDENT (
		PRN INTEGER PRIMARY KEY,
		NAME TEXT,
		CLASS TEXT,
		SECTION TEXT,
		MARKS INTEGER
	)
`

type StudentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// EnsureTable creates the STUDENT table when it is missing.
func (r *StudentRepository) EnsureTable(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, StudentSchema)
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(StudentSchema), " "),
		"error", err,
	)
	return err
}

// SaveAll inserts the records in a single transaction.
func (r *StudentRepository) SaveAll(ctx context.Context, students []models.Student) error {
	const query = `
		INSERT INTO STUDENT (PRN, NAME, CLASS, SECTION, MARKS)
		VALUES (:PRN, :NAME, :CLASS, :SECTION, :MARKS)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, s := range students {
		_, err := tx.NamedExecContext(ctx, query, s)
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(query), " "),
			"args", s,
			"error", err,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// List returns every STUDENT row in natural order.
func (r *StudentRepository) List(ctx context.Context) ([][]any, error) {
	rows, err := r.db.QueryxContext(ctx, `SELECT * FROM STUDENT`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		out = append(out, values)
	}
	return out, rows.Err()
}
