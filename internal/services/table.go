package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
)

var (
	ErrNoColumns         = errors.New("table definition has no columns")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrUnsupportedType   = errors.New("unsupported column type")
	ErrDuplicateColumn   = errors.New("duplicate column name")
	ErrUnknownTable      = errors.New("unknown table")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrNoValues          = errors.New("no values to insert")
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var columnTypes = map[string]struct{}{
	models.TypeText:    {},
	models.TypeInteger: {},
	models.TypeReal:    {},
	models.TypeBoolean: {},
}

// SessionUpdater reads and mutates login sessions.
type SessionUpdater interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*models.Session)) (*models.Session, error)
}

// TableWriter executes table definitions and inserts rows.
type TableWriter interface {
	Create(ctx context.Context, statement string) error
	Insert(ctx context.Context, table string, columns []string, values []any) error
}

// TableSchema lists tables and invalidates cached descriptions.
type TableSchema interface {
	Tables(ctx context.Context) ([]models.TableInfo, error)
	Invalidate(ctx context.Context) error
}

// TableService builds tables column by column and inserts records.
type TableService struct {
	sessions SessionUpdater
	writer   TableWriter
	schema   TableSchema
}

// NewTableService creates a TableService.
func NewTableService(sessions SessionUpdater, writer TableWriter, schema TableSchema) *TableService {
	return &TableService{sessions: sessions, writer: writer, schema: schema}
}

// AddColumn appends a column to the session's pending definition.
func (s *TableService) AddColumn(ctx context.Context, sessionID uuid.UUID, spec models.ColumnSpec) ([]models.ColumnSpec, error) {
	spec.Type = strings.ToUpper(strings.TrimSpace(spec.Type))
	if err := validateColumn(spec); err != nil {
		return nil, err
	}

	var dupErr error
	session, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) {
		for _, c := range sess.Columns {
			if strings.EqualFold(c.Name, spec.Name) {
				dupErr = fmt.Errorf("%w: %s", ErrDuplicateColumn, spec.Name)
				return
			}
		}
		sess.Columns = append(sess.Columns, spec)
	})
	if err != nil {
		return nil, err
	}
	if dupErr != nil {
		return nil, dupErr
	}

	logger.Log.Infow("column added", "session_id", sessionID, "column", spec.Name, "type", spec.Type, "pk", spec.PrimaryKey)
	return session.Columns, nil
}

// PendingColumns returns the columns collected so far.
func (s *TableService) PendingColumns(ctx context.Context, sessionID uuid.UUID) ([]models.ColumnSpec, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Columns, nil
}

// ClearColumns discards the pending definition.
func (s *TableService) ClearColumns(ctx context.Context, sessionID uuid.UUID) error {
	_, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) {
		sess.Columns = nil
	})
	return err
}

// CreateTable materialises the pending columns as a table and returns the
// executed statement. Pending columns are kept when creation fails.
func (s *TableService) CreateTable(ctx context.Context, sessionID uuid.UUID, name string) (string, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	stmt, err := BuildCreateTable(models.TableDefinition{Name: name, Columns: session.Columns})
	if err != nil {
		return "", err
	}

	if err := s.writer.Create(ctx, stmt); err != nil {
		logger.Log.Errorw("failed to create table", "table", name, "error", err)
		return stmt, err
	}

	if err := s.ClearColumns(ctx, sessionID); err != nil {
		logger.Log.Warnw("failed to clear pending columns", "session_id", sessionID, "error", err)
	}
	_ = s.schema.Invalidate(ctx)

	return stmt, nil
}

// ListTables returns every table with its columns.
func (s *TableService) ListTables(ctx context.Context) ([]models.TableInfo, error) {
	return s.schema.Tables(ctx)
}

// InsertRow inserts one record. Values are passed as entered; the database
// applies its own type conversion.
func (s *TableService) InsertRow(ctx context.Context, table string, values map[string]string) error {
	if len(values) == 0 {
		return ErrNoValues
	}

	tables, err := s.schema.Tables(ctx)
	if err != nil {
		return err
	}

	var info *models.TableInfo
	for i := range tables {
		if tables[i].Name == table {
			info = &tables[i]
			break
		}
	}
	if info == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	known := make(map[string]struct{}, len(info.Columns))
	for _, c := range info.Columns {
		known[c.Name] = struct{}{}
	}
	for name := range values {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownColumn, name)
		}
	}

	// keep the table's column order
	columns := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for _, c := range info.Columns {
		if v, ok := values[c.Name]; ok {
			columns = append(columns, c.Name)
			args = append(args, v)
		}
	}

	if err := s.writer.Insert(ctx, table, columns, args); err != nil {
		logger.Log.Errorw("failed to insert record", "table", table, "error", err)
		return err
	}
	return nil
}

// BuildCreateTable renders an idempotent CREATE TABLE statement. A single
// primary key column is declared inline; several become a table constraint.
func BuildCreateTable(def models.TableDefinition) (string, error) {
	if !identifierRe.MatchString(def.Name) {
		return "", fmt.Errorf("%w: table %q", ErrInvalidIdentifier, def.Name)
	}
	if len(def.Columns) == 0 {
		return "", ErrNoColumns
	}

	var pks []string
	for _, c := range def.Columns {
		if err := validateColumn(c); err != nil {
			return "", err
		}
		if c.PrimaryKey {
			pks = append(pks, c.Name)
		}
	}

	defs := make([]string, 0, len(def.Columns)+1)
	for _, c := range def.Columns {
		col := c.Name + " " + strings.ToUpper(c.Type)
		if c.PrimaryKey && len(pks) == 1 {
			col += " PRIMARY KEY"
		}
		defs = append(defs, col)
	}
	if len(pks) > 1 {
		defs = append(defs, "PRIMARY KEY ("+strings.Join(pks, ", ")+")")
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);", def.Name, strings.Join(defs, ", ")), nil
}

func validateColumn(c models.ColumnSpec) error {
	if !identifierRe.MatchString(c.Name) {
		return fmt.Errorf("%w: column %q", ErrInvalidIdentifier, c.Name)
	}
	if _, ok := columnTypes[strings.ToUpper(c.Type)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedType, c.Type)
	}
	return nil
}
