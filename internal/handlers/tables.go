package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/middlewares"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
	"github.com/sbilibin2017/gw-text2sql/internal/repositories"
	"github.com/sbilibin2017/gw-text2sql/internal/services"
)

// TableManager builds tables from pending columns and inserts rows.
type TableManager interface {
	AddColumn(ctx context.Context, sessionID uuid.UUID, spec models.ColumnSpec) ([]models.ColumnSpec, error)
	PendingColumns(ctx context.Context, sessionID uuid.UUID) ([]models.ColumnSpec, error)
	ClearColumns(ctx context.Context, sessionID uuid.UUID) error
	CreateTable(ctx context.Context, sessionID uuid.UUID, name string) (string, error)
	ListTables(ctx context.Context) ([]models.TableInfo, error)
	InsertRow(ctx context.Context, table string, values map[string]string) error
}

// ColumnsResponse lists the pending column definitions
// swagger:model ColumnsResponse
type ColumnsResponse struct {
	Columns []models.ColumnSpec `json:"columns"`
}

// CreateTableRequest names the table to create
// swagger:model CreateTableRequest
type CreateTableRequest struct {
	// required: true
	// default: t1
	Name string `json:"name"`
}

// CreateTableResponse returns the executed statement
// swagger:model CreateTableResponse
type CreateTableResponse struct {
	// default: CREATE TABLE IF NOT EXISTS t1 (id INTEGER PRIMARY KEY, name TEXT);
	Statement string `json:"statement"`
}

// TablesResponse lists every table of the target database
// swagger:model TablesResponse
type TablesResponse struct {
	Tables []models.TableInfo `json:"tables"`
}

// InsertRowRequest maps column names to entered text
// swagger:model InsertRowRequest
type InsertRowRequest struct {
	Values map[string]string `json:"values"`
}

// InsertRowResponse represents a successful insert
// swagger:model InsertRowResponse
type InsertRowResponse struct {
	// default: Record inserted
	Message string `json:"message"`
}

// NewAddColumnHandler appends a column to the caller's pending table.
// @Summary Add pending column
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param column body models.ColumnSpec true "Column"
// @Success 200 {object} handlers.ColumnsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid column"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /tables/columns [post]
func NewAddColumnHandler(svc TableManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middlewares.SessionFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var spec models.ColumnSpec
		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		cols, err := svc.AddColumn(r.Context(), session.ID, spec)
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ColumnsResponse{Columns: cols})
	}
}

// NewPendingColumnsHandler lists the caller's pending columns.
// @Summary List pending columns
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ColumnsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /tables/columns [get]
func NewPendingColumnsHandler(svc TableManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middlewares.SessionFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		cols, err := svc.PendingColumns(r.Context(), session.ID)
		if err != nil {
			writeTableError(w, err)
			return
		}
		if cols == nil {
			cols = []models.ColumnSpec{}
		}

		writeJSON(w, http.StatusOK, ColumnsResponse{Columns: cols})
	}
}

// NewClearColumnsHandler discards the caller's pending columns.
// @Summary Clear pending columns
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ColumnsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /tables/columns [delete]
func NewClearColumnsHandler(svc TableManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middlewares.SessionFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.ClearColumns(r.Context(), session.ID); err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ColumnsResponse{Columns: []models.ColumnSpec{}})
	}
}

// NewCreateTableHandler creates a table from the pending columns.
// @Summary Create table
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createTableRequest body handlers.CreateTableRequest true "Table name"
// @Success 201 {object} handlers.CreateTableResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid name or no columns"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Database rejected the statement"
// @Router /tables [post]
func NewCreateTableHandler(svc TableManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middlewares.SessionFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateTableRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		stmt, err := svc.CreateTable(r.Context(), session.ID, req.Name)
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreateTableResponse{Statement: stmt})
	}
}

// NewListTablesHandler lists every table with its columns.
// @Summary List tables
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.TablesResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /tables [get]
func NewListTablesHandler(svc TableManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := svc.ListTables(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if tables == nil {
			tables = []models.TableInfo{}
		}

		writeJSON(w, http.StatusOK, TablesResponse{Tables: tables})
	}
}

// NewInsertRowHandler inserts one record into a table.
// @Summary Insert record
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param table path string true "Table name"
// @Param insertRowRequest body handlers.InsertRowRequest true "Column values"
// @Success 201 {object} handlers.InsertRowResponse
// @Failure 400 {object} handlers.ErrorResponse "Unknown column or no values"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Unknown table"
// @Failure 422 {object} handlers.ErrorResponse "Database rejected the record"
// @Router /tables/{table}/rows [post]
func NewInsertRowHandler(svc TableManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := chi.URLParam(r, "table")

		var req InsertRowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.InsertRow(r.Context(), table, req.Values); err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, InsertRowResponse{Message: "Record inserted"})
	}
}

// writeTableError maps table errors to status codes. Database errors are
// shown with their text so the user can correct the input.
func writeTableError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidIdentifier),
		errors.Is(err, services.ErrUnsupportedType),
		errors.Is(err, services.ErrDuplicateColumn),
		errors.Is(err, services.ErrNoColumns),
		errors.Is(err, services.ErrNoValues),
		errors.Is(err, services.ErrUnknownColumn):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnknownTable):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrSessionNotFound):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		logger.Log.Errorw("table operation failed", "err", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	}
}
