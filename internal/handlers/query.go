package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/middlewares"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
)

// EmptyResultNotice is shown instead of a table when no rows come back.
const EmptyResultNotice = "No data returned."

// Asker runs the question pipeline.
type Asker interface {
	Ask(ctx context.Context, username, question string) (string, *models.QueryResult, error)
}

// SchemaDescriber renders the current schema.
type SchemaDescriber interface {
	Describe(ctx context.Context) (string, error)
}

// QueryRequest represents the JSON body of a question
// swagger:model QueryRequest
type QueryRequest struct {
	// English question
	// required: true
	// default: How many students are there?
	Question string `json:"question"`
}

// QueryResponse carries the generated SQL and its rows
// swagger:model QueryResponse
type QueryResponse struct {
	// default: SELECT COUNT(*) FROM STUDENT;
	SQL     string   `json:"sql"`
	Headers []string `json:"headers,omitempty"`
	Rows    [][]any  `json:"rows"`

	// Set when the statement returned no rows
	Notice string `json:"notice,omitempty"`
}

// QueryErrorResponse is returned when any pipeline stage fails
// swagger:model QueryErrorResponse
type QueryErrorResponse struct {
	// Generated SQL, when translation succeeded
	SQL   string `json:"sql,omitempty"`
	Error string `json:"error"`
}

// SchemaResponse wraps the schema description
// swagger:model SchemaResponse
type SchemaResponse struct {
	Schema string `json:"schema"`
}

// NewQueryHandler returns an HTTP handler that answers an English question.
// @Summary Ask a question
// @Description Translates the question to SQL, executes it and returns the rows
// @Tags query
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param queryRequest body handlers.QueryRequest true "Question"
// @Success 200 {object} handlers.QueryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.QueryErrorResponse "Translation or execution failed"
// @Router /query [post]
func NewQueryHandler(svc Asker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QueryRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		question := strings.TrimSpace(req.Question)
		if question == "" {
			writeError(w, http.StatusBadRequest, "question is required")
			return
		}

		var username string
		if session, ok := middlewares.SessionFromContext(r.Context()); ok {
			username = session.Username
		}

		sql, result, err := svc.Ask(r.Context(), username, question)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, QueryErrorResponse{
				SQL:   sql,
				Error: err.Error(),
			})
			return
		}

		resp := QueryResponse{SQL: sql, Rows: [][]any{}}
		if result != nil {
			resp.Headers = result.Headers
			if len(result.Rows) > 0 {
				resp.Rows = result.Rows
			}
		}
		if len(resp.Rows) == 0 {
			resp.Notice = EmptyResultNotice
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewSchemaHandler returns the schema description used as prompt context.
// @Summary Describe schema
// @Tags query
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.SchemaResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /schema [get]
func NewSchemaHandler(svc SchemaDescriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		desc, err := svc.Describe(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, SchemaResponse{Schema: desc})
	}
}
