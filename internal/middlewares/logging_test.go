package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "created", status: http.StatusCreated, body: `{"message":"ok"}`},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, body: `{"error":"no such table: t9"}`},
		{name: "implicit ok", status: 0, body: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			restore := logger.Replace(zap.New(core))
			defer restore()

			var ctxID string
			handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = RequestIDFromContext(r.Context())
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/query?x=1", nil))

			wantStatus := tt.status
			if wantStatus == 0 {
				wantStatus = http.StatusOK
			}
			assert.Equal(t, wantStatus, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())

			reqID := rr.Header().Get("X-Request-ID")
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, ctxID)

			require.Equal(t, 1, logs.Len())
			fields := logs.All()[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.Equal(t, "/query?x=1", fields["uri"])
			assert.EqualValues(t, wantStatus, fields["status"])
			assert.Equal(t, "POST", fields["method"])
		})
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
