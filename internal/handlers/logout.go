package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/middlewares"
)

// Logouter ends sessions.
type Logouter interface {
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// LogoutResponse represents a successful logout
// swagger:model LogoutResponse
type LogoutResponse struct {
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that closes the caller's session.
// @Summary User logout
// @Description Deletes the session; its token is rejected afterwards
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.LogoutResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middlewares.SessionFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Logout(r.Context(), session.ID); err != nil {
			logger.Log.Errorw("logout failed", "err", err)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		writeJSON(w, http.StatusOK, LogoutResponse{Message: "Logged out"})
	}
}
