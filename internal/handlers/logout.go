package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bc99/gaming-platform/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// TokenExtractor pulls the raw session token out of a request.
type TokenExtractor interface {
	FromRequest(ctx context.Context, r *http.Request) (string, error)
}

// LogoutResponse represents a successful logout
// swagger:model LogoutResponse
type LogoutResponse struct {
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logout. Logout is idempotent:
// a missing or invalid token still yields a 200.
// @Summary Log out
// @Description Invalidates the current session and clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Failure 500 {object} handlers.ErrorResponse "Session store failure"
// @Router /api/logout [post]
func NewLogoutHandler(svc Logouter, tokens TokenExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if tok, err := tokens.FromRequest(r.Context(), r); err == nil {
			if err := svc.Logout(r.Context(), tok); err != nil {
				logger.Log.Errorw("logout failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Logout failed"})
				return
			}
		}

		clearSessionCookie(w)
		json.NewEncoder(w).Encode(LogoutResponse{Message: "Logged out successfully"})
	}
}
