package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/middlewares"
	"github.com/bc99/gaming-platform/internal/models"
)

// HistoryProvider reads a user's settlement history.
type HistoryProvider interface {
	History(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

// NewHistoryHandler returns an HTTP handler for the play history endpoint.
// @Summary Get play history
// @Description Returns the authenticated user's most recent settlements, newest first, capped at 20 entries.
// @Tags games
// @Produce json
// @Success 200 {array} models.HistoryEntry "Settlement history"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /api/history [get]
func NewHistoryHandler(svc HistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Unauthorized"})
			return
		}

		entries, err := svc.History(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("history fetch failed", "user_id", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			return
		}

		json.NewEncoder(w).Encode(entries)
	}
}
