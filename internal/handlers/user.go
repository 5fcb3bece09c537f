package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/middlewares"
	"github.com/bc99/gaming-platform/internal/models"
	"github.com/bc99/gaming-platform/internal/services"
)

// CurrentUserProvider loads the authenticated user's public view.
type CurrentUserProvider interface {
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// NewUserHandler returns an HTTP handler for the current-user endpoint.
// @Summary Get current user
// @Description Returns the authenticated user, including the live balance.
// @Tags auth
// @Produce json
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/user [get]
func NewUserHandler(svc CurrentUserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Unauthorized"})
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("current user fetch failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		json.NewEncoder(w).Encode(user)
	}
}
