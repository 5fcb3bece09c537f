package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
)

// UserGetter loads a user record for the admin capability check.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// AdminMiddleware gates admin routes. It expects AuthMiddleware to have run
// first and rejects any user without the admin flag.
func AdminMiddleware(users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, ok := GetUserIDFromContext(ctx)
			if !ok {
				unauthorized(w)
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("admin check failed", "user_id", userID, "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"message": "Server error"})
				return
			}

			if user == nil || !user.IsAdmin {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"message": "Forbidden: Admin access required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
