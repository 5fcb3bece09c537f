package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bc99/gaming-platform/internal/logger"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	FromRequest(ctx context.Context, r *http.Request) (string, error)
	Parse(ctx context.Context, tokenString string) (int64, string, error)
}

// SessionReader resolves a session id to a user id.
type SessionReader interface {
	GetUserID(ctx context.Context, sessionID string) (int64, bool, error)
}

type userIDKey struct{}

// SetUserIDToContext stores the authenticated user id in the context.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the context.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

// AuthMiddleware validates the session token and checks that the session
// record still exists, then injects the user id into the request context.
func AuthMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.FromRequest(ctx, r)
			if err != nil {
				unauthorized(w)
				return
			}

			userID, sessionID, err := tokener.Parse(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("rejected token", "err", err)
				unauthorized(w)
				return
			}

			sessionUserID, found, err := sessions.GetUserID(ctx, sessionID)
			if err != nil || !found || sessionUserID != userID {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
}
