package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
	"github.com/bc99/gaming-platform/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.User, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user and open a session. The session token is set as an httpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} models.User "Authenticated user"
// @Failure 400 {object} handlers.ErrorResponse "Missing username or password"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 403 {object} handlers.ErrorResponse "Account is banned"
// @Router /api/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Username and password are required"})
			return
		}

		user, tok, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid username or password"})
			case errors.Is(err, services.ErrUserBanned):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Account is banned"})
			default:
				logger.Log.Errorw("login failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		setSessionCookie(w, tok)
		json.NewEncoder(w).Encode(user)
	}
}
