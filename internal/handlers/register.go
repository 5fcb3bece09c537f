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

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, mobile string) (*models.User, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`

	// Mobile number
	// required: true
	Mobile string `json:"mobile"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique 5-digit display uid and the starting balance, and opens a session for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} models.User "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username already taken / invalid input"
// @Router /api/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid input data"})
			return
		}
		if req.Username == "" || req.Password == "" || req.Mobile == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid input data"})
			return
		}

		user, tok, err := svc.Register(r.Context(), req.Username, req.Password, req.Mobile)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Username already taken"})
			default:
				logger.Log.Errorw("registration failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		setSessionCookie(w, tok)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}
