package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
	"github.com/bc99/gaming-platform/internal/services"
)

// AdminUserLister lists all users for the admin view.
type AdminUserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BalanceAdjuster applies an administrative balance override.
type BalanceAdjuster interface {
	AdjustBalance(ctx context.Context, userID int64, amount float64) (*models.User, error)
}

// BanSetter bans or unbans a user.
type BanSetter interface {
	SetBanStatus(ctx context.Context, userID int64, banned bool) (*models.User, error)
}

// UserHistoryProvider reads another user's settlement history.
type UserHistoryProvider interface {
	UserHistory(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

// AdjustBalanceRequest represents the JSON body for a balance override
// swagger:model AdjustBalanceRequest
type AdjustBalanceRequest struct {
	// Signed amount to add to the balance
	// required: true
	Amount *float64 `json:"amount"`
}

// BanRequest represents the JSON body for a ban update
// swagger:model BanRequest
type BanRequest struct {
	// Target ban state
	// required: true
	Banned *bool `json:"banned"`
}

// userIDParam parses the {id} route parameter.
func userIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewAdminUsersHandler returns an HTTP handler that lists all users.
// @Summary List all users
// @Description Returns every user, ordered by id. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {array} models.User "All users"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /api/admin/users [get]
func NewAdminUsersHandler(svc AdminUserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("admin user list failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			return
		}

		json.NewEncoder(w).Encode(users)
	}
}

// NewAdminBalanceHandler returns an HTTP handler for balance overrides.
// @Summary Adjust a user's balance
// @Description Adds a signed amount to a user's balance. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param adjustBalanceRequest body handlers.AdjustBalanceRequest true "Balance adjustment"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/admin/users/{id}/balance [post]
func NewAdminBalanceHandler(svc BalanceAdjuster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid input data"})
			return
		}

		var req AdjustBalanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid input data"})
			return
		}

		user, err := svc.AdjustBalance(r.Context(), userID, *req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			case errors.Is(err, services.ErrInsufficientBalance):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Balance cannot go negative"})
			default:
				logger.Log.Errorw("admin balance update failed", "user_id", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		json.NewEncoder(w).Encode(user)
	}
}

// NewAdminBanHandler returns an HTTP handler for ban updates.
// @Summary Ban or unban a user
// @Description Sets the banned flag on a user. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param banRequest body handlers.BanRequest true "Ban update"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/admin/users/{id}/ban [post]
func NewAdminBanHandler(svc BanSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid input data"})
			return
		}

		var req BanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Banned == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid input data"})
			return
		}

		user, err := svc.SetBanStatus(r.Context(), userID, *req.Banned)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("admin ban update failed", "user_id", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		json.NewEncoder(w).Encode(user)
	}
}

// NewAdminHistoryHandler returns an HTTP handler for reviewing a user's history.
// @Summary Get a user's play history
// @Description Returns another user's most recent settlements. Admin only.
// @Tags admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {array} models.HistoryEntry "Settlement history"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Router /api/admin/users/{id}/history [get]
func NewAdminHistoryHandler(svc UserHistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := userIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid user ID"})
			return
		}

		entries, err := svc.UserHistory(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("admin history fetch failed", "user_id", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			return
		}

		json.NewEncoder(w).Encode(entries)
	}
}
