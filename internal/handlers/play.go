package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/middlewares"
	"github.com/bc99/gaming-platform/internal/services"
)

// BetPlacer defines the interface that the settlement engine must implement.
type BetPlacer interface {
	Play(ctx context.Context, userID, gameID int64, betAmount float64) (*services.PlayResult, error)
}

// PlayRequest represents the JSON body for placing a bet
// swagger:model PlayRequest
type PlayRequest struct {
	// Game id from the catalog
	// required: true
	GameID int64 `json:"gameId"`

	// Bet amount, must be positive
	// required: true
	BetAmount float64 `json:"betAmount"`
}

// PlayResponse represents a settled bet
// swagger:model PlayResponse
type PlayResponse struct {
	Success    bool    `json:"success"`
	IsWin      bool    `json:"isWin"`
	WinAmount  float64 `json:"winAmount"`
	NewBalance float64 `json:"newBalance"`
	Message    string  `json:"message"`
}

// NewPlayHandler returns an HTTP handler for placing a bet.
// @Summary Place a bet
// @Description Settles a single bet: a 50/50 draw with a 2x payout on win. Balance update and ledger append happen in one transaction.
// @Tags games
// @Accept json
// @Produce json
// @Param playRequest body handlers.PlayRequest true "Bet request"
// @Success 200 {object} handlers.PlayResponse "Settled bet"
// @Failure 400 {object} handlers.ErrorResponse "Invalid parameters or insufficient balance"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/play [post]
func NewPlayHandler(svc BetPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Unauthorized"})
			return
		}

		var req PlayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid game parameters"})
			return
		}

		result, err := svc.Play(r.Context(), userID, req.GameID, req.BetAmount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBet):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid game parameters"})
			case errors.Is(err, services.ErrInsufficientBalance):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Insufficient balance"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("settlement failed", "user_id", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			}
			return
		}

		message := "Better luck next time!"
		if result.IsWin {
			message = "Congratulations! You won!"
		}

		json.NewEncoder(w).Encode(PlayResponse{
			Success:    true,
			IsWin:      result.IsWin,
			WinAmount:  result.WinAmount,
			NewBalance: result.NewBalance,
			Message:    message,
		})
	}
}
