package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
)

// GamesLister lists the game catalog.
type GamesLister interface {
	ListGames(ctx context.Context) ([]models.Game, error)
}

// NewGamesHandler returns an HTTP handler for the game catalog.
// @Summary List games
// @Description Returns the static game catalog.
// @Tags games
// @Produce json
// @Success 200 {array} models.Game "Game catalog"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /api/games [get]
func NewGamesHandler(svc GamesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		games, err := svc.ListGames(r.Context())
		if err != nil {
			logger.Log.Errorw("games fetch failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Server error"})
			return
		}

		json.NewEncoder(w).Encode(games)
	}
}
