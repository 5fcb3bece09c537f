package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bc99/gaming-platform/internal/models"
)

func TestGamesHandler(t *testing.T) {
	t.Run("returns the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockGamesLister(ctrl)
		svc.EXPECT().ListGames(gomock.Any()).Return([]models.Game{
			{ID: 1, Name: "BC99 Wingo", ImagePath: "/attached_assets/wingo.png"},
			{ID: 2, Name: "BC99 Aviator", ImagePath: "/attached_assets/avaitor.png"},
			{ID: 3, Name: "BC99 Slots", ImagePath: "/attached_assets/slots.png"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
		rec := httptest.NewRecorder()

		NewGamesHandler(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var games []models.Game
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&games))
		require.Len(t, games, 3)
		assert.Equal(t, "BC99 Wingo", games[0].Name)
	})

	t.Run("store failure yields 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockGamesLister(ctrl)
		svc.EXPECT().ListGames(gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
		rec := httptest.NewRecorder()

		NewGamesHandler(svc)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
