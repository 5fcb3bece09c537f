package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bc99/gaming-platform/internal/middlewares"
	"github.com/bc99/gaming-platform/internal/models"
	"github.com/bc99/gaming-platform/internal/services"
)

func TestUserHandler(t *testing.T) {
	t.Run("returns the current user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockCurrentUserProvider(ctrl)
		svc.EXPECT().
			CurrentUser(gomock.Any(), int64(1)).
			Return(&models.User{ID: 1, UID: "12345", Username: "alice", Balance: 850}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), 1))
		rec := httptest.NewRecorder()

		NewUserHandler(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var user models.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, float64(850), user.Balance)
	})

	t.Run("missing context user yields 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockCurrentUserProvider(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		rec := httptest.NewRecorder()

		NewUserHandler(svc)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted user yields 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockCurrentUserProvider(ctrl)
		svc.EXPECT().CurrentUser(gomock.Any(), int64(1)).Return(nil, services.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), 1))
		rec := httptest.NewRecorder()

		NewUserHandler(svc)(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
