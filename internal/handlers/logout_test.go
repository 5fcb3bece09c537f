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
)

func TestLogoutHandler(t *testing.T) {
	t.Run("invalidates the session and clears the cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockLogouter(ctrl)
		tokens := NewMockTokenExtractor(ctrl)

		tokens.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		svc.EXPECT().Logout(gomock.Any(), "tok").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		rec := httptest.NewRecorder()

		NewLogoutHandler(svc, tokens)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "session_token", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)

		var resp LogoutResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Logged out successfully", resp.Message)
	})

	t.Run("no token still yields 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockLogouter(ctrl)
		tokens := NewMockTokenExtractor(ctrl)

		tokens.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		rec := httptest.NewRecorder()

		NewLogoutHandler(svc, tokens)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("session store failure yields 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockLogouter(ctrl)
		tokens := NewMockTokenExtractor(ctrl)

		tokens.EXPECT().FromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		svc.EXPECT().Logout(gomock.Any(), "tok").Return(errors.New("redis down"))

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		rec := httptest.NewRecorder()

		NewLogoutHandler(svc, tokens)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
