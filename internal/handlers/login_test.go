package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bc99/gaming-platform/internal/models"
	"github.com/bc99/gaming-platform/internal/services"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *MockLoginer)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "successful login",
			body: `{"username":"alice","password":"secret"}`,
			setupMock: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "secret").
					Return(&models.User{ID: 1, Username: "alice", Balance: 1000}, "tok", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"username":"alice","password":"wrong"}`,
			setupMock: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid username or password",
		},
		{
			name: "banned account",
			body: `{"username":"mallory","password":"secret"}`,
			setupMock: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "mallory", "secret").
					Return(nil, "", services.ErrUserBanned)
			},
			wantStatus: http.StatusForbidden,
			wantMsg:    "Account is banned",
		},
		{
			name:       "missing password",
			body:       `{"username":"alice"}`,
			setupMock:  func(m *MockLoginer) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Username and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockLoginer(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			NewLoginHandler(svc)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantMsg != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.wantMsg, resp.Message)
				return
			}

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "session_token", cookies[0].Name)
			assert.Equal(t, "tok", cookies[0].Value)

			var user models.User
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
			assert.Equal(t, "alice", user.Username)
		})
	}
}
