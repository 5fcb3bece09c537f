package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bc99/gaming-platform/internal/models"
)

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		setupMock  func(users *MockUserGetter)
		wantStatus int
	}{
		{
			name:   "admin passes through",
			userID: 1,
			setupMock: func(users *MockUserGetter) {
				users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{ID: 1, IsAdmin: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "non-admin rejected",
			userID: 2,
			setupMock: func(users *MockUserGetter) {
				users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.UserDB{ID: 2, IsAdmin: false}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "vanished user rejected",
			userID: 3,
			setupMock: func(users *MockUserGetter) {
				users.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing context user",
			userID:     0,
			setupMock:  func(users *MockUserGetter) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "store failure",
			userID: 4,
			setupMock: func(users *MockUserGetter) {
				users.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := NewMockUserGetter(ctrl)
			tt.setupMock(users)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			if tt.userID != 0 {
				req = req.WithContext(SetUserIDToContext(req.Context(), tt.userID))
			}
			rec := httptest.NewRecorder()

			AdminMiddleware(users)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
