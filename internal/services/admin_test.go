package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bc99/gaming-platform/internal/models"
)

func newAdminMocks(t *testing.T) (*gomock.Controller, *MockUserLister, *MockUserModerator, *MockHistoryReader) {
	ctrl := gomock.NewController(t)
	return ctrl, NewMockUserLister(ctrl), NewMockUserModerator(ctrl), NewMockHistoryReader(ctrl)
}

func TestAdminService_ListUsers(t *testing.T) {
	ctrl, reader, writer, history := newAdminMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	reader.EXPECT().List(ctx).Return([]models.UserDB{
		{ID: 1, Username: "alice", PasswordHash: "hash1", Balance: 1000},
		{ID: 2, Username: "bob", PasswordHash: "hash2", Balance: 700, IsBanned: true},
	}, nil)

	svc := NewAdminService(reader, writer, history)
	users, err := svc.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.True(t, users[1].IsBanned)
}

func TestAdminService_AdjustBalance(t *testing.T) {
	tests := []struct {
		name     string
		existing *models.UserDB
		updated  *models.UserDB
		wantErr  error
	}{
		{
			name:     "success",
			existing: &models.UserDB{ID: 1, Balance: 1000},
			updated:  &models.UserDB{ID: 1, Balance: 1500},
		},
		{
			name:     "user not found",
			existing: nil,
			wantErr:  ErrUserNotFound,
		},
		{
			name:     "balance would go negative",
			existing: &models.UserDB{ID: 1, Balance: 100},
			updated:  nil,
			wantErr:  ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, reader, writer, history := newAdminMocks(t)
			defer ctrl.Finish()

			ctx := context.Background()
			reader.EXPECT().GetByID(ctx, int64(1)).Return(tt.existing, nil)
			if tt.existing != nil {
				writer.EXPECT().UpdateBalance(ctx, int64(1), float64(500)).Return(tt.updated, nil)
			}

			svc := NewAdminService(reader, writer, history)
			user, err := svc.AdjustBalance(ctx, 1, 500)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, float64(1500), user.Balance)
		})
	}
}

func TestAdminService_SetBanStatus(t *testing.T) {
	ctrl, reader, writer, history := newAdminMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	writer.EXPECT().UpdateBanStatus(ctx, int64(2), true).Return(&models.UserDB{ID: 2, IsBanned: true}, nil)

	svc := NewAdminService(reader, writer, history)
	user, err := svc.SetBanStatus(ctx, 2, true)

	require.NoError(t, err)
	assert.True(t, user.IsBanned)
}

func TestAdminService_SetBanStatus_NotFound(t *testing.T) {
	ctrl, reader, writer, history := newAdminMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	writer.EXPECT().UpdateBanStatus(ctx, int64(99), true).Return(nil, nil)

	svc := NewAdminService(reader, writer, history)
	user, err := svc.SetBanStatus(ctx, 99, true)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestAdminService_UserHistory(t *testing.T) {
	ctrl, reader, writer, history := newAdminMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	history.EXPECT().ListByUserID(ctx, int64(1)).Return([]models.HistoryEntryDB{
		{GameHistoryDB: models.GameHistoryDB{ID: 5, UserID: 1, GameID: 1, BetAmount: 100, WinAmount: 200}, GameName: "BC99 Slots"},
	}, nil)

	svc := NewAdminService(reader, writer, history)
	entries, err := svc.UserHistory(ctx, 1)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsWin)
}

func TestAdminService_UserHistory_StoreError(t *testing.T) {
	ctrl, reader, writer, history := newAdminMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	storeErr := errors.New("db down")
	history.EXPECT().ListByUserID(ctx, int64(1)).Return(nil, storeErr)

	svc := NewAdminService(reader, writer, history)
	entries, err := svc.UserHistory(ctx, 1)

	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, entries)
}
