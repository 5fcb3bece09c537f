package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bc99/gaming-platform/internal/models"
)

type gameMocks struct {
	users      *MockUserGetter
	balances   *MockBalanceUpdater
	histWriter *MockHistoryWriter
	histReader *MockHistoryReader
	games      *MockGameLister
}

func newGameMocks(t *testing.T) (*gomock.Controller, gameMocks) {
	ctrl := gomock.NewController(t)
	return ctrl, gameMocks{
		users:      NewMockUserGetter(ctrl),
		balances:   NewMockBalanceUpdater(ctrl),
		histWriter: NewMockHistoryWriter(ctrl),
		histReader: NewMockHistoryReader(ctrl),
		games:      NewMockGameLister(ctrl),
	}
}

func (m gameMocks) service(draw func() float64) *GameService {
	return NewGameService(m.users, m.balances, m.histWriter, m.histReader, m.games, nil, draw)
}

func TestGameService_Play_Win(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	m.users.EXPECT().GetByID(ctx, int64(1)).Return(&models.UserDB{ID: 1, Balance: 500}, nil)
	m.balances.EXPECT().UpdateBalance(ctx, int64(1), float64(100)).Return(&models.UserDB{ID: 1, Balance: 600}, nil)
	m.histWriter.EXPECT().Save(ctx, int64(1), int64(2), float64(100), float64(200)).Return(&models.GameHistoryDB{ID: 10}, nil)

	svc := m.service(func() float64 { return 0.9 })
	result, err := svc.Play(ctx, 1, 2, 100)

	require.NoError(t, err)
	assert.True(t, result.IsWin)
	assert.Equal(t, float64(200), result.WinAmount)
	assert.Equal(t, float64(600), result.NewBalance)
}

func TestGameService_Play_Loss(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	m.users.EXPECT().GetByID(ctx, int64(1)).Return(&models.UserDB{ID: 1, Balance: 500}, nil)
	m.balances.EXPECT().UpdateBalance(ctx, int64(1), float64(-100)).Return(&models.UserDB{ID: 1, Balance: 400}, nil)
	m.histWriter.EXPECT().Save(ctx, int64(1), int64(2), float64(100), float64(0)).Return(&models.GameHistoryDB{ID: 11}, nil)

	svc := m.service(func() float64 { return 0.1 })
	result, err := svc.Play(ctx, 1, 2, 100)

	require.NoError(t, err)
	assert.False(t, result.IsWin)
	assert.Equal(t, float64(0), result.WinAmount)
	assert.Equal(t, float64(400), result.NewBalance)
}

func TestGameService_Play_BoundaryDrawLoses(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	m.users.EXPECT().GetByID(ctx, int64(1)).Return(&models.UserDB{ID: 1, Balance: 500}, nil)
	m.balances.EXPECT().UpdateBalance(ctx, int64(1), float64(-100)).Return(&models.UserDB{ID: 1, Balance: 400}, nil)
	m.histWriter.EXPECT().Save(ctx, int64(1), int64(2), float64(100), float64(0)).Return(&models.GameHistoryDB{ID: 12}, nil)

	// a draw of exactly 0.5 is a loss, win requires draw > 0.5
	svc := m.service(func() float64 { return 0.5 })
	result, err := svc.Play(ctx, 1, 2, 100)

	require.NoError(t, err)
	assert.False(t, result.IsWin)
}

func TestGameService_Play_InvalidBet(t *testing.T) {
	for _, bet := range []float64{0, -50} {
		ctrl, m := newGameMocks(t)

		svc := m.service(nil)
		result, err := svc.Play(context.Background(), 1, 2, bet)

		assert.ErrorIs(t, err, ErrInvalidBet)
		assert.Nil(t, result)
		ctrl.Finish()
	}
}

func TestGameService_Play_InsufficientBalance(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	m.users.EXPECT().GetByID(ctx, int64(1)).Return(&models.UserDB{ID: 1, Balance: 50}, nil)

	svc := m.service(nil)
	result, err := svc.Play(ctx, 1, 2, 100)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Nil(t, result)
}

func TestGameService_Play_UserNotFound(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	m.users.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)

	svc := m.service(nil)
	result, err := svc.Play(ctx, 99, 2, 100)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, result)
}

func TestGameService_Play_ConcurrentDrain(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	m.users.EXPECT().GetByID(ctx, int64(1)).Return(&models.UserDB{ID: 1, Balance: 100}, nil)
	// the guarded update finds no row: another settlement spent the
	// balance after our read
	m.balances.EXPECT().UpdateBalance(ctx, int64(1), float64(-100)).Return(nil, nil)

	svc := m.service(func() float64 { return 0.1 })
	result, err := svc.Play(ctx, 1, 2, 100)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Nil(t, result)
}

func TestGameService_Play_PublishesSettlement(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	writer := NewMockKafkaWriter(ctrl)

	m.users.EXPECT().GetByID(ctx, int64(1)).Return(&models.UserDB{ID: 1, Balance: 500}, nil)
	m.balances.EXPECT().UpdateBalance(ctx, int64(1), float64(100)).Return(&models.UserDB{ID: 1, Balance: 600}, nil)
	m.histWriter.EXPECT().Save(ctx, int64(1), int64(2), float64(100), float64(200)).Return(&models.GameHistoryDB{ID: 13}, nil)
	writer.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

	svc := NewGameService(m.users, m.balances, m.histWriter, m.histReader, m.games, writer, func() float64 { return 0.9 })
	_, err := svc.Play(ctx, 1, 2, 100)

	require.NoError(t, err)
}

func TestGameService_Play_PublishFailureDoesNotFailSettlement(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	writer := NewMockKafkaWriter(ctrl)

	m.users.EXPECT().GetByID(ctx, int64(1)).Return(&models.UserDB{ID: 1, Balance: 500}, nil)
	m.balances.EXPECT().UpdateBalance(ctx, int64(1), float64(-100)).Return(&models.UserDB{ID: 1, Balance: 400}, nil)
	m.histWriter.EXPECT().Save(ctx, int64(1), int64(2), float64(100), float64(0)).Return(&models.GameHistoryDB{ID: 14}, nil)
	writer.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

	svc := NewGameService(m.users, m.balances, m.histWriter, m.histReader, m.games, writer, func() float64 { return 0.1 })
	result, err := svc.Play(ctx, 1, 2, 100)

	require.NoError(t, err)
	assert.Equal(t, float64(400), result.NewBalance)
}

func TestGameService_ListGames(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	m.games.EXPECT().List(ctx).Return([]models.GameDB{
		{ID: 1, Name: "BC99 Wingo", ImagePath: "/attached_assets/wingo.png"},
		{ID: 2, Name: "BC99 Aviator", ImagePath: "/attached_assets/avaitor.png"},
	}, nil)

	svc := m.service(nil)
	games, err := svc.ListGames(ctx)

	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "BC99 Wingo", games[0].Name)
	assert.Equal(t, "BC99 Aviator", games[1].Name)
}

func TestGameService_History(t *testing.T) {
	ctrl, m := newGameMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Now()
	m.histReader.EXPECT().ListByUserID(ctx, int64(1)).Return([]models.HistoryEntryDB{
		{GameHistoryDB: models.GameHistoryDB{ID: 2, UserID: 1, GameID: 1, BetAmount: 100, WinAmount: 200, PlayedAt: now}, GameName: "BC99 Wingo"},
		{GameHistoryDB: models.GameHistoryDB{ID: 1, UserID: 1, GameID: 1, BetAmount: 50, WinAmount: 0, PlayedAt: now.Add(-time.Minute)}, GameName: "BC99 Wingo"},
	}, nil)

	svc := m.service(nil)
	entries, err := svc.History(ctx, 1)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.True(t, entries[0].IsWin)
	assert.Equal(t, float64(100), entries[0].Delta)
	assert.False(t, entries[1].IsWin)
	assert.Equal(t, float64(-50), entries[1].Delta)
	assert.Equal(t, "BC99 Wingo", entries[0].GameName)
}
