package services

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
)

var (
	// ErrInvalidBet is returned when the bet amount is zero or negative.
	ErrInvalidBet = errors.New("invalid bet amount")
	// ErrInsufficientBalance is returned when the bet exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrUserNotFound is returned when the settling user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// winMultiplier is the fixed payout on a winning bet.
const winMultiplier = 2

// UserGetter loads a user by id.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// BalanceUpdater applies a signed delta to a user's balance.
type BalanceUpdater interface {
	UpdateBalance(ctx context.Context, id int64, delta float64) (*models.UserDB, error)
}

// HistoryWriter appends settlements to the ledger.
type HistoryWriter interface {
	Save(ctx context.Context, userID, gameID int64, betAmount, winAmount float64) (*models.GameHistoryDB, error)
}

// HistoryReader reads the settlement ledger.
type HistoryReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.HistoryEntryDB, error)
}

// GameLister lists the game catalog.
type GameLister interface {
	List(ctx context.Context) ([]models.GameDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PlayResult is the outcome of one settled bet.
type PlayResult struct {
	IsWin      bool
	WinAmount  float64
	NewBalance float64
}

// GameService settles bets and serves the catalog and ledger views.
type GameService struct {
	users       UserGetter
	balances    BalanceUpdater
	histWriter  HistoryWriter
	histReader  HistoryReader
	games       GameLister
	kafkaWriter KafkaWriter
	draw        func() float64
}

// NewGameService creates a new GameService. A nil draw falls back to a
// uniform draw over [0,1).
func NewGameService(
	users UserGetter,
	balances BalanceUpdater,
	histWriter HistoryWriter,
	histReader HistoryReader,
	games GameLister,
	kafkaWriter KafkaWriter,
	draw func() float64,
) *GameService {
	if draw == nil {
		draw = rand.Float64
	}
	return &GameService{
		users:       users,
		balances:    balances,
		histWriter:  histWriter,
		histReader:  histReader,
		games:       games,
		kafkaWriter: kafkaWriter,
		draw:        draw,
	}
}

// Play settles a single bet: validates funds, draws a 50/50 outcome with a
// fixed 2x payout, applies the balance delta, and appends the settlement to
// the ledger. The two writes run inside the request's transaction, so they
// commit or roll back together. A failed validation mutates nothing.
func (s *GameService) Play(ctx context.Context, userID, gameID int64, betAmount float64) (*PlayResult, error) {
	if betAmount <= 0 {
		return nil, ErrInvalidBet
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for settlement", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if user.Balance < betAmount {
		return nil, ErrInsufficientBalance
	}

	isWin := s.draw() > 0.5
	var winAmount float64
	if isWin {
		winAmount = betAmount * winMultiplier
	}
	delta := winAmount - betAmount

	updated, err := s.balances.UpdateBalance(ctx, userID, delta)
	if err != nil {
		logger.Log.Errorw("failed to update balance", "user_id", userID, "delta", delta, "error", err)
		return nil, err
	}
	if updated == nil {
		// A concurrent settlement drained the balance between the read
		// and the guarded update.
		return nil, ErrInsufficientBalance
	}

	if _, err := s.histWriter.Save(ctx, userID, gameID, betAmount, winAmount); err != nil {
		logger.Log.Errorw("failed to record settlement", "user_id", userID, "game_id", gameID, "error", err)
		return nil, err
	}

	s.publishSettlement(ctx, models.SettlementEvent{
		SettlementID: uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		UserID:       userID,
		GameID:       gameID,
		BetAmount:    betAmount,
		WinAmount:    winAmount,
		NewBalance:   updated.Balance,
		IsWin:        isWin,
	})

	return &PlayResult{
		IsWin:      isWin,
		WinAmount:  winAmount,
		NewBalance: updated.Balance,
	}, nil
}

// ListGames returns the game catalog.
func (s *GameService) ListGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list games", "error", err)
		return nil, err
	}

	out := make([]models.Game, 0, len(games))
	for i := range games {
		out = append(out, games[i].Public())
	}
	return out, nil
}

// History returns the user's most recent settlements, newest first.
func (s *GameService) History(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	entries, err := s.histReader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to query history", "user_id", userID, "error", err)
		return nil, err
	}

	out := make([]models.HistoryEntry, 0, len(entries))
	for i := range entries {
		out = append(out, entries[i].Public())
	}
	return out, nil
}

// publishSettlement publishes a settlement event to Kafka, best effort.
func (s *GameService) publishSettlement(ctx context.Context, event models.SettlementEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "settlement_id", event.SettlementID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal settlement event", "settlement_id", event.SettlementID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.SettlementID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish settlement event", "settlement_id", event.SettlementID, "error", err)
	} else {
		logger.Log.Infow("settlement event published", "settlement_id", event.SettlementID, "user_id", event.UserID)
	}
}
