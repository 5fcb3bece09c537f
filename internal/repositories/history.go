package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
)

// historyLimit caps how many ledger entries a history query returns.
const historyLimit = 20

// HistoryWriteRepository appends settlement rows to the ledger.
type HistoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewHistoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *HistoryWriteRepository {
	return &HistoryWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one settlement to the ledger with a server-assigned
// timestamp. Rows are never updated or deleted.
func (r *HistoryWriteRepository) Save(ctx context.Context, userID, gameID int64, betAmount, winAmount float64) (*models.GameHistoryDB, error) {
	const query = `
		INSERT INTO game_history (user_id, game_id, bet_amount, win_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, game_id, bet_amount, win_amount, played_at
	`
	args := []any{userID, gameID, betAmount, winAmount}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var entry models.GameHistoryDB
	err := sqlx.GetContext(ctx, executor, &entry, query, args...)

	logger.Log.Infow("history insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// HistoryReadRepository reads the settlement ledger.
type HistoryReadRepository struct {
	db *sqlx.DB
}

func NewHistoryReadRepository(db *sqlx.DB) *HistoryReadRepository {
	return &HistoryReadRepository{db: db}
}

// ListByUserID returns the user's most recent settlements joined with the
// game name, newest first, capped at historyLimit entries.
func (r *HistoryReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.HistoryEntryDB, error) {
	const query = `
		SELECT h.id, h.user_id, h.game_id, h.bet_amount, h.win_amount, h.played_at,
		       g.name AS game_name
		FROM game_history h
		JOIN games g ON g.id = h.game_id
		WHERE h.user_id = $1
		ORDER BY h.played_at DESC
		LIMIT $2
	`

	var entries []models.HistoryEntryDB
	err := r.db.SelectContext(ctx, &entries, query, userID, historyLimit)

	logger.Log.Debugw("history query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, historyLimit},
		"rows", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
