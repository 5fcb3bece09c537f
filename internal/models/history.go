package models

import "time"

// GameHistoryDB represents a single settlement row in the append-only ledger.
type GameHistoryDB struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	GameID    int64     `db:"game_id"`
	BetAmount float64   `db:"bet_amount"`
	WinAmount float64   `db:"win_amount"`
	PlayedAt  time.Time `db:"played_at"`
}

// HistoryEntryDB is a ledger row joined with the game name for display.
type HistoryEntryDB struct {
	GameHistoryDB
	GameName string `db:"game_name"`
}

// HistoryEntry is the API view of a ledger row. IsWin and Delta are a pure
// presentation transform over the stored amounts.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	GameID    int64     `json:"game_id"`
	GameName  string    `json:"game_name"`
	BetAmount float64   `json:"bet_amount"`
	WinAmount float64   `json:"win_amount"`
	IsWin     bool      `json:"is_win"`
	Delta     float64   `json:"delta"`
	PlayedAt  time.Time `json:"played_at"`
}

// Public converts the joined row to its API representation.
func (h *HistoryEntryDB) Public() HistoryEntry {
	return HistoryEntry{
		ID:        h.ID,
		UserID:    h.UserID,
		GameID:    h.GameID,
		GameName:  h.GameName,
		BetAmount: h.BetAmount,
		WinAmount: h.WinAmount,
		IsWin:     h.WinAmount > h.BetAmount,
		Delta:     h.WinAmount - h.BetAmount,
		PlayedAt:  h.PlayedAt,
	}
}
