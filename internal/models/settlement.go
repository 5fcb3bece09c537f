package models

// SettlementEvent is the payload published to Kafka after a bet settles.
type SettlementEvent struct {
	SettlementID string  `json:"settlement_id"`
	Timestamp    int64   `json:"timestamp"`
	UserID       int64   `json:"user_id"`
	GameID       int64   `json:"game_id"`
	BetAmount    float64 `json:"bet_amount"`
	WinAmount    float64 `json:"win_amount"`
	NewBalance   float64 `json:"new_balance"`
	IsWin        bool    `json:"is_win"`
}
