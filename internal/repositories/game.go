package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bc99/gaming-platform/internal/logger"
	"github.com/bc99/gaming-platform/internal/models"
)

// GameRepository handles the static game catalog.
type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

// List returns the game catalog.
func (r *GameRepository) List(ctx context.Context) ([]models.GameDB, error) {
	const query = `
		SELECT id, name, image_path
		FROM games
		ORDER BY id ASC
	`

	var games []models.GameDB
	if err := r.db.SelectContext(ctx, &games, query); err != nil {
		return nil, err
	}
	return games, nil
}

// Seed inserts the fixed catalog when the table is empty. Called once at
// startup; a populated table is left untouched.
func (r *GameRepository) Seed(ctx context.Context) error {
	const query = `
		INSERT INTO games (name, image_path)
		SELECT v.name, v.image_path
		FROM (VALUES
			('BC99 Wingo', 'attached_assets/wingo.png'),
			('BC99 Aviator', 'attached_assets/avaitor.png'),
			('BC99 Slots', 'attached_assets/slots.png')
		) AS v(name, image_path)
		WHERE NOT EXISTS (SELECT 1 FROM games)
	`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("game catalog seed", "inserted", rowsAffected, "error", err)
	return err
}
