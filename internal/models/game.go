package models

// GameDB represents a game catalog row.
type GameDB struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	ImagePath string `db:"image_path"`
}

// Game is the public view of a catalog entry.
type Game struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"image_path"`
}

// Public converts the row to its API representation.
func (g *GameDB) Public() Game {
	return Game{ID: g.ID, Name: g.Name, ImagePath: g.ImagePath}
}
