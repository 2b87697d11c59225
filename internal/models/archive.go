package models

import (
	"time"

	"github.com/google/uuid"
)

// ArchivedGame is one finished game as stored in Postgres.
type ArchivedGame struct {
	ID        uuid.UUID `db:"id" json:"id"`
	WhiteJob  string    `db:"white_job" json:"white_job"`
	BlackJob  string    `db:"black_job" json:"black_job"`
	Winner    string    `db:"winner" json:"winner"`
	Plies     int       `db:"plies" json:"plies"`
	Record    string    `db:"record" json:"record"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ArchiveStats summarizes the archived games.
type ArchiveStats struct {
	TotalGames int     `db:"total_games" json:"total_games"`
	WhiteWins  int     `db:"white_wins" json:"white_wins"`
	BlackWins  int     `db:"black_wins" json:"black_wins"`
	AvgPlies   float64 `db:"avg_plies" json:"avg_plies"`
}
