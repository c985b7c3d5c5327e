package documents

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("documento não encontrado")

// handles saved document database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a generated document persisted for a user
type Document struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"created_at"`
}

// contains data for saving a generated document
type SaveRequest struct {
	UserID  string
	Type    string
	Title   string
	Content string
	Preview string
}
