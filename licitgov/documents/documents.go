package documents

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new document repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanDocument(row pgx.Row) (*Document, error) {
	var doc Document

	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Type,
		&doc.Title,
		&doc.Content,
		&doc.Preview,
		&doc.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &doc, nil
}

// persists a generated document for a user
func (r *Repository) Save(ctx context.Context, req SaveRequest) (*Document, error) {
	return scanDocument(r.db.QueryRow(
		ctx,
		querySave,
		req.UserID,
		req.Type,
		req.Title,
		req.Content,
		req.Preview,
	))
}

// lists a user's documents, newest first
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*Document, error) {
	rows, err := r.db.Query(ctx, queryListByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Document

	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, doc)
	}

	return list, rows.Err()
}

// fetches one of the user's documents by ID
func (r *Repository) Get(ctx context.Context, docID, userID string) (*Document, error) {
	return scanDocument(r.db.QueryRow(ctx, queryGet, docID, userID))
}

// deletes one of the user's documents
func (r *Repository) Delete(ctx context.Context, docID, userID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, docID, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// counts documents across all users
func (r *Repository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, queryCountAll).Scan(&count)
	return count, err
}
