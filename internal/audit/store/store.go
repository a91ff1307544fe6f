package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, companyID, userID uuid.UUID, action, details string) error {
	query := `
		INSERT INTO activity_logs (id, company_id, user_id, action, details)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := s.db.ExecContext(ctx, query, uuid.New(), companyID, userID, action, details); err != nil {
		return fmt.Errorf("inserting activity log: %w", err)
	}

	return nil
}
