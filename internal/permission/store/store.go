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

func (s *Store) HasUserGrant(ctx context.Context, companyID, userID uuid.UUID, permission string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_permissions
			WHERE company_id = $1 AND user_id = $2 AND permission = $3
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, companyID, userID, permission).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking user permission: %w", err)
	}

	return exists, nil
}

func (s *Store) HasRoleGrant(ctx context.Context, companyID uuid.UUID, role, permission string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM role_permissions
			WHERE company_id = $1 AND role = $2 AND permission = $3
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, companyID, role, permission).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking role permission: %w", err)
	}

	return exists, nil
}

func (s *Store) GrantUser(ctx context.Context, companyID, userID uuid.UUID, permission string) error {
	query := `
		INSERT INTO user_permissions (company_id, user_id, permission)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, companyID, userID, permission); err != nil {
		return fmt.Errorf("granting user permission: %w", err)
	}

	return nil
}

func (s *Store) RevokeUser(ctx context.Context, companyID, userID uuid.UUID, permission string) error {
	query := `
		DELETE FROM user_permissions
		WHERE company_id = $1 AND user_id = $2 AND permission = $3
	`

	if _, err := s.db.ExecContext(ctx, query, companyID, userID, permission); err != nil {
		return fmt.Errorf("revoking user permission: %w", err)
	}

	return nil
}

func (s *Store) GrantRole(ctx context.Context, companyID uuid.UUID, role, permission string) error {
	query := `
		INSERT INTO role_permissions (company_id, role, permission)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, companyID, role, permission); err != nil {
		return fmt.Errorf("granting role permission: %w", err)
	}

	return nil
}

func (s *Store) RevokeRole(ctx context.Context, companyID uuid.UUID, role, permission string) error {
	query := `
		DELETE FROM role_permissions
		WHERE company_id = $1 AND role = $2 AND permission = $3
	`

	if _, err := s.db.ExecContext(ctx, query, companyID, role, permission); err != nil {
		return fmt.Errorf("revoking role permission: %w", err)
	}

	return nil
}

func (s *Store) ListUserGrants(ctx context.Context, companyID, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT permission FROM user_permissions
		WHERE company_id = $1 AND user_id = $2
		ORDER BY permission
	`

	return s.listGrants(ctx, query, companyID, userID)
}

func (s *Store) ListRoleGrants(ctx context.Context, companyID uuid.UUID, role string) ([]string, error) {
	query := `
		SELECT permission FROM role_permissions
		WHERE company_id = $1 AND role = $2
		ORDER BY permission
	`

	return s.listGrants(ctx, query, companyID, role)
}

func (s *Store) listGrants(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing grants: %w", err)
	}
	defer rows.Close()

	var grants []string

	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning grant: %w", err)
		}

		grants = append(grants, p)
	}

	return grants, rows.Err()
}
