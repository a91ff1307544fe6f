package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/tenant"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCompany(ctx context.Context, c *tenant.Company) error {
	query := `
		INSERT INTO companies (name, plan_tier, subscription_status, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.PlanTier,
		c.SubscriptionStatus,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating company: %w", err)
	}

	return nil
}

func (s *Store) GetCompany(ctx context.Context, id uuid.UUID) (*tenant.Company, error) {
	query := `
		SELECT id, name, plan_tier, subscription_status, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var c tenant.Company

	var tier, status string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &tier, &status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tenant.ErrNotFound
		}

		return nil, fmt.Errorf("getting company: %w", err)
	}

	c.PlanTier = tenant.PlanTier(tier)
	c.SubscriptionStatus = tenant.SubscriptionStatus(status)

	return &c, nil
}

func (s *Store) UpdateSubscription(ctx context.Context, id uuid.UUID, status tenant.SubscriptionStatus) error {
	query := `
		UPDATE companies
		SET subscription_status = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating subscription: %w", err)
	}

	return nil
}

// DefaultCompany returns the company marked as the user's default affiliation,
// or the zero uuid when none is marked.
func (s *Store) DefaultCompany(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	query := `
		SELECT company_id
		FROM user_companies
		WHERE user_id = $1 AND is_default = TRUE
	`

	var companyID uuid.UUID

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, nil
		}

		return uuid.Nil, fmt.Errorf("getting default company: %w", err)
	}

	return companyID, nil
}

func (s *Store) Affiliations(ctx context.Context, userID uuid.UUID) ([]tenant.Affiliation, error) {
	query := `
		SELECT user_id, company_id, role, is_default
		FROM user_companies
		WHERE user_id = $1
		ORDER BY company_id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing affiliations: %w", err)
	}
	defer rows.Close()

	var affiliations []tenant.Affiliation

	for rows.Next() {
		var a tenant.Affiliation
		if err := rows.Scan(&a.UserID, &a.CompanyID, &a.Role, &a.IsDefault); err != nil {
			return nil, fmt.Errorf("scanning affiliation: %w", err)
		}

		affiliations = append(affiliations, a)
	}

	return affiliations, rows.Err()
}

func (s *Store) AddAffiliation(ctx context.Context, a tenant.Affiliation) error {
	query := `
		INSERT INTO user_companies (user_id, company_id, role, is_default)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, company_id) DO UPDATE SET role = EXCLUDED.role
	`

	_, err := s.db.ExecContext(ctx, query, a.UserID, a.CompanyID, a.Role, a.IsDefault)
	if err != nil {
		return fmt.Errorf("adding affiliation: %w", err)
	}

	return nil
}

// SetDefault marks one affiliation as the user's default and clears any
// previous default in the same statement batch.
func (s *Store) SetDefault(ctx context.Context, userID, companyID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE user_companies SET is_default = FALSE WHERE user_id = $1`, userID,
	); err != nil {
		return fmt.Errorf("clearing default affiliation: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE user_companies SET is_default = TRUE WHERE user_id = $1 AND company_id = $2`,
		userID, companyID,
	)
	if err != nil {
		return fmt.Errorf("setting default affiliation: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return tenant.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing default affiliation: %w", err)
	}

	return nil
}
