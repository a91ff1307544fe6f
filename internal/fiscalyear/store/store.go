package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/fiscalyear"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanYear(s scanner) (*fiscalyear.FinancialYear, error) {
	var fy fiscalyear.FinancialYear
	if err := s.Scan(&fy.ID, &fy.CompanyID, &fy.StartDate, &fy.EndDate, &fy.Closed, &fy.CreatedAt); err != nil {
		return nil, err
	}

	return &fy, nil
}

const selectYearColumns = `id, company_id, start_date, end_date, closed, created_at`

func (s *Store) Create(ctx context.Context, fy *fiscalyear.FinancialYear) error {
	query := `
		INSERT INTO financial_years (company_id, start_date, end_date, closed, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		fy.CompanyID,
		fy.StartDate,
		fy.EndDate,
	).Scan(&fy.ID, &fy.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating financial year: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, companyID, id uuid.UUID) (*fiscalyear.FinancialYear, error) {
	query := `SELECT ` + selectYearColumns + `
		FROM financial_years
		WHERE company_id = $1 AND id = $2`

	fy, err := scanYear(s.db.QueryRowContext(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fiscalyear.ErrNotFound
		}

		return nil, fmt.Errorf("getting financial year: %w", err)
	}

	return fy, nil
}

func (s *Store) List(ctx context.Context, companyID uuid.UUID) ([]*fiscalyear.FinancialYear, error) {
	query := `SELECT ` + selectYearColumns + `
		FROM financial_years
		WHERE company_id = $1
		ORDER BY start_date ASC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing financial years: %w", err)
	}
	defer rows.Close()

	var years []*fiscalyear.FinancialYear

	for rows.Next() {
		fy, err := scanYear(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning financial year: %w", err)
		}

		years = append(years, fy)
	}

	return years, rows.Err()
}

func (s *Store) SetClosed(ctx context.Context, companyID, id uuid.UUID, closed bool) error {
	query := `
		UPDATE financial_years
		SET closed = $1
		WHERE company_id = $2 AND id = $3
	`

	res, err := s.db.ExecContext(ctx, query, closed, companyID, id)
	if err != nil {
		return fmt.Errorf("setting financial year closed flag: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fiscalyear.ErrNotFound
	}

	return nil
}

func (s *Store) FindCovering(ctx context.Context, companyID uuid.UUID, date time.Time) (*fiscalyear.FinancialYear, error) {
	query := `SELECT ` + selectYearColumns + `
		FROM financial_years
		WHERE company_id = $1 AND start_date <= $2 AND end_date >= $2`

	fy, err := scanYear(s.db.QueryRowContext(ctx, query, companyID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("finding covering financial year: %w", err)
	}

	return fy, nil
}

func (s *Store) HasOverlap(ctx context.Context, companyID uuid.UUID, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM financial_years
			WHERE company_id = $1 AND start_date <= $3 AND end_date >= $2
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, companyID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking range overlap: %w", err)
	}

	return exists, nil
}
