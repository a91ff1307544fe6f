package fiscalyear

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fiscalyear
type Repository interface {
	Create(ctx context.Context, fy *FinancialYear) error
	Get(ctx context.Context, companyID, id uuid.UUID) (*FinancialYear, error)
	List(ctx context.Context, companyID uuid.UUID) ([]*FinancialYear, error)
	SetClosed(ctx context.Context, companyID, id uuid.UUID, closed bool) error

	// FindCovering returns the financial year whose range contains the date,
	// or nil when no record covers it.
	FindCovering(ctx context.Context, companyID uuid.UUID, date time.Time) (*FinancialYear, error)
	// HasOverlap reports whether any financial year of the company intersects
	// [start, end].
	HasOverlap(ctx context.Context, companyID uuid.UUID, start, end time.Time) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EnsureOpen fails with a *PeriodClosedError when a closed financial year
// covers the date. A date no financial year covers is open; absence of a
// period record is not a lock. The check is keyed on the business date of
// the mutation, never on the wall clock of the write.
func (s *Service) EnsureOpen(ctx context.Context, companyID uuid.UUID, date time.Time) error {
	fy, err := s.repo.FindCovering(ctx, companyID, date)
	if err != nil {
		return fmt.Errorf("finding covering financial year: %w", err)
	}

	if fy != nil && fy.Closed {
		return &PeriodClosedError{
			CompanyID: companyID,
			Date:      date,
			StartDate: fy.StartDate,
			EndDate:   fy.EndDate,
		}
	}

	return nil
}

type CreateParams struct {
	CompanyID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// Create records a new financial year. Ranges of one company must not
// overlap; years are created open.
func (s *Service) Create(ctx context.Context, params CreateParams) (*FinancialYear, error) {
	if !params.EndDate.After(params.StartDate) {
		return nil, fmt.Errorf("end date %s not after start date %s",
			params.EndDate.Format(time.DateOnly), params.StartDate.Format(time.DateOnly))
	}

	overlap, err := s.repo.HasOverlap(ctx, params.CompanyID, params.StartDate, params.EndDate)
	if err != nil {
		return nil, fmt.Errorf("checking range overlap: %w", err)
	}

	if overlap {
		return nil, ErrOverlap
	}

	fy := &FinancialYear{
		CompanyID: params.CompanyID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	if err := s.repo.Create(ctx, fy); err != nil {
		return nil, err
	}

	return fy, nil
}

func (s *Service) Close(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.SetClosed(ctx, companyID, id, true)
}

func (s *Service) Reopen(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.SetClosed(ctx, companyID, id, false)
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*FinancialYear, error) {
	return s.repo.Get(ctx, companyID, id)
}

func (s *Service) List(ctx context.Context, companyID uuid.UUID) ([]*FinancialYear, error) {
	return s.repo.List(ctx, companyID)
}
