package tenant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=tenant
type Repository interface {
	CreateCompany(ctx context.Context, c *Company) error
	GetCompany(ctx context.Context, id uuid.UUID) (*Company, error)
	UpdateSubscription(ctx context.Context, id uuid.UUID, status SubscriptionStatus) error

	DefaultCompany(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	Affiliations(ctx context.Context, userID uuid.UUID) ([]Affiliation, error)
	AddAffiliation(ctx context.Context, a Affiliation) error
	SetDefault(ctx context.Context, userID, companyID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve derives the active company for a request. An explicit company id
// always wins, whether or not the user is affiliated with it; checking that
// the caller may act on it is the permission resolver's job. With no explicit
// id the user's default affiliation is used. A zero uuid means "absent".
func (s *Service) Resolve(ctx context.Context, explicit, userID uuid.UUID) (uuid.UUID, error) {
	if explicit != uuid.Nil {
		return explicit, nil
	}

	if userID == uuid.Nil {
		return uuid.Nil, ErrTenantRequired
	}

	companyID, err := s.repo.DefaultCompany(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("looking up default company: %w", err)
	}

	if companyID == uuid.Nil {
		return uuid.Nil, ErrTenantRequired
	}

	return companyID, nil
}

type CreateCompanyParams struct {
	Name     string
	PlanTier PlanTier
}

// CreateCompany creates a new tenant root in the active subscription state.
func (s *Service) CreateCompany(ctx context.Context, params CreateCompanyParams) (*Company, error) {
	c := &Company{
		Name:               params.Name,
		PlanTier:           params.PlanTier,
		SubscriptionStatus: SubscriptionActive,
	}
	if err := s.repo.CreateCompany(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Company, error) {
	return s.repo.GetCompany(ctx, id)
}

func (s *Service) UpdateSubscription(ctx context.Context, id uuid.UUID, status SubscriptionStatus) error {
	return s.repo.UpdateSubscription(ctx, id, status)
}

func (s *Service) Affiliations(ctx context.Context, userID uuid.UUID) ([]Affiliation, error) {
	return s.repo.Affiliations(ctx, userID)
}

func (s *Service) AddAffiliation(ctx context.Context, a Affiliation) error {
	return s.repo.AddAffiliation(ctx, a)
}

func (s *Service) SetDefault(ctx context.Context, userID, companyID uuid.UUID) error {
	return s.repo.SetDefault(ctx, userID, companyID)
}
