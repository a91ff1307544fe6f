package permission

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=permission
type Repository interface {
	HasUserGrant(ctx context.Context, companyID, userID uuid.UUID, permission string) (bool, error)
	HasRoleGrant(ctx context.Context, companyID uuid.UUID, role, permission string) (bool, error)

	GrantUser(ctx context.Context, companyID, userID uuid.UUID, permission string) error
	RevokeUser(ctx context.Context, companyID, userID uuid.UUID, permission string) error
	GrantRole(ctx context.Context, companyID uuid.UUID, role, permission string) error
	RevokeRole(ctx context.Context, companyID uuid.UUID, role, permission string) error

	ListUserGrants(ctx context.Context, companyID, userID uuid.UUID) ([]string, error)
	ListRoleGrants(ctx context.Context, companyID uuid.UUID, role string) ([]string, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authorize decides whether (user, role) may perform permission within
// companyID. Checks short-circuit in order: admin role allows everything;
// a missing user or company denies; then per-user grants, then role grants.
// User grants add to role grants, they never replace them, and every grant
// is scoped to one company.
func (s *Service) Authorize(ctx context.Context, userID uuid.UUID, role string, companyID uuid.UUID, permission string) error {
	if role == RoleAdmin {
		return nil
	}

	if companyID == uuid.Nil || userID == uuid.Nil {
		return ErrForbidden
	}

	granted, err := s.repo.HasUserGrant(ctx, companyID, userID, permission)
	if err != nil {
		return fmt.Errorf("checking user grant: %w", err)
	}

	if granted {
		return nil
	}

	granted, err = s.repo.HasRoleGrant(ctx, companyID, role, permission)
	if err != nil {
		return fmt.Errorf("checking role grant: %w", err)
	}

	if granted {
		return nil
	}

	return ErrForbidden
}

func (s *Service) GrantUser(ctx context.Context, companyID, userID uuid.UUID, permission string) error {
	return s.repo.GrantUser(ctx, companyID, userID, permission)
}

func (s *Service) RevokeUser(ctx context.Context, companyID, userID uuid.UUID, permission string) error {
	return s.repo.RevokeUser(ctx, companyID, userID, permission)
}

func (s *Service) GrantRole(ctx context.Context, companyID uuid.UUID, role, permission string) error {
	return s.repo.GrantRole(ctx, companyID, role, permission)
}

func (s *Service) RevokeRole(ctx context.Context, companyID uuid.UUID, role, permission string) error {
	return s.repo.RevokeRole(ctx, companyID, role, permission)
}

func (s *Service) ListUserGrants(ctx context.Context, companyID, userID uuid.UUID) ([]string, error) {
	return s.repo.ListUserGrants(ctx, companyID, userID)
}

func (s *Service) ListRoleGrants(ctx context.Context, companyID uuid.UUID, role string) ([]string, error) {
	return s.repo.ListRoleGrants(ctx, companyID, role)
}
