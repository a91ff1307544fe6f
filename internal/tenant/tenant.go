package tenant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTenantRequired means no company context could be resolved for the request.
	ErrTenantRequired = errors.New("no company context resolvable")
	ErrNotFound       = errors.New("company not found")
)

// PlanTier is the subscription plan a company signed up for.
type PlanTier string

const (
	PlanFree     PlanTier = "free"
	PlanStandard PlanTier = "standard"
	PlanPremium  PlanTier = "premium"
)

// SubscriptionStatus is a soft lifecycle state. Companies are never hard-deleted.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionSuspended SubscriptionStatus = "suspended"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Company is the tenant root. Every other entity is owned by a company.
type Company struct {
	ID                 uuid.UUID
	Name               string
	PlanTier           PlanTier
	SubscriptionStatus SubscriptionStatus
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Affiliation links a user to a company with a role. A user may belong to
// several companies; at most one affiliation is marked as the default.
type Affiliation struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      string
	IsDefault bool
}
