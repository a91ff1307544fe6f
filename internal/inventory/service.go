package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, companyID, itemID uuid.UUID) (*Item, error)
	ListItems(ctx context.Context, companyID uuid.UUID) ([]Item, error)

	// MovementSums returns the raw summed quantity and quantity*rate value
	// per item, one row per item that has at least one movement.
	MovementSums(ctx context.Context, companyID uuid.UUID) ([]Position, error)

	// MovementSumsByLocation is MovementSums grouped additionally by the
	// movement's location.
	MovementSumsByLocation(ctx context.Context, companyID uuid.UUID) ([]LocationPosition, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateItem(ctx context.Context, companyID uuid.UUID, name, unit, description, barcode string) (*Item, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("company id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("item name is required")
	}

	item := &Item{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Name:        name,
		Unit:        unit,
		Description: description,
		Barcode:     barcode,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return item, nil
}

func (s *Service) GetItem(ctx context.Context, companyID, itemID uuid.UUID) (*Item, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("company id is required")
	}
	return s.repo.GetItem(ctx, companyID, itemID)
}

func (s *Service) ListItems(ctx context.Context, companyID uuid.UUID) ([]Item, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("company id is required")
	}
	return s.repo.ListItems(ctx, companyID)
}

// StockPosition values a single item. An item with no movements has a zero
// position; an unknown item is ErrNotFound.
func (s *Service) StockPosition(ctx context.Context, companyID, itemID uuid.UUID) (*Position, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("company id is required")
	}

	item, err := s.repo.GetItem(ctx, companyID, itemID)
	if err != nil {
		return nil, err
	}

	sums, err := s.repo.MovementSums(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("loading movement sums: %w", err)
	}

	for _, p := range sums {
		if p.ItemID == itemID {
			clamped := clampValue(p)
			return &clamped, nil
		}
	}

	return &Position{
		ItemID:   item.ID,
		ItemName: item.Name,
		Unit:     item.Unit,
		Quantity: decimal.Zero,
		Value:    decimal.Zero,
	}, nil
}

// Positions returns the valued position of every item with movements.
func (s *Service) Positions(ctx context.Context, companyID uuid.UUID) ([]Position, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("company id is required")
	}

	sums, err := s.repo.MovementSums(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("loading movement sums: %w", err)
	}

	positions := make([]Position, len(sums))
	for i, p := range sums {
		positions[i] = clampValue(p)
	}
	return positions, nil
}

// PositionsByLocation breaks positions down per stock location. Zero
// quantity rows are dropped; negative positions are kept so stock
// discrepancies stay visible.
func (s *Service) PositionsByLocation(ctx context.Context, companyID uuid.UUID) ([]LocationPosition, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("company id is required")
	}

	sums, err := s.repo.MovementSumsByLocation(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("loading movement sums by location: %w", err)
	}

	positions := make([]LocationPosition, 0, len(sums))
	for _, p := range sums {
		if p.Quantity.IsZero() {
			continue
		}
		p.Position = clampValue(p.Position)
		positions = append(positions, p)
	}
	return positions, nil
}

// AvailableForSale lists positions with a non-zero on-hand quantity.
func (s *Service) AvailableForSale(ctx context.Context, companyID uuid.UUID) ([]Position, error) {
	all, err := s.Positions(ctx, companyID)
	if err != nil {
		return nil, err
	}

	available := make([]Position, 0, len(all))
	for _, p := range all {
		if p.Quantity.IsZero() {
			continue
		}
		available = append(available, p)
	}
	return available, nil
}

// clampValue zeroes the value of a non-positive position. Stock that is not
// on hand carries no asset value regardless of the raw weighted sum.
func clampValue(p Position) Position {
	if p.Quantity.Sign() <= 0 {
		p.Value = decimal.Zero
	}
	return p
}
