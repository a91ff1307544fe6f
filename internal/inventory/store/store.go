package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/inventory"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*inventory.Item, error) {
	var item inventory.Item
	err := s.Scan(
		&item.ID,
		&item.CompanyID,
		&item.Name,
		&item.Unit,
		&item.Description,
		&item.Barcode,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateItem(ctx context.Context, item *inventory.Item) error {
	query := `
		INSERT INTO items (id, company_id, name, unit, description, barcode)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query,
		item.ID,
		item.CompanyID,
		item.Name,
		item.Unit,
		item.Description,
		item.Barcode,
	).Scan(&item.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}

	return nil
}

func (s *Store) GetItem(ctx context.Context, companyID, itemID uuid.UUID) (*inventory.Item, error) {
	query := `
		SELECT id, company_id, name, unit, description, barcode, created_at
		FROM items
		WHERE company_id = $1 AND id = $2`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, companyID, itemID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, inventory.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying item: %w", err)
	}

	return item, nil
}

func (s *Store) ListItems(ctx context.Context, companyID uuid.UUID) ([]inventory.Item, error) {
	query := `
		SELECT id, company_id, name, unit, description, barcode, created_at
		FROM items
		WHERE company_id = $1
		ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []inventory.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

func (s *Store) MovementSums(ctx context.Context, companyID uuid.UUID) ([]inventory.Position, error) {
	query := `
		SELECT i.id, i.name, i.unit,
		       COALESCE(SUM(t.quantity), 0),
		       COALESCE(SUM(t.quantity * t.rate), 0)
		FROM inventory_txns t
		JOIN items i ON i.id = t.item_id
		WHERE t.company_id = $1
		GROUP BY i.id, i.name, i.unit
		ORDER BY i.name ASC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("querying movement sums: %w", err)
	}
	defer rows.Close()

	var positions []inventory.Position
	for rows.Next() {
		var p inventory.Position
		if err := rows.Scan(&p.ItemID, &p.ItemName, &p.Unit, &p.Quantity, &p.Value); err != nil {
			return nil, fmt.Errorf("scanning movement sum: %w", err)
		}
		positions = append(positions, p)
	}

	return positions, rows.Err()
}

func (s *Store) MovementSumsByLocation(ctx context.Context, companyID uuid.UUID) ([]inventory.LocationPosition, error) {
	query := `
		SELECT i.id, i.name, i.unit, t.location,
		       COALESCE(SUM(t.quantity), 0),
		       COALESCE(SUM(t.quantity * t.rate), 0)
		FROM inventory_txns t
		JOIN items i ON i.id = t.item_id
		WHERE t.company_id = $1
		GROUP BY i.id, i.name, i.unit, t.location
		ORDER BY i.name ASC, t.location ASC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("querying movement sums by location: %w", err)
	}
	defer rows.Close()

	var positions []inventory.LocationPosition
	for rows.Next() {
		var p inventory.LocationPosition
		if err := rows.Scan(&p.ItemID, &p.ItemName, &p.Unit, &p.Location, &p.Quantity, &p.Value); err != nil {
			return nil, fmt.Errorf("scanning movement sum: %w", err)
		}
		positions = append(positions, p)
	}

	return positions, rows.Err()
}
