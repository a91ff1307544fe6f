package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/voucher"
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

func scanVoucher(s scanner) (*voucher.Voucher, error) {
	var v voucher.Voucher

	var typeStr string

	if err := s.Scan(
		&v.ID, &v.CompanyID, &v.Number, &typeStr, &v.Date, &v.Narration,
		&v.Reverses, &v.CreatedAt,
	); err != nil {
		return nil, err
	}

	v.Type = voucher.Type(typeStr)

	return &v, nil
}

const selectVoucherColumns = `
	id, company_id, number, type, date, narration, reverses_voucher_id, created_at
`

func (s *Store) Get(ctx context.Context, companyID, id uuid.UUID) (*voucher.Voucher, error) {
	query := `SELECT ` + selectVoucherColumns + `
		FROM vouchers
		WHERE company_id = $1 AND id = $2`

	v, err := scanVoucher(s.db.QueryRowContext(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, voucher.ErrNotFound
		}

		return nil, fmt.Errorf("getting voucher: %w", err)
	}

	entries, err := s.entries(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Entries = entries

	return v, nil
}

func (s *Store) entries(ctx context.Context, voucherID uuid.UUID) ([]*voucher.Entry, error) {
	query := `
		SELECT id, voucher_id, account_id, amount
		FROM voucher_entries
		WHERE voucher_id = $1
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, voucherID)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*voucher.Entry

	for rows.Next() {
		var e voucher.Entry
		if err := rows.Scan(&e.ID, &e.VoucherID, &e.AccountID, &e.Amount); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

func (s *Store) List(ctx context.Context, companyID uuid.UUID, filter voucher.ListFilter) ([]*voucher.Voucher, error) {
	query := `SELECT ` + selectVoucherColumns + `
		FROM vouchers
		WHERE company_id = $1`

	args := []any{companyID}

	argIdx := 2

	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date ASC, number ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []*voucher.Voucher

	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning voucher: %w", err)
		}

		vouchers = append(vouchers, v)
	}

	return vouchers, rows.Err()
}

func (s *Store) StockMovements(ctx context.Context, companyID, voucherID uuid.UUID) ([]*voucher.InventoryTxn, error) {
	query := `
		SELECT id, company_id, voucher_id, item_id, quantity, rate, location, date
		FROM inventory_txns
		WHERE company_id = $1 AND voucher_id = $2
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, companyID, voucherID)
	if err != nil {
		return nil, fmt.Errorf("listing stock movements: %w", err)
	}
	defer rows.Close()

	var txns []*voucher.InventoryTxn

	for rows.Next() {
		var t voucher.InventoryTxn
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.VoucherID, &t.ItemID, &t.Quantity, &t.Rate, &t.Location, &t.Date); err != nil {
			return nil, fmt.Errorf("scanning stock movement: %w", err)
		}

		txns = append(txns, &t)
	}

	return txns, rows.Err()
}

func (s *Store) HasReversal(ctx context.Context, companyID, voucherID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM vouchers
			WHERE company_id = $1 AND reverses_voucher_id = $2
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, companyID, voucherID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking reversal: %w", err)
	}

	return exists, nil
}

func (s *Store) ForeignAccounts(ctx context.Context, companyID uuid.UUID, accountIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	unique := make(map[uuid.UUID]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		unique[id] = struct{}{}
	}

	placeholders := make([]string, 0, len(unique))
	args := []any{companyID}

	argIdx := 2

	for id := range unique {
		placeholders = append(placeholders, fmt.Sprintf("$%d", argIdx))

		args = append(args, id)
		argIdx++
	}

	query := `
		SELECT id FROM accounts
		WHERE company_id = $1 AND id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("checking accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning account id: %w", err)
		}

		delete(unique, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	foreign := make([]uuid.UUID, 0, len(unique))
	for id := range unique {
		foreign = append(foreign, id)
	}

	return foreign, nil
}

type commitTx struct {
	tx *sql.Tx
}

func (s *Store) BeginCommit(ctx context.Context) (voucher.CommitTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning commit tx: %w", err)
	}

	return &commitTx{tx: tx}, nil
}

func (c *commitTx) Commit() error   { return c.tx.Commit() }
func (c *commitTx) Rollback() error { return c.tx.Rollback() }

// NextNumber assigns the company's next sequential voucher number. The
// upsert locks the sequence row for the rest of the transaction, so two
// concurrent commits for the same company serialize here and numbers are
// never reused.
func (c *commitTx) NextNumber(ctx context.Context, companyID uuid.UUID) (int64, error) {
	query := `
		INSERT INTO voucher_sequences (company_id, last_number)
		VALUES ($1, 1)
		ON CONFLICT (company_id)
		DO UPDATE SET last_number = voucher_sequences.last_number + 1
		RETURNING last_number
	`

	var number int64
	if err := c.tx.QueryRowContext(ctx, query, companyID).Scan(&number); err != nil {
		return 0, fmt.Errorf("advancing voucher sequence: %w", err)
	}

	return number, nil
}

func (c *commitTx) InsertVoucher(ctx context.Context, v *voucher.Voucher) error {
	query := `
		INSERT INTO vouchers (company_id, number, type, date, narration, reverses_voucher_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := c.tx.QueryRowContext(ctx, query,
		v.CompanyID,
		v.Number,
		v.Type,
		v.Date,
		v.Narration,
		v.Reverses,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting voucher: %w", err)
	}

	return nil
}

func (c *commitTx) InsertEntries(ctx context.Context, voucherID uuid.UUID, entries []*voucher.Entry) error {
	query := `
		INSERT INTO voucher_entries (voucher_id, account_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	for _, e := range entries {
		e.VoucherID = voucherID

		if err := c.tx.QueryRowContext(ctx, query, e.VoucherID, e.AccountID, e.Amount).Scan(&e.ID); err != nil {
			return fmt.Errorf("inserting entry: %w", err)
		}
	}

	return nil
}

func (c *commitTx) InsertStockMovements(ctx context.Context, txns []*voucher.InventoryTxn) error {
	query := `
		INSERT INTO inventory_txns (company_id, voucher_id, item_id, quantity, rate, location, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	for _, t := range txns {
		err := c.tx.QueryRowContext(ctx, query,
			t.CompanyID,
			t.VoucherID,
			t.ItemID,
			t.Quantity,
			t.Rate,
			t.Location,
			t.Date,
		).Scan(&t.ID)
		if err != nil {
			return fmt.Errorf("inserting stock movement: %w", err)
		}
	}

	return nil
}
