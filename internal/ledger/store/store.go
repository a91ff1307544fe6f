package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/openbooks-dev/openbooks/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) AccountEntries(ctx context.Context, companyID, accountID uuid.UUID) ([]ledger.EntryRow, error) {
	query := `
		SELECT v.date, v.number, v.narration, e.amount
		FROM voucher_entries e
		JOIN vouchers v ON e.voucher_id = v.id
		WHERE v.company_id = $1 AND e.account_id = $2
		ORDER BY v.date ASC, v.number ASC, e.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing account entries: %w", err)
	}
	defer rows.Close()

	var entries []ledger.EntryRow

	for rows.Next() {
		var e ledger.EntryRow
		if err := rows.Scan(&e.Date, &e.VoucherNumber, &e.Narration, &e.Amount); err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// AccountTotals sums debits and credits per account over every voucher type.
// Accounts with no entries appear with zero totals so the trial balance
// lists the full chart. Soft-deleted accounts stay in as long as they carry
// entries; dropping them would break the debit == credit identity.
func (s *Store) AccountTotals(ctx context.Context, companyID uuid.UUID) ([]ledger.AccountTotals, error) {
	query := `
		SELECT a.id, a.code, a.name,
			COALESCE(SUM(e.amount) FILTER (WHERE e.amount > 0), 0) AS debit,
			COALESCE(-SUM(e.amount) FILTER (WHERE e.amount < 0), 0) AS credit
		FROM accounts a
		LEFT JOIN voucher_entries e ON e.account_id = a.id
		WHERE a.company_id = $1 AND (a.deleted_at IS NULL OR e.id IS NOT NULL)
		GROUP BY a.id, a.code, a.name
		ORDER BY a.code ASC
	`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("summing account totals: %w", err)
	}
	defer rows.Close()

	var totals []ledger.AccountTotals

	for rows.Next() {
		var t ledger.AccountTotals
		if err := rows.Scan(&t.AccountID, &t.Code, &t.Name, &t.Debit, &t.Credit); err != nil {
			return nil, fmt.Errorf("scanning account totals: %w", err)
		}

		totals = append(totals, t)
	}

	return totals, rows.Err()
}
