package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryRow is one stored voucher entry joined to its voucher header.
type EntryRow struct {
	Date          time.Time
	VoucherNumber int64
	Narration     string
	Amount        decimal.Decimal
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	// AccountEntries returns all entries of the account joined to their
	// vouchers, ordered by voucher date ascending with ties broken by
	// voucher number (insertion order), then entry insertion order.
	AccountEntries(ctx context.Context, companyID, accountID uuid.UUID) ([]EntryRow, error)

	// AccountTotals returns the summed debit and credit of every non-deleted
	// account of the company, across all voucher types.
	AccountTotals(ctx context.Context, companyID uuid.UUID) ([]AccountTotals, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Ledger derives the account statement from the committed entry history.
// The running balance is a prefix sum of debit minus credit in traversal
// order; recomputing over the same data always yields the same statement.
func (s *Service) Ledger(ctx context.Context, companyID, accountID uuid.UUID) ([]Line, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("company id is required")
	}

	rows, err := s.repo.AccountEntries(ctx, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("loading account entries: %w", err)
	}

	lines := make([]Line, len(rows))
	running := decimal.Zero

	for i, row := range rows {
		line := Line{
			Date:          row.Date,
			VoucherNumber: row.VoucherNumber,
			Narration:     row.Narration,
			Debit:         decimal.Zero,
			Credit:        decimal.Zero,
		}

		if row.Amount.IsPositive() {
			line.Debit = row.Amount
		} else {
			line.Credit = row.Amount.Neg()
		}

		running = running.Add(line.Debit).Sub(line.Credit)
		line.RunningBalance = running
		lines[i] = line
	}

	return lines, nil
}

// TrialBalance aggregates every account's debits and credits. All voucher
// types are included; excluding some types would break the debit == credit
// identity the balance law guarantees.
func (s *Service) TrialBalance(ctx context.Context, companyID uuid.UUID) (*TrialBalance, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("company id is required")
	}

	accounts, err := s.repo.AccountTotals(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("loading account totals: %w", err)
	}

	tb := &TrialBalance{
		Accounts:    accounts,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, a := range accounts {
		tb.TotalDebit = tb.TotalDebit.Add(a.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(a.Credit)
	}

	return tb, nil
}
