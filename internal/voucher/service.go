package voucher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=voucher
type Repository interface {
	Get(ctx context.Context, companyID, id uuid.UUID) (*Voucher, error)
	List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]*Voucher, error)
	StockMovements(ctx context.Context, companyID, voucherID uuid.UUID) ([]*InventoryTxn, error)
	HasReversal(ctx context.Context, companyID, voucherID uuid.UUID) (bool, error)

	// ForeignAccounts returns the subset of accountIDs that do not belong to
	// the company. Soft-deleted accounts still belong to it; a voucher posted
	// to an account before its retirement must stay reversible afterwards.
	ForeignAccounts(ctx context.Context, companyID uuid.UUID, accountIDs []uuid.UUID) ([]uuid.UUID, error)

	BeginCommit(ctx context.Context) (CommitTx, error)
}

// CommitTx writes one voucher, its entries and its stock movements as a
// single database transaction. Nothing is visible to readers until Commit.
type CommitTx interface {
	NextNumber(ctx context.Context, companyID uuid.UUID) (int64, error)
	InsertVoucher(ctx context.Context, v *Voucher) error
	InsertEntries(ctx context.Context, voucherID uuid.UUID, entries []*Entry) error
	InsertStockMovements(ctx context.Context, txns []*InventoryTxn) error
	Commit() error
	Rollback() error
}

// PeriodGuard rejects mutations dated inside a closed financial period.
type PeriodGuard interface {
	EnsureOpen(ctx context.Context, companyID uuid.UUID, date time.Time) error
}

// AuditLog receives successful commits fire-and-forget; a logging failure
// never affects the committed voucher.
type AuditLog interface {
	Record(companyID, userID uuid.UUID, action, details string)
}

type Service struct {
	repo    Repository
	periods PeriodGuard
	audit   AuditLog
}

func NewService(repo Repository, periods PeriodGuard, audit AuditLog) *Service {
	return &Service{repo: repo, periods: periods, audit: audit}
}

type EntryParams struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal
}

type StockParams struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal
	Rate     decimal.Decimal
	Location string
}

type CommitParams struct {
	CompanyID uuid.UUID
	ActorID   uuid.UUID
	Date      time.Time
	Type      Type
	Narration string
	Entries   []EntryParams
	Stock     []StockParams

	// set by Reverse only
	reverses *uuid.UUID
}

type ListFilter struct {
	Type      *Type
	StartDate *time.Time
	EndDate   *time.Time
}

// Commit validates and atomically persists one voucher. All checks run
// before any write: at least two entries, an exactly-zero signed sum,
// entries referencing only the company's own accounts, and an open financial
// period for the business date. On any failure nothing is persisted.
func (s *Service) Commit(ctx context.Context, params CommitParams) (*Voucher, error) {
	if params.CompanyID == uuid.Nil {
		return nil, fmt.Errorf("company id is required")
	}

	if len(params.Entries) < 2 {
		return nil, &UnbalancedError{Date: params.Date, EntryCount: len(params.Entries)}
	}

	// The balance law is decided with exact decimal arithmetic, never
	// floating point.
	sum := decimal.Zero
	accountIDs := make([]uuid.UUID, 0, len(params.Entries))

	for _, e := range params.Entries {
		sum = sum.Add(e.Amount)
		accountIDs = append(accountIDs, e.AccountID)
	}

	if !sum.IsZero() {
		return nil, &UnbalancedError{Date: params.Date, Sum: sum, EntryCount: len(params.Entries)}
	}

	foreign, err := s.repo.ForeignAccounts(ctx, params.CompanyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("checking entry accounts: %w", err)
	}

	if len(foreign) > 0 {
		return nil, &AccountMismatchError{AccountID: foreign[0]}
	}

	if err := s.periods.EnsureOpen(ctx, params.CompanyID, params.Date); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginCommit(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning commit: %w", err)
	}
	defer tx.Rollback()

	number, err := tx.NextNumber(ctx, params.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("assigning voucher number: %w", err)
	}

	v := &Voucher{
		CompanyID: params.CompanyID,
		Number:    number,
		Type:      params.Type,
		Date:      params.Date,
		Narration: params.Narration,
		Reverses:  params.reverses,
	}
	if err := tx.InsertVoucher(ctx, v); err != nil {
		return nil, fmt.Errorf("inserting voucher: %w", err)
	}

	entries := make([]*Entry, len(params.Entries))
	for i, e := range params.Entries {
		entries[i] = &Entry{
			VoucherID: v.ID,
			AccountID: e.AccountID,
			Amount:    e.Amount,
		}
	}

	if err := tx.InsertEntries(ctx, v.ID, entries); err != nil {
		return nil, fmt.Errorf("inserting entries: %w", err)
	}

	if len(params.Stock) > 0 {
		txns := make([]*InventoryTxn, len(params.Stock))
		for i, m := range params.Stock {
			txns[i] = &InventoryTxn{
				CompanyID: params.CompanyID,
				VoucherID: v.ID,
				ItemID:    m.ItemID,
				Quantity:  m.Quantity,
				Rate:      m.Rate,
				Location:  m.Location,
				Date:      params.Date,
			}
		}

		if err := tx.InsertStockMovements(ctx, txns); err != nil {
			return nil, fmt.Errorf("inserting stock movements: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing voucher: %w", err)
	}

	v.Entries = entries

	if s.audit != nil {
		s.audit.Record(params.CompanyID, params.ActorID, "voucher.commit",
			fmt.Sprintf("voucher %d (%s) dated %s", v.Number, v.Type, v.Date.Format(time.DateOnly)))
	}

	return v, nil
}

type ReverseParams struct {
	CompanyID uuid.UUID
	ActorID   uuid.UUID
	VoucherID uuid.UUID
	// Date is the reversal's business date; the period guard applies to it,
	// so a closed original period can still be corrected in an open one.
	Date      time.Time
	Narration string
}

// Reverse commits a new voucher mirroring the original's entry signs and
// stock quantities. The original is never mutated. A voucher can be reversed
// at most once.
func (s *Service) Reverse(ctx context.Context, params ReverseParams) (*Voucher, error) {
	orig, err := s.repo.Get(ctx, params.CompanyID, params.VoucherID)
	if err != nil {
		return nil, err
	}

	reversed, err := s.repo.HasReversal(ctx, params.CompanyID, params.VoucherID)
	if err != nil {
		return nil, fmt.Errorf("checking reversal status: %w", err)
	}

	if reversed {
		return nil, ErrAlreadyReversed
	}

	stock, err := s.repo.StockMovements(ctx, params.CompanyID, params.VoucherID)
	if err != nil {
		return nil, fmt.Errorf("loading stock movements: %w", err)
	}

	narration := params.Narration
	if narration == "" {
		narration = fmt.Sprintf("Reversal of voucher %d: %s", orig.Number, orig.Narration)
	}

	date := params.Date
	if date.IsZero() {
		date = orig.Date
	}

	commit := CommitParams{
		CompanyID: params.CompanyID,
		ActorID:   params.ActorID,
		Date:      date,
		Type:      orig.Type,
		Narration: narration,
		reverses:  &orig.ID,
	}

	for _, e := range orig.Entries {
		commit.Entries = append(commit.Entries, EntryParams{
			AccountID: e.AccountID,
			Amount:    e.Amount.Neg(),
		})
	}

	for _, m := range stock {
		commit.Stock = append(commit.Stock, StockParams{
			ItemID:   m.ItemID,
			Quantity: m.Quantity.Neg(),
			Rate:     m.Rate,
			Location: m.Location,
		})
	}

	return s.Commit(ctx, commit)
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*Voucher, error) {
	return s.repo.Get(ctx, companyID, id)
}

func (s *Service) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]*Voucher, error) {
	return s.repo.List(ctx, companyID, filter)
}
