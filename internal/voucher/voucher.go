package voucher

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("voucher not found")
	// ErrUnbalanced means the voucher violates the double-entry balance law:
	// fewer than two entries, or a non-zero signed sum. Match with errors.Is;
	// the concrete error is an *UnbalancedError carrying the computed sum.
	ErrUnbalanced = errors.New("voucher entries do not balance")
	// ErrAccountMismatch means an entry references an account outside the
	// active company.
	ErrAccountMismatch = errors.New("entry account belongs to another company")
	// ErrAlreadyReversed means the voucher already has a reversing voucher.
	ErrAlreadyReversed = errors.New("voucher already reversed")
)

// Type classifies a voucher by the business transaction it records.
type Type string

const (
	TypeCashReceipt Type = "cash_receipt"
	TypeCashPayment Type = "cash_payment"
	TypeJournal     Type = "journal"
	TypePurchase    Type = "purchase"
	TypeSales       Type = "sales"
)

// Voucher is one committed double-entry transaction. Committed vouchers are
// immutable; corrections happen through a new reversing voucher linked via
// Reverses, never by editing rows in place.
type Voucher struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	// Number is sequential per company, assigned at commit time, never
	// reused even when the voucher is later reversed.
	Number    int64
	Type      Type
	Date      time.Time
	Narration string
	Reverses  *uuid.UUID
	Entries   []*Entry
	CreatedAt time.Time
}

// Entry is one signed leg of a voucher. Positive amounts are debits,
// negative amounts are credits.
type Entry struct {
	ID        int64
	VoucherID uuid.UUID
	AccountID uuid.UUID
	Amount    decimal.Decimal
}

// InventoryTxn is one stock movement. Rows exist only as a side effect of a
// committed voucher with stock impact, keeping financial and physical stock
// synchronized. Positive quantity is stock-in, negative is stock-out.
type InventoryTxn struct {
	ID        int64
	CompanyID uuid.UUID
	VoucherID uuid.UUID
	ItemID    uuid.UUID
	Quantity  decimal.Decimal
	// Rate is the unit cost at the time of the movement.
	Rate     decimal.Decimal
	Location string
	Date     time.Time
}

// UnbalancedError reports a violation of the balance law with enough detail
// for the caller to correct the input.
type UnbalancedError struct {
	Date       time.Time
	Sum        decimal.Decimal
	EntryCount int
}

func (e *UnbalancedError) Error() string {
	if e.EntryCount < 2 {
		return fmt.Sprintf("voucher dated %s has %d entries, need at least 2",
			e.Date.Format(time.DateOnly), e.EntryCount)
	}

	return fmt.Sprintf("voucher dated %s sums to %s, expected 0",
		e.Date.Format(time.DateOnly), e.Sum.String())
}

func (e *UnbalancedError) Is(target error) bool { return target == ErrUnbalanced }

// AccountMismatchError names the offending account of a cross-company entry.
type AccountMismatchError struct {
	AccountID uuid.UUID
}

func (e *AccountMismatchError) Error() string {
	return fmt.Sprintf("account %s does not belong to the active company", e.AccountID)
}

func (e *AccountMismatchError) Is(target error) bool { return target == ErrAccountMismatch }
