package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one row of an account statement. Debit and Credit are the unsigned
// sides of the entry; RunningBalance is the cumulative debit minus credit up
// to and including this line.
type Line struct {
	Date           time.Time
	VoucherNumber  int64
	Narration      string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	RunningBalance decimal.Decimal
}

// AccountTotals aggregates all debits and credits of one account.
type AccountTotals struct {
	AccountID uuid.UUID
	Code      string
	Name      string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// TrialBalance lists every account's totals. For a ledger satisfying the
// balance law TotalDebit always equals TotalCredit.
type TrialBalance struct {
	Accounts    []AccountTotals
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}
