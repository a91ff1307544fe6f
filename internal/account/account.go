package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("account not found")
	// ErrCodeTaken means another non-deleted account of the company already
	// uses the code.
	ErrCodeTaken = errors.New("account code already in use")
)

// Type is the accounting classification of an account.
type Type string

const (
	TypeAsset     Type = "asset"
	TypeLiability Type = "liability"
	TypeEquity    Type = "equity"
	TypeIncome    Type = "income"
	TypeExpense   Type = "expense"
)

// CounterpartyKind classifies an account by the external party it represents,
// independent of its accounting type.
type CounterpartyKind string

const (
	KindCustomer CounterpartyKind = "customer"
	KindSupplier CounterpartyKind = "supplier"
	KindCash     CounterpartyKind = "cash"
	KindBank     CounterpartyKind = "bank"
	KindStock    CounterpartyKind = "stock"
	KindGeneral  CounterpartyKind = "general"
)

// Account is one ledger account in a company's chart. Accounts referenced by
// entries are never physically removed, only soft-deleted.
type Account struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Code      string
	Name      string
	Type      Type
	Kind      CounterpartyKind
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// BankAccount holds the bank details attached to every bank-kind account.
// It is created atomically with its account.
type BankAccount struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	CompanyID     uuid.UUID
	BankName      string
	AccountNumber string
}
