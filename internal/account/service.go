package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CountActive(ctx context.Context, companyID uuid.UUID) (int, error)
	// CreateBatch inserts all accounts and their bank records in one
	// database transaction; banks[i] may be nil for non-bank accounts.
	CreateBatch(ctx context.Context, accounts []*Account, banks []*BankAccount) error

	Get(ctx context.Context, companyID, id uuid.UUID) (*Account, error)
	List(ctx context.Context, companyID uuid.UUID) ([]*Account, error)
	ListByKind(ctx context.Context, companyID uuid.UUID, kind CounterpartyKind) ([]*Account, error)
	Update(ctx context.Context, a *Account) error
	SoftDelete(ctx context.Context, companyID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CompanyID uuid.UUID
	Code      string
	Name      string
	Type      Type
	Kind      CounterpartyKind

	// Bank details, required when Kind is bank.
	BankName      string
	AccountNumber string
}

// Create adds one account to the company's chart. A bank-kind account gets
// its bank record in the same database transaction.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	a := &Account{
		CompanyID: params.CompanyID,
		Code:      params.Code,
		Name:      params.Name,
		Type:      params.Type,
		Kind:      params.Kind,
	}

	var bank *BankAccount
	if params.Kind == KindBank {
		bank = &BankAccount{
			CompanyID:     params.CompanyID,
			BankName:      params.BankName,
			AccountNumber: params.AccountNumber,
		}
	}

	if err := s.repo.CreateBatch(ctx, []*Account{a}, []*BankAccount{bank}); err != nil {
		return nil, err
	}

	return a, nil
}

// seedAccount describes one entry of the default chart.
type seedAccount struct {
	Code string
	Name string
	Type Type
	Kind CounterpartyKind
}

var defaultChart = []seedAccount{
	{Code: "1000", Name: "Cash", Type: TypeAsset, Kind: KindCash},
	{Code: "1100", Name: "Accounts Receivable", Type: TypeAsset, Kind: KindCustomer},
	{Code: "1200", Name: "Stock in Hand", Type: TypeAsset, Kind: KindStock},
	{Code: "1300", Name: "Bank", Type: TypeAsset, Kind: KindBank},
	{Code: "2000", Name: "Accounts Payable", Type: TypeLiability, Kind: KindSupplier},
	{Code: "3000", Name: "Capital", Type: TypeEquity, Kind: KindGeneral},
	{Code: "4000", Name: "Sales", Type: TypeIncome, Kind: KindGeneral},
	{Code: "5000", Name: "Purchases", Type: TypeExpense, Kind: KindGeneral},
}

// SeedChart creates the minimal default chart for a company that has no
// accounts yet. Calling it on an already-seeded company is a no-op that
// returns 0.
func (s *Service) SeedChart(ctx context.Context, companyID uuid.UUID) (int, error) {
	count, err := s.repo.CountActive(ctx, companyID)
	if err != nil {
		return 0, fmt.Errorf("counting accounts: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	accounts := make([]*Account, len(defaultChart))
	banks := make([]*BankAccount, len(defaultChart))

	for i, seed := range defaultChart {
		accounts[i] = &Account{
			CompanyID: companyID,
			Code:      seed.Code,
			Name:      seed.Name,
			Type:      seed.Type,
			Kind:      seed.Kind,
		}

		if seed.Kind == KindBank {
			banks[i] = &BankAccount{
				CompanyID: companyID,
				BankName:  "Default Bank",
			}
		}
	}

	if err := s.repo.CreateBatch(ctx, accounts, banks); err != nil {
		return 0, fmt.Errorf("seeding chart: %w", err)
	}

	return len(accounts), nil
}

func (s *Service) Rename(ctx context.Context, companyID, id uuid.UUID, name string) (*Account, error) {
	a, err := s.repo.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	a.Name = name
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Reclassify(ctx context.Context, companyID, id uuid.UUID, accountType Type, kind CounterpartyKind) (*Account, error) {
	a, err := s.repo.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	a.Type = accountType
	a.Kind = kind

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) SoftDelete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, companyID, id)
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*Account, error) {
	return s.repo.Get(ctx, companyID, id)
}

func (s *Service) List(ctx context.Context, companyID uuid.UUID) ([]*Account, error) {
	return s.repo.List(ctx, companyID)
}

// ListByKind is the primary query shape used by downstream reporting, e.g.
// "all supplier accounts" for a payables statement.
func (s *Service) ListByKind(ctx context.Context, companyID uuid.UUID, kind CounterpartyKind) ([]*Account, error) {
	return s.repo.ListByKind(ctx, companyID, kind)
}
