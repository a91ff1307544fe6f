package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/openbooks-dev/openbooks/internal/account"
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

func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account

	var typeStr, kindStr string

	if err := s.Scan(
		&a.ID, &a.CompanyID, &a.Code, &a.Name, &typeStr, &kindStr,
		&a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	); err != nil {
		return nil, err
	}

	a.Type = account.Type(typeStr)
	a.Kind = account.CounterpartyKind(kindStr)

	return &a, nil
}

const selectAccountColumns = `
	id, company_id, code, name, type, counterparty_kind, created_at, updated_at, deleted_at
`

// isUniqueViolation reports a Postgres unique-constraint failure, used to
// surface duplicate account codes as ErrCodeTaken.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Store) CountActive(ctx context.Context, companyID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM accounts
		WHERE company_id = $1 AND deleted_at IS NULL
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting accounts: %w", err)
	}

	return count, nil
}

func (s *Store) CreateBatch(ctx context.Context, accounts []*account.Account, banks []*account.BankAccount) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	accountQuery := `
		INSERT INTO accounts (company_id, code, name, type, counterparty_kind, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	bankQuery := `
		INSERT INTO bank_accounts (account_id, company_id, bank_name, account_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for i, a := range accounts {
		err := tx.QueryRowContext(ctx, accountQuery,
			a.CompanyID,
			a.Code,
			a.Name,
			a.Type,
			a.Kind,
		).Scan(&a.ID, &a.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return account.ErrCodeTaken
			}

			return fmt.Errorf("creating account %s: %w", a.Code, err)
		}

		if i < len(banks) && banks[i] != nil {
			bank := banks[i]
			bank.AccountID = a.ID

			err := tx.QueryRowContext(ctx, bankQuery,
				bank.AccountID,
				bank.CompanyID,
				bank.BankName,
				bank.AccountNumber,
			).Scan(&bank.ID)
			if err != nil {
				return fmt.Errorf("creating bank account for %s: %w", a.Code, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing accounts: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, companyID, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) List(ctx context.Context, companyID uuid.UUID) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY code ASC`

	return s.queryAccounts(ctx, query, companyID)
}

func (s *Store) ListByKind(ctx context.Context, companyID uuid.UUID, kind account.CounterpartyKind) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE company_id = $1 AND counterparty_kind = $2 AND deleted_at IS NULL
		ORDER BY code ASC`

	return s.queryAccounts(ctx, query, companyID, kind)
}

func (s *Store) queryAccounts(ctx context.Context, query string, args ...any) ([]*account.Account, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (s *Store) Update(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, counterparty_kind = $3, updated_at = NOW()
		WHERE company_id = $4 AND id = $5 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, a.Name, a.Type, a.Kind, a.CompanyID, a.ID)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}

func (s *Store) SoftDelete(ctx context.Context, companyID, id uuid.UUID) error {
	query := `
		UPDATE accounts
		SET deleted_at = NOW()
		WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, companyID, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}
