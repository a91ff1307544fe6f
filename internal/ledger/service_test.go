package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbooks-dev/openbooks/internal/ledger"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Ledger(t *testing.T) {
	var (
		companyID = uuid.New()
		accountID = uuid.New()
	)

	t.Run("RunningBalanceIsPrefixSum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rows := []ledger.EntryRow{
			{Date: day(1), VoucherNumber: 1, Narration: "Opening", Amount: decimal.NewFromInt(500)},
			{Date: day(2), VoucherNumber: 2, Narration: "Purchase", Amount: decimal.NewFromInt(-200)},
			{Date: day(2), VoucherNumber: 3, Narration: "Sale", Amount: decimal.NewFromInt(300)},
			{Date: day(5), VoucherNumber: 4, Narration: "Payment", Amount: decimal.NewFromInt(-700)},
		}

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			AccountEntries(gomock.Any(), companyID, accountID).
			Return(rows, nil)

		svc := ledger.NewService(repo)
		lines, err := svc.Ledger(context.Background(), companyID, accountID)

		require.NoError(t, err)
		require.Len(t, lines, 4)

		assert.True(t, lines[0].Debit.Equal(decimal.NewFromInt(500)))
		assert.True(t, lines[0].Credit.IsZero())
		assert.True(t, lines[0].RunningBalance.Equal(decimal.NewFromInt(500)))

		assert.True(t, lines[1].Debit.IsZero())
		assert.True(t, lines[1].Credit.Equal(decimal.NewFromInt(200)))
		assert.True(t, lines[1].RunningBalance.Equal(decimal.NewFromInt(300)))

		assert.True(t, lines[2].RunningBalance.Equal(decimal.NewFromInt(600)))
		assert.True(t, lines[3].RunningBalance.Equal(decimal.NewFromInt(-100)))
	})

	t.Run("Deterministic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rows := []ledger.EntryRow{
			{Date: day(1), VoucherNumber: 1, Amount: decimal.NewFromInt(100)},
			{Date: day(1), VoucherNumber: 2, Amount: decimal.NewFromInt(-40)},
		}

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			AccountEntries(gomock.Any(), companyID, accountID).
			Return(rows, nil).
			Times(2)

		svc := ledger.NewService(repo)

		first, err := svc.Ledger(context.Background(), companyID, accountID)
		require.NoError(t, err)

		second, err := svc.Ledger(context.Background(), companyID, accountID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("EmptyAccount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			AccountEntries(gomock.Any(), companyID, accountID).
			Return(nil, nil)

		svc := ledger.NewService(repo)
		lines, err := svc.Ledger(context.Background(), companyID, accountID)

		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("MissingCompanyIsHardFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := ledger.NewService(ledger.NewMockRepository(ctrl))
		_, err := svc.Ledger(context.Background(), uuid.Nil, accountID)

		assert.Error(t, err)
	})
}

func TestService_TrialBalance(t *testing.T) {
	companyID := uuid.New()

	t.Run("TotalsBalance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accounts := []ledger.AccountTotals{
			{Code: "1000", Name: "Cash", Debit: decimal.NewFromInt(800), Credit: decimal.NewFromInt(100)},
			{Code: "4000", Name: "Sales", Debit: decimal.Zero, Credit: decimal.NewFromInt(800)},
			{Code: "5000", Name: "Purchases", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		}

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			AccountTotals(gomock.Any(), companyID).
			Return(accounts, nil)

		svc := ledger.NewService(repo)
		tb, err := svc.TrialBalance(context.Background(), companyID)

		require.NoError(t, err)
		assert.True(t, tb.TotalDebit.Equal(decimal.NewFromInt(900)))
		assert.True(t, tb.TotalCredit.Equal(decimal.NewFromInt(900)))
		assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit))
		assert.Len(t, tb.Accounts, 3)
	})

	t.Run("RetiredAccountTotalsStayInBalance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Sales was soft-deleted after posting. Its totals still show up in
		// the report, so the identity survives the retirement.
		accounts := []ledger.AccountTotals{
			{Code: "1000", Name: "Cash", Debit: decimal.NewFromInt(500), Credit: decimal.Zero},
			{Code: "4000", Name: "Sales", Debit: decimal.Zero, Credit: decimal.NewFromInt(500)},
		}

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			AccountTotals(gomock.Any(), companyID).
			Return(accounts, nil)

		svc := ledger.NewService(repo)
		tb, err := svc.TrialBalance(context.Background(), companyID)

		require.NoError(t, err)
		require.Len(t, tb.Accounts, 2)
		assert.True(t, tb.TotalDebit.Equal(decimal.NewFromInt(500)))
		assert.True(t, tb.TotalCredit.Equal(decimal.NewFromInt(500)))
		assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit))
	})

	t.Run("EmptyCompany", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			AccountTotals(gomock.Any(), companyID).
			Return(nil, nil)

		svc := ledger.NewService(repo)
		tb, err := svc.TrialBalance(context.Background(), companyID)

		require.NoError(t, err)
		assert.True(t, tb.TotalDebit.IsZero())
		assert.True(t, tb.TotalCredit.IsZero())
	})

	t.Run("MissingCompanyIsHardFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := ledger.NewService(ledger.NewMockRepository(ctrl))
		_, err := svc.TrialBalance(context.Background(), uuid.Nil)

		assert.Error(t, err)
	})
}
