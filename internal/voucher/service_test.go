package voucher_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbooks-dev/openbooks/internal/fiscalyear"
	"github.com/openbooks-dev/openbooks/internal/voucher"
)

type mocks struct {
	repo    *voucher.MockRepository
	tx      *voucher.MockCommitTx
	periods *voucher.MockPeriodGuard
	audit   *voucher.MockAuditLog
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:    voucher.NewMockRepository(ctrl),
		tx:      voucher.NewMockCommitTx(ctrl),
		periods: voucher.NewMockPeriodGuard(ctrl),
		audit:   voucher.NewMockAuditLog(ctrl),
	}
}

func (m mocks) service() *voucher.Service {
	return voucher.NewService(m.repo, m.periods, m.audit)
}

func TestService_Commit(t *testing.T) {
	var (
		companyID = uuid.New()
		actorID   = uuid.New()
		cash      = uuid.New()
		sales     = uuid.New()
		bizDate   = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	)

	balanced := []voucher.EntryParams{
		{AccountID: cash, Amount: decimal.NewFromInt(500)},
		{AccountID: sales, Amount: decimal.NewFromInt(-500)},
	}

	t.Run("BalancedVoucherCommits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newMocks(ctrl)
		m.repo.EXPECT().
			ForeignAccounts(gomock.Any(), companyID, gomock.Any()).
			Return(nil, nil)
		m.periods.EXPECT().
			EnsureOpen(gomock.Any(), companyID, bizDate).
			Return(nil)
		m.repo.EXPECT().
			BeginCommit(gomock.Any()).
			Return(m.tx, nil)
		m.tx.EXPECT().
			NextNumber(gomock.Any(), companyID).
			Return(int64(7), nil)
		m.tx.EXPECT().
			InsertVoucher(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *voucher.Voucher) error {
				assert.Equal(t, int64(7), v.Number)
				assert.Nil(t, v.Reverses)

				v.ID = uuid.New()
				v.CreatedAt = time.Now()

				return nil
			})
		m.tx.EXPECT().
			InsertEntries(gomock.Any(), gomock.Any(), gomock.Len(2)).
			Return(nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()
		m.audit.EXPECT().
			Record(companyID, actorID, "voucher.commit", gomock.Any())

		v, err := m.service().Commit(context.Background(), voucher.CommitParams{
			CompanyID: companyID,
			ActorID:   actorID,
			Date:      bizDate,
			Type:      voucher.TypeCashReceipt,
			Narration: "Cash sale",
			Entries:   balanced,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), v.Number)
		assert.Len(t, v.Entries, 2)
	})

	t.Run("StockImpactWritesMovements", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		itemID := uuid.New()

		m := newMocks(ctrl)
		m.repo.EXPECT().ForeignAccounts(gomock.Any(), companyID, gomock.Any()).Return(nil, nil)
		m.periods.EXPECT().EnsureOpen(gomock.Any(), companyID, bizDate).Return(nil)
		m.repo.EXPECT().BeginCommit(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().NextNumber(gomock.Any(), companyID).Return(int64(1), nil)
		m.tx.EXPECT().InsertVoucher(gomock.Any(), gomock.Any()).Return(nil)
		m.tx.EXPECT().InsertEntries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tx.EXPECT().
			InsertStockMovements(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txns []*voucher.InventoryTxn) error {
				require.Len(t, txns, 1)
				assert.Equal(t, companyID, txns[0].CompanyID)
				assert.Equal(t, itemID, txns[0].ItemID)
				assert.True(t, txns[0].Quantity.Equal(decimal.NewFromInt(10)))
				assert.Equal(t, bizDate, txns[0].Date)

				return nil
			})
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()
		m.audit.EXPECT().Record(companyID, actorID, "voucher.commit", gomock.Any())

		_, err := m.service().Commit(context.Background(), voucher.CommitParams{
			CompanyID: companyID,
			ActorID:   actorID,
			Date:      bizDate,
			Type:      voucher.TypePurchase,
			Entries:   balanced,
			Stock: []voucher.StockParams{
				{ItemID: itemID, Quantity: decimal.NewFromInt(10), Rate: decimal.NewFromInt(50), Location: "main"},
			},
		})

		require.NoError(t, err)
	})

	t.Run("UnbalancedRejectedBeforeAnyWrite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newMocks(ctrl)

		_, err := m.service().Commit(context.Background(), voucher.CommitParams{
			CompanyID: companyID,
			Date:      bizDate,
			Entries: []voucher.EntryParams{
				{AccountID: cash, Amount: decimal.NewFromInt(500)},
				{AccountID: sales, Amount: decimal.NewFromInt(-400)},
			},
		})

		assert.ErrorIs(t, err, voucher.ErrUnbalanced)

		var ub *voucher.UnbalancedError
		require.ErrorAs(t, err, &ub)
		assert.True(t, ub.Sum.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, bizDate, ub.Date)
	})

	t.Run("SingleEntryRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newMocks(ctrl)

		_, err := m.service().Commit(context.Background(), voucher.CommitParams{
			CompanyID: companyID,
			Date:      bizDate,
			Entries: []voucher.EntryParams{
				{AccountID: cash, Amount: decimal.Zero},
			},
		})

		assert.ErrorIs(t, err, voucher.ErrUnbalanced)
	})

	t.Run("ExactDecimalsAreNotFalselyRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// 0.1 + 0.2 - 0.3 is non-zero in float64 arithmetic.
		tenth := decimal.RequireFromString("0.1")
		fifth := decimal.RequireFromString("0.2")
		threeTenths := decimal.RequireFromString("-0.3")

		m := newMocks(ctrl)
		m.repo.EXPECT().ForeignAccounts(gomock.Any(), companyID, gomock.Any()).Return(nil, nil)
		m.periods.EXPECT().EnsureOpen(gomock.Any(), companyID, bizDate).Return(nil)
		m.repo.EXPECT().BeginCommit(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().NextNumber(gomock.Any(), companyID).Return(int64(1), nil)
		m.tx.EXPECT().InsertVoucher(gomock.Any(), gomock.Any()).Return(nil)
		m.tx.EXPECT().InsertEntries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		_, err := m.service().Commit(context.Background(), voucher.CommitParams{
			CompanyID: companyID,
			Date:      bizDate,
			Entries: []voucher.EntryParams{
				{AccountID: cash, Amount: tenth},
				{AccountID: cash, Amount: fifth},
				{AccountID: sales, Amount: threeTenths},
			},
		})

		require.NoError(t, err)
	})

	t.Run("ForeignAccountRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		other := uuid.New()

		m := newMocks(ctrl)
		m.repo.EXPECT().
			ForeignAccounts(gomock.Any(), companyID, gomock.Any()).
			Return([]uuid.UUID{other}, nil)

		_, err := m.service().Commit(context.Background(), voucher.CommitParams{
			CompanyID: companyID,
			Date:      bizDate,
			Entries:   balanced,
		})

		assert.ErrorIs(t, err, voucher.ErrAccountMismatch)

		var mismatch *voucher.AccountMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, other, mismatch.AccountID)
	})

	t.Run("ClosedPeriodAbortsBeforeWrites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newMocks(ctrl)
		m.repo.EXPECT().ForeignAccounts(gomock.Any(), companyID, gomock.Any()).Return(nil, nil)
		m.periods.EXPECT().
			EnsureOpen(gomock.Any(), companyID, bizDate).
			Return(&fiscalyear.PeriodClosedError{CompanyID: companyID, Date: bizDate})

		// No BeginCommit expectation: a closed period must leave no rows.
		_, err := m.service().Commit(context.Background(), voucher.CommitParams{
			CompanyID: companyID,
			Date:      bizDate,
			Entries:   balanced,
		})

		assert.ErrorIs(t, err, fiscalyear.ErrPeriodClosed)
	})

	t.Run("MissingCompanyRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newMocks(ctrl)

		_, err := m.service().Commit(context.Background(), voucher.CommitParams{
			Date:    bizDate,
			Entries: balanced,
		})

		assert.Error(t, err)
	})
}

func TestService_Reverse(t *testing.T) {
	var (
		companyID = uuid.New()
		actorID   = uuid.New()
		cash      = uuid.New()
		sales     = uuid.New()
		itemID    = uuid.New()
		origID    = uuid.New()
		origDate  = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		revDate   = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	)

	orig := &voucher.Voucher{
		ID:        origID,
		CompanyID: companyID,
		Number:    3,
		Type:      voucher.TypeSales,
		Date:      origDate,
		Narration: "Goods sold",
		Entries: []*voucher.Entry{
			{AccountID: cash, Amount: decimal.NewFromInt(500)},
			{AccountID: sales, Amount: decimal.NewFromInt(-500)},
		},
	}

	t.Run("MirrorsSignsAndStock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newMocks(ctrl)
		m.repo.EXPECT().Get(gomock.Any(), companyID, origID).Return(orig, nil)
		m.repo.EXPECT().HasReversal(gomock.Any(), companyID, origID).Return(false, nil)
		m.repo.EXPECT().
			StockMovements(gomock.Any(), companyID, origID).
			Return([]*voucher.InventoryTxn{
				{ItemID: itemID, Quantity: decimal.NewFromInt(-5), Rate: decimal.NewFromInt(100), Location: "main"},
			}, nil)
		m.repo.EXPECT().ForeignAccounts(gomock.Any(), companyID, gomock.Any()).Return(nil, nil)
		m.periods.EXPECT().EnsureOpen(gomock.Any(), companyID, revDate).Return(nil)
		m.repo.EXPECT().BeginCommit(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().NextNumber(gomock.Any(), companyID).Return(int64(9), nil)
		m.tx.EXPECT().
			InsertVoucher(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *voucher.Voucher) error {
				require.NotNil(t, v.Reverses)
				assert.Equal(t, origID, *v.Reverses)

				v.ID = uuid.New()

				return nil
			})
		m.tx.EXPECT().
			InsertEntries(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, entries []*voucher.Entry) error {
				require.Len(t, entries, 2)
				assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(-500)))
				assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(500)))

				return nil
			})
		m.tx.EXPECT().
			InsertStockMovements(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txns []*voucher.InventoryTxn) error {
				require.Len(t, txns, 1)
				assert.True(t, txns[0].Quantity.Equal(decimal.NewFromInt(5)))

				return nil
			})
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()
		m.audit.EXPECT().Record(companyID, actorID, "voucher.commit", gomock.Any())

		v, err := m.service().Reverse(context.Background(), voucher.ReverseParams{
			CompanyID: companyID,
			ActorID:   actorID,
			VoucherID: origID,
			Date:      revDate,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(9), v.Number)
	})

	t.Run("RetiredAccountStillReversible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// The sales account was soft-deleted after the original commit. It
		// still belongs to the company, so the only correction mechanism for
		// its vouchers keeps working.
		m := newMocks(ctrl)
		m.repo.EXPECT().Get(gomock.Any(), companyID, origID).Return(orig, nil)
		m.repo.EXPECT().HasReversal(gomock.Any(), companyID, origID).Return(false, nil)
		m.repo.EXPECT().StockMovements(gomock.Any(), companyID, origID).Return(nil, nil)
		m.repo.EXPECT().
			ForeignAccounts(gomock.Any(), companyID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, accountIDs []uuid.UUID) ([]uuid.UUID, error) {
				assert.ElementsMatch(t, []uuid.UUID{cash, sales}, accountIDs)
				return nil, nil
			})
		m.periods.EXPECT().EnsureOpen(gomock.Any(), companyID, revDate).Return(nil)
		m.repo.EXPECT().BeginCommit(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().NextNumber(gomock.Any(), companyID).Return(int64(11), nil)
		m.tx.EXPECT().
			InsertVoucher(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *voucher.Voucher) error {
				v.ID = uuid.New()
				return nil
			})
		m.tx.EXPECT().
			InsertEntries(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, entries []*voucher.Entry) error {
				require.Len(t, entries, 2)
				assert.Equal(t, sales, entries[1].AccountID)
				assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(500)))

				return nil
			})
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()
		m.audit.EXPECT().Record(companyID, actorID, "voucher.commit", gomock.Any())

		v, err := m.service().Reverse(context.Background(), voucher.ReverseParams{
			CompanyID: companyID,
			ActorID:   actorID,
			VoucherID: origID,
			Date:      revDate,
		})

		require.NoError(t, err)
		require.NotNil(t, v.Reverses)
		assert.Equal(t, origID, *v.Reverses)
	})

	t.Run("DoubleReversalRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newMocks(ctrl)
		m.repo.EXPECT().Get(gomock.Any(), companyID, origID).Return(orig, nil)
		m.repo.EXPECT().HasReversal(gomock.Any(), companyID, origID).Return(true, nil)

		_, err := m.service().Reverse(context.Background(), voucher.ReverseParams{
			CompanyID: companyID,
			VoucherID: origID,
			Date:      revDate,
		})

		assert.ErrorIs(t, err, voucher.ErrAlreadyReversed)
	})

	t.Run("UnknownVoucher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newMocks(ctrl)
		m.repo.EXPECT().
			Get(gomock.Any(), companyID, origID).
			Return(nil, voucher.ErrNotFound)

		_, err := m.service().Reverse(context.Background(), voucher.ReverseParams{
			CompanyID: companyID,
			VoucherID: origID,
		})

		assert.ErrorIs(t, err, voucher.ErrNotFound)
	})
}
