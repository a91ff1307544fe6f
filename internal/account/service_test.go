package account_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbooks-dev/openbooks/internal/account"
)

func TestService_SeedChart(t *testing.T) {
	companyID := uuid.New()

	t.Run("SeedsEmptyCompany", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		repo.EXPECT().
			CountActive(gomock.Any(), companyID).
			Return(0, nil)
		repo.EXPECT().
			CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, accounts []*account.Account, banks []*account.BankAccount) error {
				require.NotEmpty(t, accounts)
				require.Len(t, banks, len(accounts))

				kinds := make(map[account.CounterpartyKind]bool)
				for i, a := range accounts {
					assert.Equal(t, companyID, a.CompanyID)
					kinds[a.Kind] = true

					// Every bank-kind account carries its bank record.
					if a.Kind == account.KindBank {
						require.NotNil(t, banks[i])
					} else {
						assert.Nil(t, banks[i])
					}

					a.ID = uuid.New()
				}

				for _, kind := range []account.CounterpartyKind{
					account.KindCash, account.KindCustomer, account.KindSupplier,
					account.KindStock, account.KindBank, account.KindGeneral,
				} {
					assert.True(t, kinds[kind], "missing kind %s", kind)
				}

				return nil
			})

		svc := account.NewService(repo)
		count, err := svc.SeedChart(context.Background(), companyID)

		require.NoError(t, err)
		assert.Equal(t, 8, count)
	})

	t.Run("SecondSeedIsNoOp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		repo.EXPECT().
			CountActive(gomock.Any(), companyID).
			Return(8, nil)

		svc := account.NewService(repo)
		count, err := svc.SeedChart(context.Background(), companyID)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestService_Create(t *testing.T) {
	companyID := uuid.New()

	t.Run("BankKindCreatesBankRecord", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, accounts []*account.Account, banks []*account.BankAccount) error {
				require.Len(t, accounts, 1)
				require.Len(t, banks, 1)
				require.NotNil(t, banks[0])
				assert.Equal(t, "First National", banks[0].BankName)

				accounts[0].ID = uuid.New()

				return nil
			})

		svc := account.NewService(repo)
		a, err := svc.Create(context.Background(), account.CreateParams{
			CompanyID:     companyID,
			Code:          "1301",
			Name:          "Current Account",
			Type:          account.TypeAsset,
			Kind:          account.KindBank,
			BankName:      "First National",
			AccountNumber: "0012345",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
	})

	t.Run("GeneralKindHasNoBankRecord", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, accounts []*account.Account, banks []*account.BankAccount) error {
				require.Len(t, banks, 1)
				assert.Nil(t, banks[0])
				return nil
			})

		svc := account.NewService(repo)
		_, err := svc.Create(context.Background(), account.CreateParams{
			CompanyID: companyID,
			Code:      "6000",
			Name:      "Rent",
			Type:      account.TypeExpense,
			Kind:      account.KindGeneral,
		})

		require.NoError(t, err)
	})
}

func TestService_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		companyID = uuid.New()
		id        = uuid.New()
	)

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().
		Get(gomock.Any(), companyID, id).
		Return(&account.Account{ID: id, CompanyID: companyID, Name: "Old"}, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *account.Account) error {
			assert.Equal(t, "New", a.Name)
			return nil
		})

	svc := account.NewService(repo)
	a, err := svc.Rename(context.Background(), companyID, id, "New")

	require.NoError(t, err)
	assert.Equal(t, "New", a.Name)
}
