package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbooks-dev/openbooks/internal/inventory"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_StockPosition(t *testing.T) {
	var (
		companyID = uuid.New()
		itemID    = uuid.New()
		item      = &inventory.Item{ID: itemID, CompanyID: companyID, Name: "Widget", Unit: "pcs"}
	)

	t.Run("PositiveStockKeepsValue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := inventory.NewMockRepository(ctrl)
		repo.EXPECT().GetItem(gomock.Any(), companyID, itemID).Return(item, nil)
		repo.EXPECT().MovementSums(gomock.Any(), companyID).Return([]inventory.Position{
			{ItemID: itemID, ItemName: "Widget", Unit: "pcs", Quantity: dec("6"), Value: dec("32")},
		}, nil)

		svc := inventory.NewService(repo)
		pos, err := svc.StockPosition(context.Background(), companyID, itemID)

		require.NoError(t, err)
		assert.True(t, pos.Quantity.Equal(dec("6")))
		assert.True(t, pos.Value.Equal(dec("32")))
	})

	t.Run("FullyConsumedStockHasZeroValue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Bought 10 at 5, sold 10 at 5: quantity and raw value both net out.
		repo := inventory.NewMockRepository(ctrl)
		repo.EXPECT().GetItem(gomock.Any(), companyID, itemID).Return(item, nil)
		repo.EXPECT().MovementSums(gomock.Any(), companyID).Return([]inventory.Position{
			{ItemID: itemID, ItemName: "Widget", Unit: "pcs", Quantity: dec("0"), Value: dec("0")},
		}, nil)

		svc := inventory.NewService(repo)
		pos, err := svc.StockPosition(context.Background(), companyID, itemID)

		require.NoError(t, err)
		assert.True(t, pos.Quantity.IsZero())
		assert.True(t, pos.Value.IsZero())
	})

	t.Run("NegativeStockValueClampedToZero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Sold more than bought at a lower rate: raw weighted sum is positive
		// but the position holds no stock, so it carries no asset value.
		repo := inventory.NewMockRepository(ctrl)
		repo.EXPECT().GetItem(gomock.Any(), companyID, itemID).Return(item, nil)
		repo.EXPECT().MovementSums(gomock.Any(), companyID).Return([]inventory.Position{
			{ItemID: itemID, ItemName: "Widget", Unit: "pcs", Quantity: dec("-2"), Value: dec("14")},
		}, nil)

		svc := inventory.NewService(repo)
		pos, err := svc.StockPosition(context.Background(), companyID, itemID)

		require.NoError(t, err)
		assert.True(t, pos.Quantity.Equal(dec("-2")))
		assert.True(t, pos.Value.IsZero())
	})

	t.Run("NoMovementsIsZeroPosition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := inventory.NewMockRepository(ctrl)
		repo.EXPECT().GetItem(gomock.Any(), companyID, itemID).Return(item, nil)
		repo.EXPECT().MovementSums(gomock.Any(), companyID).Return(nil, nil)

		svc := inventory.NewService(repo)
		pos, err := svc.StockPosition(context.Background(), companyID, itemID)

		require.NoError(t, err)
		assert.Equal(t, itemID, pos.ItemID)
		assert.True(t, pos.Quantity.IsZero())
		assert.True(t, pos.Value.IsZero())
	})

	t.Run("UnknownItem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := inventory.NewMockRepository(ctrl)
		repo.EXPECT().GetItem(gomock.Any(), companyID, itemID).Return(nil, inventory.ErrNotFound)

		svc := inventory.NewService(repo)
		_, err := svc.StockPosition(context.Background(), companyID, itemID)

		assert.ErrorIs(t, err, inventory.ErrNotFound)
	})

	t.Run("MissingCompanyIsHardFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := inventory.NewService(inventory.NewMockRepository(ctrl))
		_, err := svc.StockPosition(context.Background(), uuid.Nil, itemID)

		assert.Error(t, err)
	})
}

func TestService_AvailableForSale(t *testing.T) {
	companyID := uuid.New()

	t.Run("ZeroQuantityExcludedNegativeRetained", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		soldOut := uuid.New()
		inStock := uuid.New()
		overSold := uuid.New()

		repo := inventory.NewMockRepository(ctrl)
		repo.EXPECT().MovementSums(gomock.Any(), companyID).Return([]inventory.Position{
			{ItemID: soldOut, ItemName: "Gone", Quantity: dec("0"), Value: dec("0")},
			{ItemID: inStock, ItemName: "Here", Quantity: dec("3"), Value: dec("15")},
			{ItemID: overSold, ItemName: "Short", Quantity: dec("-1"), Value: dec("5")},
		}, nil)

		svc := inventory.NewService(repo)
		available, err := svc.AvailableForSale(context.Background(), companyID)

		require.NoError(t, err)
		require.Len(t, available, 2)
		assert.Equal(t, inStock, available[0].ItemID)
		assert.Equal(t, overSold, available[1].ItemID)
		assert.True(t, available[1].Value.IsZero())
	})
}

func TestService_PositionsByLocation(t *testing.T) {
	companyID := uuid.New()

	t.Run("DropsZeroRowsPerLocation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		itemID := uuid.New()

		repo := inventory.NewMockRepository(ctrl)
		repo.EXPECT().MovementSumsByLocation(gomock.Any(), companyID).Return([]inventory.LocationPosition{
			{Position: inventory.Position{ItemID: itemID, ItemName: "Widget", Quantity: dec("4"), Value: dec("20")}, Location: "main"},
			{Position: inventory.Position{ItemID: itemID, ItemName: "Widget", Quantity: dec("0"), Value: dec("0")}, Location: "outlet"},
			{Position: inventory.Position{ItemID: itemID, ItemName: "Widget", Quantity: dec("-1"), Value: dec("5")}, Location: "van"},
		}, nil)

		svc := inventory.NewService(repo)
		positions, err := svc.PositionsByLocation(context.Background(), companyID)

		require.NoError(t, err)
		require.Len(t, positions, 2)
		assert.Equal(t, "main", positions[0].Location)
		assert.Equal(t, "van", positions[1].Location)
		assert.True(t, positions[1].Value.IsZero())
	})
}

func TestService_CreateItem(t *testing.T) {
	companyID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := inventory.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *inventory.Item) error {
				assert.Equal(t, companyID, item.CompanyID)
				assert.Equal(t, "Widget", item.Name)
				assert.NotEqual(t, uuid.Nil, item.ID)
				return nil
			})

		svc := inventory.NewService(repo)
		item, err := svc.CreateItem(context.Background(), companyID, "Widget", "pcs", "", "")

		require.NoError(t, err)
		assert.Equal(t, "Widget", item.Name)
	})

	t.Run("NameRequired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := inventory.NewService(inventory.NewMockRepository(ctrl))
		_, err := svc.CreateItem(context.Background(), companyID, "", "pcs", "", "")

		assert.Error(t, err)
	})
}
