package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExportService_Export(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ownerID := userID
	partnerShop, err := shop.NewShop("Связной", &ownerID)
	require.NoError(t, err)

	category, err := catalog.NewCategory(224, "Смартфоны")
	require.NoError(t, err)

	product, err := catalog.NewProduct("Смартфон Apple iPhone XS Max 512GB", category.ID)
	require.NoError(t, err)

	listing, err := catalog.NewListing(product.ID, partnerShop.ID, 4216292, "apple/iphone/xs-max", 14,
		decimal.NewFromInt(110000), decimal.NewFromInt(116990))
	require.NoError(t, err)
	require.NoError(t, listing.SetParameter("Цвет", "золотистый"))

	t.Run("round-trips the imported catalog", func(t *testing.T) {
		shopRepo := new(MockShopRepository)
		listingRepo := new(MockListingRepository)
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := NewExportService(shopRepo, listingRepo, productRepo, categoryRepo, zap.NewNop())

		shopRepo.On("FindByUser", ctx, userID).Return(partnerShop, nil)
		categoryRepo.On("FindByShop", ctx, partnerShop.ID).Return([]catalog.Category{*category}, nil)
		listingRepo.On("FindByShop", ctx, partnerShop.ID).Return([]catalog.Listing{*listing}, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		file, err := svc.Export(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "Связной", file.Shop)

		require.Len(t, file.Categories, 1)
		assert.Equal(t, int64(224), file.Categories[0].ID)

		require.Len(t, file.Goods, 1)
		good := file.Goods[0]
		assert.Equal(t, int64(4216292), good.ID)
		assert.Equal(t, int64(224), good.Category)
		assert.Equal(t, "Смартфон Apple iPhone XS Max 512GB", good.Name)
		assert.Equal(t, "110000", good.Price)
		assert.Equal(t, "116990", good.PriceRRC)
		assert.Equal(t, 14, good.Quantity)
		assert.Equal(t, "золотистый", good.Parameters["Цвет"])
	})

	t.Run("fails without a linked shop", func(t *testing.T) {
		shopRepo := new(MockShopRepository)
		svc := NewExportService(shopRepo, new(MockListingRepository), new(MockProductRepository), new(MockCategoryRepository), zap.NewNop())

		shopRepo.On("FindByUser", ctx, userID).Return(nil, shared.ErrNotFound)

		_, err := svc.Export(ctx, userID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SHOP_NOT_FOUND", domainErr.Code)
	})
}

func TestQueryService_ListProducts(t *testing.T) {
	ctx := context.Background()

	category, err := catalog.NewCategory(224, "Смартфоны")
	require.NoError(t, err)
	product, err := catalog.NewProduct("Смартфон", category.ID)
	require.NoError(t, err)
	listing, err := catalog.NewListing(product.ID, uuid.New(), 1, "model-x", 3,
		decimal.NewFromInt(100), decimal.NewFromInt(120))
	require.NoError(t, err)

	t.Run("enriches listings with product names", func(t *testing.T) {
		listingRepo := new(MockListingRepository)
		productRepo := new(MockProductRepository)
		svc := NewQueryService(new(MockCategoryRepository), productRepo, listingRepo, new(MockShopRepository), zap.NewNop())

		listingRepo.On("FindForSale", ctx, (*uuid.UUID)(nil), (*uuid.UUID)(nil), shared.Filter{}).
			Return([]catalog.Listing{*listing}, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		infos, err := svc.ListProducts(ctx, ListProductsInput{Filter: shared.Filter{}})

		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, "Смартфон", infos[0].ProductName)
		assert.Equal(t, 3, infos[0].Quantity)
	})

	t.Run("skips listings whose product is gone", func(t *testing.T) {
		listingRepo := new(MockListingRepository)
		productRepo := new(MockProductRepository)
		svc := NewQueryService(new(MockCategoryRepository), productRepo, listingRepo, new(MockShopRepository), zap.NewNop())

		listingRepo.On("FindForSale", ctx, (*uuid.UUID)(nil), (*uuid.UUID)(nil), shared.Filter{}).
			Return([]catalog.Listing{*listing}, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(nil, shared.ErrNotFound)

		infos, err := svc.ListProducts(ctx, ListProductsInput{Filter: shared.Filter{}})

		require.NoError(t, err)
		assert.Empty(t, infos)
	})
}
