package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"github.com/shopnet/backend/internal/infrastructure/queue"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByExternalID(ctx context.Context, externalID int64) (*catalog.Category, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByNameAndCategory(ctx context.Context, name string, categoryID uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, name, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

// MockListingRepository is a mock implementation of catalog.ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Save(ctx context.Context, listing *catalog.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Listing), args.Error(1)
}

func (m *MockListingRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Listing, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Listing), args.Error(1)
}

func (m *MockListingRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]catalog.Listing, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]catalog.Listing), args.Error(1)
}

func (m *MockListingRepository) FindForSale(ctx context.Context, shopID, categoryID *uuid.UUID, filter shared.Filter) ([]catalog.Listing, error) {
	args := m.Called(ctx, shopID, categoryID, filter)
	return args.Get(0).([]catalog.Listing), args.Error(1)
}

// MockShopRepository is a mock implementation of shop.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Save(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByName(ctx context.Context, name string) (*shop.Shop, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAccepting(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockImporter is a mock implementation of catalog.Importer
type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) ReplaceShopCatalog(ctx context.Context, shopID uuid.UUID, categories []catalog.ImportCategory, items []catalog.ImportItem) error {
	args := m.Called(ctx, shopID, categories, items)
	return args.Error(0)
}

// MockFetcher is a mock implementation of FeedFetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// inlineTasks runs submitted tasks immediately on the calling goroutine
type inlineTasks struct {
	submitted int
}

func (r *inlineTasks) Submit(task queue.Task) error {
	r.submitted++
	return task.Run(context.Background())
}
