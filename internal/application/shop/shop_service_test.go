package shop

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

func TestService_SetState(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ownerID := userID
	partnerShop, err := shop.NewShop("Svyaznoy", &ownerID)
	require.NoError(t, err)

	t.Run("switches order taking off", func(t *testing.T) {
		repo := new(MockShopRepository)
		svc := NewService(repo, zap.NewNop())

		repo.On("FindByUser", ctx, userID).Return(partnerShop, nil)
		repo.On("Save", ctx, partnerShop).Return(nil)

		info, err := svc.SetState(ctx, userID, false)

		require.NoError(t, err)
		assert.False(t, info.AcceptingOrders)
		assert.False(t, partnerShop.AcceptingOrders)
	})

	t.Run("fails without a linked shop", func(t *testing.T) {
		repo := new(MockShopRepository)
		svc := NewService(repo, zap.NewNop())

		repo.On("FindByUser", ctx, userID).Return(nil, shared.ErrNotFound)

		_, err := svc.SetState(ctx, userID, true)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SHOP_NOT_FOUND", domainErr.Code)
	})
}
