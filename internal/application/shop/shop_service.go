package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"go.uber.org/zap"
)

// StateInfo describes a partner shop's order-taking state
type StateInfo struct {
	ShopID          uuid.UUID
	Name            string
	URL             string
	AcceptingOrders bool
}

// Service manages the partner's shop settings
type Service struct {
	shopRepo shop.ShopRepository
	logger   *zap.Logger
}

// NewService creates a new shop service
func NewService(shopRepo shop.ShopRepository, logger *zap.Logger) *Service {
	return &Service{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// GetState returns the state of the shop owned by the user
func (s *Service) GetState(ctx context.Context, userID uuid.UUID) (*StateInfo, error) {
	partnerShop, err := s.shopRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("SHOP_NOT_FOUND", "No shop is linked to this account")
	}

	return newStateInfo(partnerShop), nil
}

// SetState switches whether the shop accepts new orders
func (s *Service) SetState(ctx context.Context, userID uuid.UUID, accepting bool) (*StateInfo, error) {
	partnerShop, err := s.shopRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("SHOP_NOT_FOUND", "No shop is linked to this account")
	}

	partnerShop.SetAcceptingOrders(accepting)

	if err := s.shopRepo.Save(ctx, partnerShop); err != nil {
		s.logger.Error("Failed to save shop state", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to change shop state")
	}

	s.logger.Info("Shop state changed",
		zap.String("shop_id", partnerShop.ID.String()),
		zap.Bool("accepting_orders", accepting))

	return newStateInfo(partnerShop), nil
}

func newStateInfo(s *shop.Shop) *StateInfo {
	return &StateInfo{
		ShopID:          s.ID,
		Name:            s.Name,
		URL:             s.URL,
		AcceptingOrders: s.AcceptingOrders,
	}
}
