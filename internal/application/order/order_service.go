package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/order"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"go.uber.org/zap"
)

// OrderService serves order reads and partner-side status changes
type OrderService struct {
	orderRepo order.OrderRepository
	shopRepo  shop.ShopRepository
	eventBus  shared.EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo order.OrderRepository,
	shopRepo shop.ShopRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		shopRepo:  shopRepo,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// ListOrders returns the buyer's orders, newest first
func (s *OrderService) ListOrders(ctx context.Context, input ListOrdersInput) ([]OrderInfo, error) {
	orders, err := s.orderRepo.FindByUser(ctx, input.UserID, input.Filter)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list orders")
	}

	infos := make([]OrderInfo, len(orders))
	for i := range orders {
		infos[i] = newOrderInfo(&orders[i])
	}
	return infos, nil
}

// GetOrder returns one of the buyer's orders
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderInfo, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
	}
	if o.UserID != userID {
		return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
	}

	info := newOrderInfo(o)
	return &info, nil
}

// CancelOrder cancels the buyer's own order if its status allows it
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderInfo, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil || o.UserID != userID {
		return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
	}

	if err := o.ChangeStatus(order.OrderStatusCancelled); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		s.logger.Error("Failed to save cancelled order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to cancel order")
	}

	if err := s.eventBus.Publish(ctx, o.GetDomainEvents()...); err != nil {
		s.logger.Error("Failed to publish order events", zap.Error(err))
	}
	o.ClearDomainEvents()

	info := newOrderInfo(o)
	return &info, nil
}

// PartnerOrders returns orders containing items sold by the partner's shop
func (s *OrderService) PartnerOrders(ctx context.Context, input PartnerOrdersInput) ([]PartnerOrderInfo, error) {
	partnerShop, err := s.shopRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("SHOP_NOT_FOUND", "No shop is linked to this account")
	}

	orders, err := s.orderRepo.FindByShop(ctx, partnerShop.ID, input.Filter)
	if err != nil {
		s.logger.Error("Failed to list partner orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list orders")
	}

	infos := make([]PartnerOrderInfo, len(orders))
	for i := range orders {
		infos[i] = newPartnerOrderInfo(&orders[i], partnerShop.ID)
	}
	return infos, nil
}

// ChangeStatus moves an order to a new status on behalf of a partner.
// The partner must sell at least one item of the order, and the move
// must be allowed by the status transition table.
func (s *OrderService) ChangeStatus(ctx context.Context, input ChangeStatusInput) (*OrderInfo, error) {
	partnerShop, err := s.shopRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("SHOP_NOT_FOUND", "No shop is linked to this account")
	}

	o, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
	}
	if !o.ContainsShop(partnerShop.ID) {
		return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
	}

	if err := o.ChangeStatus(input.Status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		s.logger.Error("Failed to save order status", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to change order status")
	}

	if err := s.eventBus.Publish(ctx, o.GetDomainEvents()...); err != nil {
		s.logger.Error("Failed to publish order events", zap.Error(err))
	}
	o.ClearDomainEvents()

	s.logger.Info("Order status changed",
		zap.String("order_id", o.ID.String()),
		zap.String("status", string(o.Status)),
		zap.String("shop_id", partnerShop.ID.String()))

	info := newOrderInfo(o)
	return &info, nil
}
