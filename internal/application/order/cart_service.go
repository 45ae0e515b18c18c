package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/order"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartService manages the user's basket
type CartService struct {
	cartRepo    order.CartRepository
	listingRepo catalog.ListingRepository
	logger      *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo order.CartRepository,
	listingRepo catalog.ListingRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		listingRepo: listingRepo,
		logger:      logger,
	}
}

// GetCart returns the user's basket with current prices
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartInfo, error) {
	cart, err := s.findOrNewCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.priceCart(ctx, cart)
}

// SetItem puts an offer into the basket or replaces its quantity.
// The requested quantity must be in stock.
func (s *CartService) SetItem(ctx context.Context, input SetCartItemInput) (*CartInfo, error) {
	listing, err := s.listingRepo.FindByID(ctx, input.ListingID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Offer not found")
	}
	if !listing.HasStock(input.Quantity) {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			"Requested quantity is not available")
	}

	cart, err := s.findOrNewCart(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := cart.SetItem(input.ListingID, input.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update basket")
	}

	return s.priceCart(ctx, cart)
}

// RemoveItems deletes basket positions, returning the updated basket
func (s *CartService) RemoveItems(ctx context.Context, input RemoveCartItemsInput) (*CartInfo, error) {
	if len(input.ItemIDs) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "No item IDs provided")
	}

	cart, err := s.cartRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Basket is empty")
	}

	if removed := cart.RemoveItems(input.ItemIDs); removed == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "No matching basket items")
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update basket")
	}

	return s.priceCart(ctx, cart)
}

func (s *CartService) findOrNewCart(ctx context.Context, userID uuid.UUID) (*order.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if errors.Is(err, shared.ErrNotFound) {
		return order.NewCart(userID)
	}
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load basket")
	}
	return cart, nil
}

// priceCart joins basket positions with their current listings
func (s *CartService) priceCart(ctx context.Context, cart *order.Cart) (*CartInfo, error) {
	info := &CartInfo{
		ID:    cart.ID,
		Items: make([]CartItemInfo, 0, len(cart.Items)),
		Total: decimal.Zero,
	}
	if cart.IsEmpty() {
		return info, nil
	}

	ids := make([]uuid.UUID, len(cart.Items))
	for i := range cart.Items {
		ids[i] = cart.Items[i].ListingID
	}

	listings, err := s.listingRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load basket listings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load basket")
	}

	byID := make(map[uuid.UUID]*catalog.Listing, len(listings))
	for i := range listings {
		byID[listings[i].ID] = &listings[i]
	}

	for i := range cart.Items {
		item := &cart.Items[i]
		listing, ok := byID[item.ListingID]
		if !ok {
			// Listing disappeared with a feed re-import; show the
			// position without prices so the user can remove it.
			info.Items = append(info.Items, CartItemInfo{
				ID:        item.ID,
				ListingID: item.ListingID,
				Quantity:  item.Quantity,
			})
			continue
		}

		amount := listing.PriceRRC.Mul(decimal.NewFromInt(int64(item.Quantity)))
		info.Items = append(info.Items, CartItemInfo{
			ID:        item.ID,
			ListingID: item.ListingID,
			Model:     listing.Model,
			Quantity:  item.Quantity,
			Price:     listing.Price,
			PriceRRC:  listing.PriceRRC,
			Amount:    amount,
		})
		info.Total = info.Total.Add(amount)
	}

	return info, nil
}
