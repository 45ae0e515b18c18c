package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/domain/order"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"go.uber.org/zap"
)

// CheckoutService converts a basket into a placed order.
// An order requires a delivery address and a phone contact; prices are
// snapshotted from the listings at the moment of checkout.
type CheckoutService struct {
	cartRepo    order.CartRepository
	orderRepo   order.OrderRepository
	listingRepo catalog.ListingRepository
	shopRepo    shop.ShopRepository
	contactRepo identity.ContactRepository
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartRepo order.CartRepository,
	orderRepo order.OrderRepository,
	listingRepo catalog.ListingRepository,
	shopRepo shop.ShopRepository,
	contactRepo identity.ContactRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
		shopRepo:    shopRepo,
		contactRepo: contactRepo,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Checkout places an order from the user's basket
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*OrderInfo, error) {
	cart, err := s.cartRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("EMPTY_CART", "Basket is empty")
		}
		s.logger.Error("Failed to load basket", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to place order")
	}
	if cart.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Basket is empty")
	}

	if err := s.checkContacts(ctx, input.UserID, input.ContactID); err != nil {
		return nil, err
	}

	items, err := s.buildOrderItems(ctx, cart)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(input.UserID, input.ContactID, items)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, placed); err != nil {
		s.logger.Error("Failed to save order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to place order")
	}

	cart.Clear()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		s.logger.Warn("Failed to clear basket after checkout",
			zap.String("order_id", placed.ID.String()),
			zap.Error(err))
	}

	if err := s.eventBus.Publish(ctx, placed.GetDomainEvents()...); err != nil {
		s.logger.Error("Failed to publish order events", zap.Error(err))
	}
	placed.ClearDomainEvents()

	s.logger.Info("Order placed",
		zap.String("order_id", placed.ID.String()),
		zap.String("user_id", input.UserID.String()),
		zap.Int("items", len(placed.Items)))

	info := newOrderInfo(placed)
	return &info, nil
}

// checkContacts verifies the user has an address and a phone on file and
// that the chosen delivery contact is theirs
func (s *CheckoutService) checkContacts(ctx context.Context, userID, contactID uuid.UUID) error {
	contacts, err := s.contactRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load contacts", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to place order")
	}

	var hasAddress, hasPhone, ownsContact bool
	for i := range contacts {
		switch contacts[i].Type {
		case identity.ContactTypeAddress:
			hasAddress = true
		case identity.ContactTypePhone:
			hasPhone = true
		}
		if contacts[i].ID == contactID {
			ownsContact = true
		}
	}

	if !hasAddress || !hasPhone {
		return shared.NewDomainError("CONTACTS_REQUIRED",
			"An address and a phone contact are required to place an order")
	}
	if !ownsContact {
		return shared.NewDomainError("INVALID_CONTACT", "Delivery contact does not belong to this account")
	}

	return nil
}

// buildOrderItems snapshots prices and validates stock and shop state
func (s *CheckoutService) buildOrderItems(ctx context.Context, cart *order.Cart) ([]order.OrderItem, error) {
	ids := make([]uuid.UUID, len(cart.Items))
	for i := range cart.Items {
		ids[i] = cart.Items[i].ListingID
	}

	listings, err := s.listingRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load basket listings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to place order")
	}
	byID := make(map[uuid.UUID]*catalog.Listing, len(listings))
	for i := range listings {
		byID[listings[i].ID] = &listings[i]
	}

	accepting := make(map[uuid.UUID]bool)
	items := make([]order.OrderItem, 0, len(cart.Items))
	for i := range cart.Items {
		cartItem := &cart.Items[i]

		listing, ok := byID[cartItem.ListingID]
		if !ok {
			return nil, shared.NewDomainError("UNAVAILABLE", "A basket item is no longer offered")
		}
		if !listing.HasStock(cartItem.Quantity) {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				"Requested quantity is not available")
		}

		ok, seen := accepting[listing.ShopID]
		if !seen {
			listingShop, err := s.shopRepo.FindByID(ctx, listing.ShopID)
			if err != nil {
				s.logger.Error("Failed to load shop", zap.Error(err))
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to place order")
			}
			ok = listingShop.AcceptingOrders
			accepting[listing.ShopID] = ok
		}
		if !ok {
			return nil, shared.NewDomainError("SHOP_NOT_ACCEPTING",
				"A shop in the basket is not accepting orders right now")
		}

		item, err := order.NewOrderItem(uuid.Nil, listing.ID, listing.ShopID,
			listing.Model, cartItem.Quantity, listing.Price, listing.PriceRRC)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, nil
}
