package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopnet/backend/internal/domain/shared"
)

// Listing represents a concrete offer of a product by a shop: price,
// recommended retail price, available quantity and free-form parameters.
// (shop, external id) is unique: re-importing a feed replaces the listing.
type Listing struct {
	shared.BaseEntity
	ProductID  uuid.UUID
	ShopID     uuid.UUID
	ExternalID int64
	Model      string
	Quantity   int
	Price      decimal.Decimal
	PriceRRC   decimal.Decimal
	Parameters map[string]string
}

// NewListing creates a new listing
func NewListing(productID, shopID uuid.UUID, externalID int64, model string, quantity int, price, priceRRC decimal.Decimal) (*Listing, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LISTING", "Product ID cannot be empty")
	}
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LISTING", "Shop ID cannot be empty")
	}
	if externalID <= 0 {
		return nil, shared.NewDomainError("INVALID_LISTING", "External ID must be positive")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_LISTING", "Quantity cannot be negative")
	}
	if price.IsNegative() || priceRRC.IsNegative() {
		return nil, shared.NewDomainError("INVALID_LISTING", "Price cannot be negative")
	}

	return &Listing{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		ShopID:     shopID,
		ExternalID: externalID,
		Model:      strings.TrimSpace(model),
		Quantity:   quantity,
		Price:      price,
		PriceRRC:   priceRRC,
		Parameters: make(map[string]string),
	}, nil
}

// SetParameter records a free-form attribute of the offer
func (l *Listing) SetParameter(name, value string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PARAMETER", "Parameter name cannot be empty")
	}

	if l.Parameters == nil {
		l.Parameters = make(map[string]string)
	}
	l.Parameters[name] = value
	l.UpdatedAt = time.Now()

	return nil
}

// HasStock reports whether the requested quantity is available
func (l *Listing) HasStock(quantity int) bool {
	return quantity > 0 && quantity <= l.Quantity
}
