package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// FindByID finds a category by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByExternalID finds a category by its feed identifier
	FindByExternalID(ctx context.Context, externalID int64) (*Category, error)

	// FindAll returns categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// FindByShop returns categories linked to a shop
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]Category, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByNameAndCategory finds a product by exact name within a category
	FindByNameAndCategory(ctx context.Context, name string, categoryID uuid.UUID) (*Product, error)
}

// ListingRepository defines the interface for listing persistence
type ListingRepository interface {
	// Save creates or updates a listing with its parameters
	Save(ctx context.Context, listing *Listing) error

	// FindByID finds a listing by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Listing, error)

	// FindByIDs finds listings by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Listing, error)

	// FindByShop returns all listings of a shop
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]Listing, error)

	// FindForSale returns listings from shops accepting orders,
	// optionally narrowed by shop and category
	FindForSale(ctx context.Context, shopID, categoryID *uuid.UUID, filter shared.Filter) ([]Listing, error)
}

// ImportCategory is one category record from a partner price list
type ImportCategory struct {
	ExternalID int64
	Name       string
}

// ImportItem is one offer record from a partner price list
type ImportItem struct {
	ExternalID  int64
	CategoryExt int64
	Model       string
	Name        string
	Price       string
	PriceRRC    string
	Quantity    int
	Parameters  map[string]string
}

// Importer replaces a shop's catalog with the contents of a price list.
// The whole replacement happens in a single transaction: on error the
// previous catalog stays untouched.
type Importer interface {
	ReplaceShopCatalog(ctx context.Context, shopID uuid.UUID, categories []ImportCategory, items []ImportItem) error
}
