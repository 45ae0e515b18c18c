package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
)

// Product represents an abstract catalog product, independent of any shop.
// Concrete per-shop offers are Listings.
type Product struct {
	shared.BaseEntity
	Name       string
	CategoryID uuid.UUID
}

// NewProduct creates a new product in a category
func NewProduct(name string, categoryID uuid.UUID) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product name cannot be empty")
	}
	if len(name) > 300 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product name cannot exceed 300 characters")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Category ID cannot be empty")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		CategoryID: categoryID,
	}, nil
}
