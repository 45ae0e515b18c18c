package catalog

import (
	"strings"
	"time"

	"github.com/shopnet/backend/internal/domain/shared"
)

// Category represents a product category shared across shops.
// ExternalID is the identifier used in partner price lists.
type Category struct {
	shared.BaseEntity
	ExternalID int64
	Name       string
}

// NewCategory creates a new category
func NewCategory(externalID int64, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if externalID <= 0 {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category external ID must be positive")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category name cannot exceed 100 characters")
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		ExternalID: externalID,
		Name:       name,
	}, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category name cannot be empty")
	}

	c.Name = name
	c.UpdatedAt = time.Now()

	return nil
}
