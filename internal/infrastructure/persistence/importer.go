package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormImporter implements catalog.Importer. The whole catalog of a shop
// is replaced inside one transaction: either the new price list lands
// completely or the previous catalog stays untouched.
type GormImporter struct {
	db *gorm.DB
}

// NewGormImporter creates a new GormImporter
func NewGormImporter(db *gorm.DB) *GormImporter {
	return &GormImporter{db: db}
}

// ReplaceShopCatalog replaces the shop's listings with the price list contents.
// Categories are shared across shops: they are created or renamed, never deleted.
func (i *GormImporter) ReplaceShopCatalog(ctx context.Context, shopID uuid.UUID, categories []catalog.ImportCategory, items []catalog.ImportItem) error {
	if shopID == uuid.Nil {
		return shared.NewDomainError("INVALID_SHOP", "Shop ID cannot be empty")
	}

	return i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryIDs, err := upsertCategories(tx, categories)
		if err != nil {
			return err
		}

		// Full replace: drop the shop's previous listings before loading
		// the new ones. Parameters go with them.
		if err := tx.Exec(
			"DELETE FROM listing_parameters WHERE listing_id IN (SELECT id FROM listings WHERE shop_id = ?)",
			shopID,
		).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ListingModel{}, "shop_id = ?", shopID).Error; err != nil {
			return err
		}

		for idx := range items {
			if err := insertItem(tx, shopID, categoryIDs, &items[idx]); err != nil {
				return err
			}
		}

		return nil
	})
}

// upsertCategories creates or renames the feed categories and returns
// a lookup from external ID to category ID
func upsertCategories(tx *gorm.DB, categories []catalog.ImportCategory) (map[int64]uuid.UUID, error) {
	ids := make(map[int64]uuid.UUID, len(categories))

	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if c.ExternalID <= 0 || name == "" {
			return nil, shared.NewDomainError("INVALID_FEED",
				fmt.Sprintf("Category %d has no valid id or name", c.ExternalID))
		}

		var model models.CategoryModel
		err := tx.Where("external_id = ?", c.ExternalID).First(&model).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			category, err := catalog.NewCategory(c.ExternalID, name)
			if err != nil {
				return nil, err
			}
			model = *models.CategoryModelFromDomain(category)
			if err := tx.Create(&model).Error; err != nil {
				return nil, err
			}
		case err != nil:
			return nil, err
		default:
			if model.Name != name {
				model.Name = name
				model.UpdatedAt = time.Now()
				if err := tx.Save(&model).Error; err != nil {
					return nil, err
				}
			}
		}

		ids[c.ExternalID] = model.ID
	}

	return ids, nil
}

// insertItem resolves the item's product and creates its listing
func insertItem(tx *gorm.DB, shopID uuid.UUID, categoryIDs map[int64]uuid.UUID, item *catalog.ImportItem) error {
	categoryID, ok := categoryIDs[item.CategoryExt]
	if !ok {
		return shared.NewDomainError("INVALID_FEED",
			fmt.Sprintf("Item %d references unknown category %d", item.ExternalID, item.CategoryExt))
	}

	price, err := decimal.NewFromString(strings.TrimSpace(item.Price))
	if err != nil {
		return shared.NewDomainError("INVALID_FEED",
			fmt.Sprintf("Item %d has invalid price %q", item.ExternalID, item.Price))
	}
	priceRRC, err := decimal.NewFromString(strings.TrimSpace(item.PriceRRC))
	if err != nil {
		return shared.NewDomainError("INVALID_FEED",
			fmt.Sprintf("Item %d has invalid retail price %q", item.ExternalID, item.PriceRRC))
	}

	productID, err := findOrCreateProduct(tx, item.Name, categoryID)
	if err != nil {
		return err
	}

	listing, err := catalog.NewListing(productID, shopID, item.ExternalID, item.Model, item.Quantity, price, priceRRC)
	if err != nil {
		return err
	}
	for name, value := range item.Parameters {
		if err := listing.SetParameter(name, value); err != nil {
			return err
		}
	}

	model := models.ListingModelFromDomain(listing)
	return tx.Create(model).Error
}

// findOrCreateProduct returns the product matching (name, category),
// creating it on first sight
func findOrCreateProduct(tx *gorm.DB, name string, categoryID uuid.UUID) (uuid.UUID, error) {
	name = strings.TrimSpace(name)

	var model models.ProductModel
	err := tx.Where("name = ? AND category_id = ?", name, categoryID).First(&model).Error
	if err == nil {
		return model.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	product, err := catalog.NewProduct(name, categoryID)
	if err != nil {
		return uuid.Nil, err
	}
	model = *models.ProductModelFromDomain(product)
	if err := tx.Create(&model).Error; err != nil {
		return uuid.Nil, err
	}
	return model.ID, nil
}

// Ensure GormImporter implements Importer
var _ catalog.Importer = (*GormImporter)(nil)
