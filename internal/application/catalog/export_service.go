package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"github.com/shopnet/backend/internal/infrastructure/feed"
	"go.uber.org/zap"
)

// ExportService renders a partner's current catalog back into the same
// YAML format imports consume, so an export can be re-imported as-is.
type ExportService struct {
	shopRepo     shop.ShopRepository
	listingRepo  catalog.ListingRepository
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(
	shopRepo shop.ShopRepository,
	listingRepo catalog.ListingRepository,
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		shopRepo:     shopRepo,
		listingRepo:  listingRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Export builds the price list of the shop owned by the given user
func (s *ExportService) Export(ctx context.Context, userID uuid.UUID) (*feed.File, error) {
	partnerShop, err := s.shopRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("SHOP_NOT_FOUND", "No shop is linked to this account")
	}

	categories, err := s.categoryRepo.FindByShop(ctx, partnerShop.ID)
	if err != nil {
		s.logger.Error("Failed to load shop categories", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to export price list")
	}

	listings, err := s.listingRepo.FindByShop(ctx, partnerShop.ID)
	if err != nil {
		s.logger.Error("Failed to load shop listings", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to export price list")
	}

	file := &feed.File{
		Shop:       partnerShop.Name,
		Categories: make([]feed.Category, 0, len(categories)),
		Goods:      make([]feed.Item, 0, len(listings)),
	}

	categoryExtByID := make(map[uuid.UUID]int64, len(categories))
	for i := range categories {
		categoryExtByID[categories[i].ID] = categories[i].ExternalID
		file.Categories = append(file.Categories, feed.Category{
			ID:   categories[i].ExternalID,
			Name: categories[i].Name,
		})
	}

	productCache := make(map[uuid.UUID]*catalog.Product)
	for i := range listings {
		listing := &listings[i]

		product, ok := productCache[listing.ProductID]
		if !ok {
			product, err = s.productRepo.FindByID(ctx, listing.ProductID)
			if err != nil {
				s.logger.Error("Failed to load product for export",
					zap.String("product_id", listing.ProductID.String()),
					zap.Error(err))
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to export price list")
			}
			productCache[listing.ProductID] = product
		}

		file.Goods = append(file.Goods, feed.Item{
			ID:         listing.ExternalID,
			Category:   categoryExtByID[product.CategoryID],
			Model:      listing.Model,
			Name:       product.Name,
			Price:      listing.Price.String(),
			PriceRRC:   listing.PriceRRC.String(),
			Quantity:   listing.Quantity,
			Parameters: listing.Parameters,
		})
	}

	return file, nil
}
