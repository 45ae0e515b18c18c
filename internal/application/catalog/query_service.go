package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/domain/shop"
	"go.uber.org/zap"
)

// QueryService serves the buyer-facing catalog reads
type QueryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	listingRepo  catalog.ListingRepository
	shopRepo     shop.ShopRepository
	logger       *zap.Logger
}

// NewQueryService creates a new catalog query service
func NewQueryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	listingRepo catalog.ListingRepository,
	shopRepo shop.ShopRepository,
	logger *zap.Logger,
) *QueryService {
	return &QueryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		listingRepo:  listingRepo,
		shopRepo:     shopRepo,
		logger:       logger,
	}
}

// ListCategories returns catalog categories
func (s *QueryService) ListCategories(ctx context.Context, filter shared.Filter) ([]CategoryInfo, error) {
	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list categories")
	}

	infos := make([]CategoryInfo, len(categories))
	for i := range categories {
		infos[i] = newCategoryInfo(&categories[i])
	}
	return infos, nil
}

// ListShops returns shops currently accepting orders
func (s *QueryService) ListShops(ctx context.Context, filter shared.Filter) ([]ShopInfo, error) {
	shops, err := s.shopRepo.FindAccepting(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list shops", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list shops")
	}

	infos := make([]ShopInfo, len(shops))
	for i := range shops {
		infos[i] = newShopInfo(&shops[i])
	}
	return infos, nil
}

// ListProducts returns sellable offers, optionally narrowed by shop and
// category. Only shops accepting orders contribute offers.
func (s *QueryService) ListProducts(ctx context.Context, input ListProductsInput) ([]ListingInfo, error) {
	listings, err := s.listingRepo.FindForSale(ctx, input.ShopID, input.CategoryID, input.Filter)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list products")
	}

	productNames := make(map[uuid.UUID]string)
	infos := make([]ListingInfo, 0, len(listings))
	for i := range listings {
		listing := &listings[i]

		name, ok := productNames[listing.ProductID]
		if !ok {
			product, err := s.productRepo.FindByID(ctx, listing.ProductID)
			if err != nil {
				s.logger.Warn("Listing references missing product",
					zap.String("listing_id", listing.ID.String()),
					zap.Error(err))
				continue
			}
			name = product.Name
			productNames[listing.ProductID] = name
		}

		infos = append(infos, newListingInfo(listing, name))
	}

	return infos, nil
}

// GetListing returns one offer with its product name
func (s *QueryService) GetListing(ctx context.Context, id uuid.UUID) (*ListingInfo, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Offer not found")
	}

	product, err := s.productRepo.FindByID(ctx, listing.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Offer not found")
	}

	info := newListingInfo(listing, product.Name)
	return &info, nil
}
