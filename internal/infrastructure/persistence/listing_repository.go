package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/catalog"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormListingRepository implements ListingRepository using GORM
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GormListingRepository
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// Save creates or updates a listing with its parameters.
// Existing parameters are replaced to match the domain entity.
func (r *GormListingRepository) Save(ctx context.Context, listing *catalog.Listing) error {
	model := models.ListingModelFromDomain(listing)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ListingParameterModel{}, "listing_id = ?", listing.ID).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

// FindByID finds a listing by ID
func (r *GormListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Listing, error) {
	var model models.ListingModel
	if err := r.db.WithContext(ctx).
		Preload("Parameters").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds listings by their IDs
func (r *GormListingRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Listing, error) {
	if len(ids) == 0 {
		return []catalog.Listing{}, nil
	}

	var listingModels []models.ListingModel
	if err := r.db.WithContext(ctx).
		Preload("Parameters").
		Where("id IN ?", ids).
		Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]catalog.Listing, len(listingModels))
	for i := range listingModels {
		listings[i] = *listingModels[i].ToDomain()
	}
	return listings, nil
}

// FindByShop returns all listings of a shop
func (r *GormListingRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]catalog.Listing, error) {
	var listingModels []models.ListingModel
	if err := r.db.WithContext(ctx).
		Preload("Parameters").
		Where("shop_id = ?", shopID).
		Order("external_id ASC").
		Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]catalog.Listing, len(listingModels))
	for i := range listingModels {
		listings[i] = *listingModels[i].ToDomain()
	}
	return listings, nil
}

// FindForSale returns listings from shops accepting orders,
// optionally narrowed by shop and category
func (r *GormListingRepository) FindForSale(ctx context.Context, shopID, categoryID *uuid.UUID, filter shared.Filter) ([]catalog.Listing, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ListingModel{}).
		Preload("Parameters").
		Joins("JOIN shops ON shops.id = listings.shop_id").
		Where("shops.accepting_orders = ?", true)

	if shopID != nil {
		query = query.Where("listings.shop_id = ?", *shopID)
	}
	if categoryID != nil {
		query = query.
			Joins("JOIN products ON products.id = listings.product_id").
			Where("products.category_id = ?", *categoryID)
	}

	query = r.applyFilter(query, filter)

	var listingModels []models.ListingModel
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]catalog.Listing, len(listingModels))
	for i := range listingModels {
		listings[i] = *listingModels[i].ToDomain()
	}
	return listings, nil
}

// applyFilter applies filter options including pagination and ordering
func (r *GormListingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("listings.model ILIKE ?", "%"+filter.Search+"%")
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ListingSortFields, "created_at")
	query = query.Order("listings." + orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// Ensure GormListingRepository implements ListingRepository
var _ catalog.ListingRepository = (*GormListingRepository)(nil)
