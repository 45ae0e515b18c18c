package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/order"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Save persists the cart together with its items.
// Items are replaced wholesale so removed positions disappear.
func (r *GormCartRepository) Save(ctx context.Context, cart *order.Cart) error {
	model := models.CartModelFromDomain(cart)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItemModel{}, "cart_id = ?", cart.ID).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

// FindByUser finds the cart owned by a user
func (r *GormCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*order.Cart, error) {
	var model models.CartModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Delete deletes a cart by ID
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CartModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCartRepository implements CartRepository
var _ order.CartRepository = (*GormCartRepository)(nil)
