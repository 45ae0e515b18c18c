package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/shopnet/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormConfirmTokenRepository implements ConfirmTokenRepository using GORM
type GormConfirmTokenRepository struct {
	db *gorm.DB
}

// NewGormConfirmTokenRepository creates a new GormConfirmTokenRepository
func NewGormConfirmTokenRepository(db *gorm.DB) *GormConfirmTokenRepository {
	return &GormConfirmTokenRepository{db: db}
}

// Save creates a token
func (r *GormConfirmTokenRepository) Save(ctx context.Context, token *identity.ConfirmEmailToken) error {
	model := models.ConfirmEmailTokenModelFromDomain(token)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByUserAndKey finds a token by owner and key
func (r *GormConfirmTokenRepository) FindByUserAndKey(ctx context.Context, userID uuid.UUID, key string) (*identity.ConfirmEmailToken, error) {
	if key == "" {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Token key cannot be empty")
	}
	var model models.ConfirmEmailTokenModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Delete deletes a token by ID
func (r *GormConfirmTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ConfirmEmailTokenModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByUser deletes all tokens belonging to a user
func (r *GormConfirmTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.ConfirmEmailTokenModel{}, "user_id = ?", userID).Error
}

// Ensure GormConfirmTokenRepository implements ConfirmTokenRepository
var _ identity.ConfirmTokenRepository = (*GormConfirmTokenRepository)(nil)
