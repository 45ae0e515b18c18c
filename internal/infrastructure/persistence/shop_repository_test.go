package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func shopRows(id uuid.UUID, name string, accepting bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "version",
		"name", "url", "user_id", "accepting_orders",
	}).AddRow(id, now, now, 1, name, "https://example.com/feed.yaml", nil, accepting)
}

func TestGormShopRepository_FindByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormShopRepository(db)
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "shops" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(id, 1).
			WillReturnRows(shopRows(id, "Svyaznoy", true))

		s, err := repo.FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "Svyaznoy", s.Name)
		assert.True(t, s.AcceptingOrders)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "shops" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(id, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormShopRepository_FindAccepting(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormShopRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "shops" WHERE accepting_orders = \$1.*ORDER BY name ASC`).
		WithArgs(true).
		WillReturnRows(shopRows(uuid.New(), "Evroset", true))

	shops, err := repo.FindAccepting(context.Background(), shared.Filter{})

	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "Evroset", shops[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormShopRepository_FindByName_EmptyRejected(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := NewGormShopRepository(db)

	_, err := repo.FindByName(context.Background(), "   ")
	assert.Error(t, err)
}
