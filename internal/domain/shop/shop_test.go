package shop

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShop(t *testing.T) {
	t.Run("creates shop accepting orders", func(t *testing.T) {
		ownerID := uuid.New()
		s, err := NewShop("Связной", &ownerID)

		require.NoError(t, err)
		assert.Equal(t, "Связной", s.Name)
		assert.True(t, s.AcceptingOrders)
		assert.Equal(t, ownerID, *s.UserID)
	})

	t.Run("allows shop without owner", func(t *testing.T) {
		s, err := NewShop("Евросеть", nil)

		require.NoError(t, err)
		assert.Nil(t, s.UserID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewShop("  ", nil)

		assert.Error(t, err)
	})
}

func TestShop_SetFeedURL(t *testing.T) {
	s, err := NewShop("Связной", nil)
	require.NoError(t, err)

	t.Run("accepts absolute http url", func(t *testing.T) {
		err := s.SetFeedURL("https://example.com/shop1.yaml")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/shop1.yaml", s.URL)
	})

	t.Run("rejects relative url", func(t *testing.T) {
		err := s.SetFeedURL("shop1.yaml")

		assert.Error(t, err)
	})

	t.Run("rejects unsupported scheme", func(t *testing.T) {
		err := s.SetFeedURL("ftp://example.com/shop1.yaml")

		assert.Error(t, err)
	})
}

func TestShop_SetAcceptingOrders(t *testing.T) {
	s, err := NewShop("Связной", nil)
	require.NoError(t, err)

	s.SetAcceptingOrders(false)
	assert.False(t, s.AcceptingOrders)

	s.SetAcceptingOrders(true)
	assert.True(t, s.AcceptingOrders)
}
