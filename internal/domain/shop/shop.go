package shop

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
)

// Shop represents a partner shop selling through the marketplace
type Shop struct {
	shared.BaseAggregateRoot
	Name            string
	URL             string
	UserID          *uuid.UUID
	AcceptingOrders bool
}

// NewShop creates a new shop, accepting orders by default
func NewShop(name string, ownerID *uuid.UUID) (*Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot exceed 100 characters")
	}

	return &Shop{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		UserID:            ownerID,
		AcceptingOrders:   true,
	}, nil
}

// Rename changes the shop name
func (s *Shop) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_SHOP_NAME", "Shop name cannot be empty")
	}

	s.Name = name
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetFeedURL records the URL the shop's price list is imported from
func (s *Shop) SetFeedURL(feedURL string) error {
	if err := ValidateFeedURL(feedURL); err != nil {
		return err
	}

	s.URL = feedURL
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetAcceptingOrders toggles whether the shop takes new orders
func (s *Shop) SetAcceptingOrders(accepting bool) {
	s.AcceptingOrders = accepting
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// ValidateFeedURL checks that the URL is an absolute http(s) URL
func ValidateFeedURL(feedURL string) error {
	if strings.TrimSpace(feedURL) == "" {
		return shared.NewDomainError("INVALID_URL", "URL cannot be empty")
	}

	parsed, err := url.Parse(feedURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return shared.NewDomainError("INVALID_URL", "URL must be absolute")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return shared.NewDomainError("INVALID_URL", "URL scheme must be http or https")
	}

	return nil
}
