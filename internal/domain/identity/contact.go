package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
)

// ContactType represents the kind of delivery contact
type ContactType string

const (
	ContactTypeEmail   ContactType = "email"
	ContactTypePhone   ContactType = "phone"
	ContactTypeAddress ContactType = "address"
)

// IsValid checks if the contact type is known
func (t ContactType) IsValid() bool {
	switch t {
	case ContactTypeEmail, ContactTypePhone, ContactTypeAddress:
		return true
	}
	return false
}

// Contact represents a delivery contact attached to a user
type Contact struct {
	shared.BaseEntity
	UserID uuid.UUID
	Type   ContactType
	Value  string
}

// NewContact creates a new contact for a user
func NewContact(userID uuid.UUID, contactType ContactType, value string) (*Contact, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if !contactType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTACT_TYPE", "Contact type must be email, phone or address")
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, shared.NewDomainError("INVALID_CONTACT_VALUE", "Contact value cannot be empty")
	}
	if len(value) > 500 {
		return nil, shared.NewDomainError("INVALID_CONTACT_VALUE", "Contact value cannot exceed 500 characters")
	}

	return &Contact{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Type:       contactType,
		Value:      value,
	}, nil
}

// UpdateValue replaces the contact value
func (c *Contact) UpdateValue(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return shared.NewDomainError("INVALID_CONTACT_VALUE", "Contact value cannot be empty")
	}

	c.Value = value
	c.UpdatedAt = time.Now()

	return nil
}
