package models

import (
	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/domain/shared"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email        string            `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string            `gorm:"type:varchar(255);not null"`
	FirstName    string            `gorm:"type:varchar(100);not null"`
	LastName     string            `gorm:"type:varchar(100);not null"`
	Company      string            `gorm:"type:varchar(200)"`
	Position     string            `gorm:"type:varchar(100)"`
	Type         identity.UserType `gorm:"type:varchar(10);not null;default:'buyer'"`
	Active       bool              `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Company:      m.Company,
		Position:     m.Position,
		Type:         m.Type,
		Active:       m.Active,
	}
	return user
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Company = u.Company
	m.Position = u.Position
	m.Type = u.Type
	m.Active = u.Active
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// ContactModel is the persistence model for delivery contacts.
type ContactModel struct {
	BaseModel
	UserID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Type   identity.ContactType `gorm:"type:varchar(10);not null"`
	Value  string               `gorm:"type:varchar(500);not null"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the persistence model to a domain Contact.
func (m *ContactModel) ToDomain() *identity.Contact {
	return &identity.Contact{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Type:       m.Type,
		Value:      m.Value,
	}
}

// FromDomain populates the persistence model from a domain Contact.
func (m *ContactModel) FromDomain(c *identity.Contact) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.UserID = c.UserID
	m.Type = c.Type
	m.Value = c.Value
}

// ContactModelFromDomain creates a new persistence model from a domain Contact.
func ContactModelFromDomain(c *identity.Contact) *ContactModel {
	m := &ContactModel{}
	m.FromDomain(c)
	return m
}

// ConfirmEmailTokenModel is the persistence model for email confirmation tokens.
type ConfirmEmailTokenModel struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Key    string    `gorm:"type:varchar(64);not null"`
}

// TableName returns the table name for GORM
func (ConfirmEmailTokenModel) TableName() string {
	return "confirm_email_tokens"
}

// ToDomain converts the persistence model to a domain ConfirmEmailToken.
func (m *ConfirmEmailTokenModel) ToDomain() *identity.ConfirmEmailToken {
	return &identity.ConfirmEmailToken{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Key:        m.Key,
	}
}

// FromDomain populates the persistence model from a domain ConfirmEmailToken.
func (m *ConfirmEmailTokenModel) FromDomain(t *identity.ConfirmEmailToken) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.UserID = t.UserID
	m.Key = t.Key
}

// ConfirmEmailTokenModelFromDomain creates a new persistence model from a domain token.
func ConfirmEmailTokenModelFromDomain(t *identity.ConfirmEmailToken) *ConfirmEmailTokenModel {
	m := &ConfirmEmailTokenModel{}
	m.FromDomain(t)
	return m
}
