package models

import (
	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shop"
)

// ShopModel is the persistence model for the Shop domain entity.
type ShopModel struct {
	AggregateModel
	Name            string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	URL             string     `gorm:"type:varchar(500)"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	AcceptingOrders bool       `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ShopModel) TableName() string {
	return "shops"
}

// ToDomain converts the persistence model to a domain Shop entity.
func (m *ShopModel) ToDomain() *shop.Shop {
	s := &shop.Shop{
		Name:            m.Name,
		URL:             m.URL,
		UserID:          m.UserID,
		AcceptingOrders: m.AcceptingOrders,
	}
	m.PopulateAggregateRoot(&s.BaseAggregateRoot)
	return s
}

// FromDomain populates the persistence model from a domain Shop entity.
func (m *ShopModel) FromDomain(s *shop.Shop) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.URL = s.URL
	m.UserID = s.UserID
	m.AcceptingOrders = s.AcceptingOrders
}

// ShopModelFromDomain creates a new persistence model from a domain Shop entity.
func ShopModelFromDomain(s *shop.Shop) *ShopModel {
	m := &ShopModel{}
	m.FromDomain(s)
	return m
}
