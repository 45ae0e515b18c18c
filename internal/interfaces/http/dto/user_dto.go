package dto

import (
	appidentity "github.com/shopnet/backend/internal/application/identity"
)

// UserResponse describes an account
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Position  string `json:"position,omitempty"`
	Type      string `json:"type"`
}

// NewUserResponse builds a UserResponse from application user info
func NewUserResponse(info appidentity.UserInfo) UserResponse {
	return UserResponse{
		ID:        info.ID.String(),
		Email:     info.Email,
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Company:   info.Company,
		Position:  info.Position,
		Type:      string(info.Type),
	}
}

// UpdateProfileRequest is the payload for profile updates
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Company   string `json:"company" binding:"max=100"`
	Position  string `json:"position" binding:"max=100"`
}

// ChangePasswordRequest is the payload for password changes
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// ContactRequest is the payload for creating a delivery contact
type ContactRequest struct {
	Type  string `json:"type" binding:"required,oneof=email phone address"`
	Value string `json:"value" binding:"required,max=500"`
}

// ContactResponse describes one delivery contact
type ContactResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewContactResponse builds a ContactResponse from application contact info
func NewContactResponse(info appidentity.ContactInfo) ContactResponse {
	return ContactResponse{
		ID:    info.ID.String(),
		Type:  string(info.Type),
		Value: info.Value,
	}
}

// DeleteContactsRequest is the payload for deleting contacts
type DeleteContactsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// DeletedResponse reports how many records were removed
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
