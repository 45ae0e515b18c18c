package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appidentity "github.com/shopnet/backend/internal/application/identity"
	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/interfaces/http/dto"
)

// UserHandler handles profile and contact endpoints
type UserHandler struct {
	BaseHandler
	userService    *appidentity.UserService
	contactService *appidentity.ContactService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *appidentity.UserService, contactService *appidentity.ContactService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		contactService: contactService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.GET("/profile", h.GetProfile)
		user.PUT("/profile", h.UpdateProfile)
		user.POST("/password", h.ChangePassword)
		user.GET("/contacts", h.ListContacts)
		user.POST("/contacts", h.AddContact)
		user.DELETE("/contacts", h.DeleteContacts)
	}
}

// GetProfile returns the authenticated user's profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewUserResponse(*info))
}

// UpdateProfile changes the editable profile fields
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	info, err := h.userService.UpdateProfile(c.Request.Context(), appidentity.UpdateProfileInput{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Position:  req.Position,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewUserResponse(*info))
}

// ChangePassword verifies the old password and sets a new one
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	err = h.userService.ChangePassword(c.Request.Context(), appidentity.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"changed": true})
}

// ListContacts returns the user's delivery contacts
func (h *UserHandler) ListContacts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]dto.ContactResponse, len(contacts))
	for i, contact := range contacts {
		out[i] = dto.NewContactResponse(contact)
	}
	h.Success(c, out)
}

// AddContact stores a new delivery contact
func (h *UserHandler) AddContact(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	info, err := h.contactService.AddContact(c.Request.Context(), appidentity.AddContactInput{
		UserID: userID,
		Type:   identity.ContactType(req.Type),
		Value:  req.Value,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.NewContactResponse(*info))
}

// DeleteContacts removes the listed contacts
func (h *UserHandler) DeleteContacts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.DeleteContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ids := make([]uuid.UUID, len(req.IDs))
	for i, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid contact ID")
			return
		}
		ids[i] = id
	}

	deleted, err := h.contactService.DeleteContacts(c.Request.Context(), appidentity.DeleteContactsInput{
		UserID: userID,
		IDs:    ids,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.DeletedResponse{Deleted: deleted})
}
