package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appidentity "github.com/shopnet/backend/internal/application/identity"
	"github.com/shopnet/backend/internal/domain/identity"
	"github.com/shopnet/backend/internal/interfaces/http/dto"
	"github.com/shopnet/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles registration and authentication endpoints
type AuthHandler struct {
	BaseHandler
	userService *appidentity.UserService
	authService *appidentity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService *appidentity.UserService, authService *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
	}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.POST("/register", h.Register)
		user.POST("/register/confirm", h.ConfirmEmail)
		user.POST("/login", h.Login)
		user.POST("/logout", h.Logout)
	}
	rg.POST("/auth/refresh", h.Refresh)
}

// Register creates a new account and sends a confirmation token by email
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	userType := identity.UserTypeBuyer
	if req.Type == string(identity.UserTypeShop) {
		userType = identity.UserTypeShop
	}

	result, err := h.userService.Register(c.Request.Context(), appidentity.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Position:  req.Position,
		Type:      userType,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.RegisterResponse{
		ID:    result.UserID.String(),
		Email: result.Email,
	})
}

// ConfirmEmail activates an account with the emailed token
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	var req dto.ConfirmEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	err := h.userService.ConfirmEmail(c.Request.Context(), appidentity.ConfirmEmailInput{
		Email: req.Email,
		Key:   req.Token,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"confirmed": true})
}

// Login exchanges credentials for a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), appidentity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewTokenResponse(result))
}

// Logout revokes the access token presented in the Authorization header
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input := appidentity.LogoutInput{UserID: userID}
	if claims := middleware.GetJWTClaims(c); claims != nil {
		input.TokenJTI = claims.ID
		if claims.ExpiresAt != nil {
			input.TokenTTL = time.Until(claims.ExpiresAt.Time)
		}
	}

	if err := h.authService.Logout(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"logged_out": true})
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), appidentity.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.NewRefreshResponse(result))
}
