package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/geonjuring/parking-system/internal/errors"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/repository"
	"github.com/geonjuring/parking-system/internal/services"
)

// UserHandler handles account HTTP requests.
type UserHandler struct {
	service services.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRequest carries a new account. Usernames are at least 3
// characters, passwords at least 4.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=4"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest carries account credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest verifies the current password before setting
// the new one.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=4"`
}

// DeleteAccountRequest confirms the password before the account and
// all of its data are removed.
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// UserResponse wraps one account.
type UserResponse struct {
	User *models.User `json:"user"`
}

// Register handles POST /api/v1/auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			apierrors.Conflict(c, "Username is already taken")
			return
		}
		apierrors.InternalServerError(c, "Failed to register user", err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{User: user})
}

// Login handles POST /api/v1/auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "Invalid username or password")
			return
		}
		apierrors.InternalServerError(c, "Failed to log in", err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: user})
}

// ChangePassword handles PUT /api/v1/users/:user/password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	username := c.Param("user")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	err := h.service.ChangePassword(c.Request.Context(), username, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "Current password does not match")
			return
		}
		apierrors.InternalServerError(c, "Failed to change password", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAccount handles DELETE /api/v1/users/:user.
// Favorites and parking sessions go with the account.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	username := c.Param("user")

	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	err := h.service.DeleteAccount(c.Request.Context(), username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "Password does not match")
			return
		}
		apierrors.InternalServerError(c, "Failed to delete account", err)
		return
	}

	c.Status(http.StatusNoContent)
}
