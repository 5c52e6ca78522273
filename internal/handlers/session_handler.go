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

// SessionHandler handles parking session HTTP requests.
type SessionHandler struct {
	service services.SessionService
}

// NewSessionHandler creates a new SessionHandler instance.
func NewSessionHandler(service services.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// StartParkingRequest names the lot being entered.
type StartParkingRequest struct {
	LotName string `json:"lotName" binding:"required"`
}

// SessionResponse wraps one parking session.
type SessionResponse struct {
	Session *models.ParkingSession `json:"session"`
}

// Start handles POST /api/v1/users/:user/parking.
func (h *SessionHandler) Start(c *gin.Context) {
	userID := c.Param("user")

	var req StartParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	session, err := h.service.Start(c.Request.Context(), userID, req.LotName)
	if err != nil {
		if errors.Is(err, services.ErrLotNotFound) {
			apierrors.NotFound(c, "No such parking lot")
			return
		}
		if errors.Is(err, repository.ErrActiveSession) {
			apierrors.Conflict(c, "A parking session is already active")
			return
		}
		apierrors.InternalServerError(c, "Failed to start parking session", err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Session: session})
}

// Current handles GET /api/v1/users/:user/parking.
func (h *SessionHandler) Current(c *gin.Context) {
	userID := c.Param("user")

	session, err := h.service.Current(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load parking session", err)
		return
	}
	if session == nil {
		apierrors.NotFound(c, "No active parking session")
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Session: session})
}

// End handles DELETE /api/v1/users/:user/parking.
// The closed session, including the computed fee, is returned.
func (h *SessionHandler) End(c *gin.Context) {
	userID := c.Param("user")

	session, err := h.service.End(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveSession) {
			apierrors.NotFound(c, "No active parking session")
			return
		}
		apierrors.InternalServerError(c, "Failed to end parking session", err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Session: session})
}
