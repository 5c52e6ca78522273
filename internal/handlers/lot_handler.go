package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/geonjuring/parking-system/internal/errors"
	"github.com/geonjuring/parking-system/internal/fees"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/services"
)

// LotHandler handles parking lot status HTTP requests.
type LotHandler struct {
	service services.ParkingService
}

// NewLotHandler creates a new LotHandler instance.
func NewLotHandler(service services.ParkingService) *LotHandler {
	return &LotHandler{
		service: service,
	}
}

// DongsResponse lists the registry's sub-districts.
type DongsResponse struct {
	Dongs []string `json:"dongs"`
	Count int      `json:"count"`
}

// LotsResponse lists live lot statuses for one dong.
type LotsResponse struct {
	Dong  string             `json:"dong"`
	Lots  []models.LotStatus `json:"lots"`
	Count int                `json:"count"`
}

// LotResponse wraps a single lot status.
type LotResponse struct {
	Lot *models.LotStatus `json:"lot"`
}

// FeeRequest represents the query parameters for the fee estimate endpoint.
// Times are RFC 3339.
type FeeRequest struct {
	Entry string `form:"entry" binding:"required"`
	Exit  string `form:"exit" binding:"required"`
}

// FeeResponse wraps a fee quote.
type FeeResponse struct {
	Lot   string      `json:"lot"`
	Quote *fees.Quote `json:"quote"`
}

// Dongs handles GET /api/v1/dongs.
func (h *LotHandler) Dongs(c *gin.Context) {
	dongs := h.service.DongNames()

	c.JSON(http.StatusOK, DongsResponse{
		Dongs: dongs,
		Count: len(dongs),
	})
}

// Lots handles GET /api/v1/dongs/:dong/lots.
// It returns live occupancy for every lot in the dong.
func (h *LotHandler) Lots(c *gin.Context) {
	dong := c.Param("dong")

	lots, err := h.service.LotStatuses(dong)
	if err != nil {
		if errors.Is(err, services.ErrDongNotFound) {
			apierrors.NotFound(c, "No such dong in the registry")
			return
		}
		apierrors.InternalServerError(c, "Failed to load lot statuses", err)
		return
	}

	c.JSON(http.StatusOK, LotsResponse{
		Dong:  dong,
		Lots:  lots,
		Count: len(lots),
	})
}

// Lot handles GET /api/v1/lots/:name.
func (h *LotHandler) Lot(c *gin.Context) {
	name := c.Param("name")

	lot, err := h.service.LotStatus(name)
	if err != nil {
		if errors.Is(err, services.ErrLotNotFound) {
			apierrors.NotFound(c, "No such parking lot")
			return
		}
		apierrors.InternalServerError(c, "Failed to load lot status", err)
		return
	}

	c.JSON(http.StatusOK, LotResponse{Lot: lot})
}

// Fee handles GET /api/v1/lots/:name/fee.
// It quotes the parking fee for the given entry and exit times.
func (h *LotHandler) Fee(c *gin.Context) {
	name := c.Param("name")

	var req FeeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	entry, err := time.Parse(time.RFC3339, req.Entry)
	if err != nil {
		apierrors.BadRequest(c, "entry must be an RFC 3339 timestamp", nil)
		return
	}
	exit, err := time.Parse(time.RFC3339, req.Exit)
	if err != nil {
		apierrors.BadRequest(c, "exit must be an RFC 3339 timestamp", nil)
		return
	}

	quote, err := h.service.EstimateFee(name, entry, exit)
	if err != nil {
		if errors.Is(err, services.ErrLotNotFound) {
			apierrors.NotFound(c, "No such parking lot")
			return
		}
		if errors.Is(err, services.ErrInvalidTimeRange) {
			apierrors.BadRequest(c, "exit must not be before entry", nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to estimate fee", err)
		return
	}

	c.JSON(http.StatusOK, FeeResponse{
		Lot:   name,
		Quote: quote,
	})
}
