package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/geonjuring/parking-system/internal/errors"
	"github.com/geonjuring/parking-system/internal/middleware"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/services"
)

// ChargerHandler handles EV charger matching HTTP requests.
type ChargerHandler struct {
	service services.ChargerService
}

// NewChargerHandler creates a new ChargerHandler instance.
func NewChargerHandler(service services.ChargerService) *ChargerHandler {
	return &ChargerHandler{
		service: service,
	}
}

// ChargersResponse is the full match result keyed by lot name.
type ChargersResponse struct {
	Lots     models.MatchResult `json:"lots"`
	Count    int                `json:"count"`
	LoadedAt time.Time          `json:"loadedAt"`
}

// LotChargersResponse is the charger assignment for one lot.
type LotChargersResponse struct {
	Lot      string              `json:"lot"`
	Chargers *models.LotChargers `json:"chargers"`
}

// RefreshResponse reports the outcome of a feed refresh.
type RefreshResponse struct {
	Status   string    `json:"status"`
	LoadedAt time.Time `json:"loadedAt"`
}

// List handles GET /api/v1/chargers.
// It returns the latest charger-to-lot match result.
func (h *ChargerHandler) List(c *gin.Context) {
	results := h.service.Results()

	c.JSON(http.StatusOK, ChargersResponse{
		Lots:     results,
		Count:    len(results),
		LoadedAt: h.service.LoadedAt(),
	})
}

// ForLot handles GET /api/v1/lots/:name/chargers.
func (h *ChargerHandler) ForLot(c *gin.Context) {
	name := c.Param("name")

	chargers, err := h.service.LotChargers(name)
	if err != nil {
		if errors.Is(err, services.ErrLotNotFound) {
			apierrors.NotFound(c, "No such parking lot")
			return
		}
		apierrors.InternalServerError(c, "Failed to load charger assignment", err)
		return
	}

	c.JSON(http.StatusOK, LotChargersResponse{
		Lot:      name,
		Chargers: chargers,
	})
}

// Refresh handles POST /api/v1/chargers/refresh.
// It reloads the charger feed and re-runs the matcher.
func (h *ChargerHandler) Refresh(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		apierrors.InternalServerError(c, "Failed to refresh charger feed", err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Charger feed refreshed", map[string]interface{}{
			"loaded_at": h.service.LoadedAt(),
		})
	}

	c.JSON(http.StatusOK, RefreshResponse{
		Status:   "refreshed",
		LoadedAt: h.service.LoadedAt(),
	})
}
