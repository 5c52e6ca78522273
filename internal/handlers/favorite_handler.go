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

// FavoriteHandler handles favorite lot HTTP requests.
type FavoriteHandler struct {
	service services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler instance.
func NewFavoriteHandler(service services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
	}
}

// FavoriteRequest identifies one lot in a favorites operation.
type FavoriteRequest struct {
	DongName string `json:"dongName" binding:"required"`
	LotName  string `json:"lotName" binding:"required"`
}

// FavoriteQuery mirrors FavoriteRequest for query-parameter binding.
type FavoriteQuery struct {
	DongName string `form:"dong" binding:"required"`
	LotName  string `form:"lot" binding:"required"`
}

// FavoritesResponse lists a user's bookmarks.
type FavoritesResponse struct {
	Favorites []models.Favorite `json:"favorites"`
	Count     int               `json:"count"`
}

// ClearResponse reports how many bookmarks were removed.
type ClearResponse struct {
	Removed int `json:"removed"`
}

// List handles GET /api/v1/users/:user/favorites.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.Param("user")

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list favorites", err)
		return
	}

	c.JSON(http.StatusOK, FavoritesResponse{
		Favorites: favorites,
		Count:     len(favorites),
	})
}

// Add handles POST /api/v1/users/:user/favorites.
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := c.Param("user")

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	fav, err := h.service.Add(c.Request.Context(), userID, req.DongName, req.LotName)
	if err != nil {
		if errors.Is(err, services.ErrLotNotFound) {
			apierrors.NotFound(c, "No such parking lot")
			return
		}
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			apierrors.Conflict(c, "Lot is already a favorite")
			return
		}
		apierrors.InternalServerError(c, "Failed to add favorite", err)
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// Remove handles DELETE /api/v1/users/:user/favorites.
// The lot is identified with dong and lot query parameters.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := c.Param("user")

	var req FavoriteQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	removed, err := h.service.Remove(c.Request.Context(), userID, req.DongName, req.LotName)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to remove favorite", err)
		return
	}
	if !removed {
		apierrors.NotFound(c, "No such favorite")
		return
	}

	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/v1/users/:user/favorites/all.
func (h *FavoriteHandler) Clear(c *gin.Context) {
	userID := c.Param("user")

	removed, err := h.service.Clear(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to clear favorites", err)
		return
	}

	c.JSON(http.StatusOK, ClearResponse{Removed: removed})
}
