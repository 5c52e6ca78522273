package services

import (
	"context"
	"fmt"

	"github.com/geonjuring/parking-system/internal/logger"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/registry"
	"github.com/geonjuring/parking-system/internal/repository"
)

// FavoriteService defines the interface for favorite lot operations.
// Lot identity is validated against the registry before touching storage.
type FavoriteService interface {
	// Add bookmarks a lot for the user.
	// Returns ErrLotNotFound for lots not in the registry and
	// repository.ErrDuplicateFavorite for repeats.
	Add(ctx context.Context, userID, dongName, lotName string) (*models.Favorite, error)

	// Remove deletes a bookmark. Returns false if it did not exist.
	Remove(ctx context.Context, userID, dongName, lotName string) (bool, error)

	// List returns the user's bookmarks in insertion order.
	List(ctx context.Context, userID string) ([]models.Favorite, error)

	// IsFavorite reports whether the user has bookmarked the lot.
	IsFavorite(ctx context.Context, userID, dongName, lotName string) (bool, error)

	// Clear removes all of the user's bookmarks and returns the count removed.
	Clear(ctx context.Context, userID string) (int, error)
}

// favoriteService is the concrete implementation of FavoriteService.
type favoriteService struct {
	repo     repository.FavoriteRepository
	registry *registry.Registry
	log      *logger.Logger
}

// NewFavoriteService creates a new instance of FavoriteService.
func NewFavoriteService(repo repository.FavoriteRepository, reg *registry.Registry, log *logger.Logger) FavoriteService {
	return &favoriteService{
		repo:     repo,
		registry: reg,
		log:      log,
	}
}

// validateLot checks that the named lot exists in the registry under the
// given dong.
func (s *favoriteService) validateLot(dongName, lotName string) error {
	lot, ok := s.registry.Lot(lotName)
	if !ok || lot.DongName != dongName {
		return fmt.Errorf("%w: %s / %s", ErrLotNotFound, dongName, lotName)
	}
	return nil
}

func (s *favoriteService) Add(ctx context.Context, userID, dongName, lotName string) (*models.Favorite, error) {
	if err := s.validateLot(dongName, lotName); err != nil {
		return nil, err
	}

	fav, err := s.repo.Add(ctx, userID, dongName, lotName)
	if err != nil {
		return nil, err
	}

	s.log.Info("Favorite added", map[string]interface{}{
		"user": userID,
		"dong": dongName,
		"lot":  lotName,
	})

	return fav, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, dongName, lotName string) (bool, error) {
	removed, err := s.repo.Remove(ctx, userID, dongName, lotName)
	if err != nil {
		return false, err
	}

	if removed {
		s.log.Info("Favorite removed", map[string]interface{}{
			"user": userID,
			"dong": dongName,
			"lot":  lotName,
		})
	}

	return removed, nil
}

func (s *favoriteService) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	return s.repo.List(ctx, userID)
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, dongName, lotName string) (bool, error) {
	return s.repo.IsFavorite(ctx, userID, dongName, lotName)
}

func (s *favoriteService) Clear(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.Clear(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.log.Info("Favorites cleared", map[string]interface{}{
		"user":  userID,
		"count": count,
	})

	return count, nil
}
