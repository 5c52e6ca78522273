package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/geonjuring/parking-system/internal/feed"
	"github.com/geonjuring/parking-system/internal/logger"
	"github.com/geonjuring/parking-system/internal/matching"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/registry"
)

// ChargerService owns the charger feed cache and the matching pipeline.
// It keeps the latest match result and rebuilds it on Refresh.
type ChargerService interface {
	// Refresh reloads the charger feed and re-runs the matcher.
	// On reload failure the previous match result stays in place.
	Refresh(ctx context.Context) error

	// Results returns the latest match result keyed by registry lot name.
	// Callers must treat the returned map as read-only.
	Results() models.MatchResult

	// LotChargers returns the charger assignment for one registry lot.
	// Lots with no resolved charger get an empty assignment; only lots
	// absent from the registry produce ErrLotNotFound.
	LotChargers(lotName string) (*models.LotChargers, error)

	// LoadedAt reports when the feed behind the current result was read.
	LoadedAt() time.Time
}

// chargerService is the concrete implementation of ChargerService.
type chargerService struct {
	cache  *feed.Cache
	engine *matching.Engine
	index  *matching.LotIndex
	log    *logger.Logger

	// refreshMu serializes Refresh so concurrent calls cannot
	// interleave a reload with another call's result swap.
	refreshMu sync.Mutex

	mu       sync.RWMutex
	results  models.MatchResult
	loadedAt time.Time
}

// NewChargerService creates a ChargerService over the given feed cache.
// The registry index is built once; the registry is static for the
// process lifetime.
func NewChargerService(cache *feed.Cache, reg *registry.Registry, log *logger.Logger) ChargerService {
	normalizer := matching.NewAddressNormalizer()
	indexer := matching.NewReferenceIndexer(normalizer)

	return &chargerService{
		cache:   cache,
		engine:  matching.NewDefaultEngine(),
		index:   indexer.Build(reg.Groups()),
		log:     log,
		results: models.MatchResult{},
	}
}

func (s *chargerService) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if err := s.cache.Reload(ctx); err != nil {
		s.log.Error("Charger feed reload failed", err, map[string]interface{}{
			"loaded_at": s.LoadedAt(),
		})
		return fmt.Errorf("failed to reload charger feed: %w", err)
	}

	records := s.cache.Records()
	loadedAt := s.cache.LoadedAt()
	result := s.engine.Match(records, s.index)

	matched := 0
	for _, lot := range result {
		if lot.HasCharger {
			matched++
		}
	}

	// Result and timestamp swap together so readers never see one
	// feed read's matches with another's LoadedAt.
	s.mu.Lock()
	s.results = result
	s.loadedAt = loadedAt
	s.mu.Unlock()

	s.log.Info("Charger feed matched", map[string]interface{}{
		"records":      len(records),
		"lots":         s.index.Len(),
		"matched_lots": matched,
	})

	return nil
}

func (s *chargerService) Results() models.MatchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results
}

func (s *chargerService) LotChargers(lotName string) (*models.LotChargers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if lot, ok := s.results[lotName]; ok {
		return lot, nil
	}

	// A missing key means the lot simply has no charger. The slice is
	// non-nil so the assignment serializes as an empty array.
	if _, ok := s.index.Lookup(lotName); ok {
		return &models.LotChargers{Chargers: []models.MatchedCharger{}}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrLotNotFound, lotName)
}

func (s *chargerService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
