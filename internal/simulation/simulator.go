// Package simulation drives the random occupancy walk that stands in
// for live sensor data: each tick, every lot independently gains or
// loses a small number of vehicles, clamped to its capacity.
package simulation

import (
	"math/rand"
	"sync"
	"time"

	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/registry"
)

const (
	// EntryProbability and ExitProbability gate how often vehicles
	// arrive and leave on a tick.
	EntryProbability = 0.4
	ExitProbability  = 0.4

	// MaxVehicleChange bounds how many vehicles move in one tick.
	MaxVehicleChange = 5
)

// Simulator owns the occupancy state of every registry lot. All methods
// are safe for concurrent use.
type Simulator struct {
	mu       sync.RWMutex
	rng      *rand.Rand
	statuses []models.LotStatus
	byName   map[string]int
}

// New seeds a simulator over the registry's lots. Initial occupancy is
// random within each lot's capacity; a fixed seed makes runs
// reproducible, seed 0 draws one from the clock.
func New(reg *registry.Registry, seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Simulator{
		rng:    rand.New(rand.NewSource(seed)),
		byName: make(map[string]int),
	}
	for _, group := range reg.Groups() {
		for _, lot := range group.Lots {
			occupied := s.rng.Intn(lot.Capacity + 1)
			s.byName[lot.Name] = len(s.statuses)
			s.statuses = append(s.statuses, lotStatus(lot, group.Name, occupied))
		}
	}
	return s
}

// Tick advances every lot by one simulation step.
func (s *Simulator) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.statuses {
		s.step(&s.statuses[i])
	}
}

// step applies one random entry/exit event to a lot. Entry is limited
// by remaining capacity, exit by the vehicles present.
func (s *Simulator) step(st *models.LotStatus) {
	amount := s.rng.Intn(MaxVehicleChange) + 1
	entryRoll := s.rng.Float64()
	exitRoll := s.rng.Float64()

	switch {
	case entryRoll > EntryProbability && st.Occupied < st.Capacity:
		if free := st.Capacity - st.Occupied; amount > free {
			amount = free
		}
		st.Occupied += amount
	case exitRoll > ExitProbability && st.Occupied > 0:
		if amount > st.Occupied {
			amount = st.Occupied
		}
		st.Occupied -= amount
	}
	finishStatus(st)
}

// Statuses returns a snapshot of every lot's occupancy, in registry
// order.
func (s *Simulator) Statuses() []models.LotStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LotStatus, len(s.statuses))
	copy(out, s.statuses)
	return out
}

// Status returns the occupancy of one lot by name.
func (s *Simulator) Status(name string) (models.LotStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byName[name]
	if !ok {
		return models.LotStatus{}, false
	}
	return s.statuses[idx], true
}

// SetOccupied overrides one lot's occupancy, clamped to [0, capacity].
// Used by operators to correct drift against reality.
func (s *Simulator) SetOccupied(name string, occupied int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.byName[name]
	if !ok {
		return false
	}
	st := &s.statuses[idx]
	if occupied < 0 {
		occupied = 0
	}
	if occupied > st.Capacity {
		occupied = st.Capacity
	}
	st.Occupied = occupied
	finishStatus(st)
	return true
}

func lotStatus(lot models.LotReference, dongName string, occupied int) models.LotStatus {
	st := models.LotStatus{
		Name:        lot.Name,
		DongName:    dongName,
		Capacity:    lot.Capacity,
		Occupied:    occupied,
		FeeCategory: lot.FeeCategory,
		FeeInfo:     lot.FeeInfo,
	}
	finishStatus(&st)
	return st
}

// finishStatus recomputes the derived fields after an occupancy change.
func finishStatus(st *models.LotStatus) {
	st.Available = st.Capacity - st.Occupied
	if st.Capacity > 0 {
		st.Rate = float64(st.Occupied) / float64(st.Capacity)
	}
}
