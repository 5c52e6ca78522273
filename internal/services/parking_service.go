package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/geonjuring/parking-system/internal/fees"
	"github.com/geonjuring/parking-system/internal/logger"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/registry"
	"github.com/geonjuring/parking-system/internal/simulation"
)

// Service-level errors
var (
	ErrDongNotFound     = errors.New("dong not found")
	ErrLotNotFound      = errors.New("parking lot not found")
	ErrInvalidTimeRange = errors.New("exit time must not be before entry time")
)

// ParkingService defines the interface for parking lot status operations.
type ParkingService interface {
	// DongNames returns the registry's sub-districts in registry order.
	DongNames() []string

	// LotStatuses returns live occupancy for every lot in the given dong.
	// Returns ErrDongNotFound if the dong is not in the registry.
	LotStatuses(dongName string) ([]models.LotStatus, error)

	// LotStatus returns live occupancy for one lot.
	// Returns ErrLotNotFound if the lot is not in the registry.
	LotStatus(name string) (*models.LotStatus, error)

	// EstimateFee quotes the fee for parking at the lot between entry and exit.
	// Returns ErrLotNotFound for unknown lots and ErrInvalidTimeRange when
	// exit precedes entry.
	EstimateFee(lotName string, entry, exit time.Time) (*fees.Quote, error)
}

// parkingService is the concrete implementation of ParkingService.
type parkingService struct {
	registry  *registry.Registry
	simulator *simulation.Simulator
	log       *logger.Logger
}

// NewParkingService creates a new instance of ParkingService.
func NewParkingService(reg *registry.Registry, sim *simulation.Simulator, log *logger.Logger) ParkingService {
	return &parkingService{
		registry:  reg,
		simulator: sim,
		log:       log,
	}
}

func (s *parkingService) DongNames() []string {
	return s.registry.DongNames()
}

func (s *parkingService) LotStatuses(dongName string) ([]models.LotStatus, error) {
	lots := s.registry.LotsIn(dongName)
	if lots == nil {
		s.log.Debug("Unknown dong requested", map[string]interface{}{
			"dong": dongName,
		})
		return nil, fmt.Errorf("%w: %s", ErrDongNotFound, dongName)
	}

	statuses := make([]models.LotStatus, 0, len(lots))
	for _, st := range s.simulator.Statuses() {
		if st.DongName == dongName {
			statuses = append(statuses, st)
		}
	}

	return statuses, nil
}

func (s *parkingService) LotStatus(name string) (*models.LotStatus, error) {
	st, ok := s.simulator.Status(name)
	if !ok {
		s.log.Debug("Unknown lot requested", map[string]interface{}{
			"lot": name,
		})
		return nil, fmt.Errorf("%w: %s", ErrLotNotFound, name)
	}

	return &st, nil
}

func (s *parkingService) EstimateFee(lotName string, entry, exit time.Time) (*fees.Quote, error) {
	lot, ok := s.registry.Lot(lotName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLotNotFound, lotName)
	}

	if exit.Before(entry) {
		return nil, ErrInvalidTimeRange
	}

	schedule := fees.ParseSchedule(lot.FeeInfo)
	quote := schedule.Calculate(entry, exit)

	s.log.Info("Fee estimated", map[string]interface{}{
		"lot":     lotName,
		"minutes": quote.ElapsedMinutes,
		"fee":     quote.TotalFee,
	})

	return &quote, nil
}
