package services

import (
	"context"
	"fmt"
	"time"

	"github.com/geonjuring/parking-system/internal/fees"
	"github.com/geonjuring/parking-system/internal/logger"
	"github.com/geonjuring/parking-system/internal/models"
	"github.com/geonjuring/parking-system/internal/registry"
	"github.com/geonjuring/parking-system/internal/repository"
)

// SessionService defines the interface for parking session operations.
type SessionService interface {
	// Start opens a session at the named lot. The lot's fee schedule is
	// captured at entry so later fee changes do not affect the session.
	// Returns ErrLotNotFound for unknown lots and
	// repository.ErrActiveSession when the user is already parked.
	Start(ctx context.Context, userID, lotName string) (*models.ParkingSession, error)

	// Current returns the user's open session, or nil, nil when not parked.
	Current(ctx context.Context, userID string) (*models.ParkingSession, error)

	// End closes the user's session, computing the fee from the schedule
	// captured at entry. Returns repository.ErrNoActiveSession when the
	// user is not parked.
	End(ctx context.Context, userID string) (*models.ParkingSession, error)
}

// sessionService is the concrete implementation of SessionService.
type sessionService struct {
	repo     repository.SessionRepository
	registry *registry.Registry
	log      *logger.Logger
	now      func() time.Time
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(repo repository.SessionRepository, reg *registry.Registry, log *logger.Logger) SessionService {
	return &sessionService{
		repo:     repo,
		registry: reg,
		log:      log,
		now:      time.Now,
	}
}

func (s *sessionService) Start(ctx context.Context, userID, lotName string) (*models.ParkingSession, error) {
	lot, ok := s.registry.Lot(lotName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLotNotFound, lotName)
	}

	session, err := s.repo.Start(ctx, userID, lot.DongName, lot.Name, lot.FeeInfo)
	if err != nil {
		return nil, err
	}

	s.log.Info("Parking session started", map[string]interface{}{
		"user": userID,
		"dong": lot.DongName,
		"lot":  lot.Name,
	})

	return session, nil
}

func (s *sessionService) Current(ctx context.Context, userID string) (*models.ParkingSession, error) {
	return s.repo.Current(ctx, userID)
}

func (s *sessionService) End(ctx context.Context, userID string) (*models.ParkingSession, error) {
	current, err := s.repo.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, repository.ErrNoActiveSession
	}

	exitedAt := s.now()
	quote := fees.ParseSchedule(current.FeeInfo).Calculate(current.EnteredAt, exitedAt)

	session, err := s.repo.End(ctx, userID, exitedAt, quote.TotalFee)
	if err != nil {
		return nil, err
	}

	s.log.Info("Parking session ended", map[string]interface{}{
		"user":    userID,
		"lot":     session.LotName,
		"minutes": quote.ElapsedMinutes,
		"fee":     quote.TotalFee,
	})

	return session, nil
}
