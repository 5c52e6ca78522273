package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/geonjuring/parking-system/internal/database"
	"github.com/geonjuring/parking-system/internal/models"
)

// ErrActiveSession is returned when a user tries to enter a lot while
// another session is still open.
var ErrActiveSession = errors.New("parking session already active")

// ErrNoActiveSession is returned when a user with no open session tries to exit.
var ErrNoActiveSession = errors.New("no active parking session")

// SessionRepository defines the interface for parking session data access.
type SessionRepository interface {
	// Start opens a session for the user.
	// Returns ErrActiveSession if the user already has an open session.
	Start(ctx context.Context, userID, dongName, lotName, feeInfo string) (*models.ParkingSession, error)

	// Current returns the user's open session.
	// Returns nil, nil if there is none (not an error).
	Current(ctx context.Context, userID string) (*models.ParkingSession, error)

	// End closes the user's open session, stamping the exit time and fee.
	// Returns ErrNoActiveSession if there is no open session.
	End(ctx context.Context, userID string, exitedAt time.Time, fee int) (*models.ParkingSession, error)
}

// sessionRepository is the concrete implementation of SessionRepository.
type sessionRepository struct {
	db *database.Database
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *database.Database) SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

func (r *sessionRepository) Start(ctx context.Context, userID, dongName, lotName, feeInfo string) (*models.ParkingSession, error) {
	query := `
		INSERT INTO parking_sessions (id, user_id, dong_name, lot_name, fee_info, entered_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, user_id, dong_name, lot_name, fee_info, entered_at
	`

	var session models.ParkingSession
	err := r.db.Pool.QueryRow(ctx, query, uuid.New(), userID, dongName, lotName, feeInfo).Scan(
		&session.ID,
		&session.UserID,
		&session.DongName,
		&session.LotName,
		&session.FeeInfo,
		&session.EnteredAt,
	)
	if err != nil {
		// Partial unique index on user_id where exited_at is null
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrActiveSession
		}
		return nil, fmt.Errorf("failed to start parking session for user %s: %w", userID, err)
	}

	return &session, nil
}

func (r *sessionRepository) Current(ctx context.Context, userID string) (*models.ParkingSession, error) {
	query := `
		SELECT id, user_id, dong_name, lot_name, fee_info, entered_at, exited_at, fee
		FROM parking_sessions
		WHERE user_id = $1 AND exited_at IS NULL
	`

	var session models.ParkingSession
	err := r.db.Pool.QueryRow(ctx, query, userID).Scan(
		&session.ID,
		&session.UserID,
		&session.DongName,
		&session.LotName,
		&session.FeeInfo,
		&session.EnteredAt,
		&session.ExitedAt,
		&session.Fee,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load current parking session for user %s: %w", userID, err)
	}

	return &session, nil
}

func (r *sessionRepository) End(ctx context.Context, userID string, exitedAt time.Time, fee int) (*models.ParkingSession, error) {
	query := `
		UPDATE parking_sessions
		SET exited_at = $2, fee = $3
		WHERE user_id = $1 AND exited_at IS NULL
		RETURNING id, user_id, dong_name, lot_name, fee_info, entered_at, exited_at, fee
	`

	var session models.ParkingSession
	err := r.db.Pool.QueryRow(ctx, query, userID, exitedAt, fee).Scan(
		&session.ID,
		&session.UserID,
		&session.DongName,
		&session.LotName,
		&session.FeeInfo,
		&session.EnteredAt,
		&session.ExitedAt,
		&session.Fee,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to end parking session for user %s: %w", userID, err)
	}

	return &session, nil
}
