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

// ErrDuplicateUsername is returned when the username is already registered.
var ErrDuplicateUsername = errors.New("username already taken")

// ErrUserNotFound is returned when no account exists for the username.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for account data access operations.
// Password hashes go in and out of this layer only.
type UserRepository interface {
	// Create registers a new account.
	// Returns ErrDuplicateUsername if the username is taken.
	Create(ctx context.Context, username, passwordHash, email string) (*models.User, error)

	// FindByUsername returns the account and its stored password hash.
	// Returns ErrUserNotFound if no such account exists.
	FindByUsername(ctx context.Context, username string) (*models.User, string, error)

	// UpdatePassword replaces the stored password hash.
	// Returns ErrUserNotFound if no such account exists.
	UpdatePassword(ctx context.Context, username, passwordHash string) error

	// RecordLogin stamps the account's last login time.
	RecordLogin(ctx context.Context, username string, at time.Time) error

	// Delete removes the account together with its favorites and
	// parking sessions, atomically.
	// Returns ErrUserNotFound if no such account exists.
	Delete(ctx context.Context, username string) error
}

// userRepository is the concrete implementation of UserRepository.
type userRepository struct {
	db *database.Database
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash, email string) (*models.User, error) {
	query := `
		INSERT INTO users (id, username, password_hash, email, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, username, email, created_at, last_login_at
	`

	var user models.User
	err := r.db.Pool.QueryRow(ctx, query, uuid.New(), username, passwordHash, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		// Unique violation on username
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user %s: %w", username, err)
	}

	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, string, error) {
	query := `
		SELECT id, username, email, created_at, last_login_at, password_hash
		FROM users
		WHERE username = $1
	`

	var user models.User
	var passwordHash string
	err := r.db.Pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
		&user.LastLoginAt,
		&passwordHash,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user %s: %w", username, err)
	}

	return &user, passwordHash, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2
		WHERE username = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, username, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", username, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) RecordLogin(ctx context.Context, username string, at time.Time) error {
	query := `
		UPDATE users
		SET last_login_at = $2
		WHERE username = $1
	`

	if _, err := r.db.Pool.Exec(ctx, query, username, at); err != nil {
		return fmt.Errorf("failed to record login for user %s: %w", username, err)
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete for user %s: %w", username, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1`, username); err != nil {
		return fmt.Errorf("failed to delete favorites for user %s: %w", username, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM parking_sessions WHERE user_id = $1`, username); err != nil {
		return fmt.Errorf("failed to delete parking sessions for user %s: %w", username, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", username, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete for user %s: %w", username, err)
	}

	return nil
}
