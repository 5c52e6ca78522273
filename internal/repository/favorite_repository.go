package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/geonjuring/parking-system/internal/database"
	"github.com/geonjuring/parking-system/internal/models"
)

// ErrDuplicateFavorite is returned when the user has already bookmarked the lot.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// FavoriteRepository defines the interface for favorite data access operations.
type FavoriteRepository interface {
	// Add bookmarks a lot for the user.
	// Returns ErrDuplicateFavorite if the same lot is already bookmarked.
	Add(ctx context.Context, userID, dongName, lotName string) (*models.Favorite, error)

	// Remove deletes a bookmark. Returns false if no such bookmark existed.
	Remove(ctx context.Context, userID, dongName, lotName string) (bool, error)

	// List returns the user's bookmarks in insertion order.
	// Returns an empty slice if the user has none (not an error).
	List(ctx context.Context, userID string) ([]models.Favorite, error)

	// IsFavorite reports whether the user has bookmarked the lot.
	IsFavorite(ctx context.Context, userID, dongName, lotName string) (bool, error)

	// Clear removes all bookmarks for the user and returns how many were removed.
	Clear(ctx context.Context, userID string) (int, error)
}

// favoriteRepository is the concrete implementation of FavoriteRepository.
type favoriteRepository struct {
	db *database.Database
}

// NewFavoriteRepository creates a new instance of FavoriteRepository.
func NewFavoriteRepository(db *database.Database) FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, dongName, lotName string) (*models.Favorite, error) {
	query := `
		INSERT INTO favorites (id, user_id, dong_name, lot_name, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, user_id, dong_name, lot_name, created_at
	`

	var fav models.Favorite
	err := r.db.Pool.QueryRow(ctx, query, uuid.New(), userID, dongName, lotName).Scan(
		&fav.ID,
		&fav.UserID,
		&fav.DongName,
		&fav.LotName,
		&fav.CreatedAt,
	)
	if err != nil {
		// Unique violation on (user_id, dong_name, lot_name)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateFavorite
		}
		return nil, fmt.Errorf("failed to add favorite for user %s: %w", userID, err)
	}

	return &fav, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, dongName, lotName string) (bool, error) {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND dong_name = $2 AND lot_name = $3
	`

	tag, err := r.db.Pool.Exec(ctx, query, userID, dongName, lotName)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite for user %s: %w", userID, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *favoriteRepository) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	query := `
		SELECT id, user_id, dong_name, lot_name, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for user %s: %w", userID, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var fav models.Favorite
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.DongName, &fav.LotName, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite rows: %w", err)
	}

	return favorites, nil
}

func (r *favoriteRepository) IsFavorite(ctx context.Context, userID, dongName, lotName string) (bool, error) {
	query := `
		SELECT 1
		FROM favorites
		WHERE user_id = $1 AND dong_name = $2 AND lot_name = $3
	`

	var one int
	err := r.db.Pool.QueryRow(ctx, query, userID, dongName, lotName).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check favorite for user %s: %w", userID, err)
	}

	return true, nil
}

func (r *favoriteRepository) Clear(ctx context.Context, userID string) (int, error) {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear favorites for user %s: %w", userID, err)
	}

	return int(tag.RowsAffected()), nil
}
