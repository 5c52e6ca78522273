package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/geonjuring/parking-system/internal/config"
	"github.com/geonjuring/parking-system/internal/models"
)

// occupancyKey holds the latest simulator snapshot as a JSON array.
const occupancyKey = "parking:occupancy"

// ErrNoSnapshot is returned when no occupancy snapshot has been published yet.
var ErrNoSnapshot = errors.New("cache: no occupancy snapshot")

// NewRedisClient creates a Redis client with connection pooling.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	// Verify connectivity.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping failed: %w", err)
	}

	return client, nil
}

// HealthCheck pings the Redis client and returns nil if healthy.
func HealthCheck(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(pingCtx).Err()
}

// SnapshotStore publishes and reads occupancy snapshots produced by the
// simulator so that other processes can serve lot availability without
// running a simulator of their own.
type SnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotStore wraps a Redis client. Snapshots expire after ttl so a
// stalled simulator does not leave stale availability behind.
func NewSnapshotStore(client *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{client: client, ttl: ttl}
}

// Publish stores the given lot statuses as the current snapshot.
func (s *SnapshotStore) Publish(ctx context.Context, statuses []models.LotStatus) error {
	payload, err := json.Marshal(statuses)
	if err != nil {
		return fmt.Errorf("cache: marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, occupancyKey, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("cache: publish snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recently published snapshot.
// Returns ErrNoSnapshot when nothing has been published or the snapshot expired.
func (s *SnapshotStore) Latest(ctx context.Context) ([]models.LotStatus, error) {
	payload, err := s.client.Get(ctx, occupancyKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("cache: read snapshot: %w", err)
	}

	var statuses []models.LotStatus
	if err := json.Unmarshal(payload, &statuses); err != nil {
		return nil, fmt.Errorf("cache: decode snapshot: %w", err)
	}
	return statuses, nil
}
