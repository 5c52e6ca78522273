package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geonjuring/parking-system/internal/config"
	"github.com/geonjuring/parking-system/internal/models"
)

func getTestConfig() config.RedisConfig {
	cfg := config.RedisConfig{
		Host: "localhost",
		Port: "6379",
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		cfg.Port = port
	}
	cfg.Password = os.Getenv("REDIS_PASSWORD")
	return cfg
}

func TestNewRedisClient(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, getTestConfig())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, HealthCheck(ctx, client))
}

func TestSnapshotStore_PublishAndLatest(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, getTestConfig())
	require.NoError(t, err)
	defer client.Close()

	store := NewSnapshotStore(client, 30*time.Second)

	statuses := []models.LotStatus{
		{
			Name:      "연향1주차장",
			DongName:  "연향동",
			Capacity:  62,
			Occupied:  40,
			Available: 22,
			Rate:      64.5,
		},
	}

	require.NoError(t, store.Publish(ctx, statuses))

	got, err := store.Latest(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "연향1주차장", got[0].Name)
	assert.Equal(t, 22, got[0].Available)
}

func TestSnapshotStore_LatestWithoutPublish(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, getTestConfig())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Del(ctx, "parking:occupancy").Err())

	store := NewSnapshotStore(client, time.Second)
	_, err = store.Latest(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
