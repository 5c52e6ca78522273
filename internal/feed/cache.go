package feed

import (
	"context"
	"sync"
	"time"

	"github.com/geonjuring/parking-system/internal/models"
)

// Cache holds the parsed feed in memory between explicit reloads. It is
// owned by the caller and passed by handle to whatever needs the
// records; there is no process-wide instance. Reload replaces the whole
// snapshot, so readers always see a consistent batch.
type Cache struct {
	mu       sync.RWMutex
	path     string
	reader   *Reader
	records  []models.ChargerRecord
	loadedAt time.Time
}

// NewCache creates an empty cache over the given feed path. Call Reload
// to populate it.
func NewCache(path string, reader *Reader) *Cache {
	return &Cache{path: path, reader: reader}
}

// Reload re-reads the feed file and swaps the cached snapshot. On error
// the previous snapshot is kept.
func (c *Cache) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	records, err := c.reader.ReadFile(c.path)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.records = records
	c.loadedAt = time.Now()
	c.mu.Unlock()
	return nil
}

// Records returns the cached snapshot. The returned slice must not be
// mutated; Reload never touches a previously returned slice.
func (c *Cache) Records() []models.ChargerRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records
}

// LoadedAt reports when the snapshot was last replaced; zero when the
// cache has never been loaded.
func (c *Cache) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

// Len reports the number of cached records.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
