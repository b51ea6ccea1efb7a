package eop

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache keeps one on-disk snapshot of the finals file so a restart can
// serve Earth orientation data before the first fetch completes. The
// finals distribution is a single rolling table; the cache holds
// exactly one generation and replaces it atomically.
type Cache struct {
	path string
}

// NewCache creates a Cache storing its snapshot under dir.
func NewCache(dir string) *Cache {
	return &Cache{path: filepath.Join(dir, "finals2000A.csv")}
}

// Store replaces the snapshot. The data lands in a temporary file first
// and is renamed over the previous generation, so readers never see a
// partial write.
func (c *Cache) Store(data []byte) error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("eop: creating cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "finals-*.tmp")
	if err != nil {
		return fmt.Errorf("eop: creating snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("eop: writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("eop: closing snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("eop: replacing snapshot: %w", err)
	}
	return nil
}

// Load returns the snapshot and the time it was stored.
func (c *Cache) Load() ([]byte, time.Time, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("eop: reading snapshot: %w", err)
	}
	info, err := os.Stat(c.path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("eop: reading snapshot: %w", err)
	}
	return data, info.ModTime(), nil
}
