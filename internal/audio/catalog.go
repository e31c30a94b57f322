// Package audio plays the pre-recorded announcement clips through the
// system audio device.
package audio

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
)

// Catalog resolves clip identifiers to WAV data. Clips live on disk as
// <dir>/<id>.wav and are promoted into an in-memory map on first use so a
// clip that announces every other draw is only read once.
type Catalog struct {
	dir string
	log *logger.Logger

	mu      sync.RWMutex
	entries map[string][]byte
	hits    int64
	misses  int64
}

// NewCatalog creates a catalog over the given clip directory.
func NewCatalog(dir string, log *logger.Logger) *Catalog {
	return &Catalog{
		dir:     dir,
		log:     log,
		entries: make(map[string][]byte),
	}
}

// Get returns the WAV data for a clip id. Returns domain.ErrNotFound when
// no recording exists; the queue treats that as a skippable failure.
func (c *Catalog) Get(clipID string) ([]byte, error) {
	c.mu.RLock()
	data, ok := c.entries[clipID]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return data, nil
	}

	data, err := os.ReadFile(c.path(clipID))
	if err != nil {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		c.log.Debug("catalog: no recording for %q", clipID)
		return nil, domain.ErrNotFound
	}

	c.mu.Lock()
	c.entries[clipID] = data
	size := len(c.entries)
	c.mu.Unlock()

	c.log.Debug("catalog: loaded %q (%d bytes, %d cached)", clipID, len(data), size)
	return data, nil
}

// Has reports whether a recording exists for the clip id without loading it.
func (c *Catalog) Has(clipID string) bool {
	c.mu.RLock()
	_, ok := c.entries[clipID]
	c.mu.RUnlock()
	if ok {
		return true
	}
	_, err := os.Stat(c.path(clipID))
	return err == nil
}

// Preload reads the given clips into memory ahead of time. Missing clips
// are skipped; they will simply fail at playback.
func (c *Catalog) Preload(clipIDs ...string) {
	for _, id := range clipIDs {
		if _, err := c.Get(id); err != nil {
			c.log.Warn("catalog: preload skipped %q (no recording)", id)
		}
	}
}

// Stats returns hit and miss counts.
func (c *Catalog) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *Catalog) path(clipID string) string {
	return filepath.Join(c.dir, clipID+".wav")
}
