// Package cache provides an in-memory store for computed prayer days.
//
// Entries live for 24 hours and are keyed by (date, rounded coordinates,
// calculation method). The store is read from the main fetch path and from
// the background cross-validation task concurrently, so all access is
// serialized behind one mutex: a get or set is atomic over the value and
// its timestamp.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/vakitapp/vakit/internal/astro"
	"github.com/vakitapp/vakit/internal/config"
	"github.com/vakitapp/vakit/internal/prayer"
)

// TTL is the fixed lifetime of a cache entry.
const TTL = 24 * time.Hour

// entry pairs a stored day with its write timestamp.
type entry struct {
	day      prayer.Day
	cachedAt time.Time
}

// Store is a TTL-bounded map of computed prayer days.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time // injectable clock for tests
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Key derives the deterministic cache key for a day's calculation.
// Coordinates are rounded to two decimals (~1 km) so GPS jitter within a
// city does not fragment the cache; the method is included so switching
// methods naturally invalidates old entries.
func Key(date time.Time, loc config.LocationSelection, method astro.Method) string {
	return fmt.Sprintf("prayer_%04d-%02d-%02d_%.2f_%.2f_%s",
		date.Year(), date.Month(), date.Day(),
		loc.Latitude, loc.Longitude, method)
}

// Get returns the cached day for the key, if present and fresh.
// Entries older than the TTL are evicted on access and reported as a miss.
func (s *Store) Get(key string) (prayer.Day, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return prayer.Day{}, false
	}
	if s.now().Sub(e.cachedAt) >= TTL {
		delete(s.entries, key)
		return prayer.Day{}, false
	}

	day := e.day
	day.Source = prayer.SourceCached
	return day, true
}

// Set stores a day under the key, stamping the current time.
func (s *Store) Set(key string, day prayer.Day) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{day: day, cachedAt: s.now()}
}

// Len reports the number of live entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
