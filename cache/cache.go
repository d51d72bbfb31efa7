// Package cache implements the read-through response cache. Entries are
// keyed by endpoint path plus the raw query string, carry the set of entity
// kinds they were computed from, and expire after a fixed TTL. Mutations
// invalidate every entry tagged with the mutated kind.
package cache

import (
	"sync"
	"time"

	"mockapi-backend/models"
	"mockapi-backend/utils/logger"
)

// DefaultTTL is the entry lifetime when the config does not override it.
const DefaultTTL = 60 * time.Second

type entry struct {
	payload   interface{}
	kinds     []models.Kind
	expiresAt time.Time
}

// Coordinator is the shared response cache. It is safe for concurrent use.
// Each kind carries a generation counter that every mutation advances;
// populating readers fence their write with the generations they observed
// before reading the store, so a payload computed before a mutation can
// never land in the cache after that mutation's invalidation.
type Coordinator struct {
	mu      sync.RWMutex
	entries map[string]entry
	gens    map[models.Kind]uint64
	ttl     time.Duration
	logger  logger.Logger
}

// New creates a Coordinator with the given TTL. A non-positive TTL falls
// back to DefaultTTL.
func New(ttl time.Duration, log logger.Logger) *Coordinator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Coordinator{
		entries: make(map[string]entry),
		gens:    make(map[models.Kind]uint64),
		ttl:     ttl,
		logger:  log,
	}
}

// Key builds the cache key for a request: endpoint identity plus the raw
// query string. Two differently-ordered but equivalent query strings yield
// distinct keys; that imprecision is accepted.
func Key(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// Get returns the cached payload for key, if present and not expired.
func (c *Coordinator) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.payload, true
}

// Version sums the generation counters of the given kinds. Callers take it
// after a Get miss and before reading the store, then hand it back to Set.
func (c *Coordinator) Version(kinds ...models.Kind) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var v uint64
	for _, k := range kinds {
		v += c.gens[k]
	}
	return v
}

// Set stores a payload computed from the given kinds, fenced by the version
// the caller observed before reading the store. If any tagged kind has been
// mutated since, the payload is pre-mutation data and the write is dropped;
// the next read recomputes. Population happens only on read miss; callers
// must not Set speculatively.
func (c *Coordinator) Set(key string, payload interface{}, version uint64, kinds ...models.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var current uint64
	for _, k := range kinds {
		current += c.gens[k]
	}
	if current != version {
		c.logger.Debugf("cache: dropped stale write for %s", key)
		return
	}

	c.entries[key] = entry{
		payload:   payload,
		kinds:     kinds,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// InvalidateKind advances the kind's generation and drops every entry tagged
// with it. It implements repository.Invalidator.
func (c *Coordinator) InvalidateKind(kind models.Kind) {
	c.mu.Lock()
	c.gens[kind]++
	dropped := 0
	for key, e := range c.entries {
		for _, k := range e.kinds {
			if k == kind {
				delete(c.entries, key)
				dropped++
				break
			}
		}
	}
	c.mu.Unlock()

	if dropped > 0 {
		c.logger.Debugf("cache: invalidated %d entries for kind %s", dropped, kind)
	}
}

// Sweep removes expired entries and returns how many were dropped. Expiry is
// also enforced lazily on Get; the sweep just bounds memory.
func (c *Coordinator) Sweep() int {
	now := time.Now()
	c.mu.Lock()
	dropped := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			dropped++
		}
	}
	c.mu.Unlock()
	return dropped
}

// Len returns the number of live entries, expired or not.
func (c *Coordinator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
