// Package repository implements the in-memory entity store: one arena per
// kind, sequential id generation, and the uniqueness and reference checks
// that must run atomically with inserts.
package repository

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"mockapi-backend/models"
	"mockapi-backend/utils/logger"
)

// Invalidator receives a notification after every successful mutation so
// cached reads for the affected kind can be dropped. The cache coordinator
// implements it.
type Invalidator interface {
	InvalidateKind(kind models.Kind)
}

// Store holds the three entity arenas. A single store-level RWMutex
// serializes mutations against reads; validation-time uniqueness checks run
// under the same write lock as the insert, so no interleaved request can
// observe a half-applied duplicate.
type Store struct {
	mu sync.RWMutex

	organizations map[string]*models.Organization
	users         map[string]*models.User
	profiles      map[string]*models.Profile

	// Highest numeric suffix ever observed per kind, including
	// client-supplied ids. Generated ids always increment past it, so a
	// freed id below the running maximum is never resurrected.
	orgSeq     int
	userSeq    int
	profileSeq int

	invalidator Invalidator
	logger      logger.Logger
}

// NewStore creates an empty store.
func NewStore(log logger.Logger) *Store {
	return &Store{
		organizations: make(map[string]*models.Organization),
		users:         make(map[string]*models.User),
		profiles:      make(map[string]*models.Profile),
		logger:        log,
	}
}

// SetInvalidator wires the cache coordinator. May be left unset in tests.
func (s *Store) SetInvalidator(inv Invalidator) {
	s.invalidator = inv
}

// invalidate is called after the write lock is released so the coordinator's
// invalidate-then-repopulate ordering holds: by the time a stale reader could
// repopulate, the store already reflects the mutation.
func (s *Store) invalidate(kind models.Kind) {
	if s.invalidator != nil {
		s.invalidator.InvalidateKind(kind)
	}
}

// nextID formats prefix plus the next sequence number, zero-padded to three
// digits. Caller must hold s.mu.
func nextID(prefix string, seq *int) string {
	*seq++
	return fmt.Sprintf("%s%03d", prefix, *seq)
}

// noteID bumps the sequence past a client-supplied id's numeric suffix so
// later generated ids cannot collide with it. Caller must hold s.mu.
func noteID(id, prefix string, seq *int) {
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err == nil && n > *seq {
		*seq = n
	}
}

// Counts returns the size of each arena in one consistent snapshot.
func (s *Store) Counts() (organizations, users, profiles int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.organizations), len(s.users), len(s.profiles)
}

// sortedIDs returns map keys in ascending order for stable list output.
func sortedIDs[T any](m map[string]*T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
