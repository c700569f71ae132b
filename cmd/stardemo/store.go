package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hxui/hxrating"
)

// ErrAddonNotFound is returned when rating an unknown add-on.
var ErrAddonNotFound = errors.New("stardemo: add-on not found")

// Addon is a catalog entry users can rate.
type Addon struct {
	ID      uuid.UUID
	Slug    string
	Name    string
	Summary string
}

// AddonView is an add-on together with its current rating state.
type AddonView struct {
	Addon
	Rating hxrating.RatingValue
}

type addonRecord struct {
	addon Addon
	total int
	count int
	// pending marks add-ons whose ratings have not synced yet; they render
	// the widget's loading state.
	pending bool
}

// Store is an in-memory add-on catalog with per-add-on rating tallies.
type Store struct {
	mu     sync.RWMutex
	addons map[uuid.UUID]*addonRecord
	order  []uuid.UUID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{addons: make(map[uuid.UUID]*addonRecord)}
}

// Add inserts an add-on with an optional starting tally.
func (s *Store) Add(a Addon, total, count int, pending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addons[a.ID] = &addonRecord{addon: a, total: total, count: count, pending: pending}
	s.order = append(s.order, a.ID)
}

// List returns all add-ons with their current rating state, in insertion
// order.
func (s *Store) List() []AddonView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]AddonView, 0, len(s.order))
	for _, id := range s.order {
		views = append(views, s.view(s.addons[id]))
	}
	return views
}

// Get returns a single add-on view.
func (s *Store) Get(id uuid.UUID) (AddonView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.addons[id]
	if !ok {
		return AddonView{}, fmt.Errorf("%w: %s", ErrAddonNotFound, id)
	}
	return s.view(rec), nil
}

// Rate records a star rating (1-5) for an add-on. Rating a pending add-on
// also marks it as synced, since its tally is now known locally.
func (s *Store) Rate(id uuid.UUID, stars int) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("stardemo: stars %d out of range", stars)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.addons[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAddonNotFound, id)
	}
	rec.total += stars
	rec.count++
	rec.pending = false
	return nil
}

func (s *Store) view(rec *addonRecord) AddonView {
	v := AddonView{Addon: rec.addon}
	switch {
	case rec.pending:
		v.Rating = hxrating.RatingValue{}
	case rec.count == 0:
		v.Rating = hxrating.NoRating()
	default:
		v.Rating = hxrating.RatingOf(float64(rec.total) / float64(rec.count))
	}
	return v
}

// seedStore populates the catalog the demo starts with.
func seedStore() *Store {
	s := NewStore()
	s.Add(Addon{
		ID:      uuid.New(),
		Slug:    "midnight-reader",
		Name:    "Midnight Reader",
		Summary: "Dark mode for every article you open.",
	}, 42, 12, false)
	s.Add(Addon{
		ID:      uuid.New(),
		Slug:    "tab-wrangler",
		Name:    "Tab Wrangler",
		Summary: "Rounds up stray tabs before they stampede.",
	}, 7, 2, false)
	s.Add(Addon{
		ID:      uuid.New(),
		Slug:    "quiet-corners",
		Name:    "Quiet Corners",
		Summary: "Hides comment sections until you ask for them.",
	}, 0, 0, false)
	s.Add(Addon{
		ID:      uuid.New(),
		Slug:    "skyline-sync",
		Name:    "Skyline Sync",
		Summary: "Ratings still syncing from the mothership.",
	}, 0, 0, true)
	return s
}
