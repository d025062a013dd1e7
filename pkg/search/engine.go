// Package search loads the artist catalog, derives searchable fields and
// answers filter and autocomplete queries over the in-memory snapshot.
package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/yair/groupie-tracker/pkg/domain"
)

type Engine struct {
	catalog     domain.Catalog
	maxInFlight int

	mu          sync.RWMutex
	artists     []domain.EnrichedArtist
	suggestions []string
	loaded      bool
	loadedAt    time.Time
}

type Options struct {
	// MaxConcurrentFetches bounds in-flight relation fetches; 0 is unbounded.
	MaxConcurrentFetches int
}

func NewEngine(catalog domain.Catalog, opts Options) *Engine {
	return &Engine{
		catalog:     catalog,
		maxInFlight: opts.MaxConcurrentFetches,
	}
}

// Load fetches the artist list, enriches it, resolves every artist's
// location summary concurrently and publishes the result. The previous
// snapshot stays visible until all relation fetches have finished. Only
// the artist list fetch can fail Load.
func (e *Engine) Load(ctx context.Context) error {
	start := time.Now()

	raw, err := e.catalog.ListArtists(ctx)
	if err != nil {
		return fmt.Errorf("load artists: %w", err)
	}

	enriched := Enrich(raw)
	results := e.resolveLocations(ctx, enriched)

	artists := make([]domain.EnrichedArtist, len(enriched))
	failed := 0
	for i, artist := range enriched {
		artist.Location = results[i].Location()
		if results[i].Err != nil {
			failed++
		}
		artists[i] = *artist
	}
	suggestions := BuildSuggestionIndex(artists)

	e.mu.Lock()
	e.artists = artists
	e.suggestions = suggestions
	e.loaded = true
	e.loadedAt = time.Now()
	e.mu.Unlock()

	log.Info().
		Int("artists", len(artists)).
		Int("suggestions", len(suggestions)).
		Int("relation_failures", failed).
		Dur("took", time.Since(start)).
		Msg("search catalog loaded")

	return nil
}

// resolveLocations fetches every relation map in its own goroutine. Each
// goroutine writes only its own slot and never returns an error, so one
// artist's failure cannot cancel the others.
func (e *Engine) resolveLocations(ctx context.Context, artists []*domain.EnrichedArtist) []LocationResult {
	results := make([]LocationResult, len(artists))

	var g errgroup.Group
	if e.maxInFlight > 0 {
		g.SetLimit(e.maxInFlight)
	}

	for i, artist := range artists {
		i, id := i, artist.ID
		g.Go(func() error {
			relations, err := e.catalog.GetRelation(ctx, id)
			if err != nil {
				log.Warn().Err(err).Int("artist_id", id).Msg("relation fetch failed, using placeholder location")
				results[i] = LocationResult{Err: err}
				return nil
			}
			results[i] = LocationResult{Summary: SummarizeLocations(relations)}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Artists returns a copy of the current snapshot.
func (e *Engine) Artists() []domain.EnrichedArtist {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]domain.EnrichedArtist, len(e.artists))
	copy(out, e.artists)
	return out
}

func (e *Engine) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loaded
}

func (e *Engine) LoadedAt() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loadedAt
}

// Filter runs the filter pass over the current snapshot.
func (e *Engine) Filter(criteria Criteria) []domain.EnrichedArtist {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Filter(e.artists, criteria)
}

// Suggest returns autocomplete entries for the free-text query.
func (e *Engine) Suggest(query string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Suggest(e.suggestions, query)
}
