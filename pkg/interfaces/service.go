package interfaces

import (
	"context"
	"fmt"

	"github.com/yair/groupie-tracker/pkg/domain"
	"github.com/yair/groupie-tracker/pkg/search"
)

// SearchService is what the search page and the JSON API need from the
// catalog snapshot.
type SearchService interface {
	// Reload refetches everything; every search page load calls it.
	Reload(ctx context.Context) error
	// EnsureLoaded loads once if no snapshot has been published yet.
	EnsureLoaded(ctx context.Context) error
	Search(criteria search.Criteria) *domain.ArtistSearchResponse
	Suggest(query string) []string
}

type CatalogService struct {
	engine *search.Engine
	// loading is a one-slot semaphore serializing loads; waiting on it
	// honors the caller's context.
	loading chan struct{}
}

func NewCatalogService(engine *search.Engine) *CatalogService {
	return &CatalogService{
		engine:  engine,
		loading: make(chan struct{}, 1),
	}
}

func (s *CatalogService) acquire(ctx context.Context) error {
	select {
	case s.loading <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *CatalogService) release() {
	<-s.loading
}

func (s *CatalogService) Reload(ctx context.Context) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	return s.engine.Load(ctx)
}

// EnsureLoaded never waits behind a running reload once a snapshot has
// been published; readers keep using the previous one.
func (s *CatalogService) EnsureLoaded(ctx context.Context) error {
	if s.engine.Loaded() {
		return nil
	}

	if err := s.acquire(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotLoaded, err)
	}
	defer s.release()

	if s.engine.Loaded() {
		return nil
	}
	if err := s.engine.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotLoaded, err)
	}
	return nil
}

func (s *CatalogService) Search(criteria search.Criteria) *domain.ArtistSearchResponse {
	artists := s.engine.Filter(criteria)
	if artists == nil {
		artists = []domain.EnrichedArtist{}
	}

	return &domain.ArtistSearchResponse{
		Artists:  artists,
		Total:    len(artists),
		LoadedAt: s.engine.LoadedAt(),
	}
}

func (s *CatalogService) Suggest(query string) []string {
	suggestions := s.engine.Suggest(query)
	if suggestions == nil {
		return []string{}
	}
	return suggestions
}
