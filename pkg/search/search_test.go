package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/yair/groupie-tracker/pkg/domain"
)

type fakeCatalog struct {
	artists    []domain.Artist
	listErr    error
	relations  map[int]domain.RelationMap
	failing    map[int]bool
	inFlight   int32
	maxInFight int32

	mu    sync.Mutex
	calls []int
}

func (f *fakeCatalog) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.artists, nil
}

func (f *fakeCatalog) GetRelation(ctx context.Context, artistID int) (domain.RelationMap, error) {
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		max := atomic.LoadInt32(&f.maxInFight)
		if n <= max || atomic.CompareAndSwapInt32(&f.maxInFight, max, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, artistID)
	f.mu.Unlock()

	if f.failing[artistID] {
		return nil, fmt.Errorf("get relation %d: %w", artistID, domain.ErrFetchFailure)
	}
	return f.relations[artistID], nil
}

var errUpstreamDown = errors.New("upstream down")

func sampleCatalog() *fakeCatalog {
	return &fakeCatalog{
		artists: []domain.Artist{
			{ID: 1, Name: "Queen", Image: "queen.jpeg", CreationDate: "1970", FirstAlbum: "14-12-1973",
				Members: []string{"Freddie Mercury", "Brian May", "John Deacon", "Roger Taylor"}},
			{ID: 2, Name: "Bob Marley", CreationDate: "1963", FirstAlbum: "*05-03-1973",
				Members: []string{"Bob Marley"}},
			{ID: 3, Name: "Pink Floyd", CreationDate: "1965", FirstAlbum: "05-08-1967",
				Members: []string{"Syd Barrett", "Roger Waters", "Nick Mason", "Richard Wright", "David Gilmour"}},
			{ID: 4, Name: "Solo Silence", CreationDate: "2001", FirstAlbum: "", Members: nil},
			{ID: 5, Name: "queen tribute", CreationDate: "2010", FirstAlbum: "01-01-2011",
				Members: []string{"  brian may  ", "Queen"}},
		},
		relations: map[int]domain.RelationMap{
			1: {
				{Location: "london-uk", Dates: []string{"01-01-1980"}},
				{Location: "paris-france"},
				{Location: "new_york-usa"},
				{Location: "berlin-germany"},
				{Location: "tokyo-japan"},
			},
			2: {
				{Location: "kingston-jamaica"},
				{Location: "kingston-jamaica"},
			},
			4: {},
		},
		failing: map[int]bool{3: true},
	}
}
