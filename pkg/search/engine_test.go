package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yair/groupie-tracker/pkg/domain"
)

func TestEngineLoad(t *testing.T) {
	t.Run("enriches every artist and joins all fetches", func(t *testing.T) {
		catalog := sampleCatalog()
		engine := NewEngine(catalog, Options{})

		require.NoError(t, engine.Load(context.Background()))
		assert.True(t, engine.Loaded())
		assert.False(t, engine.LoadedAt().IsZero())

		artists := engine.Artists()
		require.Len(t, artists, 5)
		assert.Len(t, catalog.calls, 5, "one relation fetch per artist")

		assert.Equal(t, "London, UK • Paris, FRANCE • New York, USA +2 more", artists[0].Location)
		assert.Equal(t, "Kingston, JAMAICA", artists[1].Location)
		assert.Equal(t, NoLocations, artists[2].Location, "failed fetch falls back")
		assert.Equal(t, NoLocations, artists[3].Location, "empty map falls back")
		assert.Equal(t, NoLocations, artists[4].Location, "missing map falls back")

		for _, artist := range artists {
			assert.Equal(t, len(artist.MembersNames), artist.MembersCount)
			assert.NotEmpty(t, artist.Location)
		}
		assert.NotNil(t, artists[3].MembersNames)
		assert.Equal(t, "5 March 1973", artists[1].FirstAlbumHuman)
		assert.Equal(t, "", artists[3].FirstAlbumHuman)
	})

	t.Run("list failure keeps previous snapshot", func(t *testing.T) {
		catalog := sampleCatalog()
		engine := NewEngine(catalog, Options{})
		require.NoError(t, engine.Load(context.Background()))

		catalog.listErr = domain.ErrFetchFailure
		err := engine.Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrFetchFailure))
		assert.Len(t, engine.Artists(), 5)
	})

	t.Run("not loaded", func(t *testing.T) {
		engine := NewEngine(&fakeCatalog{listErr: errUpstreamDown}, Options{})
		require.Error(t, engine.Load(context.Background()))
		assert.False(t, engine.Loaded())
		assert.Empty(t, engine.Artists())
		assert.Empty(t, engine.Filter(Criteria{}))
	})

	t.Run("concurrency limit", func(t *testing.T) {
		catalog := sampleCatalog()
		engine := NewEngine(catalog, Options{MaxConcurrentFetches: 1})

		require.NoError(t, engine.Load(context.Background()))
		assert.Len(t, catalog.calls, 5)
		assert.EqualValues(t, 1, catalog.maxInFight)
	})
}

func TestSummarizeLocations(t *testing.T) {
	tests := []struct {
		name      string
		relations domain.RelationMap
		want      string
	}{
		{"none", domain.RelationMap{}, NoLocations},
		{"nil", nil, NoLocations},
		{"one", domain.RelationMap{{Location: "paris-fr"}}, "Paris, FR"},
		{"exactly three", domain.RelationMap{
			{Location: "paris-fr"}, {Location: "berlin-de"}, {Location: "oslo-no"},
		}, "Paris, FR • Berlin, DE • Oslo, NO"},
		{"five", domain.RelationMap{
			{Location: "paris-fr"}, {Location: "berlin-de"}, {Location: "oslo-no"},
			{Location: "rome-it"}, {Location: "bern-ch"},
		}, "Paris, FR • Berlin, DE • Oslo, NO +2 more"},
		{"duplicates after formatting", domain.RelationMap{
			{Location: "new_york-usa"}, {Location: "new-york-usa"}, {Location: "paris-fr"},
		}, "New York, USA • Paris, FR"},
		{"same place after formatting", domain.RelationMap{
			{Location: "paris-fr"}, {Location: "Paris-FR"},
		}, "Paris, FR"},
		{"case-sensitive dedup", domain.RelationMap{
			{Location: "paris-fr"}, {Location: "pARIS-fr"},
		}, "Paris, FR • PARIS, FR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummarizeLocations(tt.relations))
		})
	}
}

func TestLocationResult(t *testing.T) {
	assert.Equal(t, "Paris, FR", LocationResult{Summary: "Paris, FR"}.Location())
	assert.Equal(t, NoLocations, LocationResult{Summary: "Paris, FR", Err: errUpstreamDown}.Location())
	assert.Equal(t, NoLocations, LocationResult{}.Location())
}
