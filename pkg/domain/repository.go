package domain

import (
	"context"
)

// ArtistSource lists the artists known to the upstream API.
type ArtistSource interface {
	ListArtists(ctx context.Context) ([]Artist, error)
}

// RelationSource fetches the tour-date relation map of one artist.
type RelationSource interface {
	GetRelation(ctx context.Context, artistID int) (RelationMap, error)
}

// Catalog is everything the grid and the search engine read from upstream.
type Catalog interface {
	ArtistSource
	RelationSource
}
