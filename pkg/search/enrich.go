package search

import (
	"strconv"
	"strings"

	"github.com/yair/groupie-tracker/pkg/domain"
	"github.com/yair/groupie-tracker/pkg/format"
)

const (
	// NoLocations stands in for the location summary when an artist has no
	// tour locations or its relation fetch failed.
	NoLocations = "No tour locations yet"

	locationSeparator = " • "
	maxSummaryPlaces  = 3
)

// Enrich derives the display fields every artist needs before filtering.
// Location is filled later by the relation fan-out.
func Enrich(artists []domain.Artist) []*domain.EnrichedArtist {
	enriched := make([]*domain.EnrichedArtist, 0, len(artists))
	for _, artist := range artists {
		members := artist.Members
		if members == nil {
			members = []string{}
		}

		var firstAlbumHuman string
		if artist.FirstAlbum != "" {
			firstAlbumHuman = format.ToHumanDate(artist.FirstAlbum)
		}

		enriched = append(enriched, &domain.EnrichedArtist{
			Artist:          artist,
			MembersNames:    members,
			MembersCount:    len(members),
			FirstAlbumHuman: firstAlbumHuman,
		})
	}
	return enriched
}

// SummarizeLocations lists up to three distinct formatted places and counts
// the rest, e.g. "Paris, FR • Berlin, DE • Oslo, NO +2 more".
func SummarizeLocations(relations domain.RelationMap) string {
	if len(relations) == 0 {
		return NoLocations
	}

	seen := make(map[string]bool, len(relations))
	unique := make([]string, 0, len(relations))
	for _, location := range relations.Locations() {
		place := format.FormatPlace(location)
		if seen[place] {
			continue
		}
		seen[place] = true
		unique = append(unique, place)
	}

	if len(unique) <= maxSummaryPlaces {
		return strings.Join(unique, locationSeparator)
	}
	return strings.Join(unique[:maxSummaryPlaces], locationSeparator) +
		" +" + strconv.Itoa(len(unique)-maxSummaryPlaces) + " more"
}

// LocationResult is the outcome of one artist's relation fetch. A failed
// fetch still yields a usable summary.
type LocationResult struct {
	Summary string
	Err     error
}

func (r LocationResult) Location() string {
	if r.Err != nil || r.Summary == "" {
		return NoLocations
	}
	return r.Summary
}
