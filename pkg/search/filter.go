package search

import (
	"strings"

	"github.com/yair/groupie-tracker/pkg/domain"
	"github.com/yair/groupie-tracker/pkg/format"
)

// Criteria is one filter pass: the free-text box, the four form fields and
// the slider range. Empty text fields match everything.
type Criteria struct {
	Query        string             `json:"q"`
	Name         string             `json:"name"`
	Location     string             `json:"location"`
	FirstAlbum   string             `json:"firstAlbum"`
	CreationDate string             `json:"creationDate"`
	Members      domain.MemberRange `json:"members"`
}

// Filter keeps the artists that pass every criterion, in catalog order.
func Filter(artists []domain.EnrichedArtist, criteria Criteria) []domain.EnrichedArtist {
	query := format.Normalize(criteria.Query)
	name := format.Normalize(criteria.Name)
	location := format.Normalize(criteria.Location)
	firstAlbum := format.Normalize(criteria.FirstAlbum)
	creationDate := format.Normalize(criteria.CreationDate)

	filtered := make([]domain.EnrichedArtist, 0, len(artists))
	for _, artist := range artists {
		nName := format.Normalize(artist.Name)
		nLocation := format.Normalize(artist.Location)
		nFirstAlbum := format.Normalize(firstAlbumText(artist))
		nCreationDate := format.Normalize(artist.CreationDate.String())

		if query != "" {
			haystack := strings.Join([]string{
				nName,
				nLocation,
				nFirstAlbum,
				nCreationDate,
				format.Normalize(strings.Join(artist.MembersNames, " ")),
			}, " ")
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		if name != "" && !strings.Contains(nName, name) {
			continue
		}
		if !criteria.Members.Contains(artist.MembersCount) {
			continue
		}
		if location != "" && !strings.Contains(nLocation, location) {
			continue
		}
		if firstAlbum != "" && !strings.Contains(nFirstAlbum, firstAlbum) {
			continue
		}
		if creationDate != "" && !strings.Contains(nCreationDate, creationDate) {
			continue
		}

		filtered = append(filtered, artist)
	}
	return filtered
}

func firstAlbumText(artist domain.EnrichedArtist) string {
	if artist.FirstAlbumHuman != "" {
		return artist.FirstAlbumHuman
	}
	return artist.FirstAlbum
}
