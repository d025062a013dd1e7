package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type Artist struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	CreationDate Year     `json:"creationDate"`
	FirstAlbum   string   `json:"firstAlbum"`
	Members      []string `json:"members"`
}

// Year is a formation year. The upstream API sends it as a number, older
// dumps as a string; both decode to the same decimal text.
type Year string

func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*y = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("creationDate: %w", err)
		}
		*y = Year(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("creationDate: %w", err)
	}
	*y = Year(n.String())
	return nil
}

func (y Year) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(y)); err == nil {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(string(y))
}

func (y Year) String() string {
	return string(y)
}

type EnrichedArtist struct {
	Artist
	MembersNames    []string `json:"membersNames"`
	MembersCount    int      `json:"membersCount"`
	FirstAlbumHuman string   `json:"firstAlbumHuman"`
	Location        string   `json:"location"`
}

// MemberRange bounds the member count inclusively. A nil Max means no upper bound.
type MemberRange struct {
	Min int  `json:"min"`
	Max *int `json:"max,omitempty"`
}

func (r MemberRange) Contains(count int) bool {
	if count < r.Min {
		return false
	}
	return r.Max == nil || count <= *r.Max
}

// ArtistSearchResponse carries the time the searched snapshot was loaded.
type ArtistSearchResponse struct {
	Artists  []EnrichedArtist `json:"artists"`
	Total    int              `json:"total"`
	LoadedAt time.Time        `json:"loadedAt"`
}

type SuggestionResponse struct {
	Query       string   `json:"q"`
	Suggestions []string `json:"suggestions"`
}
