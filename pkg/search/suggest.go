package search

import (
	"strings"

	"github.com/yair/groupie-tracker/pkg/domain"
	"github.com/yair/groupie-tracker/pkg/format"
)

// MaxSuggestions caps the autocomplete list.
const MaxSuggestions = 6

// BuildSuggestionIndex collects artist names and member names in catalog
// order, dropping entries whose normalized form was already seen. The first
// literal spelling is kept.
func BuildSuggestionIndex(artists []domain.EnrichedArtist) []string {
	seen := make(map[string]bool)
	var pool []string

	add := func(label string) {
		key := format.Normalize(label)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		pool = append(pool, label)
	}

	for _, artist := range artists {
		add(artist.Name)
		for _, member := range artist.MembersNames {
			add(member)
		}
	}
	return pool
}

// Suggest scans pool in order and returns up to MaxSuggestions entries whose
// normalized form contains the normalized query.
func Suggest(pool []string, query string) []string {
	q := format.Normalize(query)
	if q == "" {
		return nil
	}

	var matches []string
	for _, label := range pool {
		if len(matches) >= MaxSuggestions {
			break
		}
		if strings.Contains(format.Normalize(label), q) {
			matches = append(matches, label)
		}
	}
	return matches
}

// Suggestions is the visible autocomplete list with keyboard navigation.
// Active is -1 until the user moves into the list.
type Suggestions struct {
	Items  []string
	Active int
}

func NewSuggestions(items []string) *Suggestions {
	return &Suggestions{Items: items, Active: -1}
}

// Visible reports whether there is anything to show.
func (s *Suggestions) Visible() bool {
	return len(s.Items) > 0
}

// Down moves to the next item, wrapping to the first.
func (s *Suggestions) Down() {
	n := len(s.Items)
	if n == 0 {
		return
	}
	s.Active = (s.Active + 1) % n
}

// Up moves to the previous item, wrapping to the last. From no selection
// it lands on the last item.
func (s *Suggestions) Up() {
	n := len(s.Items)
	if n == 0 {
		return
	}
	if s.Active < 0 {
		s.Active = n - 1
		return
	}
	s.Active = (s.Active - 1 + n) % n
}

// Selected returns the active item, if any.
func (s *Suggestions) Selected() (string, bool) {
	if s.Active < 0 || s.Active >= len(s.Items) {
		return "", false
	}
	return s.Items[s.Active], true
}

// Hide clears the list and the active index.
func (s *Suggestions) Hide() {
	s.Items = nil
	s.Active = -1
}
