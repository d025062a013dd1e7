package search

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/yair/groupie-tracker/pkg/dom"
	"github.com/yair/groupie-tracker/pkg/domain"
)

const (
	EmptyResultsMessage = "No results. Try different keywords or filter values."
	LoadErrorMessage    = "Could not load artists. Please refresh and try again."

	fallbackImage = "/static/img/a.png"
)

// MembersLabel is "1 member" or "<n> members".
func MembersLabel(count int) string {
	if count == 1 {
		return "1 member"
	}
	return strconv.Itoa(count) + " members"
}

// ResultCard builds one search result card.
func ResultCard(artist domain.EnrichedArtist) *html.Node {
	image := artist.Image
	if image == "" {
		image = fallbackImage
	}
	location := artist.Location
	if location == "" {
		location = "N/A"
	}

	card := dom.Element("article", "result-card", "data-artist-id", strconv.Itoa(artist.ID))

	header := dom.Append(dom.Element("div", "result-card-header"),
		dom.Element("img", "result-card-image", "src", image, "alt", artist.Name),
	)

	body := dom.Append(dom.Element("div", "result-card-body"),
		dom.Text("h3", "", artist.Name),
		metaLine("Members:", MembersLabel(artist.MembersCount)),
		metaLine("Location:", location),
		metaLine("First album:", firstAlbumText(artist)),
		metaLine("Creation date:", artist.CreationDate.String()),
	)

	return dom.Append(card, header, body)
}

func metaLine(label, value string) *html.Node {
	p := dom.Element("p", "meta")
	dom.Append(p, dom.Text("strong", "", label))
	p.AppendChild(&html.Node{Type: html.TextNode, Data: " " + value})
	return p
}

// Results renders the filtered list, or the empty-state message when
// nothing matched.
func Results(list []domain.EnrichedArtist) *html.Node {
	if len(list) == 0 {
		return EmptyState(EmptyResultsMessage)
	}

	grid := dom.Element("div", "result-grid")
	for _, artist := range list {
		grid.AppendChild(ResultCard(artist))
	}
	return grid
}

func EmptyState(message string) *html.Node {
	return dom.Text("p", "empty-state", message)
}

// SuggestionList renders the autocomplete list; nil when there is nothing
// to show. When link is set every item becomes an anchor to link(item).
func SuggestionList(s *Suggestions, link func(item string) string) *html.Node {
	if s == nil || !s.Visible() {
		return nil
	}

	ul := dom.Element("ul", "suggestions visible", "id", "suggestions")
	for i, item := range s.Items {
		class := ""
		if i == s.Active {
			class = "active"
		}
		if link == nil {
			ul.AppendChild(dom.Text("li", class, item, "data-index", strconv.Itoa(i)))
			continue
		}
		li := dom.Element("li", class, "data-index", strconv.Itoa(i))
		li.AppendChild(dom.Text("a", "", item, "href", link(item)))
		ul.AppendChild(li)
	}
	return ul
}
