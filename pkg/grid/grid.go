// Package grid renders the artist card grid with each card's concert dates.
package grid

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/yair/groupie-tracker/pkg/dom"
	"github.com/yair/groupie-tracker/pkg/domain"
	"github.com/yair/groupie-tracker/pkg/format"
)

const (
	NoDataMessage        = "No data available"
	RelationErrorMessage = "Could not load relations"
)

type Renderer struct {
	catalog domain.Catalog
}

func NewRenderer(catalog domain.Catalog) *Renderer {
	return &Renderer{catalog: catalog}
}

// Render fetches the artist list and returns one card per artist. Every
// card's relation list is filled by its own goroutine as soon as that
// artist's fetch resolves; Render returns once all of them are done. A
// failed artist list fetch is logged and yields no cards.
func (r *Renderer) Render(ctx context.Context) []*html.Node {
	artists, err := r.catalog.ListArtists(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch artists")
		return nil
	}
	if len(artists) == 0 {
		return nil
	}

	var g errgroup.Group
	cards := make([]*html.Node, 0, len(artists))
	for _, artist := range artists {
		card := Card(artist)
		cards = append(cards, card)

		id := artist.ID
		g.Go(func() error {
			r.loadRelations(ctx, card, id)
			return nil
		})
	}
	_ = g.Wait()

	rows, failed := countRelations(cards)
	log.Info().
		Int("cards", len(cards)).
		Int("relation_rows", rows).
		Int("cards_without_dates", failed).
		Msg("artist grid rendered")

	return cards
}

// countRelations tallies the filled relation rows and the cards whose list
// holds only the error row.
func countRelations(cards []*html.Node) (rows, failed int) {
	for _, card := range cards {
		list := dom.Find(card, dom.ByData("role", "relations"))
		if list == nil {
			continue
		}
		items := dom.FindAll(list, dom.ByTag("li"))
		if len(items) == 1 && dom.HasClass(items[0], "artist-data-error") {
			failed++
			continue
		}
		rows += len(items)
	}
	return rows, failed
}

func (r *Renderer) loadRelations(ctx context.Context, card *html.Node, artistID int) {
	list := dom.Find(card, dom.ByData("role", "relations"))
	if list == nil {
		return
	}

	relations, err := r.catalog.GetRelation(ctx, artistID)
	if err != nil {
		log.Error().Err(err).
			Int("artist_id", artistID).
			Str("artist", dom.TextContent(dom.Find(card, dom.ByClass("artist-name")))).
			Msg("failed to fetch relations")
		ShowRelationsError(list, RelationErrorMessage)
		return
	}
	FillRelations(list, relations)
}

// Card builds the artist card with an empty relations placeholder.
func Card(artist domain.Artist) *html.Node {
	article := dom.Element("article", "artist-card", "data-artist-id", strconv.Itoa(artist.ID))

	imageWrapper := dom.Append(dom.Element("div", "artist-image-wrapper"),
		dom.Element("img", "artist-image", "src", artist.Image, "alt", artist.Name),
		dom.Text("span", "artist-id-badge", "ID "+strconv.Itoa(artist.ID)),
	)

	meta := dom.Append(dom.Element("p", "artist-meta"),
		dom.Text("span", "artist-year", "Since "+artist.CreationDate.String()),
		dom.Text("span", "artist-album-label", "First Album"),
		dom.Text("span", "artist-album-date", format.ToHumanDate(artist.FirstAlbum)),
	)

	membersList := dom.Element("ul", "")
	for _, member := range artist.Members {
		membersList.AppendChild(dom.Text("li", "", member))
	}
	members := dom.Append(dom.Element("div", "artist-members"),
		dom.Text("h3", "", "Members"),
		membersList,
	)

	data := dom.Append(dom.Element("div", "artist-data"),
		dom.Append(dom.Element("div", "artist-data-block"),
			dom.Text("h3", "", "Concert dates"),
			dom.Element("ul", "artist-data-list", "data-role", "relations"),
		),
	)

	body := dom.Append(dom.Element("div", "artist-body"),
		dom.Text("h2", "artist-name", artist.Name),
		meta,
		members,
		data,
	)

	return dom.Append(article, imageWrapper, body)
}

// FillRelations replaces the list content with one row per location, in
// relation map order.
func FillRelations(list *html.Node, relations domain.RelationMap) {
	dom.Clear(list)

	if len(relations) == 0 {
		ShowRelationsError(list, NoDataMessage)
		return
	}

	for _, entry := range relations {
		dates := dom.Element("div", "relation-dates")
		for _, date := range entry.Dates {
			dates.AppendChild(dom.Text("span", "date-chip", format.ToHumanDate(date)))
		}

		row := dom.Append(dom.Element("li", "relation-row"),
			dom.Text("span", "relation-location", format.FormatPlace(entry.Location)),
			dates,
		)
		list.AppendChild(row)
	}
}

// ShowRelationsError replaces the list content with a single message row.
func ShowRelationsError(list *html.Node, message string) {
	dom.Clear(list)
	list.AppendChild(dom.Text("li", "artist-data-error", message))
}
