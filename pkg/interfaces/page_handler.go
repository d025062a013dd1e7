package interfaces

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/yair/groupie-tracker/pkg/dom"
	"github.com/yair/groupie-tracker/pkg/search"
	"github.com/yair/groupie-tracker/pkg/slider"
)

var funcMap = template.FuncMap{
	"fmtTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Local().Format("Jan 2 15:04:05")
	},
}

// GridRenderer builds the artist cards of the home page.
type GridRenderer interface {
	Render(ctx context.Context) []*html.Node
}

type PageHandler struct {
	grid    GridRenderer
	service SearchService
	slider  SliderConfig
}

func NewPageHandler(grid GridRenderer, service SearchService, sliderCfg SliderConfig) *PageHandler {
	return &PageHandler{
		grid:    grid,
		service: service,
		slider:  sliderCfg,
	}
}

func (h *PageHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Grid).Methods("GET")
	router.HandleFunc("/search", h.Search).Methods("GET")
}

type gridPage struct {
	Title     string
	Generated time.Time
	Cards     template.HTML
}

type searchPage struct {
	Title       string
	Generated   time.Time
	Filters     filterRequest
	Slider      slider.State
	Fill        template.CSS
	Suggestions template.HTML
	Results     template.HTML
	Total       int
	LoadedAt    time.Time
}

func (h *PageHandler) Grid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cards, err := dom.Render(h.grid.Render(ctx)...)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render artist grid")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	render(w, r, http.StatusOK, tmplGrid, gridPage{
		Title:     "Artists",
		Generated: time.Now(),
		Cards:     template.HTML(cards),
	})
}

// Search is a full page load: the catalog is reloaded, then filtered with
// the query string.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	req := newFilterRequest(r)
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	criteria, sl := req.criteria(h.slider)
	page := searchPage{
		Title:     "Search",
		Generated: time.Now(),
		Filters:   req,
		Slider:    sl.State(),
		Fill:      template.CSS(sl.Fill()),
	}

	status := http.StatusOK
	var nodes []*html.Node
	if err := h.service.Reload(ctx); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("search page load failed")
		status, _ = statusForError(err)
		nodes = append(nodes, search.EmptyState(search.LoadErrorMessage))
	} else {
		resp := h.service.Search(criteria)
		page.Total = resp.Total
		page.LoadedAt = resp.LoadedAt
		nodes = append(nodes, search.Results(resp.Artists))

		if req.Query != "" && req.Picked == "" {
			list := search.SuggestionList(search.NewSuggestions(h.service.Suggest(req.Query)), suggestionLink(r))
			if list != nil {
				suggestions, err := dom.Render(list)
				if err != nil {
					zerolog.Ctx(r.Context()).Error().Err(err).Msg("render suggestions")
				}
				page.Suggestions = template.HTML(suggestions)
			}
		}
	}

	results, err := dom.Render(nodes...)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render search results")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	page.Results = template.HTML(results)

	render(w, r, status, tmplSearch, page)
}

// suggestionLink points a suggestion at the same search with the item as
// the query. The picked flag keeps the list closed on the next page.
func suggestionLink(r *http.Request) func(item string) string {
	return func(item string) string {
		q := r.URL.Query()
		q.Set("q", item)
		q.Set("picked", "1")
		return "/search?" + q.Encode()
	}
}

func render(w http.ResponseWriter, r *http.Request, status int, tmplStr string, data any) {
	t, err := template.New("page").Funcs(funcMap).Parse(tmplBase + tmplStr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("template error")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
