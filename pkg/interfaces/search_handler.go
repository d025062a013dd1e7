package interfaces

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/yair/groupie-tracker/pkg/domain"
)

// SearchHandler serves the keystroke path: filtering, suggestions and the
// slider all read the snapshot published by the last page load.
type SearchHandler struct {
	service SearchService
	slider  SliderConfig
}

func NewSearchHandler(service SearchService, sliderCfg SliderConfig) *SearchHandler {
	return &SearchHandler{
		service: service,
		slider:  sliderCfg,
	}
}

func (h *SearchHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/search", h.SearchArtists).Methods("GET")
	router.HandleFunc("/api/suggestions", h.Suggestions).Methods("GET")
	router.HandleFunc("/api/slider", h.Slider).Methods("GET")
}

func (h *SearchHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	req := newFilterRequest(r)
	if err := req.Validate(); err != nil {
		code, message := statusForError(err)
		respondWithError(w, code, message)
		return
	}

	if err := h.service.EnsureLoaded(ctx); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("catalog load failed")
		code, message := statusForError(err)
		respondWithError(w, code, message)
		return
	}

	criteria, _ := req.criteria(h.slider)
	respondWithJSON(w, http.StatusOK, h.service.Search(criteria))
}

func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	req := newFilterRequest(r)
	if err := req.Validate(); err != nil {
		code, message := statusForError(err)
		respondWithError(w, code, message)
		return
	}

	if err := h.service.EnsureLoaded(ctx); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("catalog load failed")
		code, message := statusForError(err)
		respondWithError(w, code, message)
		return
	}

	respondWithJSON(w, http.StatusOK, domain.SuggestionResponse{
		Query:       req.Query,
		Suggestions: h.service.Suggest(req.Query),
	})
}

func (h *SearchHandler) Slider(w http.ResponseWriter, r *http.Request) {
	req := newSliderRequest(r)
	if err := req.Validate(); err != nil {
		code, message := statusForError(err)
		respondWithError(w, code, message)
		return
	}

	respondWithJSON(w, http.StatusOK, req.apply(h.slider).State())
}
