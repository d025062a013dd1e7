package interfaces

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

var allowedResources = map[string]bool{
	"locations": true,
	"dates":     true,
	"relation":  true,
	"artists":   true,
}

// Upstream opens raw responses from the artist API.
type Upstream interface {
	Open(ctx context.Context, path string) (*http.Response, error)
}

type ProxyHandler struct {
	upstream Upstream
}

func NewProxyHandler(upstream Upstream) *ProxyHandler {
	return &ProxyHandler{
		upstream: upstream,
	}
}

func (h *ProxyHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/proxy/{resource}", h.Forward).Methods("GET")
	router.HandleFunc("/proxy/{resource}/{id}", h.Forward).Methods("GET")
	router.PathPrefix("/proxy/").HandlerFunc(h.unmatched)
}

// Forward relays GET /proxy/artists and GET /proxy/{resource}/{id} to the
// upstream API, copying headers, status and body as-is.
func (h *ProxyHandler) Forward(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resource, id := vars["resource"], vars["id"]

	if id == "" && resource != "artists" {
		h.invalidPath(w, r)
		return
	}
	if !allowedResources[resource] {
		respondWithError(w, http.StatusBadRequest, "resource not supported")
		return
	}

	path := resource
	if id != "" {
		path += "/" + id
	}

	logger := zerolog.Ctx(r.Context())
	resp, err := h.upstream.Open(r.Context(), path)
	if err != nil {
		logger.Error().Err(err).Str("resource", path).Msg("proxy fetch failed")
		respondWithError(w, http.StatusBadGateway, "failed to reach upstream API")
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Warn().Err(err).Str("resource", path).Msg("proxy copy interrupted")
	}
}

// unmatched answers proxy paths the routes above reject: a trailing slash
// with no id, or too many segments.
func (h *ProxyHandler) unmatched(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/proxy/"), "/")
	if len(parts) == 2 && parts[1] == "" {
		respondWithError(w, http.StatusBadRequest, "resource not supported")
		return
	}
	h.invalidPath(w, r)
}

func (h *ProxyHandler) invalidPath(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusBadRequest, "invalid proxy path")
}
