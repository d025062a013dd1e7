package interfaces

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouteRegistrar is implemented by every handler in this package.
type RouteRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

// NewRouter wires the handlers behind the request id, access log and
// recovery middleware. Static files are served from staticDir under
// /static/ when it is set.
func NewRouter(staticDir string, handlers ...RouteRegistrar) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, AccessLog, Recovery)

	router.HandleFunc("/health", Health).Methods("GET")
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	if staticDir != "" {
		router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	}

	return router
}

func Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
