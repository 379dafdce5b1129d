// Package httpapi exposes the catalog and the scoring engine over HTTP.
// The API is stateless: clients keep their own selections and post them
// to /v1/score when they are done.
package httpapi

import (
	"net/http"

	"temperament/internal/catalog"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds the dependencies shared by the handlers.
type Container struct {
	Catalog  *catalog.Catalog
	PageSize int
	Logger   *zap.Logger
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{catalog: c.Catalog, pageSize: c.PageSize, logger: logger}

	r := mux.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/catalog", h.Catalog).Methods(http.MethodGet)
	v1.HandleFunc("/categories", h.Categories).Methods(http.MethodGet)
	v1.HandleFunc("/score", h.Score).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}
