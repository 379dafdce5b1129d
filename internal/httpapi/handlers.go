package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"temperament/internal/catalog"
	"temperament/internal/scoring"

	"go.uber.org/zap"
)

// maxBodyBytes caps a score request. The full catalog of ids fits many times over.
const maxBodyBytes = 1 << 20

// Handler serves the questionnaire endpoints.
type Handler struct {
	catalog  *catalog.Catalog
	pageSize int
	logger   *zap.Logger
}

// CatalogResponse is the body of GET /v1/catalog.
type CatalogResponse struct {
	Statements []catalog.Statement `json:"statements"`
	Page       *int                `json:"page,omitempty"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
	Total      int                 `json:"total"`
}

// CategoryInfo describes one temperament.
type CategoryInfo struct {
	ID          catalog.Category `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

// ScoreRequest is the body of POST /v1/score.
type ScoreRequest struct {
	Selected []int `json:"selected"`
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Catalog handles GET /v1/catalog
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	size := h.pageSize
	if size <= 0 {
		size = catalog.DefaultPageSize
	}
	resp := CatalogResponse{
		PageSize:   size,
		TotalPages: h.catalog.TotalPages(size),
		Total:      h.catalog.Len(),
	}

	raw := r.URL.Query().Get("page")
	if raw == "" {
		resp.Statements = h.catalog.Statements()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 || page >= resp.TotalPages {
		writeError(w, http.StatusBadRequest, "invalid page")
		return
	}
	resp.Page = &page
	resp.Statements = h.catalog.Page(page, size)
	writeJSON(w, http.StatusOK, resp)
}

// Categories handles GET /v1/categories
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	out := make([]CategoryInfo, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		out = append(out, CategoryInfo{ID: c, Title: c.Title(), Description: scoring.Description(c)})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": out})
}

// Score handles POST /v1/score
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req ScoreRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body: trailing data")
		return
	}

	result, err := scoring.Compute(h.catalog, req.Selected)
	if errors.Is(err, catalog.ErrUnknownStatement) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("scoring failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "scoring failed")
		return
	}

	h.logger.Debug("scored selection",
		zap.Int("selected", result.Total),
		zap.String("dominant", string(result.Dominant)),
	)
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
