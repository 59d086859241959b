// internal/api/catalog_handler.go
package api

import (
	"net/http"

	"github.com/remaimber-it/sattutor/internal/catalog"
)

// ── Request / Response types ────────────────────────────────────────────────

type LabelsResponse struct {
	All    string   `json:"all" example:"All Topics"`
	Labels []string `json:"labels"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /catalog/topics
// @Summary      List topics
// @Description  Distinct topics in the loaded catalog, sorted. "all" is the label that disables the topic filter.
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  LabelsResponse
// @Router       /catalog/topics [get]
func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LabelsResponse{
		All:    catalog.AllTopics,
		Labels: nonNil(catalog.Topics(h.sessions.Catalog())),
	})
}

// GET /catalog/difficulties
// @Summary      List difficulties
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  LabelsResponse
// @Router       /catalog/difficulties [get]
func (h *Handler) listDifficulties(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LabelsResponse{
		All:    catalog.AllDifficulties,
		Labels: nonNil(catalog.Difficulties(h.sessions.Catalog())),
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
