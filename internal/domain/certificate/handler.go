package certificate

import (
	"net/http"

	"github.com/portfolio/portfolio-api/internal/pkg/errorhandler"
	"github.com/portfolio/portfolio-api/internal/pkg/response"
)

// Handler handles certificate HTTP requests
type Handler struct {
	repo Repository
}

// NewHandler creates new certificate handler
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /api/certificates
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		errorhandler.HandleStoreError(r.Context(), w, "certificates.list", err)
		return
	}
	if items == nil {
		items = []*Entity{}
	}

	response.OK(w, items)
}
