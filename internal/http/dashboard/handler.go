package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/http/rest"
	"github.com/MrJamesThe3rd/pillars/internal/intellectual"
	"github.com/MrJamesThe3rd/pillars/internal/physical"
	"github.com/MrJamesThe3rd/pillars/internal/spiritual"
)

// Handler serves the cross-pillar overview and the seed reset.
type Handler struct {
	financial    *financial.Service
	intellectual *intellectual.Service
	physical     *physical.Service
	spiritual    *spiritual.Service
}

func NewHandler(
	fin *financial.Service,
	intel *intellectual.Service,
	phys *physical.Service,
	spirit *spiritual.Service,
) *Handler {
	return &Handler{
		financial:    fin,
		intellectual: intel,
		physical:     phys,
		spiritual:    spirit,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.overview)
}

type overviewResponse struct {
	Financial    financial.Summary    `json:"financial"`
	Intellectual intellectual.Summary `json:"intellectual"`
	Physical     physical.Summary     `json:"physical"`
	Spiritual    spiritual.Summary    `json:"spiritual"`
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	rest.JSON(w, http.StatusOK, overviewResponse{
		Financial:    h.financial.Summarize(),
		Intellectual: h.intellectual.Summarize(),
		Physical:     h.physical.Summarize(),
		Spiritual:    h.spiritual.Summarize(),
	})
}

// Reset restores every collection to its seed state.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.financial.Reset()
	h.intellectual.Reset()
	h.physical.Reset()
	h.spiritual.Reset()

	w.WriteHeader(http.StatusNoContent)
}
