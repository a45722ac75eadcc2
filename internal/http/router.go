package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/pillars/internal/http/dashboard"
	"github.com/MrJamesThe3rd/pillars/internal/http/export"
	"github.com/MrJamesThe3rd/pillars/internal/http/financial"
	"github.com/MrJamesThe3rd/pillars/internal/http/importcsv"
	"github.com/MrJamesThe3rd/pillars/internal/http/intellectual"
	"github.com/MrJamesThe3rd/pillars/internal/http/physical"
	"github.com/MrJamesThe3rd/pillars/internal/http/spiritual"
)

func New(
	financialV1 *financial.Handler,
	intellectualV1 *intellectual.Handler,
	physicalV1 *physical.Handler,
	spiritualV1 *spiritual.Handler,
	dashboardV1 *dashboard.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	corsOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		jsonOnly := middleware.AllowContentType("application/json")

		r.Route("/financial", func(r chi.Router) {
			r.Use(jsonOnly)
			financialV1.Routes(r)
		})

		r.Route("/intellectual", func(r chi.Router) {
			r.Use(jsonOnly)
			intellectualV1.Routes(r)
		})

		r.Route("/physical", func(r chi.Router) {
			r.Use(jsonOnly)
			physicalV1.Routes(r)
		})

		r.Route("/spiritual", func(r chi.Router) {
			r.Use(jsonOnly)
			spiritualV1.Routes(r)
		})

		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)

		r.Post("/reset", dashboardV1.Reset)
	})

	return router
}
