package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	documentHandler "github.com/Kunal1519/blind-invoice-creator-pro/internal/http/document"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/http/importcsv"
	invoiceHandler "github.com/Kunal1519/blind-invoice-creator-pro/internal/http/invoice"
	masterdataHandler "github.com/Kunal1519/blind-invoice-creator-pro/internal/http/masterdata"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/http/middleware"
	settingsHandler "github.com/Kunal1519/blind-invoice-creator-pro/internal/http/settings"
)

func New(
	invoiceV1 *invoiceHandler.Handler,
	masterdataV1 *masterdataHandler.Handler,
	settingsV1 *settingsHandler.Handler,
	importV1 *importcsv.Handler,
	documentV1 *documentHandler.Handler,
	jwtSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.BearerAuth(jwtSecret))

		r.Route("/invoice", func(r chi.Router) {
			documentV1.SessionRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(chimiddleware.AllowContentType("application/json"))
				invoiceV1.SessionRoutes(r)
			})
		})

		r.Route("/invoices", func(r chi.Router) {
			documentV1.SavedRoutes(r)
			invoiceV1.SavedRoutes(r)
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			masterdataV1.VendorRoutes(r)
		})

		r.Route("/parties", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			masterdataV1.PartyRoutes(r)
		})

		r.Route("/products", func(r chi.Router) {
			r.Route("/import", importV1.Routes)

			r.Group(func(r chi.Router) {
				r.Use(chimiddleware.AllowContentType("application/json"))
				masterdataV1.ProductRoutes(r)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			settingsV1.Routes(r)
		})
	})

	return router
}
