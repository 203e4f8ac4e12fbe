/**
 * @description
 * This file sets up the HTTP router for the designation service using the
 * `chi` routing library. It defines all the API routes and applies the
 * shared middleware stack.
 *
 * @dependencies
 * - github.com/go-chi/chi/v5: The routing library.
 * - github.com/go-chi/cors: CORS middleware for browser dashboards.
 */
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/trustmark/designation-service/internal/app"
	"github.com/trustmark/designation-service/pkg/middleware"
)

// NewRouter creates and configures a new HTTP router.
func NewRouter(service *app.DesignationService, feed *AuditFeed) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.NewRateLimiter(100, 50).Handler)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	accountHandler := NewAccountHandler(service)
	beneficiaryHandler := NewBeneficiaryHandler(service)
	submissionHandler := NewSubmissionHandler(service)
	auditHandler := NewAuditHandler(service)
	institutionHandler := NewInstitutionHandler(service)

	r.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", accountHandler.ListAccounts)
			r.Post("/", accountHandler.AddAccount)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", accountHandler.GetAccount)
				r.Get("/allocation", accountHandler.GetAllocation)
				r.Get("/designation-form.pdf", accountHandler.DesignationForm)
				r.Post("/push", accountHandler.PushUpdate)
				r.Post("/sync", accountHandler.SyncAccount)

				r.Post("/beneficiaries", beneficiaryHandler.AddBeneficiary)
				r.Put("/beneficiaries/{beneficiaryID}", beneficiaryHandler.EditBeneficiary)
				r.Delete("/beneficiaries/{beneficiaryID}", beneficiaryHandler.DeleteBeneficiary)

				r.Post("/submission", submissionHandler.Begin)
				r.Post("/submission/confirm", submissionHandler.Confirm)
				r.Delete("/submission", submissionHandler.Cancel)
			})
		})

		r.Get("/audit-log", auditHandler.ListEntries)
		r.Get("/institutions", institutionHandler.ListInstitutions)
		r.Get("/institutions/{id}", institutionHandler.GetInstitution)

		// Static fixture, not backed by the ledger.
		r.Get("/account-summaries", AccountSummaries)
	})

	r.Get("/ws/audit", feed.HandleWS)

	return r
}
