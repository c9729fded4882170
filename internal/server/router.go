package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ritikas/giftpool/internal/middleware"
)

// NewRouter builds the full HTTP handler: API routes, the event stream,
// operational endpoints, and the static SPA fallback.
func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.CORS,
		middleware.Metrics,
		middleware.Logging,
	)

	r.Get("/healthz", app.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/session", app.SessionStart)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(app.SessionMgr))

			r.Get("/coworkers", app.CoworkersList)
			r.Post("/coworkers/register", app.CoworkerRegister)
			r.Get("/upcoming", app.Upcoming)
			r.Get("/contributions", app.ContributionsList)
			r.Post("/contributions/{recipientID}/{year}/{contributorID}/advance", app.ContributionAdvance)
			r.Get("/payment-info", app.PaymentInfoGet)
			r.Get("/events", app.Events)

			// Organizer-only mutations.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOrganizer(app.Store))

				r.Post("/coworkers", app.CoworkerCreate)
				r.Put("/coworkers/{id}", app.CoworkerUpdate)
				r.Delete("/coworkers/{id}", app.CoworkerDelete)
				r.Put("/payment-info", app.PaymentInfoSet)
			})
		})
	})

	r.NotFound(app.Static)

	return r
}
