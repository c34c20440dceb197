package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"volunteerhub/internal/http/handlers"
	"volunteerhub/internal/middleware"
)

// Deps carries the cross-cutting collaborators the router wires in front of
// the handlers. CountryLookup and Metrics are optional.
type Deps struct {
	Logger        zerolog.Logger
	DefaultLocale string
	CountryLookup middleware.CountryLookup
	Metrics       *middleware.Metrics
}

func NewRouter(app *handlers.App, deps Deps) stdhttp.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.I18N(deps.DefaultLocale, deps.CountryLookup),
		middleware.Logger(deps.Logger),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument)
		r.Method(stdhttp.MethodGet, "/metrics", deps.Metrics.Expose())
	}

	r.Get("/healthz", app.Health)

	r.Route("/volunteers", func(r chi.Router) {
		r.Post("/", app.VolunteersCreate)
		r.Get("/", app.VolunteersList)
		r.Get("/{id}", app.VolunteersGet)
	})

	r.Route("/events", func(r chi.Router) {
		r.Post("/", app.EventsCreate)
		r.Get("/", app.EventsList)
	})

	r.Route("/registrations", func(r chi.Router) {
		r.Post("/", app.RegistrationsCreate)
		r.Get("/", app.RegistrationsList)
	})

	r.Route("/feedbacks", func(r chi.Router) {
		r.Post("/", app.FeedbacksCreate)
		r.Get("/", app.FeedbacksList)
	})

	return r
}
