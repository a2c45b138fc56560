package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"donatecart/internal/http/handlers"
	"donatecart/internal/infra"
	"donatecart/internal/middleware"
)

// NewRouter assembles the sync server's routes and middleware stack.
func NewRouter(app *handlers.App, log infra.Logger, rateLimitPerMin int) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(log),
		middleware.RateLimit(rateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/keys", func(r chi.Router) {
		r.Get("/{key}", app.KeyGet)
		r.Put("/{key}", app.KeyPut)
		r.Delete("/{key}", app.KeyDelete)
	})

	r.Get("/v1/changes", app.Changes)

	return r
}
