package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/merchlab/storefront-modal-api/api/controllers"
	merchcontrollers "github.com/merchlab/storefront-modal-api/api/controllers/merch"
	"github.com/merchlab/storefront-modal-api/api/middleware"
	merchsvc "github.com/merchlab/storefront-modal-api/internal/merch"
	pagesvc "github.com/merchlab/storefront-modal-api/internal/page"
	"github.com/merchlab/storefront-modal-api/pkg/config"
	"github.com/merchlab/storefront-modal-api/pkg/logger"
	"github.com/merchlab/storefront-modal-api/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	cache *redis.Client,
	merchService merchsvc.Service,
	pageService pagesvc.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, cache))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/merch", func(r chi.Router) {
		r.Get("/page", merchcontrollers.Page(pageService, logg))
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", merchcontrollers.SessionOpen(merchService, logg))
			r.Post("/{token}/submit", merchcontrollers.SessionSubmit(merchService, logg))
			r.Delete("/{token}", merchcontrollers.SessionClose(merchService, logg))
		})
	})

	return r
}
