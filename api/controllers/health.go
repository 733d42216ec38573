package controllers

import (
	"net/http"

	"github.com/merchlab/storefront-modal-api/api/responses"
	"github.com/merchlab/storefront-modal-api/pkg/config"
	pkgerrors "github.com/merchlab/storefront-modal-api/pkg/errors"
	"github.com/merchlab/storefront-modal-api/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports not-ready when the product cache is configured but
// unreachable. With no cache configured the service is ready as soon as it
// accepts connections.
func HealthReady(cfg *config.Config, cache *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), nil, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "product cache unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
