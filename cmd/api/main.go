package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/merchlab/storefront-modal-api/api/routes"
	"github.com/merchlab/storefront-modal-api/internal/cart"
	"github.com/merchlab/storefront-modal-api/internal/catalog"
	"github.com/merchlab/storefront-modal-api/internal/merch"
	"github.com/merchlab/storefront-modal-api/internal/page"
	"github.com/merchlab/storefront-modal-api/internal/promo"
	"github.com/merchlab/storefront-modal-api/pkg/config"
	"github.com/merchlab/storefront-modal-api/pkg/logger"
	"github.com/merchlab/storefront-modal-api/pkg/metrics"
	"github.com/merchlab/storefront-modal-api/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var cacheClient *redis.Client
	if cfg.Redis.Enabled() {
		cacheClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := cacheClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	registry := prometheus.NewRegistry()
	merchMetrics := metrics.NewMerchMetrics(registry)

	var catalogOpts []catalog.ClientOption
	if cacheClient != nil {
		catalogOpts = append(catalogOpts, catalog.WithCache(cacheClient, cfg.Redis.ProductCacheTTL, redis.IsMiss))
	}

	catalogClient, err := catalog.NewClient(cfg.Storefront.CatalogBaseURL, cfg.Storefront.RequestTimeout, logg, catalogOpts...)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	cartClient, err := cart.NewClient(cfg.Storefront.CartBaseURL, cfg.Storefront.RequestTimeout)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart client", err)
		os.Exit(1)
	}

	rule := promo.NewRule(cfg.Promo.BonusHandle, cfg.Promo.MatchTerms)

	merchService, err := merch.NewService(catalogClient, cartClient, rule, logg, merchMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create merch service", err)
		os.Exit(1)
	}

	pageService, err := page.NewService(catalogClient, cfg.Page, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create page service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, cacheClient, merchService, pageService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
