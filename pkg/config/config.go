package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	Storefront StorefrontConfig
	Promo      PromoConfig
	Page       PageConfig
	Redis      RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storefront.normalize(); err != nil {
		return nil, err
	}
	cfg.Promo.applyDefaults()
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorefrontConfig points at the commerce platform that owns catalog reads and cart writes.
type StorefrontConfig struct {
	CatalogBaseURL string        `envconfig:"STOREFRONT_CATALOG_BASE_URL" required:"true"`
	CartBaseURL    string        `envconfig:"STOREFRONT_CART_BASE_URL"`
	RequestTimeout time.Duration `envconfig:"STOREFRONT_REQUEST_TIMEOUT" default:"10s"`
}

func (s *StorefrontConfig) normalize() error {
	base, err := normalizeBaseURL(s.CatalogBaseURL)
	if err != nil {
		return fmt.Errorf("catalog base url: %w", err)
	}
	s.CatalogBaseURL = base

	// Cart writes default to the same host as catalog reads.
	if s.CartBaseURL == "" {
		s.CartBaseURL = s.CatalogBaseURL
		return nil
	}
	cart, err := normalizeBaseURL(s.CartBaseURL)
	if err != nil {
		return fmt.Errorf("cart base url: %w", err)
	}
	s.CartBaseURL = cart
	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "/")
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("url %q must be http or https", raw)
	}
	return trimmed, nil
}

// PromoConfig describes the single bonus rule applied at submit time.
type PromoConfig struct {
	BonusHandle string   `envconfig:"STOREFRONT_PROMO_BONUS_HANDLE"`
	MatchTerms  []string `envconfig:"STOREFRONT_PROMO_MATCH_TERMS" default:"black,medium"`
}

func (p *PromoConfig) applyDefaults() {
	if strings.TrimSpace(p.BonusHandle) == "" {
		p.BonusHandle = DefaultBonusHandle
	}
	terms := make([]string, 0, len(p.MatchTerms))
	for _, term := range p.MatchTerms {
		if t := strings.TrimSpace(term); t != "" {
			terms = append(terms, t)
		}
	}
	p.MatchTerms = terms
}

// PageConfig drives the banner copy and the featured product grid.
type PageConfig struct {
	BannerTitle     string   `envconfig:"STOREFRONT_PAGE_BANNER_TITLE" default:"New season drop"`
	BannerSubtitle  string   `envconfig:"STOREFRONT_PAGE_BANNER_SUBTITLE"`
	FeaturedHandles []string `envconfig:"STOREFRONT_PAGE_FEATURED_HANDLES"`
}

type RedisConfig struct {
	URL             string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address         string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password        string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB              int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize        int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns    int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout     time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout     time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
	ProductCacheTTL time.Duration `envconfig:"STOREFRONT_REDIS_PRODUCT_CACHE_TTL" default:"5m"`
}

// Enabled reports whether a cache backend was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}
