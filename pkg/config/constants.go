package config

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	// DefaultBonusHandle is the fallback promotional product when none is configured.
	DefaultBonusHandle = "canvas-tote-bag"
)

const (
	EnvAppEnv          = "STOREFRONT_APP_ENV"
	EnvPort            = "STOREFRONT_APP_PORT"
	EnvCatalogBaseURL  = "STOREFRONT_CATALOG_BASE_URL"
	EnvCartBaseURL     = "STOREFRONT_CART_BASE_URL"
	EnvRequestTimeout  = "STOREFRONT_REQUEST_TIMEOUT"
	EnvBonusHandle     = "STOREFRONT_PROMO_BONUS_HANDLE"
	EnvPromoMatchTerms = "STOREFRONT_PROMO_MATCH_TERMS"
	EnvFeaturedHandles = "STOREFRONT_PAGE_FEATURED_HANDLES"
	EnvRedisURL        = "STOREFRONT_REDIS_URL"
)
