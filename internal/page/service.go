package page

import (
	"context"
	"fmt"

	"github.com/merchlab/storefront-modal-api/internal/catalog"
	"github.com/merchlab/storefront-modal-api/internal/merch"
	"github.com/merchlab/storefront-modal-api/pkg/config"
	"github.com/merchlab/storefront-modal-api/pkg/logger"
)

// Payload is the merchandising page content: banner copy plus the featured
// product grid. Rendering belongs to the presentation layer.
type Payload struct {
	Banner   Banner        `json:"banner"`
	Products []ProductCard `json:"products"`
}

type Banner struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

// ProductCard is one tile in the grid; clicking it opens the modal by handle.
type ProductCard struct {
	Handle       string `json:"handle"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	PriceCents   int64  `json:"price_cents"`
	PriceDisplay string `json:"price_display"`
}

// Service assembles the merchandising page payload.
type Service interface {
	Page(ctx context.Context) (*Payload, error)
}

type service struct {
	catalogClient catalog.Fetcher
	cfg           config.PageConfig
	logg          *logger.Logger
}

// NewService constructs the page service.
func NewService(catalogClient catalog.Fetcher, cfg config.PageConfig, logg *logger.Logger) (Service, error) {
	if catalogClient == nil {
		return nil, fmt.Errorf("catalog client required")
	}
	return &service{catalogClient: catalogClient, cfg: cfg, logg: logg}, nil
}

// Page fetches a card per configured handle. A handle that fails to resolve is
// skipped with a warning so one bad entry cannot blank the whole page.
func (s *service) Page(ctx context.Context) (*Payload, error) {
	payload := &Payload{
		Banner: Banner{
			Title:    s.cfg.BannerTitle,
			Subtitle: s.cfg.BannerSubtitle,
		},
		Products: make([]ProductCard, 0, len(s.cfg.FeaturedHandles)),
	}

	for _, handle := range s.cfg.FeaturedHandles {
		product, err := s.catalogClient.FetchByHandle(ctx, handle)
		if err != nil {
			if s.logg != nil {
				lctx := s.logg.WithHandle(ctx, handle)
				lctx = s.logg.WithField(lctx, "fetch_error", err.Error())
				s.logg.Warn(lctx, "skipping featured product")
			}
			continue
		}

		card := ProductCard{
			Handle:   product.Handle,
			Title:    product.Title,
			ImageURL: product.FeaturedImage,
		}
		if len(product.Variants) > 0 {
			card.PriceCents = product.Variants[0].PriceCents
			card.PriceDisplay = merch.FormatPrice(product.Variants[0].PriceCents)
		}
		payload.Products = append(payload.Products, card)
	}

	return payload, nil
}
