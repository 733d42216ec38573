package merch

import (
	"context"
	"errors"
	"fmt"

	"github.com/merchlab/storefront-modal-api/internal/cart"
	"github.com/merchlab/storefront-modal-api/internal/catalog"
	"github.com/merchlab/storefront-modal-api/internal/promo"
	"github.com/merchlab/storefront-modal-api/pkg/logger"
	"github.com/merchlab/storefront-modal-api/pkg/metrics"
)

const redirectPath = "/cart"

// ErrSessionNotFound indicates an unknown or already-closed session token.
var ErrSessionNotFound = errors.New("modal session not found")

// ErrSessionClosed indicates the session was invalidated while a fetch was in
// flight; its result has been discarded.
var ErrSessionClosed = errors.New("modal session closed")

// ErrIncompleteSelection indicates the selection did not resolve to a variant.
// No network call is made in that case.
var ErrIncompleteSelection = errors.New("selection does not resolve to a variant")

// Service drives the modal workflow: open a session, submit a selection,
// close the session.
type Service interface {
	Open(ctx context.Context, handle string) (*SessionView, error)
	Submit(ctx context.Context, token string, selection catalog.Selection) (*Outcome, error)
	Close(token string)
}

type service struct {
	catalogClient catalog.Fetcher
	cartClient    cart.Submitter
	rule          promo.Rule
	registry      *sessionRegistry
	logg          *logger.Logger
	merchMetrics  *metrics.MerchMetrics
}

// NewService constructs the modal session service.
func NewService(catalogClient catalog.Fetcher, cartClient cart.Submitter, rule promo.Rule, logg *logger.Logger, merchMetrics *metrics.MerchMetrics) (Service, error) {
	if catalogClient == nil {
		return nil, fmt.Errorf("catalog client required")
	}
	if cartClient == nil {
		return nil, fmt.Errorf("cart client required")
	}
	return &service{
		catalogClient: catalogClient,
		cartClient:    cartClient,
		rule:          rule,
		registry:      newSessionRegistry(),
		logg:          logg,
		merchMetrics:  merchMetrics,
	}, nil
}

// Open fetches the product and builds the populated-fields payload for the
// modal. The session token is minted before the fetch so a concurrent Close
// invalidates the in-flight result.
func (s *service) Open(ctx context.Context, handle string) (*SessionView, error) {
	session := s.registry.begin(handle)

	product, err := s.catalogClient.FetchByHandle(ctx, handle)
	if err != nil {
		s.registry.remove(session.Token)
		return nil, err
	}

	if !s.registry.complete(session.Token, product) {
		return nil, ErrSessionClosed
	}

	s.merchMetrics.IncSessionOpened(handle)
	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionToken(s.logg.WithHandle(ctx, handle), session.Token), "modal session opened")
	}
	return newSessionView(session), nil
}

// Submit resolves the selection, applies the bonus rule, and performs the
// combined cart submission. A failed submit leaves the session untouched so
// the shopper can retry without re-entering choices.
func (s *service) Submit(ctx context.Context, token string, selection catalog.Selection) (*Outcome, error) {
	session, ok := s.registry.get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}

	variant, ok := catalog.Resolve(session.Product, selection)
	if !ok {
		s.merchMetrics.IncSubmission("incomplete_selection")
		return nil, ErrIncompleteSelection
	}

	// Resolution succeeded, so the completed selection exists; it carries the
	// implicit single-value options the shopper never typed.
	values, _ := catalog.CompleteSelection(session.Product, selection)

	items := []cart.LineItem{{ID: variant.ID, Quantity: 1}}

	bonusAdded := false
	if s.rule.Matches(values) {
		bonusVariant, err := s.fetchBonusVariant(ctx)
		if err != nil {
			// The bonus is a required promotional commitment: no partial
			// fulfillment, the whole submission aborts before any cart call.
			s.merchMetrics.IncSubmission("bonus_fetch_failed")
			return nil, fmt.Errorf("bonus product unavailable: %w", err)
		}
		items = append(items, cart.LineItem{ID: bonusVariant.ID, Quantity: 1})
		bonusAdded = true
	}

	if !s.registry.current(token) {
		return nil, ErrSessionClosed
	}

	if err := s.cartClient.AddItems(ctx, items); err != nil {
		s.merchMetrics.IncSubmission("cart_rejected")
		return nil, err
	}

	s.merchMetrics.IncSubmission("success")
	if bonusAdded {
		s.merchMetrics.IncBonusApplied()
	}
	if s.logg != nil {
		lctx := s.logg.WithFields(ctx, map[string]any{
			"session_token": token,
			"variant_id":    variant.ID,
			"line_items":    len(items),
			"bonus_added":   bonusAdded,
		})
		s.logg.Info(lctx, "cart submission accepted")
	}

	return &Outcome{
		RedirectTo: redirectPath,
		LineItems:  len(items),
		BonusAdded: bonusAdded,
	}, nil
}

// Close invalidates the session; any in-flight result for its token is dropped.
func (s *service) Close(token string) {
	s.registry.remove(token)
}

// fetchBonusVariant loads the configured bonus product and takes its first
// variant in catalog order; no selection logic applies to the bonus product.
func (s *service) fetchBonusVariant(ctx context.Context) (catalog.Variant, error) {
	product, err := s.catalogClient.FetchByHandle(ctx, s.rule.BonusHandle)
	if err != nil {
		return catalog.Variant{}, err
	}
	if len(product.Variants) == 0 {
		return catalog.Variant{}, fmt.Errorf("bonus product %q has no variants: %w", s.rule.BonusHandle, catalog.ErrNotFound)
	}
	return product.Variants[0], nil
}
