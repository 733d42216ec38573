package merch

import (
	"github.com/shopspring/decimal"

	"github.com/merchlab/storefront-modal-api/internal/catalog"
)

// SessionView is the populated-fields payload the presentation layer renders
// into the modal. The service never touches the DOM.
type SessionView struct {
	Token        string       `json:"token"`
	Handle       string       `json:"handle"`
	Title        string       `json:"title"`
	Description  string       `json:"description_html"`
	ImageURL     string       `json:"image_url"`
	PriceCents   int64        `json:"price_cents"`
	PriceDisplay string       `json:"price_display"`
	Options      []OptionView `json:"options"`
}

// OptionView is one selectable axis. Single-valued axes are marked implicit so
// the page skips rendering a selector for them.
type OptionView struct {
	Position int      `json:"position"`
	Name     string   `json:"name"`
	Values   []string `json:"values"`
	Implicit bool     `json:"implicit"`
}

// Outcome tells the caller where to navigate after a successful submission.
type Outcome struct {
	RedirectTo string `json:"redirect_to"`
	LineItems  int    `json:"line_items"`
	BonusAdded bool   `json:"bonus_added"`
}

func newSessionView(session *Session) *SessionView {
	product := session.Product
	view := &SessionView{
		Token:       session.Token,
		Handle:      product.Handle,
		Title:       product.Title,
		Description: product.BodyHTML,
		ImageURL:    product.FeaturedImage,
	}

	if len(product.Variants) > 0 {
		view.PriceCents = product.Variants[0].PriceCents
		view.PriceDisplay = FormatPrice(product.Variants[0].PriceCents)
	}

	for i, option := range product.Options {
		if i >= catalog.MaxOptionPositions {
			break
		}
		view.Options = append(view.Options, OptionView{
			Position: i + 1,
			Name:     option.Name,
			Values:   option.Values,
			Implicit: len(option.Values) <= 1,
		})
	}
	return view
}

// FormatPrice renders minor currency units as a display string ("2500" -> "25.00").
func FormatPrice(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
