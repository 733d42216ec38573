package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MaxOptionPositions is the largest number of option axes the catalog exposes per product.
const MaxOptionPositions = 3

// Product is the normalized catalog representation used for one modal session.
type Product struct {
	Handle        string    `json:"handle"`
	Title         string    `json:"title"`
	BodyHTML      string    `json:"body_html"`
	FeaturedImage string    `json:"featured_image"`
	Options       []Option  `json:"options"`
	Variants      []Variant `json:"variants"`
}

// Option is a named axis of choice; its position in Product.Options is the
// 1-indexed join key to variant values.
type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Variant is one purchasable combination of option values.
type Variant struct {
	ID         int64  `json:"id"`
	PriceCents int64  `json:"price"`
	Option1    string `json:"option1"`
	Option2    string `json:"option2"`
	Option3    string `json:"option3"`
}

// OptionValue returns the variant's value at the given 1-indexed position.
func (v Variant) OptionValue(position int) string {
	switch position {
	case 1:
		return v.Option1
	case 2:
		return v.Option2
	case 3:
		return v.Option3
	default:
		return ""
	}
}

// productDocument tolerates the two response shapes the catalog endpoint is
// known to return: the flat document and the one nested under "product".
type productDocument struct {
	Product *productFields `json:"product"`
	productFields
}

type productFields struct {
	Handle        string    `json:"handle"`
	Title         string    `json:"title"`
	BodyHTML      string    `json:"body_html"`
	FeaturedImage string    `json:"featured_image"`
	Options       []Option  `json:"options"`
	Variants      []Variant `json:"variants"`
}

// ParseProduct normalizes a raw catalog response into a Product. Documents
// missing a title or variants are rejected; the resolver cannot operate on them.
func ParseProduct(handle string, raw []byte) (*Product, error) {
	var doc productDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("malformed catalog document for %q: %w", handle, err)
	}

	fields := doc.productFields
	if doc.Product != nil {
		fields = *doc.Product
	}

	if strings.TrimSpace(fields.Title) == "" {
		return nil, fmt.Errorf("catalog document for %q has no title", handle)
	}
	if len(fields.Variants) == 0 {
		return nil, fmt.Errorf("catalog document for %q has no variants", handle)
	}

	if fields.Handle == "" {
		fields.Handle = handle
	}

	return &Product{
		Handle:        fields.Handle,
		Title:         fields.Title,
		BodyHTML:      fields.BodyHTML,
		FeaturedImage: fields.FeaturedImage,
		Options:       fields.Options,
		Variants:      fields.Variants,
	}, nil
}
