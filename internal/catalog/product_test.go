package catalog

import (
	"testing"
)

const flatDocument = `{
	"handle": "crew-shirt",
	"title": "Crew Shirt",
	"body_html": "<p>Heavyweight cotton.</p>",
	"featured_image": "https://cdn.example.com/crew-shirt.jpg",
	"options": [{"name": "Color", "values": ["Black", "Navy"]}],
	"variants": [{"id": 101, "price": 2500, "option1": "Black"}]
}`

const nestedDocument = `{"product": ` + flatDocument + `}`

func TestParseProductFlat(t *testing.T) {
	product, err := ParseProduct("crew-shirt", []byte(flatDocument))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if product.Title != "Crew Shirt" {
		t.Fatalf("unexpected title %q", product.Title)
	}
	if len(product.Variants) != 1 || product.Variants[0].ID != 101 {
		t.Fatalf("unexpected variants %+v", product.Variants)
	}
	if product.Variants[0].PriceCents != 2500 {
		t.Fatalf("unexpected price %d", product.Variants[0].PriceCents)
	}
}

func TestParseProductNested(t *testing.T) {
	product, err := ParseProduct("crew-shirt", []byte(nestedDocument))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if product.Handle != "crew-shirt" {
		t.Fatalf("unexpected handle %q", product.Handle)
	}
	if len(product.Options) != 1 || product.Options[0].Name != "Color" {
		t.Fatalf("unexpected options %+v", product.Options)
	}
}

func TestParseProductFillsMissingHandle(t *testing.T) {
	doc := `{"title": "Crew Shirt", "variants": [{"id": 1}]}`
	product, err := ParseProduct("crew-shirt", []byte(doc))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if product.Handle != "crew-shirt" {
		t.Fatalf("expected requested handle to backfill, got %q", product.Handle)
	}
}

func TestParseProductRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"invalid json": `{"title": `,
		"no title":     `{"variants": [{"id": 1}]}`,
		"no variants":  `{"title": "Crew Shirt", "variants": []}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseProduct("crew-shirt", []byte(doc)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestVariantOptionValue(t *testing.T) {
	variant := Variant{Option1: "Black", Option2: "Medium"}
	if got := variant.OptionValue(1); got != "Black" {
		t.Fatalf("unexpected value %q", got)
	}
	if got := variant.OptionValue(2); got != "Medium" {
		t.Fatalf("unexpected value %q", got)
	}
	if variant.OptionValue(3) != "" || variant.OptionValue(4) != "" {
		t.Fatal("unset and out-of-range positions should be empty")
	}
}
