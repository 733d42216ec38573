package catalog

import "strings"

// Selection maps a 1-indexed option position to the chosen value. A selection
// is complete once every multi-valued option has a non-empty choice.
type Selection map[int]string

// keySeparator joins positional values into a variant lookup key. The US
// control character cannot occur in catalog option values, unlike punctuation
// ("Medium/M" is a real value).
const keySeparator = "\x1f"

// Resolve identifies the variant matching the selection, or reports no match
// when the selection is incomplete or no variant carries that combination.
//
// Options with a single value (or none) are never presented as a choice, so an
// empty selection at that position implicitly uses the sole value. If upstream
// data violates the distinct-tuple invariant, the first variant in catalog
// order wins; the index keeps the first write per key.
func Resolve(product *Product, selection Selection) (Variant, bool) {
	if product == nil || len(product.Variants) == 0 {
		return Variant{}, false
	}

	positions := len(product.Options)
	if positions > MaxOptionPositions {
		positions = MaxOptionPositions
	}
	if positions == 0 {
		// Products without declared options still have a default variant.
		return product.Variants[0], true
	}

	key, ok := selectionKey(product, selection, positions)
	if !ok {
		return Variant{}, false
	}

	index := make(map[string]Variant, len(product.Variants))
	for _, variant := range product.Variants {
		k := variantKey(variant, positions)
		if _, exists := index[k]; !exists {
			index[k] = variant
		}
	}

	variant, ok := index[key]
	return variant, ok
}

func selectionKey(product *Product, selection Selection, positions int) (string, bool) {
	parts := make([]string, positions)
	for pos := 1; pos <= positions; pos++ {
		value := strings.TrimSpace(selection[pos])
		if value == "" {
			option := product.Options[pos-1]
			if len(option.Values) != 1 {
				return "", false
			}
			value = option.Values[0]
		}
		parts[pos-1] = strings.ToLower(value)
	}
	return strings.Join(parts, keySeparator), true
}

func variantKey(variant Variant, positions int) string {
	parts := make([]string, positions)
	for pos := 1; pos <= positions; pos++ {
		parts[pos-1] = strings.ToLower(variant.OptionValue(pos))
	}
	return strings.Join(parts, keySeparator)
}

// CompleteSelection returns the selection's effective values for every defined
// option position, including implicit single-value options. The second return
// is false when the selection is incomplete.
func CompleteSelection(product *Product, selection Selection) ([]string, bool) {
	if product == nil {
		return nil, false
	}
	positions := len(product.Options)
	if positions > MaxOptionPositions {
		positions = MaxOptionPositions
	}
	values := make([]string, 0, positions)
	for pos := 1; pos <= positions; pos++ {
		value := strings.TrimSpace(selection[pos])
		if value == "" {
			option := product.Options[pos-1]
			if len(option.Values) != 1 {
				return nil, false
			}
			value = option.Values[0]
		}
		values = append(values, value)
	}
	return values, true
}
