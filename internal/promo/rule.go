package promo

import "strings"

// Rule is the single promotional policy: when every match term appears
// (case-insensitively, as a substring) among the selected option values, the
// bonus product is appended to the cart.
//
// Containment rather than equality is intentional: values like "Jet Black" or
// "Medium/M" must still trigger. Flagged for product-owner confirmation; flip
// to equality here if that ever lands.
type Rule struct {
	BonusHandle string
	terms       []string
}

// NewRule builds the rule from configuration. Blank terms are dropped; a rule
// with no terms never matches.
func NewRule(bonusHandle string, terms []string) Rule {
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		if t := strings.ToLower(strings.TrimSpace(term)); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return Rule{BonusHandle: strings.TrimSpace(bonusHandle), terms: cleaned}
}

// Matches reports whether the rule applies to the given option values. Each
// term may be satisfied by a different value; positions and names are ignored.
func (r Rule) Matches(values []string) bool {
	if len(r.terms) == 0 {
		return false
	}
	for _, term := range r.terms {
		if !containsTerm(values, term) {
			return false
		}
	}
	return true
}

func containsTerm(values []string, term string) bool {
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}
	return false
}
