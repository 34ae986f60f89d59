package match

import (
	"strings"

	"github.com/fridgefit/fridgefit/pkg/pantry"
)

// CoverageThreshold is the minimum share of overlapping tokens, measured
// against the shorter phrase, for a pantry item to count as a recipe
// ingredient. The min-length denominator is deliberately permissive: a
// strong overlap between a long recipe phrase and a short pantry entry is
// enough ("bell pepper" on hand covers "red bell pepper").
const CoverageThreshold = 0.6

// Tokenize splits a phrase into its set of whitespace separated words.
func Tokenize(phrase string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(phrase) {
		tokens[word] = struct{}{}
	}
	return tokens
}

// Matches reports whether any pantry item covers the ingredient. An
// ingredient with no tokens never matches.
func Matches(ingredient string, items pantry.Set) bool {
	ingredientTokens := Tokenize(ingredient)
	if len(ingredientTokens) == 0 {
		return false
	}
	for item := range items {
		itemTokens := Tokenize(item)
		if len(itemTokens) == 0 {
			continue
		}
		overlap := 0
		for token := range ingredientTokens {
			if _, ok := itemTokens[token]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		shorter := len(ingredientTokens)
		if len(itemTokens) < shorter {
			shorter = len(itemTokens)
		}
		if float64(overlap)/float64(shorter) >= CoverageThreshold {
			return true
		}
	}
	return false
}
