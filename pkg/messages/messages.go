package messages

import (
	"fmt"
	"strings"

	"github.com/fridgefit/fridgefit/pkg/models"
	"github.com/fridgefit/fridgefit/pkg/pantry"
	"github.com/fridgefit/fridgefit/pkg/score"
)

// macroOrder fixes the display order of the macros worth showing.
var macroOrder = []string{"carbs", "protein", "fat", "fiber"}

// FormatMacros renders the known macros as whole grams in a fixed order.
// Macros the recipe does not declare are skipped, unrecognized ones are
// never shown.
func FormatMacros(macros map[string]float64) string {
	parts := make([]string, 0, len(macroOrder))
	for _, macro := range macroOrder {
		if grams, ok := macros[macro]; ok {
			parts = append(parts, fmt.Sprintf("%s: %.0fg", macro, grams))
		}
	}
	return strings.Join(parts, ", ")
}

// Describe renders one suggested recipe as a human readable block:
// name and servings, tags, macro summary, numbered instructions, then the
// optional missing-ingredient breakdown and notes.
func Describe(recipe models.Recipe, items pantry.Set, showMissing bool) string {
	tags := strings.Join(recipe.Tags, ", ")
	if tags == "" {
		tags = "n/a"
	}

	lines := []string{
		fmt.Sprintf("%s · serves %d", recipe.Name, recipe.Servings),
		fmt.Sprintf("Tags: %s", tags),
		fmt.Sprintf("Macros: %s", FormatMacros(recipe.Macros)),
		"Instructions:",
	}
	for i, step := range recipe.Instructions {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, step))
	}

	if showMissing {
		missingCore, missingSupport := score.Missing(recipe, items)
		if len(missingCore) > 0 || len(missingSupport) > 0 {
			lines = append(lines, "Missing ingredients:")
			if len(missingCore) > 0 {
				lines = append(lines, fmt.Sprintf("  Core: %s", strings.Join(missingCore, ", ")))
			}
			if len(missingSupport) > 0 {
				lines = append(lines, fmt.Sprintf("  Supporting: %s", strings.Join(missingSupport, ", ")))
			}
		} else {
			lines = append(lines, "You have everything you need!")
		}
	}

	if recipe.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", recipe.Notes))
	}
	return strings.Join(lines, "\n")
}

// DescribeRanked renders the top suggestions, each preceded by its rank
// and score to two decimals. The limit has a floor of one and is capped at
// the number of matches.
func DescribeRanked(matches []models.ScoredMatch, items pantry.Set, limit int, showMissing bool) string {
	if limit < 1 {
		limit = 1
	}
	if limit > len(matches) {
		limit = len(matches)
	}

	var b strings.Builder
	for i, m := range matches[:limit] {
		fmt.Fprintf(&b, "\n[%d] Score %.2f\n", i+1, m.Score)
		b.WriteString(Describe(m.Recipe, items, showMissing))
		b.WriteString("\n")
	}
	return b.String()
}
