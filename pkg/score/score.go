package score

import (
	"errors"
	"math"
	"sort"

	"github.com/fridgefit/fridgefit/pkg/match"
	"github.com/fridgefit/fridgefit/pkg/models"
	"github.com/fridgefit/fridgefit/pkg/pantry"
)

// ErrNoMatches indicates that no recipe in the collection passed the
// balance gate.
var ErrNoMatches = errors.New("no balanced recipes found in the collection")

// CalFactors maps a macro to the calories contributed by one gram of it.
var CalFactors = map[string]float64{
	"carbs":   4,
	"protein": 4,
	"fat":     9,
}

// TargetRatios is the calorie split a balanced recipe should hit.
var TargetRatios = map[string]float64{
	"carbs":   0.4,
	"protein": 0.3,
	"fat":     0.3,
}

// RatioTolerance is how far a macro ratio may drift from its target
// before the recipe fails the balance gate.
const RatioTolerance = 0.1

const (
	coreWeight       = 0.75
	supportingWeight = 0.25

	coverageWeight = 0.8
	balanceWeight  = 0.2
)

// MacroRatios returns the share of calories each tracked macro contributes.
// When total calories are zero or negative every ratio is zero.
func MacroRatios(r models.Recipe) map[string]float64 {
	var calories float64
	for macro, factor := range CalFactors {
		calories += r.Macros[macro] * factor
	}

	ratios := make(map[string]float64, len(TargetRatios))
	for macro := range TargetRatios {
		if calories <= 0 {
			ratios[macro] = 0
			continue
		}
		ratios[macro] = r.Macros[macro] * CalFactors[macro] / calories
	}
	return ratios
}

// BalanceScore measures how close the recipe sits to the target split.
// Exactly on target scores 1.0; off by the full tolerance on every macro
// scores 0.0. The result is clamped to [0,1].
func BalanceScore(r models.Recipe) float64 {
	ratios := MacroRatios(r)
	var total float64
	for macro, target := range TargetRatios {
		total += math.Abs(ratios[macro]-target) / RatioTolerance
	}
	return clamp(1 - total/float64(len(TargetRatios)))
}

// IsBalanced is the hard gate: every macro ratio must sit within the
// tolerance window of its target.
func IsBalanced(r models.Recipe) bool {
	ratios := MacroRatios(r)
	for macro, target := range TargetRatios {
		if math.Abs(ratios[macro]-target) > RatioTolerance {
			return false
		}
	}
	return true
}

// IngredientScore weights core ingredient coverage higher than supporting
// coverage so essential items matter more. A recipe with no core
// ingredients scores zero regardless of supporting matches.
func IngredientScore(r models.Recipe, items pantry.Set) float64 {
	if len(r.CoreIngredients) == 0 {
		return 0
	}
	coreRatio := matchedRatio(r.CoreIngredients, items)

	var supportingRatio float64
	if len(r.SupportingIngredients) > 0 {
		supportingRatio = matchedRatio(r.SupportingIngredients, items)
	}
	return coreRatio*coreWeight + supportingRatio*supportingWeight
}

// Missing returns the core and supporting ingredients the pantry does not
// cover, preserving the order the recipe declares them in.
func Missing(r models.Recipe, items pantry.Set) (core []string, supporting []string) {
	for _, ingredient := range r.CoreIngredients {
		if !match.Matches(ingredient, items) {
			core = append(core, ingredient)
		}
	}
	for _, ingredient := range r.SupportingIngredients {
		if !match.Matches(ingredient, items) {
			supporting = append(supporting, ingredient)
		}
	}
	return core, supporting
}

// Rank drops unbalanced recipes, blends ingredient coverage with the
// balance score, and sorts the survivors best first. Equal scores keep
// their collection order. An empty result is a valid outcome.
func Rank(recipes []models.Recipe, items pantry.Set) []models.ScoredMatch {
	matches := make([]models.ScoredMatch, 0, len(recipes))
	for _, r := range recipes {
		if !IsBalanced(r) {
			continue
		}
		combined := IngredientScore(r, items)*coverageWeight + BalanceScore(r)*balanceWeight
		matches = append(matches, models.ScoredMatch{Score: combined, Recipe: r})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func matchedRatio(ingredients []string, items pantry.Set) float64 {
	hits := 0
	for _, ingredient := range ingredients {
		if match.Matches(ingredient, items) {
			hits++
		}
	}
	return float64(hits) / float64(len(ingredients))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
