package models

// Recipe represents a single entry in the recipe collection. Ingredient
// lists are normalized at load time and treated as read-only afterwards.
type Recipe struct {
	Name                  string
	Servings              int
	CoreIngredients       []string
	SupportingIngredients []string
	Instructions          []string
	Macros                map[string]float64
	Tags                  []string
	Notes                 string
}

// ScoredMatch pairs a recipe with its rank score for a single pantry
// query. Scores live in [0,1] and are discarded after rendering.
type ScoredMatch struct {
	Score  float64
	Recipe Recipe
}
