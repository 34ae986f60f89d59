package recipes

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fridgefit/fridgefit/pkg/models"
	"github.com/fridgefit/fridgefit/pkg/pantry"
)

// record mirrors one entry of the JSON collection. Every field except the
// name is optional; unknown fields are ignored by the decoder.
type record struct {
	Name                  string             `json:"name"`
	Servings              int                `json:"servings"`
	CoreIngredients       []string           `json:"core_ingredients"`
	SupportingIngredients []string           `json:"supporting_ingredients"`
	Instructions          []string           `json:"instructions"`
	Macros                map[string]float64 `json:"macros"`
	Tags                  []string           `json:"tags"`
	Notes                 string             `json:"notes"`
}

// Load reads the recipe collection from a JSON file. Any malformed entry
// fails the whole load; there is no partial result.
func Load(path string) ([]models.Recipe, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe file: %w", err)
	}
	defer file.Close()

	recipes, err := LoadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes from %s: %w", path, err)
	}
	return recipes, nil
}

// LoadFrom decodes a JSON array of recipes. A missing or blank name is a
// fatal load error; every other field falls back to its default (servings
// 1, lists empty, notes blank). Ingredient lists are normalized on the way
// in and entries that normalize to nothing are dropped.
func LoadFrom(r io.Reader) ([]models.Recipe, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode recipe collection: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("recipe %d: missing required field %q", i, "name")
		}

		servings := rec.Servings
		if servings < 1 {
			servings = 1
		}
		macros := rec.Macros
		if macros == nil {
			macros = map[string]float64{}
		}

		recipes = append(recipes, models.Recipe{
			Name:                  rec.Name,
			Servings:              servings,
			CoreIngredients:       normalizeList(rec.CoreIngredients),
			SupportingIngredients: normalizeList(rec.SupportingIngredients),
			Instructions:          rec.Instructions,
			Macros:                macros,
			Tags:                  rec.Tags,
			Notes:                 rec.Notes,
		})
	}
	return recipes, nil
}

func normalizeList(items []string) []string {
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		if n := pantry.Normalize(item); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}
