package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fridgefit/fridgefit/pkg/pantry"
)

func TestMatchesPartialPhrase(t *testing.T) {
	items := pantry.Parse([]string{"bell pepper"})
	// overlap 2 against the shorter phrase of 2 tokens: full coverage
	assert.True(t, Matches("red bell pepper", items))
}

func TestMatchesRequiresExactTokenForSingleWords(t *testing.T) {
	items := pantry.Parse([]string{"eggplant"})
	assert.False(t, Matches("egg", items))

	items = pantry.Parse([]string{"egg"})
	assert.True(t, Matches("egg", items))
}

func TestMatchesShortPantryItemCoversLongIngredient(t *testing.T) {
	items := pantry.Parse([]string{"chicken"})
	// min(|A|,|B|) denominator makes a single shared token enough here
	assert.True(t, Matches("chicken breast", items))
}

func TestMatchesThresholdBoundary(t *testing.T) {
	// overlap 2 of min 3 = 0.667 >= 0.6
	assert.True(t, Matches("sweet paprika sauce", pantry.Parse([]string{"smoked sweet paprika powder"})))
	// overlap 1 of min 2 = 0.5 < 0.6
	assert.False(t, Matches("chili flakes", pantry.Parse([]string{"spicy chili oil"})))
}

func TestMatchesEmptyIngredientFailsClosed(t *testing.T) {
	items := pantry.Parse([]string{"egg"})
	assert.False(t, Matches("", items))
}

func TestMatchesEmptyPantry(t *testing.T) {
	assert.False(t, Matches("egg", make(pantry.Set)))
}
