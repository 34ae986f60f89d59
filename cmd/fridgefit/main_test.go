package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgefit/fridgefit/pkg/config"
	"github.com/fridgefit/fridgefit/pkg/pantry"
	"github.com/fridgefit/fridgefit/pkg/score"
)

const balancedCollection = `[
	{
		"name": "Test Omelette",
		"servings": 1,
		"core_ingredients": ["egg", "tomato"],
		"supporting_ingredients": ["cheese", "onion"],
		"instructions": ["Whisk.", "Cook."],
		"macros": {"carbs": 24, "protein": 18, "fat": 8},
		"tags": ["test"]
	}
]`

const unbalancedCollection = `[
	{
		"name": "Sugar Bomb",
		"core_ingredients": ["sugar"],
		"macros": {"carbs": 100}
	}
]`

func writeCollection(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cfg := &config.Config{RecipesFile: filepath.Join("data", "recipes.json"), TopCount: 1, LogLevel: "error"}
	cmd := newRootCmd(cfg, strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunSuggestsBalancedRecipe(t *testing.T) {
	path := writeCollection(t, balancedCollection)
	out, _, err := execute(t, "", "--recipes", path, "egg", "tomato", "cheese")

	require.NoError(t, err)
	assert.Contains(t, out, "[1] Score 0.90")
	assert.Contains(t, out, "Test Omelette · serves 1")
}

func TestRunShowMissing(t *testing.T) {
	path := writeCollection(t, balancedCollection)
	out, _, err := execute(t, "", "--recipes", path, "--show-missing", "egg", "tomato")

	require.NoError(t, err)
	assert.Contains(t, out, "Missing ingredients:")
	assert.Contains(t, out, "Supporting: cheese, onion")
}

func TestRunInteractiveFallback(t *testing.T) {
	path := writeCollection(t, balancedCollection)
	out, errOut, err := execute(t, "egg, tomato\n", "--recipes", path)

	require.NoError(t, err)
	assert.Contains(t, errOut, "comma separated")
	assert.Contains(t, out, "Test Omelette")
}

func TestRunUsageErrorWithoutIngredients(t *testing.T) {
	path := writeCollection(t, balancedCollection)
	_, _, err := execute(t, "", "--recipes", path)

	require.Error(t, err)
	assert.ErrorIs(t, err, pantry.ErrNoIngredients)
	assert.Equal(t, 2, exitCode(err))
}

func TestRunUsageErrorWithMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "--recipes", filepath.Join(t.TempDir(), "nope.json"), "egg")

	require.Error(t, err)
	assert.ErrorIs(t, err, errRecipeFileNotFound)
	assert.Equal(t, 2, exitCode(err))
}

func TestRunEmptyResultIsDistinctFromUsageError(t *testing.T) {
	path := writeCollection(t, unbalancedCollection)
	_, _, err := execute(t, "", "--recipes", path, "sugar")

	require.Error(t, err)
	assert.ErrorIs(t, err, score.ErrNoMatches)
	assert.Equal(t, 1, exitCode(err))
}

func TestRunMalformedCollectionFails(t *testing.T) {
	path := writeCollection(t, `[{"name": "Bad", "macros": {"carbs": "lots"}}]`)
	_, _, err := execute(t, "", "--recipes", path, "egg")

	require.Error(t, err)
	assert.False(t, errors.Is(err, score.ErrNoMatches))
	assert.Equal(t, 2, exitCode(err))
}

func TestRunTopFlag(t *testing.T) {
	collection := `[
		{"name": "First", "core_ingredients": ["egg"], "macros": {"carbs": 24, "protein": 18, "fat": 8}},
		{"name": "Second", "core_ingredients": ["egg", "milk"], "macros": {"carbs": 24, "protein": 18, "fat": 8}}
	]`
	path := writeCollection(t, collection)

	out, _, err := execute(t, "", "--recipes", path, "--top", "2", "egg")
	require.NoError(t, err)
	assert.Contains(t, out, "[1] Score")
	assert.Contains(t, out, "[2] Score")
	assert.Less(t, strings.Index(out, "First"), strings.Index(out, "Second"))
}
