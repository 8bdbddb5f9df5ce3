package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeMealPortions(t *testing.T) {
	store := newFixtureStore()
	lunch := MealTarget{Label: "lunch", Kcal: 840, ProteinG: 55, CarbG: 95, FatG: 25}

	t.Run("should hit energy and protein within tolerance", func(t *testing.T) {
		res, err := OptimizeMealPortions(store, lunch, []string{"chicken_breast", "rice", "olive_oil", "vegetables"})
		require.NoError(t, err)
		assert.True(t, res.Success, "summary: %s, deviations: %v", res.Summary, res.DeviationPct)
		assert.InDelta(t, lunch.Kcal, res.Actual.Kcal, lunch.Kcal*successTolerance)
		assert.InDelta(t, lunch.ProteinG, res.Actual.ProteinG, lunch.ProteinG*successTolerance)
	})

	t.Run("should report nutrients recomputed from the rounded portions", func(t *testing.T) {
		res, err := OptimizeMealPortions(store, lunch, []string{"chicken_breast", "rice", "olive_oil", "vegetables"})
		require.NoError(t, err)
		var sum MacroVector
		for name, grams := range res.Portions {
			f, ok := store.Food(name)
			require.True(t, ok)
			sum = sum.Add(f.Macros.Scale(grams))
		}
		assert.Equal(t, roundVector(sum), res.Actual)
	})

	t.Run("should snap free portions to the 5 g grain", func(t *testing.T) {
		res, err := OptimizeMealPortions(store, lunch, []string{"chicken_breast", "rice", "olive_oil"})
		require.NoError(t, err)
		for name, grams := range res.Portions {
			assert.Zero(t, math.Mod(grams, portionStepG), "portion of %s is %.1f g", name, grams)
		}
	})

	t.Run("should portion discrete foods in whole units", func(t *testing.T) {
		breakfast := MealTarget{Label: "breakfast", Kcal: 500, ProteinG: 30, CarbG: 50, FatG: 18}
		res, err := OptimizeMealPortions(store, breakfast, []string{"eggs", "oats", "greek_yogurt_0"})
		require.NoError(t, err)
		eggs := res.Portions["eggs"]
		assert.Zero(t, math.Mod(eggs, 60), "egg portion %.1f g is not a whole number of 60 g units", eggs)
	})

	t.Run("should not lose feasibility when a food is added", func(t *testing.T) {
		base, err := OptimizeMealPortions(store, lunch, []string{"chicken_breast", "rice", "olive_oil"})
		require.NoError(t, err)
		require.True(t, base.Success)
		wider, err := OptimizeMealPortions(store, lunch, []string{"chicken_breast", "rice", "olive_oil", "vegetables"})
		require.NoError(t, err)
		assert.True(t, wider.Success)
	})

	t.Run("should return a failure result for an unreachable target", func(t *testing.T) {
		impossible := MealTarget{Label: "lunch", Kcal: 800, ProteinG: 150, CarbG: 20, FatG: 10}
		res, err := OptimizeMealPortions(store, impossible, []string{"rice", "vegetables"})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.ErrorMessage)
		// The best-effort portions are still reported for inspection.
		assert.NotEmpty(t, res.Portions)
	})

	t.Run("should refuse fewer than two foods without portions", func(t *testing.T) {
		res, err := OptimizeMealPortions(store, lunch, []string{"chicken_breast"})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Empty(t, res.Portions)
		assert.NotEmpty(t, res.ErrorMessage)
	})

	t.Run("should list exactly the unresolved names", func(t *testing.T) {
		_, err := OptimizeMealPortions(store, lunch, []string{"pollo", "xyz_unknown"})
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []string{"xyz_unknown"}, notFound.Keys)
	})

	t.Run("should reject a non-positive calorie target", func(t *testing.T) {
		_, err := OptimizeMealPortions(store, MealTarget{Kcal: 0}, []string{"rice", "eggs"})
		var invalid *ValidationError
		assert.ErrorAs(t, err, &invalid)
	})
}
