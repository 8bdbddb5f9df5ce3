package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSubstitutes(t *testing.T) {
	store := newFixtureStore()

	t.Run("should match the reference energy within one percent", func(t *testing.T) {
		subs, err := FindSubstitutes(store, "chicken_breast", 150, 5)
		require.NoError(t, err)
		require.NotEmpty(t, subs)
		refKcal := 110.0 * 1.5
		for _, s := range subs {
			assert.LessOrEqual(t, math.Abs(s.Macros.Kcal-refKcal), refKcal*0.011,
				"candidate %s at %.1f g", s.Key, s.EquivalentGrams)
		}
	})

	t.Run("should rank protein-dense foods closest to a protein reference", func(t *testing.T) {
		subs, err := FindSubstitutes(store, "chicken_breast", 150, 3)
		require.NoError(t, err)
		require.NotEmpty(t, subs)
		// Tuna is the only other nearly pure-protein food in the catalogue.
		assert.Equal(t, "canned_tuna", subs[0].Key)
	})

	t.Run("should never include the reference food", func(t *testing.T) {
		subs, err := FindSubstitutes(store, "rice", 100, 10)
		require.NoError(t, err)
		for _, s := range subs {
			assert.NotEqual(t, "rice", s.Key)
		}
	})

	t.Run("should round equivalent portions to a tenth of a gram", func(t *testing.T) {
		subs, err := FindSubstitutes(store, "rice", 80, 5)
		require.NoError(t, err)
		for _, s := range subs {
			scaled := math.Round(s.EquivalentGrams*10) / 10
			assert.Equal(t, scaled, s.EquivalentGrams)
		}
	})

	t.Run("should return fewer candidates than asked when the catalogue is small", func(t *testing.T) {
		subs, err := FindSubstitutes(store, "olive_oil", 10, 50)
		require.NoError(t, err)
		assert.Less(t, len(subs), 50)
	})

	t.Run("should resolve the reference through aliases", func(t *testing.T) {
		subs, err := FindSubstitutes(store, "pollo", 100, 3)
		require.NoError(t, err)
		assert.NotEmpty(t, subs)
	})

	t.Run("should fail with the unresolved key", func(t *testing.T) {
		_, err := FindSubstitutes(store, "dragonfruit_smoothie", 100, 3)
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []string{"dragonfruit_smoothie"}, notFound.Keys)
	})

	t.Run("should reject non-positive grams and n", func(t *testing.T) {
		_, err := FindSubstitutes(store, "rice", 0, 3)
		assert.Error(t, err)
		_, err = FindSubstitutes(store, "rice", 100, 0)
		assert.Error(t, err)
	})
}
