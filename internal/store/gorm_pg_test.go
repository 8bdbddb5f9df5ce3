package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriplan/backend/internal/testhelpers"
)

// Container-backed checks for the PostgreSQL path, embedding search included.
func TestGormStorePostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	s := NewGormStore(db)
	require.NoError(t, s.Seed())

	t.Run("should serve the seeded catalogue", func(t *testing.T) {
		assert.Len(t, s.Foods(), len(builtinFoods))
		f, ok := s.Food("parmigiano")
		require.True(t, ok)
		assert.Equal(t, "cheese", f.Category)
	})

	t.Run("should rank candidates with the embedding column", func(t *testing.T) {
		ref, ok := s.Food("rice")
		require.True(t, ok)
		nearest := s.NearestByMacros(ref.Macros, 4)
		require.NotEmpty(t, nearest)
		assert.Equal(t, "rice", nearest[0].Key)
		// The other refined grains rank ahead of fats and vegetables.
		keys := make(map[string]bool, len(nearest))
		for _, f := range nearest {
			keys[f.Key] = true
		}
		assert.True(t, keys["dry_pasta"] || keys["brown_rice"],
			"expected a similar grain among %v", keys)
	})

	t.Run("should keep reseeding idempotent", func(t *testing.T) {
		require.NoError(t, s.Seed())
		assert.Len(t, s.Foods(), len(builtinFoods))
	})
}
