package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEnergyRequirement(t *testing.T) {
	t.Run("should match the documented male reference values", func(t *testing.T) {
		req, err := ComputeEnergyRequirement(PersonProfile{
			Sex: Male, WeightKg: 70, HeightCm: 175, AgeYears: 30, ActivityLevel: VeryActive,
		})
		require.NoError(t, err)
		assert.Equal(t, 1695, req.BMR)
		assert.Equal(t, 1.75, req.LAFUsed)
		assert.Equal(t, 2966, req.TDEE)
	})

	t.Run("should use the female coefficients", func(t *testing.T) {
		req, err := ComputeEnergyRequirement(PersonProfile{
			Sex: Female, WeightKg: 60, HeightCm: 165, AgeYears: 25, ActivityLevel: Sedentary,
		})
		require.NoError(t, err)
		// 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.26
		assert.Equal(t, 1405, req.BMR)
		assert.Equal(t, 1.3, req.LAFUsed)
	})

	t.Run("should report every missing field at once", func(t *testing.T) {
		_, err := ComputeEnergyRequirement(PersonProfile{Sex: Male})
		var incomplete *DataIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.ElementsMatch(t, []string{"weight_kg", "height_cm", "age_years"}, incomplete.Missing)
	})

	t.Run("should reject an unknown sex", func(t *testing.T) {
		_, err := ComputeEnergyRequirement(PersonProfile{
			Sex: "other", WeightKg: 70, HeightCm: 175, AgeYears: 30,
		})
		var invalid *ValidationError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "sex", invalid.Field)
	})

	t.Run("should resolve a mangled activity level instead of failing", func(t *testing.T) {
		req, err := ComputeEnergyRequirement(PersonProfile{
			Sex: Male, WeightKg: 70, HeightCm: 175, AgeYears: 30, ActivityLevel: "moderate",
		})
		require.NoError(t, err)
		assert.Equal(t, 1.6, req.LAFUsed)
	})
}

func TestResolveActivityLevel(t *testing.T) {
	cases := map[string]ActivityLevel{
		"sedentary":      Sedentary,
		"Lightly Active": LightlyActive,
		"light":          LightlyActive,
		"moderate":       Active,
		"ATHLETE":        VeryActive,
		"very_active":    VeryActive,
	}
	for label, want := range cases {
		assert.Equal(t, want, ResolveActivityLevel(label), "label %q", label)
	}

	t.Run("should fall back by name length for unknown labels", func(t *testing.T) {
		// len("active")=6 is the closest canonical name to a 6-letter label.
		assert.Equal(t, Active, ResolveActivityLevel("sporty"))
	})
}
