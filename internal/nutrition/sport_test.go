package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSportExpenditure(t *testing.T) {
	store := newFixtureStore()

	t.Run("should scale linearly with hours", func(t *testing.T) {
		// weight_training: 300 kcal/h, 3 h/week, medium intensity.
		res, err := ComputeSportExpenditure(store, []SportSession{
			{Name: "weight_training", HoursWeek: 3, Intensity: IntensityMedium},
		})
		require.NoError(t, err)
		require.Len(t, res.PerActivity, 1)
		assert.Equal(t, 900, res.PerActivity[0].KcalPerWeek)
		assert.Equal(t, 129, res.PerActivity[0].KcalPerDay)
		assert.Equal(t, 900, res.TotalKcalPerWeek)
		assert.Equal(t, 129, res.TotalKcalPerDay)
	})

	t.Run("should apply the intensity multipliers", func(t *testing.T) {
		easy, err := ComputeSportExpenditure(store, []SportSession{
			{Name: "running", HoursWeek: 2, Intensity: IntensityEasy},
		})
		require.NoError(t, err)
		hard, err := ComputeSportExpenditure(store, []SportSession{
			{Name: "running", HoursWeek: 2, Intensity: IntensityHard},
		})
		require.NoError(t, err)
		assert.Equal(t, 960, easy.TotalKcalPerWeek)  // 600*0.8*2
		assert.Equal(t, 1440, hard.TotalKcalPerWeek) // 600*1.2*2
	})

	t.Run("should default missing intensity to medium", func(t *testing.T) {
		res, err := ComputeSportExpenditure(store, []SportSession{
			{Name: "swimming", HoursWeek: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, 500, res.TotalKcalPerWeek)
	})

	t.Run("should resolve fuzzy activity names", func(t *testing.T) {
		res, err := ComputeSportExpenditure(store, []SportSession{
			{Name: "Weight Training", HoursWeek: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, "weight_training", res.PerActivity[0].Activity)
	})

	t.Run("should collect every unresolved activity before failing", func(t *testing.T) {
		_, err := ComputeSportExpenditure(store, []SportSession{
			{Name: "running", HoursWeek: 2},
			{Name: "underwater_basket_weaving", HoursWeek: 1},
			{Name: "quidditch", HoursWeek: 1},
		})
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "activity", notFound.Kind)
		assert.Equal(t, []string{"underwater_basket_weaving", "quidditch"}, notFound.Keys)
	})

	t.Run("should reject non-positive hours", func(t *testing.T) {
		_, err := ComputeSportExpenditure(store, []SportSession{{Name: "running", HoursWeek: 0}})
		var invalid *ValidationError
		assert.ErrorAs(t, err, &invalid)
	})
}
