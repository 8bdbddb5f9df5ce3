package nutrition

import "math"

// DefaultMealCount is used when the caller does not specify one.
const DefaultMealCount = 4

// MealSlot is one entry of a distribution schedule.
type MealSlot struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// mealSchedules are the fixed calorie shares per meal count. Each row sums
// to 100.
var mealSchedules = map[int][]MealSlot{
	1: {{"single_meal", 100}},
	2: {{"breakfast", 60}, {"dinner", 40}},
	3: {{"breakfast", 30}, {"lunch", 35}, {"dinner", 35}},
	4: {{"breakfast", 25}, {"lunch", 35}, {"afternoon_snack", 10}, {"dinner", 30}},
	5: {{"breakfast", 25}, {"morning_snack", 5}, {"lunch", 35}, {"afternoon_snack", 5}, {"dinner", 30}},
	6: {{"breakfast", 25}, {"morning_snack", 5}, {"lunch", 30}, {"afternoon_snack", 5}, {"dinner", 25}, {"evening_snack", 10}},
}

// DailyTargets is the full-day energy and macro budget to distribute.
type DailyTargets struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	CarbG    float64 `json:"carb_g"`
	FatG     float64 `json:"fat_g"`
}

// DistributeMeals splits the daily targets across mealCount meals using the
// fixed percentage schedule, or across the explicit schedule when one is
// supplied (its percentages must sum to 100 within 1 point). Macros follow
// the same share as calories; finer per-meal rebalancing is the optimizer's
// job, not this layer's.
func DistributeMeals(daily DailyTargets, mealCount int, schedule []MealSlot) ([]MealTarget, error) {
	if daily.Kcal <= 0 {
		return nil, invalidf("kcal", "must be positive")
	}

	if len(schedule) == 0 {
		if mealCount == 0 {
			mealCount = DefaultMealCount
		}
		var ok bool
		schedule, ok = mealSchedules[mealCount]
		if !ok {
			return nil, invalidf("meal_count", "must be between 1 and 6")
		}
	} else {
		var sum float64
		for _, slot := range schedule {
			if slot.Percent <= 0 {
				return nil, invalidf("schedule", "percentage for %q must be positive", slot.Label)
			}
			sum += slot.Percent
		}
		if math.Abs(sum-100) > 1 {
			return nil, invalidf("schedule", "percentages sum to %.1f, expected 100", sum)
		}
	}

	// Rounding stays at reporting precision: whole-unit rounding can push a
	// small share's macro energy past the per-meal tolerance.
	targets := make([]MealTarget, 0, len(schedule))
	for _, slot := range schedule {
		share := slot.Percent / 100
		targets = append(targets, MealTarget{
			Label:    slot.Label,
			Kcal:     round1(daily.Kcal * share),
			ProteinG: round1(daily.ProteinG * share),
			CarbG:    round1(daily.CarbG * share),
			FatG:     round1(daily.FatG * share),
		})
	}
	return targets, nil
}
