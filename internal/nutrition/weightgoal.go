package nutrition

import (
	"fmt"
	"math"
)

// KcalPerKg is the energy equivalence of one kilogram of body mass.
const KcalPerKg = 7700

const (
	maxSafeDailyDeficit = 500  // kcal/day
	maxSafeDailySurplus = 500  // kcal/day
	maxSafeGainPerMonth = 1.0  // kg/month
	maxSafeLossPerMonth = 4.0  // kg/month
	bmrDeficitRatio     = 0.25 // warn when the deficit eats this share of BMR
)

// WeightGoalAdjustment converts a desired mass change over a time window into
// a signed daily calorie adjustment.
type WeightGoalAdjustment struct {
	DailyCalorieAdjustment int      `json:"daily_calorie_adjustment"`
	Warnings               []string `json:"warnings"`
	GoalType               GoalType `json:"goal_type"`
	KgPerMonth             float64  `json:"kg_per_month"`
}

// ComputeWeightGoalAdjustment derives the daily deficit (loss, negative) or
// surplus (gain, positive) for changing kgChange kilograms in timeMonths
// months, clamping to safe bounds and emitting warnings for aggressive
// targets. bmr, when positive, enables the deficit-vs-metabolism check.
func ComputeWeightGoalAdjustment(kgChange, timeMonths float64, goal GoalType, bmr float64) (WeightGoalAdjustment, error) {
	if kgChange <= 0 {
		return WeightGoalAdjustment{}, invalidf("kg_change", "must be positive")
	}
	if timeMonths <= 0 {
		return WeightGoalAdjustment{}, invalidf("time_months", "must be positive")
	}
	if goal != GoalLoss && goal != GoalGain {
		return WeightGoalAdjustment{}, invalidf("goal_type", "must be %q or %q", GoalLoss, GoalGain)
	}

	kgPerMonth := kgChange / timeMonths
	daily := kgPerMonth * KcalPerKg / 30

	result := WeightGoalAdjustment{
		GoalType:   goal,
		KgPerMonth: math.Round(kgPerMonth*100) / 100,
		Warnings:   []string{},
	}

	switch goal {
	case GoalLoss:
		daily = -daily
		if kgPerMonth > maxSafeLossPerMonth {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"requested loss rate (%.1f kg/month) is very aggressive; consider a longer time frame", kgPerMonth))
		}
		if -daily > maxSafeDailyDeficit {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"requested deficit (%.0f kcal/day) exceeds the safe maximum of %d kcal/day; capping",
				-daily, maxSafeDailyDeficit))
			daily = -maxSafeDailyDeficit
		}
		if bmr > 0 && -daily > bmr*bmrDeficitRatio {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"deficit is large relative to basal metabolism (%.0f kcal); consider a longer time frame", bmr))
		}
	case GoalGain:
		if kgPerMonth > maxSafeGainPerMonth {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"requested gain rate (%.1f kg/month) exceeds %.0f kg/month and will likely add body fat",
				kgPerMonth, maxSafeGainPerMonth))
		}
		if daily > maxSafeDailySurplus {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"requested surplus (%.0f kcal/day) is very high; capping at %d kcal/day to limit fat gain",
				daily, maxSafeDailySurplus))
			daily = maxSafeDailySurplus
		}
	}

	result.DailyCalorieAdjustment = int(math.Round(daily))
	return result, nil
}
