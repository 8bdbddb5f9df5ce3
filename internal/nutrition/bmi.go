package nutrition

import (
	"fmt"
	"math"
)

// BMI classification band bounds.
const (
	bmiUnderweight = 18.5
	bmiOverweight  = 25.0
	bmiObese       = 30.0
	idealBMIMin    = 18.5
	idealBMIMax    = 24.9
)

// BMICategory is the classification band of a BMI value.
type BMICategory string

const (
	Underweight  BMICategory = "underweight"
	NormalWeight BMICategory = "normal"
	Overweight   BMICategory = "overweight"
	Obese        BMICategory = "obese"
)

// BMIAnalysis is the outcome of the body-state and goal coherence check.
type BMIAnalysis struct {
	BMI            float64     `json:"bmi"`
	Category       BMICategory `json:"category"`
	IdealWeightMin float64     `json:"ideal_weight_min"`
	IdealWeightMax float64     `json:"ideal_weight_max"`
	IdealWeightMid float64     `json:"ideal_weight_mid"`
	GoalCoherent   bool        `json:"goal_coherent"`
	Recommendation string      `json:"recommendation"`
	Warnings       []string    `json:"warnings"`
}

// AnalyzeBMIAndGoal computes BMI, the ideal-weight range for the height, and
// checks whether the stated goal is coherent with the current body state.
func AnalyzeBMIAndGoal(p PersonProfile) (BMIAnalysis, error) {
	if p.WeightKg <= 0 || p.WeightKg > 300 {
		return BMIAnalysis{}, invalidf("weight_kg", "must be between 1 and 300")
	}
	if p.HeightCm <= 0 || p.HeightCm > 250 {
		return BMIAnalysis{}, invalidf("height_cm", "must be between 1 and 250")
	}
	if p.AgeYears < 18 || p.AgeYears > 100 {
		return BMIAnalysis{}, invalidf("age_years", "must be between 18 and 100")
	}
	switch p.Goal {
	case GoalLoss, GoalMaintain, GoalGain:
	default:
		return BMIAnalysis{}, invalidf("goal", "must be one of %q, %q, %q", GoalLoss, GoalMaintain, GoalGain)
	}

	heightM := p.HeightCm / 100
	bmi := p.WeightKg / (heightM * heightM)

	var category BMICategory
	switch {
	case bmi < bmiUnderweight:
		category = Underweight
	case bmi < bmiOverweight:
		category = NormalWeight
	case bmi < bmiObese:
		category = Overweight
	default:
		category = Obese
	}

	idealMin := idealBMIMin * heightM * heightM
	idealMax := idealBMIMax * heightM * heightM

	result := BMIAnalysis{
		BMI:            math.Round(bmi*10) / 10,
		Category:       category,
		IdealWeightMin: math.Round(idealMin*10) / 10,
		IdealWeightMax: math.Round(idealMax*10) / 10,
		IdealWeightMid: math.Round((idealMin+idealMax)/2*10) / 10,
		GoalCoherent:   true,
		Warnings:       []string{},
	}

	switch category {
	case Underweight:
		if p.Goal == GoalLoss {
			result.GoalCoherent = false
			result.Recommendation = fmt.Sprintf(
				"BMI %.1f is below the healthy range; further weight loss is not advisable. A healthier target is %.1f-%.1f kg.",
				result.BMI, result.IdealWeightMin, result.IdealWeightMax)
			result.Warnings = append(result.Warnings, "BMI below normal range, weight loss discouraged")
		}
	case Overweight, Obese:
		if p.Goal == GoalGain {
			result.GoalCoherent = false
			result.Recommendation = fmt.Sprintf(
				"BMI %.1f is above the healthy range; focus on reaching %.1f-%.1f kg before a mass gain phase.",
				result.BMI, result.IdealWeightMin, result.IdealWeightMax)
			result.Warnings = append(result.Warnings, "BMI above normal range, mass gain discouraged")
		}
	case NormalWeight:
		// Soft warnings near the band edges.
		if p.Goal == GoalLoss && p.WeightKg <= idealMin+2 {
			result.Warnings = append(result.Warnings, "already near the lower ideal-weight bound; reconsider whether loss is needed")
		}
		if p.Goal == GoalGain && p.WeightKg >= idealMax-2 {
			result.Warnings = append(result.Warnings, "already near the upper ideal-weight bound; monitor that gains are lean mass")
		}
	}

	return result, nil
}
