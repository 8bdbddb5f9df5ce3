package nutrition

import "math"

// round1 rounds to one decimal, the reporting precision used across the core.
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// MacroVector holds the macronutrient profile of a food (per 100 g) or of a
// target/actual intake.
type MacroVector struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	CarbG    float64 `json:"carb_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g,omitempty"`
}

// Scale returns the vector scaled to the given gram amount, interpreting the
// receiver as a per-100g profile.
func (m MacroVector) Scale(grams float64) MacroVector {
	f := grams / 100
	return MacroVector{
		Kcal:     m.Kcal * f,
		ProteinG: m.ProteinG * f,
		CarbG:    m.CarbG * f,
		FatG:     m.FatG * f,
		FiberG:   m.FiberG * f,
	}
}

// Add returns the component-wise sum of two vectors.
func (m MacroVector) Add(o MacroVector) MacroVector {
	return MacroVector{
		Kcal:     m.Kcal + o.Kcal,
		ProteinG: m.ProteinG + o.ProteinG,
		CarbG:    m.CarbG + o.CarbG,
		FatG:     m.FatG + o.FatG,
		FiberG:   m.FiberG + o.FiberG,
	}
}

// FoodProfile is the read-only per-100g record the NutrientStore exposes for
// one food. NovaClass follows the four-tier NOVA processing classification
// (4 = ultra-processed). Discrete foods (eggs, slices) are portioned in whole
// units of UnitWeightG rather than in free grams.
type FoodProfile struct {
	Key         string             `json:"key"`
	Category    string             `json:"category"`
	Macros      MacroVector        `json:"macros_per_100g"`
	Vitamins    map[string]float64 `json:"vitamins_per_100g,omitempty"`
	NovaClass   int                `json:"nova_class"`
	Discrete    bool               `json:"discrete,omitempty"`
	UnitWeightG float64            `json:"unit_weight_g,omitempty"`
	// CookedYieldFactor multiplies raw weight into cooked weight for foods
	// whose nutrients are recorded on the raw/dry basis. Zero means the food
	// is consumed as recorded.
	CookedYieldFactor float64 `json:"cooked_yield_factor,omitempty"`
	// StandardPortionG is the typical single-serving weight.
	StandardPortionG float64 `json:"standard_portion_g,omitempty"`
}

// ActivityProfile is the read-only record for one physical activity.
type ActivityProfile struct {
	Key         string  `json:"key"`
	Category    string  `json:"category"`
	KcalPerHour float64 `json:"kcal_per_hour"`
	Description string  `json:"description"`
}

// Sex of the subject, as accepted by the calculators.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ActivityLevel is the lifestyle activity bucket mapped to a LAF multiplier.
type ActivityLevel string

const (
	Sedentary     ActivityLevel = "sedentary"
	LightlyActive ActivityLevel = "lightly_active"
	Active        ActivityLevel = "active"
	VeryActive    ActivityLevel = "very_active"
)

// Intensity of a practiced sport or training session.
type Intensity string

const (
	IntensityEasy   Intensity = "easy"
	IntensityMedium Intensity = "medium"
	IntensityHard   Intensity = "hard"
)

// GoalType is the stated body-mass goal.
type GoalType string

const (
	GoalLoss     GoalType = "loss"
	GoalMaintain GoalType = "maintain"
	GoalGain     GoalType = "gain"
)

// PersonProfile carries the anthropometric inputs of one calculation call.
// It is created per request and never persisted by the core.
type PersonProfile struct {
	Sex           Sex           `json:"sex"`
	AgeYears      int           `json:"age_years"`
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          GoalType      `json:"goal"`
}

// MealTarget is one meal's share of the daily targets. Invariant: the kcal of
// the three macros sum to Kcal within a ±2% rounding tolerance.
type MealTarget struct {
	Label    string  `json:"label"`
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	CarbG    float64 `json:"carb_g"`
	FatG     float64 `json:"fat_g"`
}

// Vector returns the target as a MacroVector.
func (t MealTarget) Vector() MacroVector {
	return MacroVector{Kcal: t.Kcal, ProteinG: t.ProteinG, CarbG: t.CarbG, FatG: t.FatG}
}

// FoodContribution is the nutrient share one rounded portion brings to a meal.
type FoodContribution struct {
	PortionG float64     `json:"portion_g"`
	Macros   MacroVector `json:"macros"`
	Category string      `json:"category"`
}

// OptimizationResult is the immutable outcome of one optimizer invocation.
// Actual nutrients are always recomputed from the rounded portions, never
// from the continuous solution.
type OptimizationResult struct {
	Success       bool                        `json:"success"`
	Portions      map[string]float64          `json:"portions,omitempty"`
	Target        MacroVector                 `json:"target_nutrients"`
	Actual        MacroVector                 `json:"actual_nutrients"`
	PerFood       map[string]FoodContribution `json:"macro_single_foods,omitempty"`
	DeviationPct  map[string]float64          `json:"deviation_pct,omitempty"`
	Summary       string                      `json:"summary,omitempty"`
	ErrorMessage  string                      `json:"error_message,omitempty"`
	FoodsNotFound []string                    `json:"foods_not_found,omitempty"`
}

// SubstitutionCandidate is one calorie-equivalent alternative to a reference
// food, produced transiently by the substitution matcher.
type SubstitutionCandidate struct {
	Key              string      `json:"key"`
	EquivalentGrams  float64     `json:"equivalent_grams"`
	KcalDeviationPct float64     `json:"kcal_deviation_pct"`
	SimilarityScore  float64     `json:"similarity_score"`
	Macros           MacroVector `json:"macros_at_equivalent_grams"`
}
