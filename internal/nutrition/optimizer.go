package nutrition

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Portion rounding and convergence parameters.
const (
	portionStepG     = 5.0  // free-weight portions snap to this grain
	defaultMaxG      = 500  // per-food ceiling when the category has none
	successTolerance = 0.15 // relative kcal and protein tolerance for success
	maxSweeps        = 200
	convergenceEps   = 1e-6
)

// Objective weights per nutrient. Energy and protein dominate because the
// success criterion is defined on them.
var macroWeights = [4]float64{3, 2, 1, 1} // kcal, protein, carb, fat

// categoryMaxG caps the portion of a single food by its category. Foods in
// unlisted categories fall back to defaultMaxG.
var categoryMaxG = map[string]float64{
	"fats_oils":    40,
	"nuts_seeds":   60,
	"cheese":       150,
	"sweets":       100,
	"supplements":  80,
	"bread_bakery": 250,
	"grains":       300,
	"legumes":      300,
	"meat":         400,
	"fish":         400,
	"dairy":        400,
	"fruit":        400,
}

func maxPortionFor(f FoodProfile) float64 {
	if m, ok := categoryMaxG[f.Category]; ok {
		return m
	}
	return defaultMaxG
}

// OptimizeMealPortions computes gram portions for the named foods so that the
// combined nutrients approach the meal target. The fit is a box-constrained
// weighted least squares on relative deviations, solved by exact coordinate
// descent; the continuous solution is then snapped to practical portions
// (5 g grain, whole units for discrete foods) and the reported nutrients are
// recomputed from the snapped portions.
//
// Any food name that cannot be resolved aborts the call with a NotFoundError
// listing every unresolved name. A resolvable but structurally infeasible
// request (fewer than two foods) returns Success=false without portions.
func OptimizeMealPortions(store NutrientStore, target MealTarget, foodNames []string) (OptimizationResult, error) {
	if target.Kcal <= 0 {
		return OptimizationResult{}, invalidf("target.kcal", "must be positive")
	}

	resolved, missing := resolveFoodKeys(store, foodNames)
	if len(missing) > 0 {
		return OptimizationResult{}, &NotFoundError{Kind: "food", Keys: missing}
	}

	result := OptimizationResult{Target: target.Vector()}

	if len(resolved) < 2 {
		result.Success = false
		result.ErrorMessage = "at least two foods are required to balance a meal"
		return result, nil
	}

	// Deterministic food order regardless of map iteration.
	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	foods := make([]FoodProfile, len(names))
	for i, name := range names {
		foods[i] = resolved[name]
	}

	grams := solvePortions(foods, target)

	// Snap to practical portions before reporting anything.
	portions := make(map[string]float64, len(names))
	perFood := make(map[string]FoodContribution, len(names))
	var actual MacroVector
	for i, name := range names {
		g := snapPortion(foods[i], grams[i])
		portions[name] = g
		contrib := foods[i].Macros.Scale(g)
		perFood[name] = FoodContribution{PortionG: g, Macros: roundVector(contrib), Category: foods[i].Category}
		actual = actual.Add(contrib)
	}
	actual = roundVector(actual)

	result.Portions = portions
	result.PerFood = perFood
	result.Actual = actual
	result.DeviationPct = deviationPct(target.Vector(), actual)

	kcalDev := relDev(actual.Kcal, target.Kcal)
	protDev := relDev(actual.ProteinG, target.ProteinG)
	result.Success = math.Abs(kcalDev) <= successTolerance && math.Abs(protDev) <= successTolerance
	result.Summary = buildSummary(target, actual, result.Success)
	if !result.Success {
		result.ErrorMessage = "could not match energy and protein targets within tolerance with the given foods"
	}
	return result, nil
}

// solvePortions minimizes the weighted relative squared deviation over the
// portion box [0, max_i] by cyclic exact coordinate descent. The objective is
// a convex quadratic, so each coordinate update is closed-form and every
// sweep is non-increasing.
func solvePortions(foods []FoodProfile, target MealTarget) []float64 {
	n := len(foods)
	t := [4]float64{target.Kcal, target.ProteinG, target.CarbG, target.FatG}

	// Per-gram nutrient coefficients and scaled weights w_m / max(t_m,1)^2.
	coef := make([][4]float64, n)
	for i, f := range foods {
		coef[i] = [4]float64{
			f.Macros.Kcal / 100,
			f.Macros.ProteinG / 100,
			f.Macros.CarbG / 100,
			f.Macros.FatG / 100,
		}
	}
	var w [4]float64
	for m := 0; m < 4; m++ {
		d := math.Max(t[m], 1)
		w[m] = macroWeights[m] / (d * d)
	}

	maxG := make([]float64, n)
	x := make([]float64, n)
	for i, f := range foods {
		maxG[i] = maxPortionFor(f)
		// Warm start: equal energy split across foods that carry energy.
		if coef[i][0] > 0 {
			x[i] = math.Min(t[0]/float64(n)/coef[i][0], maxG[i])
		}
	}

	// Current residual r_m = sum_i coef_im * x_i.
	var r [4]float64
	for i := range x {
		for m := 0; m < 4; m++ {
			r[m] += coef[i][m] * x[i]
		}
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		var moved float64
		for i := 0; i < n; i++ {
			var num, den float64
			for m := 0; m < 4; m++ {
				without := r[m] - coef[i][m]*x[i]
				num += w[m] * coef[i][m] * (t[m] - without)
				den += w[m] * coef[i][m] * coef[i][m]
			}
			if den == 0 {
				continue
			}
			xi := math.Min(math.Max(num/den, 0), maxG[i])
			if xi != x[i] {
				for m := 0; m < 4; m++ {
					r[m] += coef[i][m] * (xi - x[i])
				}
				moved += math.Abs(xi - x[i])
				x[i] = xi
			}
		}
		if moved < convergenceEps {
			break
		}
	}
	return x
}

// snapPortion rounds a continuous gram amount to a practical portion: whole
// units for discrete foods, 5 g steps otherwise.
func snapPortion(f FoodProfile, grams float64) float64 {
	if f.Discrete && f.UnitWeightG > 0 {
		units := math.Round(grams / f.UnitWeightG)
		return units * f.UnitWeightG
	}
	return math.Round(grams/portionStepG) * portionStepG
}

func relDev(actual, target float64) float64 {
	return (actual - target) / math.Max(target, 1)
}

func deviationPct(target, actual MacroVector) map[string]float64 {
	return map[string]float64{
		"kcal":      round1(relDev(actual.Kcal, target.Kcal) * 100),
		"protein_g": round1(relDev(actual.ProteinG, target.ProteinG) * 100),
		"carb_g":    round1(relDev(actual.CarbG, target.CarbG) * 100),
		"fat_g":     round1(relDev(actual.FatG, target.FatG) * 100),
	}
}

func roundVector(v MacroVector) MacroVector {
	return MacroVector{
		Kcal:     round1(v.Kcal),
		ProteinG: round1(v.ProteinG),
		CarbG:    round1(v.CarbG),
		FatG:     round1(v.FatG),
		FiberG:   round1(v.FiberG),
	}
}

func buildSummary(target MealTarget, actual MacroVector, success bool) string {
	var b strings.Builder
	label := target.Label
	if label == "" {
		label = "meal"
	}
	fmt.Fprintf(&b, "%s: %.0f kcal (target %.0f), %.1f g protein (target %.1f), %.1f g carbs, %.1f g fat",
		label, actual.Kcal, target.Kcal, actual.ProteinG, target.ProteinG, actual.CarbG, actual.FatG)
	if success {
		b.WriteString("; energy and protein within tolerance")
	} else {
		b.WriteString("; outside tolerance")
	}
	return b.String()
}
