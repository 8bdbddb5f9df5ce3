package nutrition

import "math"

// Energy density of the macronutrients, kcal per gram.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarb    = 4
	KcalPerGramFat     = 9
)

// carbFloorGPerKg is the minimum carbohydrate intake per kg of body weight,
// to stay clear of ketosis.
const carbFloorGPerKg = 2.0

// MacroAllocationInput parametrizes a daily macro split. Zero percentage
// fields fall back to the store's reference ranges.
type MacroAllocationInput struct {
	TotalKcal     float64 `json:"total_kcal"`
	WeightKg      float64 `json:"weight_kg"`
	ProteinGPerKg float64 `json:"protein_g_per_kg"`
	FatPctMin     float64 `json:"fat_pct_min,omitempty"`
	FatPctMax     float64 `json:"fat_pct_max,omitempty"`
	CarbPctMax    float64 `json:"carb_pct_max,omitempty"`
}

// KcalBreakdown reports how the allocated grams translate back into energy.
type KcalBreakdown struct {
	ProteinKcal float64 `json:"protein_kcal"`
	FatKcal     float64 `json:"fat_kcal"`
	CarbKcal    float64 `json:"carb_kcal"`
}

// MacroAllocation is the daily gram target per macronutrient. The three kcal
// components are guaranteed to sum to TotalKcal within ±2%.
type MacroAllocation struct {
	ProteinG  float64       `json:"protein_g"`
	FatG      float64       `json:"fat_g"`
	CarbG     float64       `json:"carb_g"`
	FiberMinG float64       `json:"fiber_min_g"`
	FiberMaxG float64       `json:"fiber_max_g"`
	Breakdown KcalBreakdown `json:"kcal_breakdown"`
	Warnings  []string      `json:"warnings"`
}

// AllocateMacronutrients splits the daily energy budget into gram targets.
// Protein is fixed from the g/kg multiplier, fat starts at the midpoint of
// its percentage range, and carbohydrate absorbs the remainder, clamped to a
// 2 g/kg floor and the percentage ceiling. Carbohydrate grams are adjusted
// last so rounding error lands there.
func AllocateMacronutrients(store NutrientStore, in MacroAllocationInput) (MacroAllocation, error) {
	if in.TotalKcal <= 0 {
		return MacroAllocation{}, invalidf("total_kcal", "must be positive")
	}
	if in.WeightKg <= 0 {
		return MacroAllocation{}, invalidf("weight_kg", "must be positive")
	}
	if in.ProteinGPerKg <= 0 {
		return MacroAllocation{}, invalidf("protein_g_per_kg", "must be positive")
	}

	fatMin, fatMax := in.FatPctMin, in.FatPctMax
	if fatMin <= 0 || fatMax <= 0 {
		fatMin, fatMax = store.LipidPercentRange()
	}
	carbMax := in.CarbPctMax
	if carbMax <= 0 {
		_, carbMax = store.CarbPercentRange()
	}

	alloc := MacroAllocation{Warnings: []string{}}

	proteinG := in.ProteinGPerKg * in.WeightKg
	proteinKcal := proteinG * KcalPerGramProtein
	if proteinKcal > in.TotalKcal*0.45 {
		alloc.Warnings = append(alloc.Warnings, "protein target takes an unusually large share of total energy")
	}

	// Fat at the midpoint of its recommended band.
	fatPct := (fatMin + fatMax) / 2
	fatG := in.TotalKcal * fatPct / 100 / KcalPerGramFat

	carbKcal := in.TotalKcal - proteinKcal - fatG*KcalPerGramFat
	carbG := carbKcal / KcalPerGramCarb

	// Enforce the anti-ketosis floor by taking energy back from fat, as far
	// as the bottom of the fat band allows.
	carbFloor := carbFloorGPerKg * in.WeightKg
	if carbG < carbFloor {
		needed := (carbFloor - carbG) * KcalPerGramCarb
		fatFloorG := in.TotalKcal * fatMin / 100 / KcalPerGramFat
		reducible := (fatG - fatFloorG) * KcalPerGramFat
		if reducible > 0 {
			take := math.Min(needed, reducible)
			fatG -= take / KcalPerGramFat
			carbG += take / KcalPerGramCarb
		}
		if carbG < carbFloor {
			alloc.Warnings = append(alloc.Warnings,
				"carbohydrate share is below the 2 g/kg floor even at minimum fat; consider raising total energy")
		}
	}

	// Cap carbohydrate share by shifting the excess onto fat.
	carbCeil := in.TotalKcal * carbMax / 100 / KcalPerGramCarb
	if carbG > carbCeil {
		excess := (carbG - carbCeil) * KcalPerGramCarb
		fatCeilG := in.TotalKcal * fatMax / 100 / KcalPerGramFat
		headroom := (fatCeilG - fatG) * KcalPerGramFat
		take := math.Min(excess, math.Max(headroom, 0))
		fatG += take / KcalPerGramFat
		carbG -= take / KcalPerGramCarb
		if carbG > carbCeil {
			alloc.Warnings = append(alloc.Warnings, "carbohydrate share exceeds the recommended ceiling")
		}
	}

	// Round protein and fat, then recompute carbohydrate from the remaining
	// energy so the kcal identity holds after rounding.
	proteinG = math.Round(proteinG)
	fatG = math.Round(fatG)
	carbG = math.Round((in.TotalKcal - proteinG*KcalPerGramProtein - fatG*KcalPerGramFat) / KcalPerGramCarb)
	if carbG < 0 {
		return MacroAllocation{}, invalidf("total_kcal", "too low to fit the protein and fat targets")
	}

	alloc.ProteinG = proteinG
	alloc.FatG = fatG
	alloc.CarbG = carbG
	alloc.FiberMinG, alloc.FiberMaxG = store.FiberBand(in.TotalKcal)
	alloc.Breakdown = KcalBreakdown{
		ProteinKcal: proteinG * KcalPerGramProtein,
		FatKcal:     fatG * KcalPerGramFat,
		CarbKcal:    carbG * KcalPerGramCarb,
	}
	return alloc, nil
}
