package store

import "github.com/nutriplan/backend/internal/nutrition"

// builtinFoods is the reference food catalogue, nutrients per 100 g.
// Values follow standard food-composition tables.
var builtinFoods = []nutrition.FoodProfile{
	{Key: "chicken_breast", Category: "meat", NovaClass: 1, StandardPortionG: 120,
		Macros:   nutrition.MacroVector{Kcal: 110, ProteinG: 23.3, CarbG: 0, FatG: 1.5},
		Vitamins: map[string]float64{"b12": 0.4, "b6": 0.8, "d": 0.1}},
	{Key: "turkey_breast", Category: "meat", NovaClass: 1, StandardPortionG: 120,
		Macros:   nutrition.MacroVector{Kcal: 107, ProteinG: 24.0, CarbG: 0, FatG: 1.0},
		Vitamins: map[string]float64{"b12": 0.5, "b6": 0.6}},
	{Key: "beef_lean", Category: "meat", NovaClass: 1, StandardPortionG: 120,
		Macros:   nutrition.MacroVector{Kcal: 131, ProteinG: 21.8, CarbG: 0, FatG: 4.6},
		Vitamins: map[string]float64{"b12": 2.0, "b6": 0.4}},
	{Key: "canned_tuna", Category: "fish", NovaClass: 3, StandardPortionG: 80,
		Macros:   nutrition.MacroVector{Kcal: 116, ProteinG: 25.5, CarbG: 0, FatG: 1.3},
		Vitamins: map[string]float64{"b12": 2.5, "d": 1.7}},
	{Key: "smoked_salmon", Category: "fish", NovaClass: 3, StandardPortionG: 100,
		Macros:   nutrition.MacroVector{Kcal: 147, ProteinG: 25.4, CarbG: 0, FatG: 4.5},
		Vitamins: map[string]float64{"b12": 3.0, "d": 11.0}},
	{Key: "cod", Category: "fish", NovaClass: 1, StandardPortionG: 150,
		Macros:   nutrition.MacroVector{Kcal: 82, ProteinG: 17.8, CarbG: 0, FatG: 0.7},
		Vitamins: map[string]float64{"b12": 0.9, "d": 0.9}},
	{Key: "eggs", Category: "eggs", NovaClass: 1, Discrete: true, UnitWeightG: 60,
		Macros:   nutrition.MacroVector{Kcal: 143, ProteinG: 12.5, CarbG: 0.7, FatG: 9.9},
		Vitamins: map[string]float64{"b12": 0.9, "d": 2.0, "a": 0.16}},
	{Key: "egg_white", Category: "eggs", NovaClass: 1,
		Macros: nutrition.MacroVector{Kcal: 52, ProteinG: 10.9, CarbG: 0.7, FatG: 0.2}},
	{Key: "rice", Category: "grains", NovaClass: 1, CookedYieldFactor: 2.5, StandardPortionG: 80,
		Macros: nutrition.MacroVector{Kcal: 358, ProteinG: 7.0, CarbG: 79.0, FatG: 0.6, FiberG: 1.0}},
	{Key: "brown_rice", Category: "grains", NovaClass: 1, CookedYieldFactor: 2.5, StandardPortionG: 80,
		Macros: nutrition.MacroVector{Kcal: 362, ProteinG: 7.5, CarbG: 76.0, FatG: 2.7, FiberG: 3.4}},
	{Key: "dry_pasta", Category: "grains", NovaClass: 1, CookedYieldFactor: 2.4, StandardPortionG: 80,
		Macros: nutrition.MacroVector{Kcal: 353, ProteinG: 12.0, CarbG: 71.0, FatG: 1.5, FiberG: 3.0}},
	{Key: "oats", Category: "grains", NovaClass: 1, CookedYieldFactor: 2.5, StandardPortionG: 40,
		Macros:   nutrition.MacroVector{Kcal: 389, ProteinG: 16.9, CarbG: 66.3, FatG: 6.9, FiberG: 10.6},
		Vitamins: map[string]float64{"b1": 0.76, "e": 0.7}},
	{Key: "quinoa", Category: "grains", NovaClass: 1, CookedYieldFactor: 2.8, StandardPortionG: 80,
		Macros: nutrition.MacroVector{Kcal: 368, ProteinG: 14.1, CarbG: 64.2, FatG: 6.1, FiberG: 7.0}},
	{Key: "white_bread", Category: "bread_bakery", NovaClass: 3, StandardPortionG: 50,
		Macros: nutrition.MacroVector{Kcal: 265, ProteinG: 9.0, CarbG: 49.0, FatG: 3.2, FiberG: 2.7}},
	{Key: "wholegrain_bread", Category: "bread_bakery", NovaClass: 3, StandardPortionG: 50,
		Macros: nutrition.MacroVector{Kcal: 247, ProteinG: 13.0, CarbG: 41.0, FatG: 3.4, FiberG: 7.0}},
	{Key: "potatoes", Category: "vegetables", NovaClass: 1, StandardPortionG: 200,
		Macros:   nutrition.MacroVector{Kcal: 77, ProteinG: 2.0, CarbG: 17.0, FatG: 0.1, FiberG: 2.2},
		Vitamins: map[string]float64{"c": 19.7, "b6": 0.3}},
	{Key: "vegetables", Category: "vegetables", NovaClass: 1, StandardPortionG: 200,
		Macros:   nutrition.MacroVector{Kcal: 25, ProteinG: 1.5, CarbG: 4.0, FatG: 0.3, FiberG: 2.5},
		Vitamins: map[string]float64{"c": 30, "a": 0.2, "folate": 60}},
	{Key: "lentils", Category: "legumes", NovaClass: 1, StandardPortionG: 150,
		Macros:   nutrition.MacroVector{Kcal: 116, ProteinG: 9.0, CarbG: 20.1, FatG: 0.4, FiberG: 7.9},
		Vitamins: map[string]float64{"folate": 181, "b1": 0.17}},
	{Key: "chickpeas", Category: "legumes", NovaClass: 1, StandardPortionG: 150,
		Macros:   nutrition.MacroVector{Kcal: 164, ProteinG: 8.9, CarbG: 27.4, FatG: 2.6, FiberG: 7.6},
		Vitamins: map[string]float64{"folate": 172}},
	{Key: "tofu", Category: "legumes", NovaClass: 3, StandardPortionG: 100,
		Macros: nutrition.MacroVector{Kcal: 76, ProteinG: 8.1, CarbG: 1.9, FatG: 4.8}},
	{Key: "whole_milk", Category: "dairy", NovaClass: 1, StandardPortionG: 125,
		Macros:   nutrition.MacroVector{Kcal: 64, ProteinG: 3.3, CarbG: 4.9, FatG: 3.6},
		Vitamins: map[string]float64{"b12": 0.4, "a": 0.04, "d": 0.1}},
	{Key: "skimmed_milk", Category: "dairy", NovaClass: 1, StandardPortionG: 125,
		Macros:   nutrition.MacroVector{Kcal: 34, ProteinG: 3.4, CarbG: 5.0, FatG: 0.1},
		Vitamins: map[string]float64{"b12": 0.4}},
	{Key: "greek_yogurt_0", Category: "dairy", NovaClass: 1, StandardPortionG: 125,
		Macros:   nutrition.MacroVector{Kcal: 57, ProteinG: 10.2, CarbG: 3.6, FatG: 0.2},
		Vitamins: map[string]float64{"b12": 0.5}},
	{Key: "ricotta", Category: "cheese", NovaClass: 1, StandardPortionG: 100,
		Macros: nutrition.MacroVector{Kcal: 146, ProteinG: 8.8, CarbG: 3.5, FatG: 10.9}},
	{Key: "mozzarella", Category: "cheese", NovaClass: 1, StandardPortionG: 100,
		Macros:   nutrition.MacroVector{Kcal: 253, ProteinG: 18.7, CarbG: 0.7, FatG: 19.5},
		Vitamins: map[string]float64{"b12": 1.4, "a": 0.22}},
	{Key: "parmigiano", Category: "cheese", NovaClass: 1, StandardPortionG: 30,
		Macros:   nutrition.MacroVector{Kcal: 392, ProteinG: 33.0, CarbG: 0, FatG: 28.4},
		Vitamins: map[string]float64{"b12": 1.7, "a": 0.27}},
	{Key: "whey_protein", Category: "supplements", NovaClass: 4, StandardPortionG: 30,
		Macros: nutrition.MacroVector{Kcal: 380, ProteinG: 80.0, CarbG: 8.0, FatG: 4.0}},
	{Key: "olive_oil", Category: "fats_oils", NovaClass: 2, StandardPortionG: 10,
		Macros:   nutrition.MacroVector{Kcal: 884, ProteinG: 0, CarbG: 0, FatG: 100},
		Vitamins: map[string]float64{"e": 14.4}},
	{Key: "peanut_butter", Category: "nuts_seeds", NovaClass: 3, StandardPortionG: 30,
		Macros:   nutrition.MacroVector{Kcal: 588, ProteinG: 25.1, CarbG: 19.6, FatG: 50.4, FiberG: 6.0},
		Vitamins: map[string]float64{"e": 9.1, "b3": 13.1}},
	{Key: "nuts", Category: "nuts_seeds", NovaClass: 1, StandardPortionG: 30,
		Macros:   nutrition.MacroVector{Kcal: 607, ProteinG: 20.0, CarbG: 10.0, FatG: 54.0, FiberG: 7.0},
		Vitamins: map[string]float64{"e": 15.0, "folate": 60}},
	{Key: "avocado", Category: "fruit", NovaClass: 1, StandardPortionG: 100,
		Macros:   nutrition.MacroVector{Kcal: 160, ProteinG: 2.0, CarbG: 8.5, FatG: 14.7, FiberG: 6.7},
		Vitamins: map[string]float64{"e": 2.1, "c": 10, "folate": 81}},
	{Key: "banana", Category: "fruit", NovaClass: 1, Discrete: true, UnitWeightG: 120,
		Macros:   nutrition.MacroVector{Kcal: 89, ProteinG: 1.1, CarbG: 22.8, FatG: 0.3, FiberG: 2.6},
		Vitamins: map[string]float64{"c": 8.7, "b6": 0.37}},
	{Key: "apple", Category: "fruit", NovaClass: 1, Discrete: true, UnitWeightG: 180,
		Macros:   nutrition.MacroVector{Kcal: 52, ProteinG: 0.3, CarbG: 13.8, FatG: 0.2, FiberG: 2.4},
		Vitamins: map[string]float64{"c": 4.6}},
	{Key: "mixed_berries", Category: "fruit", NovaClass: 1, StandardPortionG: 150,
		Macros:   nutrition.MacroVector{Kcal: 43, ProteinG: 1.0, CarbG: 9.6, FatG: 0.3, FiberG: 4.0},
		Vitamins: map[string]float64{"c": 28}},
	{Key: "dry_biscuits", Category: "sweets", NovaClass: 4, StandardPortionG: 30,
		Macros: nutrition.MacroVector{Kcal: 430, ProteinG: 7.0, CarbG: 75.0, FatG: 11.0, FiberG: 2.5}},
	{Key: "dark_chocolate", Category: "sweets", NovaClass: 4, StandardPortionG: 30,
		Macros: nutrition.MacroVector{Kcal: 546, ProteinG: 5.5, CarbG: 52.4, FatG: 34.9, FiberG: 8.0}},
	{Key: "honey", Category: "sweets", NovaClass: 2, StandardPortionG: 20,
		Macros: nutrition.MacroVector{Kcal: 304, ProteinG: 0.3, CarbG: 82.4, FatG: 0}},
}

// builtinActivities is the reference physical-activity catalogue, average
// energy cost per hour for a 70 kg adult at medium effort.
var builtinActivities = []nutrition.ActivityProfile{
	{Key: "running", Category: "endurance", KcalPerHour: 600, Description: "steady-state running, ~10 km/h"},
	{Key: "cycling", Category: "endurance", KcalPerHour: 500, Description: "road cycling, moderate pace"},
	{Key: "swimming", Category: "endurance", KcalPerHour: 500, Description: "freestyle lap swimming"},
	{Key: "rowing", Category: "endurance", KcalPerHour: 550, Description: "indoor rowing, steady pace"},
	{Key: "walking", Category: "endurance", KcalPerHour: 200, Description: "brisk walking, ~5 km/h"},
	{Key: "hiking", Category: "endurance", KcalPerHour: 350, Description: "hiking with light pack"},
	{Key: "weight_training", Category: "strength", KcalPerHour: 300, Description: "free weights and machines"},
	{Key: "crossfit", Category: "strength", KcalPerHour: 600, Description: "high-intensity functional training"},
	{Key: "climbing", Category: "strength", KcalPerHour: 500, Description: "indoor wall climbing"},
	{Key: "tennis", Category: "team_sports", KcalPerHour: 450, Description: "singles tennis"},
	{Key: "padel", Category: "team_sports", KcalPerHour: 400, Description: "doubles padel"},
	{Key: "football", Category: "team_sports", KcalPerHour: 500, Description: "11-a-side football"},
	{Key: "basketball", Category: "team_sports", KcalPerHour: 480, Description: "full-court basketball"},
	{Key: "volleyball", Category: "team_sports", KcalPerHour: 300, Description: "indoor volleyball"},
	{Key: "martial_arts", Category: "team_sports", KcalPerHour: 550, Description: "sparring and drills"},
	{Key: "boxing", Category: "team_sports", KcalPerHour: 650, Description: "bag work and sparring"},
	{Key: "yoga", Category: "flexibility", KcalPerHour: 180, Description: "hatha yoga session"},
	{Key: "pilates", Category: "flexibility", KcalPerHour: 200, Description: "mat pilates session"},
	{Key: "dancing", Category: "endurance", KcalPerHour: 330, Description: "general social dancing"},
	{Key: "skiing", Category: "endurance", KcalPerHour: 400, Description: "downhill skiing"},
}

// vitaminBracket is one age band of the reference-intake table; it covers
// ages up to and including maxAge.
type vitaminBracket struct {
	maxAge int
	refs   map[string]float64
}

// builtinVitaminReferences holds daily reference intakes per sex and age
// band. Vitamin D and B6 requirements rise for older adults. Units match the
// per-100g food values (mg for c/e/b-group, ug for b12/d, mg RAE for a,
// ug DFE for folate).
var builtinVitaminReferences = map[nutrition.Sex][]vitaminBracket{
	nutrition.Male: {
		{maxAge: 59, refs: map[string]float64{
			"a": 0.7, "b1": 1.2, "b3": 18, "b6": 1.3, "b12": 2.4,
			"c": 105, "d": 15, "e": 13, "folate": 400,
		}},
		{maxAge: 200, refs: map[string]float64{
			"a": 0.7, "b1": 1.2, "b3": 18, "b6": 1.7, "b12": 2.4,
			"c": 105, "d": 20, "e": 13, "folate": 400,
		}},
	},
	nutrition.Female: {
		{maxAge: 59, refs: map[string]float64{
			"a": 0.6, "b1": 1.1, "b3": 18, "b6": 1.3, "b12": 2.4,
			"c": 85, "d": 15, "e": 12, "folate": 400,
		}},
		{maxAge: 200, refs: map[string]float64{
			"a": 0.6, "b1": 1.1, "b3": 18, "b6": 1.5, "b12": 2.4,
			"c": 85, "d": 20, "e": 12, "folate": 400,
		}},
	},
}

// vitaminReferenceFor returns a copy of the reference table for the sex and
// age band, shared by every store implementation.
func vitaminReferenceFor(sex nutrition.Sex, ageYears int) map[string]float64 {
	brackets, ok := builtinVitaminReferences[sex]
	if !ok {
		return nil
	}
	for _, b := range brackets {
		if ageYears <= b.maxAge {
			out := make(map[string]float64, len(b.refs))
			for k, v := range b.refs {
				out[k] = v
			}
			return out
		}
	}
	return nil
}
