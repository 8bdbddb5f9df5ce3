package nutrition

import "fmt"

// PracticedActivity is one training discipline considered when resolving the
// protein requirement.
type PracticedActivity struct {
	Type      string    `json:"type"`
	Intensity Intensity `json:"intensity,omitempty"`
}

// ProteinRequirement is a g/kg multiplier, optionally with the band it was
// resolved from.
type ProteinRequirement struct {
	Base        float64     `json:"base"`
	Range       *[2]float64 `json:"range,omitempty"`
	Description string      `json:"description"`
}

type proteinEntry struct {
	base        float64
	rng         *[2]float64
	description string
}

// proteinByActivity holds the g/kg requirement per training discipline.
var proteinByActivity = map[string]proteinEntry{
	"sedentary":         {base: 0.9, description: "sedentary baseline intake"},
	"fitness":           {base: 1.0, rng: &[2]float64{0.8, 1.2}, description: "general fitness training"},
	"bodybuilding_mass": {base: 1.8, rng: &[2]float64{1.6, 2.0}, description: "bodybuilding, mass phase"},
	"bodybuilding_cut":  {base: 2.2, rng: &[2]float64{2.0, 2.5}, description: "bodybuilding, cutting phase"},
	"strength":          {base: 1.7, rng: &[2]float64{1.6, 2.0}, description: "strength sports (powerlifting, weightlifting)"},
	"endurance":         {base: 1.4, rng: &[2]float64{1.2, 1.6}, description: "endurance sports (running, cycling, swimming)"},
	"team_sports":       {base: 1.4, rng: &[2]float64{1.2, 1.7}, description: "intermittent team and racket sports"},
}

// proteinActivityAliases maps verbose questionnaire labels to table keys.
var proteinActivityAliases = map[string]string{
	"fitness_general":         "fitness",
	"bodybuilding":            "bodybuilding_mass",
	"bodybuilding_bulk":       "bodybuilding_mass",
	"bodybuilding_definition": "bodybuilding_cut",
	"powerlifting":            "strength",
	"weightlifting":           "strength",
	"running":                 "endurance",
	"cycling":                 "endurance",
	"swimming":                "endurance",
	"triathlon":               "endurance",
	"tennis":                  "team_sports",
	"football":                "team_sports",
	"volleyball":              "team_sports",
	"martial_arts":            "team_sports",
	"none":                    "sedentary",
}

// VeganProteinSupplement is the flat g/kg surcharge applied for plant-based
// diets, on the resolved value and on both range bounds.
const VeganProteinSupplement = 0.25

// ResolveProteinRequirement picks the g/kg multiplier for a set of practiced
// activities. The activity with the highest base requirement becomes primary;
// hard intensity (its own, or any other listed activity's) selects the range
// maximum, easy selects the minimum, medium keeps the base. The vegan
// supplement is added after intensity resolution. An empty activity list
// falls back to the sedentary baseline.
func ResolveProteinRequirement(activities []PracticedActivity, isVegan bool) (ProteinRequirement, error) {
	var primary *proteinEntry
	var primaryIntensity Intensity
	otherHard := false

	for _, a := range activities {
		key := normalizeKey(a.Type)
		if alias, ok := proteinActivityAliases[key]; ok {
			key = alias
		}
		entry, ok := proteinByActivity[key]
		if !ok {
			return ProteinRequirement{}, invalidf("activity_type", "unrecognized type %q", a.Type)
		}
		intensity := a.Intensity
		if intensity == "" {
			intensity = IntensityMedium
		}
		if primary == nil || entry.base > primary.base {
			if primary != nil && primaryIntensity == IntensityHard {
				otherHard = true
			}
			e := entry
			primary = &e
			primaryIntensity = intensity
		} else if intensity == IntensityHard {
			otherHard = true
		}
	}

	if primary == nil {
		e := proteinByActivity["sedentary"]
		primary = &e
		primaryIntensity = IntensityMedium
	}

	result := ProteinRequirement{Base: primary.base, Description: primary.description}
	if primary.rng != nil {
		rng := *primary.rng
		switch {
		case primaryIntensity == IntensityHard || otherHard:
			result.Base = rng[1]
		case primaryIntensity == IntensityEasy:
			result.Base = rng[0]
		}
		result.Range = &rng
		result.Description = fmt.Sprintf("%s (%s intensity)", result.Description, primaryIntensity)
	}

	if isVegan {
		result.Base += VeganProteinSupplement
		if result.Range != nil {
			rng := [2]float64{result.Range[0] + VeganProteinSupplement, result.Range[1] + VeganProteinSupplement}
			result.Range = &rng
		}
		result.Description += ", vegan supplement included"
	}

	return result, nil
}
