package nutrition

// Vitamin adequacy thresholds as a share of the daily reference intake.
const (
	vitaminInsufficientPct = 70
	vitaminExcessivePct    = 300
)

// VitaminStatus classifies one vitamin's intake against its reference.
type VitaminStatus string

const (
	VitaminInsufficient VitaminStatus = "insufficient"
	VitaminAdequate     VitaminStatus = "adequate"
	VitaminExcessive    VitaminStatus = "excessive"
)

// VitaminAssessment is the verdict for a single vitamin.
type VitaminAssessment struct {
	Intake       float64       `json:"intake"`
	Reference    float64       `json:"reference"`
	PctReference float64       `json:"pct_of_reference"`
	Status       VitaminStatus `json:"status"`
}

// VitaminIntakeReport aggregates the day's vitamin totals from the eaten
// portions and grades each against the sex- and age-specific reference.
type VitaminIntakeReport struct {
	Assessments  map[string]VitaminAssessment `json:"assessments"`
	Insufficient []string                     `json:"insufficient,omitempty"`
	Excessive    []string                     `json:"excessive,omitempty"`
}

// CheckVitaminIntake sums vitamin content across the given portions and
// compares each vitamin to its daily reference for the subject. Intake below
// 70% of the reference is insufficient, above 300% excessive. Vitamins absent
// from both the foods and the reference table are skipped.
func CheckVitaminIntake(store NutrientStore, sex Sex, ageYears int, portions map[string]float64) (VitaminIntakeReport, error) {
	if sex != Male && sex != Female {
		return VitaminIntakeReport{}, invalidf("sex", "must be %q or %q", Male, Female)
	}
	if ageYears <= 0 {
		return VitaminIntakeReport{}, invalidf("age_years", "must be positive")
	}

	names := make([]string, 0, len(portions))
	for name := range portions {
		names = append(names, name)
	}
	resolved, missing := resolveFoodKeys(store, names)
	if len(missing) > 0 {
		return VitaminIntakeReport{}, &NotFoundError{Kind: "food", Keys: missing}
	}

	references := store.VitaminReference(sex, ageYears)
	if len(references) == 0 {
		return VitaminIntakeReport{}, &DataIncompleteError{Missing: []string{"vitamin_references"}}
	}

	totals := make(map[string]float64)
	for name, f := range resolved {
		grams := portions[name]
		if grams <= 0 {
			return VitaminIntakeReport{}, invalidf("portions", "portion for %q must be positive", name)
		}
		for vit, per100 := range f.Vitamins {
			totals[vit] += per100 * grams / 100
		}
	}

	report := VitaminIntakeReport{Assessments: make(map[string]VitaminAssessment, len(references))}
	for vit, ref := range references {
		if ref <= 0 {
			continue
		}
		intake := totals[vit]
		pct := round1(intake / ref * 100)
		a := VitaminAssessment{
			Intake:       round1(intake),
			Reference:    ref,
			PctReference: pct,
			Status:       VitaminAdequate,
		}
		switch {
		case pct < vitaminInsufficientPct:
			a.Status = VitaminInsufficient
			report.Insufficient = append(report.Insufficient, vit)
		case pct > vitaminExcessivePct:
			a.Status = VitaminExcessive
			report.Excessive = append(report.Excessive, vit)
		}
		report.Assessments[vit] = a
	}
	return report, nil
}
