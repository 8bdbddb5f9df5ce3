package nutrition

// ultraProcessedMassShare is the share of a day's food mass above which the
// NOVA class 4 content is flagged.
const ultraProcessedMassShare = 0.20

// NovaClassUltraProcessed marks industrially formulated foods in the NOVA
// classification.
const NovaClassUltraProcessed = 4

// UltraProcessedReport summarizes the NOVA class 4 content of a food list.
type UltraProcessedReport struct {
	TotalMassG          float64  `json:"total_mass_g"`
	UltraProcessedMassG float64  `json:"ultra_processed_mass_g"`
	SharePct            float64  `json:"share_pct"`
	Flagged             bool     `json:"flagged"`
	UltraProcessedFoods []string `json:"ultra_processed_foods,omitempty"`
}

// CheckUltraProcessed measures the mass share of ultra-processed foods in a
// day's intake and flags it above the 20% threshold. Unresolvable names abort
// with a NotFoundError listing all of them.
func CheckUltraProcessed(store NutrientStore, portions map[string]float64) (UltraProcessedReport, error) {
	names := make([]string, 0, len(portions))
	for name := range portions {
		names = append(names, name)
	}
	resolved, missing := resolveFoodKeys(store, names)
	if len(missing) > 0 {
		return UltraProcessedReport{}, &NotFoundError{Kind: "food", Keys: missing}
	}

	var report UltraProcessedReport
	for name, f := range resolved {
		grams := portions[name]
		if grams <= 0 {
			return UltraProcessedReport{}, invalidf("portions", "portion for %q must be positive", name)
		}
		report.TotalMassG += grams
		if f.NovaClass == NovaClassUltraProcessed {
			report.UltraProcessedMassG += grams
			report.UltraProcessedFoods = append(report.UltraProcessedFoods, f.Key)
		}
	}
	if report.TotalMassG > 0 {
		share := report.UltraProcessedMassG / report.TotalMassG
		report.SharePct = round1(share * 100)
		report.Flagged = share > ultraProcessedMassShare
	}
	return report, nil
}
