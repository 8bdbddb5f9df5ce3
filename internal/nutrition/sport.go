package nutrition

import "math"

// SportSession is one practiced activity with its weekly volume.
type SportSession struct {
	Name      string    `json:"name"`
	HoursWeek float64   `json:"hours"`
	Intensity Intensity `json:"intensity,omitempty"`
}

// SportExpenditure is the per-activity breakdown of one expenditure call.
type SportExpenditure struct {
	Activity    string  `json:"activity"`
	Category    string  `json:"category"`
	KcalPerHour int     `json:"kcal_per_hour"`
	HoursWeek   float64 `json:"hours_per_week"`
	KcalPerWeek int     `json:"kcal_per_week"`
	KcalPerDay  int     `json:"kcal_per_day"`
}

// SportExpenditureResult totals the daily and weekly energy cost of the
// supplied activities.
type SportExpenditureResult struct {
	PerActivity      []SportExpenditure `json:"per_activity"`
	TotalKcalPerWeek int                `json:"total_kcal_per_week"`
	TotalKcalPerDay  int                `json:"total_kcal_per_day"`
}

var intensityMultiplier = map[Intensity]float64{
	IntensityEasy:   0.8,
	IntensityMedium: 1.0,
	IntensityHard:   1.2,
}

// ComputeSportExpenditure converts practiced activities into average kcal
// burned per day. Activity names resolve fuzzily against the store; every
// unresolved name is collected before failing so the caller sees the full
// list. Rounding is applied both per activity and on the totals.
func ComputeSportExpenditure(store NutrientStore, sessions []SportSession) (SportExpenditureResult, error) {
	if len(sessions) == 0 {
		return SportExpenditureResult{}, invalidf("activities", "at least one activity is required")
	}

	var result SportExpenditureResult
	var missing []string
	var weekTotal, dayTotal float64

	for _, s := range sessions {
		if s.HoursWeek <= 0 {
			return SportExpenditureResult{}, invalidf("hours", "must be positive for %q", s.Name)
		}
		profile, ok := ResolveActivity(store, s.Name)
		if !ok {
			missing = append(missing, s.Name)
			continue
		}

		intensity := s.Intensity
		if intensity == "" {
			intensity = IntensityMedium
		}
		mult, ok := intensityMultiplier[intensity]
		if !ok {
			return SportExpenditureResult{}, invalidf("intensity", "unknown value %q", s.Intensity)
		}

		kcalHour := profile.KcalPerHour * mult
		kcalWeek := kcalHour * s.HoursWeek
		kcalDay := kcalWeek / 7

		result.PerActivity = append(result.PerActivity, SportExpenditure{
			Activity:    profile.Key,
			Category:    profile.Category,
			KcalPerHour: int(math.Round(kcalHour)),
			HoursWeek:   s.HoursWeek,
			KcalPerWeek: int(math.Round(kcalWeek)),
			KcalPerDay:  int(math.Round(kcalDay)),
		})
		weekTotal += kcalWeek
		dayTotal += kcalDay
	}

	if len(missing) > 0 {
		return SportExpenditureResult{}, &NotFoundError{Kind: "activity", Keys: missing}
	}

	result.TotalKcalPerWeek = int(math.Round(weekTotal))
	result.TotalKcalPerDay = int(math.Round(dayTotal))
	return result, nil
}
