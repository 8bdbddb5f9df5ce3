package nutrition

// NutrientStore is the read-only reference database the calculators query.
// Implementations must be safe for concurrent use; the core never writes.
type NutrientStore interface {
	// Food returns the profile stored under the exact canonical key.
	Food(key string) (FoodProfile, bool)
	// Activity returns the activity stored under the exact canonical key.
	Activity(key string) (ActivityProfile, bool)
	// Foods lists every food profile, for candidate scans.
	Foods() []FoodProfile
	// Activities lists every activity profile.
	Activities() []ActivityProfile

	// FiberBand returns the recommended daily fiber range in grams for a
	// given energy requirement (LARN-style g/1000 kcal rule).
	FiberBand(kcal float64) (minG, maxG float64)
	// LipidPercentRange returns the recommended fat share of total energy.
	LipidPercentRange() (minPct, maxPct float64)
	// CarbPercentRange returns the recommended carbohydrate share of total
	// energy.
	CarbPercentRange() (minPct, maxPct float64)
	// VitaminReference returns the daily reference intake per vitamin key
	// for the given sex and age bracket.
	VitaminReference(sex Sex, ageYears int) map[string]float64
}

// CandidatePrefilter is an optional store capability: backends that can rank
// foods by macro-space proximity (e.g. a pgvector-backed store) return a
// reduced candidate slice for the substitution matcher. Stores without the
// capability fall back to a full scan.
type CandidatePrefilter interface {
	NearestByMacros(ref MacroVector, limit int) []FoodProfile
}
