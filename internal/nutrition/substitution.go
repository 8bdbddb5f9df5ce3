package nutrition

import (
	"math"
	"sort"
)

// Substitution matcher parameters.
const (
	equivalentGramStep = 0.1  // equivalent portions are rounded to 0.1 g
	kcalMatchTolerance = 0.01 // a candidate must match reference kcal within 1%
	prefilterFactor    = 4    // candidates asked from a prefiltering store, per requested result
)

// FindSubstitutes ranks foods that can replace refName at the given portion
// while delivering the same energy. Each candidate's equivalent portion is
// sized to the reference kcal and rounded to 0.1 g; candidates whose rounded
// portion misses the reference energy by more than 1% are discarded. The
// remaining candidates are ordered by macro-profile similarity and the best n
// are returned. Fewer than n viable candidates yields a shorter list, not an
// error.
func FindSubstitutes(store NutrientStore, refName string, grams float64, n int) ([]SubstitutionCandidate, error) {
	if grams <= 0 {
		return nil, invalidf("grams", "must be positive")
	}
	if n <= 0 {
		return nil, invalidf("n", "must be positive")
	}

	ref, ok := ResolveFood(store, refName)
	if !ok {
		return nil, &NotFoundError{Kind: "food", Keys: []string{refName}}
	}

	refIntake := ref.Macros.Scale(grams)
	if refIntake.Kcal <= 0 {
		return nil, invalidf("food", "reference food carries no energy at this portion")
	}
	refShares := kcalShares(ref.Macros)

	candidates := candidatePool(store, ref.Macros, n)

	results := make([]SubstitutionCandidate, 0, len(candidates))
	for _, f := range candidates {
		if f.Key == ref.Key || f.Macros.Kcal <= 0 {
			continue
		}
		eq := refIntake.Kcal / (f.Macros.Kcal / 100)
		eq = math.Round(eq/equivalentGramStep) * equivalentGramStep
		intake := f.Macros.Scale(eq)
		dev := (intake.Kcal - refIntake.Kcal) / refIntake.Kcal
		if math.Abs(dev) > kcalMatchTolerance {
			continue
		}
		results = append(results, SubstitutionCandidate{
			Key:              f.Key,
			EquivalentGrams:  math.Round(eq*10) / 10,
			KcalDeviationPct: math.Round(dev*1000) / 10,
			SimilarityScore:  macroSimilarity(refShares, kcalShares(f.Macros)),
			Macros:           roundVector(intake),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].SimilarityScore != results[j].SimilarityScore {
			return results[i].SimilarityScore > results[j].SimilarityScore
		}
		return results[i].Key < results[j].Key
	})
	if len(results) > n {
		results = results[:n]
	}
	return results, nil
}

// candidatePool uses the store's macro-space prefilter when it has one, and
// falls back to a full catalogue scan otherwise.
func candidatePool(store NutrientStore, ref MacroVector, n int) []FoodProfile {
	if pf, ok := store.(CandidatePrefilter); ok {
		// Over-fetch so the kcal-match filter still leaves enough candidates.
		if c := pf.NearestByMacros(ref, n*prefilterFactor+1); len(c) > 0 {
			return c
		}
	}
	return store.Foods()
}

// kcalShares maps a per-100g profile to the fraction of its energy carried by
// each macronutrient.
func kcalShares(m MacroVector) [3]float64 {
	p := m.ProteinG * KcalPerGramProtein
	c := m.CarbG * KcalPerGramCarb
	f := m.FatG * KcalPerGramFat
	total := p + c + f
	if total <= 0 {
		return [3]float64{}
	}
	return [3]float64{p / total, c / total, f / total}
}

// macroSimilarity scores how close two energy-share vectors are, 1 being an
// identical profile and 0 a maximally different one.
func macroSimilarity(a, b [3]float64) float64 {
	var dist float64
	for i := range a {
		d := a[i] - b[i]
		dist += d * d
	}
	// Shares live on the simplex, so the distance is at most sqrt(2).
	score := 1 - math.Sqrt(dist)/math.Sqrt2
	return math.Round(math.Max(score, 0)*1000) / 1000
}
