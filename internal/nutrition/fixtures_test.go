package nutrition

// fixtureStore is a small static NutrientStore used across the package tests.
type fixtureStore struct {
	foods      map[string]FoodProfile
	activities map[string]ActivityProfile
}

func newFixtureStore() *fixtureStore {
	s := &fixtureStore{
		foods:      map[string]FoodProfile{},
		activities: map[string]ActivityProfile{},
	}
	for _, f := range []FoodProfile{
		{Key: "chicken_breast", Category: "meat", Macros: MacroVector{Kcal: 110, ProteinG: 23, CarbG: 0, FatG: 1.5},
			Vitamins: map[string]float64{"b12": 0.4, "d": 0.1}},
		{Key: "rice", Category: "grains", CookedYieldFactor: 2.5, StandardPortionG: 80,
			Macros: MacroVector{Kcal: 358, ProteinG: 7, CarbG: 79, FatG: 0.6}},
		{Key: "dry_pasta", Category: "grains", CookedYieldFactor: 2.4, StandardPortionG: 80,
			Macros: MacroVector{Kcal: 353, ProteinG: 12, CarbG: 71, FatG: 1.5}},
		{Key: "oats", Category: "grains", Macros: MacroVector{Kcal: 389, ProteinG: 16.9, CarbG: 66, FatG: 6.9, FiberG: 10.6}},
		{Key: "olive_oil", Category: "fats_oils", Macros: MacroVector{Kcal: 884, ProteinG: 0, CarbG: 0, FatG: 100}},
		{Key: "vegetables", Category: "vegetables", Macros: MacroVector{Kcal: 25, ProteinG: 1.5, CarbG: 4, FatG: 0.3, FiberG: 2.5},
			Vitamins: map[string]float64{"c": 30, "a": 0.2}},
		{Key: "eggs", Category: "eggs", Discrete: true, UnitWeightG: 60,
			Macros:   MacroVector{Kcal: 143, ProteinG: 12.5, CarbG: 0.7, FatG: 9.9},
			Vitamins: map[string]float64{"b12": 0.9, "d": 2.0}},
		{Key: "greek_yogurt_0", Category: "dairy", Macros: MacroVector{Kcal: 57, ProteinG: 10, CarbG: 4, FatG: 0.2}},
		{Key: "whey_protein", Category: "supplements", NovaClass: 4,
			Macros: MacroVector{Kcal: 380, ProteinG: 80, CarbG: 8, FatG: 4}},
		{Key: "dry_biscuits", Category: "sweets", NovaClass: 4,
			Macros: MacroVector{Kcal: 430, ProteinG: 7, CarbG: 75, FatG: 11}},
		{Key: "canned_tuna", Category: "fish", Macros: MacroVector{Kcal: 116, ProteinG: 25.5, CarbG: 0, FatG: 1.3},
			Vitamins: map[string]float64{"b12": 2.5, "d": 1.7}},
	} {
		s.foods[f.Key] = f
	}
	for _, a := range []ActivityProfile{
		{Key: "running", Category: "endurance", KcalPerHour: 600},
		{Key: "swimming", Category: "endurance", KcalPerHour: 500},
		{Key: "weight_training", Category: "strength", KcalPerHour: 300},
		{Key: "walking", Category: "endurance", KcalPerHour: 200},
	} {
		s.activities[a.Key] = a
	}
	return s
}

func (s *fixtureStore) Food(key string) (FoodProfile, bool) {
	f, ok := s.foods[key]
	return f, ok
}

func (s *fixtureStore) Activity(key string) (ActivityProfile, bool) {
	a, ok := s.activities[key]
	return a, ok
}

func (s *fixtureStore) Foods() []FoodProfile {
	out := make([]FoodProfile, 0, len(s.foods))
	for _, f := range s.foods {
		out = append(out, f)
	}
	return out
}

func (s *fixtureStore) Activities() []ActivityProfile {
	out := make([]ActivityProfile, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, a)
	}
	return out
}

func (s *fixtureStore) FiberBand(kcal float64) (float64, float64) {
	if kcal < 2000 {
		return 25, 25
	}
	return 12.6 * kcal / 1000, 16.6 * kcal / 1000
}

func (s *fixtureStore) LipidPercentRange() (float64, float64) { return 20, 35 }

func (s *fixtureStore) CarbPercentRange() (float64, float64) { return 45, 60 }

func (s *fixtureStore) VitaminReference(sex Sex, ageYears int) map[string]float64 {
	return map[string]float64{"b12": 2.4, "c": 90, "d": 15, "a": 0.7}
}
