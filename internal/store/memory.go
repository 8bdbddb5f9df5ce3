package store

import (
	"sort"

	"github.com/nutriplan/backend/internal/nutrition"
)

// Fiber and macro-share reference bands (LARN-style rules).
const (
	fiberMinPer1000Kcal = 12.6
	fiberMaxPer1000Kcal = 16.6
	fiberFloorG         = 25
	fiberFloorBelowKcal = 2000

	lipidMinPct = 20
	lipidMaxPct = 35
	carbMinPct  = 45
	carbMaxPct  = 60
)

// MemoryStore is an immutable in-memory NutrientStore backed by the built-in
// reference catalogue. It needs no external services and is safe for
// concurrent reads.
type MemoryStore struct {
	foods      map[string]nutrition.FoodProfile
	activities map[string]nutrition.ActivityProfile
}

// NewMemoryStore builds a store over the built-in catalogue.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWith(builtinFoods, builtinActivities)
}

// NewMemoryStoreWith builds a store over explicit catalogues, used by tests
// and by callers that load their own data.
func NewMemoryStoreWith(foods []nutrition.FoodProfile, activities []nutrition.ActivityProfile) *MemoryStore {
	s := &MemoryStore{
		foods:      make(map[string]nutrition.FoodProfile, len(foods)),
		activities: make(map[string]nutrition.ActivityProfile, len(activities)),
	}
	for _, f := range foods {
		s.foods[f.Key] = f
	}
	for _, a := range activities {
		s.activities[a.Key] = a
	}
	return s
}

func (s *MemoryStore) Food(key string) (nutrition.FoodProfile, bool) {
	f, ok := s.foods[key]
	return f, ok
}

func (s *MemoryStore) Activity(key string) (nutrition.ActivityProfile, bool) {
	a, ok := s.activities[key]
	return a, ok
}

func (s *MemoryStore) Foods() []nutrition.FoodProfile {
	out := make([]nutrition.FoodProfile, 0, len(s.foods))
	for _, f := range s.foods {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (s *MemoryStore) Activities() []nutrition.ActivityProfile {
	out := make([]nutrition.ActivityProfile, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// FiberBand applies the g/1000 kcal rule with an absolute floor for low
// energy requirements.
func (s *MemoryStore) FiberBand(kcal float64) (float64, float64) {
	if kcal < fiberFloorBelowKcal {
		return fiberFloorG, fiberFloorG
	}
	return fiberMinPer1000Kcal * kcal / 1000, fiberMaxPer1000Kcal * kcal / 1000
}

func (s *MemoryStore) LipidPercentRange() (float64, float64) {
	return lipidMinPct, lipidMaxPct
}

func (s *MemoryStore) CarbPercentRange() (float64, float64) {
	return carbMinPct, carbMaxPct
}

func (s *MemoryStore) VitaminReference(sex nutrition.Sex, ageYears int) map[string]float64 {
	return vitaminReferenceFor(sex, ageYears)
}
