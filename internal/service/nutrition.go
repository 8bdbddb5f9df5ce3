package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nutriplan/backend/internal/nutrition"
)

// substituteCacheTTL bounds how long a substitution ranking is reused before
// the catalogue is scanned again.
const substituteCacheTTL = time.Hour

// NutritionService runs the calculators against a NutrientStore and caches
// the expensive substitution scans in Redis when a client is configured.
type NutritionService struct {
	store nutrition.NutrientStore
	cache *redis.Client
}

// NewNutritionService creates a new NutritionService instance. The Redis
// client is optional; without it every substitution call scans the store.
func NewNutritionService(store nutrition.NutrientStore, cache *redis.Client) *NutritionService {
	return &NutritionService{store: store, cache: cache}
}

func (s *NutritionService) EnergyRequirement(ctx context.Context, p nutrition.PersonProfile) (nutrition.EnergyRequirement, error) {
	return nutrition.ComputeEnergyRequirement(p)
}

func (s *NutritionService) SportExpenditure(ctx context.Context, sessions []nutrition.SportSession) (nutrition.SportExpenditureResult, error) {
	return nutrition.ComputeSportExpenditure(s.store, sessions)
}

func (s *NutritionService) ProteinRequirement(ctx context.Context, activities []nutrition.PracticedActivity, isVegan bool) (nutrition.ProteinRequirement, error) {
	return nutrition.ResolveProteinRequirement(activities, isVegan)
}

func (s *NutritionService) WeightGoal(ctx context.Context, kgChange, timeMonths float64, goal nutrition.GoalType, bmr float64) (nutrition.WeightGoalAdjustment, error) {
	return nutrition.ComputeWeightGoalAdjustment(kgChange, timeMonths, goal, bmr)
}

func (s *NutritionService) BMIAnalysis(ctx context.Context, p nutrition.PersonProfile) (nutrition.BMIAnalysis, error) {
	return nutrition.AnalyzeBMIAndGoal(p)
}

func (s *NutritionService) MacroAllocation(ctx context.Context, in nutrition.MacroAllocationInput) (nutrition.MacroAllocation, error) {
	return nutrition.AllocateMacronutrients(s.store, in)
}

func (s *NutritionService) MealDistribution(ctx context.Context, daily nutrition.DailyTargets, mealCount int, schedule []nutrition.MealSlot) ([]nutrition.MealTarget, error) {
	return nutrition.DistributeMeals(daily, mealCount, schedule)
}

func (s *NutritionService) OptimizeMeal(ctx context.Context, target nutrition.MealTarget, foods []string) (nutrition.OptimizationResult, error) {
	return nutrition.OptimizeMealPortions(s.store, target, foods)
}

// GetFood resolves a food name, aliases included.
func (s *NutritionService) GetFood(ctx context.Context, key string) (nutrition.FoodProfile, error) {
	f, ok := nutrition.ResolveFood(s.store, key)
	if !ok {
		return nutrition.FoodProfile{}, &nutrition.NotFoundError{Kind: "food", Keys: []string{key}}
	}
	return f, nil
}

// FindSubstitutes ranks calorie-equivalent alternatives, serving repeated
// queries from Redis. Cache failures fall through to the store scan.
func (s *NutritionService) FindSubstitutes(ctx context.Context, key string, grams float64, n int) ([]nutrition.SubstitutionCandidate, error) {
	cacheKey := fmt.Sprintf("substitutes:%s:%.1f:%d", key, grams, n)

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []nutrition.SubstitutionCandidate
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	subs, err := nutrition.FindSubstitutes(s.store, key, grams, n)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(subs); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, substituteCacheTTL).Err(); err != nil {
				log.Printf("substitute cache write failed: %v", err)
			}
		}
	}
	return subs, nil
}

// CookedWeight converts a raw weighed portion into its cooked weight.
func (s *NutritionService) CookedWeight(ctx context.Context, key string, rawGrams float64) (nutrition.CookedWeight, error) {
	return nutrition.ConvertRawToCooked(s.store, key, rawGrams)
}

func (s *NutritionService) UltraProcessedCheck(ctx context.Context, portions map[string]float64) (nutrition.UltraProcessedReport, error) {
	return nutrition.CheckUltraProcessed(s.store, portions)
}

func (s *NutritionService) VitaminCheck(ctx context.Context, sex nutrition.Sex, ageYears int, portions map[string]float64) (nutrition.VitaminIntakeReport, error) {
	return nutrition.CheckVitaminIntake(s.store, sex, ageYears, portions)
}
