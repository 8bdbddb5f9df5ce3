package service

import (
	"context"

	"github.com/nutriplan/backend/internal/nutrition"
)

// NutritionServiceInterface is the surface the HTTP layer depends on.
type NutritionServiceInterface interface {
	EnergyRequirement(ctx context.Context, p nutrition.PersonProfile) (nutrition.EnergyRequirement, error)
	SportExpenditure(ctx context.Context, sessions []nutrition.SportSession) (nutrition.SportExpenditureResult, error)
	ProteinRequirement(ctx context.Context, activities []nutrition.PracticedActivity, isVegan bool) (nutrition.ProteinRequirement, error)
	WeightGoal(ctx context.Context, kgChange, timeMonths float64, goal nutrition.GoalType, bmr float64) (nutrition.WeightGoalAdjustment, error)
	BMIAnalysis(ctx context.Context, p nutrition.PersonProfile) (nutrition.BMIAnalysis, error)
	MacroAllocation(ctx context.Context, in nutrition.MacroAllocationInput) (nutrition.MacroAllocation, error)
	MealDistribution(ctx context.Context, daily nutrition.DailyTargets, mealCount int, schedule []nutrition.MealSlot) ([]nutrition.MealTarget, error)
	OptimizeMeal(ctx context.Context, target nutrition.MealTarget, foods []string) (nutrition.OptimizationResult, error)
	GetFood(ctx context.Context, key string) (nutrition.FoodProfile, error)
	FindSubstitutes(ctx context.Context, key string, grams float64, n int) ([]nutrition.SubstitutionCandidate, error)
	CookedWeight(ctx context.Context, key string, rawGrams float64) (nutrition.CookedWeight, error)
	UltraProcessedCheck(ctx context.Context, portions map[string]float64) (nutrition.UltraProcessedReport, error)
	VitaminCheck(ctx context.Context, sex nutrition.Sex, ageYears int, portions map[string]float64) (nutrition.VitaminIntakeReport, error)
}
