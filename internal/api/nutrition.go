package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/backend/internal/nutrition"
	"github.com/nutriplan/backend/internal/service"
)

type NutritionHandler struct {
	svc service.NutritionServiceInterface
}

func NewNutritionHandler(svc service.NutritionServiceInterface) *NutritionHandler {
	return &NutritionHandler{svc: svc}
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	n := router.Group("/nutrition")
	{
		n.POST("/energy-requirement", h.EnergyRequirement)
		n.POST("/sport-expenditure", h.SportExpenditure)
		n.POST("/protein-multiplier", h.ProteinMultiplier)
		n.POST("/weight-goal", h.WeightGoal)
		n.POST("/bmi-analysis", h.BMIAnalysis)
		n.POST("/macro-allocation", h.MacroAllocation)
		n.POST("/meal-distribution", h.MealDistribution)
		n.POST("/meal-optimization", h.MealOptimization)
		n.POST("/nova-check", h.NovaCheck)
		n.POST("/vitamin-check", h.VitaminCheck)
	}

	foods := router.Group("/foods")
	{
		foods.GET("/:key", h.GetFood)
		foods.GET("/:key/substitutes", h.FindSubstitutes)
		foods.GET("/:key/cooked-weight", h.CookedWeight)
	}
}

// respondError maps the calculator error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var validation *nutrition.ValidationError
	var notFound *nutrition.NotFoundError
	var incomplete *nutrition.DataIncompleteError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "field": validation.Field})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error(), "not_found": notFound.Keys})
	case errors.As(err, &incomplete):
		c.JSON(http.StatusBadRequest, gin.H{"error": incomplete.Error(), "missing": incomplete.Missing})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

type energyRequest struct {
	Sex           nutrition.Sex           `json:"sex" binding:"required"`
	AgeYears      int                     `json:"age_years" binding:"required"`
	WeightKg      float64                 `json:"weight_kg" binding:"required"`
	HeightCm      float64                 `json:"height_cm" binding:"required"`
	ActivityLevel nutrition.ActivityLevel `json:"activity_level"`
}

func (h *NutritionHandler) EnergyRequirement(c *gin.Context) {
	var req energyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.EnergyRequirement(c.Request.Context(), nutrition.PersonProfile{
		Sex:           req.Sex,
		AgeYears:      req.AgeYears,
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		ActivityLevel: req.ActivityLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type sportExpenditureRequest struct {
	Activities []nutrition.SportSession `json:"activities" binding:"required"`
}

func (h *NutritionHandler) SportExpenditure(c *gin.Context) {
	var req sportExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.SportExpenditure(c.Request.Context(), req.Activities)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type proteinRequest struct {
	Activities []nutrition.PracticedActivity `json:"activities"`
	IsVegan    bool                          `json:"is_vegan"`
}

func (h *NutritionHandler) ProteinMultiplier(c *gin.Context) {
	var req proteinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.ProteinRequirement(c.Request.Context(), req.Activities, req.IsVegan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type weightGoalRequest struct {
	KgChange   float64            `json:"kg_change" binding:"required"`
	TimeMonths float64            `json:"time_months" binding:"required"`
	GoalType   nutrition.GoalType `json:"goal_type" binding:"required"`
	BMR        float64            `json:"bmr"`
}

func (h *NutritionHandler) WeightGoal(c *gin.Context) {
	var req weightGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.WeightGoal(c.Request.Context(), req.KgChange, req.TimeMonths, req.GoalType, req.BMR)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type bmiRequest struct {
	Sex      nutrition.Sex      `json:"sex"`
	AgeYears int                `json:"age_years" binding:"required"`
	WeightKg float64            `json:"weight_kg" binding:"required"`
	HeightCm float64            `json:"height_cm" binding:"required"`
	Goal     nutrition.GoalType `json:"goal" binding:"required"`
}

func (h *NutritionHandler) BMIAnalysis(c *gin.Context) {
	var req bmiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.BMIAnalysis(c.Request.Context(), nutrition.PersonProfile{
		Sex:      req.Sex,
		AgeYears: req.AgeYears,
		WeightKg: req.WeightKg,
		HeightCm: req.HeightCm,
		Goal:     req.Goal,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *NutritionHandler) MacroAllocation(c *gin.Context) {
	var req nutrition.MacroAllocationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.MacroAllocation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type mealDistributionRequest struct {
	Daily     nutrition.DailyTargets `json:"daily" binding:"required"`
	MealCount int                    `json:"meal_count"`
	Schedule  []nutrition.MealSlot   `json:"schedule"`
}

func (h *NutritionHandler) MealDistribution(c *gin.Context) {
	var req mealDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.MealDistribution(c.Request.Context(), req.Daily, req.MealCount, req.Schedule)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": result})
}

type mealOptimizationRequest struct {
	Target nutrition.MealTarget `json:"target" binding:"required"`
	Foods  []string             `json:"foods" binding:"required"`
}

// MealOptimization returns 200 with success=false for infeasible targets;
// only malformed input and unresolved foods map to error statuses.
func (h *NutritionHandler) MealOptimization(c *gin.Context) {
	var req mealOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.OptimizeMeal(c.Request.Context(), req.Target, req.Foods)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *NutritionHandler) GetFood(c *gin.Context) {
	food, err := h.svc.GetFood(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *NutritionHandler) FindSubstitutes(c *gin.Context) {
	grams, err := strconv.ParseFloat(c.DefaultQuery("grams", "100"), 64)
	if err != nil || grams <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grams must be a positive number"})
		return
	}
	n, err := strconv.Atoi(c.DefaultQuery("n", "5"))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
		return
	}

	subs, err := h.svc.FindSubstitutes(c.Request.Context(), c.Param("key"), grams, n)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"substitutes": subs})
}

func (h *NutritionHandler) CookedWeight(c *gin.Context) {
	grams, err := strconv.ParseFloat(c.DefaultQuery("grams", "100"), 64)
	if err != nil || grams <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grams must be a positive number"})
		return
	}
	result, err := h.svc.CookedWeight(c.Request.Context(), c.Param("key"), grams)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type novaCheckRequest struct {
	Portions map[string]float64 `json:"portions" binding:"required"`
}

func (h *NutritionHandler) NovaCheck(c *gin.Context) {
	var req novaCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.UltraProcessedCheck(c.Request.Context(), req.Portions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type vitaminCheckRequest struct {
	Sex      nutrition.Sex      `json:"sex" binding:"required"`
	AgeYears int                `json:"age_years" binding:"required"`
	Portions map[string]float64 `json:"portions" binding:"required"`
}

func (h *NutritionHandler) VitaminCheck(c *gin.Context) {
	var req vitaminCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.VitaminCheck(c.Request.Context(), req.Sex, req.AgeYears, req.Portions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
