package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriplan/backend/internal/service"
	"github.com/nutriplan/backend/internal/store"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := service.NewNutritionService(store.NewMemoryStore(), nil)
	NewNutritionHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestEnergyRequirementEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("should return the computed requirement", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/nutrition/energy-requirement", gin.H{
			"sex": "male", "age_years": 30, "weight_kg": 70, "height_cm": 175,
			"activity_level": "very_active",
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, 1695.0, body["bmr"])
		assert.Equal(t, 2966.0, body["tdee"])
	})

	t.Run("should reject a missing weight", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/nutrition/energy-requirement", gin.H{
			"sex": "male", "age_years": 30, "height_cm": 175,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSportExpenditureEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("should total the practiced activities", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/nutrition/sport-expenditure", gin.H{
			"activities": []gin.H{{"name": "weight_training", "hours": 3}},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, 129.0, body["total_kcal_per_day"])
	})

	t.Run("should 404 with every unresolved activity", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/nutrition/sport-expenditure", gin.H{
			"activities": []gin.H{
				{"name": "running", "hours": 2},
				{"name": "quidditch", "hours": 1},
			},
		})
		require.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, []interface{}{"quidditch"}, body["not_found"])
	})
}

func TestWeightGoalEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/nutrition/weight-goal", gin.H{
		"kg_change": 5, "time_months": 6, "goal_type": "loss",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, -214.0, body["daily_calorie_adjustment"])
}

func TestProteinMultiplierEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/nutrition/protein-multiplier", gin.H{
		"activities": []gin.H{{"type": "bodybuilding_mass", "intensity": "hard"}},
		"is_vegan":   true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 2.25, body["base"])
}

func TestBMIAnalysisEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/nutrition/bmi-analysis", gin.H{
		"sex": "male", "age_years": 30, "weight_kg": 100, "height_cm": 175, "goal": "gain",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "obese", body["category"])
	assert.Equal(t, false, body["goal_coherent"])
}

func TestMacroAllocationEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/nutrition/macro-allocation", gin.H{
		"total_kcal": 2500, "weight_kg": 70, "protein_g_per_kg": 1.8,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 126.0, body["protein_g"])
}

func TestMealDistributionEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/v1/nutrition/meal-distribution", gin.H{
		"daily": gin.H{"kcal": 2400, "protein_g": 150, "carb_g": 280, "fat_g": 75},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	meals, ok := body["meals"].([]interface{})
	require.True(t, ok)
	assert.Len(t, meals, 4)
}

func TestMealOptimizationEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("should return portions for a feasible target", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/nutrition/meal-optimization", gin.H{
			"target": gin.H{"label": "lunch", "kcal": 840, "protein_g": 55, "carb_g": 95, "fat_g": 25},
			"foods":  []string{"chicken_breast", "rice", "olive_oil", "vegetables"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["portions"])
	})

	t.Run("should keep infeasibility a 200 with success=false", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/nutrition/meal-optimization", gin.H{
			"target": gin.H{"label": "lunch", "kcal": 800, "protein_g": 150, "carb_g": 20, "fat_g": 10},
			"foods":  []string{"rice", "vegetables"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
	})

	t.Run("should 404 with the unresolved foods", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/nutrition/meal-optimization", gin.H{
			"target": gin.H{"label": "lunch", "kcal": 840, "protein_g": 55, "carb_g": 95, "fat_g": 25},
			"foods":  []string{"pollo", "xyz_unknown"},
		})
		require.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, []interface{}{"xyz_unknown"}, body["not_found"])
	})
}

func TestFoodEndpoints(t *testing.T) {
	router := setupTestRouter()

	t.Run("should fetch a food by key or alias", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/pollo", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "chicken_breast", body["key"])
	})

	t.Run("should 404 for an unknown food", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/xyz_unknown", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should list calorie-equivalent substitutes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/rice/substitutes?grams=80&n=3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		subs, ok := body["substitutes"].([]interface{})
		require.True(t, ok)
		assert.NotEmpty(t, subs)
		assert.LessOrEqual(t, len(subs), 3)
	})

	t.Run("should reject malformed query parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/rice/substitutes?grams=-5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNovaAndVitaminEndpoints(t *testing.T) {
	router := setupTestRouter()

	t.Run("should flag an ultra-processed day", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/nutrition/nova-check", gin.H{
			"portions": gin.H{"chicken_breast": 200, "rice": 100, "dry_biscuits": 100},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["flagged"])
	})

	t.Run("should grade vitamin intake", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/nutrition/vitamin-check", gin.H{
			"sex": "male", "age_years": 30,
			"portions": gin.H{"canned_tuna": 150, "vegetables": 200},
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.NotEmpty(t, body["assessments"])
	})
}

func TestCookedWeightEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("should convert dry weight to cooked weight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/rice/cooked-weight?grams=80", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, 200.0, body["cooked_g"])
		assert.Equal(t, 2.5, body["factor"])
	})

	t.Run("should reject foods without a yield factor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/chicken_breast/cooked-weight?grams=100", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should report unknown foods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/unobtainium/cooked-weight", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
