package store

import (
	"log"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nutriplan/backend/internal/models"
	"github.com/nutriplan/backend/internal/nutrition"
)

// GormStore is a database-backed NutrientStore. Reference bands come from the
// same rules as MemoryStore; food and activity rows come from the foods and
// activities tables. On PostgreSQL the macro embedding column serves
// nearest-neighbour candidate search; other dialects fall back to an
// in-process scan.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Food(key string) (nutrition.FoodProfile, bool) {
	var row models.Food
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		return nutrition.FoodProfile{}, false
	}
	return row.Profile(), true
}

func (s *GormStore) Activity(key string) (nutrition.ActivityProfile, bool) {
	var row models.Activity
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		return nutrition.ActivityProfile{}, false
	}
	return row.Profile(), true
}

func (s *GormStore) Foods() []nutrition.FoodProfile {
	var rows []models.Food
	if err := s.db.Order("key").Find(&rows).Error; err != nil {
		log.Printf("store: listing foods failed: %v", err)
		return nil
	}
	out := make([]nutrition.FoodProfile, len(rows))
	for i := range rows {
		out[i] = rows[i].Profile()
	}
	return out
}

func (s *GormStore) Activities() []nutrition.ActivityProfile {
	var rows []models.Activity
	if err := s.db.Order("key").Find(&rows).Error; err != nil {
		log.Printf("store: listing activities failed: %v", err)
		return nil
	}
	out := make([]nutrition.ActivityProfile, len(rows))
	for i := range rows {
		out[i] = rows[i].Profile()
	}
	return out
}

func (s *GormStore) FiberBand(kcal float64) (float64, float64) {
	if kcal < fiberFloorBelowKcal {
		return fiberFloorG, fiberFloorG
	}
	return fiberMinPer1000Kcal * kcal / 1000, fiberMaxPer1000Kcal * kcal / 1000
}

func (s *GormStore) LipidPercentRange() (float64, float64) {
	return lipidMinPct, lipidMaxPct
}

func (s *GormStore) CarbPercentRange() (float64, float64) {
	return carbMinPct, carbMaxPct
}

func (s *GormStore) VitaminReference(sex nutrition.Sex, ageYears int) map[string]float64 {
	return vitaminReferenceFor(sex, ageYears)
}

// NearestByMacros returns the foods closest to the reference macro profile.
// On PostgreSQL the ordering runs in the database over the embedding column;
// elsewhere the rows are ranked in process.
func (s *GormStore) NearestByMacros(ref nutrition.MacroVector, limit int) []nutrition.FoodProfile {
	if limit <= 0 {
		return nil
	}

	if s.db.Dialector.Name() == "postgres" {
		vec := models.MacroEmbedding(ref)
		var rows []models.Food
		err := s.db.Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
		}).Limit(limit).Find(&rows).Error
		if err != nil {
			log.Printf("store: embedding search failed: %v", err)
			return nil
		}
		out := make([]nutrition.FoodProfile, len(rows))
		for i := range rows {
			out[i] = rows[i].Profile()
		}
		return out
	}

	foods := s.Foods()
	sort.Slice(foods, func(i, j int) bool {
		return macroDistance(foods[i].Macros, ref) < macroDistance(foods[j].Macros, ref)
	})
	if len(foods) > limit {
		foods = foods[:limit]
	}
	return foods
}

// macroDistance mirrors the embedding metric for the in-process fallback.
func macroDistance(a, b nutrition.MacroVector) float64 {
	dk := (a.Kcal - b.Kcal) / 10
	dp := a.ProteinG - b.ProteinG
	dc := a.CarbG - b.CarbG
	df := a.FatG - b.FatG
	return dk*dk + dp*dp + dc*dc + df*df
}

// SearchFoods finds foods whose key contains the query, case-insensitively.
func (s *GormStore) SearchFoods(query string) []nutrition.FoodProfile {
	like := "%" + strings.ToLower(query) + "%"
	var rows []models.Food
	if err := s.db.Where("LOWER(key) LIKE ?", like).Order("key").Find(&rows).Error; err != nil {
		return nil
	}
	out := make([]nutrition.FoodProfile, len(rows))
	for i := range rows {
		out[i] = rows[i].Profile()
	}
	return out
}

// Seed inserts the built-in catalogue, skipping rows whose key already
// exists. It is used by the seed command and by container-based tests.
func (s *GormStore) Seed() error {
	for _, p := range builtinFoods {
		row := models.FoodFromProfile(p)
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, p := range builtinActivities {
		row := models.Activity{
			Key:         p.Key,
			Category:    p.Category,
			KcalPerHour: p.KcalPerHour,
			Description: p.Description,
		}
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
