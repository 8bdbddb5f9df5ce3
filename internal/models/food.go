package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/nutriplan/backend/internal/nutrition"
)

// JSONBFloatMap stores a string-to-float map in a JSONB column.
type JSONBFloatMap map[string]float64

// Value implements the driver.Valuer interface
func (m JSONBFloatMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONBFloatMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBFloatMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Food is one reference food, nutrients per 100 g. The embedding column holds
// the macro-space vector used for nearest-neighbour candidate search.
type Food struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Key       string         `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Category  string         `gorm:"size:50" json:"category"`
	Kcal      float64        `gorm:"type:float" json:"kcal"`
	ProteinG  float64        `gorm:"type:float" json:"protein_g"`
	CarbG     float64        `gorm:"type:float" json:"carb_g"`
	FatG      float64        `gorm:"type:float" json:"fat_g"`
	FiberG    float64        `gorm:"type:float" json:"fiber_g"`
	Vitamins  JSONBFloatMap  `gorm:"type:jsonb;default:'{}'" json:"vitamins"`
	NovaClass int            `json:"nova_class"`
	Discrete  bool           `json:"discrete"`
	// CookedYieldFactor multiplies raw weight into cooked weight; zero for
	// foods recorded as consumed.
	CookedYieldFactor float64         `gorm:"type:float" json:"cooked_yield_factor"`
	StandardPortionG  float64         `gorm:"type:float" json:"standard_portion_g"`
	UnitWeightG       float64         `gorm:"type:float" json:"unit_weight_g"`
	Embedding         pgvector.Vector `gorm:"type:vector(4)" json:"-"`
}

// BeforeCreate assigns the primary key in Go so the model works on database
// engines without a server-side UUID generator.
func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Activity is one reference physical activity with its hourly energy cost.
type Activity struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Key         string         `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Category    string         `gorm:"size:50" json:"category"`
	KcalPerHour float64        `gorm:"type:float" json:"kcal_per_hour"`
	Description string         `gorm:"type:text" json:"description"`
}

// BeforeCreate assigns the primary key in Go so the model works on database
// engines without a server-side UUID generator.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Profile converts the row to the read model the calculators consume.
func (f *Food) Profile() nutrition.FoodProfile {
	return nutrition.FoodProfile{
		Key:      f.Key,
		Category: f.Category,
		Macros: nutrition.MacroVector{
			Kcal:     f.Kcal,
			ProteinG: f.ProteinG,
			CarbG:    f.CarbG,
			FatG:     f.FatG,
			FiberG:   f.FiberG,
		},
		Vitamins:          f.Vitamins,
		NovaClass:         f.NovaClass,
		Discrete:          f.Discrete,
		UnitWeightG:       f.UnitWeightG,
		CookedYieldFactor: f.CookedYieldFactor,
		StandardPortionG:  f.StandardPortionG,
	}
}

// Profile converts the row to the read model the calculators consume.
func (a *Activity) Profile() nutrition.ActivityProfile {
	return nutrition.ActivityProfile{
		Key:         a.Key,
		Category:    a.Category,
		KcalPerHour: a.KcalPerHour,
		Description: a.Description,
	}
}

// FoodFromProfile builds a row from a read model, embedding included.
func FoodFromProfile(p nutrition.FoodProfile) Food {
	return Food{
		Key:               p.Key,
		Category:          p.Category,
		Kcal:              p.Macros.Kcal,
		ProteinG:          p.Macros.ProteinG,
		CarbG:             p.Macros.CarbG,
		FatG:              p.Macros.FatG,
		FiberG:            p.Macros.FiberG,
		Vitamins:          p.Vitamins,
		NovaClass:         p.NovaClass,
		Discrete:          p.Discrete,
		UnitWeightG:       p.UnitWeightG,
		CookedYieldFactor: p.CookedYieldFactor,
		StandardPortionG:  p.StandardPortionG,
		Embedding:         MacroEmbedding(p.Macros),
	}
}

// MacroEmbedding maps a per-100g macro profile into the 4-dimensional vector
// stored in the foods.embedding column. Energy is scaled down so one kcal
// weighs about as much as one gram of macronutrient in the distance metric.
func MacroEmbedding(m nutrition.MacroVector) pgvector.Vector {
	return pgvector.NewVector([]float32{
		float32(m.Kcal / 10),
		float32(m.ProteinG),
		float32(m.CarbG),
		float32(m.FatG),
	})
}
