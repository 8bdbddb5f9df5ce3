package nutrition

// CookedWeight is the raw-to-cooked conversion of one weighed portion.
type CookedWeight struct {
	Key     string  `json:"key"`
	RawG    float64 `json:"raw_g"`
	CookedG float64 `json:"cooked_g"`
	Factor  float64 `json:"factor"`
}

// ConvertRawToCooked converts a raw (dry) weight into the expected cooked
// weight using the food's yield factor. Foods recorded on the as-consumed
// basis carry no factor and cannot be converted.
func ConvertRawToCooked(store NutrientStore, key string, rawGrams float64) (CookedWeight, error) {
	if rawGrams <= 0 {
		return CookedWeight{}, invalidf("grams", "must be positive, got %.1f", rawGrams)
	}
	food, ok := ResolveFood(store, key)
	if !ok {
		return CookedWeight{}, &NotFoundError{Kind: "food", Keys: []string{key}}
	}
	if food.CookedYieldFactor <= 0 {
		return CookedWeight{}, invalidf("food", "%s has no cooking yield factor", food.Key)
	}
	return CookedWeight{
		Key:     food.Key,
		RawG:    rawGrams,
		CookedG: round1(rawGrams * food.CookedYieldFactor),
		Factor:  food.CookedYieldFactor,
	}, nil
}

// StandardPortion returns the typical single-serving weight in grams.
// Discrete foods without an explicit portion default to one unit.
func StandardPortion(store NutrientStore, key string) (float64, error) {
	food, ok := ResolveFood(store, key)
	if !ok {
		return 0, &NotFoundError{Kind: "food", Keys: []string{key}}
	}
	if food.StandardPortionG > 0 {
		return food.StandardPortionG, nil
	}
	if food.Discrete && food.UnitWeightG > 0 {
		return food.UnitWeightG, nil
	}
	return 0, invalidf("food", "%s has no standard portion", food.Key)
}
