package nutrition

import "strings"

// normalizeKey lowercases a user-supplied name and collapses spaces, hyphens
// and underscores to single underscores, matching the store's canonical key
// form.
func normalizeKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", " ")
	fields := strings.Fields(strings.ReplaceAll(s, "_", " "))
	return strings.Join(fields, "_")
}

// foodAliases maps common alternative names to canonical store keys. The
// table replaces the ad hoc string heuristics of earlier data pipelines with
// an explicit, auditable mapping; it is consulted after an exact and a
// normalized lookup both miss.
var foodAliases = map[string]string{
	"chicken":                "chicken_breast",
	"pollo":                  "chicken_breast",
	"white_rice":             "rice",
	"plain_rice":             "rice",
	"wholegrain_rice":        "brown_rice",
	"rolled_oats":            "oats",
	"oat_flakes":             "oats",
	"parmesan":               "parmigiano",
	"greek_yogurt":           "greek_yogurt_0",
	"whey":                   "whey_protein",
	"whey_isolate":           "whey_protein",
	"protein_powder":         "whey_protein",
	"peanut_butter":          "peanut_butter",
	"olive_oil":              "olive_oil",
	"extra_virgin_olive_oil": "olive_oil",
	"oil":                    "olive_oil",
	"bread":                  "white_bread",
	"wholemeal_bread":        "wholegrain_bread",
	"milk":                   "whole_milk",
	"skim_milk":              "skimmed_milk",
	"tuna":                   "canned_tuna",
	"egg":                    "eggs",
	"egg_whites":             "egg_white",
	"potato":                 "potatoes",
	"sweet_potato":           "potatoes",
	"mixed_vegetables":       "vegetables",
	"tomatoes":               "vegetables",
	"walnuts":                "nuts",
	"almonds":                "nuts",
	"berries":                "mixed_berries",
	"cookies":                "dry_biscuits",
	"biscuits":               "dry_biscuits",
	"pasta":                  "dry_pasta",
	"salmon":                 "smoked_salmon",
}

// ResolveFood maps a free-form food name to its canonical store key.
// Resolution order: exact key, normalized key, alias table, case-insensitive
// key match, substring match in either direction. The first hit wins.
func ResolveFood(store NutrientStore, name string) (FoodProfile, bool) {
	if f, ok := store.Food(name); ok {
		return f, true
	}
	norm := normalizeKey(name)
	if f, ok := store.Food(norm); ok {
		return f, true
	}
	if alias, ok := foodAliases[norm]; ok {
		if f, ok := store.Food(alias); ok {
			return f, true
		}
	}
	return scanKeys(norm, store.Foods())
}

// ResolveActivity maps a free-form activity name to its store profile using
// the same ordered fallbacks as ResolveFood.
func ResolveActivity(store NutrientStore, name string) (ActivityProfile, bool) {
	if a, ok := store.Activity(name); ok {
		return a, true
	}
	norm := normalizeKey(name)
	if a, ok := store.Activity(norm); ok {
		return a, true
	}
	profiles := store.Activities()
	for _, a := range profiles {
		if strings.EqualFold(a.Key, name) {
			return a, true
		}
	}
	for _, a := range profiles {
		key := strings.ToLower(a.Key)
		if strings.Contains(key, norm) || strings.Contains(norm, key) {
			return a, true
		}
	}
	return ActivityProfile{}, false
}

func scanKeys(norm string, foods []FoodProfile) (FoodProfile, bool) {
	for _, f := range foods {
		if strings.EqualFold(f.Key, norm) {
			return f, true
		}
	}
	for _, f := range foods {
		key := strings.ToLower(f.Key)
		if strings.Contains(key, norm) || strings.Contains(norm, key) {
			return f, true
		}
	}
	return FoodProfile{}, false
}

// resolveFoodKeys resolves every name in the list, collecting all misses so
// the caller can report them together.
func resolveFoodKeys(store NutrientStore, names []string) (map[string]FoodProfile, []string) {
	resolved := make(map[string]FoodProfile, len(names))
	var missing []string
	for _, name := range names {
		f, ok := ResolveFood(store, name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		resolved[name] = f
	}
	return resolved, missing
}
