package meal

import (
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

// Food tags used for pool selection.
const (
	tagBreakfast = "breakfast"
	tagLunch     = "lunch"
	tagDinner    = "dinner"
	tagSnack     = "snack"
	tagNonVeg    = "nonveg"
)

func food(id, name string, kcal, protein, fat, carbs float64, portion string, tags ...string) models.FoodItem {
	return models.FoodItem{ID: id, Name: name, Kcal: kcal, Protein: protein, Fat: fat, Carbs: carbs, PortionLabel: portion, Tags: tags}
}

var foods = []models.FoodItem{
	food("oats", "Rolled Oats (60g)", 230, 8, 4, 39, "60 g", "veg", "western", "breakfast"),
	food("eggs2", "Eggs (2)", 156, 13, 11, 1, "2 pcs", "nonveg", "western", "breakfast"),
	food("poha", "Poha (250g)", 280, 6, 8, 45, "250 g", "veg", "indian", "breakfast"),
	food("dosa", "Dosa + Sambar", 300, 7, 7, 50, "2 dosa", "veg", "indian", "breakfast"),
	food("banana", "Banana (1)", 105, 1.3, 0.4, 27, "1 pc", "veg", "western", "snack"),
	food("chicken150", "Grilled Chicken (150g)", 275, 45, 6, 0, "150 g", "nonveg", "western", "lunch", "dinner"),
	food("salmon120", "Salmon (120g)", 240, 24, 15, 0, "120 g", "nonveg", "western", "lunch", "dinner"),
	food("paneer100", "Paneer (100g)", 265, 18, 20, 3, "100 g", "veg", "indian", "lunch", "dinner"),
	food("dal", "Dal (200g)", 180, 9, 4, 26, "200 g", "veg", "indian", "lunch", "dinner"),
	food("rice200", "Cooked Rice (200g)", 260, 5, 1, 57, "200 g", "veg", "western", "indian", "lunch", "dinner"),
	food("roti2", "Roti (2)", 200, 6, 4, 34, "2 rotis", "veg", "indian", "lunch", "dinner"),
	food("salad", "Mixed Salad (100g)", 30, 1.5, 0.5, 5, "100 g", "veg", "western", "indian", "lunch", "dinner"),
	food("almonds30", "Almonds (30g)", 174, 6, 15, 6, "30 g", "veg", "western", "snack"),
	food("greek150", "Greek Yogurt (150g)", 140, 12, 5, 10, "150 g", "veg", "western", "snack"),
	food("samosa", "Samosa (1)", 250, 6, 12, 30, "1 pc", "veg", "indian", "snack"),
	food("chickpea", "Chickpea Salad (200g)", 220, 12, 6, 26, "200 g", "veg", "indian", "lunch", "snack"),
}

// Foods returns a copy of the built-in food table.
func Foods() []models.FoodItem {
	out := make([]models.FoodItem, len(foods))
	for i, f := range foods {
		f.Tags = append([]string(nil), f.Tags...)
		out[i] = f
	}
	return out
}

// FilterFoods keeps the foods allowed by the diet and cuisine preferences.
// Vegetarians drop anything tagged nonveg; a cuisine other than "any"
// keeps only foods tagged with it.
func FilterFoods(all []models.FoodItem, diet, cuisine string) []models.FoodItem {
	var out []models.FoodItem
	for _, f := range all {
		if diet == constants.DietVeg && models.HasTag(f.Tags, tagNonVeg) {
			continue
		}
		if cuisine != "" && cuisine != constants.CuisineAny && !models.HasTag(f.Tags, cuisine) {
			continue
		}
		out = append(out, f)
	}
	return out
}
