package meal

import (
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

// Aggregate sums portions per food name across the plan. Items appear in
// the order first seen walking Monday to Sunday, breakfast to snacks; the
// portion label is taken from the first occurrence.
func Aggregate(plan models.WeeklyMealPlan) []models.GroceryItem {
	var out []models.GroceryItem
	index := make(map[string]int)
	for _, day := range constants.Weekdays {
		for _, slot := range plan[day] {
			for _, it := range slot.Items {
				if i, ok := index[it.Food.Name]; ok {
					out[i].Qty += it.Portions
					continue
				}
				index[it.Food.Name] = len(out)
				out = append(out, models.GroceryItem{Name: it.Food.Name, Portion: it.Food.PortionLabel, Qty: it.Portions})
			}
		}
	}
	return out
}
