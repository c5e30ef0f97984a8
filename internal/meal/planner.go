package meal

import (
	"math"
	"slices"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/logger"
	"github.com/julianstephens/fitfinder/internal/models"
)

// Request describes one weekly plan. Identical requests yield identical
// plans.
type Request struct {
	CalorieTarget int
	Goal          constants.MealGoal
	Diet          string
	Cuisine       string
	Seed          uint64
}

// Fractions is the share of the daily target assigned to each slot. The
// shares are used as-is and need not sum to one.
type Fractions map[constants.MealName]float64

var (
	gainFractions     = Fractions{constants.MealBreakfast: 0.25, constants.MealLunch: 0.34, constants.MealDinner: 0.30, constants.MealSnacks: 0.11}
	loseFractions     = Fractions{constants.MealBreakfast: 0.20, constants.MealLunch: 0.38, constants.MealDinner: 0.32, constants.MealSnacks: 0.10}
	maintainFractions = Fractions{constants.MealBreakfast: 0.24, constants.MealLunch: 0.36, constants.MealDinner: 0.30, constants.MealSnacks: 0.10}
)

// FractionsFor returns the slot split for a goal; unknown goals maintain.
func FractionsFor(goal constants.MealGoal) Fractions {
	switch goal {
	case constants.MealGoalGain:
		return gainFractions
	case constants.MealGoalLose:
		return loseFractions
	default:
		return maintainFractions
	}
}

// slotTags lists the food tags eligible for each slot
var slotTags = map[constants.MealName][]string{
	constants.MealBreakfast: {tagBreakfast, tagSnack},
	constants.MealLunch:     {tagLunch, tagDinner},
	constants.MealDinner:    {tagDinner, tagLunch},
	constants.MealSnacks:    {tagSnack, tagBreakfast},
}

const (
	mainProteinMin = 8.0
	fillRatio      = 0.95
	overRatio      = 1.2
	underRatio     = 0.9
)

// BuildWeekly composes a seven-day plan with four slots per day using the
// built-in food table.
func BuildWeekly(req Request) models.WeeklyMealPlan {
	return BuildWeeklyFrom(Foods(), req)
}

// BuildWeeklyFrom composes a plan from an arbitrary food table. Foods are
// spread across the week: a food used once is skipped by later slots until
// a slot would otherwise have nothing to choose from.
func BuildWeeklyFrom(all []models.FoodItem, req Request) models.WeeklyMealPlan {
	pool := FilterFoods(all, req.Diet, req.Cuisine)
	fractions := FractionsFor(req.Goal)

	slotPools := make(map[constants.MealName][]models.FoodItem, len(constants.MealOrder))
	for _, slot := range constants.MealOrder {
		sp := slotPool(pool, slotTags[slot])
		if len(sp) == 0 {
			sp = pool
		}
		slotPools[slot] = sp
	}

	used := make(map[string]bool)
	plan := make(models.WeeklyMealPlan, len(constants.Weekdays))
	for di, day := range constants.Weekdays {
		slots := make([]models.MealSlot, 0, len(constants.MealOrder))
		for _, slot := range constants.MealOrder {
			target := math.Round(float64(req.CalorieTarget) * fractions[slot])
			slots = append(slots, composeSlot(slot, slotPools[slot], used, target, req.Seed, di))
		}
		plan[day] = slots
	}

	logger.Debug("Built weekly meal plan", "target", req.CalorieTarget, "goal", req.Goal, "diet", req.Diet, "cuisine", req.Cuisine, "foods", len(pool))
	return plan
}

func slotPool(pool []models.FoodItem, tags []string) []models.FoodItem {
	var out []models.FoodItem
	for _, f := range pool {
		for _, t := range tags {
			if models.HasTag(f.Tags, t) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

type scoredFood struct {
	food  models.FoodItem
	score float64
}

// rank orders candidates by protein-weighted score with seeded jitter,
// best first.
func rank(candidates []models.FoodItem, seed uint64, day int) []models.FoodItem {
	scored := make([]scoredFood, len(candidates))
	for i, f := range candidates {
		scored[i] = scoredFood{food: f, score: f.Protein*3 + f.Kcal*0.01 + Noise(seed, day, len(f.ID))*0.5}
	}
	slices.SortStableFunc(scored, func(a, b scoredFood) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})
	out := make([]models.FoodItem, len(scored))
	for i, s := range scored {
		out[i] = s.food
	}
	return out
}

func composeSlot(name constants.MealName, pool []models.FoodItem, used map[string]bool, target float64, seed uint64, day int) models.MealSlot {
	var candidates []models.FoodItem
	for _, f := range pool {
		if !used[f.ID] {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		candidates = pool
	}
	scored := rank(candidates, seed, day)

	items := []models.MealItem{}
	total := 0.0
	chosen := make(map[string]bool)
	add := func(f models.FoodItem) {
		items = append(items, models.MealItem{Food: f, Portions: 1})
		total += f.Kcal
		used[f.ID] = true
		chosen[f.ID] = true
	}

	if len(scored) > 0 {
		main := scored[0]
		for _, f := range scored {
			if f.Protein >= mainProteinMin {
				main = f
				break
			}
		}
		add(main)
	}

	for idx := 0; total < target*fillRatio && idx < len(scored); {
		if c := scored[idx]; !chosen[c.ID] {
			add(c)
		}
		idx++
		if idx > len(scored)*2 {
			break
		}
	}

	if total > target*overRatio && len(items) > 0 {
		largest := 0
		for i, it := range items {
			if it.Food.Kcal*float64(it.Portions) > items[largest].Food.Kcal*float64(items[largest].Portions) {
				largest = i
			}
		}
		if items[largest].Portions > 1 {
			items[largest].Portions--
			total = slotKcal(items)
		}
	}

	if total < target*underRatio {
		for k := 0; k < len(items) && total < target*fillRatio; k++ {
			items[k].Portions++
			total += items[k].Food.Kcal
		}
	}

	return models.MealSlot{MealName: name, Items: items, Kcal: int(math.Round(total))}
}

func slotKcal(items []models.MealItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Food.Kcal * float64(it.Portions)
	}
	return total
}

// Noise maps (seed, day, key) onto [0, 1) with a splitmix64 finalizer.
func Noise(seed uint64, day, key int) float64 {
	z := seed + uint64(day)*0x9e3779b97f4a7c15 + uint64(key)*0xd1b54a32d192ed03
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}
