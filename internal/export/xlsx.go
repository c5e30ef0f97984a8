package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

const (
	SheetOverview = "Overview"
	SheetGrocery  = "Grocery List"
)

type styles struct {
	title  int
	header int
	label  int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	}); err != nil {
		return s, err
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
	}); err != nil {
		return s, err
	}
	return s, nil
}

// writeRow writes values starting at column A of row
func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeHeader(f *excelize.File, sheet string, row, style int, headers ...any) error {
	if err := writeRow(f, sheet, row, headers...); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return f.SetCellStyle(sheet, first, last, style)
}

func writeTitle(f *excelize.File, sheet, title, lastCol string, style int) error {
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return err
	}
	return f.SetRowHeight(sheet, 1, 28)
}

// RoutineWorkbook builds an overview sheet plus one sheet per week.
func RoutineWorkbook(r models.Routine) (*excelize.File, error) {
	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create styles: %w", err)
	}
	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return nil, err
	}

	if err := writeTitle(f, SheetOverview, "TRAINING ROUTINE", "D", st.title); err != nil {
		return nil, fmt.Errorf("failed to write overview: %w", err)
	}
	info := [][]any{
		{"Goal:", string(r.Goal)},
		{"Duration:", fmt.Sprintf("%d weeks", r.DurationWeeks)},
		{"Days per week:", r.DaysPerWeek},
		{"Created:", r.CreatedAt.Format(constants.DateFormat)},
		{"Total exercises:", r.TotalExercises()},
	}
	for i, row := range info {
		if err := writeRow(f, SheetOverview, i+3, row...); err != nil {
			return nil, fmt.Errorf("failed to write overview: %w", err)
		}
		cell := fmt.Sprintf("A%d", i+3)
		_ = f.SetCellStyle(SheetOverview, cell, cell, st.label)
	}
	_ = f.SetColWidth(SheetOverview, "A", "A", 20)
	_ = f.SetColWidth(SheetOverview, "B", "B", 30)

	for wi, week := range r.Weeks {
		sheet := fmt.Sprintf("Week %d", wi+1)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", sheet, err)
		}
		if err := writeHeader(f, sheet, 1, st.header, "Day", "Exercise", "Body Part", "Equipment", "Sets", "Reps", "Rest (s)"); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", sheet, err)
		}
		row := 2
		for _, day := range week {
			if len(day.Exercises) == 0 {
				if err := writeRow(f, sheet, row, day.Name, "No matching exercises"); err != nil {
					return nil, err
				}
				row++
				continue
			}
			for _, ex := range day.Exercises {
				if err := writeRow(f, sheet, row, day.Name, ex.Name, strings.Join(ex.BodyPart, ", "), strings.Join(ex.Equipment, ", "), ex.Sets, ex.Reps, ex.RestSeconds); err != nil {
					return nil, fmt.Errorf("failed to write %s: %w", sheet, err)
				}
				row++
			}
		}
		_ = f.SetColWidth(sheet, "A", "A", 12)
		_ = f.SetColWidth(sheet, "B", "B", 32)
		_ = f.SetColWidth(sheet, "C", "D", 22)
	}

	f.SetActiveSheet(0)
	return f, nil
}

// MealPlanWorkbook builds an overview sheet, one sheet per day and a
// grocery list.
func MealPlanWorkbook(p MealPlanExport, grocery []models.GroceryItem) (*excelize.File, error) {
	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create styles: %w", err)
	}
	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return nil, err
	}

	if err := writeTitle(f, SheetOverview, strings.ToUpper(p.Name), "D", st.title); err != nil {
		return nil, fmt.Errorf("failed to write overview: %w", err)
	}
	in := p.Inputs
	info := [][]any{
		{"Calorie target:", p.CalorieTarget},
		{"Goal:", string(in.Goal)},
		{"Diet:", in.Diet},
		{"Cuisine:", in.Cuisine},
		{"Profile:", fmt.Sprintf("%d y, %s, %g kg, %g cm, %s", in.Age, in.Gender, in.WeightKg, in.HeightCm, in.Activity)},
	}
	for i, row := range info {
		if err := writeRow(f, SheetOverview, i+3, row...); err != nil {
			return nil, fmt.Errorf("failed to write overview: %w", err)
		}
		cell := fmt.Sprintf("A%d", i+3)
		_ = f.SetCellStyle(SheetOverview, cell, cell, st.label)
	}

	row := len(info) + 4
	if err := writeHeader(f, SheetOverview, row, st.header, "Day", "kcal"); err != nil {
		return nil, err
	}
	for _, day := range p.WeeklyPlan.Days() {
		row++
		if err := writeRow(f, SheetOverview, row, day, p.WeeklyPlan.DayKcal(day)); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(SheetOverview, "A", "A", 20)
	_ = f.SetColWidth(SheetOverview, "B", "B", 40)

	for _, day := range p.WeeklyPlan.Days() {
		if _, err := f.NewSheet(day); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", day, err)
		}
		if err := writeHeader(f, day, 1, st.header, "Meal", "Food", "Portion", "Portions", "kcal", "Protein (g)"); err != nil {
			return nil, err
		}
		r := 2
		for _, slot := range p.WeeklyPlan[day] {
			for _, it := range slot.Items {
				if err := writeRow(f, day, r, string(slot.MealName), it.Food.Name, it.Food.PortionLabel, it.Portions, it.Food.Kcal*float64(it.Portions), it.Food.Protein*float64(it.Portions)); err != nil {
					return nil, fmt.Errorf("failed to write %s: %w", day, err)
				}
				r++
			}
			if err := writeRow(f, day, r, string(slot.MealName)+" total", "", "", "", slot.Kcal); err != nil {
				return nil, err
			}
			cell := fmt.Sprintf("A%d", r)
			_ = f.SetCellStyle(day, cell, cell, st.label)
			r++
		}
		_ = f.SetColWidth(day, "A", "A", 16)
		_ = f.SetColWidth(day, "B", "B", 28)
	}

	if _, err := f.NewSheet(SheetGrocery); err != nil {
		return nil, err
	}
	if err := writeHeader(f, SheetGrocery, 1, st.header, "Item", "Portion", "Qty"); err != nil {
		return nil, err
	}
	for i, g := range grocery {
		if err := writeRow(f, SheetGrocery, i+2, g.Name, g.Portion, g.Qty); err != nil {
			return nil, fmt.Errorf("failed to write grocery list: %w", err)
		}
	}
	_ = f.SetColWidth(SheetGrocery, "A", "A", 28)

	f.SetActiveSheet(0)
	return f, nil
}
