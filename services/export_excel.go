package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"vacationplanner/models"
)

const (
	summarySheet   = "Trip Plan"
	itinerarySheet = "Itinerary"
)

// ExcelRenderer writes a two-sheet workbook: the trip summary and one row
// per planned activity.
type ExcelRenderer struct{}

func NewExcelRenderer() *ExcelRenderer { return &ExcelRenderer{} }

func (r *ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *ExcelRenderer) Extension() string { return "xlsx" }

func (r *ExcelRenderer) Render(plan *models.TripPlan) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"0D1825"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	cur := plan.BudgetBreakdown.Currency
	summary := [][]any{
		{"Destination", plan.Destination},
		{"Start Date", fmtExportDate(plan.StartDate())},
		{"End Date", fmtExportDate(plan.EndDate())},
		{"Theme", plan.Theme()},
		{"Starting Point", plan.Preferences.StartingPoint},
		{"Group Size", plan.GroupSize()},
		{"Total Budget", plan.BudgetBreakdown.TotalBudget},
		{"Transportation Budget", plan.BudgetBreakdown.Transportation},
		{"Accommodation Budget", plan.BudgetBreakdown.Accommodation},
		{"Food Budget", plan.BudgetBreakdown.Food},
		{"Activities Budget", plan.BudgetBreakdown.Activities},
		{"Misc Budget", plan.BudgetBreakdown.Misc},
		{"Currency", cur},
	}
	if t := plan.Transportation; t != nil {
		summary = append(summary, []any{"Flight", fmt.Sprintf("%s (%s)", t.Provider, fmtMoney(cur, t.Cost))})
	}
	if a := plan.Accommodation; a != nil {
		summary = append(summary, []any{"Hotel", fmt.Sprintf("%s, %s/night", a.Name, fmtMoney(cur, a.CostPerNight))})
	}
	summary = append(summary, []any{"Estimated Total", plan.TotalEstimatedCost()})

	for i, row := range summary {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(summary)), header); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summarySheet, "A", "B", 28); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(itinerarySheet); err != nil {
		return nil, err
	}
	if err := setRow(f, itinerarySheet, 1, []any{"Day", "Date", "Slot", "Activity", "Type", "Cost", "Rating"}); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(itinerarySheet, "A1", "G1", header); err != nil {
		return nil, err
	}
	line := 2
	for _, d := range plan.DailyItineraries {
		for _, s := range []struct {
			name string
			acts []models.Activity
		}{{"Morning", d.Morning}, {"Afternoon", d.Afternoon}, {"Evening", d.Evening}} {
			for _, a := range s.acts {
				if err := setRow(f, itinerarySheet, line,
					[]any{d.Day, fmtExportDate(d.Date), s.name, a.Name, a.Type, a.Cost, a.Rating}); err != nil {
					return nil, err
				}
				line++
			}
		}
	}
	if err := f.SetColWidth(itinerarySheet, "B", "D", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
