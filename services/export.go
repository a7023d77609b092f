package services

import (
	"fmt"
	"time"

	"vacationplanner/models"
)

// Renderer turns a finished plan into a downloadable document.
type Renderer interface {
	Render(plan *models.TripPlan) ([]byte, error)
	ContentType() string
	Extension() string
}

const exportDateLayout = "Jan 02, 2006"

// ExportFilename is trip-plan-{id}.{ext}; unsaved plans are named "current".
func ExportFilename(plan *models.TripPlan, r Renderer) string {
	id := plan.ID
	if id == "" {
		id = CurrentTripID
	}
	return fmt.Sprintf("trip-plan-%s.%s", id, r.Extension())
}

func fmtExportDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(exportDateLayout)
}

func fmtMoney(currency string, v float64) string {
	if currency == "" || currency == models.DefaultCurrency {
		return fmt.Sprintf("$%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, currency)
}
