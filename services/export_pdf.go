package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"vacationplanner/models"
)

// PDFRenderer lays the plan out on A4 pages. When the plan has an id and a
// base URL is set, a QR code links back to it.
type PDFRenderer struct {
	PublicBaseURL string
}

func NewPDFRenderer(publicBaseURL string) *PDFRenderer {
	return &PDFRenderer{PublicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (r *PDFRenderer) ContentType() string { return "application/pdf" }
func (r *PDFRenderer) Extension() string   { return "pdf" }

func (r *PDFRenderer) Render(plan *models.TripPlan) ([]byte, error) {
	cur := plan.BudgetBreakdown.Currency

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			fmt.Sprintf("Vacation Planner - estimated prices, not a booking confirmation - page %d", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(120, 10, "Trip to "+plan.Destination, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, fmt.Sprintf("%s - %s", fmtExportDate(plan.StartDate()), fmtExportDate(plan.EndDate())),
		"", 1, "L", false, 0, "")

	if err := r.drawQR(pdf, plan); err != nil {
		return nil, err
	}

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	prefs := plan.Preferences
	sectionHeader("Trip Overview")
	row("Destination", plan.Destination)
	row("From", prefs.StartingPoint)
	row("Dates", fmt.Sprintf("%s - %s (%d days)", fmtExportDate(prefs.StartDate), fmtExportDate(prefs.EndDate), prefs.TripDurationDays()))
	if prefs.Theme != "" {
		row("Theme", prefs.Theme)
	}
	row("Travelers", fmt.Sprintf("%d", prefs.GroupSize))
	pdf.Ln(4)

	// ── Transportation ────────────────────────────────────────
	if t := plan.Transportation; t != nil {
		sectionHeader("Transportation")
		row("Type", t.Type)
		row("Route", fmt.Sprintf("%s to %s", t.Origin, t.Destination))
		row("Provider", t.Provider)
		row("Departure", fmtExportDate(t.DepartureDate))
		row("Return", fmtExportDate(t.ReturnDate))
		row("Price", fmtMoney(cur, t.Cost))
		pdf.Ln(4)
	}

	// ── Accommodation ─────────────────────────────────────────
	if a := plan.Accommodation; a != nil {
		sectionHeader("Accommodation")
		row("Hotel", a.Name)
		row("Category", a.Type)
		row("Address", a.Address)
		row("Rating", fmt.Sprintf("%.1f / 5.0", a.Rating))
		row("Check-in", fmtExportDate(a.CheckInDate))
		row("Check-out", fmtExportDate(a.CheckOutDate))
		row("Price", fmt.Sprintf("%s/night x %d nights = %s",
			fmtMoney(cur, a.CostPerNight), max(a.Nights(), 1), fmtMoney(cur, a.TotalCost())))
		pdf.Ln(4)
	}

	// ── Budget ────────────────────────────────────────────────
	b := plan.BudgetBreakdown
	sectionHeader("Budget Breakdown")
	row("Transportation", fmtMoney(cur, b.Transportation))
	row("Accommodation", fmtMoney(cur, b.Accommodation))
	row("Food", fmtMoney(cur, b.Food))
	row("Activities", fmtMoney(cur, b.Activities))
	row("Miscellaneous", fmtMoney(cur, b.Misc))

	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL BUDGET", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmtMoney(cur, b.TotalBudget), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	row("Estimated spend", fmtMoney(cur, plan.TotalEstimatedCost()))
	pdf.Ln(4)

	// ── Daily Itinerary ───────────────────────────────────────
	if len(plan.DailyItineraries) > 0 {
		sectionHeader("Daily Itinerary")
		for _, d := range plan.DailyItineraries {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(13, 24, 37)
			pdf.CellFormat(170, 7, fmt.Sprintf("Day %d - %s", d.Day, fmtExportDate(d.Date)), "B", 1, "L", false, 0, "")
			slot := func(name string, acts []models.Activity) {
				names := make([]string, 0, len(acts))
				for _, a := range acts {
					names = append(names, fmt.Sprintf("%s (%s)", a.Name, fmtMoney(cur, a.Cost)))
				}
				if len(names) == 0 {
					names = append(names, "Free time")
				}
				pdf.SetFont("Helvetica", "", 9)
				pdf.SetTextColor(100, 100, 100)
				pdf.CellFormat(25, 6, name, "", 0, "L", false, 0, "")
				pdf.SetTextColor(20, 20, 20)
				pdf.MultiCell(145, 6, strings.Join(names, ", "), "", "L", false)
			}
			slot("Morning", d.Morning)
			slot("Afternoon", d.Afternoon)
			slot("Evening", d.Evening)
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) drawQR(pdf *gofpdf.Fpdf, plan *models.TripPlan) error {
	if plan.ID == "" || r.PublicBaseURL == "" {
		return nil
	}
	png, err := qrcode.Encode(r.PublicBaseURL+"/api/trips/"+plan.ID, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("qr encode: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("trip-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("trip-qr", 170, 3, 22, 22, false, opts, 0, "")
	return nil
}
