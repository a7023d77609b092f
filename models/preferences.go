package models

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const DefaultCurrency = "USD"

// TripPreferences is what the traveler asks for.
type TripPreferences struct {
	Budget        float64   `json:"budget" bson:"budget"`
	Currency      string    `json:"currency" bson:"currency"`
	Destination   string    `json:"destination,omitempty" bson:"destination,omitempty"`
	StartDate     time.Time `json:"start_date" bson:"start_date"`
	EndDate       time.Time `json:"end_date" bson:"end_date"`
	Theme         string    `json:"theme" bson:"theme"`
	GroupSize     int       `json:"group_size" bson:"group_size"`
	StartingPoint string    `json:"starting_point" bson:"starting_point"`
}

// Validate checks the invariants the planner relies on.
func (p TripPreferences) Validate() error {
	if p.Budget < 0 {
		return NewValidationError("budget", "must not be negative")
	}
	if p.StartDate.IsZero() {
		return NewValidationError("start_date", "is required")
	}
	if p.EndDate.IsZero() {
		return NewValidationError("end_date", "is required")
	}
	if p.EndDate.Before(p.StartDate) {
		return NewValidationError("end_date", "must not be before start_date")
	}
	if p.GroupSize < 1 {
		return NewValidationError("group_size", "must be at least 1")
	}
	if strings.TrimSpace(p.StartingPoint) == "" {
		return NewValidationError("starting_point", "is required")
	}
	return nil
}

// TripDurationDays is inclusive of both the start and the end day.
func (p TripPreferences) TripDurationDays() int {
	return DaysBetween(p.StartDate, p.EndDate) + 1
}

func (p TripPreferences) BudgetPerDay() float64 {
	d := p.TripDurationDays()
	if d <= 0 {
		return 0
	}
	return p.Budget / float64(d)
}

func (p TripPreferences) CurrencyOrDefault() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

// HasDestination reports whether the traveler picked a destination themselves.
func (p TripPreferences) HasDestination() bool {
	return strings.TrimSpace(p.Destination) != ""
}

// DaysBetween counts calendar days from a to b, ignoring the time of day.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, NewValidationError(field, "invalid date format, use YYYY-MM-DD")
	}
	return t, nil
}
