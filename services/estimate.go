package services

import (
	"strings"

	"vacationplanner/catalog"
	"vacationplanner/models"
)

// CostEstimate is a quick, catalog-only projection of what a trip would
// cost. No external source is consulted.
type CostEstimate struct {
	Destination       string             `json:"destination"`
	Recommended       bool               `json:"recommended"`
	Days              int                `json:"days"`
	Nights            int                `json:"nights"`
	Flight            float64            `json:"flight"`
	Accommodation     float64            `json:"accommodation"`
	HotelByCategory   map[string]float64 `json:"hotel_by_category"`
	Activities        float64            `json:"activities"`
	Total             float64            `json:"total"`
	CuratedActivities bool               `json:"curated_activities"`
}

// Estimate prices a trip from prefs without planning it. Only the dates and
// group size are checked; budget and origin are ignored.
func (p *TripPlanner) Estimate(prefs models.TripPreferences) (*CostEstimate, error) {
	if prefs.StartDate.IsZero() {
		return nil, models.NewValidationError("start_date", "is required")
	}
	if prefs.EndDate.IsZero() {
		return nil, models.NewValidationError("end_date", "is required")
	}
	if prefs.EndDate.Before(prefs.StartDate) {
		return nil, models.NewValidationError("end_date", "must not be before start_date")
	}
	if prefs.GroupSize < 1 {
		return nil, models.NewValidationError("group_size", "must be at least 1")
	}

	est := &CostEstimate{
		Destination:     strings.TrimSpace(prefs.Destination),
		Days:            prefs.TripDurationDays(),
		Nights:          models.DaysBetween(prefs.StartDate, prefs.EndDate),
		HotelByCategory: make(map[string]float64, 3),
	}
	if est.Destination == "" {
		est.Destination = p.recommender.RecommendDestination(prefs.Theme, prefs.StartDate)
		est.Recommended = true
	}

	if p.flights != nil {
		est.Flight = p.flights.EstimateFlightPrice(est.Destination, prefs.StartDate)
	}
	if p.hotels != nil {
		est.Accommodation = p.hotels.EstimateAccommodationPrice(est.Destination, prefs.GroupSize, est.Nights)
		for _, c := range catalog.Categories() {
			est.HotelByCategory[c] = p.hotels.EstimateCategoryPrice(est.Destination, c, est.Nights)
		}
	}
	if p.itinerary != nil {
		est.Activities = p.itinerary.EstimateCost(est.Destination, est.Days)
	}
	est.CuratedActivities = catalog.HasActivityCatalog(est.Destination)
	est.Total = est.Flight + est.Accommodation + est.Activities
	return est, nil
}
