package services

import (
	"vacationplanner/models"
)

const (
	activitiesPerSlot = 2
	slotActivityShare = 0.4
)

// Slot tags handed to the activity selector.
const (
	TagSightseeing = "Sightseeing"
	TagActivity    = "Activity"
	TagFood        = "Food"
)

// ItineraryBuilder lays out one DailyItinerary per trip day.
type ItineraryBuilder struct {
	activities *ActivityService
}

func NewItineraryBuilder(activities *ActivityService) *ItineraryBuilder {
	return &ItineraryBuilder{activities: activities}
}

// Build fills plan.DailyItineraries from the plan's destination and budget.
// Every slot gets exactly two picks.
func (b *ItineraryBuilder) Build(plan *models.TripPlan, prefs models.TripPreferences) {
	days := prefs.TripDurationDays()
	if days <= 0 {
		plan.DailyItineraries = []models.DailyItinerary{}
		return
	}
	dailyActivity := plan.BudgetBreakdown.Activities / float64(days)
	dailyFood := plan.BudgetBreakdown.Food / float64(days)

	itineraries := make([]models.DailyItinerary, 0, days)
	for day := 1; day <= days; day++ {
		d := models.DailyItinerary{
			Day:         day,
			Date:        prefs.StartDate.AddDate(0, 0, day-1),
			Morning:     b.activities.FindActivities(plan.Destination, TagSightseeing, slotActivityShare*dailyActivity, activitiesPerSlot),
			Afternoon:   b.activities.FindActivities(plan.Destination, TagActivity, slotActivityShare*dailyActivity, activitiesPerSlot),
			Evening:     b.activities.FindActivities(plan.Destination, TagFood, dailyFood, activitiesPerSlot),
			DailyBudget: dailyActivity + dailyFood,
		}
		d.DailyCost = d.ActualCost()
		itineraries = append(itineraries, d)
	}
	plan.DailyItineraries = itineraries
}

// EstimateCost projects what Build would spend on activities and meals over
// days, from catalog mean prices.
func (b *ItineraryBuilder) EstimateCost(destination string, days int) float64 {
	if days <= 0 {
		return 0
	}
	total := 0.0
	for _, tag := range []string{TagSightseeing, TagActivity, TagFood} {
		total += b.activities.EstimateActivitiesCost(destination, tag, days, activitiesPerSlot)
	}
	return total
}
