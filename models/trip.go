package models

import (
	"time"
)

type Transportation struct {
	Type          string    `json:"type" bson:"type"`
	Origin        string    `json:"origin" bson:"origin"`
	Destination   string    `json:"destination" bson:"destination"`
	DepartureDate time.Time `json:"departure_date" bson:"departure_date"`
	ReturnDate    time.Time `json:"return_date" bson:"return_date"`
	Provider      string    `json:"provider" bson:"provider"`
	Cost          float64   `json:"cost" bson:"cost"`
}

type Accommodation struct {
	Name         string         `json:"name" bson:"name"`
	Type         string         `json:"type" bson:"type"`
	Address      string         `json:"address" bson:"address"`
	CostPerNight float64        `json:"cost_per_night" bson:"cost_per_night"`
	Rating       float64        `json:"rating" bson:"rating"`
	Provider     string         `json:"provider" bson:"provider"`
	Amenities    map[string]any `json:"amenities,omitempty" bson:"amenities,omitempty"`
	CheckInDate  time.Time      `json:"check_in_date" bson:"check_in_date"`
	CheckOutDate time.Time      `json:"check_out_date" bson:"check_out_date"`
}

// Nights is never negative.
func (a Accommodation) Nights() int {
	if a.CheckInDate.IsZero() || a.CheckOutDate.IsZero() {
		return 0
	}
	return max(DaysBetween(a.CheckInDate, a.CheckOutDate), 0)
}

// TotalCost charges at least one night.
func (a Accommodation) TotalCost() float64 {
	return a.CostPerNight * float64(max(a.Nights(), 1))
}

type Activity struct {
	Name            string  `json:"name" bson:"name"`
	Type            string  `json:"type" bson:"type"`
	Location        string  `json:"location" bson:"location"`
	Description     string  `json:"description" bson:"description"`
	Cost            float64 `json:"cost" bson:"cost"`
	DurationMinutes int     `json:"duration_minutes" bson:"duration_minutes"`
	StartTime       string  `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime         string  `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Rating          float64 `json:"rating" bson:"rating"`
}

type TripPlan struct {
	ID               string           `json:"id,omitempty" bson:"-"`
	Preferences      TripPreferences  `json:"preferences" bson:"preferences"`
	Destination      string           `json:"destination" bson:"destination"`
	Transportation   *Transportation  `json:"transportation,omitempty" bson:"transportation,omitempty"`
	Accommodation    *Accommodation   `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	DailyItineraries []DailyItinerary `json:"daily_itineraries" bson:"daily_itineraries"`
	BudgetBreakdown  BudgetBreakdown  `json:"budget_breakdown" bson:"budget_breakdown"`
	CreatedAt        time.Time        `json:"created_at" bson:"created_at"`
}

func (p *TripPlan) StartDate() time.Time { return p.Preferences.StartDate }
func (p *TripPlan) EndDate() time.Time   { return p.Preferences.EndDate }
func (p *TripPlan) Theme() string        { return p.Preferences.Theme }
func (p *TripPlan) GroupSize() int       { return p.Preferences.GroupSize }

// TotalEstimatedCost adds up flight, stay and every planned activity.
func (p *TripPlan) TotalEstimatedCost() float64 {
	total := 0.0
	if p.Transportation != nil {
		total += p.Transportation.Cost
	}
	if p.Accommodation != nil {
		total += p.Accommodation.TotalCost()
	}
	for _, d := range p.DailyItineraries {
		total += d.ActualCost()
	}
	return total
}

// Clone returns a deep copy so callers can't mutate a plan held by the planner.
func (p *TripPlan) Clone() *TripPlan {
	if p == nil {
		return nil
	}
	c := *p
	if p.Transportation != nil {
		t := *p.Transportation
		c.Transportation = &t
	}
	if p.Accommodation != nil {
		a := *p.Accommodation
		if p.Accommodation.Amenities != nil {
			a.Amenities = make(map[string]any, len(p.Accommodation.Amenities))
			for k, v := range p.Accommodation.Amenities {
				a.Amenities[k] = v
			}
		}
		c.Accommodation = &a
	}
	if p.DailyItineraries != nil {
		c.DailyItineraries = make([]DailyItinerary, len(p.DailyItineraries))
		for i, d := range p.DailyItineraries {
			c.DailyItineraries[i] = d.clone()
		}
	}
	return &c
}
