package models

import (
	"strconv"
	"strings"
	"time"
)

type DailyItinerary struct {
	Day         int        `json:"day" bson:"day"`
	Date        time.Time  `json:"date" bson:"date"`
	Morning     []Activity `json:"morning" bson:"morning"`
	Afternoon   []Activity `json:"afternoon" bson:"afternoon"`
	Evening     []Activity `json:"evening" bson:"evening"`
	DailyBudget float64    `json:"daily_budget" bson:"daily_budget"`
	DailyCost   float64    `json:"daily_cost" bson:"daily_cost"`
}

// AddActivity files a into a slot by its start time. No start time means
// morning; a start time that can't be read goes to the evening.
func (d *DailyItinerary) AddActivity(a Activity) {
	if strings.TrimSpace(a.StartTime) == "" {
		d.Morning = append(d.Morning, a)
		return
	}
	hour, _, ok := ParseClock(a.StartTime)
	switch {
	case !ok:
		d.Evening = append(d.Evening, a)
	case hour < 12:
		d.Morning = append(d.Morning, a)
	case hour < 18:
		d.Afternoon = append(d.Afternoon, a)
	default:
		d.Evening = append(d.Evening, a)
	}
}

// Activities lists the day in slot order.
func (d *DailyItinerary) Activities() []Activity {
	out := make([]Activity, 0, len(d.Morning)+len(d.Afternoon)+len(d.Evening))
	out = append(out, d.Morning...)
	out = append(out, d.Afternoon...)
	return append(out, d.Evening...)
}

func (d *DailyItinerary) ActualCost() float64 {
	total := 0.0
	for _, a := range d.Activities() {
		total += a.Cost
	}
	return total
}

func (d DailyItinerary) clone() DailyItinerary {
	c := d
	c.Morning = append([]Activity(nil), d.Morning...)
	c.Afternoon = append([]Activity(nil), d.Afternoon...)
	c.Evening = append([]Activity(nil), d.Evening...)
	return c
}

// ParseClock reads "9", "09:30", "13:30:00", "9:30 PM", "12am" and returns a 24h hour and minute.
func ParseClock(s string) (hour, minute int, ok bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	meridiem := ""
	switch {
	case strings.HasSuffix(s, "AM"):
		meridiem, s = "AM", strings.TrimSpace(strings.TrimSuffix(s, "AM"))
	case strings.HasSuffix(s, "PM"):
		meridiem, s = "PM", strings.TrimSpace(strings.TrimSuffix(s, "PM"))
	}
	if s == "" {
		return 0, 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m := 0
	if len(parts) > 1 {
		if m, err = strconv.Atoi(parts[1]); err != nil || m < 0 || m > 59 {
			return 0, 0, false
		}
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return 0, 0, false
		}
	}

	if meridiem != "" {
		if h < 1 || h > 12 {
			return 0, 0, false
		}
		if h == 12 {
			h = 0
		}
		if meridiem == "PM" {
			h += 12
		}
	} else if h < 0 || h > 23 {
		return 0, 0, false
	}
	return h, m, true
}
