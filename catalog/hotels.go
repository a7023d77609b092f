package catalog

import "strings"

const (
	CategoryLuxury   = "Luxury"
	CategoryMidRange = "Mid-range"
	CategoryBudget   = "Budget"
)

var categoryFactors = map[string]float64{
	CategoryLuxury:   2.0,
	CategoryMidRange: 1.0,
	CategoryBudget:   0.6,
}

// HotelOption is a catalog hotel. Its nightly rate is derived from the
// destination base price and its category, not stored.
type HotelOption struct {
	Name     string
	Category string
	Rating   float64
	Location string
}

var destinationHotels = []entry[[]HotelOption]{
	{[]string{"paris"}, []HotelOption{
		{"Paris Budget Stay", CategoryBudget, 3.5, "15th Arrondissement"},
		{"Eiffel View Inn", CategoryMidRange, 4.2, "Near Eiffel Tower"},
		{"Grand Hotel Paris", CategoryLuxury, 4.8, "City Center"},
	}},
	{[]string{"london"}, []HotelOption{
		{"The Savoy", CategoryLuxury, 4.9, "The Strand"},
		{"London Bridge Hotel", CategoryMidRange, 4.3, "Near London Bridge"},
		{"Budget Inn London", CategoryBudget, 3.6, "Kensington"},
	}},
	{[]string{"tokyo"}, []HotelOption{
		{"Tokyo Luxury Palace", CategoryLuxury, 4.8, "Ginza"},
		{"Shinjuku Central Hotel", CategoryMidRange, 4.4, "Shinjuku"},
		{"Tokyo Budget Pod", CategoryBudget, 3.7, "Asakusa"},
	}},
	{[]string{"new york", "nyc"}, []HotelOption{
		{"Plaza Hotel", CategoryLuxury, 4.7, "Central Park South"},
		{"Midtown Comfort Inn", CategoryMidRange, 4.1, "Midtown Manhattan"},
		{"NYC Budget Stay", CategoryBudget, 3.4, "Queens"},
	}},
	{[]string{"sydney"}, []HotelOption{
		{"Sydney Harbour View", CategoryLuxury, 4.8, "Circular Quay"},
		{"Bondi Beach Hotel", CategoryMidRange, 4.3, "Bondi"},
		{"Sydney Budget Inn", CategoryBudget, 3.6, "Surry Hills"},
	}},
	{[]string{"rome"}, []HotelOption{
		{"Roman Luxury Suites", CategoryLuxury, 4.7, "Near Colosseum"},
		{"Trevi Fountain Inn", CategoryMidRange, 4.2, "City Center"},
		{"Roma Budget Rooms", CategoryBudget, 3.5, "Termini Area"},
	}},
}

var genericHotels = []HotelOption{
	{"Luxury Resort", CategoryLuxury, 4.5, "City Center"},
	{"Comfort Inn", CategoryMidRange, 4.0, "Downtown"},
	{"Budget Lodge", CategoryBudget, 3.5, "Outskirts"},
}

// Hotels returns the destination's hotel catalog, or the generic one.
func Hotels(destination string) []HotelOption {
	hs, ok := match(destinationHotels, destination)
	if !ok {
		hs = genericHotels
	}
	return append([]HotelOption(nil), hs...)
}

// CategoryFactor scales a nightly base price; unknown categories are 1.0.
// Matching ignores case, so "luxury" and "Luxury" agree.
func CategoryFactor(category string) float64 {
	if f, ok := categoryFactors[category]; ok {
		return f
	}
	for name, f := range categoryFactors {
		if strings.EqualFold(name, strings.TrimSpace(category)) {
			return f
		}
	}
	return 1.0
}

// Categories lists the room classes from most to least expensive.
func Categories() []string {
	return []string{CategoryLuxury, CategoryMidRange, CategoryBudget}
}
