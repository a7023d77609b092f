package catalog

import "time"

var seasonDestinations = map[time.Month][]string{
	time.January: {
		"Whistler, Canada", "Phuket, Thailand", "Maldives", "Rio de Janeiro, Brazil", "New Zealand",
	},
	time.February: {
		"Venice, Italy", "New Orleans, USA", "Bali, Indonesia", "Costa Rica", "Patagonia, Argentina/Chile",
	},
	time.March: {
		"Tokyo, Japan", "Amsterdam, Netherlands", "Washington D.C., USA", "Morocco",
		"Galapagos Islands, Ecuador",
	},
	time.April: {
		"Paris, France", "Kyoto, Japan", "Amsterdam, Netherlands", "Seville, Spain", "Marrakech, Morocco",
	},
	time.May: {
		"Greek Islands", "Barcelona, Spain", "Amalfi Coast, Italy", "Bali, Indonesia", "Machu Picchu, Peru",
	},
	time.June: {
		"Santorini, Greece", "Provence, France", "Banff National Park, Canada", "Iceland",
		"Serengeti, Tanzania",
	},
	time.July: {
		"Bora Bora, French Polynesia", "Amalfi Coast, Italy", "Maui, Hawaii", "Serengeti, Tanzania", "Iceland",
	},
	time.August: {
		"Bali, Indonesia", "Maldives", "Santorini, Greece", "Dubrovnik, Croatia", "Edinburgh, Scotland",
	},
	time.September: {
		"Santorini, Greece", "Tuscany, Italy", "Bali, Indonesia", "Barcelona, Spain", "Kyoto, Japan",
	},
	time.October: {
		"New England, USA", "Kyoto, Japan", "Marrakech, Morocco", "Galapagos Islands, Ecuador", "South Africa",
	},
	time.November: {
		"New York City, USA", "New Zealand", "Thailand", "Maldives", "Peru",
	},
	time.December: {
		"Aspen, Colorado", "Vienna, Austria", "Rovaniemi, Finland", "Sydney, Australia",
		"Cape Town, South Africa",
	},
}

// DestinationsByMonth clamps month into 1..12.
func DestinationsByMonth(month int) []string {
	month = min(max(month, 1), 12)
	return cloneStrings(seasonDestinations[time.Month(month)])
}

// IsPeakMonth marks the summer and December high season used for price uplifts.
func IsPeakMonth(m time.Month) bool {
	switch m {
	case time.June, time.July, time.August, time.December:
		return true
	}
	return false
}
