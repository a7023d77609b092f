package catalog

import "strings"

const (
	DefaultFlightBasePrice = 1000.0
	DefaultHotelBasePrice  = 150.0
)

type cityInfo struct {
	flightBase float64
	hotelBase  float64
	airport    string
}

var cities = []entry[cityInfo]{
	{[]string{"paris"}, cityInfo{800, 150, "CDG"}},
	{[]string{"london"}, cityInfo{750, 180, "LHR"}},
	{[]string{"tokyo"}, cityInfo{1200, 120, "NRT"}},
	{[]string{"new york", "nyc"}, cityInfo{500, 200, "JFK"}},
	{[]string{"sydney"}, cityInfo{1500, 160, "SYD"}},
	{[]string{"rome"}, cityInfo{850, 140, "FCO"}},
	{[]string{"barcelona"}, cityInfo{780, 130, "BCN"}},
	{[]string{"bali"}, cityInfo{1100, 80, "DPS"}},
	{[]string{"cancun"}, cityInfo{450, 110, "CUN"}},
	{[]string{"dubai"}, cityInfo{950, 250, "DXB"}},
	{[]string{"phuket"}, cityInfo{900, 90, "HKT"}},
	{[]string{"santorini"}, cityInfo{920, 220, "JTR"}},
	{[]string{"maldives"}, cityInfo{1300, 400, "MLE"}},
	{[]string{"costa rica"}, cityInfo{600, 100, "SJO"}},
	{[]string{"queenstown"}, cityInfo{1400, 170, "ZQN"}},
}

// Airports for common origins that aren't priced destinations.
var originAirports = []entry[string]{
	{[]string{"los angeles"}, "LAX"},
	{[]string{"chicago"}, "ORD"},
	{[]string{"san francisco"}, "SFO"},
	{[]string{"boston"}, "BOS"},
	{[]string{"miami"}, "MIA"},
	{[]string{"toronto"}, "YYZ"},
	{[]string{"berlin"}, "BER"},
	{[]string{"frankfurt"}, "FRA"},
	{[]string{"amsterdam"}, "AMS"},
	{[]string{"madrid"}, "MAD"},
	{[]string{"istanbul"}, "IST"},
	{[]string{"singapore"}, "SIN"},
	{[]string{"bangkok"}, "BKK"},
	{[]string{"hong kong"}, "HKG"},
	{[]string{"kyoto"}, "KIX"},
	{[]string{"athens"}, "ATH"},
}

var bookingDestIDs = []entry[string]{
	{[]string{"paris"}, "-1456928"},
	{[]string{"london"}, "-2601889"},
	{[]string{"tokyo"}, "-246227"},
	{[]string{"new york", "nyc"}, "20088325"},
	{[]string{"sydney"}, "-1603135"},
	{[]string{"rome"}, "-126693"},
	{[]string{"queenstown"}, "-2140479"},
}

// FlightBasePrice is the round-trip starting price for a destination.
func FlightBasePrice(destination string) float64 {
	if c, ok := match(cities, destination); ok {
		return c.flightBase
	}
	return DefaultFlightBasePrice
}

// HotelBasePrice is the nightly starting price for a destination.
func HotelBasePrice(destination string) float64 {
	if c, ok := match(cities, destination); ok {
		return c.hotelBase
	}
	return DefaultHotelBasePrice
}

// AirportCode resolves a place name, or a bare IATA code, to an airport.
func AirportCode(place string) (string, bool) {
	p := strings.TrimSpace(place)
	if isIATA(p) {
		return strings.ToUpper(p), true
	}
	if c, ok := match(cities, p); ok {
		return c.airport, true
	}
	return match(originAirports, p)
}

// BookingDestID is the Booking.com destination id, when one is known.
func BookingDestID(destination string) (string, bool) {
	return match(bookingDestIDs, destination)
}

func isIATA(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
