package catalog

// Carriers the heuristic picks from when no live fare is available.
var airlines = []string{
	"Delta Airlines",
	"United Airlines",
	"American Airlines",
	"British Airways",
	"Lufthansa",
	"Emirates",
	"Singapore Airlines",
}

var airlineNames = map[string]string{
	"AA": "American Airlines",
	"DL": "Delta Airlines",
	"UA": "United Airlines",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"EK": "Emirates",
	"SQ": "Singapore Airlines",
	"AF": "Air France",
	"KL": "KLM",
	"LX": "Swiss International Air Lines",
	"TK": "Turkish Airlines",
	"QR": "Qatar Airways",
	"IB": "Iberia",
	"AZ": "ITA Airways",
	"NH": "ANA",
	"JL": "Japan Airlines",
	"CX": "Cathay Pacific",
	"EY": "Etihad Airways",
	"QF": "Qantas",
	"NZ": "Air New Zealand",
}

// airport → city code, used by the hotel by-city search
var airportCities = map[string]string{
	"LHR": "LON", "LGW": "LON", "STN": "LON",
	"CDG": "PAR", "ORY": "PAR",
	"JFK": "NYC", "LGA": "NYC", "EWR": "NYC",
	"FCO": "ROM",
	"NRT": "TYO", "HND": "TYO",
	"KIX": "OSA",
	"DPS": "DPS",
	"SYD": "SYD",
	"ZQN": "ZQN",
}

func Airlines() []string {
	return cloneStrings(airlines)
}

// AirlineName expands an IATA carrier code.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	if code != "" {
		return code + " Airlines"
	}
	return "Unknown Airline"
}

func AirportToCity(airport string) string {
	if city, ok := airportCities[airport]; ok {
		return city
	}
	return airport
}
