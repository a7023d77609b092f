package catalog

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var coordinates = []entry[LatLng]{
	{[]string{"new york", "nyc"}, LatLng{40.7128, -74.0060}},
	{[]string{"paris"}, LatLng{48.8566, 2.3522}},
	{[]string{"london"}, LatLng{51.5074, -0.1278}},
	{[]string{"tokyo"}, LatLng{35.6762, 139.6503}},
	{[]string{"kyoto"}, LatLng{35.0116, 135.7681}},
	{[]string{"sydney"}, LatLng{-33.8688, 151.2093}},
	{[]string{"rome"}, LatLng{41.9028, 12.4964}},
	{[]string{"barcelona"}, LatLng{41.3874, 2.1686}},
	{[]string{"bali"}, LatLng{-8.3405, 115.0920}},
	{[]string{"cancun"}, LatLng{21.1619, -86.8515}},
	{[]string{"dubai"}, LatLng{25.2048, 55.2708}},
	{[]string{"phuket"}, LatLng{7.8804, 98.3923}},
	{[]string{"santorini"}, LatLng{36.3932, 25.4615}},
	{[]string{"maldives"}, LatLng{3.2028, 73.2207}},
	{[]string{"costa rica"}, LatLng{9.7489, -83.7534}},
	{[]string{"queenstown"}, LatLng{-45.0312, 168.6626}},
	{[]string{"interlaken"}, LatLng{46.6863, 7.8632}},
	{[]string{"singapore"}, LatLng{1.3521, 103.8198}},
	{[]string{"bangkok"}, LatLng{13.7563, 100.5018}},
	{[]string{"istanbul"}, LatLng{41.0082, 28.9784}},
	{[]string{"athens"}, LatLng{37.9838, 23.7275}},
	{[]string{"cairo"}, LatLng{30.0444, 31.2357}},
	{[]string{"cusco"}, LatLng{-13.5319, -71.9675}},
	{[]string{"new orleans"}, LatLng{29.9511, -90.0715}},
	{[]string{"amsterdam"}, LatLng{52.3676, 4.9041}},
	{[]string{"los angeles"}, LatLng{34.0522, -118.2437}},
	{[]string{"chicago"}, LatLng{41.8781, -87.6298}},
	{[]string{"san francisco"}, LatLng{37.7749, -122.4194}},
	{[]string{"toronto"}, LatLng{43.6532, -79.3832}},
	{[]string{"berlin"}, LatLng{52.5200, 13.4050}},
}

// Coordinates returns a map pin for a place, if the place is known.
func Coordinates(place string) (LatLng, bool) {
	return match(coordinates, place)
}
