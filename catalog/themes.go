package catalog

import "strings"

const (
	ThemeAdventure   = "Adventure"
	ThemeRelaxation  = "Relaxation"
	ThemeBeach       = "Beach"
	ThemeNature      = "Nature"
	ThemeFoodCulture = "Food & Culture"
	ThemeCity        = "City Exploration"
	ThemeHistorical  = "Historical"
)

// FallbackDestination is recommended when neither table yields anything.
const FallbackDestination = "Paris, France"

var themeOrder = []string{
	ThemeAdventure, ThemeRelaxation, ThemeBeach, ThemeNature,
	ThemeFoodCulture, ThemeCity, ThemeHistorical,
}

var themeDestinations = map[string][]string{
	ThemeAdventure: {
		"Queenstown, New Zealand", "Interlaken, Switzerland", "Moab, Utah, USA",
		"Costa Rica", "Nepal",
	},
	ThemeRelaxation: {
		"Bali, Indonesia", "Maldives", "Santorini, Greece", "Tulum, Mexico", "Seychelles",
	},
	ThemeBeach: {
		"Phuket, Thailand", "Cancun, Mexico", "Bora Bora, French Polynesia",
		"Amalfi Coast, Italy", "Gold Coast, Australia",
	},
	ThemeNature: {
		"Banff National Park, Canada", "Patagonia, Argentina/Chile", "Serengeti, Tanzania",
		"Yosemite National Park, USA", "Amazon Rainforest, Brazil",
	},
	ThemeFoodCulture: {
		"Tokyo, Japan", "Barcelona, Spain", "New Orleans, USA", "Bangkok, Thailand",
		"Istanbul, Turkey",
	},
	ThemeCity: {
		"New York City, USA", "London, UK", "Paris, France", "Singapore", "Dubai, UAE",
	},
	ThemeHistorical: {
		"Rome, Italy", "Athens, Greece", "Cairo, Egypt", "Kyoto, Japan", "Cusco, Peru",
	},
}

var themeAliases = map[string]string{
	"adventure":        ThemeAdventure,
	"relaxation":       ThemeRelaxation,
	"relax":            ThemeRelaxation,
	"beach":            ThemeBeach,
	"nature":           ThemeNature,
	"food":             ThemeFoodCulture,
	"food & culture":   ThemeFoodCulture,
	"food and culture": ThemeFoodCulture,
	"culture":          ThemeFoodCulture,
	"city":             ThemeCity,
	"city exploration": ThemeCity,
	"historical":       ThemeHistorical,
	"history":          ThemeHistorical,
}

// NormalizeTheme maps a free-form theme to its canonical key. Unknown themes
// come back trimmed but otherwise untouched.
func NormalizeTheme(theme string) string {
	t := strings.TrimSpace(theme)
	if canon, ok := themeAliases[strings.ToLower(t)]; ok {
		return canon
	}
	for _, canon := range themeOrder {
		if strings.EqualFold(canon, t) {
			return canon
		}
	}
	return t
}

// Themes lists the canonical themes in display order.
func Themes() []string {
	return cloneStrings(themeOrder)
}

// DestinationsByTheme returns nil for unknown themes.
func DestinationsByTheme(theme string) []string {
	return cloneStrings(themeDestinations[NormalizeTheme(theme)])
}
