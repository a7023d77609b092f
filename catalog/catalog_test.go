package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTheme(t *testing.T) {
	tests := map[string]string{
		"adventure":        ThemeAdventure,
		" Beach ":          ThemeBeach,
		"FOOD":             ThemeFoodCulture,
		"food and culture": ThemeFoodCulture,
		"Food & Culture":   ThemeFoodCulture,
		"city":             ThemeCity,
		"City Exploration": ThemeCity,
		"Skiing":           "Skiing",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeTheme(in), in)
	}
}

func TestDestinationsByTheme_ReturnsCopy(t *testing.T) {
	a := DestinationsByTheme("adventure")
	assert.Equal(t, "Queenstown, New Zealand", a[0])
	a[0] = "mutated"
	assert.Equal(t, "Queenstown, New Zealand", DestinationsByTheme("Adventure")[0])

	assert.Empty(t, DestinationsByTheme("unknown"))
}

func TestDestinationsByMonth_Clamps(t *testing.T) {
	assert.Equal(t, DestinationsByMonth(1), DestinationsByMonth(-4))
	assert.Equal(t, DestinationsByMonth(12), DestinationsByMonth(13))
	assert.Equal(t, "Paris, France", DestinationsByMonth(4)[0])
}

func TestBasePrices(t *testing.T) {
	assert.Equal(t, 800.0, FlightBasePrice("Paris, France"))
	assert.Equal(t, 500.0, FlightBasePrice("New York City, USA"))
	assert.Equal(t, DefaultFlightBasePrice, FlightBasePrice("Nepal"))
	assert.Equal(t, 400.0, HotelBasePrice("Maldives"))
	assert.Equal(t, DefaultHotelBasePrice, HotelBasePrice(""))
}

func TestAirportCode(t *testing.T) {
	code, ok := AirportCode("Queenstown, New Zealand")
	assert.True(t, ok)
	assert.Equal(t, "ZQN", code)

	code, ok = AirportCode("lax")
	assert.True(t, ok)
	assert.Equal(t, "LAX", code)

	_, ok = AirportCode("Moab, Utah, USA")
	assert.False(t, ok)
}

func TestActivities_Fallbacks(t *testing.T) {
	items, bucket := Activities("Paris, France", "Food")
	assert.Equal(t, BucketFood, bucket)
	assert.Len(t, items, 3)

	items, bucket = Activities("Paris, France", "Activity")
	assert.Equal(t, BucketSightseeing, bucket)
	assert.Equal(t, "Eiffel Tower", items[0].Name)

	// Paris has no relaxation bucket of its own.
	items, bucket = Activities("Paris, France", "relaxation")
	assert.Equal(t, BucketSightseeing, bucket)
	assert.Equal(t, "Eiffel Tower", items[0].Name)

	items, bucket = Activities("Nepal", "relaxation")
	assert.Equal(t, BucketRelaxation, bucket)
	assert.Equal(t, "Spa Day", items[0].Name)
}

func TestHotels(t *testing.T) {
	assert.Equal(t, "The Savoy", Hotels("London, UK")[0].Name)
	assert.Equal(t, "Luxury Resort", Hotels("Cusco, Peru")[0].Name)
	assert.Equal(t, 2.0, CategoryFactor(CategoryLuxury))
	assert.Equal(t, 1.0, CategoryFactor("Hostel"))
}

func TestAirlineName(t *testing.T) {
	assert.Equal(t, "Lufthansa", AirlineName("LH"))
	assert.Equal(t, "ZZ Airlines", AirlineName("ZZ"))
	assert.Equal(t, "Unknown Airline", AirlineName(""))
}

func TestCategoryFactor_IgnoresCase(t *testing.T) {
	assert.Equal(t, 2.0, CategoryFactor("luxury"))
	assert.Equal(t, 1.0, CategoryFactor("MID-RANGE"))
	assert.Equal(t, 0.6, CategoryFactor(" budget "))
	assert.Equal(t, 1.0, CategoryFactor("Hostel"))
	assert.Equal(t, []string{CategoryLuxury, CategoryMidRange, CategoryBudget}, Categories())
}

func TestHasActivityCatalog(t *testing.T) {
	assert.True(t, HasActivityCatalog("Paris, France"))
	assert.False(t, HasActivityCatalog("Cusco, Peru"))
}
