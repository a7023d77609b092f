package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindActivities_AtMostCountAndNonNegative(t *testing.T) {
	s := NewActivityService(seeded())
	destinations := []string{"Paris, France", "London, UK", "Tokyo, Japan", "Nepal", ""}
	tags := []string{"Sightseeing", "Activity", "Food", "adventure", "relaxation", "bogus"}
	ceilings := []float64{0, 5, 40, 500}

	for _, d := range destinations {
		for _, tag := range tags {
			for _, c := range ceilings {
				for _, n := range []int{1, 2, 5} {
					got := s.FindActivities(d, tag, c, n)
					assert.LessOrEqual(t, len(got), n)
					assert.NotEmpty(t, got, "%s/%s/%v/%d", d, tag, c, n)
					for _, a := range got {
						assert.NotEmpty(t, a.Name)
						assert.GreaterOrEqual(t, a.Cost, 0.0)
						assert.Equal(t, 120, a.DurationMinutes)
						assert.Empty(t, a.StartTime)
					}
				}
			}
		}
	}
}

func TestFindActivities_FiltersByFlexibleBudget(t *testing.T) {
	s := NewActivityService(seeded())
	// per-activity budget 10 → anything up to 15 qualifies
	got := s.FindActivities("Paris, France", "Sightseeing", 20, 2)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.LessOrEqual(t, a.Cost, 15.0)
		assert.Equal(t, "Sightseeing", a.Type)
		assert.Equal(t, "Paris, France", a.Location)
	}
	names := []string{got[0].Name, got[1].Name}
	assert.ElementsMatch(t, []string{"Notre-Dame Cathedral", "Arc de Triomphe"}, names)
}

func TestFindActivities_NothingAffordableTakesCheapest(t *testing.T) {
	s := NewActivityService(seeded())
	got := s.FindActivities("Paris, France", "Food", 0, 2)
	require.Len(t, got, 2)
	names := []string{got[0].Name, got[1].Name}
	assert.ElementsMatch(t, []string{"Parisian Bakery Tour", "Wine Tasting Experience"}, names)
}

func TestFindActivities_UnknownTagFallsBackToSightseeing(t *testing.T) {
	s := NewActivityService(seeded())
	got := s.FindActivities("Tokyo, Japan", "Activity", 1000, 4)
	require.Len(t, got, 4)
	for _, a := range got {
		assert.Equal(t, "Sightseeing", a.Type)
	}
}

func TestFindActivities_ZeroCount(t *testing.T) {
	s := NewActivityService(seeded())
	assert.Empty(t, s.FindActivities("Paris, France", "Food", 100, 0))
}

func TestFindActivities_SeededSelectionIsRepeatable(t *testing.T) {
	a := NewActivityService(seeded()).FindActivities("London, UK", "Sightseeing", 1000, 2)
	b := NewActivityService(seeded()).FindActivities("London, UK", "Sightseeing", 1000, 2)
	assert.Equal(t, a, b)
}

func TestEstimateActivityCost(t *testing.T) {
	s := NewActivityService(seeded())
	assert.InDelta(t, (150.0+45+60)/3, s.EstimateActivityCost("Paris, France", "food"), 1e-9)
	assert.InDelta(t, (80.0+0)/2, s.EstimateActivityCost("Cusco, Peru", "relaxation"), 1e-9)
	assert.InDelta(t, 15*3*2, s.EstimateActivitiesCost("Cusco, Peru", "sightseeing", 3, 2), 1e-9)
}
