package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vacationplanner/models"
)

func newTestPlanner(store PlanStore) *TripPlanner {
	rng := seeded()
	return NewTripPlanner(PlannerDeps{
		Flights:   NewFlightService(rng, nil, WithFlightClock(fixedClock("2025-03-01"))),
		Hotels:    NewHotelService(nil),
		Itinerary: NewItineraryBuilder(NewActivityService(rng)),
		Store:     store,
		Now:       fixedClock("2025-03-01"),
	})
}

func TestItineraryBuilder_Build(t *testing.T) {
	prefs := adventurePrefs()
	plan := &models.TripPlan{
		Destination:     "Paris, France",
		BudgetBreakdown: models.NewBudgetBreakdown(prefs.Budget, "USD"),
	}
	NewItineraryBuilder(NewActivityService(seeded())).Build(plan, prefs)

	require.Len(t, plan.DailyItineraries, 5)
	for i, d := range plan.DailyItineraries {
		assert.Equal(t, i+1, d.Day)
		assert.Equal(t, prefs.StartDate.AddDate(0, 0, i), d.Date)
		assert.InDelta(t, 60+90, d.DailyBudget, 1e-9)
		assert.LessOrEqual(t, len(d.Morning), 2)
		assert.LessOrEqual(t, len(d.Afternoon), 2)
		assert.LessOrEqual(t, len(d.Evening), 2)
		assert.NotEmpty(t, d.Morning)
		assert.NotEmpty(t, d.Evening)
		assert.InDelta(t, d.ActualCost(), d.DailyCost, 1e-9)
		for _, a := range d.Evening {
			assert.Equal(t, "Food", a.Type)
		}
	}
}

func TestPlanTrip_RecommendedScenario(t *testing.T) {
	p := newTestPlanner(nil)

	plan, err := p.PlanTrip(context.Background(), adventurePrefs())
	require.NoError(t, err)

	assert.Equal(t, "Queenstown, New Zealand", plan.Destination)
	assert.Empty(t, plan.ID)

	b := plan.BudgetBreakdown
	assert.InDelta(t, 1200, b.Transportation, 1e-9)
	assert.InDelta(t, 900, b.Accommodation, 1e-9)
	assert.InDelta(t, 450, b.Food, 1e-9)
	assert.InDelta(t, 300, b.Activities, 1e-9)
	assert.InDelta(t, 150, b.Misc, 1e-9)

	require.Len(t, plan.DailyItineraries, 5)
	for i, d := range plan.DailyItineraries {
		assert.Equal(t, i+1, d.Day)
		assert.LessOrEqual(t, len(d.Morning), 2)
		assert.LessOrEqual(t, len(d.Afternoon), 2)
		assert.LessOrEqual(t, len(d.Evening), 2)
	}

	require.NotNil(t, plan.Transportation)
	assert.LessOrEqual(t, plan.Transportation.Cost, b.Transportation)
	assert.Equal(t, "New York City, USA", plan.Transportation.Origin)
	require.NotNil(t, plan.Accommodation)
	assert.Equal(t, 4, plan.Accommodation.Nights())

	cur := p.CurrentPlan()
	require.NotNil(t, cur)
	assert.Equal(t, plan.Destination, cur.Destination)
}

func TestPlanTrip_UserDestinationWins(t *testing.T) {
	p := newTestPlanner(nil)
	prefs := adventurePrefs()
	prefs.Destination = "  Tokyo, Japan "

	plan, err := p.PlanTrip(context.Background(), prefs)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo, Japan", plan.Destination)
}

func TestPlanTrip_InvalidPreferences(t *testing.T) {
	p := newTestPlanner(nil)
	prefs := adventurePrefs()
	prefs.EndDate = prefs.StartDate.AddDate(0, 0, -1)

	_, err := p.PlanTrip(context.Background(), prefs)
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Nil(t, p.CurrentPlan())
}

func TestPlanTrip_PersistsAndAssignsID(t *testing.T) {
	store := &mockStore{}
	store.On("SaveTripPlan", mock.Anything, mock.AnythingOfType("*models.TripPlan")).Return("trip-1", nil).Once()
	p := newTestPlanner(store)

	plan, err := p.PlanTrip(context.Background(), adventurePrefs())
	require.NoError(t, err)
	assert.Equal(t, "trip-1", plan.ID)

	got, err := p.GetTrip(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.Equal(t, plan.Destination, got.Destination)
	store.AssertExpectations(t)
}

func TestPlanTrip_StoreFailureKeepsPlanInMemory(t *testing.T) {
	store := &mockStore{}
	store.On("SaveTripPlan", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
	p := newTestPlanner(store)

	plan, err := p.PlanTrip(context.Background(), adventurePrefs())
	require.NoError(t, err)
	assert.Empty(t, plan.ID)

	got, err := p.GetTrip(context.Background(), CurrentTripID)
	require.NoError(t, err)
	assert.Equal(t, plan.Destination, got.Destination)
}

func TestGetTrip_FallsBackToStore(t *testing.T) {
	store := &mockStore{}
	stored := &models.TripPlan{ID: "old", Destination: "Rome, Italy"}
	store.On("LoadTripPlan", mock.Anything, "old").Return(stored, nil)
	store.On("LoadTripPlan", mock.Anything, "missing").Return(nil, &models.NotFoundError{Resource: "trip", ID: "missing"})
	p := newTestPlanner(store)

	got, err := p.GetTrip(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, "Rome, Italy", got.Destination)

	_, err = p.GetTrip(context.Background(), "missing")
	assert.True(t, models.IsNotFound(err))
}

func TestGetTrip_NoStoreUnknownID(t *testing.T) {
	p := newTestPlanner(nil)
	_, err := p.GetTrip(context.Background(), "nope")
	assert.True(t, models.IsNotFound(err))
}

func TestListTrips(t *testing.T) {
	p := newTestPlanner(nil)
	plans, err := p.ListTrips(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)

	_, err = p.PlanTrip(context.Background(), adventurePrefs())
	require.NoError(t, err)
	plans, err = p.ListTrips(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 1)

	store := &mockStore{}
	store.On("ListTripPlans", mock.Anything).Return([]*models.TripPlan{{ID: "a"}, {ID: "b"}}, nil)
	plans, err = newTestPlanner(store).ListTrips(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 2)
}

func TestSaveCurrent(t *testing.T) {
	p := newTestPlanner(nil)
	_, err := p.SaveCurrent(context.Background())
	assert.True(t, models.IsNotFound(err))

	_, err = p.PlanTrip(context.Background(), adventurePrefs())
	require.NoError(t, err)
	_, err = p.SaveCurrent(context.Background())
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)

	store := &mockStore{}
	store.On("SaveTripPlan", mock.Anything, mock.Anything).Return("", errors.New("down")).Once()
	store.On("SaveTripPlan", mock.Anything, mock.Anything).Return("saved-1", nil).Once()
	p = newTestPlanner(store)
	_, err = p.PlanTrip(context.Background(), adventurePrefs())
	require.NoError(t, err)

	saved, err := p.SaveCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "saved-1", saved.ID)
	assert.Equal(t, "saved-1", p.CurrentPlan().ID)
}

func TestDeleteTrip(t *testing.T) {
	// in-memory only
	p := newTestPlanner(nil)
	_, err := p.PlanTrip(context.Background(), adventurePrefs())
	require.NoError(t, err)

	ok, err := p.DeleteTrip(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.DeleteTrip(context.Background(), CurrentTripID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, p.CurrentPlan())

	// with a store
	store := &mockStore{}
	store.On("SaveTripPlan", mock.Anything, mock.Anything).Return("t-9", nil)
	store.On("DeleteTripPlan", mock.Anything, "t-9").Return(nil)
	store.On("DeleteTripPlan", mock.Anything, "gone").Return(models.ErrNotFound)
	p = newTestPlanner(store)
	_, err = p.PlanTrip(context.Background(), adventurePrefs())
	require.NoError(t, err)

	ok, err = p.DeleteTrip(context.Background(), "t-9")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, p.CurrentPlan())

	ok, err = p.DeleteTrip(context.Background(), "gone")
	require.NoError(t, err)
	assert.False(t, ok)
	store.AssertExpectations(t)
}

func TestCurrentPlan_IsACopy(t *testing.T) {
	p := newTestPlanner(nil)
	_, err := p.PlanTrip(context.Background(), adventurePrefs())
	require.NoError(t, err)

	c := p.CurrentPlan()
	c.Destination = "mutated"
	c.DailyItineraries[0].Morning = nil
	assert.Equal(t, "Queenstown, New Zealand", p.CurrentPlan().Destination)
	assert.NotEmpty(t, p.CurrentPlan().DailyItineraries[0].Morning)
}
