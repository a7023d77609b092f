package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/stretchr/testify/mock"

	"vacationplanner/models"
)

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock(s string) func() time.Time {
	t := day(s)
	return func() time.Time { return t }
}

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func adventurePrefs() models.TripPreferences {
	return models.TripPreferences{
		Budget:        3000,
		Currency:      "USD",
		StartDate:     day("2025-06-01"),
		EndDate:       day("2025-06-05"),
		Theme:         "Adventure",
		GroupSize:     2,
		StartingPoint: "New York City, USA",
	}
}

// ─── fakes ───────────────────────────────────────────────────────────────────

type stubFlightSource struct {
	name  string
	quote *FlightQuote
	err   error
	calls int
	block bool
}

func (s *stubFlightSource) Name() string { return s.name }

func (s *stubFlightSource) QuoteFlight(ctx context.Context, q FlightQuery) (*FlightQuote, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.quote, s.err
}

type stubHotelSource struct {
	name  string
	quote *HotelQuote
	err   error
	calls int
}

func (s *stubHotelSource) Name() string { return s.name }

func (s *stubHotelSource) QuoteHotel(ctx context.Context, q HotelQuery) (*HotelQuote, error) {
	s.calls++
	return s.quote, s.err
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) SaveTripPlan(ctx context.Context, plan *models.TripPlan) (string, error) {
	args := m.Called(ctx, plan)
	return args.String(0), args.Error(1)
}

func (m *mockStore) LoadTripPlan(ctx context.Context, id string) (*models.TripPlan, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.TripPlan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) ListTripPlans(ctx context.Context) ([]*models.TripPlan, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]*models.TripPlan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) DeleteTripPlan(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type fakeInventory struct {
	flights []FlightOffer
	hotels  []HotelOffer
	err     error
}

func (f *fakeInventory) SearchFlights(ctx context.Context, origin, destination string, departure, ret time.Time, adults int) ([]FlightOffer, error) {
	return f.flights, f.err
}

func (f *fakeInventory) SearchHotels(ctx context.Context, airport string, checkIn, checkOut time.Time, adults int) ([]HotelOffer, error) {
	return f.hotels, f.err
}
