package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacationplanner/middleware"
	"vacationplanner/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, store Pinger) *gin.Engine {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	clock := func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	planner := services.NewTripPlanner(services.PlannerDeps{
		Flights:   services.NewFlightService(rng, nil, services.WithFlightClock(clock)),
		Hotels:    services.NewHotelService(nil),
		Itinerary: services.NewItineraryBuilder(services.NewActivityService(rng)),
		Now:       clock,
	})
	h := New(Deps{
		Planner:      planner,
		Availability: services.NewAvailabilityService(nil, services.WithSimulatedDelay(0, 0)),
		Store:        store,
		Now:          clock,
	})

	r := gin.New()
	r.Use(middleware.RequestID())
	h.Register(r.Group("/api"))
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

var adventureRequest = PlanRequest{
	Budget:        3000,
	StartDate:     "2025-06-01",
	EndDate:       "2025-06-05",
	Theme:         "Adventure",
	GroupSize:     2,
	StartingPoint: "New York City, USA",
}

func planCurrent(t *testing.T, r http.Handler) map[string]any {
	t.Helper()
	w := do(r, http.MethodPost, "/api/trips/plan", adventureRequest)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[map[string]any](t, w)
}

func TestHealth(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "disabled", body["store"])

	w = do(newTestRouter(t, stubPinger{err: errors.New("dial tcp: refused")}), http.MethodGet, "/api/health", nil)
	assert.Equal(t, "error: dial tcp: refused", decode[map[string]string](t, w)["store"])

	w = do(newTestRouter(t, stubPinger{}), http.MethodGet, "/api/health", nil)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["store"])
}

func TestPlanTrip(t *testing.T) {
	r := newTestRouter(t, nil)
	plan := planCurrent(t, r)

	assert.Equal(t, "Queenstown, New Zealand", plan["destination"])
	assert.Len(t, plan["daily_itineraries"], 5)
	budget := plan["budget_breakdown"].(map[string]any)
	assert.InDelta(t, 1200, budget["transportation"], 1e-9)
	assert.Equal(t, "USD", budget["currency"])

	w := do(r, http.MethodGet, "/api/trips/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Queenstown, New Zealand", decode[map[string]any](t, w)["destination"])

	w = do(r, http.MethodGet, "/api/trips", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Trips []TripSummary `json:"trips"`
		Count int           `json:"count"`
	}](t, w)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, services.CurrentTripID, list.Trips[0].ID)
	assert.Equal(t, "2025-06-01", list.Trips[0].StartDate)
	assert.Equal(t, "Adventure", list.Trips[0].Theme)
}

func TestPlanTrip_BadRequests(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/api/trips/plan", `{"budget": 100`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode[ErrorResponse](t, w).Code)

	req := adventureRequest
	req.StartDate = ""
	w = do(r, http.MethodPost, "/api/trips/plan", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = adventureRequest
	req.StartDate = "06/01/2025"
	w = do(r, http.MethodPost, "/api/trips/plan", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	e := decode[ErrorResponse](t, w)
	assert.Equal(t, "validation_error", e.Code)
	assert.Contains(t, e.Error, "start_date")
	assert.NotEmpty(t, e.RequestID)

	req = adventureRequest
	req.EndDate = "2025-05-30"
	w = do(r, http.MethodPost, "/api/trips/plan", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[ErrorResponse](t, w).Error, "end_date")

	req = adventureRequest
	req.Budget = -5
	w = do(r, http.MethodPost, "/api/trips/plan", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTrip_NotFound(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/trips/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/trips/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	e := decode[ErrorResponse](t, w)
	assert.Equal(t, "not_found", e.Code)
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), e.RequestID)
}

func TestSaveTrip_NoStore(t *testing.T) {
	r := newTestRouter(t, nil)
	planCurrent(t, r)

	w := do(r, http.MethodPost, "/api/trips/current/save", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "store_unavailable", decode[ErrorResponse](t, w).Code)
}

func TestDeleteTrip(t *testing.T) {
	r := newTestRouter(t, nil)
	planCurrent(t, r)

	w := do(r, http.MethodDelete, "/api/trips/current", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/api/trips/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecommendations(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/recommendations?theme=adventure&start_date=2025-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[RecommendationsResponse](t, w)
	assert.Equal(t, "Adventure", body.Theme)
	assert.Equal(t, "June", body.Month)
	require.NotEmpty(t, body.Destinations)
	assert.Equal(t, "Queenstown, New Zealand", body.Destinations[0])
	assert.Equal(t, "Queenstown, New Zealand", body.Themed[0])
	assert.Equal(t, "Santorini, Greece", body.Seasonal[0])
	assert.NotEmpty(t, body.Themes)

	w = do(r, http.MethodGet, "/api/recommendations?theme=knitting&start_date=2025-06-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"themed":[]`)

	w = do(r, http.MethodGet, "/api/recommendations?theme=adventure", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "March", decode[RecommendationsResponse](t, w).Month)

	w = do(r, http.MethodGet, "/api/recommendations?start_date=June", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookTrip(t *testing.T) {
	r := newTestRouter(t, nil)

	booking := map[string]string{
		"trip_id":       "current",
		"traveler_name": "Ada Lovelace",
		"email":         "ada@example.com",
		"phone":         "+44 20 7946 0000",
		"payment_last4": "4242",
	}

	w := do(r, http.MethodPost, "/api/booking/book", booking)
	assert.Equal(t, http.StatusNotFound, w.Code, "nothing planned yet")

	planCurrent(t, r)
	w = do(r, http.MethodPost, "/api/booking/book", booking)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[services.BookingResult](t, w)
	assert.True(t, res.Success)
	assert.True(t, strings.HasPrefix(res.FlightConfirmation, "FL-"))
	assert.True(t, strings.HasPrefix(res.HotelConfirmation, "HT-"))
	assert.Contains(t, res.Message, "Booking confirmed for Ada Lovelace.")
	assert.Contains(t, res.Message, "****4242")

	for _, field := range []string{"traveler_name", "email", "phone", "payment_last4", "trip_id"} {
		bad := map[string]string{}
		for k, v := range booking {
			if k != field {
				bad[k] = v
			}
		}
		w = do(r, http.MethodPost, "/api/booking/book", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code, field)
	}

	bad := map[string]string{}
	for k, v := range booking {
		bad[k] = v
	}
	bad["payment_last4"] = "42"
	w = do(r, http.MethodPost, "/api/booking/book", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailability(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/booking/availability/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	planCurrent(t, r)
	w = do(r, http.MethodGet, "/api/booking/availability/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[services.TripAvailability](t, w)
	assert.Equal(t, "current", out.TripID)
	assert.Equal(t, services.StatusAvailable, out.Flight.Status)
	assert.Equal(t, 8, out.Flight.AvailableCount)
	// June is peak season
	assert.Equal(t, services.StatusLimited, out.Hotel.Status)
}

func TestExport(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/export/pdf/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	planCurrent(t, r)

	w = do(r, http.MethodGet, "/api/export/pdf/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=trip-plan-current.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = do(r, http.MethodGet, "/api/export/excel/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=trip-plan-current.xlsx", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	// xlsx is a zip archive
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestTripMap(t *testing.T) {
	r := newTestRouter(t, nil)
	planCurrent(t, r)

	w := do(r, http.MethodGet, "/api/trips/current/map", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Trip to Queenstown, New Zealand")

	w = do(r, http.MethodGet, "/api/trips/current/map?format=json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	m := decode[services.TripMap](t, w)
	assert.Equal(t, services.MapProviderOSM, m.Provider)
	assert.NotEmpty(t, m.Points)

	w = do(r, http.MethodGet, "/api/trips/nope/map", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEstimates(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/estimates?destination=Paris,%20France&start_date=2025-03-10&end_date=2025-03-12&group_size=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	est := decode[services.CostEstimate](t, w)
	assert.Equal(t, "Paris, France", est.Destination)
	assert.Equal(t, 2, est.Nights)
	assert.InDelta(t, 1200, est.Flight, 1e-9)
	assert.InDelta(t, 300, est.Accommodation, 1e-9)
	assert.Len(t, est.HotelByCategory, 3)
	assert.True(t, est.CuratedActivities)

	w = do(r, http.MethodGet, "/api/estimates?theme=adventure&start_date=2025-06-01&end_date=2025-06-03", nil)
	require.Equal(t, http.StatusOK, w.Code)
	est = decode[services.CostEstimate](t, w)
	assert.True(t, est.Recommended)
	assert.Equal(t, "Queenstown, New Zealand", est.Destination)

	w = do(r, http.MethodGet, "/api/estimates?start_date=2025-06-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/estimates?start_date=2025-06-05&end_date=2025-06-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}
