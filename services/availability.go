package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vacationplanner/catalog"
	"vacationplanner/models"
)

type AvailabilityStatus string

const (
	StatusChecking    AvailabilityStatus = "CHECKING"
	StatusAvailable   AvailabilityStatus = "AVAILABLE"
	StatusLimited     AvailabilityStatus = "LIMITED"
	StatusUnavailable AvailabilityStatus = "UNAVAILABLE"
	StatusError       AvailabilityStatus = "ERROR"
)

type AvailabilityResult struct {
	Status         AvailabilityStatus `json:"status"`
	Message        string             `json:"message"`
	AvailableCount int                `json:"available_count"`
	LastChecked    time.Time          `json:"last_checked"`
}

type TripAvailability struct {
	TripID string             `json:"trip_id,omitempty"`
	Flight AvailabilityResult `json:"flight"`
	Hotel  AvailabilityResult `json:"hotel"`
}

// AvailabilityCallback receives flight and hotel results independently. Each
// side first reports CHECKING. Calls may arrive from different goroutines.
type AvailabilityCallback struct {
	OnFlight func(AvailabilityResult)
	OnHotel  func(AvailabilityResult)
}

// InventorySearcher is the live inventory the checker counts against.
type InventorySearcher interface {
	SearchFlights(ctx context.Context, origin, destination string, departure, ret time.Time, adults int) ([]FlightOffer, error)
	SearchHotels(ctx context.Context, airport string, checkIn, checkOut time.Time, adults int) ([]HotelOffer, error)
}

type AvailabilityService struct {
	inventory   InventorySearcher
	timeout     time.Duration
	flightDelay time.Duration
	hotelDelay  time.Duration
	now         func() time.Time
	log         *zap.Logger
}

type AvailabilityOption func(*AvailabilityService)

// WithInventory enables live counts. Without it every check is simulated.
func WithInventory(inv InventorySearcher) AvailabilityOption {
	return func(s *AvailabilityService) { s.inventory = inv }
}

// WithSimulatedDelay sets how long simulated checks take.
func WithSimulatedDelay(flight, hotel time.Duration) AvailabilityOption {
	return func(s *AvailabilityService) { s.flightDelay, s.hotelDelay = flight, hotel }
}

func WithAvailabilityTimeout(d time.Duration) AvailabilityOption {
	return func(s *AvailabilityService) { s.timeout = d }
}

func WithAvailabilityClock(now func() time.Time) AvailabilityOption {
	return func(s *AvailabilityService) { s.now = now }
}

func NewAvailabilityService(log *zap.Logger, opts ...AvailabilityOption) *AvailabilityService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &AvailabilityService{
		timeout:     10 * time.Second,
		flightDelay: 1500 * time.Millisecond,
		hotelDelay:  2 * time.Second,
		now:         time.Now,
		log:         log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// CheckTrip starts both checks in the background and returns at once.
func (s *AvailabilityService) CheckTrip(ctx context.Context, plan *models.TripPlan, cb AvailabilityCallback) {
	emit := func(f func(AvailabilityResult), r AvailabilityResult) {
		if f != nil {
			f(r)
		}
	}
	go func() {
		emit(cb.OnFlight, s.checking("flights"))
		emit(cb.OnFlight, s.CheckFlight(ctx, plan))
	}()
	go func() {
		emit(cb.OnHotel, s.checking("hotels"))
		emit(cb.OnHotel, s.CheckHotel(ctx, plan))
	}()
}

// Check runs both checks concurrently and waits for them.
func (s *AvailabilityService) Check(ctx context.Context, plan *models.TripPlan) TripAvailability {
	out := TripAvailability{TripID: plan.ID}
	var g errgroup.Group
	g.Go(func() error {
		out.Flight = s.CheckFlight(ctx, plan)
		return nil
	})
	g.Go(func() error {
		out.Hotel = s.CheckHotel(ctx, plan)
		return nil
	})
	_ = g.Wait()
	return out
}

func (s *AvailabilityService) checking(what string) AvailabilityResult {
	return AvailabilityResult{Status: StatusChecking, Message: "Checking " + what + "...", LastChecked: s.now()}
}

func (s *AvailabilityService) CheckFlight(ctx context.Context, plan *models.TripPlan) AvailabilityResult {
	if s.inventory != nil {
		origin, ok1 := catalog.AirportCode(plan.Preferences.StartingPoint)
		dest, ok2 := catalog.AirportCode(plan.Destination)
		if ok1 && ok2 {
			cctx, cancel := context.WithTimeout(ctx, s.timeout)
			offers, err := s.inventory.SearchFlights(cctx, origin, dest, plan.StartDate(), plan.EndDate(), max(plan.GroupSize(), 1))
			cancel()
			if err == nil {
				return s.flightResult(len(offers))
			}
			s.log.Warn("live flight availability failed, simulating", zap.Error(err))
		}
	}
	return s.simulateFlight(ctx, plan.Destination)
}

func (s *AvailabilityService) CheckHotel(ctx context.Context, plan *models.TripPlan) AvailabilityResult {
	checkIn, checkOut := plan.StartDate(), plan.EndDate()
	if plan.Accommodation != nil && !plan.Accommodation.CheckInDate.IsZero() {
		checkIn, checkOut = plan.Accommodation.CheckInDate, plan.Accommodation.CheckOutDate
	}
	if s.inventory != nil {
		if airport, ok := catalog.AirportCode(plan.Destination); ok {
			cctx, cancel := context.WithTimeout(ctx, s.timeout)
			offers, err := s.inventory.SearchHotels(cctx, airport, checkIn, checkOut, max(plan.GroupSize(), 1))
			cancel()
			if err == nil {
				return s.hotelResult(len(offers))
			}
			s.log.Warn("live hotel availability failed, simulating", zap.Error(err))
		}
	}
	return s.simulateHotel(ctx, checkIn)
}

func (s *AvailabilityService) flightResult(n int) AvailabilityResult {
	switch {
	case n == 0:
		return s.result(StatusUnavailable, "No flights available for these dates", 0)
	case n < 5:
		return s.result(StatusLimited, fmt.Sprintf("Only %d flights left", n), n)
	default:
		return s.result(StatusAvailable, fmt.Sprintf("%d flights available", n), n)
	}
}

func (s *AvailabilityService) hotelResult(n int) AvailabilityResult {
	switch {
	case n == 0:
		return s.result(StatusUnavailable, "No rooms available for these dates", 0)
	case n < 10:
		return s.result(StatusLimited, fmt.Sprintf("Only %d hotels with rooms left", n), n)
	default:
		return s.result(StatusAvailable, fmt.Sprintf("%d hotels with rooms available", n), n)
	}
}

func (s *AvailabilityService) simulateFlight(ctx context.Context, destination string) AvailabilityResult {
	if err := sleepCtx(ctx, s.flightDelay); err != nil {
		return s.result(StatusError, "Flight check cancelled", 0)
	}
	d := strings.ToLower(destination)
	switch {
	case strings.Contains(d, "paris"), strings.Contains(d, "london"), strings.Contains(d, "tokyo"):
		return s.result(StatusAvailable, "Multiple flights available", 15)
	case strings.Contains(d, "sydney"), strings.Contains(d, "rome"):
		return s.result(StatusLimited, "Limited seats remaining", 3)
	default:
		return s.result(StatusAvailable, "Flights available", 8)
	}
}

func (s *AvailabilityService) simulateHotel(ctx context.Context, checkIn time.Time) AvailabilityResult {
	if err := sleepCtx(ctx, s.hotelDelay); err != nil {
		return s.result(StatusError, "Hotel check cancelled", 0)
	}
	switch checkIn.Month() {
	case time.June, time.July, time.August:
		return s.result(StatusLimited, "Peak season, few rooms left", 5)
	default:
		return s.result(StatusAvailable, "Rooms available", 25)
	}
}

func (s *AvailabilityService) result(status AvailabilityStatus, msg string, n int) AvailabilityResult {
	return AvailabilityResult{Status: status, Message: msg, AvailableCount: n, LastChecked: s.now()}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
