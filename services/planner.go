package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"vacationplanner/models"
	"vacationplanner/observability"
)

// CurrentTripID addresses the most recently planned trip, saved or not.
const CurrentTripID = "current"

// PlanStore is the durable home of trip plans. SaveTripPlan assigns an id
// when the plan has none and returns it.
type PlanStore interface {
	SaveTripPlan(ctx context.Context, plan *models.TripPlan) (string, error)
	LoadTripPlan(ctx context.Context, id string) (*models.TripPlan, error)
	ListTripPlans(ctx context.Context) ([]*models.TripPlan, error)
	DeleteTripPlan(ctx context.Context, id string) error
}

// TripPlanner runs the planning pipeline and owns the current-plan slot.
// A nil store leaves it in single-plan, in-memory mode.
type TripPlanner struct {
	recommender *Recommender
	flights     *FlightService
	hotels      *HotelService
	itinerary   *ItineraryBuilder
	store       PlanStore
	metrics     *observability.Metrics
	log         *zap.Logger
	now         func() time.Time

	mu      sync.RWMutex
	current *models.TripPlan
}

type PlannerDeps struct {
	Recommender *Recommender
	Flights     *FlightService
	Hotels      *HotelService
	Itinerary   *ItineraryBuilder
	Store       PlanStore
	Metrics     *observability.Metrics
	Log         *zap.Logger
	Now         func() time.Time
}

func NewTripPlanner(d PlannerDeps) *TripPlanner {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Recommender == nil {
		d.Recommender = NewRecommender()
	}
	return &TripPlanner{
		recommender: d.Recommender,
		flights:     d.Flights,
		hotels:      d.Hotels,
		itinerary:   d.Itinerary,
		store:       d.Store,
		metrics:     d.Metrics,
		log:         d.Log,
		now:         d.Now,
	}
}

func (p *TripPlanner) HasStore() bool { return p.store != nil }

// PlanTrip builds a plan from prefs, makes it current and tries to persist
// it. A persistence failure leaves the plan usable with an empty ID.
func (p *TripPlanner) PlanTrip(ctx context.Context, prefs models.TripPreferences) (*models.TripPlan, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	prefs.Currency = prefs.CurrencyOrDefault()

	recommended := !prefs.HasDestination()
	destination := strings.TrimSpace(prefs.Destination)
	if recommended {
		destination = p.recommender.RecommendDestination(prefs.Theme, prefs.StartDate)
	}

	plan := &models.TripPlan{
		Preferences:     prefs,
		Destination:     destination,
		BudgetBreakdown: models.NewBudgetBreakdown(prefs.Budget, prefs.Currency),
		CreatedAt:       p.now().UTC(),
	}

	flight := p.flights.FindBestFlight(ctx, FlightQuery{
		Origin:      prefs.StartingPoint,
		Destination: destination,
		Departure:   prefs.StartDate,
		Return:      prefs.EndDate,
		Travelers:   prefs.GroupSize,
		MaxBudget:   plan.BudgetBreakdown.Transportation,
	})
	plan.Transportation = &flight

	hotel := p.hotels.FindBestHotel(ctx, HotelQueryFor(destination, prefs.StartDate, prefs.EndDate,
		prefs.GroupSize, plan.BudgetBreakdown.Accommodation))
	plan.Accommodation = &hotel

	p.itinerary.Build(plan, prefs)

	p.persist(ctx, plan)
	p.setCurrent(plan)
	p.metrics.PlanGenerated(ctx, recommended)

	p.log.Info("trip planned",
		zap.String("id", plan.ID),
		zap.String("destination", destination),
		zap.Bool("recommended", recommended),
		zap.Int("days", len(plan.DailyItineraries)),
	)
	return plan.Clone(), nil
}

func (p *TripPlanner) persist(ctx context.Context, plan *models.TripPlan) {
	if p.store == nil {
		return
	}
	id, err := p.store.SaveTripPlan(ctx, plan)
	if err != nil {
		p.log.Warn("trip plan not persisted, keeping it in memory", zap.Error(err))
		return
	}
	plan.ID = id
}

func (p *TripPlanner) setCurrent(plan *models.TripPlan) {
	p.mu.Lock()
	p.current = plan.Clone()
	p.mu.Unlock()
}

// CurrentPlan returns a copy of the most recent plan, or nil.
func (p *TripPlanner) CurrentPlan() *models.TripPlan {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.Clone()
}

// GetTrip looks in memory first, then in the store.
func (p *TripPlanner) GetTrip(ctx context.Context, id string) (*models.TripPlan, error) {
	if cur := p.CurrentPlan(); cur != nil && (id == CurrentTripID || (id != "" && cur.ID == id)) {
		return cur, nil
	}
	if p.store == nil || id == CurrentTripID || id == "" {
		return nil, &models.NotFoundError{Resource: "trip", ID: id}
	}
	plan, err := p.store.LoadTripPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// ListTrips reads the store when there is one; otherwise it lists the
// current plan, if any.
func (p *TripPlanner) ListTrips(ctx context.Context) ([]*models.TripPlan, error) {
	if p.store != nil {
		plans, err := p.store.ListTripPlans(ctx)
		if err == nil {
			return plans, nil
		}
		p.log.Warn("listing trip plans from store failed", zap.Error(err))
	}
	if cur := p.CurrentPlan(); cur != nil {
		return []*models.TripPlan{cur}, nil
	}
	return []*models.TripPlan{}, nil
}

// SaveCurrent persists the current plan and records the assigned id.
func (p *TripPlanner) SaveCurrent(ctx context.Context) (*models.TripPlan, error) {
	return p.SaveTrip(ctx, CurrentTripID)
}

// SaveTrip (re)persists a known plan.
func (p *TripPlanner) SaveTrip(ctx context.Context, id string) (*models.TripPlan, error) {
	plan, err := p.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.store == nil {
		return nil, models.ErrStoreUnavailable
	}

	prevID := plan.ID
	newID, err := p.store.SaveTripPlan(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = newID

	p.mu.Lock()
	if p.current != nil && (id == CurrentTripID || p.current.ID == prevID) {
		p.current.ID = newID
	}
	p.mu.Unlock()
	return plan, nil
}

// DeleteTrip drops the plan from memory and the store. It reports whether
// anything was removed.
func (p *TripPlanner) DeleteTrip(ctx context.Context, id string) (bool, error) {
	p.mu.Lock()
	wasCurrent := p.current != nil && (id == CurrentTripID || (id != "" && p.current.ID == id))
	storedID := id
	if wasCurrent {
		storedID = p.current.ID
		p.current = nil
	}
	p.mu.Unlock()

	if p.store == nil || storedID == "" || storedID == CurrentTripID {
		return wasCurrent, nil
	}
	err := p.store.DeleteTripPlan(ctx, storedID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, models.ErrNotFound):
		return wasCurrent, nil
	default:
		return wasCurrent, err
	}
}
