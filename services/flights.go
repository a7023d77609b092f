package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vacationplanner/catalog"
	"vacationplanner/models"
	"vacationplanner/observability"
)

const (
	minAdvanceFactor    = 0.7
	maxAdvanceFactor    = 1.5
	flightPeakFactor    = 1.3
	overBudgetCapFactor = 0.95
)

// FlightService prices the round trip. Live sources are tried in order and
// the static heuristic is the last resort.
type FlightService struct {
	sources []FlightSource
	timeout time.Duration
	rng     Rand
	now     func() time.Time
	log     *zap.Logger
	metrics *observability.Metrics
}

type FlightServiceOption func(*FlightService)

func WithFlightSources(sources ...FlightSource) FlightServiceOption {
	return func(s *FlightService) { s.sources = append(s.sources, sources...) }
}

func WithFlightClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) { s.now = now }
}

func WithFlightTimeout(d time.Duration) FlightServiceOption {
	return func(s *FlightService) { s.timeout = d }
}

func WithFlightMetrics(m *observability.Metrics) FlightServiceOption {
	return func(s *FlightService) { s.metrics = m }
}

func NewFlightService(rng Rand, log *zap.Logger, opts ...FlightServiceOption) *FlightService {
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = NewLockedRand(time.Now().UnixNano())
	}
	s := &FlightService{
		timeout: 8 * time.Second,
		rng:     rng,
		now:     time.Now,
		log:     log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FindBestFlight never fails: any source error, timeout, empty or
// over-budget answer moves on to the next source and finally the heuristic.
func (s *FlightService) FindBestFlight(ctx context.Context, q FlightQuery) models.Transportation {
	for _, src := range s.sources {
		quote, err := s.try(ctx, src, q)
		if err != nil {
			s.log.Warn("flight source failed", zap.String("source", src.Name()), zap.Error(err))
			continue
		}
		if quote == nil || quote.Price <= 0 || quote.Price > q.MaxBudget {
			continue
		}
		provider := quote.Airline
		if quote.Provider != "" {
			provider = quote.Provider
		}
		return s.transportation(q, provider, quote.Price)
	}

	s.metrics.SourceFallback(ctx, "flight")
	price := s.EstimateFlightPrice(q.Destination, q.Departure)
	if price > q.MaxBudget {
		price = q.MaxBudget * overBudgetCapFactor
	}
	airlines := catalog.Airlines()
	return s.transportation(q, airlines[s.rng.Intn(len(airlines))], price)
}

func (s *FlightService) try(ctx context.Context, src FlightSource, q FlightQuery) (*FlightQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return src.QuoteFlight(ctx, q)
}

func (s *FlightService) transportation(q FlightQuery, provider string, price float64) models.Transportation {
	return models.Transportation{
		Type:          "Flight",
		Origin:        q.Origin,
		Destination:   q.Destination,
		DepartureDate: q.Departure,
		ReturnDate:    q.Return,
		Provider:      provider,
		Cost:          price,
	}
}

// EstimateFlightPrice is the uncapped heuristic fare.
func (s *FlightService) EstimateFlightPrice(destination string, departure time.Time) float64 {
	return estimateFlightPrice(destination, departure, s.now())
}

func estimateFlightPrice(destination string, departure, now time.Time) float64 {
	return catalog.FlightBasePrice(destination) * AdvanceFactor(models.DaysBetween(now, departure)) *
		flightSeasonalFactor(departure.Month())
}

// AdvanceFactor rewards booking early: 2.0 − days/30, kept within [0.7, 1.5].
func AdvanceFactor(daysUntilDeparture int) float64 {
	f := 2.0 - float64(daysUntilDeparture)/30.0
	return max(minAdvanceFactor, min(maxAdvanceFactor, f))
}

func flightSeasonalFactor(m time.Month) float64 {
	if catalog.IsPeakMonth(m) {
		return flightPeakFactor
	}
	return 1.0
}
