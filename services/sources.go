package services

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// ─── Price sources ───────────────────────────────────────────────────────────

type FlightQuery struct {
	Origin      string
	Destination string
	Departure   time.Time
	Return      time.Time
	Travelers   int
	MaxBudget   float64
}

type HotelQuery struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	GroupSize   int
	Category    string
	MaxPerNight float64
}

type FlightQuote struct {
	Airline  string
	Price    float64
	Currency string
	Provider string
}

type HotelQuote struct {
	Name          string
	Category      string
	Address       string
	PricePerNight float64
	Rating        float64
	Provider      string
}

// FlightSource is an external fare provider. A nil quote with a nil error
// means the provider had nothing usable.
type FlightSource interface {
	Name() string
	QuoteFlight(ctx context.Context, q FlightQuery) (*FlightQuote, error)
}

// HotelSource is an external lodging provider, same contract as FlightSource.
type HotelSource interface {
	Name() string
	QuoteHotel(ctx context.Context, q HotelQuery) (*HotelQuote, error)
}

// ─── Randomness ──────────────────────────────────────────────────────────────

// Rand is the subset of *rand.Rand the heuristics draw from.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand returns a Rand safe for concurrent requests.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}
