package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"vacationplanner/models"
)

// noQuote remembers that a source answered with nothing, so we don't ask again.
type noQuote struct{}

// QuoteCache memoizes source answers for a short while. Errors are never cached.
type QuoteCache struct {
	c *cache.Cache
}

func NewQuoteCache(ttl time.Duration) *QuoteCache {
	return &QuoteCache{c: cache.New(ttl, 2*ttl)}
}

func (qc *QuoteCache) Flights(src FlightSource) FlightSource {
	return &cachedFlightSource{inner: src, cache: qc.c}
}

func (qc *QuoteCache) Hotels(src HotelSource) HotelSource {
	return &cachedHotelSource{inner: src, cache: qc.c}
}

func (qc *QuoteCache) Len() int { return qc.c.ItemCount() }

type cachedFlightSource struct {
	inner FlightSource
	cache *cache.Cache
}

func (s *cachedFlightSource) Name() string { return s.inner.Name() }

func (s *cachedFlightSource) QuoteFlight(ctx context.Context, q FlightQuery) (*FlightQuote, error) {
	key := fmt.Sprintf("flight|%s|%s|%s|%s|%s|%.2f", s.inner.Name(),
		strings.ToLower(q.Origin), strings.ToLower(q.Destination),
		q.Departure.Format(models.DateLayout), q.Return.Format(models.DateLayout), q.MaxBudget)

	if v, ok := s.cache.Get(key); ok {
		if fq, ok := v.(FlightQuote); ok {
			return &fq, nil
		}
		return nil, nil
	}

	quote, err := s.inner.QuoteFlight(ctx, q)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		s.cache.SetDefault(key, noQuote{})
		return nil, nil
	}
	s.cache.SetDefault(key, *quote)
	return quote, nil
}

type cachedHotelSource struct {
	inner HotelSource
	cache *cache.Cache
}

func (s *cachedHotelSource) Name() string { return s.inner.Name() }

func (s *cachedHotelSource) QuoteHotel(ctx context.Context, q HotelQuery) (*HotelQuote, error) {
	key := fmt.Sprintf("hotel|%s|%s|%s|%s|%d|%s|%.2f", s.inner.Name(),
		strings.ToLower(q.Destination), q.CheckIn.Format(models.DateLayout),
		q.CheckOut.Format(models.DateLayout), q.GroupSize, q.Category, q.MaxPerNight)

	if v, ok := s.cache.Get(key); ok {
		if hq, ok := v.(HotelQuote); ok {
			return &hq, nil
		}
		return nil, nil
	}

	quote, err := s.inner.QuoteHotel(ctx, q)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		s.cache.SetDefault(key, noQuote{})
		return nil, nil
	}
	s.cache.SetDefault(key, *quote)
	return quote, nil
}
