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
	hotelPeakFactor     = 1.4
	groupSurchargeStep  = 0.1
	mockHotelProvider   = "Mock Hotel Provider"
	midRangeGroupThresh = 4
)

// HotelService picks the stay. Live sources first, then the catalog heuristic.
type HotelService struct {
	sources []HotelSource
	timeout time.Duration
	log     *zap.Logger
	metrics *observability.Metrics
}

type HotelServiceOption func(*HotelService)

func WithHotelSources(sources ...HotelSource) HotelServiceOption {
	return func(s *HotelService) { s.sources = append(s.sources, sources...) }
}

func WithHotelTimeout(d time.Duration) HotelServiceOption {
	return func(s *HotelService) { s.timeout = d }
}

func WithHotelMetrics(m *observability.Metrics) HotelServiceOption {
	return func(s *HotelService) { s.metrics = m }
}

func NewHotelService(log *zap.Logger, opts ...HotelServiceOption) *HotelService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &HotelService{timeout: 8 * time.Second, log: log}
	for _, o := range opts {
		o(s)
	}
	return s
}

// PreferredCategory sizes the room class to the party.
func PreferredCategory(groupSize int) string {
	if groupSize >= midRangeGroupThresh {
		return catalog.CategoryMidRange
	}
	return catalog.CategoryBudget
}

// HotelQueryFor turns a stay budget into a per-night ceiling.
func HotelQueryFor(destination string, checkIn, checkOut time.Time, groupSize int, totalBudget float64) HotelQuery {
	nights := max(models.DaysBetween(checkIn, checkOut), 1)
	return HotelQuery{
		Destination: destination,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GroupSize:   groupSize,
		Category:    PreferredCategory(groupSize),
		MaxPerNight: totalBudget / float64(nights),
	}
}

// FindBestHotel never fails; the worst case is the cheapest catalog hotel.
func (s *HotelService) FindBestHotel(ctx context.Context, q HotelQuery) models.Accommodation {
	for _, src := range s.sources {
		quote, err := s.try(ctx, src, q)
		if err != nil {
			s.log.Warn("hotel source failed", zap.String("source", src.Name()), zap.Error(err))
			continue
		}
		if quote == nil || quote.PricePerNight <= 0 || quote.PricePerNight > q.MaxPerNight {
			continue
		}
		return s.accommodation(q, quote.Name, quote.Category, quote.Address, quote.PricePerNight, quote.Rating, quote.Provider)
	}

	s.metrics.SourceFallback(ctx, "hotel")
	h, nightly := s.pickFromCatalog(q)
	return s.accommodation(q, h.Name, h.Category, h.Location, nightly, h.Rating, mockHotelProvider)
}

func (s *HotelService) try(ctx context.Context, src HotelSource, q HotelQuery) (*HotelQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return src.QuoteHotel(ctx, q)
}

// pickFromCatalog keeps hotels of the preferred category whose adjusted
// nightly price fits the ceiling and takes the best rated. When none fit it
// takes the cheapest hotel overall.
func (s *HotelService) pickFromCatalog(q HotelQuery) (catalog.HotelOption, float64) {
	hotels := catalog.Hotels(q.Destination)
	base := catalog.HotelBasePrice(q.Destination)

	bestIdx, bestPrice := -1, 0.0
	cheapIdx, cheapPrice := 0, 0.0
	for i, h := range hotels {
		nightly := NightlyHotelPrice(base, h.Category, q.CheckIn)
		if i == 0 || nightly < cheapPrice {
			cheapIdx, cheapPrice = i, nightly
		}
		if q.Category != "" && h.Category != q.Category {
			continue
		}
		if nightly > q.MaxPerNight {
			continue
		}
		if bestIdx < 0 || h.Rating > hotels[bestIdx].Rating {
			bestIdx, bestPrice = i, nightly
		}
	}
	if bestIdx >= 0 {
		return hotels[bestIdx], bestPrice
	}
	return hotels[cheapIdx], cheapPrice
}

func (s *HotelService) accommodation(q HotelQuery, name, category, address string, nightly, rating float64, provider string) models.Accommodation {
	if category == "" {
		category = q.Category
	}
	return models.Accommodation{
		Name:         name,
		Type:         category,
		Address:      address,
		CostPerNight: nightly,
		Rating:       rating,
		Provider:     provider,
		CheckInDate:  q.CheckIn,
		CheckOutDate: q.CheckOut,
	}
}

// NightlyHotelPrice applies the room class and the peak-season uplift.
func NightlyHotelPrice(base float64, category string, checkIn time.Time) float64 {
	price := base * catalog.CategoryFactor(category)
	if catalog.IsPeakMonth(checkIn.Month()) {
		price *= hotelPeakFactor
	}
	return price
}

// EstimateAccommodationPrice is a whole-stay estimate with a 10% surcharge per
// guest beyond two.
func (s *HotelService) EstimateAccommodationPrice(destination string, groupSize, nights int) float64 {
	factor := max(1.0, 1.0+float64(groupSize-2)*groupSurchargeStep)
	return catalog.HotelBasePrice(destination) * factor * float64(max(nights, 1))
}

// EstimateCategoryPrice prices nights in the given room class at the
// destination base rate, without seasonal uplift.
func (s *HotelService) EstimateCategoryPrice(destination, category string, nights int) float64 {
	return catalog.HotelBasePrice(destination) * catalog.CategoryFactor(category) * float64(max(nights, 0))
}
