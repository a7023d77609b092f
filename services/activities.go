package services

import (
	"sort"
	"strings"
	"time"

	"vacationplanner/catalog"
	"vacationplanner/models"
)

const (
	activityFlexAllowance   = 1.5
	defaultActivityMinutes  = 120
	defaultActivityEstimate = 50.0
	defaultDailyEstimate    = 20.0
)

// ActivityService samples activities from the catalog. All randomness goes
// through rng.
type ActivityService struct {
	rng Rand
}

func NewActivityService(rng Rand) *ActivityService {
	if rng == nil {
		rng = NewLockedRand(time.Now().UnixNano())
	}
	return &ActivityService{rng: rng}
}

// FindActivities returns up to count activities for tag at destination,
// preferring ones priced within 1.5× the per-activity share of ceiling.
func (s *ActivityService) FindActivities(destination, tag string, ceiling float64, count int) []models.Activity {
	if count <= 0 {
		return []models.Activity{}
	}
	items, bucket := catalog.Activities(destination, tag)

	perActivity := ceiling / float64(count)
	affordable := make([]catalog.ActivityItem, 0, len(items))
	for _, it := range items {
		if it.Price <= activityFlexAllowance*perActivity {
			affordable = append(affordable, it)
		}
	}
	if len(affordable) == 0 {
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
		affordable = items[:min(count, len(items))]
	}

	s.rng.Shuffle(len(affordable), func(i, j int) {
		affordable[i], affordable[j] = affordable[j], affordable[i]
	})
	picked := affordable[:min(count, len(affordable))]

	out := make([]models.Activity, 0, len(picked))
	for _, it := range picked {
		out = append(out, models.Activity{
			Name:            it.Name,
			Type:            bucketTitle(bucket),
			Location:        destination,
			Description:     it.Description,
			Cost:            it.Price,
			DurationMinutes: defaultActivityMinutes,
			Rating:          it.Rating,
		})
	}
	return out
}

// EstimateActivityCost is the mean price of the resolved bucket.
func (s *ActivityService) EstimateActivityCost(destination, tag string) float64 {
	items, _ := catalog.Activities(destination, tag)
	if len(items) == 0 {
		return defaultActivityEstimate
	}
	return meanPrice(items)
}

// EstimateActivitiesCost projects spend for perDay activities over days.
func (s *ActivityService) EstimateActivitiesCost(destination, tag string, days, perDay int) float64 {
	items, _ := catalog.Activities(destination, tag)
	avg := defaultDailyEstimate
	if len(items) > 0 {
		avg = meanPrice(items)
	}
	return avg * float64(days) * float64(perDay)
}

func meanPrice(items []catalog.ActivityItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price
	}
	return total / float64(len(items))
}

func bucketTitle(bucket string) string {
	if bucket == "" {
		return ""
	}
	return strings.ToUpper(bucket[:1]) + bucket[1:]
}
