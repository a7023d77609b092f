package services

import (
	"time"

	"vacationplanner/catalog"
)

// Recommender picks destinations from the theme and season tables. It never
// consults external data.
type Recommender struct{}

func NewRecommender() *Recommender {
	return &Recommender{}
}

// RecommendDestination returns the first destination in the theme list that
// is also in season for start's month. Without an overlap it falls back to
// the first theme entry, then the first seasonal entry, then a fixed default.
func (r *Recommender) RecommendDestination(theme string, start time.Time) string {
	themed := catalog.DestinationsByTheme(theme)
	seasonal := catalog.DestinationsByMonth(int(start.Month()))

	for _, t := range themed {
		for _, s := range seasonal {
			if t == s {
				return t
			}
		}
	}
	if len(themed) > 0 {
		return themed[0]
	}
	if len(seasonal) > 0 {
		return seasonal[0]
	}
	return catalog.FallbackDestination
}

// RecommendDestinations ranks destinations matching both theme and season
// first, then the rest of the themed list, then the seasonal list. Each
// appears once. It never returns an empty list.
func (r *Recommender) RecommendDestinations(theme string, start time.Time) []string {
	themed := catalog.DestinationsByTheme(theme)
	seasonal := catalog.DestinationsByMonth(int(start.Month()))
	inSeason := make(map[string]bool, len(seasonal))
	for _, d := range seasonal {
		inSeason[d] = true
	}

	seen := map[string]bool{}
	var out []string
	add := func(d string) {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	for _, d := range themed {
		if inSeason[d] {
			add(d)
		}
	}
	for _, d := range themed {
		add(d)
	}
	for _, d := range seasonal {
		add(d)
	}

	if len(out) == 0 {
		return []string{r.RecommendDestination(theme, start)}
	}
	return out
}

func (r *Recommender) DestinationsByTheme(theme string) []string {
	return catalog.DestinationsByTheme(theme)
}

func (r *Recommender) DestinationsByMonth(month int) []string {
	return catalog.DestinationsByMonth(month)
}
