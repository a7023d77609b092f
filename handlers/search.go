package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vacationplanner/catalog"
	"vacationplanner/models"
)

type RecommendationsResponse struct {
	Theme        string   `json:"theme"`
	Month        string   `json:"month"`
	Destinations []string `json:"destinations"`
	Themed       []string `json:"themed"`
	Seasonal     []string `json:"seasonal"`
	Themes       []string `json:"themes"`
}

// EstimateQuery is the query string of GET /estimates.
type EstimateQuery struct {
	Destination string `form:"destination"`
	Theme       string `form:"theme"`
	StartDate   string `form:"start_date" binding:"required"`
	EndDate     string `form:"end_date" binding:"required"`
	GroupSize   int    `form:"group_size" binding:"gte=0"`
}

// Recommendations ranks destinations for ?theme= and ?start_date=
// (YYYY-MM-DD, default today). Matches for both come first.
func (h *Handler) Recommendations(c *gin.Context) {
	start := h.now()
	if s := c.Query("start_date"); s != "" {
		t, err := models.ParseDate("start_date", s)
		if err != nil {
			h.respondDomainError(c, err)
			return
		}
		start = t
	}
	theme := c.Query("theme")

	c.JSON(http.StatusOK, RecommendationsResponse{
		Theme:        catalog.NormalizeTheme(theme),
		Month:        start.Month().String(),
		Destinations: h.recommender.RecommendDestinations(theme, start),
		Themed:       nonNil(h.recommender.DestinationsByTheme(theme)),
		Seasonal:     nonNil(h.recommender.DestinationsByMonth(int(start.Month()))),
		Themes:       catalog.Themes(),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Estimates prices a trip from the catalog without planning it.
func (h *Handler) Estimates(c *gin.Context) {
	var q EstimateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "Invalid request: "+err.Error())
		return
	}
	start, err := models.ParseDate("start_date", q.StartDate)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	end, err := models.ParseDate("end_date", q.EndDate)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	group := q.GroupSize
	if group == 0 {
		group = 1
	}

	est, err := h.planner.Estimate(models.TripPreferences{
		Destination: q.Destination,
		Theme:       q.Theme,
		StartDate:   start,
		EndDate:     end,
		GroupSize:   group,
	})
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// Health reports the process and, when configured, the trip store.
func (h *Handler) Health(c *gin.Context) {
	storeStatus := "disabled"
	if h.store != nil {
		storeStatus = "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			storeStatus = "error: " + err.Error()
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "Vacation Planner API",
		"store":   storeStatus,
	})
}
