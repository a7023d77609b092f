package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vacationplanner/models"
	"vacationplanner/services"
)

// PlanRequest carries dates as YYYY-MM-DD strings.
type PlanRequest struct {
	Budget        float64 `json:"budget" binding:"gte=0"`
	Currency      string  `json:"currency"`
	Destination   string  `json:"destination"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
	Theme         string  `json:"theme"`
	GroupSize     int     `json:"group_size"`
	StartingPoint string  `json:"starting_point" binding:"required"`
}

func (r PlanRequest) Preferences() (models.TripPreferences, error) {
	start, err := models.ParseDate("start_date", r.StartDate)
	if err != nil {
		return models.TripPreferences{}, err
	}
	end, err := models.ParseDate("end_date", r.EndDate)
	if err != nil {
		return models.TripPreferences{}, err
	}
	group := r.GroupSize
	if group == 0 {
		group = 1
	}
	return models.TripPreferences{
		Budget:        r.Budget,
		Currency:      r.Currency,
		Destination:   r.Destination,
		StartDate:     start,
		EndDate:       end,
		Theme:         r.Theme,
		GroupSize:     group,
		StartingPoint: r.StartingPoint,
	}, nil
}

type TripSummary struct {
	ID            string    `json:"id"`
	Destination   string    `json:"destination"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Theme         string    `json:"theme"`
	TotalBudget   float64   `json:"total_budget"`
	EstimatedCost float64   `json:"estimated_cost"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

func summarize(p *models.TripPlan) TripSummary {
	id := p.ID
	if id == "" {
		id = services.CurrentTripID
	}
	return TripSummary{
		ID:            id,
		Destination:   p.Destination,
		StartDate:     p.StartDate().Format(models.DateLayout),
		EndDate:       p.EndDate().Format(models.DateLayout),
		Theme:         p.Theme(),
		TotalBudget:   p.BudgetBreakdown.TotalBudget,
		EstimatedCost: p.TotalEstimatedCost(),
		Currency:      p.BudgetBreakdown.Currency,
		CreatedAt:     p.CreatedAt,
	}
}

func (h *Handler) PlanTrip(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "Invalid request: "+err.Error())
		return
	}
	prefs, err := req.Preferences()
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	plan, err := h.planner.PlanTrip(c.Request.Context(), prefs)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) ListTrips(c *gin.Context) {
	plans, err := h.planner.ListTrips(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	out := make([]TripSummary, 0, len(plans))
	for _, p := range plans {
		out = append(out, summarize(p))
	}
	c.JSON(http.StatusOK, gin.H{"trips": out, "count": len(out)})
}

func (h *Handler) CurrentTrip(c *gin.Context) {
	h.respondTrip(c, services.CurrentTripID)
}

func (h *Handler) GetTrip(c *gin.Context) {
	h.respondTrip(c, c.Param("id"))
}

func (h *Handler) respondTrip(c *gin.Context, id string) {
	plan, err := h.planner.GetTrip(c.Request.Context(), id)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) SaveTrip(c *gin.Context) {
	plan, err := h.planner.SaveTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": plan.ID, "message": "Trip saved"})
}

func (h *Handler) DeleteTrip(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.planner.DeleteTrip(c.Request.Context(), id)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	if !ok {
		h.respondDomainError(c, &models.NotFoundError{Resource: "trip", ID: id})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

// TripMap serves an HTML map page, or the map data with ?format=json.
func (h *Handler) TripMap(c *gin.Context) {
	plan, err := h.planner.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, h.maps.TripMap(plan))
		return
	}
	page, err := h.maps.RenderHTML(plan)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
