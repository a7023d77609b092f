// Package handlers exposes the planner over HTTP.
package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacationplanner/observability"
	"vacationplanner/services"
)

// Pinger reports whether the trip store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Planner      *services.TripPlanner
	Recommender  *services.Recommender
	Availability *services.AvailabilityService
	Booking      *services.BookingService
	Maps         *services.MapService
	PDF          services.Renderer
	Excel        services.Renderer
	Store        Pinger
	Metrics      *observability.Metrics
	Log          *zap.Logger
	Now          func() time.Time
}

type Handler struct {
	planner      *services.TripPlanner
	recommender  *services.Recommender
	availability *services.AvailabilityService
	booking      *services.BookingService
	maps         *services.MapService
	renderers    map[string]services.Renderer
	store        Pinger
	metrics      *observability.Metrics
	log          *zap.Logger
	now          func() time.Time
}

func New(d Deps) *Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Recommender == nil {
		d.Recommender = services.NewRecommender()
	}
	if d.Booking == nil {
		d.Booking = services.NewBookingService()
	}
	if d.Availability == nil {
		d.Availability = services.NewAvailabilityService(d.Log)
	}
	if d.Maps == nil {
		d.Maps = services.NewMapService(services.MapProviderOSM, "")
	}
	if d.PDF == nil {
		d.PDF = services.NewPDFRenderer("")
	}
	if d.Excel == nil {
		d.Excel = services.NewExcelRenderer()
	}
	return &Handler{
		planner:      d.Planner,
		recommender:  d.Recommender,
		availability: d.Availability,
		booking:      d.Booking,
		maps:         d.Maps,
		renderers:    map[string]services.Renderer{"pdf": d.PDF, "excel": d.Excel},
		store:        d.Store,
		metrics:      d.Metrics,
		log:          d.Log,
		now:          d.Now,
	}
}

// Register mounts every route on api, normally the /api group.
func (h *Handler) Register(api gin.IRouter) {
	api.GET("/health", h.Health)

	trips := api.Group("/trips")
	{
		trips.POST("/plan", h.PlanTrip)
		trips.GET("", h.ListTrips)
		trips.GET("/current", h.CurrentTrip)
		trips.GET("/:id", h.GetTrip)
		trips.POST("/:id/save", h.SaveTrip)
		trips.DELETE("/:id", h.DeleteTrip)
		trips.GET("/:id/map", h.TripMap)
	}

	api.GET("/recommendations", h.Recommendations)
	api.GET("/estimates", h.Estimates)

	booking := api.Group("/booking")
	{
		booking.POST("/book", h.BookTrip)
		booking.GET("/availability/:tripId", h.Availability)
	}

	export := api.Group("/export")
	{
		export.GET("/pdf/:tripId", h.Export("pdf"))
		export.GET("/excel/:tripId", h.Export("excel"))
	}
}
