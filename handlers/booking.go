package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacationplanner/services"
)

type BookRequest struct {
	TripID string `json:"trip_id" binding:"required"`
	services.BookingRequest
}

func (h *Handler) BookTrip(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "Invalid request: "+err.Error())
		return
	}
	plan, err := h.planner.GetTrip(c.Request.Context(), req.TripID)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	res := h.booking.BookTrip(plan, req.BookingRequest)
	if res.Success {
		h.metrics.Booked(c.Request.Context())
		h.log.Info("trip booked",
			zap.String("trip_id", req.TripID),
			zap.String("flight", res.FlightConfirmation),
			zap.String("hotel", res.HotelConfirmation))
	}
	c.JSON(http.StatusOK, res)
}

// Availability waits for both the flight and the hotel check.
func (h *Handler) Availability(c *gin.Context) {
	id := c.Param("tripId")
	plan, err := h.planner.GetTrip(c.Request.Context(), id)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	out := h.availability.Check(c.Request.Context(), plan)
	out.TripID = id
	c.JSON(http.StatusOK, out)
}
