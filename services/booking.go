package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"vacationplanner/models"
)

type BookingRequest struct {
	TravelerName string `json:"traveler_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	PaymentLast4 string `json:"payment_last4" binding:"required,len=4,numeric"`
}

type BookingResult struct {
	Success            bool      `json:"success"`
	FlightConfirmation string    `json:"flight_confirmation,omitempty"`
	HotelConfirmation  string    `json:"hotel_confirmation,omitempty"`
	Message            string    `json:"message"`
	Timestamp          time.Time `json:"timestamp"`
}

// BookingService confirms plans without contacting any supplier.
type BookingService struct {
	now     func() time.Time
	newCode func() string
}

func NewBookingService() *BookingService {
	return &BookingService{
		now:     time.Now,
		newCode: func() string { return uuid.NewString() },
	}
}

// BookTrip always succeeds for an existing plan.
func (s *BookingService) BookTrip(plan *models.TripPlan, req BookingRequest) BookingResult {
	if plan == nil {
		return BookingResult{Success: false, Message: "No trip plan available to book.", Timestamp: s.now()}
	}
	flight := "FL-" + s.shortCode()
	hotel := "HT-" + s.shortCode()
	return BookingResult{
		Success:            true,
		FlightConfirmation: flight,
		HotelConfirmation:  hotel,
		Message: fmt.Sprintf("Booking confirmed for %s. Flight: %s, Hotel: %s. Payment ****%s",
			req.TravelerName, flight, hotel, req.PaymentLast4),
		Timestamp: s.now(),
	}
}

func (s *BookingService) shortCode() string {
	code := strings.ReplaceAll(s.newCode(), "-", "")
	if len(code) > 8 {
		code = code[:8]
	}
	return strings.ToUpper(code)
}
