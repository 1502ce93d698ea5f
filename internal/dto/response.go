package dto

import (
	"time"

	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/internal/service"
	"github.com/hotelops/dashboard-service/internal/stay"
)

type BookingResponse struct {
	models.Booking
	Duration        int    `json:"duration"`
	CheckInRelative string `json:"checkInRelative"`
}

func ToBookingResponse(b *models.Booking, now time.Time) BookingResponse {
	return BookingResponse{
		Booking:         *b,
		Duration:        stay.Duration(b.BookingType, b.CheckInDate, b.CheckOutDate),
		CheckInRelative: stay.Relative(b.CheckInDate, now),
	}
}

type WarningResponse struct {
	Step   string `json:"step"`
	Detail string `json:"detail"`
}

// TransitionResponse reports a transition whose primary step succeeded.
// Outcome is "ok" or "partial"; partial means the booking mutation
// committed but a side effect listed in warnings did not.
type TransitionResponse struct {
	Outcome  string            `json:"outcome"`
	Booking  *BookingResponse  `json:"booking,omitempty"`
	Invoice  *models.Invoice   `json:"invoice,omitempty"`
	Warnings []WarningResponse `json:"warnings,omitempty"`
}

func ToTransitionResponse(res *service.TransitionResult, now time.Time) TransitionResponse {
	out := TransitionResponse{Outcome: "ok", Invoice: res.Invoice}
	if res.Booking != nil {
		br := ToBookingResponse(res.Booking, now)
		out.Booking = &br
	}
	if res.Partial() {
		out.Outcome = "partial"
		for _, w := range res.Warnings {
			out.Warnings = append(out.Warnings, WarningResponse{Step: w.Step, Detail: w.Detail()})
		}
	}
	return out
}

type ErrorResponse struct {
	Message string `json:"message"`
}
