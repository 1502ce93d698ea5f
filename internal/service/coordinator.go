package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/internal/upstream"
	"github.com/hotelops/dashboard-service/pkg/alert"
)

var (
	ErrEmptyCancelReason = errors.New("cancel reason must not be empty")
	ErrInvoiceNotFound   = errors.New("no invoice found for booking")
)

// Warning is one failed side-effect step of an otherwise successful
// transition. The primary booking mutation already committed; the named
// step may need manual reconciliation.
type Warning struct {
	Step string
	Err  error
}

func (w Warning) Detail() string { return w.Err.Error() }

// TransitionResult reports the outcome of a transition whose primary step
// succeeded. Primary-step failures are returned as plain errors instead,
// so the three cases {failed, ok, ok-with-warnings} stay distinguishable.
type TransitionResult struct {
	Booking  *models.Booking
	Invoice  *models.Invoice
	Warnings []Warning
}

func (r *TransitionResult) Partial() bool { return len(r.Warnings) > 0 }

// Coordinator owns the booking status state machine and its room/invoice
// choreography. Every transition issues the primary booking mutation
// first; side effects run strictly after it, in order, best-effort.
//
// Callers are expected not to request transitions out of CHECKED_OUT or
// CANCELLED (other than Delete). The coordinator does not re-validate the
// current state before issuing calls; the UI owns not offering the action.
type Coordinator interface {
	CheckIn(ctx context.Context, b *models.Booking) (*TransitionResult, error)
	CheckOut(ctx context.Context, b *models.Booking) (*TransitionResult, error)
	Cancel(ctx context.Context, b *models.Booking, reason string) (*TransitionResult, error)
	Delete(ctx context.Context, b *models.Booking) (*TransitionResult, error)
	FindInvoiceForBooking(ctx context.Context, bookingID int64) (*models.Invoice, error)
}

type coordinator struct {
	bookings upstream.BookingClient
	rooms    upstream.RoomClient
	invoices upstream.InvoiceClient
	alerts   alert.Sink
}

func NewCoordinator(bookings upstream.BookingClient, rooms upstream.RoomClient, invoices upstream.InvoiceClient, alerts alert.Sink) Coordinator {
	return &coordinator{
		bookings: bookings,
		rooms:    rooms,
		invoices: invoices,
		alerts:   alerts,
	}
}

const invoiceScanPageSize = 100

func (c *coordinator) CheckIn(ctx context.Context, b *models.Booking) (*TransitionResult, error) {
	now := time.Now().UTC()

	next := *b
	next.Status = models.StatusCheckedIn
	next.ActualCheckInTime = &now

	updated, err := c.bookings.Update(ctx, &next)
	if err != nil {
		return nil, err
	}

	res := &TransitionResult{Booking: updated}
	c.setRoomStatus(ctx, res, b.ID, "check-in", b.RoomID, models.RoomBooked)
	return res, nil
}

func (c *coordinator) CheckOut(ctx context.Context, b *models.Booking) (*TransitionResult, error) {
	now := time.Now().UTC()

	next := *b
	next.Status = models.StatusCheckedOut
	next.ActualCheckOutTime = &now

	updated, err := c.bookings.Update(ctx, &next)
	if err != nil {
		return nil, err
	}

	res := &TransitionResult{Booking: updated}
	c.setRoomStatus(ctx, res, b.ID, "check-out", b.RoomID, models.RoomAvailable)

	inv, err := c.invoices.Create(ctx, &models.Invoice{
		BookingID:  updated.ID,
		Amount:     0,
		PaidAmount: 0,
		Status:     models.InvoicePending,
		IssuedDate: now,
	})
	if err != nil {
		c.warn(ctx, res, b.ID, "check-out", "invoice-create", err)
	} else {
		res.Invoice = inv
	}
	return res, nil
}

func (c *coordinator) Cancel(ctx context.Context, b *models.Booking, reason string) (*TransitionResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyCancelReason
	}

	next := *b
	next.Status = models.StatusCancelled
	next.CancelReason = reason

	updated, err := c.bookings.Update(ctx, &next)
	if err != nil {
		return nil, err
	}

	res := &TransitionResult{Booking: updated}
	c.setRoomStatus(ctx, res, b.ID, "cancel", b.RoomID, models.RoomAvailable)
	return res, nil
}

func (c *coordinator) Delete(ctx context.Context, b *models.Booking) (*TransitionResult, error) {
	if err := c.bookings.Delete(ctx, b.ID); err != nil {
		return nil, err
	}

	res := &TransitionResult{}
	c.setRoomStatus(ctx, res, b.ID, "delete", b.RoomID, models.RoomAvailable)
	return res, nil
}

// FindInvoiceForBooking scans the full invoice collection for the first
// entry matching bookingID. The upstream has no by-booking query, so a
// checked-out booking with no cached invoice id recovers it this way.
func (c *coordinator) FindInvoiceForBooking(ctx context.Context, bookingID int64) (*models.Invoice, error) {
	for page := 0; ; page++ {
		batch, err := c.invoices.List(ctx, page, invoiceScanPageSize)
		if err != nil {
			return nil, err
		}
		for i := range batch.Items {
			if batch.Items[i].BookingID == bookingID {
				return &batch.Items[i], nil
			}
		}
		if len(batch.Items) == 0 || int64((page+1)*invoiceScanPageSize) >= batch.Total {
			return nil, ErrInvoiceNotFound
		}
	}
}

// setRoomStatus runs the room side effect when the room is known. A
// missing RoomID skips the step; a failure downgrades to a warning, never
// a rollback of the committed booking mutation.
func (c *coordinator) setRoomStatus(ctx context.Context, res *TransitionResult, bookingID int64, transition string, roomID int64, status string) {
	if roomID == 0 {
		return
	}
	if _, err := c.rooms.SetStatus(ctx, roomID, status); err != nil {
		c.warn(ctx, res, bookingID, transition, "room-status", err)
	}
}

func (c *coordinator) warn(ctx context.Context, res *TransitionResult, bookingID int64, transition, step string, err error) {
	res.Warnings = append(res.Warnings, Warning{Step: step, Err: err})

	log.Warn().Err(err).Str("transition", transition).Str("step", step).
		Int64("booking_id", bookingID).Msg("side effect failed, needs reconciliation")

	if pubErr := c.alerts.Publish(ctx, alert.Event{
		BookingID:  bookingID,
		Transition: transition,
		Step:       step,
		Detail:     err.Error(),
		OccurredAt: time.Now().UTC(),
	}); pubErr != nil {
		log.Error().Err(pubErr).Msg("failed to publish reconciliation alert")
	}
}
