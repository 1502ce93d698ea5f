// Package alert carries reconciliation warnings to operators. When a
// booking transition commits but one of its side effects (room status,
// invoice creation) fails, the room or invoice may need manual fixing;
// the coordinator publishes an event here so someone finds out.
package alert

import (
	"context"
	"time"
)

type Event struct {
	BookingID  int64     `json:"bookingId"`
	Transition string    `json:"transition"` // check-in, check-out, cancel, delete
	Step       string    `json:"step"`       // room-status, invoice-create
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Sink interface {
	Publish(ctx context.Context, e Event) error
	Close()
}

// Nop drops every event; used when no broker is configured and in tests.
type Nop struct{}

func (Nop) Publish(ctx context.Context, e Event) error { return nil }
func (Nop) Close()                                     {}
