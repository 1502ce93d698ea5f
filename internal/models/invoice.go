package models

import "time"

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "PENDING"
	InvoicePaid    InvoiceStatus = "PAID"
)

// Invoice is the bill generated at checkout. Amount is server-computed and
// read-only from this client's perspective.
type Invoice struct {
	ID            int64         `json:"id"`
	BookingID     int64         `json:"bookingId"`
	Amount        float64       `json:"amount"`
	PaidAmount    float64       `json:"paidAmount"`
	Status        InvoiceStatus `json:"status"`
	IssuedDate    time.Time     `json:"issuedDate"`
	DueDate       *time.Time    `json:"dueDate,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}
