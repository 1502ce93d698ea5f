// Package upstream contains the typed REST clients for the
// property-management API. Each entity gets an interface plus a concrete
// client over the shared httpclient; the server owns all invariants.
package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/pkg/httpclient"
)

type ListBookingsParams struct {
	Page   int
	Size   int
	Query  string // guest name / id number search
	Status *models.BookingStatus
	From   string // ISO date, inclusive
	To     string
}

type BookingClient interface {
	Get(ctx context.Context, id int64) (*models.Booking, error)
	Create(ctx context.Context, b *models.Booking) (*models.Booking, error)
	Update(ctx context.Context, b *models.Booking) (*models.Booking, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, p ListBookingsParams) (*models.Page[models.Booking], error)
}

type bookingClient struct {
	http *httpclient.Client
}

func NewBookingClient(c *httpclient.Client) BookingClient {
	return &bookingClient{http: c}
}

func (c *bookingClient) Get(ctx context.Context, id int64) (*models.Booking, error) {
	var b models.Booking
	if err := c.http.Get(ctx, fmt.Sprintf("/bookings/%d", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *bookingClient) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	var created models.Booking
	if err := c.http.Post(ctx, "/bookings", b, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update sends the full booking body, unchanged fields included, per the
// upstream's PUT contract.
func (c *bookingClient) Update(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	var updated models.Booking
	if err := c.http.Put(ctx, fmt.Sprintf("/bookings/%d", b.ID), b, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *bookingClient) Delete(ctx context.Context, id int64) error {
	return c.http.Delete(ctx, fmt.Sprintf("/bookings/%d", id))
}

func (c *bookingClient) List(ctx context.Context, p ListBookingsParams) (*models.Page[models.Booking], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.Status != nil {
		q.Set("status", p.Status.String())
	}
	if p.From != "" {
		q.Set("from", p.From)
	}
	if p.To != "" {
		q.Set("to", p.To)
	}

	var page models.Page[models.Booking]
	if err := c.http.Get(ctx, "/bookings", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
