package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hotelops/dashboard-service/internal/auth"
	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/pkg/httpclient"
)

func newTestAPI(t *testing.T, h http.HandlerFunc) *httpclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return httpclient.New(srv.URL, auth.NewCredential("test-token"))
}

func TestBookingClient_UpdateSendsFullBody(t *testing.T) {
	var got models.Booking
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/bookings/42", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(got)
	})

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{
		ID:            42,
		GuestFullName: "Ada Lovelace",
		RoomNumber:    101,
		RoomID:        7,
		CheckInDate:   now,
		CheckOutDate:  now.Add(48 * time.Hour),
		BookingType:   models.TypeDaily,
		Status:        models.StatusCheckedIn,
	}

	updated, err := NewBookingClient(api).Update(context.Background(), b)
	assert.NoError(t, err)
	// unchanged fields travel with the PUT
	assert.Equal(t, "Ada Lovelace", got.GuestFullName)
	assert.Equal(t, 101, got.RoomNumber)
	assert.Equal(t, models.StatusCheckedIn, got.Status)
	assert.Equal(t, b.ID, updated.ID)
}

func TestBookingClient_ListFilters(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("size"))
		assert.Equal(t, "lovelace", q.Get("q"))
		assert.Equal(t, "CHECKED IN", q.Get("status"))
		json.NewEncoder(w).Encode(models.Page[models.Booking]{Page: 2, Size: 25})
	})

	status := models.StatusCheckedIn
	_, err := NewBookingClient(api).List(context.Background(), ListBookingsParams{
		Page: 2, Size: 25, Query: "lovelace", Status: &status,
	})
	assert.NoError(t, err)
}

func TestRoomClient_SetStatusKeepsOtherFields(t *testing.T) {
	var put models.Room
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(models.Room{
				ID: 7, RoomNumber: 101, MaxOccupancy: 2,
				RoomType: "Deluxe", Location: "2F", Status: models.RoomBooked,
				Prices: []models.RoomPrice{{PriceType: models.TypeDaily, BasePrice: 120}},
			})
		case http.MethodPut:
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&put))
			json.NewEncoder(w).Encode(put)
		}
	})

	updated, err := NewRoomClient(api).SetStatus(context.Background(), 7, models.RoomAvailable)
	assert.NoError(t, err)
	assert.Equal(t, models.RoomAvailable, updated.Status)
	// only status changed; the rest of the room rode along
	assert.Equal(t, "Deluxe", put.RoomType)
	assert.Equal(t, 101, put.RoomNumber)
	assert.Len(t, put.Prices, 1)
}

func TestInvoiceClient_Create(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/invoices", r.URL.Path)
		var in models.Invoice
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 900
		json.NewEncoder(w).Encode(in)
	})

	inv, err := NewInvoiceClient(api).Create(context.Background(), &models.Invoice{
		BookingID: 42, Status: models.InvoicePending,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(900), inv.ID)
	assert.Equal(t, int64(42), inv.BookingID)
}

func TestCountryClient_MemoizesFirstFetch(t *testing.T) {
	var calls int32
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode([]models.Country{
			{Name: "France", Code: "FR", FlagURL: "/flags/fr.svg"},
			{Name: "Japan", Code: "JP", FlagURL: "/flags/jp.svg"},
		})
	})

	c := NewCountryClient(api)
	ctx := context.Background()

	first, err := c.All(ctx)
	assert.NoError(t, err)
	assert.Len(t, first, 2)

	_, err = c.All(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	flag, ok, err := c.FlagFor(ctx, "japan")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/flags/jp.svg", flag)

	_, ok, err = c.FlagFor(ctx, "Atlantis")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCountryClient_FailedFetchIsNotMemoized(t *testing.T) {
	var calls int32
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]models.Country{{Name: "France", Code: "FR"}})
	})

	c := NewCountryClient(api)
	_, err := c.All(context.Background())
	assert.Error(t, err)

	out, err := c.All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}
