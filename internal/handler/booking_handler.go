package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotelops/dashboard-service/internal/dto"
	"github.com/hotelops/dashboard-service/internal/models"
	"github.com/hotelops/dashboard-service/internal/service"
	"github.com/hotelops/dashboard-service/internal/upstream"
	"github.com/hotelops/dashboard-service/pkg/httpclient"
)

type BookingHandler struct {
	coord    service.Coordinator
	bookings upstream.BookingClient
}

func NewBookingHandler(coord service.Coordinator, bookings upstream.BookingClient) *BookingHandler {
	return &BookingHandler{coord: coord, bookings: bookings}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/bookings")
	g.GET("", h.ListBookings)
	g.POST("", h.CreateBooking)
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id", h.UpdateBooking)
	g.DELETE("/:id", h.DeleteBooking)
	g.POST("/:id/check-in", h.CheckIn)
	g.POST("/:id/check-out", h.CheckOut)
	g.POST("/:id/cancel", h.Cancel)
	g.GET("/:id/invoice", h.GetInvoice)
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	params := upstream.ListBookingsParams{
		Page:  page,
		Size:  size,
		Query: c.QueryParam("q"),
		From:  c.QueryParam("from"),
		To:    c.QueryParam("to"),
	}
	if s := c.QueryParam("status"); s != "" {
		var status models.BookingStatus
		if err := status.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		params.Status = &status
	}

	result, err := h.bookings.List(c.Request().Context(), params)
	if err != nil {
		return upstreamError(err)
	}

	now := time.Now()
	items := make([]dto.BookingResponse, len(result.Items))
	for i := range result.Items {
		items[i] = dto.ToBookingResponse(&result.Items[i], now)
	}
	return c.JSON(http.StatusOK, models.Page[dto.BookingResponse]{
		Items: items,
		Page:  result.Page,
		Size:  result.Size,
		Total: result.Total,
	})
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.fetch(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking, time.Now()))
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking := &models.Booking{
		GuestFullName:    req.GuestFullName,
		GuestIDNumber:    req.GuestIDNumber,
		GuestNationality: req.GuestNationality,
		RoomNumber:       req.RoomNumber,
		CheckInDate:      req.CheckInDate,
		CheckOutDate:     req.CheckOutDate,
		BookingType:      models.BookingType(req.BookingType),
		Status:           models.StatusUnconfirmed,
		NumberOfGuests:   req.NumberOfGuests,
		Notes:            req.Notes,
	}

	created, err := h.bookings.Create(c.Request().Context(), booking)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(created, time.Now()))
}

// UpdateBooking is the edit-form passthrough; status changes go through
// the transition endpoints, never through here.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	current, err := h.fetch(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	current.GuestFullName = req.GuestFullName
	current.GuestIDNumber = req.GuestIDNumber
	current.GuestNationality = req.GuestNationality
	current.RoomNumber = req.RoomNumber
	if req.RoomID != 0 {
		current.RoomID = req.RoomID
	}
	current.CheckInDate = req.CheckInDate
	current.CheckOutDate = req.CheckOutDate
	current.BookingType = models.BookingType(req.BookingType)
	current.NumberOfGuests = req.NumberOfGuests
	current.Notes = req.Notes

	updated, err := h.bookings.Update(c.Request().Context(), current)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(updated, time.Now()))
}

func (h *BookingHandler) CheckIn(c echo.Context) error {
	booking, err := h.fetch(c)
	if err != nil {
		return err
	}

	res, err := h.coord.CheckIn(c.Request().Context(), booking)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, dto.ToTransitionResponse(res, time.Now()))
}

func (h *BookingHandler) CheckOut(c echo.Context) error {
	booking, err := h.fetch(c)
	if err != nil {
		return err
	}

	res, err := h.coord.CheckOut(c.Request().Context(), booking)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, dto.ToTransitionResponse(res, time.Now()))
}

func (h *BookingHandler) Cancel(c echo.Context) error {
	booking, err := h.fetch(c)
	if err != nil {
		return err
	}

	var req dto.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	res, err := h.coord.Cancel(c.Request().Context(), booking, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCancelReason) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, dto.ToTransitionResponse(res, time.Now()))
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	booking, err := h.fetch(c)
	if err != nil {
		return err
	}

	res, err := h.coord.Delete(c.Request().Context(), booking)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, dto.ToTransitionResponse(res, time.Now()))
}

// GetInvoice recovers the invoice of a checked-out booking when no id was
// cached (an earlier checkout's invoice step may have failed). A miss is
// a valid outcome, distinguished from an upstream failure.
func (h *BookingHandler) GetInvoice(c echo.Context) error {
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	inv, err := h.coord.FindInvoiceForBooking(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "invoice not yet created")
		}
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *BookingHandler) fetch(c echo.Context) (*models.Booking, error) {
	id, err := bookingID(c)
	if err != nil {
		return nil, err
	}
	booking, err := h.bookings.Get(c.Request().Context(), id)
	if err != nil {
		if httpclient.IsNotFound(err) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return nil, upstreamError(err)
	}
	return booking, nil
}

func bookingID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}
	return id, nil
}

// upstreamError maps an upstream failure onto this API, keeping the
// server's own message as the detail so operators see the real cause.
func upstreamError(err error) error {
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) {
		return echo.NewHTTPError(http.StatusBadGateway, apiErr.Message)
	}
	return echo.NewHTTPError(http.StatusBadGateway, err.Error())
}
