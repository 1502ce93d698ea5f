package dto

import "time"

type CreateBookingRequest struct {
	GuestFullName    string    `json:"guestFullName" validate:"required"`
	GuestIDNumber    string    `json:"guestIdNumber" validate:"required"`
	GuestNationality string    `json:"guestNationality"`
	RoomNumber       int       `json:"roomNumber" validate:"required,min=1"`
	CheckInDate      time.Time `json:"checkInDate" validate:"required"`
	CheckOutDate     time.Time `json:"checkOutDate" validate:"required"`
	BookingType      string    `json:"bookingType" validate:"required,oneof=HOURLY DAILY"`
	NumberOfGuests   int       `json:"numberOfGuests" validate:"required,min=1"`
	Notes            string    `json:"notes"`
}

type UpdateBookingRequest struct {
	GuestFullName    string    `json:"guestFullName" validate:"required"`
	GuestIDNumber    string    `json:"guestIdNumber" validate:"required"`
	GuestNationality string    `json:"guestNationality"`
	RoomNumber       int       `json:"roomNumber" validate:"required,min=1"`
	RoomID           int64     `json:"roomId"`
	CheckInDate      time.Time `json:"checkInDate" validate:"required"`
	CheckOutDate     time.Time `json:"checkOutDate" validate:"required"`
	BookingType      string    `json:"bookingType" validate:"required,oneof=HOURLY DAILY"`
	NumberOfGuests   int       `json:"numberOfGuests" validate:"required,min=1"`
	Notes            string    `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}
