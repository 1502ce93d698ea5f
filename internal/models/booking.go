package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking. It is a tagged enum
// internally; the upstream API speaks upper-cased, space-separated strings
// ("CHECKED IN"), so the mapping lives in the JSON methods and nowhere else.
type BookingStatus int

const (
	StatusUnconfirmed BookingStatus = iota
	StatusCheckedIn
	StatusCheckedOut
	StatusCancelled
)

var statusWire = map[BookingStatus]string{
	StatusUnconfirmed: "UNCONFIRMED",
	StatusCheckedIn:   "CHECKED IN",
	StatusCheckedOut:  "CHECKED OUT",
	StatusCancelled:   "CANCELLED",
}

func (s BookingStatus) String() string {
	if v, ok := statusWire[s]; ok {
		return v
	}
	return fmt.Sprintf("BookingStatus(%d)", int(s))
}

func (s BookingStatus) MarshalJSON() ([]byte, error) {
	v, ok := statusWire[s]
	if !ok {
		return nil, fmt.Errorf("unknown booking status %d", int(s))
	}
	return json.Marshal(v)
}

func (s *BookingStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k, v := range statusWire {
		if v == raw {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown booking status %q", raw)
}

// BookingType distinguishes hourly stays from daily ones. Immutable after
// creation in practice, though nothing here enforces that.
type BookingType string

const (
	TypeHourly BookingType = "HOURLY"
	TypeDaily  BookingType = "DAILY"
)

type Booking struct {
	ID                 int64         `json:"id"`
	GuestFullName      string        `json:"guestFullName"`
	GuestIDNumber      string        `json:"guestIdNumber"`
	GuestNationality   string        `json:"guestNationality"`
	RoomNumber         int           `json:"roomNumber"`
	RoomID             int64         `json:"roomId,omitempty"`
	CheckInDate        time.Time     `json:"checkInDate"`
	CheckOutDate       time.Time     `json:"checkOutDate"`
	ActualCheckInTime  *time.Time    `json:"actualCheckInTime,omitempty"`
	ActualCheckOutTime *time.Time    `json:"actualCheckOutTime,omitempty"`
	BookingType        BookingType   `json:"bookingType"`
	Status             BookingStatus `json:"status"`
	NumberOfGuests     int           `json:"numberOfGuests"`
	Notes              string        `json:"notes,omitempty"`
	CancelReason       string        `json:"cancelReason,omitempty"`
}
