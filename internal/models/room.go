package models

// Room status values as the upstream API stores them. The field is free-form
// on the wire (casing varies between call sites), so this stays a plain
// string rather than an enum.
const (
	RoomAvailable = "Available"
	RoomReserved  = "Reserved"
	RoomBooked    = "Booked"
)

type RoomPrice struct {
	PriceType BookingType `json:"priceType"`
	BasePrice float64     `json:"basePrice"`
}

type Room struct {
	ID           int64       `json:"id"`
	RoomNumber   int         `json:"roomNumber"`
	MaxOccupancy int         `json:"maxOccupancy"`
	RoomType     string      `json:"roomType"`
	Location     string      `json:"location"`
	Status       string      `json:"status"`
	Prices       []RoomPrice `json:"prices,omitempty"`
}
