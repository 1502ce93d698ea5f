package models

import "time"

// Page is the upstream API's paginated collection envelope.
type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

type Asset struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	RoomID    int64  `json:"roomId,omitempty"`
	Condition string `json:"condition"`
	Quantity  int    `json:"quantity"`
}

type Promotion struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discountPercent"`
	ValidFrom       time.Time `json:"validFrom"`
	ValidTo         time.Time `json:"validTo"`
	Active          bool      `json:"active"`
}

type Settings struct {
	HotelName    string  `json:"hotelName"`
	Address      string  `json:"address"`
	Currency     string  `json:"currency"`
	CheckInHour  int     `json:"checkInHour"`
	CheckOutHour int     `json:"checkOutHour"`
	TaxPercent   float64 `json:"taxPercent"`
}

// DashboardMetrics is read-only; the upstream computes every figure.
type DashboardMetrics struct {
	TotalRooms      int     `json:"totalRooms"`
	OccupiedRooms   int     `json:"occupiedRooms"`
	AvailableRooms  int     `json:"availableRooms"`
	TodayCheckIns   int     `json:"todayCheckIns"`
	TodayCheckOuts  int     `json:"todayCheckOuts"`
	PendingInvoices int     `json:"pendingInvoices"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
}

type Country struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	FlagURL string `json:"flagUrl"`
}
