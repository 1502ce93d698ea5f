// Package stay holds the display arithmetic for booking time ranges.
package stay

import (
	"fmt"
	"time"

	"github.com/hotelops/dashboard-service/internal/models"
)

// Duration is the displayed length of a stay: hours for HOURLY bookings,
// days for DAILY, always rounded up. The absolute difference is used, so
// a swapped check-in/check-out pair still yields a positive figure
// instead of surfacing the data-entry error.
func Duration(t models.BookingType, checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		d = -d
	}

	unit := time.Hour
	if t == models.TypeDaily {
		unit = 24 * time.Hour
	}
	return int((d + unit - 1) / unit)
}

// Relative renders t against now the way the dashboard lists do:
// same calendar day reads "today"; otherwise days, weeks past 14 days,
// months past 60 days, with direction from the sign of the delta.
func Relative(t, now time.Time) string {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	if ty == ny && tm == nm && td == nd {
		return "today"
	}

	delta := t.Sub(now)
	future := delta > 0
	if !future {
		delta = -delta
	}

	days := int(delta.Hours() / 24)
	if days < 1 {
		days = 1
	}

	var n int
	var unit string
	switch {
	case days >= 60:
		n, unit = days/30, "month"
	case days >= 14:
		n, unit = days/7, "week"
	default:
		n, unit = days, "day"
	}
	if n != 1 {
		unit += "s"
	}

	if future {
		return fmt.Sprintf("in %d %s", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
