package stay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hotelops/dashboard-service/internal/models"
)

func TestDuration_Hourly_RoundsUp(t *testing.T) {
	in := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, Duration(models.TypeHourly, in, in.Add(30*time.Minute)))
	assert.Equal(t, 1, Duration(models.TypeHourly, in, in.Add(time.Hour)))
	assert.Equal(t, 2, Duration(models.TypeHourly, in, in.Add(time.Hour+time.Minute)))
	assert.Equal(t, 5, Duration(models.TypeHourly, in, in.Add(5*time.Hour)))
}

func TestDuration_Daily_RoundsUp(t *testing.T) {
	in := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, Duration(models.TypeDaily, in, in.Add(20*time.Hour)))
	assert.Equal(t, 1, Duration(models.TypeDaily, in, in.Add(24*time.Hour)))
	assert.Equal(t, 2, Duration(models.TypeDaily, in, in.Add(25*time.Hour)))
	assert.Equal(t, 3, Duration(models.TypeDaily, in, in.Add(72*time.Hour)))
}

// A swapped pair (data entry error) must still yield the same positive
// figure: duration is symmetric in its arguments.
func TestDuration_Symmetric(t *testing.T) {
	in := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	out := in.Add(26 * time.Hour)

	for _, bt := range []models.BookingType{models.TypeHourly, models.TypeDaily} {
		assert.Equal(t, Duration(bt, in, out), Duration(bt, out, in), string(bt))
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same day earlier", now.Add(-3 * time.Hour), "today"},
		{"same day later", now.Add(5 * time.Hour), "today"},
		{"yesterday", now.Add(-24 * time.Hour), "1 day ago"},
		{"three days ago", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"in two days", now.Add(2 * 24 * time.Hour), "in 2 days"},
		{"13 days ago stays in days", now.Add(-13 * 24 * time.Hour), "13 days ago"},
		{"two weeks ago", now.Add(-14 * 24 * time.Hour), "2 weeks ago"},
		{"in three weeks", now.Add(21 * 24 * time.Hour), "in 3 weeks"},
		{"59 days stays in weeks", now.Add(-59 * 24 * time.Hour), "8 weeks ago"},
		{"two months ago", now.Add(-60 * 24 * time.Hour), "2 months ago"},
		{"in three months", now.Add(95 * 24 * time.Hour), "in 3 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Relative(tt.t, now))
		})
	}
}
