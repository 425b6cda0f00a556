package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_Today(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		tz   string
		want string
	}{
		{"tokyo is ahead of utc", time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC), "", "2024-03-02"},
		{"before tokyo midnight", time.Date(2024, 3, 1, 14, 59, 0, 0, time.UTC), "Asia/Tokyo", "2024-03-01"},
		{"utc zone", time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC), "UTC", "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := NewCalendar(tt.tz, func() time.Time { return tt.now })
			require.NoError(t, err)
			assert.Equal(t, tt.want, cal.Today().String())
		})
	}
}

func TestCalendar_DayBounds(t *testing.T) {
	cal, err := NewCalendar("Asia/Tokyo", nil)
	require.NoError(t, err)

	from, to := cal.DayBounds(date(2024, time.March, 2))

	assert.Equal(t, time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC), to)
}

func TestNewCalendar_UnknownZone(t *testing.T) {
	_, err := NewCalendar("Mars/Olympus", nil)
	assert.Error(t, err)
}
