package app

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone database for minimal container images

	"cloud.google.com/go/civil"
)

// DefaultTimeZone is where the app's audience lives; "today" rolls over at
// local midnight there, not at UTC midnight.
const DefaultTimeZone = "Asia/Tokyo"

// Calendar maps instants to calendar dates in the service time zone.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar loads tz. An empty tz selects DefaultTimeZone and a nil now
// selects time.Now.
func NewCalendar(tz string, now func() time.Time) (*Calendar, error) {
	if tz == "" {
		tz = DefaultTimeZone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", tz, err)
	}

	if now == nil {
		now = time.Now
	}

	return &Calendar{loc: loc, now: now}, nil
}

// Now returns the current instant.
func (c *Calendar) Now() time.Time {
	return c.now()
}

// Today returns the current date in the service time zone.
func (c *Calendar) Today() civil.Date {
	return civil.DateOf(c.now().In(c.loc))
}

// DayBounds returns [start, end) of d in the service time zone, as UTC instants.
func (c *Calendar) DayBounds(d civil.Date) (time.Time, time.Time) {
	start := d.In(c.loc)
	end := d.AddDays(1).In(c.loc)

	return start.UTC(), end.UTC()
}
