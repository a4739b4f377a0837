package appointment

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("date must be a calendar day in YYYY-MM-DD format")

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// Day is a calendar date without time of day.
type Day struct {
	t time.Time
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, ErrInvalidDate
	}
	return Day{t: t}, nil
}

// DayOf truncates t to its calendar date in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Day) Time() time.Time {
	return d.t
}

func (d Day) String() string {
	return d.t.Format(dayLayout)
}

// Month is the YYYY-MM bucket the day falls into.
func (d Day) Month() string {
	return d.t.Format(monthLayout)
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}
