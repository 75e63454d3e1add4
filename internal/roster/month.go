package roster

import (
	"fmt"
	"strings"
	"time"
)

// Month identifies a calendar month. It is always handled as plain integers so
// that no local-time conversion can move day 1 into the previous month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth accepts "YYYY-MM" or a full "YYYY-MM-DD" date, which is truncated
// to its month.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	var layout string
	switch len(s) {
	case len("2006-01"):
		layout = "2006-01"
	case len("2006-01-02"):
		layout = "2006-01-02"
	default:
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}

	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t, read in t's own location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// DaysInMonth returns 28, 29, 30 or 31.
func (m Month) DaysInMonth() int {
	// day 0 of the next month is the last day of this one
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date formats day d of the month as YYYY-MM-DD directly from the integers.
func (m Month) Date(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day)
}

// Time returns midnight UTC of day d.
func (m Month) Time(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// Start returns the first day of the month as YYYY-MM-DD.
func (m Month) Start() string {
	return m.Date(1)
}

// End returns the last day of the month as YYYY-MM-DD.
func (m Month) End() string {
	return m.Date(m.DaysInMonth())
}

// String returns YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether the month was never set.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}
