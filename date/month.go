package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// MonthFormat is the "YYYY-MM" layout used for reporting months.
const MonthFormat = "2006-01"

// Month is a calendar month, the reporting unit of the dashboard.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month, so that NewMonth(2024, 13) is January 2025.
func NewMonth(year int, month time.Month) Month {
	y, m, _ := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Date()
	return Month{y, m}
}

// MonthOf returns the month containing d.
func MonthOf(d Date) Month { return Month{d.y, d.m} }

// ThisMonth returns the current month in the local time zone.
func ThisMonth() Month { return MonthOf(Today()) }

// Year of the month.
func (m Month) Year() int { return m.y }

// Month of the year.
func (m Month) Month() time.Month { return m.m }

// IsZero returns true for the zero Month.
func (m Month) IsZero() bool { return m == Month{} }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// Last returns the last calendar day of the month, leap years included.
func (m Month) Last() Date { return New(m.y, m.m+1, 0) }

// Range returns the inclusive range of days of this month.
func (m Month) Range() Range { return Range{From: m.First(), To: m.Last()} }

// Contains reports whether d falls within the month.
func (m Month) Contains(d Date) bool { return d.y == m.y && d.m == m.m }

// Add returns the month i months later (or earlier for negative i).
func (m Month) Add(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// String formats the month as "YYYY-MM".
func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.y, m.m)
}

// ParseMonth parses a "YYYY-MM" month. Like Parse it accepts a single digit month.
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse("2006-1", str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonth(on.Year(), on.Month()), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// UnmarshalJSON reads a "YYYY-MM" string.
func (m *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalJSON writes the month as a "YYYY-MM" string.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
