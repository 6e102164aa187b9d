// Package date provides calendar types with day and month granularity.
//
// Dates carry no time of day nor location: a transaction made on the 5th is
// on the 5th wherever it is read.
package date

import (
	"cmp"
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the "YYYY-MM-DD" layout dates are written in.
const DateFormat = "2006-01-02"

// lenientFormat also reads single digit months and days, as in "2024-1-5".
const lenientFormat = "2006-1-2"

// Date is a calendar day. The zero Date is "no date".
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the date of year, month and day. Out of range values roll
// over, so New(2024, 2, 30) is March 1st.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Today is the current day in the local time zone.
func Today() Date { return New(time.Now().Date()) }

func (d Date) Year() int          { return d.y }
func (d Date) Month() time.Month  { return d.m }
func (d Date) Day() int           { return d.d }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }
func (d Date) After(x Date) bool  { return d.Compare(x) > 0 }

// Compare orders dates chronologically: -1 when d is earlier than x, 0 for
// the same day, +1 when later.
func (d Date) Compare(x Date) int {
	if c := cmp.Compare(d.y, x.y); c != 0 {
		return c
	}
	if c := cmp.Compare(d.m, x.m); c != 0 {
		return c
	}
	return cmp.Compare(d.d, x.d)
}

// Add moves d by i days, backwards when i is negative.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// midnight is d at 00:00 UTC.
func (d Date) midnight() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format lays d out like time.Time.Format; time of day fields read as midnight.
func (d Date) Format(layout string) string { return d.midnight().Format(layout) }

// String is d in DateFormat, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateFormat)
}

// Parse reads a "YYYY-MM-DD" date. Leading zeros may be omitted.
func Parse(str string) (Date, error) {
	on, err := time.Parse(lenientFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON writes d as a string, empty for the zero Date.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON reads a string written by MarshalJSON.
func (d *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
