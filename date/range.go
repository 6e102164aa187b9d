package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range between two dates, swapping them if needed.
func NewRange(from, to Date) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range.
func (r Range) Days() int {
	return int(r.To.midnight().Sub(r.From.midnight()).Hours()/24) + 1
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
