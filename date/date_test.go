package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_Compare(t *testing.T) {
	testCases := []struct {
		d, x Date
		want int
	}{
		{New(2024, 1, 5), New(2024, 1, 5), 0},
		{New(2024, 1, 5), New(2024, 1, 6), -1},
		{New(2024, 2, 1), New(2024, 1, 31), 1},
		{New(2023, 12, 31), New(2024, 1, 1), -1},
		{New(2024, 2, 30), New(2024, 3, 1), 0}, // rolls over
		{Date{}, New(1, 1, 1), -1},
	}
	for _, tc := range testCases {
		if got := tc.d.Compare(tc.x); got != tc.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tc.d, tc.x, got, tc.want)
		}
		if got := tc.d.Before(tc.x); got != (tc.want < 0) {
			t.Errorf("%v.Before(%v) = %v", tc.d, tc.x, got)
		}
		if got := tc.d.After(tc.x); got != (tc.want > 0) {
			t.Errorf("%v.After(%v) = %v", tc.d, tc.x, got)
		}
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-05", want: New(2024, time.January, 5)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2024-02-30", wantErr: true},
		{in: "05/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := New(2024, time.March, 9)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	if string(data) != `"2024-03-09"` {
		t.Errorf("json.Marshal() = %s, want %q", data, "2024-03-09")
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if got != d {
		t.Errorf("json.Unmarshal() = %v, want %v", got, d)
	}
}

func TestMonth_Bounds(t *testing.T) {
	testCases := []struct {
		month     string
		wantFirst string
		wantLast  string
	}{
		{month: "2024-02", wantFirst: "2024-02-01", wantLast: "2024-02-29"}, // leap year
		{month: "2023-02", wantFirst: "2023-02-01", wantLast: "2023-02-28"},
		{month: "1900-02", wantFirst: "1900-02-01", wantLast: "1900-02-28"}, // century, not leap
		{month: "2000-02", wantFirst: "2000-02-01", wantLast: "2000-02-29"},
		{month: "2024-04", wantFirst: "2024-04-01", wantLast: "2024-04-30"},
		{month: "2024-12", wantFirst: "2024-12-01", wantLast: "2024-12-31"},
	}

	for _, tc := range testCases {
		t.Run(tc.month, func(t *testing.T) {
			m := MustParseMonth(tc.month)
			if got := m.First().String(); got != tc.wantFirst {
				t.Errorf("First() = %s, want %s", got, tc.wantFirst)
			}
			if got := m.Last().String(); got != tc.wantLast {
				t.Errorf("Last() = %s, want %s", got, tc.wantLast)
			}
		})
	}
}

func TestMonth_Contains(t *testing.T) {
	m := MustParseMonth("2024-02")
	testCases := []struct {
		day  string
		want bool
	}{
		{"2024-01-31", false},
		{"2024-02-01", true},
		{"2024-02-29", true},
		{"2024-03-01", false},
		{"2023-02-15", false},
	}
	for _, tc := range testCases {
		if got := m.Contains(MustParse(tc.day)); got != tc.want {
			t.Errorf("%v.Contains(%s) = %v, want %v", m, tc.day, got, tc.want)
		}
		if got := m.Range().Contains(MustParse(tc.day)); got != tc.want {
			t.Errorf("%v.Range().Contains(%s) = %v, want %v", m, tc.day, got, tc.want)
		}
	}
}

func TestMonth_Add(t *testing.T) {
	m := MustParseMonth("2024-11")
	if got := m.Add(2).String(); got != "2025-01" {
		t.Errorf("Add(2) = %s, want 2025-01", got)
	}
	if got := m.Add(-11).String(); got != "2023-12" {
		t.Errorf("Add(-11) = %s, want 2023-12", got)
	}
}

func TestParseMonth(t *testing.T) {
	if _, err := ParseMonth("2024-13"); err == nil {
		t.Errorf("ParseMonth(2024-13) expected an error")
	}
	m, err := ParseMonth("2024-3")
	if err != nil {
		t.Fatalf("ParseMonth(2024-3) failed: %v", err)
	}
	if m.String() != "2024-03" {
		t.Errorf("ParseMonth(2024-3) = %s, want 2024-03", m)
	}
}

func TestRange_Days(t *testing.T) {
	if got := MustParseMonth("2024-02").Range().Days(); got != 29 {
		t.Errorf("Days() = %d, want 29", got)
	}
	r := NewRange(MustParse("2024-01-10"), MustParse("2024-01-01"))
	if r.From != MustParse("2024-01-01") {
		t.Errorf("NewRange() did not order its boundaries: %v", r)
	}
}
