package budget

import (
	"encoding/json"
	"testing"
)

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		m    Money
		code string
		want string
	}{
		{M(1234.5), "INR", "₹1,234.50"},
		{M(-40), "INR", "-₹40.00"},
		{Zero, "USD", "$0.00"},
		{M(0.005), "USD", "$0.01"},
		{M(12), "???", "12.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.Format(tc.code); got != tc.want {
				t.Errorf("Format(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
	if got := M(5).SignedFormat("USD"); got != "+$5.00" {
		t.Errorf("SignedFormat() = %q, want +$5.00", got)
	}
}

func TestMoney_Exact(t *testing.T) {
	got := M(0.1).Add(M(0.2))
	if !got.Equal(M(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(M(12.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "12.5" {
		t.Errorf("json.Marshal() = %s, want 12.5", data)
	}
	for _, in := range []string{`12.5`, `"12.5"`} {
		var m Money
		if err := json.Unmarshal([]byte(in), &m); err != nil {
			t.Fatalf("json.Unmarshal(%s) error = %v", in, err)
		}
		if !m.Equal(M(12.5)) {
			t.Errorf("json.Unmarshal(%s) = %s", in, m)
		}
	}
}
