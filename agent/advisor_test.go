package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"google.golang.org/genai"
)

// fakeViewer derives views from a fixed snapshot.
type fakeViewer struct {
	s     budget.Snapshot
	asked []date.Month
}

func (f *fakeViewer) View(_ context.Context, month date.Month) (budget.View, error) {
	f.asked = append(f.asked, month)
	if month.Year() < 2000 {
		return budget.View{}, errors.New("no data")
	}
	return budget.Derive(f.s, month), nil
}

func TestAdvisor_Functions(t *testing.T) {
	v := &fakeViewer{s: budget.Snapshot{
		UserID:     "u1",
		Categories: budget.DefaultCategories,
		Transactions: []budget.Transaction{
			{ID: "t1", UserID: "u1", Amount: budget.M(40), Type: budget.Expense, CategoryID: "c3", Date: date.New(2024, 1, 6), PaymentMethod: budget.Cash},
		},
	}}
	lib := NewAdvisor(v, "INR").Library

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "CategoryBreakdown", Args: map[string]any{"month": "2024-01"}})
	out, _ := resp.Response["output"].(string)
	if !strings.Contains(out, "Food & Dining") {
		t.Errorf("CategoryBreakdown output = %q, want the Food & Dining category", out)
	}
	if resp.ID != "1" || resp.Name != "CategoryBreakdown" {
		t.Errorf("response = %+v, want it to answer call 1", resp)
	}
	if v.asked[0] != date.MustParseMonth("2024-01") {
		t.Errorf("asked month = %s", v.asked[0])
	}

	resp = lib(context.Background(), &genai.FunctionCall{Name: "MonthlySummary", Args: map[string]any{}})
	if _, ok := resp.Response["output"]; !ok {
		t.Errorf("MonthlySummary without month = %v, want the current month", resp.Response)
	}
	if v.asked[1] != date.ThisMonth() {
		t.Errorf("default month = %s, want %s", v.asked[1], date.ThisMonth())
	}
}

func TestAdvisor_FunctionErrors(t *testing.T) {
	lib := NewAdvisor(&fakeViewer{}, "INR").Library
	testCases := []struct {
		name string
		call *genai.FunctionCall
	}{
		{"unknown function", &genai.FunctionCall{Name: "Nope"}},
		{"bad month", &genai.FunctionCall{Name: "Transactions", Args: map[string]any{"month": "January"}}},
		{"not a string", &genai.FunctionCall{Name: "Transactions", Args: map[string]any{"month": 2024}}},
		{"viewer error", &genai.FunctionCall{Name: "Transactions", Args: map[string]any{"month": "1999-01"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := lib(context.Background(), tc.call)
			if _, ok := resp.Response["error"].(string); !ok {
				t.Errorf("response = %v, want an error message", resp.Response)
			}
		})
	}
}

func TestExpert_AskNotStarted(t *testing.T) {
	e := &Expert{Name: "Advisor"}
	if _, err := e.Ask(context.Background(), &genai.Part{Text: "hi"}); err == nil {
		t.Errorf("Ask() on a stopped expert succeeded")
	}
}
