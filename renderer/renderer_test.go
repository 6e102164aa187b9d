package renderer

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/google/go-cmp/cmp"
)

func sampleView() budget.View {
	s := budget.Snapshot{
		UserID:     "u1",
		Baseline:   budget.M(100),
		Categories: budget.DefaultCategories,
		Transactions: []budget.Transaction{
			{ID: "t1", UserID: "u1", Amount: budget.M(50), Type: budget.Expense, CategoryID: "c6", Date: date.New(2024, 1, 2), PaymentMethod: budget.Online, Note: "rent | january"},
			{ID: "t2", UserID: "u1", Amount: budget.M(30), Type: budget.Expense, CategoryID: "c3", Date: date.New(2024, 1, 3), PaymentMethod: budget.Cash},
			{ID: "t3", UserID: "u1", Amount: budget.M(200), Type: budget.Income, CategoryID: "c1", Date: date.New(2024, 1, 1), PaymentMethod: budget.Online},
		},
		Allocations: []budget.MonthlyAllocation{{
			UserID: "u1", Month: date.MustParseMonth("2024-01"),
			Items: []budget.AllocationItem{{ID: "a1", Label: "Gift", Amount: budget.M(20)}},
		}},
	}
	return budget.Derive(s, date.MustParseMonth("2024-01"))
}

func TestBreakdownMarkdown(t *testing.T) {
	got := BreakdownMarkdown(sampleView(), "INR")
	want := "## Spending breakdown\n\n" +
		"| Category | Amount | Share |\n" +
		"|:---|---:|---:|\n" +
		"| Housing | ₹50.00 | 62.5% |\n" +
		"| Food & Dining | ₹30.00 | 37.5% |\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BreakdownMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptySections(t *testing.T) {
	v := budget.Derive(budget.Snapshot{UserID: "u1"}, date.MustParseMonth("2024-01"))
	testCases := []struct {
		name   string
		render func(budget.View, string) string
		want   string
	}{
		{"breakdown", BreakdownMarkdown, "## Spending breakdown\n\nNo expenses recorded.\n"},
		{"special", SpecialMarkdown, "## Special expenses\n\nNo special expenses this month.\n"},
		{"trend", TrendMarkdown, "## Daily trend\n\nNo activity this month.\n"},
		{"transactions", TransactionsMarkdown, "## Transactions\n\nNo transactions this month.\n"},
		{"investments", InvestmentsMarkdown, "## Investments\n\nNo investments yet.\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.render(v, "INR")); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDashboardMarkdown(t *testing.T) {
	got := DashboardMarkdown(sampleView(), "INR")
	for _, want := range []string{
		"# Budget 2024-01",
		"| **Balance** | **₹100.00** |",
		"| ₹70.00 | ₹200.00 | ₹0.00 |",
		"| Gift | ₹20.00 | a1 |",
		"| 2024-01-02 | expense | online | Housing | -₹50.00 | rent \\| january | t1 |",
		"| 2024-01-01 | income | online | Salary | +₹200.00 |  | t3 |",
		"| 01-03 | ₹0.00 | ₹30.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DashboardMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("DashboardMarkdown() reported an error:\n%s", got)
	}
}

func TestCategoriesMarkdown(t *testing.T) {
	got := CategoriesMarkdown(budget.DefaultCategories[:2])
	want := "# Categories\n\n| ID | Name | Type |\n|:---|:---|:---|\n| c1 | Salary | income |\n| c2 | Freelance | income |\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategoriesMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestLegend(t *testing.T) {
	got := Legend(sampleView().Breakdown, "INR")
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Legend() has %d lines, want 2:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "Housing") || !strings.Contains(lines[0], "₹50.00") {
		t.Errorf("first legend line = %q", lines[0])
	}
}

func TestTemplatesParse(t *testing.T) {
	files, err := fs.Glob(templates, "*.md")
	if err != nil || len(files) == 0 {
		t.Fatalf("no embedded templates: %v", err)
	}
	v := sampleView()
	for _, f := range files {
		if f == "categories.md" {
			continue
		}
		got := renderTemplate(f, f, nil, viewFuncs(v, "INR"), v)
		if strings.HasPrefix(got, "error") && !strings.Contains(got, "not defined") {
			t.Errorf("template %s: %s", f, got)
		}
	}
}
