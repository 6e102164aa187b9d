package budget

import (
	"slices"

	"github.com/etnz/budget/date"
)

// SummaryStats are the monthly headline figures.
type SummaryStats struct {
	TotalIncome  Money `json:"totalIncome"`
	TotalExpense Money `json:"totalExpense"`
	// Balance is what is left of the month once ordinary expenses and the
	// month's special allocations are paid.
	Balance Money `json:"balance"`
}

// MonthlyStats totals income and expense of txs, which must already be
// restricted to the reporting month, and deducts the month's special total
// from the balance.
func MonthlyStats(txs []Transaction, special Money) SummaryStats {
	var s SummaryStats
	for _, t := range txs {
		switch t.Type {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case Expense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense).Sub(special)
	return s
}

// InMonth returns the transactions dated within month, first and last day
// included, preserving their order.
func InMonth(txs []Transaction, month date.Month) []Transaction {
	r := month.Range()
	var out []Transaction
	for _, t := range txs {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// SortByDateDesc sorts transactions newest first. Transactions on the same day keep their relative order.
func SortByDateDesc(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
}

// DayTotal is the income and expense of a single day of the trend chart.
type DayTotal struct {
	Day     string `json:"day"` // "MM-DD"
	Income  Money  `json:"income"`
	Expense Money  `json:"expense"`
}

// trendDays is the number of active days kept by DailyTrend.
const trendDays = 10

// DailyTrend groups txs by day of month and returns the last ten active days in chronological order.
//
// Days are keyed by "MM-DD" only, so txs should not span more than one year.
func DailyTrend(txs []Transaction) []DayTotal {
	index := make(map[string]int)
	var days []DayTotal
	for _, t := range txs {
		key := t.Date.Format("01-02")
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, DayTotal{Day: key})
		}
		if t.Type == Income {
			days[i].Income = days[i].Income.Add(t.Amount)
		} else {
			days[i].Expense = days[i].Expense.Add(t.Amount)
		}
	}
	slices.SortFunc(days, func(a, b DayTotal) int {
		switch {
		case a.Day < b.Day:
			return -1
		case a.Day > b.Day:
			return 1
		}
		return 0
	})
	if len(days) > trendDays {
		days = days[len(days)-trendDays:]
	}
	return days
}
