package budget

import "github.com/etnz/budget/date"

// Snapshot is the complete raw state of one user, as read from the record
// store. It is the only input of Derive.
type Snapshot struct {
	UserID       string
	Baseline     Money // stored cash baseline
	Categories   []Category
	Transactions []Transaction // full history, any order
	Investments  []Investment
	Allocations  []MonthlyAllocation // every month
}

// Allocation returns the allocation record of month, or an empty one with
// found false when the user never recorded special expenses for it.
func (s *Snapshot) Allocation(month date.Month) (a MonthlyAllocation, found bool) {
	for _, a := range s.Allocations {
		if a.UserID == s.UserID && a.Month == month {
			return a, true
		}
	}
	return MonthlyAllocation{UserID: s.UserID, Month: month, Items: []AllocationItem{}}, false
}

// View is everything the dashboard displays for a reporting month. It is
// recomputed from scratch after every mutation, never patched.
type View struct {
	Month        date.Month
	Transactions []Transaction // hydrated, newest first, restricted to Month
	Stats        SummaryStats
	Cash         Money // physical cash on hand
	Baseline     Money
	Liquidity    Money // lifetime liquidity, same for every month
	Special      MonthlyAllocation
	SpecialTotal Money
	Breakdown    []CategoryShare
	Trend        []DayTotal
	Investments  []Investment
	Portfolio    Money
}

// Derive computes the view of month from the snapshot. It is a pure
// function: the same snapshot always yields the same view.
func Derive(s Snapshot, month date.Month) View {
	history := make([]Transaction, len(s.Transactions))
	copy(history, s.Transactions)
	SortByDateDesc(history)

	monthly := Hydrate(InMonth(history, month), s.Categories)
	special, _ := s.Allocation(month)
	specialTotal := special.Total()

	return View{
		Month:        month,
		Transactions: monthly,
		Stats:        MonthlyStats(monthly, specialTotal),
		Cash:         CurrentCash(s.Baseline, history),
		Baseline:     s.Baseline,
		Liquidity:    LifetimeLiquidity(s.Baseline, history, s.Allocations),
		Special:      special,
		SpecialTotal: specialTotal,
		Breakdown:    CategoryBreakdown(monthly),
		Trend:        DailyTrend(monthly),
		Investments:  s.Investments,
		Portfolio:    PortfolioValue(s.Investments),
	}
}
