package budget

// LifetimeLiquidity is the all-time net liquid worth: the cash baseline, plus
// every transaction ever recorded whatever its channel, minus every special
// allocation of every month.
//
// Allocations are money spent or reserved, so they are deducted. Investments
// are a separate holding and are not an input at all: adding one never
// changes liquidity.
func LifetimeLiquidity(baseline Money, txs []Transaction, allocations []MonthlyAllocation) Money {
	total := baseline
	for _, t := range txs {
		total = total.Add(t.Signed())
	}
	return total.Sub(AllocationsTotal(allocations))
}

// PortfolioValue sums the amounts of investments. It is shown beside
// liquidity and never added to it.
func PortfolioValue(investments []Investment) Money {
	total := Zero
	for _, i := range investments {
		total = total.Add(i.Amount)
	}
	return total
}
