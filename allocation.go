package budget

import (
	"slices"
	"strings"
)

// Total sums the items of the allocation.
func (a MonthlyAllocation) Total() Money {
	total := Zero
	for _, item := range a.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// Add appends a new item with a fresh id. An empty label or an amount that
// is not strictly positive is ignored: ok is false and the allocation is untouched.
func (a *MonthlyAllocation) Add(label string, amount Money) (item AllocationItem, ok bool) {
	if strings.TrimSpace(label) == "" || !amount.IsPositive() {
		return AllocationItem{}, false
	}
	item = AllocationItem{ID: NewID(), Label: label, Amount: amount}
	a.Items = append(a.Items, item)
	return item, true
}

// Delete removes the item with the given id and reports whether it existed.
// Removing the last item leaves an empty, non-nil item list.
func (a *MonthlyAllocation) Delete(id string) bool {
	n := len(a.Items)
	a.Items = slices.DeleteFunc(a.Items, func(i AllocationItem) bool { return i.ID == id })
	if a.Items == nil {
		a.Items = []AllocationItem{}
	}
	return len(a.Items) != n
}

// AllocationsTotal sums every item of every allocation.
func AllocationsTotal(allocations []MonthlyAllocation) Money {
	total := Zero
	for _, a := range allocations {
		total = total.Add(a.Total())
	}
	return total
}
