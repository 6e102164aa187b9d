package budget

import "slices"

const (
	// UnknownCategory names a transaction whose category id does not resolve.
	UnknownCategory = "Unknown"
	// OtherCategory groups expenses that reach aggregation without a name.
	OtherCategory = "Other"
)

// Palette is the fixed list of category display colours.
var Palette = []string{
	"#3b82f6", // blue
	"#ef4444", // red
	"#10b981", // emerald
	"#f59e0b", // amber
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#6366f1", // indigo
	"#14b8a6", // teal
	"#f43f5e", // rose
	"#84cc16", // lime
}

// Hydrate returns copies of txs with CategoryName resolved against
// categories, "Unknown" when the id matches none.
func Hydrate(txs []Transaction, categories []Category) []Transaction {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		if _, dup := names[c.ID]; !dup {
			names[c.ID] = c.Name
		}
	}
	out := make([]Transaction, len(txs))
	for i, t := range txs {
		name, ok := names[t.CategoryID]
		if !ok || name == "" {
			name = UnknownCategory
		}
		t.CategoryName = name
		out[i] = t
	}
	return out
}

// CategoryShare is the expense total of one category.
type CategoryShare struct {
	Name  string `json:"name"`
	Value Money  `json:"value"`
	// ColorIndex is the position in the sorted breakdown modulo the palette
	// size: the largest category always gets the first colour.
	ColorIndex int `json:"colorIndex"`
}

// Color returns the palette colour of the share.
func (c CategoryShare) Color() string { return Palette[c.ColorIndex%len(Palette)] }

// CategoryBreakdown sums expense transactions per category name, largest
// first. Equal totals keep the order in which their category was first met.
func CategoryBreakdown(txs []Transaction) []CategoryShare {
	index := make(map[string]int)
	var shares []CategoryShare
	for _, t := range txs {
		if t.Type != Expense {
			continue
		}
		name := t.CategoryName
		if name == "" {
			name = OtherCategory
		}
		i, ok := index[name]
		if !ok {
			i = len(shares)
			index[name] = i
			shares = append(shares, CategoryShare{Name: name})
		}
		shares[i].Value = shares[i].Value.Add(t.Amount)
	}

	slices.SortStableFunc(shares, func(a, b CategoryShare) int {
		return b.Value.Cmp(a.Value)
	})
	for i := range shares {
		shares[i].ColorIndex = i % len(Palette)
	}
	return shares
}
