package budget

import "errors"

var (
	// ErrInvalidAmount rejects input that is not a number.
	ErrInvalidAmount = errors.New("amount is not a number")
	// ErrNegativeAmount rejects a cash figure below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// CashDelta sums the signed amounts of cash-channel transactions. Online
// transactions do not move physical cash.
func CashDelta(txs []Transaction) Money {
	total := Zero
	for _, t := range txs {
		if t.PaymentMethod != Cash {
			continue
		}
		total = total.Add(t.Signed())
	}
	return total
}

// CurrentCash is the physical cash on hand: the stored baseline plus every
// cash-channel movement of the full history.
func CurrentCash(baseline Money, txs []Transaction) Money {
	return baseline.Add(CashDelta(txs))
}

// BackSolveBaseline returns the baseline to store so that CurrentCash over
// the same history reads exactly cash.
//
// The baseline is a seed rather than a displayed value: future cash
// transactions keep moving the displayed figure from there.
func BackSolveBaseline(cash Money, txs []Transaction) (Money, error) {
	if cash.IsNegative() {
		return Zero, ErrNegativeAmount
	}
	return cash.Sub(CashDelta(txs)), nil
}

// ParseCash parses a user supplied cash figure, rejecting non-numeric and negative input.
func ParseCash(s string) (Money, error) {
	m, err := ParseMoney(s)
	if err != nil {
		return Zero, errors.Join(ErrInvalidAmount, err)
	}
	if m.IsNegative() {
		return Zero, ErrNegativeAmount
	}
	return m, nil
}
