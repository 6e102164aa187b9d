package budget

import (
	"fmt"
	"time"

	"github.com/etnz/budget/date"
	"github.com/google/uuid"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses "income" or "expense".
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case Income, Expense:
		return t, nil
	}
	return "", fmt.Errorf("unknown transaction type %q, want %q or %q", s, Income, Expense)
}

// PaymentMethod is the channel a transaction went through.
type PaymentMethod string

const (
	Cash   PaymentMethod = "cash"
	Online PaymentMethod = "online"
)

// ParsePaymentMethod parses "cash" or "online".
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch p := PaymentMethod(s); p {
	case Cash, Online:
		return p, nil
	}
	return "", fmt.Errorf("unknown payment method %q, want %q or %q", s, Cash, Online)
}

// InvestmentType classifies an investment holding.
type InvestmentType string

const (
	FixedDeposit InvestmentType = "FD"
	MutualFund   InvestmentType = "Mutual Fund"
	Stock        InvestmentType = "Stock"
	Gold         InvestmentType = "Gold"
	RealEstate   InvestmentType = "Real Estate"
	Crypto       InvestmentType = "Crypto"
	OtherAsset   InvestmentType = "Other"
)

// InvestmentTypes lists the known investment types in display order.
var InvestmentTypes = []InvestmentType{FixedDeposit, MutualFund, Stock, Gold, RealEstate, Crypto, OtherAsset}

// ParseInvestmentType matches s against the known investment types.
func ParseInvestmentType(s string) (InvestmentType, error) {
	for _, t := range InvestmentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown investment type %q", s)
}

// NewID returns a process-unique identifier for a new record.
func NewID() string { return uuid.NewString() }

// User is an account known to the application.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	// Password is the legacy locally stored secret (a bcrypt hash). It is never
	// part of a session.
	Password string `json:"password,omitempty"`
}

// Sanitized returns a copy of the user without its password.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// SystemUser owns the default categories shared by all users.
const SystemUser = "system"

// Category labels transactions of one direction.
type Category struct {
	ID     string          `json:"id"`
	UserID string          `json:"userId"`
	Name   string          `json:"name"`
	Type   TransactionType `json:"type"`
}

// DefaultCategories are available to every user.
var DefaultCategories = []Category{
	{ID: "c1", UserID: SystemUser, Name: "Salary", Type: Income},
	{ID: "c2", UserID: SystemUser, Name: "Freelance", Type: Income},
	{ID: "c3", UserID: SystemUser, Name: "Food & Dining", Type: Expense},
	{ID: "c4", UserID: SystemUser, Name: "Transportation", Type: Expense},
	{ID: "c5", UserID: SystemUser, Name: "Utilities", Type: Expense},
	{ID: "c6", UserID: SystemUser, Name: "Housing", Type: Expense},
	{ID: "c7", UserID: SystemUser, Name: "Entertainment", Type: Expense},
	{ID: "c8", UserID: SystemUser, Name: "Healthcare", Type: Expense},
	{ID: "c9", UserID: SystemUser, Name: "Shopping", Type: Expense},
	{ID: "c10", UserID: SystemUser, Name: "Groceries", Type: Expense},
}

// CategoriesOf returns the categories usable for a direction, in order.
func CategoriesOf(categories []Category, t TransactionType) []Category {
	var out []Category
	for _, c := range categories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Transaction is an immutable income or expense record.
type Transaction struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Amount     Money           `json:"amount"` // Amount is always positive, Type gives the sign.
	Type       TransactionType `json:"type"`
	CategoryID string          `json:"categoryId"`
	// CategoryName is resolved from CategoryID when the transaction is read, see Hydrate.
	CategoryName  string        `json:"categoryName,omitempty"`
	Date          date.Date     `json:"date"`
	Note          string        `json:"note"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Signed returns the amount with its direction applied: positive for income, negative for expense.
func (t Transaction) Signed() Money {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Investment is a holding tracked apart from liquidity.
type Investment struct {
	ID     string         `json:"id"`
	UserID string         `json:"userId"`
	Name   string         `json:"name"`
	Type   InvestmentType `json:"type"`
	Amount Money          `json:"amount"`
	Date   date.Date      `json:"date"`
}

// AllocationItem is one planned special expense of a month.
type AllocationItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount Money  `json:"amount"`
}

// MonthlyAllocation holds the special expenses of one user for one month.
// There is at most one record per (user, month).
type MonthlyAllocation struct {
	UserID string           `json:"userId"`
	Month  date.Month       `json:"month"`
	Items  []AllocationItem `json:"items"`
}
