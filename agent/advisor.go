package agent

import (
	"context"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/docs"
	"github.com/etnz/budget/renderer"
	"google.golang.org/genai"
)

// AdvisorModel is the model of the interactive advisor.
const AdvisorModel = "gemini-2.5-flash"

// Viewer derives the view of a month for the signed in user.
type Viewer interface {
	View(ctx context.Context, month date.Month) (budget.View, error)
}

// ViewerFunc adapts a function to the Viewer interface.
type ViewerFunc func(ctx context.Context, month date.Month) (budget.View, error)

func (f ViewerFunc) View(ctx context.Context, month date.Month) (budget.View, error) {
	return f(ctx, month)
}

// NewAdvisor returns an expert that answers questions about the user's
// budget, reading it through v. Amounts are shown in currency.
func NewAdvisor(v Viewer, currency string) *Expert {
	tools := Toolbox{Viewer: v, Tools: []Tool{
		{
			Name: "MonthlySummary",
			Description: `MonthlySummary returns the income, expense and balance of a month,
		the special allocations, the cash on hand, the lifetime liquidity and the investment portfolio value.`,
			Render: func(view budget.View) string { return renderer.SummaryMarkdown(view, currency) },
		},
		{
			Name:        "Transactions",
			Description: `Transactions lists the transactions of a month, newest first.`,
			Render:      func(view budget.View) string { return renderer.TransactionsMarkdown(view, currency) },
		},
		{
			Name:        "CategoryBreakdown",
			Description: `CategoryBreakdown lists the expense total per category of a month, largest first.`,
			Render:      func(view budget.View) string { return renderer.BreakdownMarkdown(view, currency) },
		},
		{
			Name:        "Investments",
			Description: `Investments lists the investments of the user. They are never part of liquidity.`,
			Render:      func(view budget.View) string { return renderer.InvestmentsMarkdown(view, currency) },
		},
	}}

	return &Expert{
		Name:      "Advisor",
		ModelName: AdvisorModel,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: tools.Declarations()},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal budget advisor. You answer the user's questions about their income,
			expenses, cash on hand and savings.

			Use the available tools to read the user's budget before answering, never guess figures.
			Months are written YYYY-MM. Keep answers brief, encouraging and professional, in markdown.

			` + docs.MustGet("concepts")}}},
		},
		Library: tools.Library(),
	}
}
