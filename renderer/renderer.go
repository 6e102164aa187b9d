// Package renderer renders the derived views of the budget as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/budget"
)

//go:embed *.md
var templates embed.FS

// DashboardMarkdown renders every section of the view of a month.
func DashboardMarkdown(v budget.View, currency string) string {
	partials := map[string]string{
		"dashboard_summary":      "dashboard_summary.md",
		"dashboard_special":      "dashboard_special.md",
		"dashboard_breakdown":    "dashboard_breakdown.md",
		"dashboard_trend":        "dashboard_trend.md",
		"dashboard_transactions": "dashboard_transactions.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, viewFuncs(v, currency), v)
}

// SummaryMarkdown renders the headline figures of the view.
func SummaryMarkdown(v budget.View, currency string) string {
	return renderTemplate("summary", "dashboard_summary.md", nil, viewFuncs(v, currency), v)
}

// TransactionsMarkdown renders the transactions of the month.
func TransactionsMarkdown(v budget.View, currency string) string {
	return renderTemplate("transactions", "dashboard_transactions.md", nil, viewFuncs(v, currency), v)
}

// SpecialMarkdown renders the special allocation of the month.
func SpecialMarkdown(v budget.View, currency string) string {
	return renderTemplate("special", "dashboard_special.md", nil, viewFuncs(v, currency), v)
}

// BreakdownMarkdown renders the expense per category of the month.
func BreakdownMarkdown(v budget.View, currency string) string {
	return renderTemplate("breakdown", "dashboard_breakdown.md", nil, viewFuncs(v, currency), v)
}

// TrendMarkdown renders the daily income and expense of the month.
func TrendMarkdown(v budget.View, currency string) string {
	return renderTemplate("trend", "dashboard_trend.md", nil, viewFuncs(v, currency), v)
}

// InvestmentsMarkdown renders the investment portfolio.
func InvestmentsMarkdown(v budget.View, currency string) string {
	return renderTemplate("investments", "investments.md", nil, viewFuncs(v, currency), v)
}

// CategoriesMarkdown renders the categories a transaction can use.
func CategoriesMarkdown(categories []budget.Category) string {
	return renderTemplate("categories", "categories.md", nil, template.FuncMap{"cell": cell}, categories)
}

// viewFuncs returns the template functions to render v.
func viewFuncs(v budget.View, currency string) template.FuncMap {
	return template.FuncMap{
		"money":  func(m budget.Money) string { return m.Format(currency) },
		"signed": func(m budget.Money) string { return m.SignedFormat(currency) },
		"share":  func(m budget.Money) string { return percent(m, v.Stats.TotalExpense) },
		"cell":   cell,
	}
}

// percent formats part as a percentage of total, "-" when total is zero.
func percent(part, total budget.Money) string {
	if total.IsZero() {
		return "-"
	}
	return part.Decimal().Div(total.Decimal()).Shift(2).StringFixed(1) + "%"
}

// cell escapes s for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, funcs template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
