package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/budget"
)

// Legend renders one line per category share with a swatch of its colour,
// for terminals.
func Legend(shares []budget.CategoryShare, currency string) string {
	width := 0
	for _, s := range shares {
		width = max(width, lipgloss.Width(s.Name))
	}
	name := lipgloss.NewStyle().Width(width + 2)
	amount := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	for _, s := range shares {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color())).Render("●")
		fmt.Fprintf(&b, "%s %s%s\n", swatch, name.Render(s.Name), amount.Render(s.Value.Format(currency)))
	}
	return b.String()
}
