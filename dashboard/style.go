// Copyright (c) 2026 BVK Chaitanya

package dashboard

import (
	"github.com/bvk/tradedash/format"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
)

var classStyles = map[string]lipgloss.Style{
	format.ClassProfit:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	format.ClassLoss:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	format.ClassNeutral: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	format.ClassBuy:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	format.ClassSell:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	format.ClassWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	format.ClassAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

// styled renders s with the style of a formatter class. Unknown classes are
// rendered as plain text.
func styled(class, s string) string {
	if st, ok := classStyles[class]; ok {
		return st.Render(s)
	}
	return s
}
