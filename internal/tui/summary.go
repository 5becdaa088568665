package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/benchpage/internal/util"
)

// maxNameWidth caps the name column of the terminal summary.
const maxNameWidth = 40

// SummaryTable is one benchmark group as shown in the terminal.
type SummaryTable struct {
	Title string
	Label string
	Rows  []SummaryRow
}

// SummaryRow is a single benchmark line.
type SummaryRow struct {
	Name  string
	Value string
}

var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Align(lipgloss.Right)
	emptyStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
	blockStyle = lipgloss.NewStyle().MarginLeft(2)
)

// RenderSummary lays the groups out as aligned two-column blocks.
func RenderSummary(tables []SummaryTable) string {
	var b strings.Builder
	for _, table := range tables {
		b.WriteString(renderBadge(table.Title))
		b.WriteString("\n")
		if len(table.Rows) == 0 {
			b.WriteString(blockStyle.Render(emptyStyle.Render("No data for " + table.Label + ".")))
			b.WriteString("\n\n")
			continue
		}

		nameWidth, valueWidth := 0, 0
		for _, row := range table.Rows {
			nameWidth = max(nameWidth, lipgloss.Width(util.TruncateRunes(row.Name, maxNameWidth)))
			valueWidth = max(valueWidth, lipgloss.Width(row.Value))
		}

		lines := make([]string, 0, len(table.Rows))
		for _, row := range table.Rows {
			name := nameStyle.Width(nameWidth + 2).Render(util.TruncateRunes(row.Name, maxNameWidth))
			value := valueStyle.Width(valueWidth).Render(row.Value)
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, name, value))
		}
		b.WriteString(blockStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n\n")
	}
	return b.String()
}
