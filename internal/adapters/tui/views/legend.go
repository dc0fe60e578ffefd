package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reportmap/internal/adapters/tui/styles"
	"reportmap/internal/domain"
)

// RenderLegend lists every relation with its line sample and description
func RenderLegend(g *domain.Graph) string {
	v := NewViewBuilder().Section("凡例")
	for _, rel := range g.Relations() {
		st, _ := g.Style(rel)
		sample := "───"
		if st.Dashed {
			sample = "╌╌╌"
		}
		line := lipgloss.NewStyle().Foreground(styles.RelationColor(st.Line))
		v.Line("  " + line.Render(sample+" "+padCells(st.Label, 12)) + styles.HelpDesc.Render(st.Description))
	}
	return v.Block()
}

// padCells right-pads s to n terminal cells
func padCells(s string, n int) string {
	w := domain.TextWidth(s)
	if w >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-w)
}
