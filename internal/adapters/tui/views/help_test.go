package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportmap/internal/catalog"
)

func TestHelp_View(t *testing.T) {
	g := catalog.MustLoad()
	view := NewHelpModel(g).View()

	assert.Contains(t, view, "reportmap Help")
	assert.Contains(t, view, "Diagram")
	assert.Contains(t, view, "tab / shift+tab")
	assert.Contains(t, view, "Toggle legend")
	assert.Contains(t, view, "凡例")
	assert.Contains(t, view, "esc/q/?")
}

func TestRenderLegend_OneLinePerRelation(t *testing.T) {
	g := catalog.MustLoad()
	legend := RenderLegend(g)

	lines := strings.Split(legend, "\n")
	require.Len(t, lines, len(g.Relations())+1)
	assert.Contains(t, lines[0], "凡例")
	assert.False(t, strings.HasSuffix(legend, "\n"))
	for i, rel := range g.Relations() {
		st, _ := g.Style(rel)
		assert.Contains(t, lines[i+1], st.Label)
	}
}

func TestViewBuilder_KeyLineAlignsDescriptions(t *testing.T) {
	out := NewViewBuilder().
		KeyLine("a", "first").
		KeyLine("← ↑ → ↓", "second").
		Block()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "first"), len("  ")+keyCells)
	// wide and multi-byte keys still pad to keyCells terminal cells
	assert.Contains(t, lines[1], "← ↑ → ↓"+strings.Repeat(" ", keyCells-7)+"second")
}

func TestViewBuilder_MessageSkippedWhenEmpty(t *testing.T) {
	assert.Equal(t, "", NewViewBuilder().Message("", true).Block())
	assert.Contains(t, NewViewBuilder().Message("saved", false).Block(), "saved")
}
