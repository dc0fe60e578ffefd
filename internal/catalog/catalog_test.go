package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportmap/internal/domain"
)

func TestDefault_DocumentedGraph(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)

	assert.Len(t, g.Nodes(), 10)
	assert.Len(t, g.Edges(), 9)

	var primary []domain.NodeID
	for _, n := range g.Nodes() {
		if n.IsPrimary() {
			primary = append(primary, n.ID)
		}
	}
	assert.Equal(t, []domain.NodeID{"voucher", "ledger", "trial-balance", "balance-sheet", "activity-statement"}, primary)

	e, ok := g.Edge("balance-sheet-notes")
	require.True(t, ok)
	assert.Equal(t, domain.RouteGroupFrame, e.Route)
	assert.Equal(t, domain.FrameFrom, e.Frame)
	assert.Equal(t, "補足", e.Label)
}

func TestDefault_IsShared(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b := MustLoad()

	assert.Same(t, a, b)
}

func TestDefault_StyleCompleteness(t *testing.T) {
	g := MustLoad()

	for _, e := range g.Edges() {
		_, ok := g.Style(e.Relation)
		assert.True(t, ok, "edge %s uses unstyled relation %s", e.ID, e.Relation)
	}
}

func TestDefault_FocusBalanceSheet(t *testing.T) {
	g := MustLoad()

	nodes := g.SecondaryOnly(g.VisibleNodes(false, "balance-sheet"))
	edges := g.VisibleEdges(false, "balance-sheet")

	assert.Equal(t, []domain.NodeID{"inventory", "notes"}, nodes.Sorted())
	assert.Equal(t, []domain.EdgeID{
		"balance-sheet-inventory",
		"balance-sheet-notes",
		"ledger-trial-balance",
		"trial-balance-activity-statement",
		"trial-balance-balance-sheet",
		"voucher-ledger",
	}, edges.Sorted())
}

func TestDefault_TutorialAndBreakdown(t *testing.T) {
	g := MustLoad()

	steps := g.Tutorial()
	require.Len(t, steps, 3)
	assert.Equal(t, "pair", steps[0].ID)
	assert.Nil(t, steps[0].Callout)
	require.NotNil(t, steps[2].Callout)
	assert.Equal(t, "出力方法をみる", steps[2].Callout.Text)
	assert.True(t, steps[2].Callout.ClickBadge)

	b, ok := g.Breakdown("balance-sheet")
	require.True(t, ok)
	require.Len(t, b.Categories, 3)
	assert.Len(t, b.Categories[0].Links, 1)
	assert.Empty(t, b.Categories[1].Links)
	assert.Len(t, b.Categories[2].Links, 2)
}

func TestDefault_NotesAlignWithPairFrame(t *testing.T) {
	g := MustLoad()
	p, ok := g.PairOf("balance-sheet")
	require.True(t, ok)
	frame, _ := g.PairFrame(p)
	notes, _ := g.Node("notes")

	assert.Equal(t, frame.CenterY(), notes.Box().CenterY())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "empty",
			doc:  "",
			want: "empty document",
		},
		{
			name: "unknown field",
			doc:  "nodes:\n  - id: a\n    colour: red\n",
			want: "field colour not found",
		},
		{
			name: "bad tier",
			doc:  "nodes:\n  - id: a\n    tier: tertiary\n",
			want: `unknown tier "tertiary"`,
		},
		{
			name: "dangling edge",
			doc: `
nodes:
  - id: a
edges:
  - id: a-b
    from: a
    to: b
    relation: record
styles:
  record:
    label: 記帳
`,
			want: `unknown node "b"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRaw_IsCopy(t *testing.T) {
	raw := Raw()
	raw[0] = 'X'

	assert.NotEqual(t, raw[0], Raw()[0])
}
