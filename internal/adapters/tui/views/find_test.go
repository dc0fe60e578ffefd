package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportmap/internal/catalog"
	"reportmap/internal/domain"
)

func typeQuery(m *FindModel, q string) {
	for _, r := range q {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFind_SelectsBestMatch(t *testing.T) {
	m := NewFindModel(catalog.MustLoad())

	typeQuery(m, "ldgr")
	require.NotEmpty(t, m.results)
	assert.Equal(t, domain.NodeID("ledger"), m.results[0].Node.ID)

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(FindSelectMsg)
	require.True(t, ok)
	assert.Equal(t, domain.NodeID("ledger"), msg.Node.ID)
}

func TestFind_JapaneseLabel(t *testing.T) {
	m := NewFindModel(catalog.MustLoad())

	typeQuery(m, "財産")
	require.NotEmpty(t, m.results)
	assert.Equal(t, domain.NodeID("inventory"), m.results[0].Node.ID)
	assert.Contains(t, m.View(), "[補]")
}

func TestFind_NoResults(t *testing.T) {
	m := NewFindModel(catalog.MustLoad())

	assert.Contains(t, m.View(), "Type to search")

	typeQuery(m, "zzz")
	assert.Empty(t, m.results)
	assert.Contains(t, m.View(), "No results found")

	_, cmd := m.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
}

func TestFind_CancelAndReset(t *testing.T) {
	m := NewFindModel(catalog.MustLoad())
	typeQuery(m, "ledger")

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchToDiagramMsg{}, cmd())

	m.Reset()
	assert.Empty(t, m.results)
	assert.Empty(t, m.input.Value())
}
