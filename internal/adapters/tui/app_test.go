package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportmap/internal/adapters/bus"
	"reportmap/internal/adapters/editor"
	"reportmap/internal/adapters/tui/views"
	"reportmap/internal/catalog"
	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

type fakeSource struct {
	graph *domain.Graph
	err   error
	loads int
}

func (f *fakeSource) Load() (*domain.Graph, error) {
	f.loads++
	return f.graph, f.err
}

func (f *fakeSource) Location() string { return "fake.yaml" }

func newTestApp(opts Options) *App {
	a := NewApp(catalog.MustLoad(), opts)
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return a
}

// drain feeds the messages produced by cmd back into the app
func drain(a *App, cmd tea.Cmd) {
	for i := 0; cmd != nil && i < 10; i++ {
		_, cmd = a.Update(cmd())
	}
}

func TestApp_FindSelectFocusesOwner(t *testing.T) {
	a := newTestApp(Options{})

	a.Update(views.SwitchToFindMsg{})
	require.Equal(t, ViewFind, a.State())

	notes, _ := catalog.MustLoad().Node("notes")
	a.Update(views.FindSelectMsg{Node: notes})

	assert.Equal(t, ViewDiagram, a.State())
	assert.Equal(t, domain.NodeID("balance-sheet"), a.Diagram().State().Focus)
	assert.Equal(t, "node:notes", a.Diagram().State().Selection.String())
}

func TestApp_TutorialHighlights(t *testing.T) {
	a := newTestApp(Options{})

	_, cmd := a.Update(views.SwitchToTutorialMsg{})
	drain(a, cmd)

	assert.Equal(t, ViewTutorial, a.State())
	assert.Equal(t, []domain.NodeID{"activity-statement", "balance-sheet"}, a.Diagram().State().Tour.Sorted())
	assert.Contains(t, a.View(), "ステップ 1 / 3")

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	drain(a, cmd)

	assert.Equal(t, ViewDiagram, a.State())
	assert.Nil(t, a.Diagram().State().Tour)
}

func TestApp_CalloutStartsMenuTour(t *testing.T) {
	b := bus.New(nil)
	a := newTestApp(Options{Bus: b})
	wait := a.Init()
	require.NotNil(t, wait)
	defer a.Close()

	_, cmd := a.Update(views.SwitchToTutorialMsg{})
	drain(a, cmd)
	for range 2 {
		_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyRight})
		drain(a, cmd)
	}
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(a, cmd)
	assert.Equal(t, ViewDiagram, a.State())

	// menu-tour opens the target, which publishes menu-tour-enter
	_, wait = a.Update(wait())
	assert.Equal(t, "node:balance-sheet", a.Diagram().State().Selection.String())

	_, wait = a.Update(wait())
	assert.Equal(t, "g で出力方法を開く", a.Diagram().Message)
	assert.NotNil(t, a.Diagram().State().Tour)

	b.Publish(ports.Signal{Name: ports.SignalMenuTourClear})
	a.Update(wait())
	assert.Nil(t, a.Diagram().State().Tour)
}

func TestApp_TutorialNeedsSteps(t *testing.T) {
	g, err := domain.NewGraph(domain.Definition{Nodes: catalog.MustLoad().Nodes()[:1]})
	require.NoError(t, err)
	a := NewApp(g, Options{})

	a.Update(views.SwitchToTutorialMsg{})
	assert.Equal(t, ViewDiagram, a.State())
	assert.True(t, a.Diagram().MessageErr)
}

func TestApp_EditorRefusesEmbeddedMap(t *testing.T) {
	a := newTestApp(Options{Editor: editor.NewOpener()})

	_, cmd := a.Update(views.OpenEditorMsg{})
	drain(a, cmd)

	assert.True(t, a.Diagram().MessageErr)
	assert.Contains(t, a.Diagram().Message, "embedded")
}

func TestApp_Reload(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
		wantErr bool
	}{
		{"success", nil, "reloaded 10 nodes, 9 edges", false},
		{"invalid map", errors.New("boom"), "fake.yaml: boom", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{graph: catalog.MustLoad(), err: tt.err}
			a := newTestApp(Options{Source: src})
			a.Diagram().Dispatch(domain.ClickNode{ID: "ledger"})

			a.reload(nil)

			assert.Equal(t, 1, src.loads)
			assert.Equal(t, tt.wantMsg, a.Diagram().Message)
			assert.Equal(t, tt.wantErr, a.Diagram().MessageErr)
			assert.Equal(t, domain.NodeID("ledger"), a.Diagram().State().Focus)
		})
	}
}
