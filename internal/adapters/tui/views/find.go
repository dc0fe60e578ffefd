package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reportmap/internal/adapters/tui/styles"
	"reportmap/internal/application/commands"
	"reportmap/internal/domain"
)

// FindKeyMap defines key bindings for the find view
type FindKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

var FindKeys = FindKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "prev page"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const findPageSize = 10

// FindModel is the model for the node search view
type FindModel struct {
	ViewState
	graph   *domain.Graph
	input   textinput.Model
	results []commands.FindResult
	pages   *Paginator
}

// NewFindModel creates a new find view model
func NewFindModel(g *domain.Graph) *FindModel {
	input := textinput.New()
	input.Placeholder = "帳票名・id・役割"
	input.Focus()

	return &FindModel{
		graph: g,
		input: input,
		pages: NewPaginator(findPageSize),
	}
}

// Init initializes the find view
func (m *FindModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query
func (m *FindModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.pages.Reset()
	m.ClearMessage()
	m.input.Focus()
}

// SetGraph searches a reloaded structure map
func (m *FindModel) SetGraph(g *domain.Graph) {
	m.graph = g
	m.Reset()
}

// Update handles messages for the find view
func (m *FindModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, FindKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToDiagramMsg{}
			}

		case key.Matches(msg, FindKeys.Up):
			m.pages.CursorUp()
			return m, nil

		case key.Matches(msg, FindKeys.Down):
			m.pages.CursorDown()
			return m, nil

		case key.Matches(msg, FindKeys.NextPage):
			m.pages.NextPage()
			return m, nil

		case key.Matches(msg, FindKeys.PrevPage):
			m.pages.PrevPage()
			return m, nil

		case key.Matches(msg, FindKeys.Select):
			if c := m.pages.Cursor(); c < len(m.results) {
				node := m.results[c].Node
				return m, func() tea.Msg {
					return FindSelectMsg{Node: node}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.search(m.input.Value())
	return m, cmd
}

// search runs synchronously; the map is small and in memory
func (m *FindModel) search(query string) {
	m.ClearMessage()
	results, err := commands.NewFindCommand(m.graph, query).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		results = nil
	}
	m.results = results
	m.pages.SetTotal(len(results))
}

// FindSelectMsg is sent when a search result is chosen
type FindSelectMsg struct {
	Node domain.Node
}

// View renders the find view
func (m *FindModel) View() string {
	v := NewViewBuilder().
		Title("帳票を探す").
		Line(styles.InputFocused.Render(m.input.View())).
		BlankLine().
		Message(m.Message, m.MessageErr)

	switch {
	case len(m.results) > 0:
		header := styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results)))
		if page := m.pages.Indicator(); page != "" {
			header += RenderMuted("  " + page)
		}
		v.Line(header).BlankLine()

		start, end := m.pages.VisibleRange()
		for i := start; i < end; i++ {
			v.Line(m.renderResult(m.results[i].Node, i == m.pages.Cursor()))
		}
	case strings.TrimSpace(m.input.Value()) != "":
		v.Muted("No results found")
	default:
		v.Muted("Type to search")
	}

	return v.BlankLine().
		Help(FindKeys.Up, FindKeys.Down, FindKeys.NextPage, FindKeys.Select, FindKeys.Cancel).
		String()
}

func (m *FindModel) renderResult(n domain.Node, selected bool) string {
	tier := "[主]"
	if !n.IsPrimary() {
		tier = "[補]"
	}

	text := fmt.Sprintf("%s %s %s", tier, padCells(n.Label, 14), string(n.ID))

	if selected {
		return styles.NodeSelected.Render(text)
	}
	return text
}
