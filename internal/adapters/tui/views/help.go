package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"reportmap/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	graph  *domain.Graph
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel(g *domain.Graph) *HelpModel {
	return &HelpModel{graph: g}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToDiagramMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	return NewViewBuilder().
		Title("reportmap Help").
		Subtitle("帳票のつながりを読む").
		Section("Diagram").
		KeyLine("tab / shift+tab", "Move between documents (highlights what they feed)").
		KeyLine("enter / click", "Focus a primary document, open a secondary one").
		KeyLine("o / click 詳細", "Open the document's detail").
		KeyLine("] / [", "Select the next / previous relation").
		KeyLine("a", "Show every secondary document").
		KeyLine("p", "Toggle pair highlight").
		KeyLine("← ↑ → ↓ / wheel", "Scroll the map").
		BlankLine().
		Section("Detail").
		KeyLine("1-9", "Open or close a breakdown category").
		KeyLine("tab / enter", "Choose and follow a link").
		KeyLine("c", "Copy id or checkpoint").
		KeyLine("g", "Open the document").
		KeyLine("esc / click outside", "Close").
		BlankLine().
		Section("General").
		KeyLine("t", "Tutorial").
		KeyLine("/", "Find a document").
		KeyLine("l", "Toggle legend").
		KeyLine("e", "Edit the structure map file").
		KeyLine("?", "Toggle help").
		KeyLine("q / Ctrl+C", "Quit").
		BlankLine().
		Line(RenderLegend(m.graph)).
		BlankLine().
		Help(HelpKeys.Close).
		String()
}

// SetGraph shows the legend of a reloaded structure map
func (m *HelpModel) SetGraph(g *domain.Graph) {
	m.graph = g
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
