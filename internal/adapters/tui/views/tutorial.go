package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"reportmap/internal/adapters/tui/styles"
	"reportmap/internal/domain"
)

// TutorialKeyMap defines key bindings for the tutorial panel
type TutorialKeyMap struct {
	Next     key.Binding
	Back     key.Binding
	Activate key.Binding
	Close    key.Binding
}

var TutorialKeys = TutorialKeyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "n"),
		key.WithHelp("→", "next"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "b"),
		key.WithHelp("←", "back"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "t", "q"),
		key.WithHelp("esc", "close"),
	),
}

// TutorialPanelHeight is the number of rows the panel occupies
const TutorialPanelHeight = 3

// TourStepMsg asks the diagram to show one tutorial step
type TourStepMsg struct {
	Step domain.TutorialStep
}

// CalloutActivatedMsg is sent when the tutorial callout is clicked or
// activated from the keyboard
type CalloutActivatedMsg struct{}

// TutorialClosedMsg is sent when the panel is dismissed
type TutorialClosedMsg struct{}

// TutorialModel walks through the steps of the structure map
type TutorialModel struct {
	steps []domain.TutorialStep
	index int
	width int
}

// NewTutorialModel creates a tutorial over steps
func NewTutorialModel(steps []domain.TutorialStep) *TutorialModel {
	return &TutorialModel{steps: steps}
}

// Open restarts from the first step
func (m *TutorialModel) Open() tea.Cmd {
	m.index = 0
	return m.stepCmd()
}

// Index returns the current step position
func (m *TutorialModel) Index() int {
	return m.index
}

// SetSteps replaces the steps after the map was reloaded
func (m *TutorialModel) SetSteps(steps []domain.TutorialStep) {
	m.steps = steps
	m.index = 0
}

func (m *TutorialModel) stepCmd() tea.Cmd {
	if len(m.steps) == 0 {
		return nil
	}
	step := m.steps[m.index]
	return func() tea.Msg {
		return TourStepMsg{Step: step}
	}
}

// Update handles messages for the tutorial panel
func (m *TutorialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, TutorialKeys.Close):
			return m, func() tea.Msg { return TutorialClosedMsg{} }

		case key.Matches(msg, TutorialKeys.Next):
			if m.index < len(m.steps)-1 {
				m.index++
				return m, m.stepCmd()
			}

		case key.Matches(msg, TutorialKeys.Back):
			if m.index > 0 {
				m.index--
				return m, m.stepCmd()
			}

		case key.Matches(msg, TutorialKeys.Activate):
			if len(m.steps) == 0 {
				return m, nil
			}
			if m.steps[m.index].Callout != nil {
				return m, func() tea.Msg { return CalloutActivatedMsg{} }
			}
			if m.index < len(m.steps)-1 {
				m.index++
				return m, m.stepCmd()
			}
		}
	}
	return m, nil
}

// Init initializes the tutorial panel
func (m *TutorialModel) Init() tea.Cmd {
	return nil
}

// View renders the panel
func (m *TutorialModel) View() string {
	v := NewViewBuilder()

	if len(m.steps) == 0 {
		v.Line(styles.StatusKey.Render("ステップ 0 / 0")).BlankLine()
	} else {
		step := m.steps[m.index]
		counter := fmt.Sprintf("ステップ %d / %d", m.index+1, len(m.steps))
		v.Line(styles.StatusKey.Render(counter) + " " + styles.Title.Render(step.Label))
		if step.Callout != nil {
			v.Muted(fmt.Sprintf("enter または吹き出しをクリックで「%s」", step.Callout.Text))
		} else {
			v.BlankLine()
		}
	}

	bindings := []key.Binding{TutorialKeys.Close}
	if m.index > 0 {
		bindings = append([]key.Binding{TutorialKeys.Back}, bindings...)
	}
	if m.index < len(m.steps)-1 {
		bindings = append([]key.Binding{TutorialKeys.Next}, bindings...)
	}
	return v.Help(bindings...).Block()
}

// SetSize updates the view dimensions
func (m *TutorialModel) SetSize(width, height int) {
	m.width = width
}
