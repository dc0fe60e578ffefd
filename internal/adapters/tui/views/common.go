package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"reportmap/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// ActionMsg asks the diagram to run one state machine action
type ActionMsg struct {
	Action domain.Action
}

func dispatch(a domain.Action) tea.Cmd {
	return func() tea.Msg {
		return ActionMsg{Action: a}
	}
}

// SwitchToDiagramMsg returns to the diagram
type SwitchToDiagramMsg struct{}

// SwitchToHelpMsg opens the key reference
type SwitchToHelpMsg struct{}

// SwitchToFindMsg opens node search
type SwitchToFindMsg struct{}

// SwitchToTutorialMsg opens the walkthrough panel
type SwitchToTutorialMsg struct{}

// OpenEditorMsg asks the app to edit the structure map file
type OpenEditorMsg struct{}
