package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"reportmap/internal/adapters/editor"
	"reportmap/internal/adapters/tui/views"
	"reportmap/internal/config"
	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDiagram ViewState = iota
	ViewHelp
	ViewFind
	ViewTutorial
)

// Options are the collaborators of the TUI. Everything but Config may be
// nil; the matching feature is then unavailable.
type Options struct {
	Config    *config.Config
	Source    ports.GraphSource
	GraphPath string // file opened by the editor, empty for the embedded map
	Bus       ports.SignalBus
	Clipboard ports.Clipboard
	Opener    ports.DocumentOpener
	Editor    *editor.Opener
	Logger    *slog.Logger
}

// App is the main TUI application model
type App struct {
	graph  *domain.Graph
	opts   Options
	logger *slog.Logger
	sub    ports.Subscription

	state    ViewState
	diagram  *views.DiagramModel
	help     *views.HelpModel
	find     *views.FindModel
	tutorial *views.TutorialModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(g *domain.Graph, opts Options) *App {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := opts.Config

	return &App{
		graph:  g,
		opts:   opts,
		logger: logger,
		state:  ViewDiagram,
		diagram: views.NewDiagramModel(g, views.DiagramOptions{
			Router:        domain.Router{Jog: cfg.Canvas.JogOffset},
			ShowAll:       cfg.UI.ShowAll,
			InitialFocus:  domain.NodeID(cfg.UI.InitialFocus),
			PairHighlight: cfg.UI.PairHighlight,
			CopyFlash:     cfg.CopyFlash(),
			Bus:           opts.Bus,
			Opener:        opts.Opener,
			Clipboard:     opts.Clipboard,
			Logger:        logger,
		}),
		help:     views.NewHelpModel(g),
		find:     views.NewFindModel(g),
		tutorial: views.NewTutorialModel(g.Tutorial()),
	}
}

// Init subscribes to tour signals
func (a *App) Init() tea.Cmd {
	if a.opts.Bus == nil {
		return nil
	}
	a.sub = a.opts.Bus.Subscribe()
	return waitForSignal(a.sub)
}

// Close cancels the signal subscription
func (a *App) Close() {
	if a.sub != nil {
		a.sub.Cancel()
	}
}

// Diagram exposes the diagram model
func (a *App) Diagram() *views.DiagramModel {
	return a.diagram
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

type signalMsg struct {
	sig ports.Signal
}

// waitForSignal delivers the next signal of sub as a message. It is
// re-issued after every delivery.
func waitForSignal(sub ports.Subscription) tea.Cmd {
	return func() tea.Msg {
		sig, ok := <-sub.Signals()
		if !ok {
			return nil
		}
		return signalMsg{sig: sig}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.diagram.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		a.find.SetSize(msg.Width, msg.Height)
		a.tutorial.SetSize(msg.Width, msg.Height)
		return a, nil

	case signalMsg:
		a.diagram.HandleSignal(msg.sig)
		return a, waitForSignal(a.sub)

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToFindMsg:
		a.state = ViewFind
		a.find.Reset()
		return a, a.find.Init()

	case views.SwitchToTutorialMsg:
		if len(a.graph.Tutorial()) == 0 {
			a.diagram.SetMessage("no tutorial in this structure map", true)
			return a, nil
		}
		a.state = ViewTutorial
		a.diagram.SetPanelHeight(views.TutorialPanelHeight)
		return a, a.tutorial.Open()

	case views.SwitchToDiagramMsg:
		a.state = ViewDiagram
		return a, nil

	// Tutorial messages
	case views.TourStepMsg:
		a.diagram.ShowStep(msg.Step)
		return a, nil

	case views.TutorialClosedMsg:
		a.closeTutorial()
		a.diagram.EndTour()
		return a, nil

	case views.CalloutActivatedMsg:
		a.closeTutorial()
		a.diagram.ActivateCallout()
		return a, nil

	// Find messages
	case views.FindSelectMsg:
		a.state = ViewDiagram
		link := domain.CrossLink{Select: msg.Node.ID}
		if owner, ok := a.graph.OwnerOf(msg.Node.ID); ok {
			link.Focus = owner
		}
		a.diagram.Dispatch(domain.FollowCrossLink{Link: link})
		a.diagram.Reveal(msg.Node.ID)
		return a, nil

	case views.ActionMsg:
		a.diagram.Dispatch(msg.Action)
		return a, nil

	case views.CopyFlashDoneMsg:
		a.diagram.ClearFlash(msg.ID)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor()

	case editorFinishedMsg:
		a.reload(msg.err)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewDiagram:
		_, cmd = a.diagram.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	case ViewFind:
		_, cmd = a.find.Update(msg)
	case ViewTutorial:
		if _, ok := msg.(tea.MouseMsg); ok {
			_, cmd = a.diagram.Update(msg)
		} else {
			_, cmd = a.tutorial.Update(msg)
		}
	}

	return a, cmd
}

func (a *App) closeTutorial() {
	a.state = ViewDiagram
	a.diagram.SetPanelHeight(0)
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor() tea.Cmd {
	if a.opts.Editor == nil {
		return nil
	}
	cmd, err := a.opts.Editor.Command(a.opts.GraphPath)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// reload re-reads the structure map after editing. A map that no longer
// validates leaves the current one in place.
func (a *App) reload(editErr error) {
	if editErr != nil {
		a.diagram.SetMessage(fmt.Sprintf("editor: %v", editErr), true)
		return
	}
	if a.opts.Source == nil {
		return
	}

	g, err := a.opts.Source.Load()
	if err != nil {
		a.logger.Warn("reload failed", "location", a.opts.Source.Location(), "error", err)
		a.diagram.SetMessage(fmt.Sprintf("%s: %v", a.opts.Source.Location(), err), true)
		return
	}

	a.graph = g
	a.diagram.SetGraph(g)
	a.help.SetGraph(g)
	a.find.SetGraph(g)
	a.tutorial.SetSteps(g.Tutorial())
	a.logger.Info("graph loaded", "location", a.opts.Source.Location(), "nodes", len(g.Nodes()), "edges", len(g.Edges()))
	a.diagram.SetMessage(fmt.Sprintf("reloaded %d nodes, %d edges", len(g.Nodes()), len(g.Edges())), false)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	case ViewFind:
		return a.find.View()
	case ViewTutorial:
		return a.diagram.Render(a.tutorial.View())
	default:
		return a.diagram.View()
	}
}
