package views

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"reportmap/internal/adapters/tui/styles"
	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

// DrawerKeyMap defines key bindings for the detail drawer
type DrawerKeyMap struct {
	Close    key.Binding
	NextLink key.Binding
	PrevLink key.Binding
	Activate key.Binding
	Copy     key.Binding
	Category key.Binding
}

var DrawerKeys = DrawerKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	NextLink: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next link"),
	),
	PrevLink: key.NewBinding(
		key.WithKeys("shift+tab"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "follow"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Category: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "breakdown"),
	),
}

const (
	copiedText    = "コピーしました"
	notCopiedText = "not copied"
)

var errNoClipboard = errors.New("no clipboard available")

// CopyFlashDoneMsg clears a copy confirmation once its flash is over
type CopyFlashDoneMsg struct {
	ID int
}

// drawerTarget is an activatable row of the drawer content
type drawerTarget struct {
	row    int
	action domain.Action
}

// DrawerModel renders the detail panel for the current selection. It holds
// no selection state of its own; every interaction becomes an ActionMsg.
type DrawerModel struct {
	graph     *domain.Graph
	clipboard ports.Clipboard
	flash     time.Duration
	logger    *slog.Logger

	viewport viewport.Model
	state    domain.State
	targets  []drawerTarget
	cursor   int

	flashMsg string
	flashErr bool
	flashID  int

	width  int
	height int
}

// NewDrawerModel creates a drawer
func NewDrawerModel(g *domain.Graph, cb ports.Clipboard, flash time.Duration, logger *slog.Logger) *DrawerModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DrawerModel{
		graph:     g,
		clipboard: cb,
		flash:     flash,
		logger:    logger,
		viewport:  viewport.New(0, 0),
		cursor:    -1,
	}
}

// SetSize updates the outer dimensions, border included
func (d *DrawerModel) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = max(0, width-4)
	d.viewport.Height = max(0, height-3)
	d.rebuild()
}

// Reset drops per-selection UI state: link cursor, scroll and flash
func (d *DrawerModel) Reset() {
	d.cursor = -1
	d.flashMsg = ""
	d.flashErr = false
	d.viewport.GotoTop()
}

// SetState re-renders the content for s, keeping the link cursor on the
// same target when it still exists
func (d *DrawerModel) SetState(s domain.State) {
	var current domain.Action
	if d.cursor >= 0 && d.cursor < len(d.targets) {
		current = d.targets[d.cursor].action
	}

	d.state = s
	d.rebuild()

	d.cursor = -1
	for i, t := range d.targets {
		if current != nil && t.action == current {
			d.cursor = i
		}
	}
	d.rebuild()
}

// Flash returns the current copy confirmation, if any
func (d *DrawerModel) Flash() (string, bool) {
	return d.flashMsg, d.flashErr
}

// ClearFlash ends the copy confirmation started as id. Older ticks are
// ignored so a fresh copy keeps its full flash.
func (d *DrawerModel) ClearFlash(id int) {
	if id == d.flashID {
		d.flashMsg = ""
		d.flashErr = false
	}
}

// HandleKey processes a key while the drawer is open. handled is false for
// keys the diagram should see.
func (d *DrawerModel) HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	switch {
	case key.Matches(msg, DrawerKeys.Close):
		return dispatch(domain.Escape{}), true

	case key.Matches(msg, DrawerKeys.NextLink):
		d.moveCursor(1)
		return nil, true

	case key.Matches(msg, DrawerKeys.PrevLink):
		d.moveCursor(-1)
		return nil, true

	case key.Matches(msg, DrawerKeys.Activate):
		if d.cursor >= 0 && d.cursor < len(d.targets) {
			return dispatch(d.targets[d.cursor].action), true
		}
		return nil, true

	case key.Matches(msg, DrawerKeys.Copy):
		return d.copy(), true

	case key.Matches(msg, DrawerKeys.Category):
		if c, ok := d.category(int(msg.String()[0] - '1')); ok {
			return dispatch(domain.ToggleCategory{ID: c.ID}), true
		}
		return nil, true

	case key.Matches(msg, d.viewport.KeyMap.Up, d.viewport.KeyMap.Down, d.viewport.KeyMap.PageUp, d.viewport.KeyMap.PageDown):
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return cmd, true
	}
	return nil, false
}

// HandleMouse processes a mouse event at (x, y) relative to the drawer's
// top-left corner
func (d *DrawerModel) HandleMouse(msg tea.MouseMsg, x, y int) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		d.viewport.LineUp(3)
		return nil
	case tea.MouseButtonWheelDown:
		d.viewport.LineDown(3)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if x < 1 || x >= d.width-1 || y < 1 || y > d.viewport.Height {
		return nil
	}

	row := y - 1 + d.viewport.YOffset
	for i, t := range d.targets {
		if t.row == row {
			d.cursor = i
			d.rebuild()
			return dispatch(t.action)
		}
	}
	return nil
}

func (d *DrawerModel) moveCursor(delta int) {
	n := len(d.targets)
	if n == 0 {
		return
	}
	switch {
	case d.cursor < 0 && delta < 0:
		d.cursor = n - 1
	case d.cursor < 0:
		d.cursor = 0
	default:
		d.cursor = (d.cursor + delta + n) % n
	}
	d.rebuild()

	row := d.targets[d.cursor].row
	if row < d.viewport.YOffset {
		d.viewport.SetYOffset(row)
	} else if row >= d.viewport.YOffset+d.viewport.Height {
		d.viewport.SetYOffset(row - d.viewport.Height + 1)
	}
}

func (d *DrawerModel) category(idx int) (domain.Category, bool) {
	id, ok := d.state.Selection.Node()
	if !ok {
		return domain.Category{}, false
	}
	b, ok := d.graph.Breakdown(id)
	if !ok || idx < 0 || idx >= len(b.Categories) {
		return domain.Category{}, false
	}
	return b.Categories[idx], true
}

// copyText is the node id, or the edge checkpoint falling back to its id
func (d *DrawerModel) copyText() string {
	if id, ok := d.state.Selection.Node(); ok {
		return string(id)
	}
	if id, ok := d.state.Selection.Edge(); ok {
		if e, ok := d.graph.Edge(id); ok && e.Checkpoint != "" {
			return e.Checkpoint
		}
		return string(id)
	}
	return ""
}

func (d *DrawerModel) copy() tea.Cmd {
	text := d.copyText()
	if text == "" {
		return nil
	}

	err := errNoClipboard
	if d.clipboard != nil {
		err = d.clipboard.WriteAll(text)
	}
	if err != nil {
		d.logger.Warn("copy failed", "selection", d.state.Selection.String(), "error", err)
		d.flashMsg, d.flashErr = notCopiedText, true
	} else {
		d.flashMsg, d.flashErr = copiedText, false
	}

	d.flashID++
	id := d.flashID
	return tea.Tick(d.flash, func(time.Time) tea.Msg {
		return CopyFlashDoneMsg{ID: id}
	})
}

// contentBuilder collects drawer lines and the rows that can be activated
type contentBuilder struct {
	width   int
	lines   []string
	targets []drawerTarget
}

func (c *contentBuilder) line(s string) {
	c.lines = append(c.lines, s)
}

func (c *contentBuilder) wrapped(s string, style lipgloss.Style) {
	if s == "" {
		return
	}
	for _, l := range strings.Split(lipgloss.NewStyle().Width(max(1, c.width-2)).Render(s), "\n") {
		c.line("  " + style.Render(strings.TrimRight(l, " ")))
	}
}

func (c *contentBuilder) target(s string, a domain.Action) {
	c.targets = append(c.targets, drawerTarget{row: len(c.lines), action: a})
	c.line(s)
}

func (d *DrawerModel) rebuild() {
	c := &contentBuilder{width: d.viewport.Width}

	if id, ok := d.state.Selection.Node(); ok {
		visible := d.graph.VisibleEdges(d.state.AllVisible, d.state.Focus)
		if detail, ok := d.graph.DescribeNode(id, visible); ok {
			d.nodeContent(c, detail)
		}
	} else if id, ok := d.state.Selection.Edge(); ok {
		if detail, ok := d.graph.DescribeEdge(id); ok {
			d.edgeContent(c, detail)
		}
	}

	d.targets = c.targets
	for i, t := range d.targets {
		if i == d.cursor {
			c.lines[t.row] = styles.LinkCursor.Render(ansi.Strip(c.lines[t.row]))
		}
	}
	d.viewport.SetContent(strings.Join(c.lines, "\n"))
}

func (d *DrawerModel) nodeContent(c *contentBuilder, detail domain.NodeDetail) {
	n := detail.Node
	c.line(styles.Title.Render(n.Label) + "  " + RenderMuted(string(n.ID)))
	c.wrapped(n.Role, styles.MutedText)

	if detail.Owner != "" {
		if owner, ok := d.graph.Node(detail.Owner); ok {
			c.line(RenderLabelValue("所属", owner.Label))
		}
	}
	if detail.Pair != nil {
		partner, _ := detail.Pair.Partner(n.ID)
		label := string(partner)
		if p, ok := d.graph.Node(partner); ok {
			label = p.Label
		}
		c.line(RenderLabelValue("ペア", detail.Pair.Label+" / "+label))
	}
	c.line("")

	c.line(styles.DrawerHeading.Render("直接つながる帳票"))
	if connected := detail.Connected(); len(connected) > 0 {
		chips := make([]string, 0, len(connected))
		for _, label := range connected {
			chips = append(chips, styles.Chip.Render(label))
		}
		c.line("  " + strings.Join(chips, " "))
	} else {
		c.line("  " + RenderMuted("なし"))
	}
	c.line("")

	connections := func(heading, arrow string, list []domain.Connection) {
		c.line(styles.DrawerHeading.Render(heading))
		if len(list) == 0 {
			c.line("  " + RenderMuted("なし"))
			return
		}
		for _, conn := range list {
			c.line(fmt.Sprintf("  %s %s %s", arrow, conn.Label, RenderMuted("("+conn.RelationLabel+")")))
		}
	}
	connections("入力元", "←", detail.Incoming)
	connections("出力先", "→", detail.Outgoing)

	if detail.Breakdown == nil {
		return
	}
	c.line("")
	c.line(styles.DrawerHeading.Render(detail.Breakdown.Title))
	for i, cat := range detail.Breakdown.Categories {
		open := d.state.Expanded == cat.ID
		marker := "▸"
		if open {
			marker = "▾"
		}
		c.target(fmt.Sprintf(" %d %s %s", i+1, marker, cat.Label), domain.ToggleCategory{ID: cat.ID})
		if !open {
			continue
		}
		for _, item := range cat.Items {
			c.line(fmt.Sprintf("     %s  %s", item.Label, RenderMuted(item.Note)))
		}
		for _, link := range cat.Links {
			c.target("     → "+link.Label, domain.FollowCrossLink{Link: link})
		}
	}
}

func (d *DrawerModel) edgeContent(c *contentBuilder, detail domain.EdgeDetail) {
	e := detail.Edge
	relation := lipgloss.NewStyle().Foreground(styles.RelationColor(detail.Style.Line)).Bold(true)
	title := relation.Render(detail.RelationLabel)
	if detail.Style.Dashed {
		title += " " + RenderMuted("(破線)")
	}
	c.line(title + "  " + RenderMuted(string(e.ID)))
	c.line(fmt.Sprintf("  %s → %s", e.FromLabel, e.ToLabel))
	c.wrapped(detail.Style.Description, styles.MutedText)
	c.line("")

	c.line(styles.DrawerHeading.Render("根拠"))
	c.wrapped(e.Rationale, lipgloss.NewStyle())
	c.line("")
	c.line(styles.DrawerHeading.Render("確認ポイント"))
	c.wrapped(e.Checkpoint, lipgloss.NewStyle())
}

// View renders the drawer box
func (d *DrawerModel) View() string {
	footer := RenderHelpLine(DrawerKeys.Copy, DrawerKeys.Close)
	if d.flashMsg != "" {
		footer = RenderMessage(d.flashMsg, d.flashErr)
	}
	body := d.viewport.View() + "\n" + footer
	return styles.Drawer.
		Width(max(0, d.width-2)).
		Height(max(0, d.height-2)).
		Render(body)
}
