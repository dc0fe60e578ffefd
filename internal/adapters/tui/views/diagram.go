package views

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reportmap/internal/adapters/tui/styles"
	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

// DiagramKeyMap defines key bindings for the diagram view
type DiagramKeyMap struct {
	NextNode key.Binding
	PrevNode key.Binding
	Click    key.Binding
	Detail   key.Binding
	NextEdge key.Binding
	PrevEdge key.Binding
	ShowAll  key.Binding
	Escape   key.Binding
	Tutorial key.Binding
	Find     key.Binding
	Help     key.Binding
	Legend   key.Binding
	Pairs    key.Binding
	Edit     key.Binding
	Open     key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Quit     key.Binding
}

var DiagramKeys = DiagramKeyMap{
	NextNode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next node"),
	),
	PrevNode: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev node"),
	),
	Click: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "focus"),
	),
	Detail: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "detail"),
	),
	NextEdge: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]/[", "edges"),
	),
	PrevEdge: key.NewBinding(
		key.WithKeys("["),
	),
	ShowAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "show all"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Tutorial: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tutorial"),
	),
	Find: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Legend: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "legend"),
	),
	Pairs: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pair highlight"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit map"),
	),
	Open: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "open document"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

const (
	headerRows     = 2
	footerRows     = 1
	panStep        = 4
	drawerMaxWidth = 46
	drawerMinWidth = 24
	detailMarker   = "詳細"
	clickBadgeText = "クリック"
)

// DiagramOptions carry the collaborators and initial settings of a diagram
type DiagramOptions struct {
	Router        domain.Router
	ShowAll       bool
	InitialFocus  domain.NodeID
	PairHighlight bool
	CopyFlash     time.Duration
	Bus           ports.SignalBus
	Opener        ports.DocumentOpener
	Clipboard     ports.Clipboard
	Logger        *slog.Logger
}

// DiagramModel is the structure map itself: boxes, routed edges, the
// detail drawer and any tutorial callout. Every interaction goes through
// domain.Reduce.
type DiagramModel struct {
	ViewState
	graph  *domain.Graph
	router domain.Router
	bus    ports.SignalBus
	opener ports.DocumentOpener
	logger *slog.Logger

	state       domain.State
	pairClosure bool
	drawer      *DrawerModel

	cursor     domain.NodeID
	edgeCursor int
	scrollX    int
	scrollY    int
	legend     bool
	panelRows  int

	callout    *domain.Callout
	tourTarget domain.NodeID
	enterGuide bool
}

// NewDiagramModel creates the diagram view model
func NewDiagramModel(g *domain.Graph, opts DiagramOptions) *DiagramModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	state := domain.State{AllVisible: opts.ShowAll}
	if n, ok := g.Node(opts.InitialFocus); ok && n.IsPrimary() {
		state.Focus = n.ID
		state.AllVisible = false
	}

	m := &DiagramModel{
		graph:       g,
		router:      opts.Router,
		bus:         opts.Bus,
		opener:      opts.Opener,
		logger:      logger,
		state:       domain.Reconcile(g, state),
		pairClosure: opts.PairHighlight,
		edgeCursor:  -1,
	}
	m.drawer = NewDrawerModel(g, opts.Clipboard, opts.CopyFlash, logger)
	m.drawer.SetState(m.state)
	return m
}

// Init initializes the diagram view
func (m *DiagramModel) Init() tea.Cmd {
	return nil
}

// State returns the current interaction state
func (m *DiagramModel) State() domain.State {
	return m.state
}

// Drawer exposes the detail drawer
func (m *DiagramModel) Drawer() *DrawerModel {
	return m.drawer
}

// ClearFlash ends a copy confirmation, see DrawerModel.ClearFlash
func (m *DiagramModel) ClearFlash(id int) {
	m.drawer.ClearFlash(id)
}

// SetGraph swaps in a reloaded structure map and drops anything that no
// longer exists in it
func (m *DiagramModel) SetGraph(g *domain.Graph) {
	m.graph = g
	m.drawer.graph = g
	if _, ok := g.Node(m.state.Focus); !ok {
		m.state.Focus = ""
	}
	if _, ok := g.Node(m.cursor); !ok {
		m.cursor = ""
	}
	m.edgeCursor = -1
	m.callout = nil
	m.state = domain.Reconcile(g, m.state)
	m.drawer.SetState(m.state)
	m.clampScroll()
}

// Dispatch runs one action through the state machine
func (m *DiagramModel) Dispatch(a domain.Action) {
	prev := m.state
	m.state = domain.Reduce(m.graph, m.state, a)

	if prev.Focus != m.state.Focus {
		m.logger.Debug("focus changed", "from", prev.Focus, "to", m.state.Focus)
	}
	if m.cursor != "" && !m.graph.VisibleNodes(m.state.AllVisible, m.state.Focus).Has(m.cursor) {
		m.cursor = ""
	}
	if prev.Selection != m.state.Selection {
		m.drawer.Reset()
		m.resize()
		if id, ok := m.state.Selection.Node(); ok {
			m.reveal(id)
		}
	}
	m.drawer.SetState(m.state)
}

// SetSize updates the view dimensions
func (m *DiagramModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.resize()
}

// SetPanelHeight reserves rows below the canvas for an overlay panel
func (m *DiagramModel) SetPanelHeight(rows int) {
	m.panelRows = rows
	m.resize()
}

func (m *DiagramModel) resize() {
	m.drawer.SetSize(m.drawerWidth(), m.canvasHeight())
	m.clampScroll()
}

func (m *DiagramModel) drawerWidth() int {
	return max(drawerMinWidth, min(drawerMaxWidth, m.Width/2))
}

func (m *DiagramModel) canvasWidth() int {
	if m.state.DrawerOpen() {
		return max(0, m.Width-m.drawerWidth())
	}
	return m.Width
}

func (m *DiagramModel) legendRows() int {
	if !m.legend {
		return 0
	}
	return len(m.graph.Relations()) + 1
}

func (m *DiagramModel) canvasHeight() int {
	footer := footerRows
	if m.panelRows > 0 {
		footer = m.panelRows
	}
	return max(0, m.Height-headerRows-footer-m.legendRows())
}

// Update handles messages for the diagram view
func (m *DiagramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ActionMsg:
		m.Dispatch(msg.Action)
		return m, nil

	case CopyFlashDoneMsg:
		m.ClearFlash(msg.ID)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.state.DrawerOpen() {
			if cmd, handled := m.drawer.HandleKey(msg); handled {
				return m, cmd
			}
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *DiagramModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DiagramKeys.Quit):
		return tea.Quit

	case key.Matches(msg, DiagramKeys.NextNode):
		m.moveCursor(1)
	case key.Matches(msg, DiagramKeys.PrevNode):
		m.moveCursor(-1)

	case key.Matches(msg, DiagramKeys.Click):
		if m.cursor != "" {
			m.Dispatch(domain.ClickNode{ID: m.cursor})
		}
	case key.Matches(msg, DiagramKeys.Detail):
		if m.cursor != "" {
			m.Dispatch(domain.OpenNodeDetail{ID: m.cursor})
		}

	case key.Matches(msg, DiagramKeys.NextEdge):
		m.moveEdgeCursor(1)
	case key.Matches(msg, DiagramKeys.PrevEdge):
		m.moveEdgeCursor(-1)

	case key.Matches(msg, DiagramKeys.ShowAll):
		m.Dispatch(domain.ToggleAllVisible{})
	case key.Matches(msg, DiagramKeys.Escape):
		m.cursor = ""
		m.Dispatch(domain.ClearHover{})

	case key.Matches(msg, DiagramKeys.Legend):
		m.legend = !m.legend
		m.resize()
	case key.Matches(msg, DiagramKeys.Pairs):
		m.pairClosure = !m.pairClosure
		if m.pairClosure {
			m.SetMessage("ペア連動: on", false)
		} else {
			m.SetMessage("ペア連動: off", false)
		}
	case key.Matches(msg, DiagramKeys.Open):
		m.openDocument()

	case key.Matches(msg, DiagramKeys.Left):
		m.pan(-panStep, 0)
	case key.Matches(msg, DiagramKeys.Right):
		m.pan(panStep, 0)
	case key.Matches(msg, DiagramKeys.Up):
		m.pan(0, -panStep/2)
	case key.Matches(msg, DiagramKeys.Down):
		m.pan(0, panStep/2)

	case key.Matches(msg, DiagramKeys.Tutorial):
		return func() tea.Msg { return SwitchToTutorialMsg{} }
	case key.Matches(msg, DiagramKeys.Find):
		return func() tea.Msg { return SwitchToFindMsg{} }
	case key.Matches(msg, DiagramKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	case key.Matches(msg, DiagramKeys.Edit):
		return func() tea.Msg { return OpenEditorMsg{} }
	}
	return nil
}

// visibleNodes returns the visible nodes in graph order
func (m *DiagramModel) visibleNodes() []domain.Node {
	visible := m.graph.VisibleNodes(m.state.AllVisible, m.state.Focus)
	var out []domain.Node
	for _, n := range m.graph.Nodes() {
		if visible.Has(n.ID) {
			out = append(out, n)
		}
	}
	return out
}

// moveCursor steps the keyboard cursor through visible nodes. The cursor
// acts as a hover.
func (m *DiagramModel) moveCursor(delta int) {
	nodes := m.visibleNodes()
	if len(nodes) == 0 {
		return
	}
	idx := -1
	for i, n := range nodes {
		if n.ID == m.cursor {
			idx = i
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = len(nodes) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + delta + len(nodes)) % len(nodes)
	}
	m.cursor = nodes[idx].ID
	m.Dispatch(domain.HoverNode{ID: m.cursor})
	m.reveal(m.cursor)
}

func (m *DiagramModel) moveEdgeCursor(delta int) {
	edges := m.graph.SelectEdges(m.graph.VisibleEdges(m.state.AllVisible, m.state.Focus))
	if len(edges) == 0 {
		return
	}
	if m.edgeCursor < 0 || m.edgeCursor >= len(edges) {
		if delta < 0 {
			m.edgeCursor = len(edges) - 1
		} else {
			m.edgeCursor = 0
		}
	} else {
		m.edgeCursor = (m.edgeCursor + delta + len(edges)) % len(edges)
	}
	m.Dispatch(domain.ClickEdge{ID: edges[m.edgeCursor].ID})
}

// target is the node an action without an explicit id applies to
func (m *DiagramModel) target() domain.NodeID {
	if id, ok := m.state.Selection.Node(); ok {
		return id
	}
	return m.cursor
}

func (m *DiagramModel) openDocument() {
	n, ok := m.graph.Node(m.target())
	if !ok || n.Href == "" {
		m.SetMessage("no document to open", true)
		return
	}
	if m.opener == nil {
		m.SetMessage("no document opener configured", true)
		return
	}
	if err := m.opener.Open(n.Href); err != nil {
		m.logger.Warn("open failed", "node", n.ID, "href", n.Href, "error", err)
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage("開きました: "+n.Href, false)

	if m.enterGuide {
		m.enterGuide = false
		m.publish(ports.Signal{Name: ports.SignalMenuTourClear})
	}
}

// ShowStep applies a tutorial step: its highlight and optional callout
func (m *DiagramModel) ShowStep(step domain.TutorialStep) {
	m.Dispatch(domain.HighlightTour{Nodes: step.Nodes, Edges: step.Edges})
	m.callout = nil
	if step.Callout != nil {
		c := *step.Callout
		m.callout = &c
		m.reveal(c.Target)
	}
}

// EndTour removes the tutorial highlight and callout
func (m *DiagramModel) EndTour() {
	m.callout = nil
	m.Dispatch(domain.ClearTour{})
}

// ActivateCallout hands off to the navigation tour. The highlight stays
// until the tour is cleared.
func (m *DiagramModel) ActivateCallout() {
	if m.callout == nil {
		return
	}
	m.tourTarget = m.callout.Target
	m.callout = nil
	m.publish(ports.Signal{Name: ports.SignalMenuTour, Step: 0})
}

// HandleSignal reacts to tour signals from the bus
func (m *DiagramModel) HandleSignal(sig ports.Signal) {
	m.logger.Debug("signal received", "signal", sig.Name, "step", sig.Step)

	switch sig.Name {
	case ports.SignalMenuTour:
		if m.tourTarget == "" {
			return
		}
		m.Dispatch(domain.OpenNodeDetail{ID: m.tourTarget})
		m.publish(ports.Signal{Name: ports.SignalMenuTourEnter, Step: sig.Step})

	case ports.SignalMenuTourEnter:
		m.enterGuide = true
		m.SetMessage("g で出力方法を開く", false)

	case ports.SignalMenuTourClear:
		m.enterGuide = false
		m.tourTarget = ""
		m.callout = nil
		m.Dispatch(domain.ClearTour{})
	}
}

func (m *DiagramModel) publish(sig ports.Signal) {
	if m.bus == nil {
		return
	}
	m.logger.Debug("signal published", "signal", sig.Name, "step", sig.Step)
	m.bus.Publish(sig)
}

// Reveal scrolls a node into view and puts the keyboard cursor on it
func (m *DiagramModel) Reveal(id domain.NodeID) {
	if _, ok := m.graph.Node(id); ok {
		m.cursor = id
		m.reveal(id)
	}
}

func (m *DiagramModel) reveal(id domain.NodeID) {
	n, ok := m.graph.Node(id)
	if !ok {
		return
	}
	box := n.Box()
	cw, ch := m.canvasWidth(), m.canvasHeight()
	if cw == 0 || ch == 0 {
		return
	}
	if x := round(box.X) - 2; x < m.scrollX {
		m.scrollX = x
	} else if r := round(box.Right()) + 2; r > m.scrollX+cw {
		m.scrollX = r - cw
	}
	if y := round(box.Y) - 1; y < m.scrollY {
		m.scrollY = y
	} else if b := round(box.Bottom()) + 1; b > m.scrollY+ch {
		m.scrollY = b - ch
	}
	m.clampScroll()
}

func (m *DiagramModel) pan(dx, dy int) {
	m.scrollX += dx
	m.scrollY += dy
	m.clampScroll()
}

func (m *DiagramModel) clampScroll() {
	b := m.graph.Bounds()
	maxX := max(0, round(b.Right())+2-m.canvasWidth())
	maxY := max(0, round(b.Bottom())+1-m.canvasHeight())
	m.scrollX = min(max(m.scrollX, 0), maxX)
	m.scrollY = min(max(m.scrollY, 0), maxY)
}

func (m *DiagramModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ch := m.canvasHeight()
	if msg.Y < headerRows || msg.Y >= headerRows+ch {
		return nil
	}

	cw := m.canvasWidth()
	if m.state.DrawerOpen() && msg.X >= cw {
		return m.drawer.HandleMouse(msg, msg.X-cw, msg.Y-headerRows)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.pan(0, -1)
		return nil
	case tea.MouseButtonWheelDown:
		m.pan(0, 1)
		return nil
	case tea.MouseButtonWheelLeft:
		m.pan(-2, 0)
		return nil
	case tea.MouseButtonWheelRight:
		m.pan(2, 0)
		return nil
	}

	wx, wy := msg.X+m.scrollX, msg.Y-headerRows+m.scrollY
	l := m.layout()

	switch {
	case msg.Action == tea.MouseActionMotion:
		if m.state.DrawerOpen() {
			return nil
		}
		id := l.nodeAt(wx, wy)
		switch {
		case id == m.state.Hover:
		case id == "":
			m.Dispatch(domain.ClearHover{})
		default:
			m.Dispatch(domain.HoverNode{ID: id})
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.state.DrawerOpen() {
			m.Dispatch(domain.ClickOverlay{})
			return nil
		}
		if l.callout != nil && cellIn(l.callout.box, wx, wy) {
			return func() tea.Msg { return CalloutActivatedMsg{} }
		}
		if id := l.detailAt(wx, wy); id != "" {
			m.Dispatch(domain.OpenNodeDetail{ID: id})
			return nil
		}
		if id := l.nodeAt(wx, wy); id != "" {
			m.cursor = id
			m.Dispatch(domain.ClickNode{ID: id})
			return nil
		}
		if id := l.edgeAt(wx, wy); id != "" {
			m.Dispatch(domain.ClickEdge{ID: id})
		}
	}
	return nil
}

type placedNode struct {
	node   domain.Node
	box    domain.Rect
	detail domain.Rect
}

type placedEdge struct {
	edge  domain.Edge
	path  []domain.Point
	label domain.Rect // label cells, in world coordinates
}

type placedFrame struct {
	pair domain.Pair
	box  domain.Rect
}

type placedCallout struct {
	callout domain.Callout
	box     domain.Rect
	side    domain.Side
}

// diagramLayout is everything drawn in one pass, in world cells
type diagramLayout struct {
	view     domain.View
	frames   []placedFrame
	nodes    []placedNode
	edges    []placedEdge
	callout  *placedCallout
	viewport domain.Rect
}

func (m *DiagramModel) layout() diagramLayout {
	l := diagramLayout{
		view: domain.Derive(m.graph, m.state, m.pairClosure),
		viewport: domain.Rect{
			X: float64(m.scrollX),
			Y: float64(m.scrollY),
			W: float64(m.canvasWidth()),
			H: float64(m.canvasHeight()),
		},
	}

	for _, p := range m.graph.Pairs() {
		if !l.view.Nodes.Has(p.A) || !l.view.Nodes.Has(p.B) {
			continue
		}
		if box, ok := m.graph.PairFrame(p); ok {
			l.frames = append(l.frames, placedFrame{pair: p, box: box})
		}
	}

	for _, e := range m.graph.SelectEdges(l.view.Edges) {
		from, to, ok := m.graph.EndpointBoxes(e)
		if !ok {
			continue
		}
		box := m.router.LabelAnchor(e, from, to).Rect()
		l.edges = append(l.edges, placedEdge{
			edge: e,
			path: m.router.Route(e, from, to),
			label: domain.Rect{
				X: float64(round(box.X)),
				Y: float64(round(box.Y)),
				W: float64(round(box.W)),
				H: 1,
			},
		})
	}

	for _, n := range m.graph.Nodes() {
		if !l.view.Nodes.Has(n.ID) {
			continue
		}
		box := n.Box()
		_, _, x1, y1 := cellBounds(box)
		mw := domain.TextWidth(detailMarker)
		l.nodes = append(l.nodes, placedNode{
			node:   n,
			box:    box,
			detail: domain.Rect{X: float64(x1 - mw - 1), Y: float64(y1), W: float64(mw), H: 1},
		})
	}

	if m.callout != nil {
		if n, ok := m.graph.Node(m.callout.Target); ok && l.view.Nodes.Has(n.ID) {
			w := domain.TextWidth(m.callout.Text) + 4
			if m.callout.ClickBadge {
				w += domain.TextWidth(clickBadgeText) + 3
			}
			size := domain.Size{W: float64(w), H: 3}
			if p, ok := domain.Place(l.viewport, n.Box(), size); ok {
				box := p.Rect(size)
				box.X += l.viewport.X
				box.Y += l.viewport.Y
				l.callout = &placedCallout{callout: *m.callout, box: box, side: p.Side}
			}
		}
	}
	return l
}

func cellIn(r domain.Rect, x, y int) bool {
	return r.ContainsPoint(domain.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
}

func (l diagramLayout) nodeAt(x, y int) domain.NodeID {
	for i := len(l.nodes) - 1; i >= 0; i-- {
		if cellIn(l.nodes[i].box, x, y) {
			return l.nodes[i].node.ID
		}
	}
	return ""
}

func (l diagramLayout) detailAt(x, y int) domain.NodeID {
	for i := len(l.nodes) - 1; i >= 0; i-- {
		if cellIn(l.nodes[i].detail, x, y) {
			return l.nodes[i].node.ID
		}
	}
	return ""
}

func (l diagramLayout) edgeAt(x, y int) domain.EdgeID {
	for _, pe := range l.edges {
		if cellIn(pe.label, x, y) {
			return pe.edge.ID
		}
	}
	for _, pe := range l.edges {
		if onPath(gridPath(pe.path), x, y) {
			return pe.edge.ID
		}
	}
	return ""
}

func onPath(pts []gridPoint, x, y int) bool {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if a.x == b.x && x == a.x && y >= min(a.y, b.y) && y <= max(a.y, b.y) {
			return true
		}
		if a.y == b.y && y == a.y && x >= min(a.x, b.x) && x <= max(a.x, b.x) {
			return true
		}
	}
	return false
}

// View renders the diagram view
func (m *DiagramModel) View() string {
	return m.Render("")
}

// Render draws the diagram with panel shown below the canvas in place of
// the help line
func (m *DiagramModel) Render(panel string) string {
	l := m.layout()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := m.renderCanvas(l)
	if m.state.DrawerOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.drawer.View())
	}
	b.WriteString(body)
	b.WriteString("\n")

	if m.legend {
		b.WriteString(RenderLegend(m.graph))
		b.WriteString("\n")
	}

	if panel != "" {
		b.WriteString(panel)
	} else {
		b.WriteString(m.renderHelpLine())
	}
	return b.String()
}

func (m *DiagramModel) renderHeader() string {
	mode := "基本の流れ"
	switch {
	case m.state.AllVisible:
		mode = "すべて表示"
	case m.state.Focus != "":
		label := string(m.state.Focus)
		if n, ok := m.graph.Node(m.state.Focus); ok {
			label = n.Label
		}
		mode = "フォーカス: " + label
	}

	pairs := "ペア連動 off"
	if m.pairClosure {
		pairs = "ペア連動 on"
	}

	title := fmt.Sprintf("%s  %s  %s",
		RenderTitle("帳票のつながり"),
		styles.Subtitle.Render(mode),
		RenderMuted(pairs),
	)

	var status string
	switch {
	case m.enterGuide:
		status = styles.ClickBadge.Render(clickBadgeText) + " " + RenderMessage(m.Message, m.MessageErr)
	case m.Message != "":
		status = RenderMessage(m.Message, m.MessageErr)
	default:
		status = RenderMuted(m.state.Selection.String())
	}
	return title + "\n" + status
}

func (m *DiagramModel) renderHelpLine() string {
	if m.state.DrawerOpen() {
		return RenderHelpLine(DrawerKeys.Close, DrawerKeys.NextLink, DrawerKeys.Activate, DrawerKeys.Copy, DiagramKeys.Open, DiagramKeys.Quit)
	}
	return RenderHelpLine(
		DiagramKeys.NextNode,
		DiagramKeys.Click,
		DiagramKeys.Detail,
		DiagramKeys.NextEdge,
		DiagramKeys.ShowAll,
		DiagramKeys.Tutorial,
		DiagramKeys.Find,
		DiagramKeys.Help,
		DiagramKeys.Quit,
	)
}

func (m *DiagramModel) renderCanvas(l diagramLayout) string {
	c := NewCanvas(int(l.viewport.W), int(l.viewport.H), m.scrollX, m.scrollY)
	m.paint(c, l)
	return c.String()
}

// paint draws every layer back to front: pair frames, edges, edge labels,
// nodes, callout
func (m *DiagramModel) paint(c *Canvas, l diagramLayout) {
	for _, f := range l.frames {
		c.DashedBox(f.box, styles.PairFrame)
		x0, y0, _, _ := cellBounds(f.box)
		c.Text(x0+2, y0, " "+f.pair.Label+" ", styles.PairFrame)
	}

	selectedEdge, _ := m.state.Selection.Edge()
	for _, pe := range l.edges {
		st, _ := m.graph.Style(pe.edge.Relation)
		c.Polyline(pe.path, st.Dashed, true, m.edgeStyle(pe.edge, st, l.view, selectedEdge))
	}
	for _, pe := range l.edges {
		st, _ := m.graph.Style(pe.edge.Relation)
		style := m.edgeStyle(pe.edge, st, l.view, selectedEdge)
		w := round(pe.label.W)
		c.Fill(pe.label, lipgloss.NewStyle())
		c.TextCentered(round(pe.label.X)+w/2, round(pe.label.Y), pe.edge.Label, w-2, style)
	}

	selectedNode, _ := m.state.Selection.Node()
	for _, pn := range l.nodes {
		style := m.nodeStyle(pn.node, l.view, selectedNode)
		x0, y0, x1, y1 := cellBounds(pn.box)
		inner := x1 - x0 - 1
		cx := x0 + (x1-x0+1)/2

		c.Fill(pn.box, lipgloss.NewStyle())
		c.Box(pn.box, style)
		c.TextCentered(cx, y0+1, pn.node.Label, inner, style)
		if y1-y0 >= 3 {
			c.TextCentered(cx, y0+2, pn.node.Role, inner, styles.MutedText)
		}
		if x1-x0 > domain.TextWidth(detailMarker)+2 {
			c.Text(round(pn.detail.X), round(pn.detail.Y), detailMarker, styles.MutedText)
		}
	}

	if l.callout != nil {
		box := l.callout.box
		x0, y0, x1, _ := cellBounds(box)
		c.Fill(box, styles.Callout)
		c.Box(box, styles.Callout)
		text := l.callout.callout.Text
		if l.callout.callout.ClickBadge {
			c.Text(x0+2, y0+1, text, styles.Callout)
			c.Text(x1-domain.TextWidth(clickBadgeText)-1, y0+1, clickBadgeText, styles.ClickBadge)
		} else {
			c.TextCentered(x0+(x1-x0+1)/2, y0+1, text, x1-x0-1, styles.Callout)
		}
	}
}

func (m *DiagramModel) nodeStyle(n domain.Node, v domain.View, selected domain.NodeID) lipgloss.Style {
	switch {
	case n.ID == selected:
		return styles.NodeSelected
	case v.Dimmed(n.ID):
		return styles.NodeDimmed
	case v.Highlight.Has(n.ID):
		return styles.NodeHighlight
	case n.ID == m.state.Focus:
		return styles.NodeFocused
	case n.IsPrimary():
		return styles.NodePrimary
	default:
		return styles.NodeSecondary
	}
}

func (m *DiagramModel) edgeStyle(e domain.Edge, st domain.Style, v domain.View, selected domain.EdgeID) lipgloss.Style {
	switch {
	case e.ID == selected:
		return styles.NodeSelected
	case v.EdgeDimmed(e, m.state.TourEdges):
		return styles.EdgeDimmed
	}
	style := lipgloss.NewStyle().Foreground(styles.RelationColor(st.Line))
	if v.Highlight != nil {
		style = style.Bold(true)
	}
	return style
}
