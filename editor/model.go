package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/musaaj/Simaditor/document"
)

// Model is a Bubble Tea component that renders and edits an Engine's
// document.
type Model struct {
	cfg Config
	eng *Engine

	focused bool

	viewport  viewport.Model
	cursorRow int
	hits      []rowHit

	lastVersion uint64
	lastSel     document.Range
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		eng:      NewEngine(cfg),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.eng.Version()
	m.lastSel, _ = m.eng.Selection()
	m.rebuildContent()
	return m
}

// Engine returns the engine behind the model. Hosts may call its operations
// directly; the next Update picks the changes up.
func (m Model) Engine() *Engine { return m.eng }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.eng.Focus()
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m, cmd := m.updateMouse(msg)
		// Don't follow the cursor here; allow manual scrolling via mouse wheel.
		m.syncFromEngine()
		return m, cmd
	case tea.KeyMsg:
		m, cmd := m.updateKey(msg)
		if m.syncFromEngine() {
			m.followCursor()
		}
		return m, cmd
	default:
		// The host may have driven the engine directly.
		if m.syncFromEngine() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) syncFromEngine() (changed bool) {
	ver := m.eng.Version()
	sel, _ := m.eng.Selection()
	if ver == m.lastVersion && sel == m.lastSel {
		return false
	}
	m.lastVersion = ver
	m.lastSel = sel
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	switch {
	case m.cursorRow < y:
		m.viewport.SetYOffset(m.cursorRow)
	case m.cursorRow >= y+h:
		m.viewport.SetYOffset(m.cursorRow - h + 1)
	}
}
