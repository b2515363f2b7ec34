package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

// headerLines is the header row plus its rule.
const headerLines = 2

// RefreshMsg asks the Model to re-render every cell, typically after a column
// editor finished loading asynchronous state.
type RefreshMsg struct{}

// Model is a Bubble Tea component that renders a grid and routes terminal
// input to a table.Controller.
type Model struct {
	cfg    Config
	canvas *Canvas
	ctrl   *table.Controller

	focused bool

	viewport viewport.Model

	lastPress    grid.Coord
	lastPressAt  time.Time
	hasLastPress bool
	hover        grid.Coord
	hasHover     bool

	// head is the moving end of a keyboard range.
	head    grid.Coord
	hasHead bool

	now func() time.Time
	err error
}

// New builds the controller on a fresh Canvas. Schema errors from the rows
// are returned unchanged.
func New(cfg Config) (Model, error) {
	cfg = normalizeConfig(cfg)
	canvas := NewCanvas()
	ctrl, err := table.New(table.Config{
		Columns:            cfg.Columns,
		Rows:               cfg.Rows,
		ColumnEditors:      cfg.ColumnEditors,
		ColumnEditorsByKey: cfg.ColumnEditorsByKey,
		Surface:            canvas,
		OnChange:           cfg.OnChange,
		OnRenderError:      cfg.OnRenderError,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		canvas:   canvas,
		ctrl:     ctrl,
		focused:  true,
		viewport: viewport.New(0, 0),
		now:      time.Now,
	}
	m.rebuildContent()
	return m, nil
}

// Controller exposes the underlying controller for programmatic access.
func (m Model) Controller() *table.Controller { return m.ctrl }

func (m Model) Canvas() *Canvas { return m.canvas }

// KeyMap returns the resolved key bindings.
func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// Err returns the last error reported by an input handler.
func (m Model) Err() error { return m.err }

// Close commits any open input and releases the controller's subscription.
func (m Model) Close() {
	m.canvas.CommitInput()
	m.ctrl.Close()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < headerLines {
		height = headerLines
	}
	m.viewport.Width = width
	m.viewport.Height = height - headerLines

	m.rebuildContent()
	m.followHead()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur drops focus. An open input loses focus too and commits.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		if m.canvas.CommitInput() {
			m.rebuildContent()
		}
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	case RefreshMsg:
		m.ctrl.Refresh()
		m.rebuildContent()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderBody(m.columnWidths()))
}

// report records the outcome of the latest interaction.
func (m *Model) report(err error) {
	m.err = err
}

func (m *Model) followHead() {
	h := m.viewport.Height
	if h <= 0 || !m.hasHead {
		return
	}
	y := m.viewport.YOffset
	switch {
	case m.head.Row < y:
		m.viewport.SetYOffset(m.head.Row)
	case m.head.Row >= y+h:
		m.viewport.SetYOffset(m.head.Row - h + 1)
	}
}
