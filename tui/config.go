package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

const (
	defaultMinColumnWidth      = 4
	defaultMaxColumnWidth      = 30
	defaultDoubleClickInterval = 400 * time.Millisecond
)

// Config configures the grid Model.
type Config struct {
	// Forwarded to table.Config.
	Columns            []string
	Rows               []grid.Record
	ColumnEditors      map[int]table.ColumnEditor
	ColumnEditorsByKey map[string]table.ColumnEditor
	OnChange           func(table.ChangeEvent)
	OnRenderError      func(c grid.Coord, err error)

	// Rendering options. A zero Style renders unstyled text.
	Style       Style
	StyleForKey func(key string) (lipgloss.Style, bool)

	// Column widths in cells, padding excluded. Defaults: 4 and 30.
	MinColumnWidth int
	MaxColumnWidth int

	// Two presses on one cell within this interval activate it. Default 400ms.
	DoubleClickInterval time.Duration

	// Zero KeyMap means DefaultKeyMap().
	KeyMap    KeyMap
	Clipboard Clipboard
}

func normalizeConfig(cfg Config) Config {
	if cfg.MinColumnWidth <= 0 {
		cfg.MinColumnWidth = defaultMinColumnWidth
	}
	if cfg.MaxColumnWidth <= 0 {
		cfg.MaxColumnWidth = defaultMaxColumnWidth
	}
	if cfg.MaxColumnWidth < cfg.MinColumnWidth {
		cfg.MaxColumnWidth = cfg.MinColumnWidth
	}
	if cfg.DoubleClickInterval <= 0 {
		cfg.DoubleClickInterval = defaultDoubleClickInterval
	}
	if !cfg.KeyMap.bound() {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
