package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/fuzzytable"
	"github.com/iw2rmb/fuzzytable/editors"
	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
	"github.com/iw2rmb/fuzzytable/tui"
)

// footerLines is the status line plus the help line.
const footerLines = 2

type lookupReadyMsg struct{ err error }

type model struct {
	grid    tui.Model
	help    help.Model
	spinner spinner.Model
	lookup  *editors.Lookup
	ready   chan error
	status  string
}

func newModel(cfg fileConfig) (model, error) {
	ready := make(chan error, 1)
	eds, lookup, err := cfg.buildEditors(func(err error) { ready <- err })
	if err != nil {
		return model{}, err
	}

	m := model{
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		lookup:  lookup,
		ready:   ready,
	}
	m.grid, err = tui.New(tui.Config{
		Columns:            cfg.columns(),
		Rows:               cfg.records(),
		ColumnEditorsByKey: eds,
		Style:              tui.DefaultStyle(),
		StyleForKey:        styleForKey,
		Clipboard:          tui.SystemClipboard{},
		OnChange: func(ev table.ChangeEvent) {
			if ev.Kind == table.ChangeValue {
				log.Printf("edit %s[%d]: %q -> %q", ev.Coord.Key, ev.Coord.Row, grid.Text(ev.Before), grid.Text(ev.After))
			}
		},
		OnRenderError: func(c grid.Coord, err error) {
			log.Printf("render %s[%d]: %v", c.Key, c.Row, err)
		},
	})
	if err != nil {
		return model{}, err
	}
	return m, nil
}

func styleForKey(key string) (lipgloss.Style, bool) {
	switch key {
	case editors.StyleImage:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5")), true
	case editors.StyleLookupFailed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")), true
	default:
		return lipgloss.Style{}, false
	}
}

func (m model) Init() tea.Cmd {
	if m.lookup == nil {
		return nil
	}
	m.lookup.Start(context.Background())
	return tea.Batch(m.spinner.Tick, waitLookup(m.ready))
}

func waitLookup(ready <-chan error) tea.Cmd {
	return func() tea.Msg { return lookupReadyMsg{err: <-ready} }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.grid = m.grid.SetSize(msg.Width, msg.Height-footerLines)
		return m, nil
	case tea.KeyMsg:
		if !m.grid.Canvas().InputFocused() {
			switch msg.String() {
			case "q", "ctrl+q":
				m.grid.Close()
				return m, tea.Quit
			case "?":
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	case spinner.TickMsg:
		if m.lookup == nil || m.lookup.State() != editors.LookupLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case lookupReadyMsg:
		if msg.err != nil {
			log.Printf("lookup: %v", msg.err)
			m.status = "lookup failed: " + msg.err.Error()
		}
		m.grid, _ = m.grid.Update(tui.RefreshMsg{})
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.grid.View() + "\n" + m.statusLine() + "\n" + m.help.View(m.grid.KeyMap())
}

func (m model) statusLine() string {
	if err := m.grid.Err(); err != nil {
		return "error: " + err.Error()
	}
	if m.lookup != nil && m.lookup.State() == editors.LookupLoading {
		return m.spinner.View() + " loading lookup table"
	}
	if m.status != "" {
		return m.status
	}
	n := len(m.grid.Controller().Selection())
	if n == 0 {
		return fmt.Sprintf("%d rows", m.grid.Controller().RowCount())
	}
	return fmt.Sprintf("%d selected", n)
}

func run(args []string) error {
	if len(args) > 0 && (args[0] == "-version" || args[0] == "--version") {
		fmt.Println("fuzzytable " + fuzzytable.VersionTag())
		return nil
	}

	if path := os.Getenv("FUZZYTABLE_LOG"); path != "" {
		f, err := tea.LogToFile(path, "fuzzytable")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var (
		cfg fileConfig
		err error
	)
	if len(args) > 0 {
		cfg, err = loadConfig(args[0])
	} else {
		cfg, err = parseConfig(sampleTOML)
	}
	if err != nil {
		return err
	}

	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
