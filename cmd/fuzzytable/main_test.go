package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fuzzytable/editors"
	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

func TestSampleConfig_Builds(t *testing.T) {
	cfg, err := parseConfig(sampleTOML)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	if got := len(cfg.Rows); got != 4 {
		t.Fatalf("rows: got %d, want %d", got, 4)
	}
	if cfg.Lookup.Delay.Duration != time.Second {
		t.Fatalf("delay: got %v, want %v", cfg.Lookup.Delay.Duration, time.Second)
	}

	m, err := newModel(cfg)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	if m.lookup == nil {
		t.Fatalf("expected a lookup editor")
	}
	ctrl := m.grid.Controller()
	if got := ctrl.Columns(); len(got) != 6 || got[5] != "image" {
		t.Fatalf("columns: got %v", got)
	}
	ed, err := ctrl.Editor(3)
	if err != nil {
		t.Fatalf("Editor(3): %v", err)
	}
	if f, ok := ed.(editors.Format); !ok || f.Kind != editors.KindUSD {
		t.Fatalf("salary editor: got %#v, want usd Format", ed)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	data := `
[[rows]]
b = 1
a = "x"

[[rows]]
c = true

[editors]
b = "int"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.columns() != nil {
		t.Fatalf("expected absent columns to stay nil")
	}
	m, err := newModel(cfg)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	if got := strings.Join(m.grid.Controller().Columns(), ","); got != "a,b,c" {
		t.Fatalf("columns: got %q, want %q", got, "a,b,c")
	}
	if m.lookup != nil {
		t.Fatalf("expected no lookup editor")
	}
}

func TestLoadConfig_EmptyColumnsIsSchemaError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	data := `
columns = []

[[rows]]
a = "x"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := cfg.columns(); got == nil || len(got) != 0 {
		t.Fatalf("columns: got %#v, want empty non-nil", got)
	}
	_, err = newModel(cfg)
	var se *grid.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("newModel err: got %v, want *grid.SchemaError", err)
	}

	parsed, err := parseConfig(data)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if _, err := newModel(parsed); !errors.As(err, &se) {
		t.Fatalf("parsed newModel err: got %v, want *grid.SchemaError", err)
	}
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	if err := os.WriteFile(path, []byte("colums = [\"a\"]\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), "colums") {
		t.Fatalf("err: got %v, want unknown key colums", err)
	}
}

func TestBuildEditors_UnknownName(t *testing.T) {
	cfg := fileConfig{Editors: map[string]string{"a": "sparkline"}}
	if _, _, err := cfg.buildEditors(nil); err == nil {
		t.Fatalf("expected an error for an unknown editor")
	}
}

func TestBuildEditors_TextAndLookupShared(t *testing.T) {
	cfg := fileConfig{Editors: map[string]string{"a": "text", "b": "lookup", "c": "lookup"}}
	eds, lookup, err := cfg.buildEditors(nil)
	if err != nil {
		t.Fatalf("buildEditors: %v", err)
	}
	if _, ok := eds["a"].(table.TextEditor); !ok {
		t.Fatalf("a: got %T, want table.TextEditor", eds["a"])
	}
	if eds["b"] != table.ColumnEditor(lookup) || eds["c"] != table.ColumnEditor(lookup) {
		t.Fatalf("expected lookup columns to share one editor")
	}
}

func TestModel_LookupReadyRefreshesGrid(t *testing.T) {
	cfg := fileConfig{
		Columns: []string{"country"},
		Rows:    []map[string]any{{"country": "UK"}},
		Editors: map[string]string{"country": "lookup"},
		Lookup:  lookupConfig{Table: map[string]string{"UK": "United Kingdom"}},
	}
	m, err := newModel(cfg)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	_ = m.Init()

	select {
	case <-m.lookup.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("lookup did not finish")
	}

	next, _ := m.Update(lookupReadyMsg{})
	m = next.(model)
	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 8})
	m = next.(model)

	if !strings.Contains(m.View(), "United Kingdom") {
		t.Fatalf("expected looked-up label in view:\n%s", m.View())
	}
	if v, _ := m.grid.Controller().GetCellValue(grid.At(0, 0)); v != "UK" {
		t.Fatalf("value: got %v, want %q", v, "UK")
	}
}

func TestModel_QuitIgnoredWhileEditing(t *testing.T) {
	cfg, err := parseConfig(sampleTOML)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	m, err := newModel(cfg)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	m = next.(model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if !m.grid.Canvas().InputFocused() {
		t.Fatalf("expected an open input")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(model)
	if !m.grid.Canvas().InputFocused() {
		t.Fatalf("expected q to type into the open input")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if v, _ := m.grid.Controller().GetCellValue(grid.At(0, 0)); v != "Olesq" {
		t.Fatalf("value: got %v, want %q", v, "Olesq")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
