package tui

import (
	"errors"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

type fakeClipboard struct {
	text    string
	readErr error
	writes  int
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, c.readErr }

func (c *fakeClipboard) WriteText(s string) error {
	c.writes++
	c.text = s
	return nil
}

func keyType(m Model, k tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: k})
	return m
}

func keyRunes(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestNew_SchemaErrorIsReturned(t *testing.T) {
	_, err := New(Config{Columns: []string{}, Rows: []grid.Record{{"a": 1}}})
	var se *grid.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err: got %v, want *grid.SchemaError", err)
	}
}

func TestNew_DefaultsApplied(t *testing.T) {
	m := newTestModel(t, peopleConfig())
	if m.cfg.MinColumnWidth != defaultMinColumnWidth || m.cfg.MaxColumnWidth != defaultMaxColumnWidth {
		t.Fatalf("widths: got %d..%d", m.cfg.MinColumnWidth, m.cfg.MaxColumnWidth)
	}
	if m.cfg.DoubleClickInterval != defaultDoubleClickInterval {
		t.Fatalf("interval: got %v, want %v", m.cfg.DoubleClickInterval, defaultDoubleClickInterval)
	}
	if !m.cfg.KeyMap.bound() {
		t.Fatalf("expected default key map")
	}
}

func TestKeys_DeleteClearsSelectedCells(t *testing.T) {
	var changes int
	cfg := peopleConfig()
	cfg.OnChange = func(ev table.ChangeEvent) {
		if ev.Kind == table.ChangeValue {
			changes++
		}
	}
	m := newTestModel(t, cfg)

	m = press(m, 1, 2)
	m = motion(m, 8, 3)
	m = release(m, 8, 3)
	m = keyType(m, tea.KeyBackspace)

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			v, _ := m.Controller().GetCellValue(grid.At(col, row))
			if v != grid.Empty {
				t.Fatalf("(%d,%d): got %v, want empty", col, row, v)
			}
		}
	}
	if v, _ := m.Controller().GetCellValue(grid.At(0, 2)); v != "Cy" {
		t.Fatalf("(0,2): got %v, want %q", v, "Cy")
	}
	if changes != 4 {
		t.Fatalf("changes: got %d, want %d", changes, 4)
	}
	if m.Err() != nil {
		t.Fatalf("err: %v", m.Err())
	}
}

func TestKeys_DeleteWhileEditingTypesIntoInput(t *testing.T) {
	m := newTestModel(t, peopleConfig())
	m = press(m, 1, 2)
	m = keyType(m, tea.KeyEnter)
	if !m.canvas.InputFocused() {
		t.Fatalf("expected enter to open the input")
	}

	m = keyType(m, tea.KeyBackspace)
	m = keyType(m, tea.KeyEnter)

	v, _ := m.Controller().GetCellValue(grid.At(0, 0))
	if v != "An" {
		t.Fatalf("value: got %v, want %q", v, "An")
	}
	if v, _ := m.Controller().GetCellValue(grid.At(1, 0)); v != 31 {
		t.Fatalf("neighbor: got %v, want %d", v, 31)
	}
}

func TestKeys_ArrowsMoveSingleSelection(t *testing.T) {
	m := newTestModel(t, peopleConfig())

	m = keyType(m, tea.KeyDown)
	if got := selectedCoords(m); len(got) != 1 || got[0] != [2]int{0, 0} {
		t.Fatalf("first move: got %v, want [[0 0]]", got)
	}
	m = keyType(m, tea.KeyDown)
	m = keyType(m, tea.KeyRight)
	m = keyType(m, tea.KeyRight)
	if got := selectedCoords(m); len(got) != 1 || got[0] != [2]int{1, 1} {
		t.Fatalf("after moves: got %v, want [[1 1]]", got)
	}
	if m.Controller().Dragging() {
		t.Fatalf("expected keyboard moves to leave no drag")
	}
}

func TestKeys_ShiftArrowsExtend(t *testing.T) {
	m := newTestModel(t, peopleConfig())
	m = press(m, 1, 2)
	m = release(m, 1, 2)

	m = keyType(m, tea.KeyShiftDown)
	m = keyType(m, tea.KeyShiftDown)
	m = keyType(m, tea.KeyShiftRight)
	if got := len(m.Controller().Selection()); got != 6 {
		t.Fatalf("selection size: got %d, want %d", got, 6)
	}

	m = keyType(m, tea.KeyShiftUp)
	if got := len(m.Controller().Selection()); got != 4 {
		t.Fatalf("selection size after shrink: got %d, want %d", got, 4)
	}
}

func TestKeys_EscClearsSelection(t *testing.T) {
	m := newTestModel(t, peopleConfig())
	m = press(m, 1, 2)
	m = keyType(m, tea.KeyEsc)
	if got := len(m.Controller().Selection()); got != 0 {
		t.Fatalf("selection size: got %d, want %d", got, 0)
	}
	if m.canvas.body[[2]int{0, 0}].selected {
		t.Fatalf("expected marker removed")
	}
}

func TestKeys_CopyWritesTSV(t *testing.T) {
	cb := &fakeClipboard{}
	cfg := peopleConfig()
	cfg.Clipboard = cb
	m := newTestModel(t, cfg)

	m = press(m, 1, 2)
	m = motion(m, 8, 3)
	m = release(m, 8, 3)
	m = keyType(m, tea.KeyCtrlC)

	if want := "Ann\t31\nBob\t4"; cb.text != want {
		t.Fatalf("clipboard: got %q, want %q", cb.text, want)
	}
}

func TestKeys_CopyWithoutSelectionSkipsClipboard(t *testing.T) {
	cb := &fakeClipboard{text: "keep"}
	cfg := peopleConfig()
	cfg.Clipboard = cb
	m := newTestModel(t, cfg)

	_ = keyType(m, tea.KeyCtrlC)
	if cb.writes != 0 || cb.text != "keep" {
		t.Fatalf("clipboard: got %q after %d writes", cb.text, cb.writes)
	}
}

func TestKeys_PasteFillsFromActive(t *testing.T) {
	cb := &fakeClipboard{text: "X\tY\tZ\nP\n"}
	cfg := peopleConfig()
	cfg.Clipboard = cb
	m := newTestModel(t, cfg)

	m = press(m, 1, 3) // (0,1)
	m = keyType(m, tea.KeyCtrlV)

	checks := []struct {
		col, row int
		want     grid.Value
	}{
		{0, 1, "X"},
		{1, 1, "Y"},
		{0, 2, "P"},
		{1, 2, 57},
		{0, 0, "Ann"},
	}
	for _, c := range checks {
		v, _ := m.Controller().GetCellValue(grid.At(c.col, c.row))
		if v != c.want {
			t.Fatalf("(%d,%d): got %v, want %v", c.col, c.row, v, c.want)
		}
	}
}

// ageEditor stores typed ages as ints.
type ageEditor struct{ table.TextEditor }

func (ageEditor) Parse(text string) grid.Value {
	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	return text
}

func TestKeys_PasteParsesThroughColumnEditor(t *testing.T) {
	cb := &fakeClipboard{text: "Dee\t40\nEd\tunknown"}
	cfg := peopleConfig()
	cfg.ColumnEditorsByKey = map[string]table.ColumnEditor{"age": ageEditor{}}
	cfg.Clipboard = cb
	m := newTestModel(t, cfg)

	m = press(m, 1, 2) // (0,0)
	m = keyType(m, tea.KeyCtrlV)

	checks := []struct {
		col, row int
		want     grid.Value
	}{
		{0, 0, "Dee"},
		{1, 0, 40},
		{0, 1, "Ed"},
		{1, 1, "unknown"},
	}
	for _, c := range checks {
		v, _ := m.Controller().GetCellValue(grid.At(c.col, c.row))
		if v != c.want {
			t.Fatalf("(%d,%d): got %#v, want %#v", c.col, c.row, v, c.want)
		}
	}
}

func TestKeys_PasteReadErrorIsIgnored(t *testing.T) {
	cb := &fakeClipboard{text: "X", readErr: errors.New("no clipboard")}
	cfg := peopleConfig()
	cfg.Clipboard = cb
	m := newTestModel(t, cfg)

	m = press(m, 1, 2)
	m = keyType(m, tea.KeyCtrlV)
	if v, _ := m.Controller().GetCellValue(grid.At(0, 0)); v != "Ann" {
		t.Fatalf("value: got %v, want %q", v, "Ann")
	}
	if m.Err() != nil {
		t.Fatalf("err: %v", m.Err())
	}
}

func TestBlur_CommitsOpenInput(t *testing.T) {
	m := newTestModel(t, peopleConfig())
	m = press(m, 1, 2)
	m = keyType(m, tea.KeyEnter)
	m = keyRunes(m, "!")
	m = m.Blur()

	if m.canvas.InputFocused() {
		t.Fatalf("expected blur to close the input")
	}
	if v, _ := m.Controller().GetCellValue(grid.At(0, 0)); v != "Ann!" {
		t.Fatalf("value: got %v, want %q", v, "Ann!")
	}
}

func TestKeys_IgnoredWhenBlurred(t *testing.T) {
	m := newTestModel(t, peopleConfig()).Blur()
	m = keyType(m, tea.KeyDown)
	if got := len(m.Controller().Selection()); got != 0 {
		t.Fatalf("selection size: got %d, want %d", got, 0)
	}
	m = m.Focus()
	m = keyType(m, tea.KeyDown)
	if got := len(m.Controller().Selection()); got != 1 {
		t.Fatalf("selection size: got %d, want %d", got, 1)
	}
}

type flagEditor struct{ ready *bool }

func (e flagEditor) Render(v grid.Value, cell table.Cell) error {
	if !*e.ready {
		return nil
	}
	cell.SetText("[" + grid.Text(v) + "]")
	return nil
}

func TestRefreshMsg_RerendersCells(t *testing.T) {
	ready := false
	cfg := peopleConfig()
	cfg.ColumnEditorsByKey = map[string]table.ColumnEditor{"name": flagEditor{ready: &ready}}
	m := newTestModel(t, cfg)

	if got := m.canvas.body[[2]int{0, 0}].plain(); got != "" {
		t.Fatalf("before ready: got %q, want empty", got)
	}
	ready = true
	m, _ = m.Update(RefreshMsg{})
	if got := m.canvas.body[[2]int{0, 0}].plain(); got != "[Ann]" {
		t.Fatalf("after refresh: got %q, want %q", got, "[Ann]")
	}
}

func TestClose_ReleasesSubscription(t *testing.T) {
	m := newTestModel(t, peopleConfig())
	m.Close()
	m = press(m, 1, 2)
	if got := len(m.Controller().Selection()); got != 0 {
		t.Fatalf("selection size: got %d, want %d", got, 0)
	}
}
