package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the grid key bindings.
type KeyMap struct {
	Up, Down, Left, Right                     key.Binding
	ShiftUp, ShiftDown, ShiftLeft, ShiftRight key.Binding

	Edit   key.Binding
	Delete key.Binding
	Clear  key.Binding

	Copy, Paste key.Binding

	// Commit closes an open input and writes its value.
	Commit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),

		ShiftUp:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("shift+↑", "extend up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("shift+↓", "extend down")),
		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "extend left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→", "extend right")),

		Edit:   key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit cell")),
		Delete: key.NewBinding(key.WithKeys("backspace", "delete", "x"), key.WithHelp("del", "clear cells")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c", "y"), key.WithHelp("ctrl+c", "copy")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v", "p"), key.WithHelp("ctrl+v", "paste")),

		Commit: key.NewBinding(key.WithKeys("enter", "tab", "esc"), key.WithHelp("enter", "commit edit")),
	}
}

func (km KeyMap) bound() bool {
	return len(km.Commit.Keys()) > 0
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Edit, km.Delete, km.ShiftDown, km.Copy}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.ShiftUp, km.ShiftDown, km.ShiftLeft, km.ShiftRight},
		{km.Edit, km.Delete, km.Clear},
		{km.Copy, km.Paste},
	}
}
