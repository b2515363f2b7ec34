// Package grapheme measures and fits cell text in terminal cells.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks truncated cell text.
const Ellipsis = "…"

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ClusterWidth returns the terminal-cell width of one grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Width returns the terminal-cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += ClusterWidth(c)
	}
	return w
}

// Sanitize flattens text onto one line: control characters become spaces.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
}

// Truncate cuts text to at most width cells without splitting a cluster,
// ending with Ellipsis when anything was dropped.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}

	limit := width - ClusterWidth(Ellipsis)
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := ClusterWidth(c)
		if used+w > limit {
			break
		}
		sb.WriteString(c)
		used += w
	}
	if limit >= 0 {
		sb.WriteString(Ellipsis)
	}
	return sb.String()
}

// Pad right-pads text with spaces to width cells.
func Pad(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}
