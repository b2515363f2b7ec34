package editors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

// Kind is a value format.
type Kind string

const (
	KindText       Kind = "text"
	KindUSD        Kind = "usd"
	KindInt        Kind = "int"
	KindNum        Kind = "num"
	KindBool       Kind = "bool"
	KindPercentage Kind = "percentage"
)

// ParseKind resolves a format name. "float" is accepted as an alias of num.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindText, KindUSD, KindInt, KindNum, KindBool, KindPercentage:
		return k, nil
	case "float":
		return KindNum, nil
	case "":
		return KindText, nil
	default:
		return "", fmt.Errorf("editors: unknown format %q", s)
	}
}

// Format renders values in a typed format and parses committed text back
// into that type. Text that does not parse is kept as a string.
type Format struct {
	Kind Kind
}

var (
	_ table.ColumnEditor = Format{}
	_ table.Editable     = Format{}
	_ table.Parser       = Format{}
)

func (f Format) Render(v grid.Value, cell table.Cell) error {
	cell.Clear()
	cell.SetText(FormatValue(v, f.Kind))
	return nil
}

// Edit pre-populates the input with EditText. Committing that text unchanged
// writes the original value back.
func (f Format) Edit(req table.EditRequest) {
	req.ClearCell()
	text := EditText(req.Value, f.Kind)
	req.Surface.OpenInput(req.Coord, text, func(s string) {
		if strings.TrimSpace(s) == strings.TrimSpace(text) {
			req.Commit(req.Value)
			return
		}
		req.Commit(ParseValue(s, f.Kind))
	})
}

func (f Format) Parse(text string) grid.Value { return ParseValue(text, f.Kind) }

// EditText is the text an edit starts from. Numbers keep every digit, so
// ParseValue gives back the same number.
func EditText(v grid.Value, kind Kind) string {
	if grid.IsEmpty(v) {
		return ""
	}
	switch kind {
	case KindUSD:
		if s, ok := plainNumber(v); ok {
			return "$" + s
		}
	case KindInt, KindNum:
		if s, ok := plainNumber(v); ok {
			return s
		}
	case KindPercentage:
		if n, ok := toFloat(v); ok {
			return percentText(n) + "%"
		}
	}
	return FormatValue(v, kind)
}

// FormatValue renders v for display. Values of an unexpected type fall back
// to grid.Text.
func FormatValue(v grid.Value, kind Kind) string {
	if grid.IsEmpty(v) {
		return ""
	}
	switch kind {
	case KindUSD:
		if s, ok := intText(v); ok {
			return "$" + groupThousands(s) + ".00"
		}
		if n, ok := toFloat(v); ok {
			return "$" + groupThousands(strconv.FormatFloat(n, 'f', 2, 64))
		}
	case KindInt:
		if s, ok := intText(v); ok {
			return s
		}
		if n, ok := toFloat(v); ok {
			return strconv.FormatInt(int64(n), 10)
		}
	case KindNum:
		if s, ok := intText(v); ok {
			return s
		}
		if n, ok := toFloat(v); ok {
			if n == math.Trunc(n) && math.Abs(n) < 1e15 {
				return strconv.FormatInt(int64(n), 10)
			}
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			if b {
				return "[x]"
			}
			return "[ ]"
		}
	case KindPercentage:
		if n, ok := toFloat(v); ok {
			return strconv.FormatFloat(n*100, 'f', 0, 64) + "%"
		}
	}
	return grid.Text(v)
}

// ParseValue converts committed text. Blank text is grid.Empty.
func ParseValue(s string, kind Kind) grid.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return grid.Empty
	}
	switch kind {
	case KindInt:
		cleaned := strings.ReplaceAll(s, ",", "")
		if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
			return n
		}
		if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return n
		}
	case KindNum, KindUSD:
		cleaned := strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
		if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return n
		}
	case KindPercentage:
		if strings.HasSuffix(s, "%") {
			if n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64); err == nil {
				return n / 100
			}
			break
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
	case KindBool:
		switch strings.ToLower(s) {
		case "true", "1", "yes", "x", "[x]":
			return true
		case "false", "0", "no", "[ ]", "[]":
			return false
		}
	}
	return s
}

// intText formats integer types exactly.
func intText(v grid.Value) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	default:
		return "", false
	}
}

func plainNumber(v grid.Value) (string, bool) {
	if s, ok := intText(v); ok {
		return s, true
	}
	switch n := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	default:
		return "", false
	}
}

// percentText is n*100 with the fewest decimals that parse back to n.
func percentText(n float64) string {
	for prec := 0; prec <= 15; prec++ {
		s := strconv.FormatFloat(n*100, 'f', prec, 64)
		if back, err := strconv.ParseFloat(s, 64); err == nil && back/100 == n {
			return s
		}
	}
	return strconv.FormatFloat(n*100, 'f', -1, 64)
}

func toFloat(v grid.Value) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// groupThousands inserts commas into the integer part of a decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}
	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	return sign + sb.String() + frac
}
