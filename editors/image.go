package editors

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

// StyleImage is the node style key used for image labels.
const StyleImage = "image"

var ErrNotDataURI = errors.New("editors: not a base64 data URI")

// Image renders data-URI images as a "[format W×H]" label. Empty values
// render nothing; values that are not decodable images are errors, so the
// controller falls back to plain text.
type Image struct{}

var _ table.ColumnEditor = Image{}

func (Image) Render(v grid.Value, cell table.Cell) error {
	cell.Clear()
	s := grid.Text(v)
	if s == "" {
		return nil
	}
	label, err := DescribeDataURI(s)
	if err != nil {
		return err
	}
	cell.Append(table.Node{Text: label, StyleKey: StyleImage})
	return nil
}

// DescribeDataURI decodes the header of a base64 data-URI image.
func DescribeDataURI(s string) (string, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", ErrNotDataURI
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return "", fmt.Errorf("editors: decode image payload: %w", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("editors: decode image: %w", err)
	}
	return fmt.Sprintf("[%s %d×%d]", format, cfg.Width, cfg.Height), nil
}
