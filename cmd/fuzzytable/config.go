package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/fuzzytable/editors"
	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type lookupConfig struct {
	Delay   duration          `toml:"delay"`
	Timeout duration          `toml:"timeout"`
	Retries int               `toml:"retries"`
	Table   map[string]string `toml:"table"`
}

type fileConfig struct {
	Columns []string          `toml:"columns"`
	Rows    []map[string]any  `toml:"rows"`
	Editors map[string]string `toml:"editors"`
	Lookup  lookupConfig      `toml:"lookup"`

	// hasColumns is set when the file names columns, even as an empty list.
	hasColumns bool
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("load %s: unknown key %q", path, undecoded[0].String())
	}
	cfg.hasColumns = md.IsDefined("columns")
	return cfg, nil
}

func parseConfig(data string) (fileConfig, error) {
	var cfg fileConfig
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return fileConfig{}, err
	}
	cfg.hasColumns = md.IsDefined("columns")
	return cfg, nil
}

func (c fileConfig) records() []grid.Record {
	out := make([]grid.Record, len(c.Rows))
	for i, r := range c.Rows {
		out[i] = grid.Record(r)
	}
	return out
}

// columns keeps an absent list nil so the grid derives it from the rows. An
// explicit empty list stays empty and is rejected when rows exist.
func (c fileConfig) columns() []string {
	switch {
	case len(c.Columns) > 0:
		return c.Columns
	case c.hasColumns:
		return []string{}
	default:
		return nil
	}
}

// buildEditors resolves editor names. The lookup editor is created only when
// some column uses it.
func (c fileConfig) buildEditors(onReady func(error)) (map[string]table.ColumnEditor, *editors.Lookup, error) {
	out := make(map[string]table.ColumnEditor, len(c.Editors))
	var lookup *editors.Lookup
	for key, name := range c.Editors {
		switch name {
		case "image":
			out[key] = editors.Image{}
		case "lookup":
			if lookup == nil {
				lookup = editors.NewLookup(
					editors.StaticFetcher(c.Lookup.Table, c.Lookup.Delay.Duration),
					editors.LookupOptions{
						Timeout: c.Lookup.Timeout.Duration,
						Retries: c.Lookup.Retries,
						Loading: "…",
						OnReady: onReady,
					},
				)
			}
			out[key] = lookup
		default:
			kind, err := editors.ParseKind(name)
			if err != nil {
				return nil, nil, fmt.Errorf("column %q: %w", key, err)
			}
			if kind == editors.KindText {
				out[key] = table.TextEditor{}
				continue
			}
			out[key] = editors.Format{Kind: kind}
		}
	}
	return out, lookup, nil
}
