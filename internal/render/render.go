// Package render writes catalog items as a bordered text table, YAML or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/libcat/pkg/catalog"
	"github.com/aretw0/libcat/pkg/core"
)

// Output formats understood by ForFormat.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTable, FormatYAML, FormatJSON}

// ForFormat returns the renderer for the named format.
// dateLayout controls how dates are printed by the table renderer.
func ForFormat[C comparable](name, dateLayout string) (catalog.Renderer[C], error) {
	switch name {
	case FormatTable, "":
		return Table[C]{DateLayout: dateLayout}, nil
	case FormatYAML:
		return YAML[C]{}, nil
	case FormatJSON:
		return JSON[C]{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
}

const (
	border    = "+-------------------+-----------------------+-----------------------+-------------------+--------------------------------------+-------------------+\n"
	rowFormat = "| %-17v | %-21s | %-21s | %-17s | %-36s | %-17s |\n"
)

// Table renders the fixed-width bordered layout:
// category, title, author, release date, item ID, date added.
type Table[C comparable] struct {
	// DateLayout is a time layout; empty means core.ISODate.
	DateLayout string
}

// Render implements catalog.Renderer.
func (t Table[C]) Render(w io.Writer, items []core.Item[C]) error {
	layout := t.DateLayout
	if layout == "" {
		layout = core.ISODate
	}

	ew := &errWriter{w: w}
	ew.print(border)
	ew.printf(rowFormat, "Category", "Title", "Author", "Release Date", "Item ID", "Date Added")
	ew.print(border)
	for _, item := range items {
		ew.printf(rowFormat,
			item.Category(), item.Title(), item.Author(),
			item.ReleaseDate().Format(layout), item.ID(), item.DateAdded().Format(layout))
		ew.print(border)
	}
	return ew.err
}

// YAML renders items as a YAML sequence of records.
type YAML[C comparable] struct{}

// Render implements catalog.Renderer.
func (YAML[C]) Render(w io.Writer, items []core.Item[C]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(items)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// JSON renders items as an indented JSON array of records.
type JSON[C comparable] struct{}

// Render implements catalog.Renderer.
func (JSON[C]) Render(w io.Writer, items []core.Item[C]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records(items)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func records[C comparable](items []core.Item[C]) []core.Record[C] {
	out := make([]core.Record[C], 0, len(items))
	for _, item := range items {
		out = append(out, item.Record())
	}
	return out
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
