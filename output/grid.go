// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"strings"

	"github.com/thediveo/klo"
)

// GridPadding is the number of spaces between grid columns.
const GridPadding = 3

// Column of a Grid: the header label and the JSONPath expression selecting
// the column value from a row, such as “{.Name}”.
type Column struct {
	Header string
	Field  string
}

// Grid renders rows of (struct) values in aligned columns. The header line
// and the row lines can optionally be wrapped in markup tags.
type Grid struct {
	out     *Output
	columns []Column
	rows    []interface{}

	// HideHeaders suppresses the column header line.
	HideHeaders bool
	// HeaderTag optionally names the markup tag for the header line.
	HeaderTag string
	// RowTag optionally names the markup tag for each row line.
	RowTag string
}

// NewGrid returns a new Grid with the specified columns, writing to out.
func NewGrid(out *Output, columns ...Column) *Grid {
	return &Grid{
		out:       out,
		columns:   columns,
		HeaderTag: "info",
	}
}

// AddRow adds a row value; its fields are selected by the column JSONPath
// expressions.
func (g *Grid) AddRow(row interface{}) *Grid {
	g.rows = append(g.rows, row)
	return g
}

// Len returns the number of rows.
func (g *Grid) Len() int {
	return len(g.rows)
}

// Spec returns the custom-columns specification for this grid.
func (g *Grid) Spec() string {
	cols := make([]string, 0, len(g.columns))
	for _, col := range g.columns {
		cols = append(cols, col.Header+":"+col.Field)
	}
	return "custom-columns=" + strings.Join(cols, ",")
}

// Lines renders the grid into its (untagged) text lines.
func (g *Grid) Lines() ([]string, error) {
	prn, err := klo.PrinterFromFlag(g.Spec(), nil)
	if err != nil {
		return nil, err
	}
	if ccprn, ok := prn.(*klo.CustomColumnsPrinter); ok {
		ccprn.Padding = GridPadding
		ccprn.HideHeaders = g.HideHeaders
	}
	var buf bytes.Buffer
	if err := prn.Fprint(&buf, g.rows); err != nil {
		return nil, err
	}
	text := strings.TrimRight(buf.String(), "\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	for idx := range lines {
		lines[idx] = strings.TrimRight(lines[idx], " ")
	}
	return lines, nil
}

// Display writes the grid at the specified verbosity level. An empty grid
// isn't displayed at all, not even its headers.
func (g *Grid) Display(v Verbosity) error {
	if len(g.rows) == 0 || !g.out.Allows(v) {
		return nil
	}
	lines, err := g.Lines()
	if err != nil {
		return err
	}
	for idx, line := range lines {
		tag := g.RowTag
		if idx == 0 && !g.HideHeaders {
			tag = g.HeaderTag
		}
		if tag != "" {
			line = "<" + tag + ">" + line + "</" + tag + ">"
		}
		g.out.Writeln(line, v)
	}
	return nil
}
