package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTable returns a rounded-style writer mirroring stdout, with the
// given column titles painted cyan.
func newTable(headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)

	row := make(table.Row, 0, len(headers))
	var h string
	for _, h = range headers {
		row = append(row, text.FgHiCyan.Sprint(h))
	}
	t.AppendHeader(row)

	return t
}

// highlight paints the winning row value.
func highlight(s string) string { return text.FgHiGreen.Sprint(s) }

// warn paints attention-worthy values, such as a detected cycle.
func warn(s string) string { return text.FgYellow.Sprint(s) }
