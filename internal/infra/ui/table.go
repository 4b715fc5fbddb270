// Where: cli/internal/infra/ui/table.go
// What: Table rendering on top of go-pretty.
// Why: Credential and build listings share one bordered table style.
package ui

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Column describes a table column. MaxWidth 0 leaves the column unbounded;
// columns holding escape sequences (links) must stay unbounded so the
// terminator is never cut off.
type Column struct {
	Header   string
	MaxWidth int
}

// RenderTable renders rows under columns. Short rows are padded.
func RenderTable(columns []Column, rows [][]string) string {
	count := len(columns)
	if count == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, count)
	for i, col := range columns {
		header[i] = col.Header
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, count)
		for i := 0; i < count; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, count)
	for i, col := range columns {
		cfg := table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		}
		if col.MaxWidth > 0 {
			cfg.WidthMax = col.MaxWidth
			cfg.WidthMaxEnforcer = text.WrapSoft
		}
		configs = append(configs, cfg)
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
