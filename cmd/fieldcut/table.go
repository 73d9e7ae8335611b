package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// explainTable lays out one row per specification part. The Fields column
// appears only when the report was resolved against a field count.
func explainTable(report explainReport, colorize bool) string {
	tw := table.NewWriter()
	style := table.StyleRounded
	if colorize {
		style.Color.Header = text.Colors{text.FgBlue, text.Bold}
	}
	tw.SetStyle(style)

	header := table.Row{"#", "Part", "Kind"}
	if report.Count != nil {
		header = append(header, "Fields")
	}
	tw.AppendHeader(header)

	for _, p := range report.Parts {
		row := table.Row{p.Position, p.Part, kindLabel(p.Kind)}
		if report.Count != nil {
			row = append(row, joinInts(p.Fields, "(none)"))
		}
		tw.AppendRow(row)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
