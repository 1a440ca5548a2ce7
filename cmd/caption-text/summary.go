package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nguyentantai21042004/caption-text/internal/apperr"
	"github.com/nguyentantai21042004/caption-text/internal/batch"
)

// renderSummary prints the success/warning/error tally of a run, followed by
// one row per file that did not convert cleanly.
func renderSummary(w io.Writer, res batch.Result) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Result", "Value"})
	tw.AppendRows([]table.Row{
		{"Subtitle files found", res.Found},
		{"Converted", res.Success},
		{"Warnings", res.Warnings},
		{"Errors", res.Errors},
		{"Written", humanize.Bytes(uint64(res.BytesWritten))},
		{"Time", res.Duration().Round(time.Millisecond).String()},
	})
	if res.OutputDir != "" && res.Found > 0 {
		tw.AppendRow(table.Row{"Output", res.OutputDir})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	fmt.Fprintln(w, tw.Render())

	if len(res.Issues) == 0 {
		return
	}
	issues := table.NewWriter()
	issues.SetStyle(table.StyleRounded)
	issues.AppendHeader(table.Row{"Level", "Kind", "File"})
	for _, issue := range res.Issues {
		name := issue.Path
		if rel, err := filepath.Rel(res.Root, issue.Path); err == nil {
			name = rel
		}
		level := "error"
		if issue.Warning {
			level = "warning"
		}
		issues.AppendRow(table.Row{level, string(issue.Kind), name})
	}
	fmt.Fprintln(w, issues.Render())
}

// renderFatal prints the diagnostic of an error that stopped the run, with
// hints on how to fix it.
func renderFatal(w io.Writer, err error) {
	kind := apperr.KindOf(err)
	switch kind {
	case apperr.RootNotFound:
		fmt.Fprintf(w, "Folder not found: %v\n", err)
	case apperr.NoInputFiles:
		fmt.Fprintf(w, "No subtitle files to convert: %v\n", err)
	default:
		fmt.Fprintf(w, "Unexpected error: %v\n", err)
	}
	fmt.Fprintln(w, "Try:")
	for _, hint := range apperr.Hints(kind) {
		fmt.Fprintf(w, "  - %s\n", hint)
	}
}
