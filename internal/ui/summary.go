package ui

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dmayle/carry/internal/library"
)

// RenderJobs renders the pre-confirmation summary of a resolved job set.
func RenderJobs(jobs map[string]library.Job) string {
	sources := make([]string, 0, len(jobs))
	for src := range jobs {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Source", "Conversion", "Destination"})

	conversions := 0
	for _, src := range sources {
		job := jobs[src]
		conv := "copy"
		if job.Conversion != nil {
			conv = job.Conversion.String()
			conversions++
		}
		t.AppendRow(table.Row{job.Source, conv, job.Dest})
	}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d files", len(jobs)),
		fmt.Sprintf("%d conversions", conversions),
		"",
	})

	title := styles.title.Render("Planned transfers")
	return title + "\n" + t.Render() + "\n"
}

// Okf renders a success line.
func Okf(format string, args ...any) string {
	return styles.ok.Render(fmt.Sprintf(format, args...))
}

// Warnf renders a warning line.
func Warnf(format string, args ...any) string {
	return styles.warn.Render(fmt.Sprintf(format, args...))
}

// Errf renders an error line.
func Errf(format string, args ...any) string {
	return styles.err.Render(fmt.Sprintf(format, args...))
}
