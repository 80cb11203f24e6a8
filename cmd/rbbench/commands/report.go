package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderPhases writes phases as a table. noColor turns off the colors that
// fatih/color would otherwise use on a terminal.
func RenderPhases(w io.Writer, title string, phases []Phase, noColor bool) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(title)
	tbl.AppendHeader(table.Row{"Implementation", "Phase", "Ops", "Elapsed", "ns/op", "Size", "Status"})

	failed := 0

	for _, p := range phases {
		if p.Status == StatusFailed {
			failed++
		}

		tbl.AppendRow(table.Row{
			p.Impl,
			p.Name,
			humanize.Comma(int64(p.Ops)),
			p.Elapsed.Round(time.Microsecond).String(),
			humanize.Comma(p.NsPerOp()),
			humanize.Comma(int64(p.Size)),
			statusCell(p.Status, noColor),
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d phases, %d failed", len(phases), failed)})

	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}

func statusCell(s Status, noColor bool) string {
	var c *color.Color

	switch s {
	case StatusOK:
		c = color.New(color.FgGreen)
	case StatusFailed:
		c = color.New(color.FgRed, color.Bold)
	default:
		c = color.New(color.FgYellow)
	}

	if noColor {
		c.DisableColor()
	}

	return c.Sprint(s.String())
}
