// Package render prints operation results on a terminal.
package render

import (
	"fmt"
	"io"
	"people-lab/internal"
	"people-lab/services"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Render writes a banner followed by either a one column table of names
// or a single "operation: value" line for counts and verdicts.
func Render(w io.Writer, res services.Result, display internal.Display) error {
	switch {
	case res.Count != nil:
		_, err := fmt.Fprintf(w, "%s: %d\n", banner(string(res.Operation), display), *res.Count)
		return err
	case res.Verdict != nil:
		_, err := fmt.Fprintf(w, "%s: %t\n", banner(string(res.Operation), display), *res.Verdict)
		return err
	}

	header := fmt.Sprintf("====== %s (%d) ======", res.Operation, len(res.Names))
	if _, err := fmt.Fprintln(w, banner(header, display)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{string(res.Operation)})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	if !display.Border {
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding("\t")
	}
	for _, name := range res.Names {
		table.Append([]string{name})
	}
	table.Render()
	return nil
}

// Operations prints the supported operation names, one per line.
func Operations(w io.Writer, operations []services.Operation) error {
	for _, op := range operations {
		if _, err := fmt.Fprintln(w, op); err != nil {
			return err
		}
	}
	return nil
}

func banner(text string, display internal.Display) string {
	if !display.Colours {
		return text
	}
	return color.New(color.BgBlack, color.FgGreen).Render(text)
}
