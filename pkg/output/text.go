package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/PacifiK2460/python-plotter/pkg/engine"
	"github.com/olekukonko/tablewriter"
)

func init() {
	Register("text", func() Writer { return &Text{} })
}

// Text writes the samples as a table.
type Text struct{}

func (t *Text) Name() string { return "text" }
func (t *Text) Binary() bool { return false }

func (t *Text) Write(w io.Writer, r engine.Report, _ Options) error {
	if _, err := fmt.Fprintln(w, r.Title()); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{r.Symbol, "f(" + r.Symbol + ")"})
	for _, p := range r.Points {
		table.Append([]string{strconv.FormatInt(p.X, 10), p.Y.String()})
	}
	table.Render()
	n := len(r.Points)
	suffix := "s"
	if n == 1 {
		suffix = ""
	}
	_, err := fmt.Fprintf(w, "(%d point%s)\n", n, suffix)
	return err
}
