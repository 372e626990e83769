package output

import (
	"io"

	"github.com/PacifiK2460/python-plotter/pkg/chart"
	"github.com/PacifiK2460/python-plotter/pkg/engine"
)

func init() {
	for _, format := range []string{"png", "svg", "pdf"} {
		format := format
		Register(format, func() Writer { return &Image{Format: format} })
	}
}

// Image draws the report as a line chart.
type Image struct {
	Format string
}

func (i *Image) Name() string { return i.Format }
func (i *Image) Binary() bool { return true }

func (i *Image) Write(w io.Writer, r engine.Report, opts Options) error {
	c := chart.New()
	c.Title = r.Title()
	c.XLabel = r.Symbol
	c.YLabel = "f(" + r.Symbol + ")"
	c.AddSeries(r.Expression, r.XYs())
	return c.WriteTo(w, opts.Width, opts.Height, i.Format)
}
