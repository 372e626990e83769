// Package chart holds the plotted series and renders them with gonum/plot.
package chart

import (
	"image"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Series is one named line.
type Series struct {
	Name   string
	Points plotter.XYs
}

// Chart is a list of series drawn as connected line segments on shared,
// auto-scaled axes.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	series []Series
}

// New returns an empty chart.
func New() *Chart {
	return &Chart{XLabel: "x", YLabel: "f(x)"}
}

// AddSeries appends a copy of pts as a new line.
func (c *Chart) AddSeries(name string, pts plotter.XYs) {
	cp := make(plotter.XYs, len(pts))
	copy(cp, pts)
	c.series = append(c.series, Series{Name: name, Points: cp})
}

// Clear removes every series and the title. Clearing an empty chart is a
// no-op.
func (c *Chart) Clear() {
	c.series = nil
	c.Title = ""
}

// Series returns the current series in insertion order.
func (c *Chart) Series() []Series {
	return c.series
}

// Len returns the number of series.
func (c *Chart) Len() int { return len(c.series) }

// Extent is the data rectangle the axes are scaled to.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Extent returns the bounding box of all finite points. A degenerate axis
// is widened by one unit on each side. ok is false when there are no finite
// points.
func (c *Chart) Extent() (e Extent, ok bool) {
	e = Extent{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
	for _, s := range c.series {
		for _, p := range s.Points {
			if !finite(p) {
				continue
			}
			ok = true
			e.XMin = math.Min(e.XMin, p.X)
			e.XMax = math.Max(e.XMax, p.X)
			e.YMin = math.Min(e.YMin, p.Y)
			e.YMax = math.Max(e.YMax, p.Y)
		}
	}
	if !ok {
		return Extent{}, false
	}
	if e.XMin == e.XMax {
		e.XMin, e.XMax = e.XMin-1, e.XMax+1
	}
	if e.YMin == e.YMax {
		e.YMin, e.YMax = e.YMin-1, e.YMax+1
	}
	return e, true
}

func finite(p plotter.XY) bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// Plot builds the gonum plot for the current contents. Non-finite points are
// left out of the lines.
func (c *Chart) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())

	for i, s := range c.series {
		pts := make(plotter.XYs, 0, len(s.Points))
		for _, pt := range s.Points {
			if finite(pt) {
				pts = append(pts, pt)
			}
		}
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "series %q", s.Name)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}

	if e, ok := c.Extent(); ok {
		p.X.Min, p.X.Max = e.XMin, e.XMax
		p.Y.Min, p.Y.Max = e.YMin, e.YMax
	}
	return p, nil
}

// Image rasterises the chart at the given size.
func (c *Chart) Image(width, height vg.Length) (image.Image, error) {
	p, err := c.Plot()
	if err != nil {
		return nil, err
	}
	canvas := vgimg.New(width, height)
	p.Draw(draw.New(canvas))
	return canvas.Image(), nil
}

// WriteTo renders the chart to w in the given format ("png", "svg", "pdf",
// or any other format gonum/plot knows).
func (c *Chart) WriteTo(w io.Writer, width, height vg.Length, format string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return errors.Wrapf(err, "rendering %s", format)
	}
	_, err = wt.WriteTo(w)
	return err
}
