package engine

import (
	"github.com/PacifiK2460/python-plotter/pkg/sample"
	"gonum.org/v1/plot/plotter"
)

// Report is the result of a successful run.
type Report struct {
	Expression string         `json:"expression"`
	LaTeX      string         `json:"latex,omitempty"`
	Symbol     string         `json:"symbol"`
	Min        int64          `json:"min"`
	Max        int64          `json:"max"`
	Points     []sample.Point `json:"points"`
}

// Title is the chart title for the report.
func (r Report) Title() string {
	return "Function: " + r.Expression
}

// XYs converts the points to chart coordinates.
func (r Report) XYs() plotter.XYs {
	xys := make(plotter.XYs, len(r.Points))
	for i, p := range r.Points {
		xys[i].X = float64(p.X)
		xys[i].Y = p.Y.Float64()
	}
	return xys
}
