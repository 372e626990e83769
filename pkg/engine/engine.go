// Package engine validates a plot request, samples the function and hands
// the result to a chart.
package engine

import (
	"strings"
	"unicode"

	"github.com/PacifiK2460/python-plotter/pkg/chart"
	"github.com/PacifiK2460/python-plotter/pkg/parse"
	"github.com/PacifiK2460/python-plotter/pkg/sample"
	"go.uber.org/zap"
)

// Engine runs one validated plot request.
type Engine struct {
	cfg    Config
	lo, hi int64
	log    *zap.Logger
}

// New validates cfg. A nil logger discards everything.
func New(cfg Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.Expression) == "" {
		return nil, validationf("expression is required")
	}
	if cfg.Symbol == "" {
		return nil, validationf("symbol is required")
	}
	if strings.IndexFunc(cfg.Symbol, unicode.IsSpace) >= 0 {
		return nil, validationf("symbol %q contains whitespace", cfg.Symbol)
	}
	if cfg.MaxPoints <= 0 {
		return nil, validationf("max points must be positive, got %d", cfg.MaxPoints)
	}
	lo, err := ParseBound("lower limit", cfg.Min)
	if err != nil {
		return nil, err
	}
	hi, err := ParseBound("upper limit", cfg.Max)
	if err != nil {
		return nil, err
	}
	// Counted in uint64 so the full int64 span does not overflow.
	if hi >= lo && uint64(hi)-uint64(lo) >= uint64(cfg.MaxPoints) {
		return nil, validationf("range [%d, %d] has more than %d points", lo, hi, cfg.MaxPoints)
	}
	return &Engine{cfg: cfg, lo: lo, hi: hi, log: logger}, nil
}

// Bounds returns the floored integer range.
func (e *Engine) Bounds() (lo, hi int64) { return e.lo, e.hi }

// Run samples the expression over the range. On failure no points are
// returned.
func (e *Engine) Run() (Report, error) {
	e.log.Info("plotting",
		zap.String("expr", e.cfg.Expression),
		zap.Int64("min", e.lo),
		zap.Int64("max", e.hi))

	report := Report{
		Expression: e.cfg.Expression,
		Symbol:     e.cfg.Symbol,
		Min:        e.lo,
		Max:        e.hi,
	}
	// The unsubstituted text usually parses with the symbol as a name; it is
	// only used for display.
	if tree, err := parse.Parse(e.cfg.Expression); err == nil {
		report.LaTeX = tree.LaTeX()
		e.log.Debug("expression tree",
			zap.Stringer("tree", tree),
			zap.Int("nodes", tree.NodeCount()),
			zap.Int("depth", tree.Depth()))
	}

	s := sample.Sampler{Symbol: e.cfg.Symbol, Logger: e.log}
	points, err := s.Generate(e.cfg.Expression, e.lo, e.hi)
	if err != nil {
		return Report{}, err
	}
	if points == nil {
		points = []sample.Point{}
	}
	report.Points = points
	return report, nil
}

// Plot clears c, runs the request and, on success, adds the function as a
// series titled after the expression. On failure c is left cleared.
func (e *Engine) Plot(c *chart.Chart) (Report, error) {
	c.Clear()
	report, err := e.Run()
	if err != nil {
		return Report{}, err
	}
	c.Title = report.Title()
	c.AddSeries(report.Expression, report.XYs())
	return report, nil
}
