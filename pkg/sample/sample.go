// Package sample evaluates a single-variable expression over an integer
// range, one sample point per x.
package sample

import (
	"strconv"
	"strings"

	"github.com/PacifiK2460/python-plotter/pkg/expr"
	"github.com/PacifiK2460/python-plotter/pkg/parse"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultSymbol is the plotting variable.
const DefaultSymbol = "x"

// Point is one (x, y) sample.
type Point struct {
	X int64      `json:"x"`
	Y expr.Value `json:"y"`
}

// Sampler generates sample points for expression text.
type Sampler struct {
	// Symbol is replaced by the sample value before parsing. Empty means
	// DefaultSymbol.
	Symbol string
	Logger *zap.Logger
}

// Substitute replaces every occurrence of symbol in src with the decimal
// form of x. Negative values are parenthesised so that a surrounding
// operator cannot capture the sign: x^2 at -2 reads (-2)^2.
func Substitute(src, symbol string, x int64) string {
	val := strconv.FormatInt(x, 10)
	if x < 0 {
		val = "(" + val + ")"
	}
	return strings.ReplaceAll(src, symbol, val)
}

// Generate evaluates src at every integer x in [lo, hi], in ascending order.
// The first failing x aborts the run and no points are returned; the error
// names x and the substituted text. lo > hi yields no points.
func (s Sampler) Generate(src string, lo, hi int64) ([]Point, error) {
	if lo > hi {
		return nil, nil
	}
	symbol := s.Symbol
	if symbol == "" {
		symbol = DefaultSymbol
	}
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}

	points := make([]Point, 0, capacity(lo, hi))
	for x := lo; ; x++ {
		text := Substitute(src, symbol, x)
		y, err := EvalText(text)
		if err != nil {
			return nil, errors.Wrapf(err, "f(%d): %s", x, text)
		}
		log.Debug("sample", zap.Int64("x", x), zap.String("expr", text), zap.Stringer("y", y))
		points = append(points, Point{X: x, Y: y})
		if x == hi {
			break
		}
	}
	return points, nil
}

// EvalText parses and reduces a variable-free expression.
func EvalText(text string) (expr.Value, error) {
	tree, err := parse.Parse(text)
	if err != nil {
		return expr.Value{}, err
	}
	return expr.Eval(tree)
}

func capacity(lo, hi int64) int {
	const maxPrealloc = 1 << 16
	if n := uint64(hi) - uint64(lo); n < maxPrealloc {
		return int(n) + 1
	}
	return maxPrealloc
}
