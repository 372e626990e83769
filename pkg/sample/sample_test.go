package sample

import (
	"testing"

	"github.com/PacifiK2460/python-plotter/pkg/expr"
	"github.com/PacifiK2460/python-plotter/pkg/parse"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func ints(t *testing.T, pts []Point) [][2]int64 {
	t.Helper()
	out := make([][2]int64, len(pts))
	for i, p := range pts {
		y, ok := p.Y.Int()
		require.True(t, ok, "y at x=%d is %s, want an integer", p.X, p.Y)
		out[i] = [2]int64{p.X, y.Int64()}
	}
	return out
}

func TestGenerateSquares(t *testing.T) {
	pts, err := Sampler{}.Generate("x^2", 0, 3)
	require.NoError(t, err)
	require.Equal(t, [][2]int64{{0, 0}, {1, 1}, {2, 4}, {3, 9}}, ints(t, pts))
}

func TestGenerateNegativeRange(t *testing.T) {
	pts, err := Sampler{}.Generate("x+1", -2, 1)
	require.NoError(t, err)
	require.Equal(t, [][2]int64{{-2, -1}, {-1, 0}, {0, 1}, {1, 2}}, ints(t, pts))

	pts, err = Sampler{}.Generate("x^2", -2, -2)
	require.NoError(t, err)
	require.Equal(t, [][2]int64{{-2, 4}}, ints(t, pts))
}

func TestGenerateDivisionByZeroAborts(t *testing.T) {
	pts, err := Sampler{}.Generate("1/x", 0, 2)
	require.Error(t, err)
	require.Nil(t, pts)
	require.True(t, errors.Is(err, expr.ErrArithmetic))
	require.True(t, errors.Is(err, expr.ErrDivisionByZero))
	require.Equal(t, "f(0): 1/0: division by zero", err.Error())
}

func TestGenerateFailureMidRange(t *testing.T) {
	pts, err := Sampler{}.Generate("1/(x-3)", 0, 10)
	require.Nil(t, pts)
	require.Contains(t, err.Error(), "f(3): 1/(3-3)")
}

func TestGenerateUnsupported(t *testing.T) {
	_, err := Sampler{}.Generate("x&2", 0, 3)
	require.True(t, errors.Is(err, expr.ErrUnsupportedNode))

	var une *expr.UnsupportedNodeError
	require.True(t, errors.As(err, &une))
	require.Equal(t, "BitAnd", une.Node.Kind())
}

func TestGenerateSyntaxError(t *testing.T) {
	_, err := Sampler{}.Generate("(x+1", 0, 3)
	require.True(t, errors.Is(err, parse.ErrSyntax))
	require.Contains(t, err.Error(), "f(0): (0+1")
}

func TestGenerateLengthAndOrder(t *testing.T) {
	ranges := [][2]int64{{0, 0}, {-5, 5}, {10, 40}, {-100, -90}}
	for _, r := range ranges {
		pts, err := Sampler{}.Generate("2*x - 1", r[0], r[1])
		require.NoError(t, err)
		require.Len(t, pts, int(r[1]-r[0]+1))
		for i, p := range pts {
			require.Equal(t, r[0]+int64(i), p.X)
		}
	}
}

func TestGenerateEmptyRange(t *testing.T) {
	pts, err := Sampler{}.Generate("x", 3, 2)
	require.NoError(t, err)
	require.Empty(t, pts)

	// The expression is never looked at.
	pts, err = Sampler{}.Generate("((", 3, 2)
	require.NoError(t, err)
	require.Empty(t, pts)
}

func TestGenerateTrueDivision(t *testing.T) {
	pts, err := Sampler{}.Generate("x/2", 1, 2)
	require.NoError(t, err)
	require.Len(t, pts, 2)
	require.True(t, pts[0].Y.Equal(expr.FloatValue(0.5)))
	require.True(t, pts[1].Y.Equal(expr.FloatValue(1)))
}

func TestGenerateCustomSymbol(t *testing.T) {
	pts, err := Sampler{Symbol: "t"}.Generate("t*t", 2, 3)
	require.NoError(t, err)
	require.Equal(t, [][2]int64{{2, 4}, {3, 9}}, ints(t, pts))
}

func TestGenerateNearInt64Max(t *testing.T) {
	const maxInt64 = int64(^uint64(0) >> 1)
	pts, err := Sampler{}.Generate("x - x", maxInt64-1, maxInt64)
	require.NoError(t, err)
	require.Len(t, pts, 2)
}

func TestGenerateLogsSamples(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := Sampler{Logger: zap.New(core)}
	_, err := s.Generate("x*3", 1, 2)
	require.NoError(t, err)

	entries := logs.FilterMessage("sample").All()
	require.Len(t, entries, 2)
	require.Equal(t, "1*3", entries[0].ContextMap()["expr"])
	require.Equal(t, "6", entries[1].ContextMap()["y"])
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		src, symbol string
		x           int64
		want        string
	}{
		{"x^2", "x", 3, "3^2"},
		{"x^2", "x", -3, "(-3)^2"},
		{"x*x + x", "x", 10, "10*10 + 10"},
		{"2x", "x", 5, "25"},
		{"1 + 2", "x", 7, "1 + 2"},
		{"n/n", "n", 0, "0/0"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Substitute(tc.src, tc.symbol, tc.x))
	}
}

func TestEvalText(t *testing.T) {
	v, err := EvalText("(-3)^2")
	require.NoError(t, err)
	require.Equal(t, "9", v.String())

	_, err = EvalText("")
	require.True(t, errors.Is(err, parse.ErrSyntax))
}
