package expr

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Value is the result of reducing a tree: either an exact integer or a
// float64. The zero Value is the float 0.
type Value struct {
	i *big.Int // nil for floats
	f float64
}

// IntValue returns an integer value.
func IntValue(v int64) Value {
	return Value{i: big.NewInt(v)}
}

// BigIntValue returns an integer value holding a copy of v.
func BigIntValue(v *big.Int) Value {
	return Value{i: new(big.Int).Set(v)}
}

// FloatValue returns a float value.
func FloatValue(f float64) Value {
	return Value{f: f}
}

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool { return v.i != nil }

// Int returns a copy of the integer held by v.
func (v Value) Int() (*big.Int, bool) {
	if v.i == nil {
		return nil, false
	}
	return new(big.Int).Set(v.i), true
}

// Float64 returns v as a float64. Integers beyond the float64 range map to
// ±Inf.
func (v Value) Float64() float64 {
	if v.i == nil {
		return v.f
	}
	f, _ := new(big.Float).SetInt(v.i).Float64()
	return f
}

// Equal reports whether v and o hold the same kind and the same number.
func (v Value) Equal(o Value) bool {
	if v.IsInt() != o.IsInt() {
		return false
	}
	if v.IsInt() {
		return v.i.Cmp(o.i) == 0
	}
	return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
}

func (v Value) String() string {
	if v.i != nil {
		return v.i.String()
	}
	return formatFloat(v.f)
}

// MarshalJSON encodes integers as exact JSON numbers and floats as numbers,
// or as strings when they are not finite.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.i != nil {
		return []byte(v.i.String()), nil
	}
	if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
		return []byte(strconv.Quote(formatFloat(v.f))), nil
	}
	return []byte(strconv.FormatFloat(v.f, 'g', -1, 64)), nil
}

// toFloat converts v for mixed integer/float arithmetic.
func (v Value) toFloat() (float64, error) {
	if v.i == nil {
		return v.f, nil
	}
	f := v.Float64()
	if math.IsInf(f, 0) {
		return 0, arithmeticf("int too large to convert to float")
	}
	return f, nil
}

func (v Value) isZero() bool {
	if v.i != nil {
		return v.i.Sign() == 0
	}
	return v.f == 0
}

func (v Value) typeName() string {
	if v.i != nil {
		return "int"
	}
	return "float"
}

// formatFloat renders f the way an interactive calculator echoes floats:
// shortest round-trip digits, always with a fractional part or an exponent.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
