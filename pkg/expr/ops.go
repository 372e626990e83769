package expr

import (
	"math"
	"math/big"
)

type binaryFunc func(l, r Value) (Value, error)
type unaryFunc func(v Value) (Value, error)

// The operator table. Anything missing here is rejected by Eval.
var (
	binaryOps = map[BinaryOp]binaryFunc{
		OpAdd: add,
		OpSub: sub,
		OpMul: mul,
		OpDiv: trueDiv,
		OpPow: pow,
		OpXor: xor,
	}
	unaryOps = map[UnaryOp]unaryFunc{
		OpNeg: neg,
	}
)

// maxIntBits caps the size of integer powers.
const maxIntBits = 1 << 20

// Supported reports whether op has an entry in the operator table.
func (op BinaryOp) Supported() bool {
	_, ok := binaryOps[op]
	return ok
}

// Supported reports whether op has an entry in the operator table.
func (op UnaryOp) Supported() bool {
	_, ok := unaryOps[op]
	return ok
}

func add(l, r Value) (Value, error) {
	if l.IsInt() && r.IsInt() {
		return Value{i: new(big.Int).Add(l.i, r.i)}, nil
	}
	return floatOp(l, r, func(a, b float64) float64 { return a + b })
}

func sub(l, r Value) (Value, error) {
	if l.IsInt() && r.IsInt() {
		return Value{i: new(big.Int).Sub(l.i, r.i)}, nil
	}
	return floatOp(l, r, func(a, b float64) float64 { return a - b })
}

func mul(l, r Value) (Value, error) {
	if l.IsInt() && r.IsInt() {
		return Value{i: new(big.Int).Mul(l.i, r.i)}, nil
	}
	return floatOp(l, r, func(a, b float64) float64 { return a * b })
}

func floatOp(l, r Value, fn func(a, b float64) float64) (Value, error) {
	a, err := l.toFloat()
	if err != nil {
		return Value{}, err
	}
	b, err := r.toFloat()
	if err != nil {
		return Value{}, err
	}
	return FloatValue(fn(a, b)), nil
}

// trueDiv always yields a float. Integer operands are divided exactly and
// rounded once.
func trueDiv(l, r Value) (Value, error) {
	if l.IsInt() && r.IsInt() {
		if r.i.Sign() == 0 {
			return Value{}, divisionByZero("division by zero")
		}
		f, _ := new(big.Rat).SetFrac(l.i, r.i).Float64()
		if math.IsInf(f, 0) {
			return Value{}, arithmeticf("integer division result too large for a float")
		}
		return FloatValue(f), nil
	}
	if r.isZero() {
		return Value{}, divisionByZero("float division by zero")
	}
	return floatOp(l, r, func(a, b float64) float64 { return a / b })
}

func pow(base, exp Value) (Value, error) {
	if base.IsInt() && exp.IsInt() {
		if exp.i.Sign() >= 0 {
			return intPow(base.i, exp.i)
		}
		if base.i.Sign() == 0 {
			return Value{}, divisionByZero("0.0 cannot be raised to a negative power")
		}
	}
	b, err := base.toFloat()
	if err != nil {
		return Value{}, err
	}
	e, err := exp.toFloat()
	if err != nil {
		return Value{}, err
	}
	return floatPow(b, e)
}

func intPow(base, exp *big.Int) (Value, error) {
	// |base| <= 1 never grows.
	if base.CmpAbs(big.NewInt(1)) > 0 {
		if !exp.IsInt64() || exp.Int64() > maxIntBits ||
			int64(base.BitLen()-1)*exp.Int64() > maxIntBits {
			return Value{}, arithmeticf("integer power %s^%s is too large", base, exp)
		}
	}
	return Value{i: new(big.Int).Exp(base, exp, nil)}, nil
}

func floatPow(b, e float64) (Value, error) {
	if b == 0 && e < 0 {
		return Value{}, divisionByZero("0.0 cannot be raised to a negative power")
	}
	if b < 0 && !math.IsInf(b, 0) && e != math.Trunc(e) && !math.IsInf(e, 0) {
		return Value{}, arithmeticf("negative number cannot be raised to a fractional power")
	}
	r := math.Pow(b, e)
	if math.IsInf(r, 0) && !math.IsInf(b, 0) && !math.IsInf(e, 0) {
		return Value{}, arithmeticf("numerical result out of range")
	}
	return FloatValue(r), nil
}

func xor(l, r Value) (Value, error) {
	if !l.IsInt() || !r.IsInt() {
		return Value{}, arithmeticf("unsupported operand type(s) for ⊕: '%s' and '%s'",
			l.typeName(), r.typeName())
	}
	return Value{i: new(big.Int).Xor(l.i, r.i)}, nil
}

func neg(v Value) (Value, error) {
	if v.IsInt() {
		return Value{i: new(big.Int).Neg(v.i)}, nil
	}
	return FloatValue(-v.f), nil
}
