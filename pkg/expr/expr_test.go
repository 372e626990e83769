package expr

import (
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
)

func c(v int64) *ConstNode { return NewConst(v) }

func bin(op BinaryOp, l, r Node) *BinaryNode {
	return &BinaryNode{Op: op, Left: l, Right: r}
}

func assertInt(t *testing.T, node Node, want int64) {
	t.Helper()
	got, err := Eval(node)
	if err != nil {
		t.Fatalf("Eval(%s) failed: %v", node, err)
	}
	i, ok := got.Int()
	if !ok {
		t.Fatalf("Eval(%s) = %s, want integer %d", node, got, want)
	}
	if i.Cmp(big.NewInt(want)) != 0 {
		t.Errorf("Eval(%s) = %s, want %d", node, i, want)
	}
}

func assertFloat(t *testing.T, node Node, want float64, tol float64) {
	t.Helper()
	got, err := Eval(node)
	if err != nil {
		t.Fatalf("Eval(%s) failed: %v", node, err)
	}
	if got.IsInt() {
		t.Fatalf("Eval(%s) = %s, want float %v", node, got, want)
	}
	if math.Abs(got.Float64()-want) > tol {
		t.Errorf("Eval(%s) = %v, want %v (tol=%v)", node, got.Float64(), want, tol)
	}
}

func assertFails(t *testing.T, node Node, class error) error {
	t.Helper()
	_, err := Eval(node)
	if err == nil {
		t.Fatalf("Eval(%s) succeeded, want error", node)
	}
	if !errors.Is(err, class) {
		t.Fatalf("Eval(%s) error %q is not %v", node, err, class)
	}
	return err
}

func TestConstNode(t *testing.T) {
	assertInt(t, c(7), 7)
	assertInt(t, c(-3), -3)

	if s := c(7).String(); s != "7" {
		t.Errorf("ConstNode.String() = %q, want \"7\"", s)
	}
	if c(7).NodeCount() != 1 {
		t.Errorf("ConstNode.NodeCount() = %d, want 1", c(7).NodeCount())
	}
}

func TestConstNodeDoesNotAlias(t *testing.T) {
	leaf := c(5)
	v, err := Eval(leaf)
	if err != nil {
		t.Fatal(err)
	}
	leaf.Val.SetInt64(6)
	if v.String() != "5" {
		t.Errorf("value changed with its leaf: %s", v)
	}
}

func TestBinaryOps(t *testing.T) {
	assertInt(t, bin(OpAdd, c(3), c(2)), 5)
	assertInt(t, bin(OpSub, c(3), c(5)), -2)
	assertInt(t, bin(OpMul, c(4), c(-2)), -8)
	assertInt(t, bin(OpPow, c(2), c(10)), 1024)
	assertInt(t, bin(OpXor, c(6), c(3)), 5)
}

func TestTrueDivision(t *testing.T) {
	assertFloat(t, bin(OpDiv, c(7), c(2)), 3.5, 0)
	assertFloat(t, bin(OpDiv, c(4), c(2)), 2, 0)
	assertFloat(t, bin(OpDiv, c(1), c(3)), 1.0/3.0, 0)
	assertFloat(t, bin(OpDiv, c(-1), c(4)), -0.25, 0)
}

func TestNegation(t *testing.T) {
	assertInt(t, &UnaryNode{Op: OpNeg, Child: c(4)}, -4)
	assertInt(t, &UnaryNode{Op: OpNeg, Child: &UnaryNode{Op: OpNeg, Child: c(4)}}, 4)
	assertFloat(t, &UnaryNode{Op: OpNeg, Child: bin(OpDiv, c(1), c(2))}, -0.5, 0)
}

func TestPow(t *testing.T) {
	// 2^(-1) = 0.5
	assertFloat(t, bin(OpPow, c(2), c(-1)), 0.5, 0)
	// (1/4)^(1/2)
	assertFloat(t, bin(OpPow, bin(OpDiv, c(1), c(4)), bin(OpDiv, c(1), c(2))), 0.5, 1e-15)
	// 1^huge stays cheap
	assertInt(t, bin(OpPow, c(1), &ConstNode{Val: new(big.Int).Lsh(big.NewInt(1), 80)}), 1)
	assertInt(t, bin(OpPow, c(-1), c(3)), -1)
	assertInt(t, bin(OpPow, c(0), c(0)), 1)

	// 2^100 is exact
	v, err := Eval(bin(OpPow, c(2), c(100)))
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 100)
	if i, _ := v.Int(); i.Cmp(want) != 0 {
		t.Errorf("2^100 = %s, want %s", v, want)
	}
}

func TestPowFailures(t *testing.T) {
	err := assertFails(t, bin(OpPow, c(0), c(-1)), ErrDivisionByZero)
	if !errors.Is(err, ErrArithmetic) {
		t.Errorf("0^-1 error %q is not an arithmetic error", err)
	}
	assertFails(t, bin(OpPow, c(10), c(1<<30)), ErrArithmetic)
	assertFails(t, bin(OpPow, c(-8), bin(OpDiv, c(1), c(3))), ErrArithmetic)
	assertFails(t, bin(OpPow, bin(OpDiv, c(10), c(1)), c(400)), ErrArithmetic)
}

func TestDivisionByZero(t *testing.T) {
	for _, node := range []Node{
		bin(OpDiv, c(1), c(0)),
		bin(OpDiv, bin(OpDiv, c(1), c(2)), c(0)),
		bin(OpAdd, c(1), bin(OpDiv, c(1), bin(OpSub, c(2), c(2)))),
	} {
		err := assertFails(t, node, ErrDivisionByZero)
		if !errors.Is(err, ErrArithmetic) {
			t.Errorf("%s: error %q is not an arithmetic error", node, err)
		}
	}
}

func TestXorRejectsFloats(t *testing.T) {
	half := bin(OpDiv, c(1), c(2))
	err := assertFails(t, bin(OpXor, half, c(1)), ErrArithmetic)
	if err.Error() != "unsupported operand type(s) for ⊕: 'float' and 'int'" {
		t.Errorf("unexpected message %q", err)
	}
}

func TestUnsupportedNodes(t *testing.T) {
	tests := []struct {
		name string
		node Node
		kind string
	}{
		{"bitand", bin(OpBitAnd, c(3), c(2)), "BitAnd"},
		{"mod", bin(OpMod, c(3), c(2)), "Mod"},
		{"floordiv", bin(OpFloorDiv, c(3), c(2)), "FloorDiv"},
		{"name", &NameNode{Name: "y"}, "Name"},
		{"float", &FloatNode{Val: 1.5, Text: "1.5"}, "FloatConstant"},
		{"invert", &UnaryNode{Op: OpInvert, Child: c(1)}, "Invert"},
		{"call", &CallNode{Func: &NameNode{Name: "sin"}, Args: []Node{c(1)}}, "Call"},
		{"compare", &CompareNode{Left: c(1), Ops: []CompareOp{OpLt}, Comparators: []Node{c(2)}}, "Compare"},
		{"bool", &BoolNode{Op: OpOr, Values: []Node{c(1), c(2)}}, "Or"},
		{"nested", bin(OpAdd, c(1), bin(OpMul, c(2), &NameNode{Name: "z"})), "Name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := assertFails(t, tc.node, ErrUnsupportedNode)
			var une *UnsupportedNodeError
			if !errors.As(err, &une) {
				t.Fatalf("error %q does not carry the node", err)
			}
			if une.Node.Kind() != tc.kind {
				t.Errorf("offending node kind = %s, want %s", une.Node.Kind(), tc.kind)
			}
		})
	}
}

// The operator is checked before the operands, so an unsupported operator
// wins over a failing child.
func TestUnsupportedOperatorBeforeOperands(t *testing.T) {
	node := bin(OpBitAnd, bin(OpDiv, c(1), c(0)), c(2))
	assertFails(t, node, ErrUnsupportedNode)
}

func TestEvalNil(t *testing.T) {
	if _, err := Eval(nil); err == nil {
		t.Error("Eval(nil) should fail")
	}
}

func TestComplexity(t *testing.T) {
	tree := bin(OpAdd, c(1), bin(OpMul, c(2), &UnaryNode{Op: OpNeg, Child: c(3)}))
	if tree.NodeCount() != 6 {
		t.Errorf("tree.NodeCount() = %d, want 6", tree.NodeCount())
	}
	if tree.Depth() != 4 {
		t.Errorf("tree.Depth() = %d, want 4", tree.Depth())
	}

	call := &CallNode{Func: &NameNode{Name: "f"}, Args: []Node{c(1), bin(OpAdd, c(1), c(2))}}
	if call.NodeCount() != 6 || call.Depth() != 3 {
		t.Errorf("call NodeCount/Depth = %d/%d, want 6/3", call.NodeCount(), call.Depth())
	}
}

func TestString(t *testing.T) {
	tree := bin(OpDiv, c(1), bin(OpPow, &NameNode{Name: "x"}, c(2)))
	if s := tree.String(); s != "(1 / (x)^(2))" {
		t.Errorf("String() = %q", s)
	}
	if s := (&UnaryNode{Op: OpNeg, Child: c(3)}).String(); s != "(-3)" {
		t.Errorf("String() = %q", s)
	}
	cmp := &CompareNode{Left: c(1), Ops: []CompareOp{OpLt, OpLtE}, Comparators: []Node{c(2), c(3)}}
	if s := cmp.String(); s != "(1 < 2 <= 3)" {
		t.Errorf("String() = %q", s)
	}
}

func TestLaTeX(t *testing.T) {
	tree := bin(OpDiv, c(1), bin(OpPow, &NameNode{Name: "x"}, c(2)))
	if s := tree.LaTeX(); s != "\\frac{1}{{x}^{2}}" {
		t.Errorf("LaTeX() = %q", s)
	}
	if s := bin(OpXor, c(1), c(2)).LaTeX(); s != "{1} \\oplus {2}" {
		t.Errorf("LaTeX() = %q", s)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{IntValue(42), "42"},
		{FloatValue(2), "2.0"},
		{FloatValue(0.5), "0.5"},
		{FloatValue(1.0 / 3.0), "0.3333333333333333"},
		{FloatValue(1e16), "1e+16"},
		{FloatValue(1e-5), "1e-05"},
		{FloatValue(-0.0), "0.0"},
		{FloatValue(math.Inf(-1)), "-inf"},
	}
	for _, tc := range tests {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestValueJSON(t *testing.T) {
	big1 := new(big.Int).Lsh(big.NewInt(1), 70)
	tests := []struct {
		v    Value
		want string
	}{
		{BigIntValue(big1), big1.String()},
		{FloatValue(0.5), "0.5"},
		{FloatValue(2), "2"},
		{FloatValue(math.NaN()), `"nan"`},
	}
	for _, tc := range tests {
		b, err := tc.v.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != tc.want {
			t.Errorf("MarshalJSON() = %s, want %s", b, tc.want)
		}
	}
}
