package expr

import "math/big"

// Node is the interface for all expression tree nodes.
type Node interface {
	// Kind names the node shape, e.g. "Constant", "Name" or an operator
	// name such as "Add" or "BitAnd".
	Kind() string
	String() string
	LaTeX() string
	NodeCount() int
	Depth() int
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpPos
	OpInvert
	OpNot
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpXor
	OpFloorDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpLShift
	OpRShift
)

// CompareOp identifies a comparison operator.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNotEq
	OpLt
	OpLtE
	OpGt
	OpGtE
)

// BoolOp identifies a short-circuit logical operator.
type BoolOp int

const (
	OpAnd BoolOp = iota
	OpOr
)

// ConstNode represents an integer constant.
type ConstNode struct {
	Val *big.Int
}

// NewConst returns a constant leaf holding v.
func NewConst(v int64) *ConstNode {
	return &ConstNode{Val: big.NewInt(v)}
}

// FloatNode represents a float literal. Text keeps the literal as written.
type FloatNode struct {
	Val  float64
	Text string
}

// NameNode represents an identifier.
type NameNode struct {
	Name string
}

// UnaryNode applies a unary operation to a child expression.
type UnaryNode struct {
	Op    UnaryOp
	Child Node
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

// CompareNode is a (possibly chained) comparison: Left Ops[0] Comparators[0] ...
type CompareNode struct {
	Left        Node
	Ops         []CompareOp
	Comparators []Node
}

// BoolNode joins two or more operands with and/or.
type BoolNode struct {
	Op     BoolOp
	Values []Node
}

// CallNode is a call expression.
type CallNode struct {
	Func Node
	Args []Node
}
