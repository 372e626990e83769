package expr

import (
	"fmt"
	"strings"
)

var unaryOpNames = map[UnaryOp]string{
	OpNeg:    "USub",
	OpPos:    "UAdd",
	OpInvert: "Invert",
	OpNot:    "Not",
}

var unaryOpSymbols = map[UnaryOp]string{
	OpNeg:    "-",
	OpPos:    "+",
	OpInvert: "~",
	OpNot:    "not ",
}

var binaryOpNames = map[BinaryOp]string{
	OpAdd:      "Add",
	OpSub:      "Sub",
	OpMul:      "Mult",
	OpDiv:      "Div",
	OpPow:      "Pow",
	OpXor:      "BitXor",
	OpFloorDiv: "FloorDiv",
	OpMod:      "Mod",
	OpBitAnd:   "BitAnd",
	OpBitOr:    "BitOr",
	OpLShift:   "LShift",
	OpRShift:   "RShift",
}

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpPow:      "^",
	OpXor:      "⊕",
	OpFloorDiv: "//",
	OpMod:      "%",
	OpBitAnd:   "&",
	OpBitOr:    "|",
	OpLShift:   "<<",
	OpRShift:   ">>",
}

var compareOpSymbols = map[CompareOp]string{
	OpEq:    "==",
	OpNotEq: "!=",
	OpLt:    "<",
	OpLtE:   "<=",
	OpGt:    ">",
	OpGtE:   ">=",
}

func (op UnaryOp) String() string {
	if s, ok := unaryOpNames[op]; ok {
		return s
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// Symbol returns the operator as written in expression text.
func (op UnaryOp) Symbol() string { return unaryOpSymbols[op] }

func (op BinaryOp) String() string {
	if s, ok := binaryOpNames[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// Symbol returns the operator as written in expression text.
func (op BinaryOp) Symbol() string { return binaryOpSymbols[op] }

func (op CompareOp) String() string { return compareOpSymbols[op] }

func (op BoolOp) String() string {
	if op == OpOr {
		return "or"
	}
	return "and"
}

// Kind methods

func (c *ConstNode) Kind() string   { return "Constant" }
func (f *FloatNode) Kind() string   { return "FloatConstant" }
func (n *NameNode) Kind() string    { return "Name" }
func (u *UnaryNode) Kind() string   { return u.Op.String() }
func (b *BinaryNode) Kind() string  { return b.Op.String() }
func (c *CompareNode) Kind() string { return "Compare" }
func (c *CallNode) Kind() string    { return "Call" }
func (b *BoolNode) Kind() string {
	if b.Op == OpOr {
		return "Or"
	}
	return "And"
}

// String methods

func (c *ConstNode) String() string {
	return c.Val.String()
}

func (f *FloatNode) String() string {
	if f.Text != "" {
		return f.Text
	}
	return formatFloat(f.Val)
}

func (n *NameNode) String() string {
	return n.Name
}

func (u *UnaryNode) String() string {
	return fmt.Sprintf("(%s%s)", u.Op.Symbol(), u.Child.String())
}

func (b *BinaryNode) String() string {
	left := b.Left.String()
	right := b.Right.String()
	if b.Op == OpPow {
		return fmt.Sprintf("(%s)^(%s)", left, right)
	}
	return fmt.Sprintf("(%s %s %s)", left, b.Op.Symbol(), right)
}

func (c *CompareNode) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(c.Left.String())
	for i, op := range c.Ops {
		fmt.Fprintf(&sb, " %s %s", op, c.Comparators[i].String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (b *BoolNode) String() string {
	parts := make([]string, len(b.Values))
	for i, v := range b.Values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, " "+b.Op.String()+" ") + ")"
}

func (c *CallNode) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Func.String(), strings.Join(args, ", "))
}

// LaTeX methods

func (c *ConstNode) LaTeX() string { return c.Val.String() }
func (f *FloatNode) LaTeX() string { return f.String() }
func (n *NameNode) LaTeX() string  { return n.Name }

func (u *UnaryNode) LaTeX() string {
	child := u.Child.LaTeX()
	switch u.Op {
	case OpNeg:
		return fmt.Sprintf("-{%s}", child)
	case OpPos:
		return fmt.Sprintf("+{%s}", child)
	case OpInvert:
		return fmt.Sprintf("\\sim{%s}", child)
	case OpNot:
		return fmt.Sprintf("\\lnot{%s}", child)
	default:
		return child
	}
}

func (b *BinaryNode) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpAdd:
		return fmt.Sprintf("{%s} + {%s}", left, right)
	case OpSub:
		return fmt.Sprintf("{%s} - {%s}", left, right)
	case OpMul:
		return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", left, right)
	case OpPow:
		return fmt.Sprintf("{%s}^{%s}", left, right)
	case OpXor:
		return fmt.Sprintf("{%s} \\oplus {%s}", left, right)
	case OpFloorDiv:
		return fmt.Sprintf("\\lfloor \\frac{%s}{%s} \\rfloor", left, right)
	case OpMod:
		return fmt.Sprintf("{%s} \\bmod {%s}", left, right)
	case OpBitAnd:
		return fmt.Sprintf("{%s} \\mathbin{\\&} {%s}", left, right)
	case OpBitOr:
		return fmt.Sprintf("{%s} \\mathbin{|} {%s}", left, right)
	case OpLShift:
		return fmt.Sprintf("{%s} \\ll {%s}", left, right)
	case OpRShift:
		return fmt.Sprintf("{%s} \\gg {%s}", left, right)
	default:
		return ""
	}
}

func (c *CompareNode) LaTeX() string { return c.String() }
func (b *BoolNode) LaTeX() string    { return b.String() }
func (c *CallNode) LaTeX() string    { return c.String() }
