package expr

import "github.com/cockroachdb/errors"

// Eval reduces the tree rooted at n to a single value. Only integer
// constants and the operators in the operator table are reduced; any other
// node fails with ErrUnsupportedNode. The first failure aborts the whole
// reduction.
func Eval(n Node) (Value, error) {
	switch n := n.(type) {
	case nil:
		return Value{}, errors.AssertionFailedf("nil expression node")

	case *ConstNode:
		if n.Val == nil {
			return Value{}, unsupported(n)
		}
		return BigIntValue(n.Val), nil

	case *UnaryNode:
		fn, ok := unaryOps[n.Op]
		if !ok {
			return Value{}, unsupported(n)
		}
		child, err := Eval(n.Child)
		if err != nil {
			return Value{}, err
		}
		return fn(child)

	case *BinaryNode:
		fn, ok := binaryOps[n.Op]
		if !ok {
			return Value{}, unsupported(n)
		}
		left, err := Eval(n.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return Value{}, err
		}
		return fn(left, right)

	default:
		return Value{}, unsupported(n)
	}
}
