package expr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error classes raised while reducing a tree. Test with errors.Is.
var (
	ErrUnsupportedNode = errors.New("unsupported expression node")
	ErrArithmetic      = errors.New("arithmetic error")
	ErrDivisionByZero  = errors.New("division by zero")
)

// UnsupportedNodeError names a node the evaluator does not reduce.
type UnsupportedNodeError struct {
	Node Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported expression node %s: %s", e.Node.Kind(), e.Node)
}

func unsupported(n Node) error {
	return errors.Mark(&UnsupportedNodeError{Node: n}, ErrUnsupportedNode)
}

func arithmeticf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrArithmetic)
}

func divisionByZero(msg string) error {
	return errors.Mark(errors.Mark(errors.New(msg), ErrDivisionByZero), ErrArithmetic)
}
