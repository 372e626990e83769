package engine

import (
	"fmt"

	"github.com/PacifiK2460/python-plotter/pkg/expr"
	"github.com/PacifiK2460/python-plotter/pkg/parse"
	"github.com/cockroachdb/errors"
)

// ErrValidation marks a request rejected before any parsing: a blank field,
// a bad bound or a range that is too large.
var ErrValidation = errors.New("validation error")

func validationf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

// Classify returns the name of the error class err belongs to:
// ValidationError, SyntaxError, UnsupportedNode, ArithmeticError, or Error
// for anything else.
func Classify(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	case errors.Is(err, parse.ErrSyntax):
		return "SyntaxError"
	case errors.Is(err, expr.ErrUnsupportedNode):
		return "UnsupportedNode"
	case errors.Is(err, expr.ErrArithmetic):
		return "ArithmeticError"
	default:
		return "Error"
	}
}

// Describe formats err as "<class>: <message>".
func Describe(err error) string {
	return fmt.Sprintf("%s: %v", Classify(err), err)
}
