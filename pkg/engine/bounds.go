package engine

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// boundContext floors decimal bounds. The precision only has to cover the
// int64 range; larger results fail the Int64 conversion.
var boundContext = apd.BaseContext.WithPrecision(40)

// ParseBound parses a range bound written as a decimal number ("3", "-2.5",
// "1e3") and floors it to an integer. name is used in error messages.
func ParseBound(name, text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, validationf("%s is required", name)
	}
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return 0, validationf("%s: invalid number %q", name, text)
	}
	if d.Form != apd.Finite {
		return 0, validationf("%s: %q is not a finite number", name, text)
	}
	var floored apd.Decimal
	if _, err := boundContext.Floor(&floored, d); err != nil {
		return 0, validationf("%s: invalid number %q", name, text)
	}
	v, err := floored.Int64()
	if err != nil {
		return 0, validationf("%s: %q is out of range", name, text)
	}
	return v, nil
}
