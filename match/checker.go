package match

import (
	"github.com/edienergy/ediguide/desc"
	"github.com/edienergy/ediguide/reporter"
)

// checkStatus implements check_st (§4.3): empty-and-required is missing,
// non-empty-and-not-used is invalid, otherwise the value passes through.
// check_st is idempotent on its output value (§8): calling it again on a
// value it already accepted returns the same verdict.
func checkStatus(status desc.Status, value string) *reporter.SyntaxError {
	switch {
	case value == "" && status.IsRequired():
		err := reporter.ErrMissing
		return &err
	case value != "" && status.IsNotUsed():
		err := reporter.ErrInvalidValue
		return &err
	default:
		return nil
	}
}

// checkFormat implements the format-and-length check (§4.3). Character
// class (alpha/numeric/alphanumeric) is declared on desc.Format but never
// enforced by this core (§9 open question 2; code 37 stays unreachable).
// Only length, per Size, is checked.
func checkFormat(format desc.Format, status desc.Status, value string) *reporter.SyntaxError {
	n := len([]rune(value))
	switch format.Size {
	case desc.SizeExactly:
		if value == "" && (status.IsOptional() || status.IsNotUsed()) {
			return nil
		}
		switch {
		case n < format.Length:
			err := reporter.ErrDataElementTooShort
			return &err
		case n > format.Length:
			err := reporter.ErrDataElementTooLong
			return &err
		default:
			return nil
		}
	case desc.SizeAtMost:
		if n > format.Length {
			err := reporter.ErrDataElementTooLong
			return &err
		}
		return nil
	default:
		return nil
	}
}
