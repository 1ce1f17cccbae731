package pulpgo

import (
	"fmt"
	"strconv"
	"strings"
)

// LPSum builds a single AffineExpression summing every term, equivalent to
// repeatedly calling AddInPlace but without materializing an intermediate
// expression per term. Each term may be a *Variable, *AffineExpression, or
// a numerical constant.
func LPSum(terms ...interface{}) (*AffineExpression, error) {
	out := NewExpression(0)
	for _, t := range terms {
		if _, err := out.AddInPlace(t); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Coef returns the expression coefficient*v, a convenience for building
// LPSum/LPDot-style argument lists without an intermediate Mul call.
func Coef(coefficient float64, v *Variable) *AffineExpression {
	e := NewExpression(0)
	e.addTerm(v, coefficient)
	return e
}

// LPDot combines parallel slices of variables and coefficients into
// sum(coefficients[i] * variables[i]). The slices must be the same length.
func LPDot(variables []*Variable, coefficients []float64) (*AffineExpression, error) {
	if len(variables) != len(coefficients) {
		return nil, wrapErrf(ErrValue, "LPDot: %d variables but %d coefficients", len(variables), len(coefficients))
	}
	out := NewExpression(0)
	for i, v := range variables {
		out.addTerm(v, coefficients[i])
	}
	return out, nil
}

// Value evaluates x (a *Variable or *AffineExpression), returning ok=false
// if any referenced variable has no assigned value.
func Value(x interface{}) (float64, bool) {
	switch t := x.(type) {
	case *Variable:
		return t.Value()
	case *AffineExpression:
		return t.Value()
	default:
		c, ok := toFloat(x)
		return c, ok
	}
}

// ValueOrDefault evaluates x the way Value does, substituting each unset
// variable's ValueOrDefault instead of failing.
func ValueOrDefault(x interface{}) float64 {
	switch t := x.(type) {
	case *Variable:
		return t.ValueOrDefault()
	case *AffineExpression:
		return t.ValueOrDefault()
	default:
		c, _ := toFloat(x)
		return c
	}
}

// formatG12 renders x the way CPython's "%.12g" does: up to 12 significant
// digits, trailing zeros and a trailing decimal point trimmed, matching the
// original asCplexLpAffineExpression/asCplexLpVariable number formatting.
func formatG12(x float64) string {
	s := strconv.FormatFloat(x, 'g', 12, 64)
	// Go renders the exponent as "e+05"; CPython's %g uses "e+05" too, but
	// Go may omit the sign's leading zero padding differently, so normalize
	// through fmt for the (rare, bound-value) exponential case.
	if strings.ContainsAny(s, "eE") {
		return fmt.Sprintf("%.12g", x)
	}
	return s
}

// formatE5 renders x the way CPython's "% .5e" does: a leading space for
// non-negative values (an explicit "-" for negative ones), five digits
// after the decimal point, lowercase "e" exponent with an explicit sign and
// at least two exponent digits — the fixed-width numeric format MPS files
// use in the COLUMNS/RHS/RANGES/BOUNDS sections.
func formatE5(x float64) string {
	s := strconv.FormatFloat(x, 'e', 5, 64)
	// strconv renders e.g. "1.23400e+02"; CPython pads the exponent to at
	// least 2 digits, which strconv already guarantees, but strconv omits
	// the leading sign space for non-negative mantissas that Python's " "
	// flag adds.
	if x >= 0 {
		return " " + s
	}
	return s
}
