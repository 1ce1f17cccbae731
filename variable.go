/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package pulpgo

import (
	"fmt"
	"math"
	"strings"
)

// Category is the domain a Variable's value is drawn from.
type Category int

const (
	Continuous Category = iota
	Integer
)

func (c Category) String() string {
	switch c {
	case Continuous:
		return "Continuous"
	case Integer:
		return "Integer"
	default:
		return "Unknown"
	}
}

// Variable is a named decision variable with bounds and a category. Two
// distinct Variables are always distinct entities, even when they share a
// name: every method that keys a collection by Variable does so by pointer
// identity, never by name.
type Variable struct {
	name     string
	lowBound float64
	upBound  float64
	cat      Category
	value    float64
	hasValue bool
}

// sanitizeName rewrites any character outside [A-Za-z0-9_] to '_', and
// prefixes '_' to a name that starts with a digit, matching the CPLEX
// LP/MPS name grammar rather than only the "-"/"+" the original
// implementation special-cased.
func sanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 1)
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		b.WriteByte('_')
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// NewVariable creates a free (unbounded in both directions) Continuous
// variable. Use Bounds, Positive or SetCategory to further constrain it.
func NewVariable(name string) *Variable {
	return &Variable{
		name:     sanitizeName(name),
		lowBound: math.Inf(-1),
		upBound:  math.Inf(1),
		cat:      Continuous,
	}
}

// NewBoundedVariable creates a variable with explicit bounds and category.
// Pass math.Inf(-1)/math.Inf(1) for an unbounded side.
func NewBoundedVariable(name string, lowBound, upBound float64, cat Category) *Variable {
	v := NewVariable(name)
	v.lowBound = lowBound
	v.upBound = upBound
	v.cat = cat
	return v
}

// NewBinaryVariable creates an Integer variable bounded to [0, 1].
func NewBinaryVariable(name string) *Variable {
	return NewBoundedVariable(name, 0, 1, Integer)
}

// Name returns the variable's sanitized name.
func (v *Variable) Name() string { return v.name }

// Category returns whether the variable is Continuous or Integer.
func (v *Variable) Category() Category { return v.cat }

// SetCategory changes the variable's category in place.
func (v *Variable) SetCategory(cat Category) *Variable {
	v.cat = cat
	return v
}

// Bounds sets the lower and upper bound in place and returns the receiver,
// so construction can be chained: NewVariable("x").Bounds(0, 40).
func (v *Variable) Bounds(lowBound, upBound float64) *Variable {
	v.lowBound = lowBound
	v.upBound = upBound
	return v
}

// GetBounds returns the current lower and upper bound.
func (v *Variable) GetBounds() (lowBound, upBound float64) {
	return v.lowBound, v.upBound
}

// Positive constrains the variable to the nonnegative reals (or integers).
func (v *Variable) Positive() *Variable {
	v.lowBound = 0
	v.upBound = math.Inf(1)
	return v
}

// Value returns the assigned solution value, or (0, false) if unset.
func (v *Variable) Value() (float64, bool) {
	return v.value, v.hasValue
}

// SetValue directly assigns a solution value, as done by a Solver once it
// parses a backend's solution file.
func (v *Variable) SetValue(value float64) {
	v.value = value
	v.hasValue = true
}

// ClearValue resets the variable to having no assigned value.
func (v *Variable) ClearValue() {
	v.value = 0
	v.hasValue = false
}

// Round snaps a Value that lies outside a bound by at most eps back onto
// that bound, then, for Integer variables, snaps the result to the nearest
// integer if within epsInt.
func (v *Variable) Round(epsInt, eps float64) {
	if !v.hasValue {
		return
	}
	if !math.IsInf(v.upBound, 1) && v.value > v.upBound && v.value <= v.upBound+eps {
		v.value = v.upBound
	} else if !math.IsInf(v.lowBound, -1) && v.value < v.lowBound && v.value >= v.lowBound-eps {
		v.value = v.lowBound
	}
	if v.cat == Integer && math.Abs(math.Round(v.value)-v.value) <= epsInt {
		v.value = math.Round(v.value)
	}
}

// RoundedValue returns Value rounded to the nearest integer when the
// variable is Integer-category and within eps of one; otherwise it returns
// Value unchanged. The second return is false if no value is assigned.
func (v *Variable) RoundedValue(eps float64) (float64, bool) {
	if !v.hasValue {
		return 0, false
	}
	if v.cat == Integer && math.Abs(v.value-math.Round(v.value)) <= eps {
		return math.Round(v.value), true
	}
	return v.value, true
}

// ValueOrDefault returns Value if assigned, otherwise the feasible point
// closest to zero within [lowBound, upBound], defaulting to zero when zero
// itself is feasible.
func (v *Variable) ValueOrDefault() float64 {
	if v.hasValue {
		return v.value
	}
	hasLow := !math.IsInf(v.lowBound, -1)
	hasUp := !math.IsInf(v.upBound, 1)
	switch {
	case hasLow && hasUp:
		if v.lowBound <= 0 && 0 <= v.upBound {
			return 0
		}
		if v.lowBound >= 0 {
			return v.lowBound
		}
		return v.upBound
	case hasLow:
		if 0 >= v.lowBound {
			return 0
		}
		return v.lowBound
	case hasUp:
		if 0 <= v.upBound {
			return 0
		}
		return v.upBound
	default:
		return 0
	}
}

// Valid reports whether Value is set, within bounds (within eps), and, for
// Integer variables, within epsInt of an integer.
func (v *Variable) Valid(epsInt, eps float64) bool {
	if !v.hasValue {
		return false
	}
	if !math.IsInf(v.upBound, 1) && v.value > v.upBound+eps {
		return false
	}
	if !math.IsInf(v.lowBound, -1) && v.value < v.lowBound-eps {
		return false
	}
	if v.cat == Integer && math.Abs(math.Round(v.value)-v.value) > epsInt {
		return false
	}
	return true
}

// InfeasibilityGap returns the signed distance Value lies outside its
// bounds, or, for an Integer variable when mip is true, the signed
// fractional distance to the nearest integer if the bounds are satisfied.
// It returns ErrState if the variable has no value.
func (v *Variable) InfeasibilityGap(mip bool) (float64, error) {
	if !v.hasValue {
		return 0, wrapErr(ErrState, "infeasibility gap requested on variable with no value: "+v.name)
	}
	if !math.IsInf(v.upBound, 1) && v.value > v.upBound {
		return v.value - v.upBound, nil
	}
	if !math.IsInf(v.lowBound, -1) && v.value < v.lowBound {
		return v.value - v.lowBound, nil
	}
	if mip && v.cat == Integer {
		if d := math.Round(v.value) - v.value; d != 0 {
			return d, nil
		}
	}
	return 0, nil
}

// IsBinary reports whether the variable is an Integer variable bounded to
// exactly [0, 1].
func (v *Variable) IsBinary() bool {
	return v.cat == Integer && v.lowBound == 0 && v.upBound == 1
}

// IsFree reports whether the variable is unbounded on both sides.
func (v *Variable) IsFree() bool {
	return math.IsInf(v.lowBound, -1) && math.IsInf(v.upBound, 1)
}

// IsConstant reports whether the variable's bounds pin it to a single
// finite value.
func (v *Variable) IsConstant() bool {
	return !math.IsInf(v.lowBound, -1) && v.lowBound == v.upBound
}

// IsPositive reports whether the variable's bounds are exactly [0, +inf).
func (v *Variable) IsPositive() bool {
	return v.lowBound == 0 && math.IsInf(v.upBound, 1)
}

// String renders the CPLEX LP-format bound declaration for this variable,
// e.g. "x free", "x = 3", "-inf <= x <= 40", matching asCplexLpVariable in
// the original PuLP implementation this format is grounded on.
func (v *Variable) String() string {
	if v.IsFree() {
		return v.name + " free"
	}
	if v.IsConstant() {
		return fmt.Sprintf("%s = %s", v.name, formatG12(v.lowBound))
	}
	var s string
	switch {
	case math.IsInf(v.lowBound, -1):
		s = "-inf <= "
	case v.lowBound == 0 && v.cat == Continuous:
		s = ""
	default:
		s = formatG12(v.lowBound) + " <= "
	}
	s += v.name
	if !math.IsInf(v.upBound, 1) {
		s += " <= " + formatG12(v.upBound)
	}
	return s
}

// Neg returns -v as an AffineExpression.
func (v *Variable) Neg() *AffineExpression {
	return NewExpressionFromVariable(v).Neg()
}

// Add returns v + x as a new AffineExpression.
func (v *Variable) Add(x interface{}) (*AffineExpression, error) {
	return NewExpressionFromVariable(v).Add(x)
}

// Sub returns v - x as a new AffineExpression.
func (v *Variable) Sub(x interface{}) (*AffineExpression, error) {
	return NewExpressionFromVariable(v).Sub(x)
}

// Mul returns v * x as a new AffineExpression. x must be a numerical
// constant or an AffineExpression with no variable terms; multiplying by a
// Variable is a type error, since a Variable alone is never constant.
func (v *Variable) Mul(x interface{}) (*AffineExpression, error) {
	return NewExpressionFromVariable(v).Mul(x)
}

// Div returns v / x as a new AffineExpression. x must be a numerical
// constant.
func (v *Variable) Div(x interface{}) (*AffineExpression, error) {
	return NewExpressionFromVariable(v).Div(x)
}

// LE returns the Constraint v <= x.
func (v *Variable) LE(x interface{}) (*Constraint, error) {
	return NewExpressionFromVariable(v).LE(x)
}

// GE returns the Constraint v >= x.
func (v *Variable) GE(x interface{}) (*Constraint, error) {
	return NewExpressionFromVariable(v).GE(x)
}

// EQ returns the Constraint v == x.
func (v *Variable) EQ(x interface{}) (*Constraint, error) {
	return NewExpressionFromVariable(v).EQ(x)
}

// Dict builds one Variable per key in keys, named "<prefix>_<key>", sharing
// the given bounds and category. It mirrors LpVariable.dicts from the
// original implementation, generalized with Go generics so the key type
// need not be a string.
func Dict[K comparable](prefix string, keys []K, lowBound, upBound float64, cat Category) map[K]*Variable {
	out := make(map[K]*Variable, len(keys))
	for _, k := range keys {
		name := fmt.Sprintf("%s_%v", prefix, k)
		out[k] = NewBoundedVariable(name, lowBound, upBound, cat)
	}
	return out
}

// Dicts2 builds one Variable per (key1, key2) pair, named
// "<prefix>_<key1>_<key2>", as a nested map. It mirrors the two-index form
// of LpVariable.dicts.
func Dicts2[K1, K2 comparable](prefix string, keys1 []K1, keys2 []K2, lowBound, upBound float64, cat Category) map[K1]map[K2]*Variable {
	out := make(map[K1]map[K2]*Variable, len(keys1))
	for _, k1 := range keys1 {
		inner := make(map[K2]*Variable, len(keys2))
		for _, k2 := range keys2 {
			name := fmt.Sprintf("%s_%v_%v", prefix, k1, k2)
			inner[k2] = NewBoundedVariable(name, lowBound, upBound, cat)
		}
		out[k1] = inner
	}
	return out
}

// Matrix builds a rectangular [][]* Variable with one Variable per cell,
// named "<prefix>_<i>_<j>" for i in rowKeys and j in colKeys. It mirrors
// LpVariable.matrix, generalized to arbitrary comparable key types instead
// of only index ranges.
func Matrix[K1, K2 comparable](prefix string, rowKeys []K1, colKeys []K2, lowBound, upBound float64, cat Category) [][]*Variable {
	out := make([][]*Variable, len(rowKeys))
	for i, rk := range rowKeys {
		row := make([]*Variable, len(colKeys))
		for j, ck := range colKeys {
			name := fmt.Sprintf("%s_%v_%v", prefix, rk, ck)
			row[j] = NewBoundedVariable(name, lowBound, upBound, cat)
		}
		out[i] = row
	}
	return out
}
