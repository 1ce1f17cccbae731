package pulpgo

// AffineExpression is a linear combination of Variables plus a constant:
// sum(coefficient_i * variable_i) + constant. Terms are keyed by Variable
// identity (pointer), never by name, so two distinct Variables that happen
// to share a name are always distinct terms. Insertion order is preserved
// separately in order, since Go maps make no iteration-order guarantee.
type AffineExpression struct {
	name     string
	constant float64
	terms    map[*Variable]float64
	order    []*Variable
}

// NewExpression returns an expression equal to the constant c.
func NewExpression(c float64) *AffineExpression {
	return &AffineExpression{constant: c, terms: map[*Variable]float64{}}
}

// NewExpressionFromVariable returns the expression 1*v.
func NewExpressionFromVariable(v *Variable) *AffineExpression {
	e := NewExpression(0)
	e.addTerm(v, 1)
	return e
}

// NewExpressionFromTerms returns an expression built from an explicit
// coefficient map and constant. The iteration order of terms determines the
// expression's insertion order, so callers that care about LP/MPS emission
// order should prefer AddInPlace/addTerm instead.
func NewExpressionFromTerms(terms map[*Variable]float64, constant float64) *AffineExpression {
	e := NewExpression(constant)
	for v, x := range terms {
		e.addTerm(v, x)
	}
	return e
}

func (e *AffineExpression) addTerm(v *Variable, x float64) {
	if cur, ok := e.terms[v]; ok {
		next := cur + x
		if next == 0 {
			delete(e.terms, v)
			e.removeFromOrder(v)
		} else {
			e.terms[v] = next
		}
		return
	}
	if x == 0 {
		return
	}
	e.terms[v] = x
	e.order = append(e.order, v)
}

func (e *AffineExpression) removeFromOrder(v *Variable) {
	for i, ov := range e.order {
		if ov == v {
			e.order = append(e.order[:i], e.order[i+1:]...)
			return
		}
	}
}

// Name returns the expression's row/objective name, if it has one.
func (e *AffineExpression) Name() string { return e.name }

// SetName assigns this expression's row/objective name.
func (e *AffineExpression) SetName(name string) { e.name = name }

// Constant returns the expression's constant term.
func (e *AffineExpression) Constant() float64 { return e.constant }

// Coefficient returns the coefficient of v in this expression (0 if absent).
func (e *AffineExpression) Coefficient(v *Variable) float64 {
	return e.terms[v]
}

// Len returns the number of distinct variable terms (excluding the constant).
func (e *AffineExpression) Len() int { return len(e.order) }

// IsNumericalConstant reports whether the expression has no variable terms.
func (e *AffineExpression) IsNumericalConstant() bool { return len(e.order) == 0 }

// IsAtomic reports whether the expression is exactly a single variable with
// coefficient 1 and no constant, i.e. it wraps a bare Variable.
func (e *AffineExpression) IsAtomic() bool {
	return len(e.order) == 1 && e.constant == 0 && e.terms[e.order[0]] == 1
}

// Variables returns the expression's variables in insertion order. The
// returned slice is a copy; mutating it does not affect the expression.
func (e *AffineExpression) Variables() []*Variable {
	out := make([]*Variable, len(e.order))
	copy(out, e.order)
	return out
}

// Copy returns a shallow duplicate: same terms and constant, name reset to
// "", safe to mutate independently of the receiver. Mirrors LpAffineExpression.copy.
func (e *AffineExpression) Copy() *AffineExpression {
	out := NewExpression(e.constant)
	for _, v := range e.order {
		out.addTerm(v, e.terms[v])
	}
	return out
}

// Value returns the expression's value given every referenced Variable has
// an assigned value, or (0, false) if any is unset.
func (e *AffineExpression) Value() (float64, bool) {
	s := e.constant
	for _, v := range e.order {
		val, ok := v.Value()
		if !ok {
			return 0, false
		}
		s += val * e.terms[v]
	}
	return s, true
}

// ValueOrDefault evaluates the expression, substituting ValueOrDefault for
// any variable with no assigned value.
func (e *AffineExpression) ValueOrDefault() float64 {
	s := e.constant
	for _, v := range e.order {
		s += v.ValueOrDefault() * e.terms[v]
	}
	return s
}

// Neg returns -e as a new expression.
func (e *AffineExpression) Neg() *AffineExpression {
	out := NewExpression(-e.constant)
	for _, v := range e.order {
		out.addTerm(v, -e.terms[v])
	}
	return out
}

// AddInPlace adds x (a *Variable, *AffineExpression, or numeric type) into
// e in place and returns e, mirroring LpAffineExpression.addInPlace.
func (e *AffineExpression) AddInPlace(x interface{}) (*AffineExpression, error) {
	switch t := x.(type) {
	case nil:
		return e, nil
	case *Variable:
		e.addTerm(t, 1)
	case *AffineExpression:
		e.constant += t.constant
		for _, v := range t.order {
			e.addTerm(v, t.terms[v])
		}
	default:
		c, ok := toFloat(x)
		if !ok {
			return nil, wrapErrf(ErrType, "cannot add value of type %T to expression", x)
		}
		e.constant += c
	}
	return e, nil
}

// SubInPlace subtracts x from e in place and returns e.
func (e *AffineExpression) SubInPlace(x interface{}) (*AffineExpression, error) {
	switch t := x.(type) {
	case nil:
		return e, nil
	case *Variable:
		e.addTerm(t, -1)
	case *AffineExpression:
		e.constant -= t.constant
		for _, v := range t.order {
			e.addTerm(v, -t.terms[v])
		}
	default:
		c, ok := toFloat(x)
		if !ok {
			return nil, wrapErrf(ErrType, "cannot subtract value of type %T from expression", x)
		}
		e.constant -= c
	}
	return e, nil
}

// Add returns e + x as a new expression, e unmodified.
func (e *AffineExpression) Add(x interface{}) (*AffineExpression, error) {
	return e.Copy().AddInPlace(x)
}

// Sub returns e - x as a new expression, e unmodified.
func (e *AffineExpression) Sub(x interface{}) (*AffineExpression, error) {
	return e.Copy().SubInPlace(x)
}

// Mul returns e * x. At most one of e, x may carry variable terms — the
// product of two non-constant expressions is undefined in a linear model.
func (e *AffineExpression) Mul(x interface{}) (*AffineExpression, error) {
	var other *AffineExpression
	switch t := x.(type) {
	case *Variable:
		other = NewExpressionFromVariable(t)
	case *AffineExpression:
		other = t
	default:
		c, ok := toFloat(x)
		if !ok {
			return nil, wrapErrf(ErrType, "cannot multiply expression by value of type %T", x)
		}
		out := NewExpression(e.constant * c)
		if c != 0 {
			for _, v := range e.order {
				out.addTerm(v, e.terms[v]*c)
			}
		}
		return out, nil
	}

	out := NewExpression(e.constant * other.constant)
	switch {
	case !other.IsNumericalConstant():
		if !e.IsNumericalConstant() {
			return nil, wrapErr(ErrType, "non-constant expressions cannot be multiplied")
		}
		c := e.constant
		if c != 0 {
			for _, v := range other.order {
				out.addTerm(v, c*other.terms[v])
			}
		}
	default:
		c := other.constant
		if c != 0 {
			for _, v := range e.order {
				out.addTerm(v, c*e.terms[v])
			}
		}
	}
	return out, nil
}

// Div returns e / x. x must be a numerical constant (a bare number, or an
// expression with no variable terms); dividing by a Variable or by a
// non-constant expression is a type error (ErrType) in a linear model.
func (e *AffineExpression) Div(x interface{}) (*AffineExpression, error) {
	var divisor float64
	switch t := x.(type) {
	case *Variable:
		return nil, wrapErr(ErrType, "expressions cannot be divided by a non-constant variable")
	case *AffineExpression:
		if !t.IsNumericalConstant() {
			return nil, wrapErr(ErrType, "expressions cannot be divided by a non-constant expression")
		}
		divisor = t.constant
	default:
		c, ok := toFloat(x)
		if !ok {
			return nil, wrapErrf(ErrType, "cannot divide expression by value of type %T", x)
		}
		divisor = c
	}
	out := NewExpression(e.constant / divisor)
	for _, v := range e.order {
		out.addTerm(v, e.terms[v]/divisor)
	}
	return out, nil
}

// LE returns the Constraint e <= x, built as (e - x) <= 0.
func (e *AffineExpression) LE(x interface{}) (*Constraint, error) {
	return newConstraint(e, x, SenseLE)
}

// GE returns the Constraint e >= x, built as (e - x) >= 0.
func (e *AffineExpression) GE(x interface{}) (*Constraint, error) {
	return newConstraint(e, x, SenseGE)
}

// EQ returns the Constraint e == x, built as (e - x) == 0.
func (e *AffineExpression) EQ(x interface{}) (*Constraint, error) {
	return newConstraint(e, x, SenseEQ)
}

// termsString renders "<coef> <var> + <coef> <var> ..." in insertion order,
// omitting a coefficient of 1 and rendering negative coefficients with a
// leading "-" instead of "+ -". When withConstant is true, a nonzero
// constant is appended with its own sign.
func (e *AffineExpression) termsString(withConstant bool) string {
	s := ""
	for _, v := range e.order {
		val := e.terms[v]
		if val < 0 {
			if s != "" {
				s += " - "
			} else {
				s += "-"
			}
			val = -val
		} else if s != "" {
			s += " + "
		}
		if val == 1 {
			s += v.Name()
		} else {
			s += formatG12(val) + " " + v.Name()
		}
	}
	if withConstant {
		switch {
		case s == "":
			s = formatG12(e.constant)
		case e.constant < 0:
			s += " - " + formatG12(-e.constant)
		case e.constant > 0:
			s += " + " + formatG12(e.constant)
		}
	} else if s == "" {
		s = "0"
	}
	return s
}

// String renders the expression as "<terms> + <constant>", matching
// LpAffineExpression.__str__.
func (e *AffineExpression) String() string {
	return e.termsString(true)
}

// toFloat converts the common Go numeric kinds to float64. Variables and
// expressions are handled by their own arithmetic methods and never reach
// here.
func toFloat(x interface{}) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
