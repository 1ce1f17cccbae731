package pulpgo

import "fmt"

// Sense is the relational operator of a Constraint, expressed the same way
// as PuLP's LpConstraintSenses: negative is <=, zero is ==, positive is >=.
type Sense int

const (
	SenseLE Sense = -1
	SenseEQ Sense = 0
	SenseGE Sense = 1
)

func (s Sense) String() string {
	switch {
	case s < 0:
		return "<="
	case s > 0:
		return ">="
	default:
		return "="
	}
}

// Constraint is an AffineExpression with a relational Sense, representing
// expr <= 0, expr == 0, or expr >= 0 (constants in expr are folded into its
// constant term by the caller's subtraction at construction time).
type Constraint struct {
	*AffineExpression
	sense Sense
}

func newConstraint(lhs *AffineExpression, rhs interface{}, sense Sense) (*Constraint, error) {
	diff, err := lhs.Sub(rhs)
	if err != nil {
		return nil, err
	}
	return &Constraint{AffineExpression: diff, sense: sense}, nil
}

// NewConstraint builds a Constraint directly from an expression and sense,
// without any subtraction — e is taken to already represent "e <sense> 0".
func NewConstraint(e *AffineExpression, sense Sense) *Constraint {
	return &Constraint{AffineExpression: e, sense: sense}
}

// Sense returns the constraint's relational operator.
func (c *Constraint) Sense() Sense { return c.sense }

// RHS returns the right-hand-side constant that balances the constraint,
// i.e. -Constant(), so the original inequality reads "terms <sense> RHS()".
func (c *Constraint) RHS() float64 { return -c.constant }

// Copy returns a shallow duplicate of the constraint.
func (c *Constraint) Copy() *Constraint {
	return &Constraint{AffineExpression: c.AffineExpression.Copy(), sense: c.sense}
}

// Neg returns -c: the negated expression with the sense flipped.
func (c *Constraint) Neg() *Constraint {
	return &Constraint{AffineExpression: c.AffineExpression.Neg(), sense: -c.sense}
}

// AddInPlace combines other into c in place. When other is a *Constraint
// whose sense agrees with (or is neutral to) c's, the expressions are
// added and the sense becomes the bitwise-OR of both; when the senses
// disagree, other is subtracted instead, mirroring LpConstraint.addInPlace's
// self.sense * other.sense sign check.
func (c *Constraint) AddInPlace(other *Constraint) (*Constraint, error) {
	if c.sense*other.sense >= 0 {
		if _, err := c.AffineExpression.AddInPlace(other.AffineExpression); err != nil {
			return nil, err
		}
		c.sense = orSense(c.sense, other.sense)
	} else {
		if _, err := c.AffineExpression.SubInPlace(other.AffineExpression); err != nil {
			return nil, err
		}
		c.sense = orSense(c.sense, -other.sense)
	}
	return c, nil
}

// SubInPlace subtracts other from c in place, with the mirrored sign logic
// of AddInPlace.
func (c *Constraint) SubInPlace(other *Constraint) (*Constraint, error) {
	if c.sense*other.sense <= 0 {
		if _, err := c.AffineExpression.SubInPlace(other.AffineExpression); err != nil {
			return nil, err
		}
		c.sense = orSense(c.sense, -other.sense)
	} else {
		if _, err := c.AffineExpression.AddInPlace(other.AffineExpression); err != nil {
			return nil, err
		}
		c.sense = orSense(c.sense, other.sense)
	}
	return c, nil
}

// orSense reproduces Python's "self.sense |= other.sense" on the {-1,0,1}
// sense domain: a neutral (EQ) sense yields to whichever side is non-neutral.
func orSense(a, b Sense) Sense {
	if a != 0 {
		return a
	}
	return b
}

// Valid reports whether the constraint's current value (computed from the
// assigned values of its variables) satisfies its sense within eps.
func (c *Constraint) Valid(eps float64) bool {
	val, ok := c.Value()
	if !ok {
		return false
	}
	if c.sense == SenseEQ {
		return absf(val) <= eps
	}
	return val*float64(c.sense) >= -eps
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// String renders "<terms> <sense> <rhs>", e.g. "2 x + y <= 10".
func (c *Constraint) String() string {
	return fmt.Sprintf("%s %s %s", c.termsString(false), c.sense, formatG12(c.RHS()))
}
