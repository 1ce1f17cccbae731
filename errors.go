package pulpgo

import "github.com/pkg/errors"

// The taxonomy of errors raised by this package. Call sites wrap one of
// these sentinels with errors.Wrapf so callers can still test with
// errors.Is while getting a descriptive, stack-annotated message.
var (
	// ErrType marks a dispatch error: the wrong operand shape was used in
	// an algebraic operation (e.g. multiplying two non-constant
	// expressions, or adding something other than a Constraint,
	// AffineExpression, Variable or number to a Problem).
	ErrType = errors.New("pulpgo: type error")

	// ErrValue marks a value-domain error that isn't a type mismatch:
	// an unrecognized or malformed solver status line, an overlapping
	// constraint name, or LPDot slices of different lengths.
	// Problem.AssignValues does not return it: names with no matching
	// variable are ignored.
	ErrValue = errors.New("pulpgo: value error")

	// ErrDomain marks a constraint that can never be satisfied, such as
	// a numerical constant added to a Problem that evaluates to false
	// (e.g. 3 <= 2).
	ErrDomain = errors.New("pulpgo: domain error")

	// ErrIO marks a failure at the solver process boundary: the
	// executable is missing, the spawn failed, the process exited
	// nonzero, or its solution file could not be read.
	ErrIO = errors.New("pulpgo: io error")

	// ErrState marks an operation invoked on an object that isn't in a
	// state to answer it, such as computing an infeasibility gap for a
	// variable that has no value yet.
	ErrState = errors.New("pulpgo: state error")
)

// wrapErr annotates sentinel with msg so errors.Is(result, sentinel) still
// succeeds.
func wrapErr(sentinel error, msg string) error {
	return errors.Wrap(sentinel, msg)
}

func wrapErrf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
