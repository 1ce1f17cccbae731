package pulpgo

// DefaultSolver probes the command-line backends in the same fixed order
// PuLP used to pick its process-wide default (CPLEX, then COIN, then
// GLPK), returning the first one whose executable is available, or nil if
// none are. Unlike the source this is grounded on, this is an explicit
// accessor rather than a mutable package-level global computed at import
// time: call it once at startup and hold onto the result, or call it again
// to re-probe after a PATH change.
func DefaultSolver(opts ...Option) Solver {
	if s := NewSolverCPLEX(opts...); s.Available() {
		return s
	}
	if s := NewSolverCBC(opts...); s.Available() {
		return s
	}
	if s := NewSolverCLP(opts...); s.Available() {
		return s
	}
	if s := NewSolverGLPK(opts...); s.Available() {
		return s
	}
	return nil
}
