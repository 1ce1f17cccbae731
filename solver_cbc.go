package pulpgo

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// SolverCBC drives the cbc executable over stdin against an MPS file (no
// rename), scripting presolve/strong-branching/cut directives from the
// Option set before branching and dumping a solution. Grounded on
// COIN_CMD.solve_CBC.
type SolverCBC struct {
	*commandSolver
}

// NewSolverCBC constructs a CBC backend, defaulting to "cbc" resolved on
// PATH.
func NewSolverCBC(opts ...Option) *SolverCBC {
	s := newCommandSolver(opts...)
	if s.settings.path == "" {
		s.settings.path = executableExtension("cbc")
	}
	return &SolverCBC{commandSolver: s}
}

// Available reports whether the configured cbc executable can be found.
func (s *SolverCBC) Available() bool {
	return resolveExecutable(s.settings.path) != ""
}

func (s *SolverCBC) Solve(ctx context.Context, p *Problem) error {
	if !s.Available() {
		return wrapErrf(ErrIO, "cannot execute %s", s.settings.path)
	}

	modelPath, solPath := s.tempFileNames(p.Name, "mps", "sol")
	var vars []*Variable
	if err := s.writeModelFile(modelPath, func(w io.Writer) error {
		v, _, _, _, err := p.WriteMPS(w, 0, false, s.settings.mip)
		vars = v
		return err
	}); err != nil {
		return err
	}
	defer s.cleanup(modelPath, solPath)

	var script strings.Builder
	fmt.Fprintf(&script, "import %s\n", modelPath)
	if s.settings.presolve {
		script.WriteString("presolve on\n")
	} else {
		script.WriteString("presolve off\n")
	}
	fmt.Fprintf(&script, "strong %d\n", s.settings.strong)
	if s.settings.cuts {
		script.WriteString("gomory on\n")
		script.WriteString("oddhole on\n")
		script.WriteString("knapsack on\n")
		script.WriteString("probing on\n")
	}
	for _, opt := range s.settings.options {
		fmt.Fprintf(&script, "%s\n", opt)
	}
	if p.Sense == Minimize {
		script.WriteString("min\n")
	} else {
		script.WriteString("max\n")
	}
	if s.settings.mip {
		script.WriteString("branch\n")
	} else {
		script.WriteString("initialSolve\n")
	}
	fmt.Fprintf(&script, "solution %s\n", solPath)
	script.WriteString("quit\n")

	if err := s.runCommand(ctx, s.settings.path, []string{"-"}, script.String()); err != nil {
		return err
	}

	f, err := s.readSolutionFile(solPath)
	if err != nil {
		return err
	}
	defer f.Close()

	status, values, err := parseCBCSolution(f, vars)
	if err != nil {
		return err
	}
	p.Status = status
	p.AssignValues(values)
	return nil
}
