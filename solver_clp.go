package pulpgo

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// SolverCLP drives the clp executable over stdin against a renamed MPS
// file, selecting dual or primal simplex, and parses the solution back
// through the variable-rename map CLP requires. Grounded on
// COIN_CMD.solve_CLP.
type SolverCLP struct {
	*commandSolver
}

// NewSolverCLP constructs a CLP backend, defaulting to "clp" resolved on
// PATH.
func NewSolverCLP(opts ...Option) *SolverCLP {
	s := newCommandSolver(opts...)
	if s.settings.path == "" {
		s.settings.path = executableExtension("clp")
	}
	return &SolverCLP{commandSolver: s}
}

// Available reports whether the configured clp executable can be found.
func (s *SolverCLP) Available() bool {
	return resolveExecutable(s.settings.path) != ""
}

func (s *SolverCLP) Solve(ctx context.Context, p *Problem) error {
	if !s.Available() {
		return wrapErrf(ErrIO, "cannot execute %s", s.settings.path)
	}

	modelPath, solPath := s.tempFileNames(p.Name, "mps", "sol")
	var vars []*Variable
	var varNames map[string]string
	if err := s.writeModelFile(modelPath, func(w io.Writer) error {
		v, vn, _, _, err := p.WriteMPS(w, 0, true, s.settings.mip)
		vars, varNames = v, vn
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
	for _, opt := range s.settings.options {
		fmt.Fprintf(&script, "%s\n", opt)
	}
	if p.Sense == Minimize {
		script.WriteString("min\n")
	} else {
		script.WriteString("max\n")
	}
	if s.settings.dual {
		script.WriteString("dualS\n")
	} else {
		script.WriteString("primalS\n")
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

	reverseNames := make(map[string]string, len(varNames))
	for orig, renamed := range varNames {
		reverseNames[renamed] = orig
	}

	status, values, err := parseCLPSolution(f, vars, reverseNames)
	if err != nil {
		return err
	}
	p.Status = status
	p.AssignValues(values)
	return nil
}
