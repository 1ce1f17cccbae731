package pulpgo

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// SolverCPLEX drives the interactive cplex executable over stdin: it reads
// the LP file; for a MIP it either runs mipopt and then fixes the integer
// variables (mip on) or relaxes the problem to an LP (mip off); it then
// optimizes and writes a solution report parsed back by
// parseCPLEXSolution. Grounded
// on CPLEX_CMD.
type SolverCPLEX struct {
	*commandSolver
}

// NewSolverCPLEX constructs a CPLEX backend, defaulting to "cplex"
// resolved on PATH.
func NewSolverCPLEX(opts ...Option) *SolverCPLEX {
	s := newCommandSolver(opts...)
	if s.settings.path == "" {
		s.settings.path = executableExtension("cplex")
	}
	return &SolverCPLEX{commandSolver: s}
}

// Available reports whether the configured cplex executable can be found.
func (s *SolverCPLEX) Available() bool {
	return resolveExecutable(s.settings.path) != ""
}

func (s *SolverCPLEX) Solve(ctx context.Context, p *Problem) error {
	if !s.Available() {
		return wrapErrf(ErrIO, "cannot execute %s", s.settings.path)
	}

	modelPath, solPath := s.tempFileNames(p.Name, "lp", "txt")
	if err := s.writeModelFile(modelPath, func(w io.Writer) error {
		_, err := p.WriteLP(w, true, s.settings.mip)
		return err
	}); err != nil {
		return err
	}
	defer s.cleanup(modelPath, solPath, "cplex.log")

	var script strings.Builder
	fmt.Fprintf(&script, "read %s\n", modelPath)
	for _, opt := range s.settings.options {
		fmt.Fprintf(&script, "%s\n", opt)
	}
	if p.IsMIP() {
		if s.settings.mip {
			script.WriteString("mipopt\n")
			script.WriteString("change problem fixed\n")
		} else {
			script.WriteString("change problem relaxed_milp\n")
		}
	}
	script.WriteString("optimize\n")
	fmt.Fprintf(&script, "write %s\n", solPath)
	script.WriteString("quit\n")

	if err := s.runCommand(ctx, s.settings.path, nil, script.String()); err != nil {
		return err
	}

	f, err := s.readSolutionFile(solPath)
	if err != nil {
		p.Status = Infeasible
		return nil
	}
	defer f.Close()

	status, values, err := parseCPLEXSolution(f)
	if err != nil {
		return err
	}
	p.Status = status
	if status != Infeasible {
		p.AssignValues(values)
	}
	return nil
}
