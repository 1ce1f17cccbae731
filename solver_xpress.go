package pulpgo

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// SolverXPRESS drives the interactive optimizer executable over stdin,
// reading the LP and writing a WRITEPRTSOL report parsed back by
// parseXPRESSSolution. After solving, if the post-solve infeasibility gap
// exceeds 1e-5 the status is overridden to Infeasible, matching XPRESS's
// own conservative acceptance check. Grounded on the XPRESS class.
type SolverXPRESS struct {
	*commandSolver
}

// NewSolverXPRESS constructs an XPRESS backend, defaulting to "optimizer"
// resolved on PATH.
func NewSolverXPRESS(opts ...Option) *SolverXPRESS {
	s := newCommandSolver(opts...)
	if s.settings.path == "" {
		s.settings.path = executableExtension("optimizer")
	}
	return &SolverXPRESS{commandSolver: s}
}

// Available reports whether the configured optimizer executable can be
// found.
func (s *SolverXPRESS) Available() bool {
	return resolveExecutable(s.settings.path) != ""
}

func (s *SolverXPRESS) Solve(ctx context.Context, p *Problem) error {
	if !s.Available() {
		return wrapErrf(ErrIO, "cannot execute %s", s.settings.path)
	}

	modelPath, solPath := s.tempFileNames(p.Name, "lp", "prt")
	if err := s.writeModelFile(modelPath, func(w io.Writer) error {
		_, err := p.WriteLP(w, true, s.settings.mip)
		return err
	}); err != nil {
		return err
	}
	defer s.cleanup(modelPath, solPath)

	var script strings.Builder
	fmt.Fprintf(&script, "READPROB %s\n", modelPath)
	if p.Sense == Maximize {
		script.WriteString("MAXIM\n")
	} else {
		script.WriteString("MINIM\n")
	}
	if p.IsMIP() && s.settings.mip {
		script.WriteString("GLOBAL\n")
	}
	fmt.Fprintf(&script, "WRITEPRTSOL %s\n", solPath)
	script.WriteString("QUIT\n")

	if err := s.runCommand(ctx, s.settings.path, []string{p.Name}, script.String()); err != nil {
		return err
	}

	f, err := s.readSolutionFile(solPath)
	if err != nil {
		return err
	}
	defer f.Close()

	status, values, err := parseXPRESSSolution(f)
	if err != nil {
		return err
	}
	p.Status = status
	p.AssignValues(values)
	if absf(p.InfeasibilityGap(s.settings.mip)) > 1e-5 {
		p.Status = Infeasible
	}
	return nil
}
