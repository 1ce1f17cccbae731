package pulpgo

import (
	"context"
	"io"
)

// SolverGLPK drives glpsol as a child process: it writes an LP file (no
// SOS, matching GLPK_CMD's writeLP call), invokes glpsol with --lpt and -o,
// and parses the resulting solution file. Grounded on GLPK_CMD.
type SolverGLPK struct {
	*commandSolver
}

// NewSolverGLPK constructs a GLPK backend, defaulting to "glpsol" resolved
// on PATH.
func NewSolverGLPK(opts ...Option) *SolverGLPK {
	s := newCommandSolver(opts...)
	if s.settings.path == "" {
		s.settings.path = executableExtension("glpsol")
	}
	return &SolverGLPK{commandSolver: s}
}

// Available reports whether the configured glpsol executable can be found.
func (s *SolverGLPK) Available() bool {
	return resolveExecutable(s.settings.path) != ""
}

func (s *SolverGLPK) Solve(ctx context.Context, p *Problem) error {
	if !s.Available() {
		return wrapErrf(ErrIO, "cannot execute %s", s.settings.path)
	}

	modelPath, solPath := s.tempFileNames(p.Name, "lp", "sol")
	if err := s.writeModelFile(modelPath, func(w io.Writer) error {
		_, err := p.WriteLP(w, false, s.settings.mip)
		return err
	}); err != nil {
		return err
	}
	defer s.cleanup(modelPath, solPath)

	args := []string{"--lpt", modelPath, "-o", solPath}
	if !s.settings.mip {
		args = append(args, "--nomip")
	}
	args = append(args, s.settings.options...)

	if err := s.runCommand(ctx, s.settings.path, args, ""); err != nil {
		return err
	}

	f, err := s.readSolutionFile(solPath)
	if err != nil {
		return err
	}
	defer f.Close()

	status, values, err := parseGLPKSolution(f)
	if err != nil {
		return err
	}
	p.Status = status
	p.AssignValues(values)
	return nil
}
