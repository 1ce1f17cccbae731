package pulpgo

import "github.com/spf13/afero"

// solverSettings is the common configuration shared by every command-line
// backend: the mip/msg flags and ordered option list from the base, plus
// the file-system/process knobs each backend needs.
type solverSettings struct {
	mip     bool
	msg     bool
	options []string

	logger Logger

	path      string
	pathAlt   string
	keepFiles bool
	tmpDir    string
	timeLimit float64

	presolve bool
	dual     bool
	strong   int
	cuts     bool

	fs afero.Fs
}

func defaultSettings() *solverSettings {
	return &solverSettings{
		mip:      true,
		msg:      true,
		logger:   noopLogger{},
		presolve: true,
		dual:     true,
		strong:   5,
		cuts:     true,
		fs:       afero.NewOsFs(),
	}
}

// Option configures a command-line Solver at construction time.
type Option func(*solverSettings)

// WithMIP toggles whether integer variables are treated as integral (true)
// or relaxed to continuous (false).
func WithMIP(mip bool) Option {
	return func(s *solverSettings) { s.mip = mip }
}

// WithMsg toggles whether the backend's own stdout/stderr is surfaced
// (true) or redirected to the null device (false).
func WithMsg(msg bool) Option {
	return func(s *solverSettings) { s.msg = msg }
}

// WithOptions appends raw backend-specific command-line or script options,
// in the order given.
func WithOptions(options ...string) Option {
	return func(s *solverSettings) { s.options = append(s.options, options...) }
}

// WithLogger sets the Logger a Solver reports the invoked command line and
// the process output to. Defaults to a no-op logger.
func WithLogger(logger Logger) Option {
	return func(s *solverSettings) { s.logger = logger }
}

// WithPath sets the path to the backend executable, overriding PATH
// resolution.
func WithPath(path string) Option {
	return func(s *solverSettings) { s.path = path }
}

// WithPaths sets both executable paths for two-binary backends (e.g. a
// generator and a solver executable).
func WithPaths(path, pathAlt string) Option {
	return func(s *solverSettings) {
		s.path = path
		s.pathAlt = pathAlt
	}
}

// WithKeepFiles retains the model/solution temp files after solving instead
// of deleting them, naming them after the problem instead of the process ID.
func WithKeepFiles(keep bool) Option {
	return func(s *solverSettings) { s.keepFiles = keep }
}

// WithTmpDir overrides the directory temp files are written to, instead of
// resolving it from TMPDIR/TMP/TEMP.
func WithTmpDir(dir string) Option {
	return func(s *solverSettings) { s.tmpDir = dir }
}

// WithTimeLimit records a solve time limit in seconds. No backend passes
// it on to the solver process; a backend's own time-limit directive goes
// through WithOptions.
func WithTimeLimit(seconds float64) Option {
	return func(s *solverSettings) { s.timeLimit = seconds }
}

// WithPresolve toggles the backend's presolve step.
func WithPresolve(presolve bool) Option {
	return func(s *solverSettings) { s.presolve = presolve }
}

// WithDual toggles dual simplex (CLP) in place of primal simplex.
func WithDual(dual bool) Option {
	return func(s *solverSettings) { s.dual = dual }
}

// WithStrongBranching sets the strong-branching candidate count (CBC).
func WithStrongBranching(n int) Option {
	return func(s *solverSettings) { s.strong = n }
}

// WithCuts toggles the backend's default cut-generation directives.
func WithCuts(cuts bool) Option {
	return func(s *solverSettings) { s.cuts = cuts }
}

// WithFS overrides the afero.Fs used for temp-file I/O, primarily for
// testing against an in-memory filesystem.
func WithFS(fs afero.Fs) Option {
	return func(s *solverSettings) { s.fs = fs }
}
