package pulpgo

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

// commandSolver is the shared base every command-line backend embeds: the
// mip/msg/options base plus the file-system/process knobs resolved from
// Option values, grounded on LpSolver_CMD.
type commandSolver struct {
	settings *solverSettings
}

func newCommandSolver(opts ...Option) *commandSolver {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	if s.tmpDir == "" {
		s.tmpDir = resolveTmpDir(s.fs)
	}
	return &commandSolver{settings: s}
}

// resolveTmpDir mirrors LpSolver_CMD.setTmpDir: on unix, TMPDIR then TMP,
// defaulting to /tmp; on Windows, TMPDIR then TMP then TEMP, defaulting to
// the current directory; falling back to "" if the result isn't a writable
// directory.
func resolveTmpDir(fs afero.Fs) string {
	var dir string
	if runtime.GOOS != "windows" {
		dir = envOr("TMPDIR", "/tmp")
		dir = envOr("TMP", dir)
	} else {
		dir = envOr("TMPDIR", "")
		dir = envOr("TMP", dir)
		dir = envOr("TEMP", dir)
	}
	info, err := fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}
	if f, err := fs.OpenFile(filepath.Join(dir, ".pulpgo-write-check"), os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		f.Close()
		fs.Remove(f.Name())
	} else {
		return ""
	}
	return dir
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// executableExtension appends ".exe" on Windows, matching
// LpSolver_CMD.executableExtension.
func executableExtension(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// resolveExecutable returns the absolute path to command if it is directly
// executable, or if it can be found on PATH; "" if neither holds. Mirrors
// LpSolver_CMD.executable.
func resolveExecutable(command string) string {
	if filepath.IsAbs(command) {
		if isExecutable(command) {
			return command
		}
		return ""
	}
	if p, err := exec.LookPath(command); err == nil {
		return p
	}
	return ""
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}

// tempFileNames returns the LP/solution temp file paths for a solve: named
// after the process ID under tmpDir, or after the problem's own name (kept
// after solving) when keepFiles is set.
func (s *commandSolver) tempFileNames(problemName, modelExt, solExt string) (modelPath, solPath string) {
	if s.settings.keepFiles {
		return problemName + "-pulp." + modelExt, problemName + "-pulp." + solExt
	}
	pid := os.Getpid()
	base := fmt.Sprintf("%d-pulp", pid)
	return filepath.Join(s.settings.tmpDir, base+"."+modelExt), filepath.Join(s.settings.tmpDir, base+"."+solExt)
}

// cleanup removes the given temp files unless keepFiles is set.
func (s *commandSolver) cleanup(paths ...string) {
	if s.settings.keepFiles {
		return
	}
	for _, p := range paths {
		_ = s.settings.fs.Remove(p)
	}
}

// runCommand spawns name with args under ctx, writing to the Logger when
// msg is enabled and discarding output otherwise, matching the
// msg/popen-vs-spawnvp split in the original command-line backends.
func (s *commandSolver) runCommand(ctx context.Context, name string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	if s.settings.msg {
		s.settings.logger.Print(fmt.Sprintf("running: %s %v", name, args))
		out, err := cmd.CombinedOutput()
		if len(out) > 0 {
			s.settings.logger.Print(string(out))
		}
		if err != nil {
			return wrapErrf(ErrIO, "%s exited with error: %v", name, err)
		}
		return nil
	}
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		return wrapErrf(ErrIO, "%s exited with error: %v", name, err)
	}
	return nil
}

// writeModelFile emits an LP or MPS file for lp to path through the
// solver's afero.Fs, using write for the actual format-specific rendering.
func (s *commandSolver) writeModelFile(path string, write func(w io.Writer) error) error {
	f, err := s.settings.fs.Create(path)
	if err != nil {
		return wrapErrf(ErrIO, "creating model file %s", path)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return wrapErrf(ErrIO, "writing model file %s", path)
	}
	return nil
}

// readSolutionFile opens path for a backend-specific parser to consume.
func (s *commandSolver) readSolutionFile(path string) (afero.File, error) {
	f, err := s.settings.fs.Open(path)
	if err != nil {
		return nil, wrapErrf(ErrIO, "opening solution file %s", path)
	}
	return f, nil
}
