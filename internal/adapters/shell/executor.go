// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command with the merged environment and waits for it to
// complete. The environment is built in three layers, low to high priority:
//
//  1. os.Environ() (the harness's own environment)
//  2. env (the dependency overlay, "KEY=VALUE" entries)
//  3. cmd.Env (per-invocation overrides)
//
// Overlay entries replace base entries outright, PATH included: the overlay
// decides how the build resolves its dependencies.
//
// Process output is streamed line-buffered to the logger and raw to the
// stdout/stderr writers.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, env []string, stdout, stderr io.Writer) error {
	if len(cmd.Argv) == 0 {
		return nil
	}

	name := cmd.Argv[0]
	args := cmd.Argv[1:]

	cmdEnv := resolveEnvironment(os.Environ(), env, cmd.Env)

	// Resolve the executable against the merged environment's PATH, not the
	// harness's. If the overlay redefines PATH, that is where tools come
	// from; there is no fallback to the harness's own PATH.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, os.PathSeparator) {
		lp, err := lookPath(name, cmdEnv)
		if err != nil {
			return zerr.With(zerr.With(zerr.Wrap(err, "command not found"), "command", cmd.Name), "binary", name)
		}
		executable = lp
	}

	stdoutLog := &logWriter{logger: e.logger, level: "info"}
	stderrLog := &logWriter{logger: e.logger, level: "error"}

	proc := exec.CommandContext(ctx, executable, args...) //nolint:gosec // command comes from the verification plan

	// Preserve the name as invoked; CommandContext puts the resolved path
	// into Args[0].
	if len(proc.Args) > 0 {
		proc.Args[0] = name
	}

	if cmd.Dir != "" {
		proc.Dir = cmd.Dir
	}
	proc.Env = cmdEnv
	proc.Stdout = io.MultiWriter(stdoutLog, stdout)
	proc.Stderr = io.MultiWriter(stderrLog, stderr)

	err := proc.Run()

	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode), "command", cmd.Name)
	}

	return nil
}

// logWriter buffers writes into lines before handing them to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing unterminated line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}

// resolveEnvironment merges environment variables with the defined priority.
func resolveEnvironment(sysEnv, overlayEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string)
	var order []string

	set := func(k, v string) {
		if _, ok := envMap[k]; !ok {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, entry := range overlayEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for k, v := range cmdEnv {
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
