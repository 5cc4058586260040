// Package envfile loads prefetched dependency environments.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.EnvLoader for shell-sourceable KEY=VALUE files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// offlineVars are the variables a prefetch tool conventionally emits to pin
// dependency resolution to local state. An overlay defining none of them
// usually means the wrong file was staged.
var offlineVars = []string{"GOMODCACHE", "GOPATH", "GOPROXY", "GOFLAGS"}

// Load parses the environment file at path into an overlay. The file is read
// once and never modified. Duplicate keys follow shell source semantics: the
// last assignment wins.
func (l *Loader) Load(path string) (*domain.Overlay, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Join(domain.ErrEnvironmentLoad, zerr.With(zerr.Wrap(domain.ErrEnvFileNotFound, "prefetch output missing"), "path", path))
		}
		return nil, errors.Join(domain.ErrEnvironmentLoad, zerr.With(zerr.Wrap(err, "failed to open environment file"), "path", path))
	}
	defer func() { _ = f.Close() }()

	overlay := domain.NewOverlay(path)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := parseLine(scanner.Text(), overlay); err != nil {
			return nil, errors.Join(domain.ErrEnvironmentLoad, zerr.With(zerr.With(err, "path", path), "line", lineNo))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(domain.ErrEnvironmentLoad, zerr.With(zerr.Wrap(err, "failed to read environment file"), "path", path))
	}

	l.warnIfNotOffline(overlay)
	l.logger.Info(fmt.Sprintf("loaded %d variables from %s", overlay.Len(), path))

	return overlay, nil
}

func parseLine(line string, overlay *domain.Overlay) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	if rest, ok := strings.CutPrefix(trimmed, "export "); ok {
		trimmed = strings.TrimSpace(rest)
	}

	key, rawValue, ok := strings.Cut(trimmed, "=")
	if !ok {
		return zerr.Wrap(domain.ErrEnvFileMalformed, "missing '='")
	}

	key = strings.TrimSpace(key)
	if !validKey(key) {
		return zerr.With(zerr.Wrap(domain.ErrEnvFileMalformed, "invalid variable name"), "key", key)
	}

	value, err := unquote(strings.TrimSpace(rawValue))
	if err != nil {
		return zerr.With(err, "key", key)
	}

	overlay.Set(key, value)
	return nil
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func unquote(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	quote := value[0]
	if quote != '\'' && quote != '"' {
		return value, nil
	}

	if len(value) < 2 || value[len(value)-1] != quote {
		return "", zerr.Wrap(domain.ErrEnvFileMalformed, "unterminated quote")
	}

	inner := value[1 : len(value)-1]
	if quote == '\'' {
		// Single quotes are literal.
		if strings.ContainsRune(inner, '\'') {
			return "", zerr.Wrap(domain.ErrEnvFileMalformed, "unterminated quote")
		}
		return inner, nil
	}

	// Double quotes understand the two escapes prefetch tools emit.
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c == '\\' && i+1 < len(inner) && (inner[i+1] == '"' || inner[i+1] == '\\'):
			i++
			c = inner[i]
		case c == '"':
			return "", zerr.Wrap(domain.ErrEnvFileMalformed, "unterminated quote")
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

func (l *Loader) warnIfNotOffline(overlay *domain.Overlay) {
	for _, name := range offlineVars {
		if _, ok := overlay.Get(name); ok {
			return
		}
	}
	l.logger.Warn(fmt.Sprintf("%s defines none of %s; this does not look like prefetch output",
		overlay.Source(), strings.Join(offlineVars, ", ")))
}
