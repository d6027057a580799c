// Package logging sets up the zerolog file logger. The TUI owns the
// terminal, so all log output goes to a file under the XDG state dir.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Setup opens the log file and configures the global zerolog logger.
// Unknown level strings fall back to info. The caller must close the
// returned file on shutdown.
func Setup(level, path string) (zerolog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(f).
		With().
		Timestamp().
		Logger()

	return log, f, nil
}

// DefaultLogPath resolves the log file path in priority order:
// 1. PREPDECK_LOG environment variable
// 2. $XDG_STATE_HOME/prepdeck/prepdeck.log
// 3. ~/.local/state/prepdeck/prepdeck.log
func DefaultLogPath() (string, error) {
	if p := os.Getenv("PREPDECK_LOG"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	return filepath.Join(stateHome, "prepdeck", "prepdeck.log"), nil
}
