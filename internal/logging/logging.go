// Package logging wires a leveled logger for the simulator. The terminal is
// owned by the UI, so records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
)

// Log is the process-wide logger.
var Log = logging.MustGetLogger("iptwin")

var format = logging.MustStringFormatter(
	"%{time:15:04:05.000} %{level:.4s} [%{shortfunc}] %{message}",
)

// Initialize routes the logger to w at the given level name
// (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL).
func Initialize(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}

	backend := logging.NewLogBackend(w, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

// Open initializes logging to path, appending. An empty path discards all
// records. The returned closer releases the file.
func Open(path, level string) (io.Closer, error) {
	if path == "" {
		return nopCloser{}, Initialize(io.Discard, level)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if err := Initialize(f, level); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
