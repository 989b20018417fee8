// Package logging builds the slog logger that service observers write to.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	charmLog "github.com/charmbracelet/log"

	"github.com/alexanderramin/juju/internal/config"
)

const appName = "juju"

// New returns a slog logger backed by a charm console sink on w. It returns
// nil when logging is disabled so callers fall back to a no-op observer.
func New(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	level, err := charmLog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}
	if w == nil {
		w = io.Discard
	}

	sink := charmLog.NewWithOptions(w, charmLog.Options{
		Level:           level,
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.TextFormatter,
	})
	return slog.New(sink), nil
}
