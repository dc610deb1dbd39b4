package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logHooks routes layout diagnostics to a logger. Substituted
// constraints and unsatisfiable totals come out as warnings so that a
// bad declaration is visible on every command that touches it.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnConstraintSubstituted(panelID, constraint string, declared, substituted float64) {
	h.logger.Warn("constraint substituted",
		"panel", panelID,
		"constraint", constraint,
		"declared", declared,
		"substituted", substituted)
}

func (h *logHooks) OnUnsatisfiedTotal(total, leftover float64) {
	h.logger.Warn("layout total unsatisfiable",
		"total", total,
		"leftover", leftover)
}
