package crate

import (
	"log/slog"

	"github.com/TheBitDrifter/bark"
)

// Config holds global configuration for the crate package
var Config config = config{logger: defaultLogger()}

type config struct {
	logger *slog.Logger
}

// SetLogger configures where worlds report registrations, removals and cursor activity.
// A nil logger restores the default bark logger, whose level follows LOG_LEVEL.
func (c *config) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = defaultLogger()
	}
	c.logger = logger
}

func defaultLogger() *slog.Logger {
	return bark.For("crate")
}
