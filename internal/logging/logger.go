// Package logging builds the command line logger from the environment.
//
//	AURC_LOG_LEVEL: debug, info, warn, error (default: warn)
//	AURC_LOG_PREFIX: prefix for log messages (default: "aurc")
//	AURC_LOG_TIME: when set to "1", timestamps each message
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xyproto/env/v2"
)

// ParseLevel converts a level name. Unknown names are the default level.
func ParseLevel(name string) log.Level {
	switch name {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	}
	return log.WarnLevel
}

// NewLoggerWithWriter creates a logger writing to w, configured from the
// current environment.
func NewLoggerWithWriter(w io.Writer) *log.Logger {
	env.Load()

	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: env.Bool("AURC_LOG_TIME"),
		TimeFormat:      time.Kitchen,
		Prefix:          env.Str("AURC_LOG_PREFIX", "aurc"),
	})

	lg.SetLevel(ParseLevel(env.Str("AURC_LOG_LEVEL")))

	return lg
}
