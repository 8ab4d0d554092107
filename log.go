package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// logSettings is read from the environment before flags are parsed, so
// logging works during config loading too.
type logSettings struct {
	File  string `env:"ANNOTATE_LOGFILE"`
	Debug bool   `env:"ANNOTATE_DEBUG"`
}

// setupLog configures the default logger and returns a closer for the log
// sink. Without ANNOTATE_LOGFILE, warnings and errors go to stderr; with it,
// the full log goes to the file.
func setupLog() (func() error, error) {
	settings, err := env.ParseAs[logSettings]()
	if err != nil {
		return nil, fmt.Errorf("error parsing log settings: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	level := log.WarnLevel

	if settings.File != "" {
		f, err := os.OpenFile(settings.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		w = f
		closer = f.Close
		level = log.InfoLevel
	}
	if settings.Debug {
		level = log.DebugLevel
	}

	log.SetDefault(log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: settings.File != "",
		TimeFormat:      time.Kitchen,
	}))
	return closer, nil
}
