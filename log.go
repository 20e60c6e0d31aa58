package main

import (
	"os"

	"github.com/rs/zerolog"
)

// log is quiet (warn level) until initLogger runs.
var log = zerolog.Nop()

// initLogger sets up console logging on stderr so diagnostics never mix
// with the report on stdout.
func initLogger(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()
}
