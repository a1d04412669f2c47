package main

import (
	"io"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "venvrun",
		Level:  level,
	})
}
