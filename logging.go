package main

import (
	"io"

	"github.com/oarkflow/log"
)

// newLogger returns a console logger writing to w.
// Logs never go to stdout, where values are printed.
func newLogger(level string, w io.Writer, color bool) *log.Logger {
	return &log.Logger{
		Level: log.ParseLevel(level),
		Writer: &log.ConsoleWriter{
			ColorOutput: color,
			Writer:      w,
		},
	}
}
