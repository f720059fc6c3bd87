// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"io"
)

// Logger represents a logging object that writes to an io.Writer lines of outputs.
// Debug messages are only written if the logger is verbose.
type Logger struct {
	w       io.Writer
	verbose bool
}

// New creates a new Logger.
func New(w io.Writer) *Logger {
	return &Logger{
		w: w,
	}
}

// NewVerbose creates a new Logger that also writes debug messages if verbose is true.
func NewVerbose(w io.Writer, verbose bool) *Logger {
	return &Logger{
		w:       w,
		verbose: verbose,
	}
}

// Verbose returns true if the logger writes debug messages.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Successln writes args prefixed with a "✔ Success!" and a new line.
func (l *Logger) Successln(args ...interface{}) {
	successln(l.w, args...)
}

// Successf formats according to the specifier, prefixes the message with a "✔ Success!", and writes it.
func (l *Logger) Successf(format string, args ...interface{}) {
	successf(l.w, format, args...)
}

// Errorln writes args prefixed with a "✘ Error!" and a new line.
func (l *Logger) Errorln(args ...interface{}) {
	errln(l.w, args...)
}

// Errorf formats according to the specifier, prefixes the message with a "✘ Error!", and writes it.
func (l *Logger) Errorf(format string, args ...interface{}) {
	errf(l.w, format, args...)
}

// Warningln writes args prefixed with a "Note:" and a new line.
func (l *Logger) Warningln(args ...interface{}) {
	warningln(l.w, args...)
}

// Warningf formats according to the specifier, prefixes the message with a "Note:", and writes it.
func (l *Logger) Warningf(format string, args ...interface{}) {
	warningf(l.w, format, args...)
}

// Infoln writes the message with a new line.
func (l *Logger) Infoln(args ...interface{}) {
	infoln(l.w, args...)
}

// Infof formats according to the specifier, and writes the message.
func (l *Logger) Infof(format string, args ...interface{}) {
	infof(l.w, format, args...)
}

// Debugln writes the message with a new line if the logger is verbose.
func (l *Logger) Debugln(args ...interface{}) {
	if !l.verbose {
		return
	}
	debugln(l.w, args...)
}

// Debugf formats according to the specifier, and writes the message if the logger is verbose.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	debugf(l.w, format, args...)
}
