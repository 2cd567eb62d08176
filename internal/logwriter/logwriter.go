// Copyright 2019 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package logwriter implements writing multi-line text to log.Logger's.
package logwriter // import "mellium.im/crashdialog/internal/logwriter"

import (
	"bytes"
	"io"
	"log"
)

type logWriter struct {
	logger *log.Logger
	prefix string
}

// Write logs each line of p as its own entry.
// Blank lines are kept so that stack traces stay readable.
func (lw logWriter) Write(p []byte) (int, error) {
	n := len(p)
	p = bytes.TrimSuffix(p, []byte{'\n'})
	for {
		line, rest, found := bytes.Cut(p, []byte{'\n'})
		lw.logger.Print(lw.prefix + string(line))
		if !found {
			break
		}
		p = rest
	}
	return n, nil
}

// New returns a writer that mirrors all writes to the provided logger, one line
// at a time.
// Each line is prefixed with prefix.
func New(logger *log.Logger, prefix string) io.Writer {
	return logWriter{
		logger: logger,
		prefix: prefix,
	}
}
