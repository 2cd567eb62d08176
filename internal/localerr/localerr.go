// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package localerr contains localizable errors.
package localerr // import "mellium.im/crashdialog/internal/localerr"

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer returns p, or an English printer if p is nil.
func Printer(p *message.Printer) *message.Printer {
	if p == nil {
		return message.NewPrinter(language.English)
	}
	return p
}

// Wrap returns an error that translates its reference string and wraps any
// arguments that are also errors.
// Unlike fmt.Errorf it does not check the verbs and will wrap errors even if
// they do not use %w.
// If p is nil the message is formatted in English.
func Wrap(p *message.Printer, ref message.Reference, a ...any) error {
	p = Printer(p)
	msg := p.Sprintf(ref, a...)
	var errs []error
	for _, v := range a {
		if err, ok := v.(error); ok {
			errs = append(errs, err)
		}
	}
	switch len(errs) {
	case 0:
		return errors.New(msg)
	case 1:
		return &wrapError{msg: msg, err: errs[0]}
	}
	return &wrapErrors{msg: msg, errs: errs}
}

type wrapError struct {
	msg string
	err error
}

func (e *wrapError) Error() string { return e.msg }
func (e *wrapError) Unwrap() error { return e.err }

type wrapErrors struct {
	msg  string
	errs []error
}

func (e *wrapErrors) Error() string   { return e.msg }
func (e *wrapErrors) Unwrap() []error { return e.errs }
