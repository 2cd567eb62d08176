// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package crashdialog

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Model is everything a Presenter needs to show a crash report.
type Model struct {
	Title          string
	AppName        string
	AdditionalText string
	Reason         Reason
	Trace          string
	Links          []Link
	PackageName    string
	PackageVersion string

	// Copy returns the full report for the "Copy details" action.
	Copy func() string
	// Report returns a bug report URL.
	// It is nil if the application did not configure a Reporter, in which case
	// no "Report crash" action should be shown.
	Report func() string
}

// Presenter shows a crash report to the user.
// Present blocks until the user dismisses the report.
type Presenter interface {
	Present(Model) error
}

// PresenterFunc is an adapter to allow the use of ordinary functions as
// Presenters.
type PresenterFunc func(Model) error

// Present calls f(m).
func (f PresenterFunc) Present(m Model) error {
	return f(m)
}

// Fallback returns a Presenter that tries each of presenters in turn until one
// of them succeeds.
// A presenter that panics is treated as if it had returned an error.
func Fallback(presenters ...Presenter) Presenter {
	return PresenterFunc(func(m Model) error {
		var errs []error
		for _, p := range presenters {
			err := safePresent(p, m)
			if err == nil {
				return nil
			}
			errs = append(errs, err)
		}
		if len(errs) == 0 {
			return errNoPresenter
		}
		return errors.Join(errs...)
	})
}

var errNoPresenter = errors.New("crashdialog: no presenter configured")

// safePresent runs p and converts any panic encountered while doing so into an
// error.
func safePresent(p Presenter, m Model) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("crashdialog: presenter panicked: %v", r)
		}
	}()
	if p == nil {
		return errNoPresenter
	}
	return p.Present(m)
}

var titleColor = color.New(color.FgRed, color.Bold)

// Text returns a Presenter that writes the report to w.
// It is used when no other presenter is available.
func Text(w io.Writer) Presenter {
	return PresenterFunc(func(m Model) error {
		_, err := titleColor.Fprintln(w, m.Title)
		if err != nil {
			return err
		}
		if m.AdditionalText != "" {
			fmt.Fprintf(w, "\n%s\n", m.AdditionalText)
		}
		fmt.Fprintf(w, "\nReason: %s\n\n", m.Reason)
		if m.Copy != nil {
			fmt.Fprintf(w, "%s\n", m.Copy())
		}
		if m.Report != nil {
			fmt.Fprintf(w, "\nReport this crash: %s\n", m.Report())
		}
		if len(m.Links) > 0 {
			fmt.Fprintln(w)
		}
		for _, l := range m.Links {
			fmt.Fprintf(w, "%s: %s\n", l.Label, l.URL)
		}
		return nil
	})
}
