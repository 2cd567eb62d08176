// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package gui shows crash reports in a window using Fyne.
//
// Fyne must run on the main goroutine on most platforms, so the presenter is
// only reliable for panics in the main goroutine (or when the Fyne
// application has not been started yet). Combine it with other presenters
// using crashdialog.Fallback.
package gui // import "mellium.im/crashdialog/gui"

import (
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"golang.org/x/text/message"

	"mellium.im/crashdialog"
	"mellium.im/crashdialog/internal/localerr"
)

// Presenter shows crash reports in a new Fyne application.
type Presenter struct {
	debug  *log.Logger
	p      *message.Printer
	newApp func() fyne.App
}

// Option can be used to configure a Presenter.
type Option func(*Presenter)

// Debug returns an option that sets the logger used for debug output.
func Debug(l *log.Logger) Option {
	return func(g *Presenter) {
		if l != nil {
			g.debug = l
		}
	}
}

// Printer returns an option that sets the printer used to localize the
// dialog.
func Printer(p *message.Printer) Option {
	return func(g *Presenter) {
		g.p = p
	}
}

// ID returns an option that sets the unique application ID used by Fyne to
// store preferences.
func ID(id string) Option {
	return func(g *Presenter) {
		g.newApp = func() fyne.App {
			return app.NewWithID(id)
		}
	}
}

// New creates a new graphical presenter.
func New(opts ...Option) *Presenter {
	g := &Presenter{
		debug:  log.New(io.Discard, "DEBUG ", log.LstdFlags),
		newApp: app.New,
	}
	for _, o := range opts {
		o(g)
	}
	g.p = localerr.Printer(g.p)
	return g
}

// Present implements crashdialog.Presenter.
// It blocks until the crash report window is closed.
func (g *Presenter) Present(m crashdialog.Model) error {
	if !hasDisplay() {
		return localerr.Wrap(g.p, "no display available to show the crash report")
	}
	a := g.newApp()
	d := newDialog(a, m, g.p, g.debug)
	g.debug.Println("showing crash report window")
	d.window.ShowAndRun()
	return nil
}
