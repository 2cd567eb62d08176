// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package tui shows crash reports in a terminal modal.
//
// It is meant as a substitute when no graphical session is available and only
// shows the panic payload, not the full report.
package tui // import "mellium.im/crashdialog/tui"

import (
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
	"golang.org/x/term"
	"golang.org/x/text/message"

	"mellium.im/crashdialog"
	"mellium.im/crashdialog/internal/escape"
	"mellium.im/crashdialog/internal/localerr"
)

// maxReasonWidth limits the number of cells used to display the payload.
const maxReasonWidth = 480

// Presenter shows crash reports using tview.
type Presenter struct {
	debug  *log.Logger
	p      *message.Printer
	screen tcell.Screen
}

// Option can be used to configure a Presenter.
type Option func(*Presenter)

// Debug returns an option that sets the logger used for debug output.
func Debug(l *log.Logger) Option {
	return func(t *Presenter) {
		if l != nil {
			t.debug = l
		}
	}
}

// Printer returns an option that sets the printer used to localize the modal.
func Printer(p *message.Printer) Option {
	return func(t *Presenter) {
		t.p = p
	}
}

// Screen returns an option that draws to screen instead of the terminal.
func Screen(screen tcell.Screen) Option {
	return func(t *Presenter) {
		t.screen = screen
	}
}

// New creates a new terminal presenter.
func New(opts ...Option) *Presenter {
	t := &Presenter{
		debug: log.New(io.Discard, "DEBUG ", log.LstdFlags),
	}
	for _, o := range opts {
		o(t)
	}
	t.p = localerr.Printer(t.p)
	return t
}

// Present implements crashdialog.Presenter.
// It blocks until the modal is dismissed.
func (t *Presenter) Present(m crashdialog.Model) error {
	app := tview.NewApplication()
	if t.screen != nil {
		app.SetScreen(t.screen)
	} else if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return localerr.Wrap(t.p, "no terminal available to show the crash report")
	}
	mod := crashModal(m, t.p, app.Stop)
	t.debug.Println("showing crash report modal")
	err := app.SetRoot(mod, false).Run()
	if err != nil {
		return localerr.Wrap(t.p, "error running terminal crash report: %v", err)
	}
	return nil
}

func modalClose(onEsc func()) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' || event.Key() == tcell.KeyESC {
			onEsc()
			return nil
		}
		return event
	}
}

func crashModal(m crashdialog.Model, p *message.Printer, onClose func()) *tview.Modal {
	mod := tview.NewModal().
		SetText(modalText(m, p)).
		AddButtons([]string{p.Sprintf("Close")}).
		SetDoneFunc(func(int, string) {
			onClose()
		}).
		SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
	mod.SetInputCapture(modalClose(onClose))
	return mod
}

// modalText returns the escaped text shown in the modal.
func modalText(m crashdialog.Model, p *message.Printer) string {
	reason := p.Sprintf("The panic payload is not displayable.")
	if m.Reason.Valid {
		reason = p.Sprintf("Reason: %s", runewidth.Truncate(m.Reason.Text, maxReasonWidth, "…"))
	}
	return escape.String(m.Title) + "\n\n" + escape.String(reason)
}
