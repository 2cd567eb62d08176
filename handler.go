// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package crashdialog

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/text/message"

	"mellium.im/crashdialog/internal/localerr"
	"mellium.im/crashdialog/internal/logwriter"
)

// Option configures the handler installed by Register.
type Option func(*handler)

// Logger sets the logger used to record panics.
// By default panics are logged to os.Stderr.
func Logger(l *log.Logger) Option {
	return func(h *handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// Debug sets a logger for debug output.
// By default debug output is discarded.
func Debug(l *log.Logger) Option {
	return func(h *handler) {
		if l != nil {
			h.debug = l
		}
	}
}

// Dialog sets the Presenter that shows crash reports.
// By default reports are written to the output set with Output.
func Dialog(p Presenter) Option {
	return func(h *handler) {
		h.presenter = p
	}
}

// Output sets the writer used as a last resort if the presenter fails.
// It defaults to os.Stderr.
func Output(w io.Writer) Option {
	return func(h *handler) {
		if w != nil {
			h.out = w
		}
	}
}

// Printer sets the printer used to localize the user facing text.
// The report itself is never localized.
func Printer(p *message.Printer) Option {
	return func(h *handler) {
		h.p = p
	}
}

// Shutdown sets a function that is called before the crash report is shown.
// It can be used to stop a terminal UI or close windows so that they do not
// interfere with the report.
func Shutdown(f func()) Option {
	return func(h *handler) {
		h.shutdown = f
	}
}

type handler struct {
	info      AppInfo
	presenter Presenter
	logger    *log.Logger
	debug     *log.Logger
	out       io.Writer
	p         *message.Printer
	shutdown  func()

	// present serializes dialogs when multiple goroutines panic at once.
	present sync.Mutex
}

var current atomic.Pointer[handler]

// Register installs the crash handler used by Handle.
// It should be called at the beginning of the program.
//
// Calling Register again replaces the previous handler entirely.
func Register(info AppInfo, opts ...Option) {
	h := &handler{
		info:   info.clone(),
		logger: log.New(os.Stderr, "", log.LstdFlags),
		debug:  log.New(io.Discard, "DEBUG ", log.LstdFlags),
		out:    os.Stderr,
	}
	for _, o := range opts {
		o(h)
	}
	h.p = localerr.Printer(h.p)
	if h.presenter == nil {
		h.presenter = Text(h.out)
	}
	if h.info.PackageName == "" || h.info.PackageVersion == "" {
		name, version := buildPackage()
		if h.info.PackageName == "" {
			h.info.PackageName = name
		}
		if h.info.PackageVersion == "" {
			h.info.PackageVersion = version
		}
	}
	current.Store(h)
}

// Handle shows a crash report for a panic in progress and then continues
// panicking.
// It should be deferred as the first thing in main and in all goroutines
// started anywhere in the program:
//
//	defer crashdialog.Handle()
//
// Handle must be deferred directly, calling it from another deferred function
// does not stop the panic.
// Defer it only once per goroutine, otherwise the report is shown once for
// every deferred call.
// If Register has not been called Handle does nothing but continue the panic.
func Handle() {
	r := recover()
	if r == nil {
		return
	}
	if h := current.Load(); h != nil {
		h.handle(r, debug.Stack())
	}
	panic(r)
}

// Go runs f in a new goroutine with Handle deferred.
func Go(f func()) {
	go func() {
		defer Handle()
		f()
	}()
}

func (h *handler) handle(v any, stack []byte) {
	defer func() {
		// There is nothing left to fall back to.
		if r := recover(); r != nil {
			fmt.Fprintf(h.out, "crashdialog: panic while handling panic: %v\n", r)
		}
	}()

	reason := Extract(v)
	trace := Trace(v, stack)

	h.logger.Println("The application panicked.")
	_, err := io.WriteString(logwriter.New(h.logger, "Panic info: "), trace)
	if err != nil {
		h.debug.Printf("error logging panic info: %v", err)
	}
	if reason.Valid {
		h.logger.Printf("Panic payload: %s", reason.Text)
	} else {
		h.logger.Printf("Panic payload of type %T is not displayable", v)
	}

	if h.shutdown != nil {
		h.safely("shutdown", h.shutdown)
	}

	m := h.model(reason, trace)

	h.present.Lock()
	defer h.present.Unlock()
	err = safePresent(h.presenter, m)
	if err != nil {
		h.logger.Printf("error presenting crash report, falling back to text: %v", err)
		err = safePresent(Text(h.out), m)
		if err != nil {
			h.debug.Printf("error writing crash report: %v", err)
		}
	}
}

// model builds the presentation model for a single crash.
func (h *handler) model(reason Reason, trace string) Model {
	info := h.info
	report := Report(reason, trace, info)
	m := Model{
		Title:          h.p.Sprintf("%s crashed", info.Name),
		AppName:        info.Name,
		AdditionalText: info.AdditionalText,
		Reason:         reason,
		Trace:          trace,
		Links:          info.clone().Links,
		PackageName:    info.PackageName,
		PackageVersion: info.PackageVersion,
		Copy: func() string {
			return report
		},
	}
	if Reporting(info.Reporter) {
		reporter := info.Reporter
		m.Report = func() (u string) {
			h.safely("reporter", func() {
				u = reporter.ReportURL(reason, report)
			})
			return u
		}
	}
	return m
}

// safely calls f and logs any panic instead of letting it escape.
func (h *handler) safely(name string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Print(localerr.Wrap(h.p, "%s panicked: %v", name, r))
		}
	}()
	f()
}
