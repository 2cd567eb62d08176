// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package crashdialog shows a crash report when a program panics.
//
// The report contains the panic payload, the stack of the goroutine that
// panicked, and information about the application.
// If configured, the user is offered a button that opens a pre-filled bug
// report and a list of links.
//
// Go does not have a process wide panic hook, so the handler registered with
// Register only sees panics in goroutines that defer Handle:
//
//	func main() {
//		crashdialog.Register(crashdialog.AppInfo{
//			Name:     "Sample app",
//			Reporter: crashdialog.GitHub("mellium", "crashdialog"),
//		}, crashdialog.Dialog(gui.New()))
//		defer crashdialog.Handle()
//
//		crashdialog.Go(worker)
//		…
//	}
//
// After the report has been dismissed Handle continues panicking and the
// program exits as it normally would.
//
// The gui and tui packages provide graphical and terminal presenters.
// If the presenter fails the report is written to standard error.
// If the presenter can not be started at all (for example because a graphical
// presenter is used from a goroutine other than the main goroutine on a
// platform that requires it), the program may be aborted by the GUI toolkit;
// use Fallback to combine presenters where this is a concern.
package crashdialog // import "mellium.im/crashdialog"
