// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package gui

import (
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/text/message"

	"mellium.im/crashdialog"
	"mellium.im/crashdialog/internal/localerr"
)

type dialog struct {
	window  fyne.Window
	copy    *widget.Button
	report  *widget.Button
	links   *fyne.Container
	details *widget.Accordion

	clipboard func(string)
	open      func(string) error
}

func newDialog(a fyne.App, m crashdialog.Model, p *message.Printer, debug *log.Logger) *dialog {
	w := a.NewWindow(p.Sprintf("Crash report"))
	d := &dialog{
		window: w,
		clipboard: func(s string) {
			w.Clipboard().SetContent(s)
		},
		open: func(s string) error {
			return openURL(a, p, s)
		},
	}

	body := container.NewVBox(
		widget.NewLabelWithStyle(m.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	if m.AdditionalText != "" {
		additional := widget.NewLabel(m.AdditionalText)
		additional.Wrapping = fyne.TextWrapWord
		body.Add(additional)
	}
	if m.Reason.Valid {
		reason := widget.NewLabelWithStyle(m.Reason.Text, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
		reason.Wrapping = fyne.TextWrapBreak
		body.Add(container.NewBorder(nil, nil, boldLabel(p.Sprintf("Reason:")), nil, reason))
	}

	d.copy = widget.NewButtonWithIcon(p.Sprintf("Copy details"), theme.ContentCopyIcon(), func() {
		if m.Copy != nil {
			d.clipboard(m.Copy())
		}
	})
	buttons := container.NewHBox(d.copy)
	if m.Report != nil {
		d.report = widget.NewButtonWithIcon(p.Sprintf("Report crash"), theme.MailComposeIcon(), func() {
			if err := d.open(m.Report()); err != nil {
				debug.Printf("error opening bug report: %v", err)
			}
		})
		buttons.Add(d.report)
	}
	body.Add(buttons)

	d.links = linkRow(m.Links, debug)
	body.Add(d.links)

	body.Add(container.NewHBox(
		boldLabel(p.Sprintf("Package name:")),
		widget.NewLabelWithStyle(m.PackageName, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}),
	))
	body.Add(container.NewHBox(
		boldLabel(p.Sprintf("Version:")),
		widget.NewLabel(m.PackageVersion),
	))

	trace := widget.NewLabelWithStyle(m.Trace, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	d.details = widget.NewAccordion(widget.NewAccordionItem(p.Sprintf("Developer information"), trace))
	body.Add(d.details)

	warning := widget.NewIcon(theme.WarningIcon())
	w.SetContent(container.NewBorder(nil, nil, container.NewVBox(warning), nil, container.NewVScroll(body)))
	w.Resize(fyne.NewSize(512, 256))
	w.SetMaster()
	w.CenterOnScreen()
	return d
}

// linkRow lays out links in order with separators between them.
func linkRow(links []crashdialog.Link, debug *log.Logger) *fyne.Container {
	row := container.NewHBox()
	for i, l := range links {
		if i > 0 {
			row.Add(widget.NewSeparator())
		}
		u, err := url.Parse(l.URL)
		if err != nil {
			debug.Printf("error parsing URL for link %q: %v", l.Label, err)
			row.Add(widget.NewLabel(l.Label))
			continue
		}
		row.Add(widget.NewHyperlink(l.Label, u))
	}
	return row
}

func boldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func openURL(a fyne.App, p *message.Printer, s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return localerr.Wrap(p, "error parsing bug report URL: %v", err)
	}
	err = a.OpenURL(u)
	if err != nil {
		return localerr.Wrap(p, "error opening bug report URL: %v", err)
	}
	return nil
}
