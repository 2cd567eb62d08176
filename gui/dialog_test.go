// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package gui

import (
	"io"
	"log"
	"strconv"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"mellium.im/crashdialog"
	"mellium.im/crashdialog/internal/localerr"
)

var discard = log.New(io.Discard, "", 0)

var linkRowTests = [...]struct {
	links []crashdialog.Link
	want  []string
}{
	0: {},
	1: {
		links: []crashdialog.Link{{Label: "Docs", URL: "https://x"}},
		want:  []string{"Docs"},
	},
	2: {
		links: []crashdialog.Link{
			{Label: "Our website", URL: "https://example.com"},
			{Label: "Browse known crash causes", URL: "https://example.com/known"},
			{Label: "Get help on our forum", URL: "https://example.com/forum"},
		},
		want: []string{"Our website", "|", "Browse known crash causes", "|", "Get help on our forum"},
	},
	3: {
		links: []crashdialog.Link{
			{Label: "Bad", URL: "http://[::1"},
			{Label: "Good", URL: "https://example.com"},
		},
		want: []string{"Bad", "|", "Good"},
	},
}

func TestLinkRow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	for i, tc := range linkRowTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			row := linkRow(tc.links, discard)
			var got []string
			for _, o := range row.Objects {
				switch w := o.(type) {
				case *widget.Hyperlink:
					got = append(got, w.Text)
				case *widget.Label:
					got = append(got, w.Text)
				case *widget.Separator:
					got = append(got, "|")
				default:
					t.Fatalf("unexpected object in link row: %T", o)
				}
			}
			if len(got) != len(tc.want) {
				t.Fatalf("wrong number of objects: want=%q, got=%q", tc.want, got)
			}
			for j := range got {
				if got[j] != tc.want[j] {
					t.Errorf("wrong object %d: want=%q, got=%q", j, tc.want[j], got[j])
				}
			}
		})
	}
}

func TestDialogActions(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	m := crashdialog.Model{
		Title:  "Sample app crashed",
		Reason: crashdialog.Reason{Text: "boom", Valid: true},
		Trace:  "panic: boom",
		Copy:   func() string { return "the report" },
		Report: func() string { return "https://example.net/report" },
	}
	d := newDialog(a, m, localerr.Printer(nil), discard)
	if d.window.Title() != "Crash report" {
		t.Errorf("wrong window title: %q", d.window.Title())
	}

	var copied, opened string
	d.clipboard = func(s string) { copied = s }
	d.open = func(s string) error {
		opened = s
		return nil
	}

	test.Tap(d.copy)
	if copied != "the report" {
		t.Errorf("wrong copied text: %q", copied)
	}
	if d.report == nil {
		t.Fatalf("expected a report button")
	}
	test.Tap(d.report)
	if opened != "https://example.net/report" {
		t.Errorf("wrong URL opened: %q", opened)
	}
	if len(d.details.Items) != 1 || d.details.Items[0].Open {
		t.Errorf("developer information should start collapsed")
	}
}

func TestDialogNoReporter(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	d := newDialog(a, crashdialog.Model{Title: "Sample app crashed"}, localerr.Printer(nil), discard)
	if d.report != nil {
		t.Errorf("did not expect a report button without a reporter")
	}
	// Copy without a copy action must not panic.
	test.Tap(d.copy)
}
