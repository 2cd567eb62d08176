// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package crashdialog_test

import (
	"strconv"
	"strings"
	"testing"

	"mellium.im/crashdialog"
)

var sampleInfo = crashdialog.AppInfo{
	Name:           "Sample app",
	AdditionalText: "We are sorry, the application has crashed.",
	Links: []crashdialog.Link{
		{Label: "Docs", URL: "https://x"},
	},
	PackageName:    "mellium.im/sample",
	PackageVersion: "v1.2.3",
}

var reportTests = [...]struct {
	reason crashdialog.Reason
	trace  string
	out    string
}{
	0: {
		reason: crashdialog.Reason{Text: "boom", Valid: true},
		trace:  "goroutine 1 [running]:",
		out: "**Panic report from boom**\n\nSample app\n\nPackage name: `mellium.im/sample`\nVersion: `v1.2.3`\n\n" +
			"Panic info:\n```\ngoroutine 1 [running]:\n```",
	},
	1: {
		trace: "",
		out: "**Panic report from [PAYLOAD IS NOT A STRING]**\n\nSample app\n\nPackage name: `mellium.im/sample`\nVersion: `v1.2.3`\n\n" +
			"Panic info:\n```\n\n```",
	},
	2: {
		reason: crashdialog.Reason{Valid: true},
		trace:  "100% %s %v\nline two",
		out: "**Panic report from **\n\nSample app\n\nPackage name: `mellium.im/sample`\nVersion: `v1.2.3`\n\n" +
			"Panic info:\n```\n100% %s %v\nline two\n```",
	},
}

func TestReport(t *testing.T) {
	for i, tc := range reportTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			out := crashdialog.Report(tc.reason, tc.trace, sampleInfo)
			if out != tc.out {
				t.Errorf("wrong report:\nwant=%q,\n got=%q", tc.out, out)
			}
			if again := crashdialog.Report(tc.reason, tc.trace, sampleInfo); again != out {
				t.Errorf("report is not deterministic:\nfirst=%q,\n then=%q", out, again)
			}
		})
	}
}

func TestTrace(t *testing.T) {
	trace := crashdialog.Trace(42, []byte("goroutine 1 [running]:\nmain.main()\n"))
	const want = "panic: 42\npayload type: int\n\ngoroutine 1 [running]:\nmain.main()"
	if trace != want {
		t.Errorf("want=%q, got=%q", want, trace)
	}

	// Values with broken String methods must not panic.
	trace = crashdialog.Trace(badStringer{}, nil)
	if !strings.HasPrefix(trace, "panic: %!v(PANIC=String method: ") {
		t.Errorf("unexpected trace for bad stringer: %q", trace)
	}
}

type badStringer struct{}

func (badStringer) String() string { panic("bad") }
