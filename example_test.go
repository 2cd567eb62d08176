// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package crashdialog_test

import (
	"fmt"
	"os"

	"mellium.im/crashdialog"
)

func ExampleGitHub() {
	r := crashdialog.GitHub("mellium", "crashdialog")
	fmt.Println(r.ReportURL(crashdialog.Extract("boom"), "details"))
	// Output:
	// https://github.com/mellium/crashdialog/issues/new?title=Unhandled panic: boom&body=%23%23%23%20Panic%20report%0Adetails
}

func ExampleReporterFunc() {
	r := crashdialog.ReporterFunc(func(reason crashdialog.Reason, report string) string {
		return "https://example.net/crash?msg=" + crashdialog.Encode(reason.String())
	})
	fmt.Println(r.ReportURL(crashdialog.Extract(42), ""))
	// Output:
	// https://example.net/crash?msg=%5BPAYLOAD%20IS%20NOT%20A%20STRING%5D
}

func ExampleRegister() {
	crashdialog.Register(crashdialog.AppInfo{
		Name:           "Sample app",
		AdditionalText: "We are sorry, the application has crashed.",
		Links: []crashdialog.Link{
			{Label: "Get help on our forum", URL: "https://example.com"},
		},
		Reporter: crashdialog.GitHub("mellium", "crashdialog"),
	}, crashdialog.Dialog(crashdialog.Text(os.Stderr)))
	defer crashdialog.Handle()

	// The rest of main.
}
