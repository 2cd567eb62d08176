// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package crashdialog

import (
	"bytes"
	"fmt"
)

const reportTmpl = "**Panic report from %s**\n" +
	"\n" +
	"%s\n" +
	"\n" +
	"Package name: `%s`\n" +
	"Version: `%s`\n" +
	"\n" +
	"Panic info:\n" +
	"```\n" +
	"%s\n" +
	"```"

// Report puts all details about a crash into a single string.
// The same text is used for the "Copy details" action and as the body of bug
// reports.
func Report(reason Reason, trace string, info AppInfo) string {
	return fmt.Sprintf(reportTmpl,
		reason.String(),
		info.Name,
		info.PackageName,
		info.PackageVersion,
		trace)
}

// Trace formats a recovered panic value and the stack of the goroutine that
// panicked.
func Trace(v any, stack []byte) string {
	return fmt.Sprintf("panic: %v\npayload type: %T\n\n%s", v, v, bytes.TrimRight(stack, "\n"))
}
