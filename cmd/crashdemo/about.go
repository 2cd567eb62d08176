// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"golang.org/x/text/message"
)

// printAbout shows information about the demo and the build.
func printAbout(w io.Writer, cfgPath, version string, showBuildInfo bool, p *message.Printer) {
	var (
		commit   string
		modified string
		vcs      string
	)
	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				commit = setting.Value
			case "vcs.modified":
				if setting.Value == "true" {
					modified = "*"
				}
			case "vcs":
				vcs = setting.Value
			}
		}
	}

	fmt.Fprintf(w, `%s (%s)

version:     %s
%s:    %s%s
go version:  %s
go compiler: %s
platform:    %s/%s
config file: %s
`,
		appName, os.Args[0],
		version, strings.TrimSpace(vcs+" hash"), modified, commit,
		runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH,
		cfgPath)
	if !showBuildInfo {
		return
	}
	if ok {
		fmt.Fprintf(w, "\n%s\n\n%s", p.Sprintf("build info:"), buildInfo)
		return
	}
	fmt.Fprintf(w, "\n%s\n", p.Sprintf("Failed to read build info."))
}
