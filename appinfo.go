// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package crashdialog

import (
	"runtime/debug"
)

// AppInfo describes the application shown in the crash dialog.
// It is copied by Register and never modified afterwards.
type AppInfo struct {
	// Name of the application.
	Name string
	// AdditionalText is shown above the report, usually an apology and a
	// request to report the crash.
	AdditionalText string
	// Links are displayed in the dialog in the order given.
	Links []Link
	// Reporter is used to create a bug report URL.
	// If it is nil no "Report crash" action is offered.
	Reporter Reporter

	// PackageName and PackageVersion identify the build that crashed.
	// If left empty Register fills them in from the embedded build information.
	PackageName    string
	PackageVersion string
}

// Link is a labelled URL displayed in the crash dialog.
type Link struct {
	Label string
	URL   string
}

func (info AppInfo) clone() AppInfo {
	if info.Links != nil {
		links := make([]Link, len(info.Links))
		copy(links, info.Links)
		info.Links = links
	}
	return info
}

const unknownPackage = "unknown"

// buildPackage returns the main module path and version from the build info
// embedded in the binary.
func buildPackage() (name, version string) {
	name, version = unknownPackage, unknownPackage
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return name, version
	}
	if buildInfo.Main.Path != "" {
		name = buildInfo.Main.Path
	} else if buildInfo.Path != "" {
		name = buildInfo.Path
	}
	if buildInfo.Main.Version != "" {
		version = buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" && version == "(devel)" {
			version += " " + setting.Value
		}
	}
	return name, version
}
