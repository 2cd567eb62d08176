// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package crashdialog

import (
	"log"
	"net/url"
	"strings"
)

// Reporter generates a URL that can be opened to report a crash.
//
// The report argument is the same text returned by Report.
// Implementations may be called concurrently and must not panic.
type Reporter interface {
	ReportURL(reason Reason, report string) string
}

// ReporterFunc is an adapter to allow the use of ordinary functions as
// Reporters.
type ReporterFunc func(reason Reason, report string) string

// ReportURL calls f(reason, report).
func (f ReporterFunc) ReportURL(reason Reason, report string) string {
	return f(reason, report)
}

const githubHost = "github.com"

// IssueTracker is a Reporter that links to the "new issue" form of a GitHub
// style issue tracker.
// The zero value is not useful, use GitHub or NewIssueTracker instead.
type IssueTracker struct {
	host  string
	owner string
	repo  string
}

// GitHub returns a reporter that opens an issue in the github.com repository
// owner/repo.
func GitHub(owner, repo string) IssueTracker {
	return NewIssueTracker(githubHost, owner, repo)
}

// NewIssueTracker returns a reporter for the repository owner/repo hosted on a
// GitHub compatible forge at host.
func NewIssueTracker(host, owner, repo string) IssueTracker {
	return IssueTracker{
		host:  host,
		owner: owner,
		repo:  repo,
	}
}

// Host returns the host name of the issue tracker.
func (t IssueTracker) Host() string { return t.host }

// Owner returns the owner of the repository.
func (t IssueTracker) Owner() string { return t.owner }

// Repo returns the name of the repository.
func (t IssueTracker) Repo() string { return t.repo }

// ReportURL implements Reporter.
// The issue title is "Unhandled panic: " followed by the reason text (if any)
// and the body is the report under a "### Panic report" heading.
func (t IssueTracker) ReportURL(reason Reason, report string) string {
	var b strings.Builder
	b.WriteString("https://")
	b.WriteString(t.host)
	b.WriteByte('/')
	b.WriteString(t.owner)
	b.WriteByte('/')
	b.WriteString(t.repo)
	b.WriteString("/issues/new?title=Unhandled panic: ")
	b.WriteString(Encode(reason.Text))
	b.WriteString("&body=")
	b.WriteString(Encode("### Panic report\n" + report))
	return b.String()
}

// Encode percent-encodes s for use in a URL query component.
// Only ASCII letters, digits, and "-_.~" are left as is; space is encoded as
// "%20", not "+".
func Encode(s string) string {
	// QueryEscape leaves the same unreserved set alone and already escapes "+",
	// so the only difference is the encoding of spaces.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

type noReporter struct {
	logger *log.Logger
}

// NoReporter returns a Reporter that should never be used.
// AppInfo's with NoReporter do not offer the "Report crash" action, the same
// as a nil Reporter.
// If it is called anyways it logs the mistake to logger (or the standard
// logger if nil) and returns an empty URL.
func NoReporter(logger *log.Logger) Reporter {
	return noReporter{logger: logger}
}

func (r noReporter) ReportURL(Reason, string) string {
	logger := r.logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Println("crashdialog: ReportURL called on NoReporter, this is a bug in the application")
	return ""
}

// Reporting returns whether r is an actual reporter.
func Reporting(r Reporter) bool {
	switch f := r.(type) {
	case nil, noReporter:
		return false
	case ReporterFunc:
		return f != nil
	}
	return true
}
