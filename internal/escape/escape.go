// Copyright 2021 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package escape contains a transformer that escapes tview color and region
// tags so that arbitrary text, such as a panic payload, is displayed verbatim.
package escape // import "mellium.im/crashdialog/internal/escape"

import (
	"strings"

	"github.com/mpvl/textutil"
	"golang.org/x/text/transform"
)

// tagRewriter inserts a "[" before the closing bracket of anything that tview
// could interpret as a tag.
type tagRewriter struct {
	open    bool
	hasBody bool
}

func isTagRune(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		strings.ContainsRune(`_,;: -."#`, r)
}

func (tr *tagRewriter) Rewrite(c textutil.State) {
	r, _ := c.ReadRune()
	switch {
	case r == '[':
		if !tr.open {
			tr.open = true
			tr.hasBody = false
		}
	case r == ']':
		if tr.open && tr.hasBody {
			c.WriteRune('[')
		}
		tr.open = false
	case !isTagRune(r):
		tr.open = false
	case tr.open:
		tr.hasBody = true
	}
	c.WriteRune(r)
}

func (tr *tagRewriter) Reset() {
	tr.open = false
	tr.hasBody = false
}

// Transformer returns a transformer that escapes color and/or region tags.
func Transformer() transform.Transformer {
	return textutil.NewTransformer(&tagRewriter{})
}

// String escapes s.
// If the transformation fails the original string is returned with all
// brackets removed so that nothing can be interpreted as a tag.
func String(s string) string {
	out, _, err := transform.String(Transformer(), s)
	if err != nil {
		return strings.NewReplacer("[", "(", "]", ")").Replace(s)
	}
	return out
}
