// Copyright 2021 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package escape_test

import (
	"strconv"
	"testing"

	"golang.org/x/text/transform"

	"mellium.im/crashdialog/internal/escape"
)

var escapeTests = [...]struct {
	in, out string
}{
	0: {},
	1: {in: `["abc"][""][][red]`, out: `["abc"[][""[][][red[]`},
	2: {in: `[""[[[]`, out: `[""[[[[]`},
	3: {in: `["a[bc"]`, out: `["a[bc"[]`},
	4: {in: `["a]bc"]`, out: `["a[]bc"]`},
	5: {in: `index out of range [5] with length 3`, out: `index out of range [5[] with length 3`},
	6: {in: `[ünï]`, out: `[ünï]`},
}

func TestEscape(t *testing.T) {
	for i, tc := range escapeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			out, _, err := transform.String(escape.Transformer(), tc.in)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if out != tc.out {
				t.Errorf("want=`%s`, got=`%s`", tc.out, out)
			}
			if s := escape.String(tc.in); s != tc.out {
				t.Errorf("String: want=`%s`, got=`%s`", tc.out, s)
			}
		})
	}
}

const benchEscape = `["abc"][""][][red][""[[[]["a[bc"]["a]bc"]`

func BenchmarkTransform(b *testing.B) {
	t := escape.Transformer()
	for i := 0; i < b.N; i++ {
		_, _, _ = transform.String(t, benchEscape)
	}
}
