// Copyright 2024 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package crashdialog

// NotAString is shown in place of a panic payload that has no text form.
const NotAString = "[PAYLOAD IS NOT A STRING]"

// Reason is the displayable form of a panic payload.
// If Valid is false the payload could not be displayed and Text is empty.
type Reason struct {
	Text  string
	Valid bool
}

// String returns the reason text or the NotAString placeholder.
func (r Reason) String() string {
	if !r.Valid {
		return NotAString
	}
	return r.Text
}

// Extract returns the text of a panic payload.
//
// Only payloads that already are text (a string or a byte slice) are
// recognized; any other value, including errors and nil, results in an invalid
// Reason.
func Extract(v any) Reason {
	switch p := v.(type) {
	case string:
		return Reason{Text: p, Valid: true}
	case []byte:
		return Reason{Text: string(p), Valid: true}
	}
	return Reason{}
}
