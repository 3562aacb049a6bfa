// Package textcompare provides byte-exact comparison helpers for paired
// text artifacts.
//
// The comparison is strict: whitespace and line endings are significant,
// and no normalization of any kind is applied. FirstDiff exists purely to
// give a human-readable location for a mismatch that Equal already decided.
package textcompare

import (
	"bytes"
	"fmt"
	"strings"
)

// Equal reports whether expected and actual are byte-for-byte identical.
func Equal(expected, actual []byte) bool {
	return bytes.Equal(expected, actual)
}

// FirstDiff describes the first position at which expected and actual
// differ. It returns an empty string when the inputs are identical.
//
// Positions are 1-based lines and columns counted in bytes. When one input
// is a strict prefix of the other, the message reports the length
// difference instead of a byte mismatch.
func FirstDiff(expected, actual string) string {
	if expected == actual {
		return ""
	}

	line, col := 1, 1
	limit := len(expected)
	if len(actual) < limit {
		limit = len(actual)
	}

	for i := 0; i < limit; i++ {
		if expected[i] != actual[i] {
			return fmt.Sprintf("line %d, column %d: expected %q, got %q",
				line, col, lineAt(expected, i), lineAt(actual, i))
		}
		if expected[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	if len(expected) > len(actual) {
		return fmt.Sprintf("line %d, column %d: produced output ends early (%d bytes missing)",
			line, col, len(expected)-len(actual))
	}
	return fmt.Sprintf("line %d, column %d: produced output continues past expected (%d extra bytes)",
		line, col, len(actual)-len(expected))
}

// lineAt returns the full line containing byte offset i, without the
// trailing newline.
func lineAt(s string, i int) string {
	start := strings.LastIndexByte(s[:i], '\n') + 1
	end := strings.IndexByte(s[i:], '\n')
	if end == -1 {
		return s[start:]
	}
	return s[start : i+end]
}
