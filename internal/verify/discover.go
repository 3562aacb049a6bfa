// Package verify implements test case discovery, artifact pairing, and
// verbatim comparison of reference and produced outputs.
package verify

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks the results directory tree and collects one identifier per
// regular file: the portion of the file name before the first dot. The
// returned slice is sorted lexicographically ascending (case-sensitive
// ordinal order). Duplicates are kept when multiple files share a base name
// across subdirectories.
//
// Walk errors are ignored: a results directory that does not exist or
// cannot be read yields an empty slice and no error. Callers that want a
// diagnostic for that case must stat the directory themselves.
func Discover(resultsDir string) []string {
	var ids []string
	_ = filepath.WalkDir(resultsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		id, _, _ := strings.Cut(d.Name(), ".")
		ids = append(ids, id)
		return nil
	})
	sort.Strings(ids)
	return ids
}

// FormatIDList renders identifiers as the single-line collection literal
// that opens every report: ['a', 'b']. An empty list renders as [].
func FormatIDList(ids []string) string {
	if len(ids) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(id)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}
