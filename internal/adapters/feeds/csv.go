// Package feeds contains filesystem adapters for the export feeds: CSV and
// JSON decoding plus discovery of the newest export per feed kind.
package feeds

import (
	"bufio"
	"encoding/csv"
	"os"
	"strings"
)

// openCSV opens path as a header-keyed CSV export. A UTF-8 BOM is stripped
// so the first header name survives intact, and ragged rows are tolerated.
func openCSV(path string) (*csv.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	br := bufio.NewReader(f)
	stripUTF8BOM(br)

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	return r, f.Close, nil
}

func stripUTF8BOM(r *bufio.Reader) {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
}

// headerIndex maps trimmed header names to their column positions.
func headerIndex(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, name := range header {
		m[strings.TrimSpace(name)] = i
	}
	return m
}

// field returns the named column from row, or "" when the export does not
// carry the column or the row is too short.
func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
