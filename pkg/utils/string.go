// Package utils provides common utility functions.
package utils

import "strings"

// utf8BOM is the byte order mark spreadsheet exports prepend to CSV files.
const utf8BOM = "\uFEFF"

// CleanHeader strips a leading BOM, surrounding whitespace and quotes from a header name.
func CleanHeader(h string) string {
	h = strings.TrimPrefix(h, utf8BOM)
	h = strings.TrimSpace(h)

	return strings.Trim(h, `"`)
}

// HasEmpty reports whether any field is the empty string.
func HasEmpty(fields []string) bool {
	for _, f := range fields {
		if f == "" {
			return true
		}
	}

	return false
}
