// Package util holds small shared helpers with no domain knowledge.
package util

import (
	"fmt"
	"strings"
)

// NormalizeHandle canonicalizes a user handle: surrounding whitespace is
// trimmed, letters are lowercased, and inner whitespace runs collapse to a
// single underscore.
func NormalizeHandle(handle string) string {
	fields := strings.Fields(handle)
	if len(fields) == 0 {
		return ""
	}

	return strings.ToLower(strings.Join(fields, "_"))
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
