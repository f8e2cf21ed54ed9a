package export

import "strings"

// SanitizeName makes a record field safe for use in a filename: spaces
// become underscores and path separators become hyphens. The
// transformation is idempotent.
func SanitizeName(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	return s
}

// Filename derives the output filename for a record. The description is
// appended with a "+" separator when present. Two records sanitizing to
// the same filename silently overwrite each other; that matches the
// long-standing behavior and is documented rather than prevented.
func Filename(name, description string, format Format) string {
	stem := SanitizeName(name)
	if description != "" {
		stem += "+" + SanitizeName(description)
	}
	return stem + "." + string(format)
}
