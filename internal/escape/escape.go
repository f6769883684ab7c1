// Package escape provides HTML escaping for the two emission contexts
// the renderer distinguishes: element body text and attribute values.
package escape

import "strings"

// Text escapes a string for element body context.
// The ampersand must be replaced first so entities produced by the
// later replacements are not processed again.
func Text(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// Attr escapes a string for use inside a quoted attribute value.
// Both quote styles are covered so the caller may emit either.
func Attr(s string) string {
	s = Text(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
