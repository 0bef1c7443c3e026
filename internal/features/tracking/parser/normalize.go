// Package parser turns loosely structured carrier XML into tracking records.
//
// It does not build a document tree. Carrier schemas drift between API
// revisions (tags renamed, namespaces added or stripped, fields moved between
// flat and nested forms), so every field is located through an ordered list
// of tag-name rules and every repeated sub-record through an ordered list of
// container tags.
package parser

import "regexp"

// qualifiedTag matches the start of an opening or closing tag whose name
// carries one or more namespace prefixes.
var qualifiedTag = regexp.MustCompile(`<(/?)(?:[A-Za-z_][\w.\-]*:)+([A-Za-z_][\w.\-]*)`)

// NormalizeNamespaces rewrites every prefix:local tag name to local, for
// opening and closing tags alike. Attributes and text are left untouched and
// malformed input is passed through. Applying it twice is the same as
// applying it once.
func NormalizeNamespaces(doc string) string {
	return qualifiedTag.ReplaceAllString(doc, "<$1$2")
}
