package parser

import (
	"regexp"
	"strings"
)

// Tag is a compiled match rule for one historically observed tag name.
// Matching is case-insensitive and tolerates whitespace and attributes
// inside the tag.
type Tag struct {
	name    string
	leaf    *regexp.Regexp
	element *regexp.Regexp
}

// NewTag compiles the match rules for name.
func NewTag(name string) Tag {
	q := regexp.QuoteMeta(name)
	return Tag{
		name: name,
		// <name attr="x">value</name>, never a self-closing <name/>
		leaf: regexp.MustCompile(`(?i)<\s*` + q + `(?:\s[^>]*[^/>])?\s*>([^<]*)<\s*/\s*` + q + `\s*>`),
		// any opening or closing tag of name; group 1 marks closing, group 2 holds attributes
		element: regexp.MustCompile(`(?i)<\s*(/?)\s*` + q + `((?:\s[^>]*)?)>`),
	}
}

// Tags compiles an ordered rule list.
func Tags(names ...string) []Tag {
	out := make([]Tag, 0, len(names))
	for _, n := range names {
		out = append(out, NewTag(n))
	}
	return out
}

// Name returns the tag name the rule targets.
func (t Tag) Name() string {
	return t.name
}

var entities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

func cleanValue(raw string) string {
	return strings.TrimSpace(entities.Replace(strings.TrimSpace(raw)))
}

// values returns every non-empty value of the rule in document order.
func (t Tag) values(doc string) []string {
	var out []string
	for _, m := range t.leaf.FindAllStringSubmatch(doc, -1) {
		if v := cleanValue(m[1]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// first returns the first non-empty value of the rule in document order.
func (t Tag) first(doc string) (string, bool) {
	for _, m := range t.leaf.FindAllStringSubmatch(doc, -1) {
		if v := cleanValue(m[1]); v != "" {
			return v, true
		}
	}
	return "", false
}

// Extract returns the value of the first rule, in priority order, that
// yields a non-empty value. Later rules are not consulted once one matched.
// No match is a normal outcome for optional fields.
func Extract(doc string, rules ...Tag) (string, bool) {
	for _, r := range rules {
		if v, ok := r.first(doc); ok {
			return v, true
		}
	}
	return "", false
}

// ExtractAll returns every non-empty value of the first rule that yields at
// least one, in document order.
func ExtractAll(doc string, rules ...Tag) []string {
	for _, r := range rules {
		if vs := r.values(doc); len(vs) > 0 {
			return vs
		}
	}
	return nil
}

// value is Extract without the presence flag.
func value(doc string, rules []Tag) string {
	v, _ := Extract(doc, rules...)
	return v
}
