package parser

import (
	"slices"
	"strings"
)

// BlockSpec describes where a repeated sub-record lives.
type BlockSpec struct {
	// Dialects are container tags in priority order. The first one that
	// yields at least one block is used exclusively.
	Dialects []Tag
	// Fallback is the generic container tried only when no dialect matched.
	Fallback *Tag
	// Exclude lists wrapper tags: a fallback block whose content starts with
	// one of them is a wrapper, not a record, and is searched for records instead.
	Exclude []string
}

// Segment returns the inner text of every block matching spec, in document order.
func Segment(doc string, spec BlockSpec) []string {
	for _, d := range spec.Dialects {
		if blocks := elements(doc, d); len(blocks) > 0 {
			return blocks
		}
	}
	if spec.Fallback == nil {
		return nil
	}
	return fallbackBlocks(doc, *spec.Fallback, spec.Exclude)
}

func fallbackBlocks(doc string, tag Tag, exclude []string) []string {
	var out []string
	for _, b := range elements(doc, tag) {
		if startsWithTag(b, exclude) {
			out = append(out, fallbackBlocks(b, tag, exclude)...)
			continue
		}
		out = append(out, b)
	}
	return out
}

// SegmentFirst returns the inner text of the first element found for the
// first container tag, in priority order, that is present at all.
func SegmentFirst(doc string, containers ...Tag) (string, bool) {
	for _, c := range containers {
		if blocks := elements(doc, c); len(blocks) > 0 {
			return blocks[0], true
		}
	}
	return "", false
}

// span locates one element: outer bounds include its tags, inner bounds
// only its content.
type span struct {
	outerStart, innerStart, innerEnd, outerEnd int
}

// elements returns the inner text of every outermost element of tag. Nested
// elements of the same name stay inside their parent block; self-closing and
// unterminated elements yield nothing.
func elements(doc string, tag Tag) []string {
	spans := elementSpans(doc, tag)
	blocks := make([]string, 0, len(spans))
	for _, s := range spans {
		blocks = append(blocks, doc[s.innerStart:s.innerEnd])
	}
	return blocks
}

// elementSpans pairs every closing tag with the nearest open one, so an
// opening tag that is never closed does not absorb the elements after it.
// Only outermost pairs are returned, in document order.
func elementSpans(doc string, tag Tag) []span {
	var (
		open  []span
		pairs []span
	)
	for _, loc := range tag.element.FindAllStringSubmatchIndex(doc, -1) {
		closing := loc[3] > loc[2]
		if !closing {
			if strings.HasSuffix(strings.TrimSpace(doc[loc[4]:loc[5]]), "/") {
				continue
			}
			open = append(open, span{outerStart: loc[0], innerStart: loc[1]})
			continue
		}
		if len(open) == 0 {
			continue
		}
		s := open[len(open)-1]
		open = open[:len(open)-1]
		s.innerEnd, s.outerEnd = loc[0], loc[1]
		pairs = append(pairs, s)
	}

	slices.SortFunc(pairs, func(a, b span) int { return a.outerStart - b.outerStart })

	outermost := pairs[:0]
	end := -1
	for _, p := range pairs {
		if p.outerStart < end {
			continue
		}
		outermost = append(outermost, p)
		end = p.outerEnd
	}
	return outermost
}

// withoutElements returns doc with every outermost element of the given tags cut out.
func withoutElements(doc string, tags ...Tag) string {
	for _, t := range tags {
		spans := elementSpans(doc, t)
		if len(spans) == 0 {
			continue
		}
		var b strings.Builder
		last := 0
		for _, s := range spans {
			b.WriteString(doc[last:s.outerStart])
			last = s.outerEnd
		}
		b.WriteString(doc[last:])
		doc = b.String()
	}
	return doc
}

func startsWithTag(block string, names []string) bool {
	head := strings.ToLower(strings.TrimSpace(block))
	if !strings.HasPrefix(head, "<") {
		return false
	}
	head = strings.TrimSpace(head[1:])
	for _, n := range names {
		n = strings.ToLower(n)
		if !strings.HasPrefix(head, n) {
			continue
		}
		rest := head[len(n):]
		if rest == "" || rest[0] == '>' || rest[0] == '/' || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r' {
			return true
		}
	}
	return false
}
