package media

import (
	"sort"
	"strings"
)

// Span is a half-open byte range [Start, End) inside a page's text.
type Span struct {
	Start int
	End   int
}

// FindMatches locates every literal occurrence of every whitespace
// token of the selection inside the page text. Tokens are matched as
// plain strings, not patterns; a token with no occurrence contributes
// nothing and is not an error. The search is recomputed from scratch
// on every call because the selection can change between renders.
func FindMatches(pageText, selection string) []Span {
	var spans []Span
	for _, token := range strings.Fields(selection) {
		from := 0
		for {
			idx := strings.Index(pageText[from:], token)
			if idx < 0 {
				break
			}
			start := from + idx
			spans = append(spans, Span{Start: start, End: start + len(token)})
			from = start + len(token)
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	return spans
}

// MergeSpans collapses overlapping or adjacent spans so a renderer can
// apply styling without nesting. Input must be sorted by Start.
func MergeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	merged := []Span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
