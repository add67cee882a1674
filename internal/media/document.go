package media

import "strings"

// Document is the page-addressable view of a PDF's extracted text.
// Text extractors emit a form feed between pages, so the page sequence
// is the full text split on \f. A text without form feeds is a
// single-page document.
type Document struct {
	pages []string
}

// NewDocument builds a Document from the backend's full_text field.
func NewDocument(fullText string) *Document {
	return &Document{pages: strings.Split(fullText, "\f")}
}

// PageCount returns the number of pages. Never zero: even an empty
// text yields one empty page.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// ClampPage maps any requested page index onto [0, PageCount).
// Out-of-range requests clamp to the nearest bound, never wrap.
func (d *Document) ClampPage(index int) int {
	if index < 0 {
		return 0
	}
	if index >= len(d.pages) {
		return len(d.pages) - 1
	}
	return index
}

// Page returns the text of the page at the given index, clamping the
// index first.
func (d *Document) Page(index int) string {
	return d.pages[d.ClampPage(index)]
}
