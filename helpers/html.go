package helpers

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTag     = regexp.MustCompile(`<[^>]*>`)
	htmlComment = regexp.MustCompile(`<!--[\s\S]*?-->`)
	lineBreak   = regexp.MustCompile(`<br\s*/?>|</(?:p|div|li)>`)
	multiSpace  = regexp.MustCompile(`\s+`)
)

// StripHTML removes markup from a cell value: comments and tags go, block
// and line-break tags become spaces, and character entities are decoded.
// Field values carry no line structure, so whitespace collapses to single
// spaces. Metadata exported from web content systems often has markup in
// its description cells.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") && !strings.Contains(s, "&") {
		return s
	}

	s = htmlComment.ReplaceAllString(s, "")
	s = lineBreak.ReplaceAllString(s, " ")
	s = htmlTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
