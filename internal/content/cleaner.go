// Package content normalizes fetched reference prose and synthesizes
// filler paragraphs for failed fetches.
package content

import (
	"regexp"
	"strings"
)

// MinUsefulLength is the shortest cleaned corpus worth extracting
// questions from. Anything shorter is replaced by filler text.
const MinUsefulLength = 200

var (
	citationRe      = regexp.MustCompile(`\[\d+\]`)
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)
	specialCharRe   = regexp.MustCompile(`[^\w\s.,!?;:-]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	punctSpacingRe  = regexp.MustCompile(`\s*([.,!?;:])\s*`)
)

// Clean normalizes raw article text into a candidate corpus: citation
// markers and parenthetical asides are stripped, characters outside
// word characters and basic punctuation are removed, whitespace runs
// collapse to a single space, and each punctuation mark is followed by
// exactly one space.
func Clean(text string) string {
	text = citationRe.ReplaceAllString(text, "")
	text = parentheticalRe.ReplaceAllString(text, "")
	text = specialCharRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = punctSpacingRe.ReplaceAllString(text, "$1 ")
	return strings.TrimSpace(text)
}
