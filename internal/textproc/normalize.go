// Package textproc cleans extracted resume text and pulls identity fields
// from it with regex/keyword heuristics, independent of any LLM.
package textproc

import (
	"regexp"
	"strings"
)

var punctReplacer = strings.NewReplacer(
	"\u00a0", " ", // non-breaking space
	"\u2018", "'", "\u2019", "'", // smart apostrophes
	"\u201c", `"`, "\u201d", `"`, // smart quotes
	"\u2013", "-", // en dash
	"\u2014", "--", // em dash
	"\u2022", "-", // bullet
)

var (
	horizontalRuns = regexp.MustCompile(`[ \t]+`)
	spacedNewline  = regexp.MustCompile(` *\n *`)
	newlineRuns    = regexp.MustCompile(`\n{3,}`)
	strayLetter    = regexp.MustCompile(` [A-Za-z] `)
)

// Normalize turns raw extracted text into canonical plain text: ASCII
// punctuation, no control characters, single spaces, paragraph breaks as
// one blank line. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	s := punctReplacer.Replace(text)

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	// strip control characters but keep line breaks
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || r >= 0x20 && r != 0x7f {
			sb.WriteRune(r)
		}
	}
	s = sb.String()

	s = horizontalRuns.ReplaceAllString(s, " ")
	s = spacedNewline.ReplaceAllString(s, "\n")
	s = newlineRuns.ReplaceAllString(s, "\n\n")

	// Isolated single letters are PDF kerning artifacts. Only tokens that
	// are exactly one letter flanked by spaces are removed; initials like
	// "J." and letters at line boundaries survive. Removal can merge two
	// spaces and expose a new stray letter, so run to a fixed point.
	for {
		next := horizontalRuns.ReplaceAllString(strayLetter.ReplaceAllString(s, " "), " ")
		if next == s {
			break
		}
		s = next
	}

	return strings.TrimSpace(s)
}
