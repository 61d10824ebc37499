package pdftext

import (
	"context"
	"regexp"
	"strings"
)

// byteScanStrategy treats the raw bytes as a one-byte-per-character string
// and pulls text with patterns matching PDF text-showing operators and
// parenthesized literals. Lossy, but works on documents whose object
// structure both parsers above failed to read.
type byteScanStrategy struct{}

func (byteScanStrategy) Name() string   { return "bytescan" }
func (byteScanStrategy) Threshold() int { return 50 }

var (
	byteScanPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)BT\s*(.*?)\s*ET`),                // text objects
		regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)\s*Tj`),        // Tj operands
		regexp.MustCompile(`(?s)\[(.*?)\]\s*TJ`),                 // TJ arrays
		regexp.MustCompile(`\(([^()]{3,})\)`),                    // bare literals
	}
	octalEscape   = regexp.MustCompile(`\\[0-7]{3}`)
	charEscape    = regexp.MustCompile(`\\[rnt]`)
	innerLiterals = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)`)
)

func (byteScanStrategy) Extract(_ context.Context, data []byte) (string, error) {
	raw := string(data)

	var sb strings.Builder
	for _, pat := range byteScanPatterns {
		for _, m := range pat.FindAllStringSubmatch(raw, -1) {
			piece := m[1]
			// BT..ET and TJ captures still contain nested (…) literals
			if inner := innerLiterals.FindAllStringSubmatch(piece, -1); inner != nil {
				parts := make([]string, 0, len(inner))
				for _, im := range inner {
					parts = append(parts, im[1])
				}
				piece = strings.Join(parts, " ")
			}
			sb.WriteString(piece)
			sb.WriteByte(' ')
		}
	}

	combined := sb.String()
	combined = octalEscape.ReplaceAllString(combined, "")
	combined = charEscape.ReplaceAllString(combined, " ")
	combined = stripNonPrintable(combined)
	return strings.TrimSpace(combined), nil
}

// stripNonPrintable keeps printable ASCII only and collapses the gaps.
func stripNonPrintable(s string) string {
	var sb strings.Builder
	lastSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7e {
			c = ' '
		}
		if c == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
