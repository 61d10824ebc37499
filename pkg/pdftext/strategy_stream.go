package pdftext

import (
	"bytes"
	"compress/zlib"
	"context"
	"io"
	"regexp"
	"strings"
)

// streamScanStrategy matches stream...endstream byte spans directly,
// inflating FlateDecode data when possible, and scans the result for
// parenthesized literals. Weakest pass, last resort.
type streamScanStrategy struct{}

func (streamScanStrategy) Name() string   { return "streamscan" }
func (streamScanStrategy) Threshold() int { return 50 }

var streamSpan = regexp.MustCompile(`(?s)stream\r?\n(.*?)endstream`)

func (streamScanStrategy) Extract(_ context.Context, data []byte) (string, error) {
	var sb strings.Builder
	for _, m := range streamSpan.FindAllSubmatch(data, -1) {
		body := m[1]
		if inflated, err := inflate(body); err == nil {
			body = inflated
		}
		for _, lm := range innerLiterals.FindAllSubmatch(body, -1) {
			sb.Write(lm[1])
			sb.WriteByte(' ')
		}
	}
	combined := octalEscape.ReplaceAllString(sb.String(), "")
	combined = charEscape.ReplaceAllString(combined, " ")
	return strings.TrimSpace(stripNonPrintable(combined)), nil
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	// malformed tails are common; keep whatever inflated cleanly
	out, err := io.ReadAll(zr)
	if len(out) == 0 && err != nil {
		return nil, err
	}
	return out, nil
}
