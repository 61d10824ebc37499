package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// structuredStrategy walks the document's internal text-object model via
// the pdf reader, honoring reading order. First and preferred strategy.
type structuredStrategy struct{}

func (structuredStrategy) Name() string   { return "structured" }
func (structuredStrategy) Threshold() int { return 20 }

func (structuredStrategy) Extract(_ context.Context, data []byte) (text string, err error) {
	// The reader panics on some malformed xref tables; treat that as a
	// strategy failure so the cascade continues.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reader panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}
