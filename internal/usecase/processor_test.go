package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-parser/internal/domain"
	"resume-parser/pkg/pdftext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	out pdftext.Extracted
	err error
}

func (f fakeExtractor) Extract(_ context.Context, _ pdftext.Document) (pdftext.Extracted, error) {
	return f.out, f.err
}

type fakeCompleter struct {
	out   string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.out, f.err
}

func testDoc() pdftext.Document {
	return pdftext.Document{Data: []byte("%PDF"), Filename: "resume.pdf"}
}

func TestProcessorHappyPath(t *testing.T) {
	ex := fakeExtractor{out: pdftext.Extracted{Text: "John Smith\njohn@x.co", Strategy: "structured"}}
	llm := &fakeCompleter{out: `{"name": "Jane Roe", "title": "Engineer"}`}
	p := NewProcessor(ex, llm, 0)

	run := domain.NewRun("resume.pdf", 4)
	rec, err := p.Parse(context.Background(), run, testDoc())
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", rec.Name)
	assert.Equal(t, "Engineer", rec.Title)
	assert.Equal(t, domain.StatusCompleted, run.Status)
	assert.Equal(t, "structured", run.Strategy)
	assert.True(t, run.LLMUsed)
}

func TestProcessorExtractionFailureIsTerminal(t *testing.T) {
	ex := fakeExtractor{err: &pdftext.ExtractionError{Attempts: []string{"structured: boom"}}}
	llm := &fakeCompleter{out: `{}`}
	p := NewProcessor(ex, llm, 0)

	run := domain.NewRun("resume.pdf", 4)
	_, err := p.Parse(context.Background(), run, testDoc())
	var extErr *pdftext.ExtractionError
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, domain.StatusFailed, run.Status)
	assert.Equal(t, 0, llm.calls, "llm must not run without extracted text")
}

func TestProcessorLLMFailureFallsBack(t *testing.T) {
	ex := fakeExtractor{out: pdftext.Extracted{Text: "John Smith\njohn@x.co", Strategy: "bytescan"}}
	llm := &fakeCompleter{err: errors.New("rate limited")}
	p := NewProcessor(ex, llm, 0)

	run := domain.NewRun("resume.pdf", 4)
	rec, err := p.Parse(context.Background(), run, testDoc())
	require.NoError(t, err)
	assert.Equal(t, "John Smith", rec.Name)
	assert.Equal(t, "john@x.co", rec.Email)
	assert.False(t, run.LLMUsed)
	assert.Equal(t, domain.StatusCompleted, run.Status)
}

func TestProcessorUnparseableCompletionFallsBack(t *testing.T) {
	ex := fakeExtractor{out: pdftext.Extracted{Text: "John Smith\njohn@x.co", Strategy: "structured"}}
	llm := &fakeCompleter{out: "Sorry, I cannot help with that."}
	p := NewProcessor(ex, llm, 0)

	run := domain.NewRun("resume.pdf", 4)
	rec, err := p.Parse(context.Background(), run, testDoc())
	require.NoError(t, err)
	assert.Equal(t, "John Smith", rec.Name)
	assert.False(t, run.LLMUsed)
}

func TestProcessorNoLLMConfigured(t *testing.T) {
	ex := fakeExtractor{out: pdftext.Extracted{Text: "John Smith\njohn@x.co", Strategy: "structured"}}
	p := NewProcessor(ex, nil, 0)

	run := domain.NewRun("resume.pdf", 4)
	rec, err := p.Parse(context.Background(), run, testDoc())
	require.NoError(t, err)
	assert.Equal(t, "John Smith", rec.Name)
	assert.False(t, run.LLMUsed)
}
