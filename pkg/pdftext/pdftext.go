// Package pdftext pulls plain text out of PDF bytes using an ordered
// cascade of extraction strategies. Strategy order matters: structured
// parsers run before the low-level byte scanners so the cascade only
// degrades to lossy extraction when the document model is unreadable.
package pdftext

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// MaxDocumentSize is the upload cap enforced before any extraction runs.
const MaxDocumentSize = 10 << 20 // 10 MiB

// Document is the raw input to the cascade.
type Document struct {
	Data      []byte
	MediaType string
	Filename  string
}

func (d Document) Size() int { return len(d.Data) }

// Extracted is accepted working text plus the strategy that produced it.
type Extracted struct {
	Text     string
	Strategy string
}

// Strategy is one algorithm for extracting text from PDF bytes. Extract
// returns best-effort text; the engine applies Threshold and the quality
// floor to decide acceptance.
type Strategy interface {
	Name() string
	Threshold() int
	Extract(ctx context.Context, data []byte) (string, error)
}

// ExtractionError is returned when every strategy failed or produced text
// below the quality floor. It is the only terminal pipeline error and maps
// to a user-facing "unreadable document" response.
type ExtractionError struct {
	Attempts []string
}

func (e *ExtractionError) Error() string {
	return "could not extract text from PDF: it may be scanned, image-based, or password-protected"
}

// Details returns the per-strategy failure summaries for logging.
func (e *ExtractionError) Details() string {
	return strings.Join(e.Attempts, "; ")
}

// ErrDocumentTooLarge is returned when a document exceeds MaxDocumentSize.
// Callers should reject oversized uploads before extraction; this is the
// engine's own guard.
var ErrDocumentTooLarge = fmt.Errorf("document exceeds %d bytes", MaxDocumentSize)

// Engine drives the strategy cascade.
type Engine struct {
	strategies      []Strategy
	strategyTimeout time.Duration
	minLength       int
	minAlphaRatio   float64
}

// Option configures an Engine.
type Option func(*Engine)

func WithStrategies(ss ...Strategy) Option {
	return func(e *Engine) { e.strategies = ss }
}

func WithStrategyTimeout(d time.Duration) Option {
	return func(e *Engine) { e.strategyTimeout = d }
}

func WithQualityFloor(minLength int, minAlphaRatio float64) Option {
	return func(e *Engine) {
		e.minLength = minLength
		e.minAlphaRatio = minAlphaRatio
	}
}

// NewEngine returns an engine with the default cascade: structured parser,
// page-tree parser, byte-pattern scanner, stream-object scanner.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		strategies: []Strategy{
			structuredStrategy{},
			pageTreeStrategy{},
			byteScanStrategy{},
			streamScanStrategy{},
		},
		strategyTimeout: 30 * time.Second,
		minLength:       50,
		minAlphaRatio:   0.30,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the cascade and returns the first strategy output that
// clears both the strategy threshold and the absolute quality floor.
func (e *Engine) Extract(ctx context.Context, doc Document) (Extracted, error) {
	if doc.Size() > MaxDocumentSize {
		return Extracted{}, ErrDocumentTooLarge
	}
	if doc.Size() == 0 {
		return Extracted{}, &ExtractionError{Attempts: []string{"empty document"}}
	}

	var attempts []string
	for _, s := range e.strategies {
		text, err := e.runStrategy(ctx, s, doc.Data)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", s.Name(), err))
			if ctx.Err() != nil {
				// caller went away; local strategies may finish but no one is listening
				return Extracted{}, ctx.Err()
			}
			continue
		}
		text = strings.TrimSpace(text)
		if len(text) < s.Threshold() {
			attempts = append(attempts, fmt.Sprintf("%s: insufficient text (%d chars)", s.Name(), len(text)))
			continue
		}
		if len(text) < e.minLength {
			attempts = append(attempts, fmt.Sprintf("%s: below quality floor (%d < %d chars)", s.Name(), len(text), e.minLength))
			continue
		}
		if r := alphaRatio(text); r < e.minAlphaRatio {
			attempts = append(attempts, fmt.Sprintf("%s: alphabetic ratio too low (%.2f)", s.Name(), r))
			continue
		}
		return Extracted{Text: text, Strategy: s.Name()}, nil
	}
	return Extracted{}, &ExtractionError{Attempts: attempts}
}

// runStrategy bounds a strategy with the per-call timeout. The structured
// parsers depend on page decoding that may never return for malformed
// input, so the work runs in its own goroutine and is abandoned on timeout.
func (e *Engine) runStrategy(ctx context.Context, s Strategy, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.strategyTimeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		text, err := s.Extract(ctx, data)
		ch <- result{text, err}
	}()

	select {
	case r := <-ch:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// alphaRatio is the share of alphabetic characters among non-whitespace
// ones. Garbage decodes of binary streams score low here.
func alphaRatio(s string) float64 {
	var letters, total int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}
