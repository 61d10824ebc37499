// Package usecase orchestrates the parse pipeline: extraction, LLM
// parsing, and reconciliation into a complete record.
package usecase

import (
	"context"
	"log"

	"resume-parser/internal/domain"
	"resume-parser/internal/model"
	"resume-parser/internal/textproc"
	"resume-parser/pkg/ai"
	"resume-parser/pkg/pdftext"
)

// Extractor produces working text from PDF bytes.
type Extractor interface {
	Extract(ctx context.Context, doc pdftext.Document) (pdftext.Extracted, error)
}

// Completer is the LLM boundary. A nil Completer means heuristics-only
// operation.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Processor struct {
	extractor    Extractor
	llm          Completer
	promptBudget int
}

func NewProcessor(extractor Extractor, llm Completer, promptBudget int) *Processor {
	if promptBudget <= 0 {
		promptBudget = ai.DefaultPromptBudget
	}
	return &Processor{extractor: extractor, llm: llm, promptBudget: promptBudget}
}

// Parse runs a document through the pipeline. Extraction failure is the
// only terminal error; LLM failures of any kind degrade to heuristic
// parsing and still yield a complete record.
func (p *Processor) Parse(ctx context.Context, run *domain.ParseRun, doc pdftext.Document) (*model.Record, error) {
	run.SetStatus(domain.StatusExtracting)
	extracted, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		run.Fail(err)
		return nil, err
	}
	run.Strategy = extracted.Strategy
	log.Printf("processor: run=%s extracted %d chars via %s", run.ID, len(extracted.Text), extracted.Strategy)

	text := textproc.Normalize(extracted.Text)

	run.SetStatus(domain.StatusParsing)
	var parsed map[string]interface{}
	if p.llm != nil {
		prompt := ai.BuildPrompt(text, p.promptBudget)
		if prompt.Truncated {
			log.Printf("processor: run=%s prompt truncated to %d chars", run.ID, p.promptBudget)
		}
		completion, err := p.llm.Complete(ctx, prompt.Text)
		if err != nil {
			log.Printf("processor: run=%s llm call failed, falling back to heuristics: %v", run.ID, err)
		} else {
			parsed, err = ai.ParseCompletion(completion)
			if err != nil {
				log.Printf("processor: run=%s completion unparseable, falling back to heuristics: %v", run.ID, err)
				parsed = nil
			} else {
				run.LLMUsed = true
			}
		}
	}

	rec := Reconcile(parsed, text)

	// the reconciler is total, so a schema failure here is a bug, not bad input
	if err := model.ValidateRecord(rec); err != nil {
		log.Printf("processor: run=%s reconciled record failed schema validation: %v", run.ID, err)
	}

	run.Complete()
	return rec, nil
}
