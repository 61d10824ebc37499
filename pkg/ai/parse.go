package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSON means the completion contained no {...} span at all.
var ErrNoJSON = errors.New("no JSON found in completion")

// ParseError carries the JSON parser error plus a snippet of the repaired
// text for diagnostics.
type ParseError struct {
	Err     error
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("completion not parseable after repair: %v (snippet: %s)", e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	fenceOpen     = regexp.MustCompile("(?i)```json\\s*")
	fenceBare     = regexp.MustCompile("```")
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
	bareKey       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	singleQuoted  = regexp.MustCompile(`:\s*'([^']*)'`)
)

// ParseCompletion strips formatting artifacts from a raw LLM completion,
// locates the JSON payload, repairs common malformations, and parses it.
// This is a conservative repair pass, not a JSON5 parser: if strict
// parsing still fails after repair, the caller falls back to heuristics.
func ParseCompletion(text string) (map[string]interface{}, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = fenceOpen.ReplaceAllString(cleaned, "")
	cleaned = fenceBare.ReplaceAllString(cleaned, "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, ErrNoJSON
	}
	cleaned = cleaned[start : end+1]

	cleaned = trailingComma.ReplaceAllString(cleaned, "${1}")
	cleaned = bareKey.ReplaceAllString(cleaned, `${1}"${2}":`)
	cleaned = singleQuoted.ReplaceAllString(cleaned, `: "${1}"`)

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		snippet := cleaned
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, &ParseError{Err: err, Snippet: snippet}
	}
	return parsed, nil
}
