package pdftext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/sync/errgroup"
)

// pageTreeStrategy decodes the page object tree with pdfcpu, then walks
// each page's content stream collecting positioned text runs. Runs are
// sorted top-to-bottom then left-to-right and pages joined with a
// paragraph break. pdfcpu works against files, so the document is staged
// in a temp directory.
type pageTreeStrategy struct{}

func (pageTreeStrategy) Name() string   { return "pagetree" }
func (pageTreeStrategy) Threshold() int { return 20 }

var contentPageNr = regexp.MustCompile(`(\d+)`)

func (pageTreeStrategy) Extract(ctx context.Context, data []byte) (string, error) {
	tempDir, err := os.MkdirTemp("", "pdftext-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	src := filepath.Join(tempDir, "source.pdf")
	if err := os.WriteFile(src, data, 0o644); err != nil {
		return "", err
	}

	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed

	// Optimization rewrites the xref table, which rescues documents the
	// strict reader above chokes on. Fall back to the raw file if it fails.
	optimized := filepath.Join(tempDir, "optimized.pdf")
	if err := api.OptimizeFile(src, optimized, cfg); err != nil {
		optimized = src
	}

	pageCount, err := api.PageCountFile(optimized)
	if err != nil {
		return "", fmt.Errorf("page count: %w", err)
	}
	if pageCount == 0 {
		return "", fmt.Errorf("no pages")
	}

	outDir := filepath.Join(tempDir, "content")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	if err := api.ExtractContentFile(optimized, outDir, nil, cfg); err != nil {
		return "", fmt.Errorf("extract content: %w", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no content streams extracted")
	}

	// One extracted stream per page; order by the page number embedded in
	// the file name, not by directory order.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return contentFileNr(names[i]) < contentFileNr(names[j])
	})

	pages := make([]string, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			raw, err := os.ReadFile(filepath.Join(outDir, name))
			if err != nil {
				return err
			}
			pages[i] = joinRuns(decodeContentRuns(raw))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var nonEmpty []string
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(p))
		}
	}
	return strings.Join(nonEmpty, "\n\n"), nil
}

func contentFileNr(name string) int {
	m := contentPageNr.FindAllString(name, -1)
	if len(m) == 0 {
		return 0
	}
	n, _ := strconv.Atoi(m[len(m)-1])
	return n
}
