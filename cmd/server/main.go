package main

import (
	"log"

	httpadapter "resume-parser/internal/adapter/http"
	"resume-parser/internal/config"
	"resume-parser/internal/usecase"
	"resume-parser/pkg/ai"
	"resume-parser/pkg/pdftext"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	engine := pdftext.NewEngine(
		pdftext.WithStrategyTimeout(cfg.StrategyTimeout()),
		pdftext.WithQualityFloor(cfg.Extraction.MinLength, cfg.Extraction.MinAlphaRatio),
	)

	var llm usecase.Completer
	if cfg.APIKey != "" {
		llm = ai.NewClient(ai.Options{
			BaseURL:     cfg.AI.BaseURL,
			APIKey:      cfg.APIKey,
			Model:       cfg.AI.Model,
			MaxTokens:   cfg.AI.MaxTokens,
			Temperature: cfg.AI.Temperature,
			Timeout:     cfg.AITimeout(),
			Retries:     cfg.AI.Retries,
		})
	} else {
		log.Printf("warning: AI_API_KEY not set, running with heuristic parsing only")
	}

	processor := usecase.NewProcessor(engine, llm, cfg.PromptBudget)

	app := fiber.New(fiber.Config{
		BodyLimit: pdftext.MaxDocumentSize + 1<<20,
	})

	h := httpadapter.NewHandler(processor)
	app.Post("/api/parse-resume", h.ParseResume)
	app.Post("/api/export-portfolio", h.ExportPortfolio)
	app.Get("/healthz", h.Healthz)

	log.Printf("server: listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
