// Package http exposes the parse and export pipeline over fiber.
package http

import (
	"errors"
	"io"
	"log"
	"strings"

	"resume-parser/internal/domain"
	"resume-parser/internal/model"
	"resume-parser/internal/usecase"
	"resume-parser/pkg/pdftext"
	"resume-parser/pkg/render"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	processor *usecase.Processor
}

func NewHandler(p *usecase.Processor) *Handler {
	return &Handler{processor: p}
}

// ParseResume accepts a PDF upload as multipart field "file" and returns
// the reconciled record. The only 4xx outcomes are upload validation
// failures and unreadable documents; every readable document yields a
// complete record even with no LLM available.
func (h *Handler) ParseResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "application/pdf" && !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File must be a PDF"})
	}
	if fileHeader.Size > pdftext.MaxDocumentSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File size must be less than 10MB"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not read upload"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not read upload"})
	}

	run := domain.NewRun(fileHeader.Filename, len(data))
	log.Printf("handler: run=%s processing %s (%d bytes)", run.ID, run.Filename, run.Size)

	doc := pdftext.Document{Data: data, MediaType: contentType, Filename: fileHeader.Filename}
	rec, err := h.processor.Parse(c.UserContext(), run, doc)
	if err != nil {
		var extErr *pdftext.ExtractionError
		if errors.As(err, &extErr) {
			log.Printf("handler: run=%s extraction failed: %s", run.ID, extErr.Details())
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": extErr.Error()})
		}
		if errors.Is(err, pdftext.ErrDocumentTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File size must be less than 10MB"})
		}
		log.Printf("handler: run=%s failed: %v", run.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Processing failed"})
	}

	return c.JSON(rec)
}

type exportReq struct {
	UserData *model.Record `json:"userData"`
	Template string        `json:"template"`
}

// ExportPortfolio renders a record into a static site bundle and streams
// it back as a zip download.
func (h *Handler) ExportPortfolio(c *fiber.Ctx) error {
	var req exportReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.UserData == nil || req.Template == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required data"})
	}

	bundle, err := render.Render(req.UserData, req.Template)
	if err != nil {
		log.Printf("handler: portfolio render failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export portfolio"})
	}
	archive, err := bundle.Archive(req.UserData)
	if err != nil {
		log.Printf("handler: portfolio archive failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export portfolio"})
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+render.ArchiveName(req.UserData)+`"`)
	return c.Send(archive)
}

func (h *Handler) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
