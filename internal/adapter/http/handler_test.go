package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"resume-parser/internal/usecase"
	"resume-parser/pkg/pdftext"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	out pdftext.Extracted
	err error
}

func (s stubExtractor) Extract(_ context.Context, _ pdftext.Document) (pdftext.Extracted, error) {
	return s.out, s.err
}

func newTestApp(ex usecase.Extractor) *fiber.App {
	app := fiber.New()
	h := NewHandler(usecase.NewProcessor(ex, nil, 0))
	app.Post("/api/parse-resume", h.ParseResume)
	app.Post("/api/export-portfolio", h.ExportPortfolio)
	app.Get("/healthz", h.Healthz)
	return app
}

func uploadRequest(t *testing.T, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse-resume", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestParseResume(t *testing.T) {
	app := newTestApp(stubExtractor{out: pdftext.Extracted{
		Text:     "John Smith\nSoftware Engineer\njohn@x.co",
		Strategy: "structured",
	}})

	resp, err := app.Test(uploadRequest(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rec map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "John Smith", rec["name"])
	assert.Equal(t, "john@x.co", rec["email"])
	assert.Equal(t, true, rec["isFresher"])
}

func TestParseResumeNoFile(t *testing.T) {
	app := newTestApp(stubExtractor{})
	req := httptest.NewRequest(http.MethodPost, "/api/parse-resume", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseResumeWrongType(t *testing.T) {
	app := newTestApp(stubExtractor{})
	resp, err := app.Test(uploadRequest(t, "resume.docx", "application/msword", []byte("not a pdf")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseResumeUnreadableDocument(t *testing.T) {
	app := newTestApp(stubExtractor{err: &pdftext.ExtractionError{Attempts: []string{"structured: boom"}}})
	resp, err := app.Test(uploadRequest(t, "scan.pdf", "application/pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "could not extract text")
}

func TestExportPortfolio(t *testing.T) {
	app := newTestApp(stubExtractor{})
	payload := `{"template": "modern", "userData": {"name": "Jane Roe", "email": "jane@x.co", "skills": ["Go"]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/export-portfolio", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Jane_Roe_portfolio.zip")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// zip local file header magic
	assert.Equal(t, []byte{'P', 'K', 3, 4}, data[:4])
}

func TestExportPortfolioMissingData(t *testing.T) {
	app := newTestApp(stubExtractor{})
	req := httptest.NewRequest(http.MethodPost, "/api/export-portfolio", bytes.NewBufferString(`{"template": "modern"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	app := newTestApp(stubExtractor{})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
