package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satellitegroup/printshop/internal/models"
	"github.com/satellitegroup/printshop/internal/mykafka"
	"github.com/satellitegroup/printshop/internal/quotes"
	"github.com/satellitegroup/printshop/internal/storage"
)

func newQuoteHandler(t *testing.T) *QuoteHandler {
	return &QuoteHandler{
		Repo:     &quotes.Repo{DB: initTestDB(t)},
		Uploads:  &storage.DiskStore{Dir: t.TempDir(), PublicBase: "/uploads"},
		Producer: &mykafka.Producer{},
	}
}

// brokenUploads always fails, standing in for an unreachable blob store.
type brokenUploads struct{}

func (brokenUploads) Save(context.Context, string, string, string, int64, io.Reader) (string, error) {
	return "", errors.New("storage unavailable")
}

func quoteFields(overrides map[string]string) map[string]string {
	fields := map[string]string{
		"full_name":     "Ada Obi",
		"email":         "ada@example.com",
		"phone":         "08030000000",
		"company":       "Obi Ventures",
		"service":       "Branded T-Shirts",
		"quantity":      "200",
		"deadline":      "2026-09-15",
		"design_status": quotes.DesignStatusHave,
		"message":       "Front and back print, sizes mixed.",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return fields
}

// doQuote builds a multipart quote submission; an empty filename skips the
// file part entirely.
func doQuote(t *testing.T, fields map[string]string, filename, content string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		header.Set("Content-Type", "application/octet-stream")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestQuoteCreate(t *testing.T) {
	t.Parallel()

	h := newQuoteHandler(t)

	rec, c := doQuote(t, quoteFields(nil), "artwork.pdf", "%PDF-1.4 fake")
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Quote   models.QuoteRequest `json:"quote"`
	}
	decodeJSON(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Ada Obi", resp.Quote.FullName)
	assert.Equal(t, "Branded T-Shirts", resp.Quote.Service)
	assert.True(t, strings.HasPrefix(resp.Quote.FileURL, "/uploads/quote-files/"), "got %q", resp.Quote.FileURL)

	saved, err := h.Repo.ListAll(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, resp.Quote.FileURL, saved[0].FileURL)
}

func TestQuoteCreate_WithoutFile(t *testing.T) {
	t.Parallel()

	h := newQuoteHandler(t)

	rec, c := doQuote(t, quoteFields(map[string]string{"design_status": quotes.DesignStatusNeed}), "", "")
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	saved, err := h.Repo.ListAll(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Empty(t, saved[0].FileURL)
	assert.Equal(t, quotes.DesignStatusNeed, saved[0].DesignStatus)
}

func TestQuoteCreate_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	h := newQuoteHandler(t)

	for _, field := range []string{"full_name", "email", "phone", "service", "message"} {
		_, c := doQuote(t, quoteFields(map[string]string{field: "   "}), "", "")
		err := h.Create(c)
		require.Error(t, err, "field %s", field)
		assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
	}
}

func TestQuoteCreate_BadDesignStatus(t *testing.T) {
	t.Parallel()

	h := newQuoteHandler(t)

	_, c := doQuote(t, quoteFields(map[string]string{"design_status": "maybe"}), "", "")
	err := h.Create(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestQuoteCreate_BadFileType(t *testing.T) {
	t.Parallel()

	h := newQuoteHandler(t)

	_, c := doQuote(t, quoteFields(nil), "notes.txt", "plain text")
	err := h.Create(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	saved, err := h.Repo.ListAll(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestQuoteCreate_UploadFailureStillSaves(t *testing.T) {
	t.Parallel()

	h := newQuoteHandler(t)
	h.Uploads = brokenUploads{}

	rec, c := doQuote(t, quoteFields(nil), "artwork.ai", "ai bytes")
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	saved, err := h.Repo.ListAll(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Empty(t, saved[0].FileURL)
}

func TestQuoteListAll(t *testing.T) {
	t.Parallel()

	h := newQuoteHandler(t)

	for _, service := range []string{"Flyers", "Banners", "Mugs"} {
		_, c := doQuote(t, quoteFields(map[string]string{"service": service}), "", "")
		require.NoError(t, h.Create(c))
	}

	rec, c := doJSON(t, http.MethodGet, "/api/v1/admin/quotes", nil, 1)
	require.NoError(t, h.ListAll(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Quotes []models.QuoteRequest `json:"quotes"`
	}
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Quotes, 3)
	// newest first
	assert.Equal(t, "Mugs", resp.Quotes[0].Service)
	assert.Equal(t, "Flyers", resp.Quotes[2].Service)
}
