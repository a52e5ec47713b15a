package attachment

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fumiama/go-docx"
	pdflib "github.com/ledongthuc/pdf"
)

// ErrUnsupported marks attachments that are neither PDF nor DOCX.
var ErrUnsupported = errors.New("unsupported attachment type")

type kind int

const (
	kindUnknown kind = iota
	kindPDF
	kindDOCX
)

// Extractor downloads board attachments and turns them into plain text.
// Extracted text is cached on disk keyed by URL hash, so repeated crawls
// of the same boards do not re-download the files.
type Extractor struct {
	cacheDir  string
	maxPages  int
	userAgent string
	http      *http.Client
}

func New(cacheDir string, maxPages int, userAgent string) *Extractor {
	return &Extractor{
		cacheDir:  cacheDir,
		maxPages:  maxPages,
		userAgent: userAgent,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// ExtractText fetches the attachment at url and returns its text content.
func (e *Extractor) ExtractText(ctx context.Context, url string) (string, error) {
	if text, ok := e.cached(url); ok {
		return text, nil
	}

	data, contentType, err := e.download(ctx, url)
	if err != nil {
		return "", err
	}

	var text string
	switch detectKind(url, contentType) {
	case kindPDF:
		text, err = e.pdfText(data)
	case kindDOCX:
		text, err = docxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, contentType)
	}
	if err != nil {
		return "", err
	}

	e.cache(url, text)
	return text, nil
}

func (e *Extractor) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download attachment: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read attachment: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func detectKind(url, contentType string) kind {
	lower := strings.ToLower(url)
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(lower, ".pdf"), strings.Contains(ct, "application/pdf"):
		return kindPDF
	case strings.Contains(lower, ".docx"), strings.Contains(ct, "officedocument.wordprocessingml"):
		return kindDOCX
	default:
		return kindUnknown
	}
}

// pdfText extracts plain text from the leading pages of a PDF. The page cap
// keeps hundred-page reports from bloating prompts.
func (e *Extractor) pdfText(data []byte) (string, error) {
	// ledongthuc/pdf needs a ReadSeeker plus size, so spool to a temp file.
	tmp, err := os.CreateTemp("", "khidi-attachment-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages := reader.NumPage()
	if pages > e.maxPages {
		pages = e.maxPages
	}

	var buf strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}
	return strings.TrimSpace(buf.String()), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var buf strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func (e *Extractor) cachePath(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(e.cacheDir, fmt.Sprintf("%x.txt", sum[:16]))
}

func (e *Extractor) cached(url string) (string, bool) {
	if e.cacheDir == "" {
		return "", false
	}
	data, err := os.ReadFile(e.cachePath(url))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (e *Extractor) cache(url, text string) {
	if e.cacheDir == "" {
		return
	}
	if err := os.MkdirAll(e.cacheDir, 0o755); err != nil {
		return
	}
	_ = os.WriteFile(e.cachePath(url), []byte(text), 0o644)
}
