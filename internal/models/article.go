package models

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the dot-delimited date format used everywhere in the service.
const DateLayout = "2006.01.02"

// Tags carries the filter dimensions attached to every article.
type Tags struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Layer    string `json:"layer"`
	Region   string `json:"region"`
	Source   string `json:"source"`
}

// ArticleStub is one listing-row extraction, before any detail enrichment.
type ArticleStub struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	URL         string `json:"url"`
	SourceBoard string `json:"sourceBoard"`
}

// ArticleDetail holds the optional per-article enrichment.
type ArticleDetail struct {
	Content       string `json:"content"`
	AttachmentURL string `json:"attachmentUrl,omitempty"`
}

// Article is the crawler's public output and the primary entity of the service.
type Article struct {
	ID            string `json:"id"`
	Source        string `json:"source"`
	Date          string `json:"date"`
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	Link          string `json:"link"`
	IsNew         bool   `json:"isNew"`
	Category      string `json:"category"`
	Content       string `json:"content,omitempty"`
	AttachmentURL string `json:"attachmentUrl,omitempty"`
	Tags          Tags   `json:"tags"`
}

// ArticleID derives a stable id from board, date and title. A content hash
// dedups across repeated crawls, unlike a row-index-plus-timestamp scheme.
func ArticleID(board, date, title string) string {
	h := sha256.Sum256([]byte(board + "|" + date + "|" + strings.TrimSpace(title)))
	return fmt.Sprintf("%x", h[:])[:16]
}

// ParseDate parses a dot-delimited article date. The zero time is returned
// for dates that do not conform, which sorts them last.
func ParseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// TruncateRunes shortens s to at most n runes without splitting a character.
func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
