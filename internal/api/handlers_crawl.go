package api

import (
	"net/http"
	"time"

	"khidi-briefing/internal/crawler"
	"khidi-briefing/internal/models"
)

// handleCrawl runs a crawl of all configured boards and returns the combined
// article list. The detail and attach query flags select enrichment depth.
func (s *Server) handleCrawl(w http.ResponseWriter, r *http.Request) {
	opts := crawler.Options{
		Detail:      r.URL.Query().Get("detail") == "true",
		Attachments: r.URL.Query().Get("attach") == "true",
	}

	articles := s.crawler.Crawl(r.Context(), opts)
	if articles == nil {
		articles = []models.Article{}
	}

	jsonOK(w, map[string]any{
		"count":     len(articles),
		"articles":  articles,
		"crawledAt": time.Now().UTC().Format(time.RFC3339),
	})
}
