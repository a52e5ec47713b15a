package crawler

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"khidi-briefing/internal/models"
)

// bodySelectors is tried in order; the first selector yielding non-empty text
// wins. KHIDI boards vary their view-page markup by menu.
var bodySelectors = []string{
	".board-view-content",
	".view-content",
	".bbs-view-content",
	".content",
	"article",
	".post-content",
}

// parseDetail extracts the body excerpt and the first attachment link from an
// article view page.
func parseDetail(doc *goquery.Document, origin string, bodyLimit int) models.ArticleDetail {
	var detail models.ArticleDetail

	for _, sel := range bodySelectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if text != "" {
			detail.Content = models.TruncateRunes(text, bodyLimit)
			break
		}
	}

	doc.Find("a").EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
		href, ok := anchor.Attr("href")
		if !ok {
			return true
		}
		lower := strings.ToLower(href)
		if strings.Contains(lower, ".pdf") || strings.Contains(lower, "download") || strings.Contains(lower, "filedown") {
			detail.AttachmentURL = absoluteURL(origin, href)
			return false
		}
		return true
	})

	return detail
}
