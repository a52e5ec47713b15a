package crawler

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"khidi-briefing/internal/models"
)

var (
	fullDatePattern  = regexp.MustCompile(`(\d{4})[-./](\d{1,2})[-./](\d{1,2})`)
	shortDatePattern = regexp.MustCompile(`(\d{2})[-./](\d{1,2})[-./](\d{1,2})`)
	numericOnly      = regexp.MustCompile(`^\d+$`)
)

// parseBoard walks every table row on a listing page and extracts article
// stubs. Rows that do not look like posts (too few cells, no usable title
// anchor) are skipped rather than reported.
func parseBoard(doc *goquery.Document, boardName, origin string, rowCap int, now time.Time) []models.ArticleStub {
	stubs := make([]models.ArticleStub, 0, rowCap)

	doc.Find("table tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return true
		}

		title, href := titleAnchor(cells)
		if title == "" {
			return true
		}

		date := rowDate(row.Text(), now)
		stubs = append(stubs, models.ArticleStub{
			ID:          models.ArticleID(boardName, date, title),
			Title:       title,
			Date:        date,
			URL:         absoluteURL(origin, href),
			SourceBoard: boardName,
		})
		return len(stubs) < rowCap
	})

	return stubs
}

// titleAnchor finds the first cell whose anchor text is long enough to be a
// post title. Row-number and attachment-icon cells carry short or purely
// numeric anchor text.
func titleAnchor(cells *goquery.Selection) (title, href string) {
	cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		anchor := cell.Find("a").First()
		if anchor.Length() == 0 {
			return true
		}
		text := strings.TrimSpace(anchor.Text())
		if len([]rune(text)) < 5 || numericOnly.MatchString(text) {
			return true
		}
		title = text
		href, _ = anchor.Attr("href")
		return false
	})
	return title, href
}

// rowDate pulls the first date out of the row text, normalized to YYYY.MM.DD.
// Two-digit years are assumed to be 20xx. Rows without a date get today.
func rowDate(rowText string, now time.Time) string {
	if m := fullDatePattern.FindStringSubmatch(rowText); m != nil {
		return fmt.Sprintf("%s.%s.%s", m[1], pad2(m[2]), pad2(m[3]))
	}
	if m := shortDatePattern.FindStringSubmatch(rowText); m != nil {
		return fmt.Sprintf("20%s.%s.%s", m[1], pad2(m[2]), pad2(m[3]))
	}
	return now.Format(models.DateLayout)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// absoluteURL resolves board-relative hrefs against the site origin.
func absoluteURL(origin, href string) string {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return origin
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href
	case strings.HasPrefix(href, "/"):
		return origin + href
	default:
		return origin + "/" + href
	}
}
