package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Board is one crawl target: a display name and its listing URL.
type Board struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Config struct {
	Port string

	// Crawl targets
	SiteOrigin string
	Boards     []Board
	BoardsFile string

	// Scraping behavior
	UserAgent        string
	RowsPerBoard     int
	DetailFetchLimit int
	BodyExcerptLimit int
	SummaryLimit     int
	FetchTimeout     time.Duration

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Article stack
	StackPath     string
	StackCapacity int

	// Attachment extraction
	AttachmentCacheDir string
	AttachmentMaxPages int
}

// defaultBoards lists the KHIDI boards crawled when no boards file is given.
var defaultBoards = []Board{
	{Name: "보건산업브리프", URL: "https://www.khidi.or.kr/board?menuId=MENU00085"},
	{Name: "글로벌보건산업동향", URL: "https://www.khidi.or.kr/board?menuId=MENU00949"},
	{Name: "뉴스레터", URL: "https://www.khidi.or.kr/board?menuId=MENU00094"},
}

// Boards without a realistic browser User-Agent reject the request outright.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func Load() (Config, error) {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		SiteOrigin: envOr("SITE_ORIGIN", "https://www.khidi.or.kr"),
		BoardsFile: os.Getenv("BOARDS_FILE"),

		UserAgent:        envOr("CRAWL_USER_AGENT", defaultUserAgent),
		RowsPerBoard:     envInt("ROWS_PER_BOARD", 10),
		DetailFetchLimit: envInt("DETAIL_FETCH_LIMIT", 5),
		BodyExcerptLimit: envInt("BODY_EXCERPT_LIMIT", 5000),
		SummaryLimit:     envInt("SUMMARY_LIMIT", 200),
		FetchTimeout:     envDuration("FETCH_TIMEOUT", 30*time.Second),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-2.5-flash"),

		StackPath:     os.Getenv("STACK_PATH"),
		StackCapacity: envInt("STACK_CAPACITY", 50),

		AttachmentCacheDir: envOr("ATTACHMENT_CACHE_DIR", ".cache/attachments"),
		AttachmentMaxPages: envInt("ATTACHMENT_MAX_PAGES", 20),
	}

	if cfg.RowsPerBoard <= 0 {
		cfg.RowsPerBoard = 10
	}
	if cfg.DetailFetchLimit <= 0 {
		cfg.DetailFetchLimit = 5
	}
	if cfg.BodyExcerptLimit <= 0 {
		cfg.BodyExcerptLimit = 5000
	}
	if cfg.SummaryLimit <= 0 {
		cfg.SummaryLimit = 200
	}
	if cfg.StackCapacity <= 0 {
		cfg.StackCapacity = 50
	}
	if cfg.AttachmentMaxPages <= 0 {
		cfg.AttachmentMaxPages = 20
	}

	if cfg.BoardsFile != "" {
		boards, err := LoadBoards(cfg.BoardsFile)
		if err != nil {
			return cfg, err
		}
		cfg.Boards = boards
	} else {
		cfg.Boards = defaultBoards
	}

	return cfg, nil
}

// LoadBoards reads a YAML board list: a top-level "boards" sequence of
// {name, url} entries.
func LoadBoards(path string) ([]Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boards file: %w", err)
	}
	var doc struct {
		Boards []Board `yaml:"boards"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse boards file: %w", err)
	}
	if len(doc.Boards) == 0 {
		return nil, fmt.Errorf("boards file %s defines no boards", path)
	}
	for _, b := range doc.Boards {
		if b.Name == "" || b.URL == "" {
			return nil, fmt.Errorf("boards file %s: every board needs a name and url", path)
		}
	}
	return doc.Boards, nil
}

func (c Config) Validate() error {
	if c.SiteOrigin == "" {
		return fmt.Errorf("SITE_ORIGIN is required")
	}
	if len(c.Boards) == 0 {
		return fmt.Errorf("at least one board is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
