package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8090" {
		t.Errorf("expected default port 8090, got %q", cfg.Port)
	}
	if cfg.RowsPerBoard != 10 || cfg.DetailFetchLimit != 5 {
		t.Errorf("unexpected crawl limits: rows=%d detail=%d", cfg.RowsPerBoard, cfg.DetailFetchLimit)
	}
	if cfg.StackCapacity != 50 {
		t.Errorf("expected stack capacity 50, got %d", cfg.StackCapacity)
	}
	if len(cfg.Boards) != 3 {
		t.Errorf("expected 3 default boards, got %d", len(cfg.Boards))
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("unexpected default model %q", cfg.GeminiModel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ROWS_PER_BOARD", "3")
	t.Setenv("FETCH_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.RowsPerBoard != 3 {
		t.Errorf("expected 3 rows per board, got %d", cfg.RowsPerBoard)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.FetchTimeout)
	}
}

func TestLoadBoards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boards.yaml")
	content := "boards:\n  - name: 공지사항\n    url: https://example.org/board?menuId=1\n  - name: 보도자료\n    url: https://example.org/board?menuId=2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	boards, err := LoadBoards(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boards) != 2 {
		t.Fatalf("expected 2 boards, got %d", len(boards))
	}
	if boards[0].Name != "공지사항" || boards[1].URL != "https://example.org/board?menuId=2" {
		t.Errorf("unexpected boards: %+v", boards)
	}
}

func TestLoadBoards_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boards.yaml")
	if err := os.WriteFile(path, []byte("boards:\n  - name: 이름만\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBoards(path); err == nil {
		t.Error("expected error for board without url")
	}

	if _, err := LoadBoards(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
