package stack

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"khidi-briefing/internal/models"
)

// Store is a thread-safe article stack with the semantics of a per-user
// reading list: newest first, bounded, dedup'd, with per-article analysis
// and bookmarks. When path is non-empty the state is snapshotted to a JSON
// file after every mutation.
type Store struct {
	mu       sync.Mutex
	path     string
	capacity int

	articles  []models.Article
	analyses  map[string]string
	bookmarks map[string]bool
}

type snapshot struct {
	Articles  []models.Article  `json:"articles"`
	Analyses  map[string]string `json:"analyses"`
	Bookmarks []string          `json:"bookmarks"`
}

func New(path string, capacity int) *Store {
	return &Store{
		path:      path,
		capacity:  capacity,
		analyses:  map[string]string{},
		bookmarks: map[string]bool{},
	}
}

// Load restores a previous snapshot. A missing file is not an error.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read stack snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse stack snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = snap.Articles
	s.analyses = map[string]string{}
	for id, a := range snap.Analyses {
		s.analyses[id] = a
	}
	s.bookmarks = map[string]bool{}
	for _, id := range snap.Bookmarks {
		s.bookmarks[id] = true
	}
	return nil
}

// Add merges incoming articles into the stack. Articles already present,
// by id or by normalized title, are dropped. The stack stays sorted newest
// first and the oldest articles are evicted past capacity. Returns how many
// articles were actually added.
func (s *Store) Add(incoming []models.Article) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seenID := make(map[string]bool, len(s.articles))
	seenTitle := make(map[string]bool, len(s.articles))
	for _, a := range s.articles {
		seenID[a.ID] = true
		seenTitle[normalizeTitle(a.Title)] = true
	}

	added := 0
	for _, a := range incoming {
		title := normalizeTitle(a.Title)
		if seenID[a.ID] || seenTitle[title] {
			continue
		}
		seenID[a.ID] = true
		seenTitle[title] = true
		s.articles = append(s.articles, a)
		added++
	}

	sort.SliceStable(s.articles, func(i, j int) bool {
		return models.ParseDate(s.articles[i].Date).After(models.ParseDate(s.articles[j].Date))
	})

	if len(s.articles) > s.capacity {
		for _, evicted := range s.articles[s.capacity:] {
			delete(s.analyses, evicted.ID)
			delete(s.bookmarks, evicted.ID)
		}
		s.articles = s.articles[:s.capacity]
	}

	s.persistLocked()
	return added
}

// List returns a copy of the stack, newest first.
func (s *Store) List() []models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Get looks an article up by id.
func (s *Store) Get(id string) (models.Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.articles {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// Remove deletes one article and its attached state.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.articles {
		if a.ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			delete(s.analyses, id)
			delete(s.bookmarks, id)
			s.persistLocked()
			return true
		}
	}
	return false
}

// Clear drops everything.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = nil
	s.analyses = map[string]string{}
	s.bookmarks = map[string]bool{}
	s.persistLocked()
}

// SaveAnalysis attaches a generated analysis to an article. The first write
// wins; articles are otherwise immutable once stacked.
func (s *Store) SaveAnalysis(id, analysis string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasLocked(id) {
		return fmt.Errorf("article %s not in stack", id)
	}
	if _, ok := s.analyses[id]; ok {
		return fmt.Errorf("article %s already has an analysis", id)
	}
	s.analyses[id] = analysis
	s.persistLocked()
	return nil
}

// Analysis returns the saved analysis for an article, if any.
func (s *Store) Analysis(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.analyses[id]
	return a, ok
}

// ToggleBookmark flips an article's bookmark and reports the new state.
func (s *Store) ToggleBookmark(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasLocked(id) {
		return false, fmt.Errorf("article %s not in stack", id)
	}
	if s.bookmarks[id] {
		delete(s.bookmarks, id)
		s.persistLocked()
		return false, nil
	}
	s.bookmarks[id] = true
	s.persistLocked()
	return true, nil
}

// Bookmarked returns the bookmarked articles, newest first.
func (s *Store) Bookmarked() []models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Article
	for _, a := range s.articles {
		if s.bookmarks[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) hasLocked(id string) bool {
	for _, a := range s.articles {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}
	snap := snapshot{
		Articles: s.articles,
		Analyses: s.analyses,
	}
	for id := range s.bookmarks {
		snap.Bookmarks = append(snap.Bookmarks, id)
	}
	sort.Strings(snap.Bookmarks)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return
	}
	// Snapshot loss is tolerable, the stack is a cache of crawlable data.
	_ = os.WriteFile(s.path, data, 0o644)
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
