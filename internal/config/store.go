package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
)

// Store manages the in-memory profile and its JSON file on disk. All
// mutating operations persist immediately (write-through, no batching).
type Store struct {
	path    string
	mu      sync.RWMutex
	profile *Profile
}

// NewStore creates a store backed by the given file path. The profile starts
// at the built-in defaults until Load or LoadOrDefault is called.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		profile: DefaultProfile(),
	}
}

// Path returns the profile file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the profile file into memory. A missing file is not an error:
// the store keeps the defaults. Read or parse failures are returned to the
// caller so the default-substitution policy stays explicit at the call site.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.profile = DefaultProfile()
			return nil
		}
		return fmt.Errorf("read profile %s: %w", s.path, err)
	}

	profile := DefaultProfile()
	if err := json.Unmarshal(data, profile); err != nil {
		return fmt.Errorf("parse profile %s: %w", s.path, err)
	}

	if profile.Theme == "" {
		profile.Theme = DefaultTheme
	}
	if profile.Homepage == "" {
		profile.Homepage = DefaultHomepage
	}
	if profile.DownloadPath == "" {
		profile.DownloadPath = DefaultProfile().DownloadPath
	}

	s.profile = profile
	return nil
}

// LoadOrDefault loads the profile file and silently substitutes the built-in
// defaults on any read or parse error. No partial recovery is attempted.
func (s *Store) LoadOrDefault() *Profile {
	if err := s.Load(); err != nil {
		log.Printf("Profile load failed, using defaults: %v", err)
		s.mu.Lock()
		s.profile = DefaultProfile()
		s.mu.Unlock()
	}
	return s.Snapshot()
}

// Save serializes the full profile to the file, truncating the persisted
// history to the most recent MaxHistoryEntries. The in-memory history is
// left untouched until the next Load.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked()
}

// saveLocked writes the profile to disk. Callers must hold at least the read lock.
func (s *Store) saveLocked() error {
	out := *s.profile
	if len(out.History) > MaxHistoryEntries {
		out.History = out.History[len(out.History)-MaxHistoryEntries:]
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write profile %s: %w", s.path, err)
	}

	return nil
}

// Snapshot returns a copy of the current profile for display purposes.
func (s *Store) Snapshot() *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := *s.profile
	out.Bookmarks = append([]Bookmark(nil), s.profile.Bookmarks...)
	out.History = append([]HistoryEntry(nil), s.profile.History...)
	return &out
}

// Theme returns the current theme name.
func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Theme
}

// SetTheme updates the theme name and persists immediately.
func (s *Store) SetTheme(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Theme = name
	return s.saveLocked()
}

// Homepage returns the configured homepage URL.
func (s *Store) Homepage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Homepage
}

// SetHomepage updates the homepage URL and persists immediately.
func (s *Store) SetHomepage(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if url == "" {
		url = DefaultHomepage
	}
	s.profile.Homepage = url
	return s.saveLocked()
}

// DownloadPath returns the configured download directory.
func (s *Store) DownloadPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.DownloadPath
}

// SetDownloadPath updates the download directory and persists immediately.
func (s *Store) SetDownloadPath(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dir == "" {
		return fmt.Errorf("download path is empty")
	}
	s.profile.DownloadPath = dir
	return s.saveLocked()
}

// Bookmarks returns a copy of the bookmark list in insertion order.
func (s *Store) Bookmarks() []Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Bookmark(nil), s.profile.Bookmarks...)
}

// AddBookmark appends a bookmark and persists immediately. An empty or
// about:blank URL is a no-op. Duplicates are allowed.
func (s *Store) AddBookmark(title, url string) (bool, error) {
	if url == "" || url == BlankPageURL {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Bookmarks = append(s.profile.Bookmarks, Bookmark{Title: title, URL: url})
	return true, s.saveLocked()
}

// History returns a copy of the full in-memory history, oldest first.
func (s *Store) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]HistoryEntry(nil), s.profile.History...)
}

// RecentHistory returns the most recent n history entries, oldest first.
func (s *Store) RecentHistory(n int) []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.profile.History
	if n < len(history) {
		history = history[len(history)-n:]
	}
	return append([]HistoryEntry(nil), history...)
}

// AddHistoryEntry appends a timestamped navigation record and persists
// immediately. Duplicates are allowed.
func (s *Store) AddHistoryEntry(url, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.History = append(s.profile.History, NewHistoryEntry(url, title))
	return s.saveLocked()
}

// ClearHistory empties the history list and persists immediately.
func (s *Store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.History = []HistoryEntry{}
	return s.saveLocked()
}
