package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), ConfigFileName))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultTheme, s.Theme())
	assert.Equal(t, DefaultHomepage, s.Homepage())
	assert.Empty(t, s.Bookmarks())
	assert.Empty(t, s.History())
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))

	err := s.Load()
	require.Error(t, err)

	// The documented substitution policy: defaults, no partial recovery.
	profile := s.LoadOrDefault()
	assert.Equal(t, DefaultTheme, profile.Theme)
	assert.Equal(t, DefaultHomepage, profile.Homepage)
	assert.Empty(t, profile.Bookmarks)
	assert.Empty(t, profile.History)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetTheme("Dark"))
	require.NoError(t, s.SetHomepage("https://example.org"))
	require.NoError(t, s.SetDownloadPath("/tmp/cactus-downloads"))

	added, err := s.AddBookmark("Example", "https://example.org")
	require.NoError(t, err)
	require.True(t, added)

	require.NoError(t, s.AddHistoryEntry("https://example.org", "Example"))
	require.NoError(t, s.Save())

	reloaded := NewStore(s.Path())
	require.NoError(t, reloaded.Load())

	assert.Equal(t, "Dark", reloaded.Theme())
	assert.Equal(t, "https://example.org", reloaded.Homepage())
	assert.Equal(t, "/tmp/cactus-downloads", reloaded.DownloadPath())

	bookmarks := reloaded.Bookmarks()
	require.Len(t, bookmarks, 1)
	assert.Equal(t, Bookmark{Title: "Example", URL: "https://example.org"}, bookmarks[0])

	history := reloaded.History()
	require.Len(t, history, 1)
	assert.Equal(t, "https://example.org", history[0].URL)
	assert.Equal(t, "Example", history[0].Title)
	assert.NotEmpty(t, history[0].Timestamp)
}

func TestSaveTruncatesHistory(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 150; i++ {
		require.NoError(t, s.AddHistoryEntry(fmt.Sprintf("https://example.com/%d", i), fmt.Sprintf("Page %d", i)))
	}
	require.NoError(t, s.Save())

	// In-memory history keeps everything until the next load.
	assert.Len(t, s.History(), 150)

	reloaded := NewStore(s.Path())
	require.NoError(t, reloaded.Load())

	history := reloaded.History()
	require.Len(t, history, MaxHistoryEntries)

	// Exactly the most recent 100 survive, order preserved.
	assert.Equal(t, "https://example.com/50", history[0].URL)
	assert.Equal(t, "https://example.com/149", history[len(history)-1].URL)
}

func TestAddBookmarkBlankURL(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddBookmark("", "")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = s.AddBookmark("Blank", BlankPageURL)
	require.NoError(t, err)
	assert.False(t, added)

	assert.Empty(t, s.Bookmarks())
}

func TestAddBookmarkAllowsDuplicates(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		added, err := s.AddBookmark("Example", "https://example.org")
		require.NoError(t, err)
		require.True(t, added)
	}

	assert.Len(t, s.Bookmarks(), 3)
}

func TestClearHistory(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddHistoryEntry("https://example.com", "Example"))
	require.NoError(t, s.ClearHistory())

	reloaded := NewStore(s.Path())
	require.NoError(t, reloaded.Load())
	assert.Empty(t, reloaded.History())
}

func TestHistoryEntryAppendedLast(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetHomepage("https://www.google.com"))

	require.NoError(t, s.AddHistoryEntry("https://www.google.com", "Google"))
	require.NoError(t, s.AddHistoryEntry("https://example.com", "Example"))

	reloaded := NewStore(s.Path())
	require.NoError(t, reloaded.Load())

	history := reloaded.History()
	require.NotEmpty(t, history)
	assert.Equal(t, "https://example.com", history[len(history)-1].URL)
}

func TestRecentHistoryWindow(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 60; i++ {
		require.NoError(t, s.AddHistoryEntry(fmt.Sprintf("https://example.com/%d", i), "Page"))
	}

	recent := s.RecentHistory(50)
	require.Len(t, recent, 50)
	assert.Equal(t, "https://example.com/10", recent[0].URL)
	assert.Equal(t, "https://example.com/59", recent[len(recent)-1].URL)

	// Asking for more than exists returns everything.
	assert.Len(t, s.RecentHistory(1000), 60)
}

func TestPersistedFileIsValidJSON(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddHistoryEntry("https://example.com", "Example"))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"theme", "homepage", "download_path", "bookmarks", "history"} {
		assert.Contains(t, raw, key)
	}
}

func TestWriteThroughMutators(t *testing.T) {
	s := newTestStore(t)

	// Each mutator persists immediately; a fresh store sees the change
	// without an explicit Save.
	require.NoError(t, s.SetTheme("Teal"))

	reloaded := NewStore(s.Path())
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "Teal", reloaded.Theme())
}
