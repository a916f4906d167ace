package config

import (
	"time"

	"github.com/cactusbrowse/cactus-browser/internal/platform"
)

// Default values for a fresh profile
const (
	DefaultTheme    = "Default"
	DefaultHomepage = "https://www.google.com"
)

// Persistence constants
const (
	// ConfigFileName is the fixed relative path of the profile file.
	ConfigFileName = "cactus_config.json"

	// MaxHistoryEntries is the number of history entries kept on save.
	MaxHistoryEntries = 100

	// HistoryTimeFormat is the local-time, minute-precision timestamp format
	// used for persisted history entries.
	HistoryTimeFormat = "2006-01-02 15:04"
)

// BlankPageURL is the sentinel URL of an empty tab; it is never bookmarked.
const BlankPageURL = "about:blank"

// Bookmark is a user-saved page reference. Order is insertion order and
// duplicates are allowed.
type Bookmark struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// HistoryEntry records a single navigation.
type HistoryEntry struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
}

// NewHistoryEntry creates a history entry timestamped with the current local
// time at minute precision.
func NewHistoryEntry(url, title string) HistoryEntry {
	return HistoryEntry{
		URL:       url,
		Title:     title,
		Timestamp: time.Now().Format(HistoryTimeFormat),
	}
}

// Profile is the persisted user state: theme, homepage, download path,
// bookmarks, and history. It maps 1:1 to the JSON schema of the profile file.
type Profile struct {
	Theme        string         `json:"theme"`
	Homepage     string         `json:"homepage"`
	DownloadPath string         `json:"download_path"`
	Bookmarks    []Bookmark     `json:"bookmarks"`
	History      []HistoryEntry `json:"history"`
}

// DefaultProfile returns the built-in defaults used when no profile file
// exists or the existing one cannot be parsed.
func DefaultProfile() *Profile {
	downloadPath, err := platform.DefaultDownloadDir()
	if err != nil {
		downloadPath = "CactusDownloads"
	}

	return &Profile{
		Theme:        DefaultTheme,
		Homepage:     DefaultHomepage,
		DownloadPath: downloadPath,
		Bookmarks:    []Bookmark{},
		History:      []HistoryEntry{},
	}
}
