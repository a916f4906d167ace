package model

import (
	"github.com/google/uuid"
)

// TabTitleMaxLen is the maximum rune length of a tab title before truncation.
const TabTitleMaxLen = 20

// Tab represents a single browser tab. The rendering engine is stubbed, so a
// tab only tracks its identity, title, and current URL.
type Tab struct {
	ID    string
	Title string
	URL   string
}

// NewTab creates a tab with a generated ID.
func NewTab(title, url string) *Tab {
	return &Tab{
		ID:    uuid.NewString(),
		Title: title,
		URL:   url,
	}
}

// DisplayTitle returns the tab title truncated for the tab bar. Long URLs
// used as titles are cut to TabTitleMaxLen runes with an ellipsis.
func (t *Tab) DisplayTitle() string {
	title := t.Title
	if title == "" {
		title = t.URL
	}

	runes := []rune(title)
	if len(runes) > TabTitleMaxLen {
		return string(runes[:TabTitleMaxLen]) + "..."
	}
	return title
}
