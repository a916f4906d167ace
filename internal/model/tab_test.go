package model

import (
	"strings"
	"testing"
)

func TestTab_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		url      string
		expected string
	}{
		{"New Tab", "https://www.google.com", "New Tab"},
		{"", "https://a.io", "https://a.io"},
		{"https://www.google.com/search?q=go", "", "https://www.google.c..."},
		{strings.Repeat("x", 20), "", strings.Repeat("x", 20)},
		{strings.Repeat("x", 21), "", strings.Repeat("x", 20) + "..."},
	}

	for _, test := range tests {
		tab := &Tab{Title: test.title, URL: test.url}
		result := tab.DisplayTitle()
		if result != test.expected {
			t.Errorf("DisplayTitle() with title='%s', url='%s' = '%s', expected '%s'",
				test.title, test.url, result, test.expected)
		}
	}
}

func TestNewTab_GeneratesIDs(t *testing.T) {
	a := NewTab("New Tab", "https://www.google.com")
	b := NewTab("New Tab", "https://www.google.com")

	if a.ID == "" || b.ID == "" {
		t.Error("Expected generated tab IDs to be non-empty")
	}

	if a.ID == b.ID {
		t.Errorf("Expected unique tab IDs, got '%s' twice", a.ID)
	}
}
