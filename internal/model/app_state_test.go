package model

import "testing"

func TestPanelTab_String(t *testing.T) {
	tests := []struct {
		tab      PanelTab
		expected string
	}{
		{PanelBookmarks, "Bookmarks"},
		{PanelDownloads, "Downloads"},
		{PanelHistory, "History"},
		{PanelTab(99), "Unknown"},
	}

	for _, test := range tests {
		if result := test.tab.String(); result != test.expected {
			t.Errorf("String() for tab %d = '%s', expected '%s'", test.tab, result, test.expected)
		}
	}
}

func TestAppState_TogglePanel(t *testing.T) {
	state := NewAppState("Default")

	if state.SidePanelVisible {
		t.Error("Side panel should start hidden")
	}

	if !state.TogglePanel(PanelDownloads) {
		t.Error("First toggle should show the panel")
	}
	if state.ActivePanelTab != PanelDownloads {
		t.Errorf("Expected active tab Downloads, got %s", state.ActivePanelTab)
	}

	if state.TogglePanel(PanelBookmarks) {
		t.Error("Second toggle should hide the panel")
	}
	if state.ActivePanelTab != PanelDownloads {
		t.Error("Hiding the panel should not change the active tab")
	}
}

func TestNewAppState(t *testing.T) {
	state := NewAppState("Dark")

	if state.CurrentTheme != "Dark" {
		t.Errorf("Expected theme 'Dark', got '%s'", state.CurrentTheme)
	}

	if state.ActivePanelTab != PanelBookmarks {
		t.Error("Expected bookmarks to be the initial panel tab")
	}
}
