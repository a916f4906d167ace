package model

// PanelTab identifies a tab of the side panel.
type PanelTab int

const (
	PanelBookmarks PanelTab = iota
	PanelDownloads
	PanelHistory
)

// String returns the display name for a side panel tab.
func (pt PanelTab) String() string {
	switch pt {
	case PanelBookmarks:
		return "Bookmarks"
	case PanelDownloads:
		return "Downloads"
	case PanelHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// AppState holds the mutable view state of the running application. It is
// passed explicitly to view-update functions instead of living in ambient
// widget fields.
type AppState struct {
	CurrentTheme     string
	SidePanelVisible bool
	ActivePanelTab   PanelTab
}

// NewAppState creates the initial application state for the given theme.
func NewAppState(theme string) *AppState {
	return &AppState{
		CurrentTheme:   theme,
		ActivePanelTab: PanelBookmarks,
	}
}

// TogglePanel flips side panel visibility, selecting the given tab when the
// panel becomes visible. Returns the new visibility.
func (st *AppState) TogglePanel(tab PanelTab) bool {
	if st.SidePanelVisible {
		st.SidePanelVisible = false
		return false
	}

	st.SidePanelVisible = true
	st.ActivePanelTab = tab
	return true
}
