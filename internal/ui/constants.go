package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconBack      = "◀"
	IconForward   = "▶"
	IconRefresh   = "↻"
	IconHome      = "⌂"
	IconTheme     = "🎨"
	IconBookmarks = "⭐"
	IconDownloads = "📥"
)

// Text fragments
const (
	ListSeparator       = " - "
	PlaceholderFormat   = "WebView would display: %s"
	BookmarkLabelFormat = "%s - %s"
	HistoryLabelFormat  = "%s - %s"
)

// Window and layout sizing
const (
	WindowWidth  float32 = 1200
	WindowHeight float32 = 800

	SidePanelWidth float32 = 200

	ThemePickerWidth  float32 = 400
	ThemePickerHeight float32 = 500
)

// Theme picker grid
const (
	ThemePickerColumns = 5
)

// History display
const (
	// HistoryDisplayLimit caps the entries shown in the history tab; the
	// persisted retention cap is larger and lives in the config package.
	HistoryDisplayLimit = 50
)
