package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/cactusbrowse/cactus-browser/internal/config"
	"github.com/cactusbrowse/cactus-browser/internal/download"
	"github.com/cactusbrowse/cactus-browser/internal/model"
	"github.com/cactusbrowse/cactus-browser/internal/platform"
	"github.com/cactusbrowse/cactus-browser/internal/theme"
)

// tabView pairs a browser tab with the widgets rendering it. The rendering
// engine is stubbed, so the content is a single placeholder label.
type tabView struct {
	tab         *model.Tab
	placeholder *widget.Label
}

// BrowserUI represents the main UI structure
type BrowserUI struct {
	window       fyne.Window
	app          fyne.App
	store        *config.Store
	state        *model.AppState
	downloadSvc  download.Tracker
	localization *Localization

	addressEntry *widget.Entry
	goBtn        *widget.Button
	tabs         *container.DocTabs
	tabViews     map[*container.TabItem]*tabView
	statusLabel  *widget.Label
	sidePanel    *SidePanel
	themePicker  *ThemePicker
}

// NewBrowserUI creates and initializes the main UI
func NewBrowserUI(window fyne.Window, app fyne.App, store *config.Store, state *model.AppState, downloadSvc download.Tracker) *BrowserUI {
	localization := NewLocalization()

	ui := &BrowserUI{
		window:       window,
		app:          app,
		store:        store,
		state:        state,
		downloadSvc:  downloadSvc,
		localization: localization,
		tabViews:     make(map[*container.TabItem]*tabView),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *BrowserUI) setupUI() {
	// Address entry
	ui.addressEntry = widget.NewEntry()
	ui.addressEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	// Trigger navigation when user presses Enter in the address field
	ui.addressEntry.OnSubmitted = func(string) {
		ui.onNavigate()
	}

	// Go button
	ui.goBtn = widget.NewButton(ui.localization.GetText(KeyGo), ui.onNavigate)

	// Navigation buttons
	backBtn := widget.NewButton(IconBack, ui.onGoBack)
	backBtn.Importance = widget.LowImportance
	forwardBtn := widget.NewButton(IconForward, ui.onGoForward)
	forwardBtn.Importance = widget.LowImportance
	refreshBtn := widget.NewButton(IconRefresh, ui.onRefresh)
	refreshBtn.Importance = widget.LowImportance
	homeBtn := widget.NewButton(IconHome, ui.onGoHome)
	homeBtn.Importance = widget.LowImportance

	// Panel buttons
	themeBtn := widget.NewButton(IconTheme, ui.onShowThemePicker)
	themeBtn.Importance = widget.LowImportance
	bookmarksBtn := widget.NewButton(IconBookmarks, ui.onToggleBookmarks)
	bookmarksBtn.Importance = widget.LowImportance
	downloadsBtn := widget.NewButton(IconDownloads, ui.onToggleDownloads)
	downloadsBtn.Importance = widget.LowImportance

	addressBar := container.NewBorder(
		nil, nil,
		container.NewHBox(backBtn, forwardBtn, refreshBtn, homeBtn),
		container.NewHBox(ui.goBtn, themeBtn, bookmarksBtn, downloadsBtn),
		ui.addressEntry,
	)

	// Tab system; "+" opens a fresh tab at the homepage
	ui.tabs = container.NewDocTabs()
	ui.tabs.CreateTab = func() *container.TabItem {
		return ui.newTabItem(ui.localization.GetText(KeyNewTab), ui.store.Homepage())
	}
	ui.tabs.OnSelected = ui.onTabSelected
	ui.tabs.OnClosed = func(item *container.TabItem) {
		delete(ui.tabViews, item)
	}

	// Status bar
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyReady))

	// Side panel, hidden until toggled from the toolbar
	ui.sidePanel = NewSidePanel(ui.window, ui.localization)
	ui.sidePanel.SetCallbacks(
		ui.onBookmarkSelect,
		ui.onHistorySelect,
		ui.onAddBookmark,
		ui.onClearHistory,
		ui.onChangeDownloadPath,
		ui.onOpenDownloadFolder,
	)
	ui.sidePanel.Container().Hide()

	// Keep the downloads list in sync with the tracking service
	ui.downloadSvc.SetUpdateCallback(func(entries []*model.DownloadEntry) {
		ui.sidePanel.SetDownloads(entries)
	})

	ui.refreshSidePanelData()

	content := container.NewBorder(
		addressBar,               // top
		ui.statusLabel,           // bottom
		nil,                      // left
		ui.sidePanel.Container(), // right
		ui.tabs,                  // center
	)

	ui.window.SetContent(content)

	// Open the first tab at the homepage
	item := ui.newTabItem(ui.localization.GetText(KeyNewTab), ui.store.Homepage())
	ui.tabs.Append(item)
	ui.tabs.Select(item)

	log.Printf("UI setup completed successfully")
}

// newTabItem creates a tab showing the placeholder for the given URL and
// records the visit, mirroring navigation behavior.
func (ui *BrowserUI) newTabItem(title, url string) *container.TabItem {
	tab := model.NewTab(title, url)

	placeholder := widget.NewLabel(fmt.Sprintf(PlaceholderFormat, url))
	placeholder.Alignment = fyne.TextAlignCenter
	placeholder.Wrapping = fyne.TextWrapWord

	item := container.NewTabItem(tab.DisplayTitle(), container.NewCenter(placeholder))
	ui.tabViews[item] = &tabView{tab: tab, placeholder: placeholder}

	ui.addressEntry.SetText(url)
	ui.recordVisit(url, title)

	return item
}

// onTabSelected syncs the address bar with the newly selected tab.
func (ui *BrowserUI) onTabSelected(item *container.TabItem) {
	view, ok := ui.tabViews[item]
	if !ok {
		return
	}
	ui.addressEntry.SetText(view.tab.URL)
}

// NormalizeURL prefixes bare host names with https://. Already-qualified
// http/https URLs pass through unchanged.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// onNavigate handles the Go button and address bar submission
func (ui *BrowserUI) onNavigate() {
	raw := strings.TrimSpace(ui.addressEntry.Text)
	if raw == "" {
		return
	}

	target := NormalizeURL(raw)
	log.Printf("Navigating to: %s", target)

	item := ui.tabs.Selected()
	view, ok := ui.tabViews[item]
	if !ok {
		// All tabs closed; open a fresh one for the target
		item = ui.newTabItem(target, target)
		ui.tabs.Append(item)
		ui.tabs.Select(item)
		return
	}

	view.tab.URL = target
	view.tab.Title = target
	item.Text = view.tab.DisplayTitle()
	view.placeholder.SetText(fmt.Sprintf(PlaceholderFormat, target))
	ui.tabs.Refresh()

	ui.addressEntry.SetText(target)
	ui.recordVisit(target, target)
}

// recordVisit appends a history entry (write-through) and refreshes the
// history tab. Save failures are logged, never fatal to navigation.
func (ui *BrowserUI) recordVisit(url, title string) {
	if err := ui.store.AddHistoryEntry(url, title); err != nil {
		log.Printf("Failed to persist history entry: %v", err)
	}
	ui.sidePanel.SetHistory(ui.store.RecentHistory(HistoryDisplayLimit))
}

// onGoBack handles the back button; navigation history is not implemented
// behind the stubbed engine, only the status bar reacts.
func (ui *BrowserUI) onGoBack() {
	ui.setStatus(ui.localization.GetText(KeyBackPressed))
}

// onGoForward handles the forward button.
func (ui *BrowserUI) onGoForward() {
	ui.setStatus(ui.localization.GetText(KeyForwardPressed))
}

// onRefresh handles the refresh button.
func (ui *BrowserUI) onRefresh() {
	ui.setStatus(ui.localization.GetText(KeyPageRefreshed))
}

// onGoHome navigates the current tab to the configured homepage.
func (ui *BrowserUI) onGoHome() {
	ui.addressEntry.SetText(ui.store.Homepage())
	ui.onNavigate()
}

// setStatus updates the status bar text.
func (ui *BrowserUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}

// onShowThemePicker opens the theme selection dialog.
func (ui *BrowserUI) onShowThemePicker() {
	if ui.themePicker == nil {
		ui.themePicker = NewThemePicker(ui.window, ui.localization, ui.onThemeSelected)
	}
	ui.themePicker.Show()
}

// onThemeSelected applies and persists the chosen theme.
func (ui *BrowserUI) onThemeSelected(name string) {
	ui.ApplyTheme(name)
	if err := ui.store.SetTheme(name); err != nil {
		log.Printf("Failed to persist theme %q: %v", name, err)
	}
}

// ApplyTheme switches the Fyne theme to the named palette and updates the
// application state.
func (ui *BrowserUI) ApplyTheme(name string) {
	ui.state.CurrentTheme = name
	ui.app.Settings().SetTheme(theme.NewBrowserTheme(name))
	log.Printf("Applied theme: %s", name)
}

// onToggleBookmarks toggles the side panel on its bookmarks tab.
func (ui *BrowserUI) onToggleBookmarks() {
	ui.togglePanel(model.PanelBookmarks)
}

// onToggleDownloads toggles the side panel on its downloads tab.
func (ui *BrowserUI) onToggleDownloads() {
	ui.togglePanel(model.PanelDownloads)
}

// togglePanel shows or hides the side panel, selecting the given tab.
func (ui *BrowserUI) togglePanel(tab model.PanelTab) {
	if ui.state.TogglePanel(tab) {
		ui.refreshSidePanelData()
		ui.sidePanel.SelectTab(tab)
		ui.sidePanel.Container().Show()
	} else {
		ui.sidePanel.Container().Hide()
	}
}

// refreshSidePanelData pushes current store data into the side panel lists.
func (ui *BrowserUI) refreshSidePanelData() {
	ui.sidePanel.SetBookmarks(ui.store.Bookmarks())
	ui.sidePanel.SetHistory(ui.store.RecentHistory(HistoryDisplayLimit))
	ui.sidePanel.SetDownloads(ui.downloadSvc.List())
	ui.sidePanel.SetDownloadPath(ui.store.DownloadPath())
}

// onBookmarkSelect navigates to a bookmark chosen in the side panel.
func (ui *BrowserUI) onBookmarkSelect(url string) {
	ui.addressEntry.SetText(url)
	ui.onNavigate()
}

// onHistorySelect navigates to a history entry chosen in the side panel.
func (ui *BrowserUI) onHistorySelect(url string) {
	ui.addressEntry.SetText(url)
	ui.onNavigate()
}

// onAddBookmark bookmarks the current page. Empty and about:blank URLs are
// silently ignored, matching the store's sentinel rule.
func (ui *BrowserUI) onAddBookmark() {
	item := ui.tabs.Selected()
	view, ok := ui.tabViews[item]
	if !ok {
		return
	}

	title := view.tab.DisplayTitle()
	added, err := ui.store.AddBookmark(title, view.tab.URL)
	if err != nil {
		log.Printf("Failed to persist bookmark: %v", err)
	}
	if !added {
		return
	}

	ui.sidePanel.SetBookmarks(ui.store.Bookmarks())
	dialog.ShowInformation(
		ui.localization.GetText(KeyBookmarkAdded),
		fmt.Sprintf(ui.localization.GetText(KeyBookmarkAddedMsg), title),
		ui.window,
	)
}

// onClearHistory empties the history after an explicit confirmation.
func (ui *BrowserUI) onClearHistory() {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyClearHistory),
		ui.localization.GetText(KeyClearHistoryMsg),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.store.ClearHistory(); err != nil {
				log.Printf("Failed to clear history: %v", err)
			}
			ui.sidePanel.SetHistory(ui.store.RecentHistory(HistoryDisplayLimit))
		},
		ui.window,
	)
}

// onChangeDownloadPath lets the user pick a new download directory. A
// cancelled picker is a no-op.
func (ui *BrowserUI) onChangeDownloadPath() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}

		dir := uri.Path()
		if err := ui.store.SetDownloadPath(dir); err != nil {
			log.Printf("Failed to persist download path: %v", err)
			return
		}
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			log.Printf("Failed to ensure download dir: %v", err)
		}
		ui.sidePanel.SetDownloadPath(dir)
	}, ui.window)
}

// onOpenDownloadFolder opens the configured download directory in the host
// file manager. Failure is fatal to this action only.
func (ui *BrowserUI) onOpenDownloadFolder() {
	dir := ui.store.DownloadPath()
	if err := platform.OpenFolderInManager(dir); err != nil {
		log.Printf("Error opening download folder %s: %v", dir, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err), ui.window)
	}
}

// OnProfileReloaded reacts to an external profile file change: it reapplies
// the theme and refreshes the side panel. Safe to call from any goroutine.
func (ui *BrowserUI) OnProfileReloaded(p *config.Profile) {
	fyne.Do(func() {
		if p.Theme != ui.state.CurrentTheme {
			ui.ApplyTheme(p.Theme)
		}
		ui.refreshSidePanelData()
	})
}
