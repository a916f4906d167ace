package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/cactusbrowse/cactus-browser/internal/config"
	"github.com/cactusbrowse/cactus-browser/internal/model"
)

// SidePanel is the auxiliary UI region hosting the bookmarks, downloads, and
// history tabs. Data is pushed in via the Set* methods; user actions flow out
// through the callbacks.
type SidePanel struct {
	window       fyne.Window
	localization *Localization

	root      *fyne.Container
	panelTabs *container.AppTabs

	bookmarksList     *widget.List
	historyList       *widget.List
	downloadsList     *widget.List
	downloadPathEntry *widget.Entry

	bookmarks []config.Bookmark
	history   []config.HistoryEntry
	downloads []*model.DownloadEntry

	onBookmarkSelect     func(url string)
	onHistorySelect      func(url string)
	onAddBookmark        func()
	onClearHistory       func()
	onChangeDownloadPath func()
	onOpenDownloadFolder func()
}

// NewSidePanel creates the side panel with empty lists.
func NewSidePanel(window fyne.Window, localization *Localization) *SidePanel {
	sp := &SidePanel{
		window:       window,
		localization: localization,
	}

	sp.createUI()
	return sp
}

// SetCallbacks wires the panel's user actions to the root UI.
func (sp *SidePanel) SetCallbacks(
	onBookmarkSelect func(url string),
	onHistorySelect func(url string),
	onAddBookmark func(),
	onClearHistory func(),
	onChangeDownloadPath func(),
	onOpenDownloadFolder func(),
) {
	sp.onBookmarkSelect = onBookmarkSelect
	sp.onHistorySelect = onHistorySelect
	sp.onAddBookmark = onAddBookmark
	sp.onClearHistory = onClearHistory
	sp.onChangeDownloadPath = onChangeDownloadPath
	sp.onOpenDownloadFolder = onOpenDownloadFolder
}

// Container returns the panel's root container for layout and visibility.
func (sp *SidePanel) Container() *fyne.Container {
	return sp.root
}

// SelectTab switches the panel to the given tab.
func (sp *SidePanel) SelectTab(tab model.PanelTab) {
	index := int(tab)
	if index >= 0 && index < len(sp.panelTabs.Items) {
		sp.panelTabs.SelectIndex(index)
	}
}

// createUI builds the three panel tabs.
func (sp *SidePanel) createUI() {
	sp.panelTabs = container.NewAppTabs(
		container.NewTabItem(sp.localization.GetText(KeyBookmarks), sp.createBookmarksTab()),
		container.NewTabItem(sp.localization.GetText(KeyDownloads), sp.createDownloadsTab()),
		container.NewTabItem(sp.localization.GetText(KeyHistory), sp.createHistoryTab()),
	)

	// Invisible spacer keeps the panel at its fixed width
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(SidePanelWidth, 0))

	sp.root = container.NewStack(spacer, sp.panelTabs)
}

// createBookmarksTab builds the bookmarks tab content.
func (sp *SidePanel) createBookmarksTab() fyne.CanvasObject {
	addBtn := widget.NewButton(sp.localization.GetText(KeyAddCurrentPage), func() {
		if sp.onAddBookmark != nil {
			sp.onAddBookmark()
		}
	})

	sp.bookmarksList = widget.NewList(
		func() int { return len(sp.bookmarks) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(sp.bookmarks) {
				return
			}
			b := sp.bookmarks[id]
			obj.(*widget.Label).SetText(fmt.Sprintf(BookmarkLabelFormat, b.Title, b.URL))
		},
	)
	sp.bookmarksList.OnSelected = func(id widget.ListItemID) {
		defer sp.bookmarksList.UnselectAll()
		if id >= len(sp.bookmarks) || sp.onBookmarkSelect == nil {
			return
		}
		sp.onBookmarkSelect(sp.bookmarks[id].URL)
	}

	return container.NewBorder(addBtn, nil, nil, nil, sp.bookmarksList)
}

// createDownloadsTab builds the downloads tab content.
func (sp *SidePanel) createDownloadsTab() fyne.CanvasObject {
	pathLabel := widget.NewLabel(sp.localization.GetText(KeyDownloadPath))

	sp.downloadPathEntry = widget.NewEntry()
	sp.downloadPathEntry.Disable()

	changeBtn := widget.NewButton(sp.localization.GetText(KeyChange), func() {
		if sp.onChangeDownloadPath != nil {
			sp.onChangeDownloadPath()
		}
	})

	pathRow := container.NewBorder(pathLabel, nil, nil, changeBtn, sp.downloadPathEntry)

	sp.downloadsList = widget.NewList(
		func() int { return len(sp.downloads) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(sp.downloads) {
				return
			}
			d := sp.downloads[id]
			obj.(*widget.Label).SetText(
				d.Filename + ListSeparator + d.SizeString() + ListSeparator +
					d.Status.String() + ListSeparator + d.DateString())
		},
	)

	openBtn := widget.NewButton(sp.localization.GetText(KeyOpenDownloadFolder), func() {
		if sp.onOpenDownloadFolder != nil {
			sp.onOpenDownloadFolder()
		}
	})

	return container.NewBorder(pathRow, openBtn, nil, nil, sp.downloadsList)
}

// createHistoryTab builds the history tab content.
func (sp *SidePanel) createHistoryTab() fyne.CanvasObject {
	clearBtn := widget.NewButton(sp.localization.GetText(KeyClearHistory), func() {
		if sp.onClearHistory != nil {
			sp.onClearHistory()
		}
	})

	sp.historyList = widget.NewList(
		func() int { return len(sp.history) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(sp.history) {
				return
			}
			h := sp.history[id]
			obj.(*widget.Label).SetText(fmt.Sprintf(HistoryLabelFormat, h.Timestamp, h.Title))
		},
	)
	sp.historyList.OnSelected = func(id widget.ListItemID) {
		defer sp.historyList.UnselectAll()
		if id >= len(sp.history) || sp.onHistorySelect == nil {
			return
		}
		sp.onHistorySelect(sp.history[id].URL)
	}

	return container.NewBorder(clearBtn, nil, nil, nil, sp.historyList)
}

// SetBookmarks replaces the bookmark list and refreshes the view.
func (sp *SidePanel) SetBookmarks(bookmarks []config.Bookmark) {
	sp.bookmarks = bookmarks
	sp.bookmarksList.Refresh()
}

// SetHistory replaces the displayed history window and refreshes the view.
// Callers pass the most recent entries only; the panel shows them as given.
func (sp *SidePanel) SetHistory(history []config.HistoryEntry) {
	sp.history = history
	sp.historyList.Refresh()
}

// SetDownloads replaces the downloads list and refreshes the view.
func (sp *SidePanel) SetDownloads(downloads []*model.DownloadEntry) {
	sp.downloads = downloads
	sp.downloadsList.Refresh()
}

// SetDownloadPath updates the read-only download path field.
func (sp *SidePanel) SetDownloadPath(dir string) {
	sp.downloadPathEntry.SetText(dir)
}
