package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/cactusbrowse/cactus-browser/internal/config"
	"github.com/cactusbrowse/cactus-browser/internal/download"
	"github.com/cactusbrowse/cactus-browser/internal/model"
	"github.com/cactusbrowse/cactus-browser/internal/platform"
	"github.com/cactusbrowse/cactus-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.cactusbrowse.cactus-browser"
	AppName = "CactusBrowser"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Load the profile; any read/parse error falls back to defaults
	store := config.NewStore(config.ConfigFileName)
	profile := store.LoadOrDefault()

	if err := platform.CreateDirectoryIfNotExists(profile.DownloadPath); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	// Create and setup UI
	state := model.NewAppState(profile.Theme)
	downloadSvc := download.NewService()
	browser := ui.NewBrowserUI(myWindow, myApp, store, state, downloadSvc)
	browser.ApplyTheme(profile.Theme)

	// Pick up external edits of the profile file while running
	watcher, err := config.NewWatcher(store, browser.OnProfileReloaded)
	if err != nil {
		log.Printf("Profile watcher unavailable: %v", err)
	} else if err := watcher.Start(); err != nil {
		log.Printf("Failed to start profile watcher: %v", err)
	} else {
		defer watcher.Stop()
	}

	// Show and run
	myWindow.ShowAndRun()
}
