package ui

// Package ui contains the Fyne-based desktop user interface for the browser
// shell. It wires user interactions to the profile store and renders tabs,
// the side panel, and the theme picker. All UI strings are localized via
// Localization. The web engine itself is stubbed with a placeholder label.
