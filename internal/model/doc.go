package model

// Package model defines domain data structures used across the app: browser
// tabs, download entries, status enums, and the explicit application view
// state. Structures are designed for direct use in the UI.
