package platform

// Package platform contains OS/platform integration glue: filesystem helpers
// for the download directory and opening folders in the host file manager.
