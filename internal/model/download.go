package model

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// DownloadStatus represents the status of a download entry
type DownloadStatus string

const (
	// DownloadStatusInProgress means the transfer is still running
	DownloadStatusInProgress DownloadStatus = "In Progress"

	// DownloadStatusCompleted means the transfer finished successfully
	DownloadStatusCompleted DownloadStatus = "Completed"

	// DownloadStatusFailed means the transfer failed
	DownloadStatusFailed DownloadStatus = "Failed"
)

// String returns the string representation of DownloadStatus
func (ds DownloadStatus) String() string {
	return string(ds)
}

// IsFinished returns true if the download is in a terminal state
func (ds DownloadStatus) IsFinished() bool {
	return ds == DownloadStatusCompleted || ds == DownloadStatusFailed
}

// DownloadEntry represents one row of the downloads panel. There is no
// transfer pipeline behind it; entries only carry display metadata.
type DownloadEntry struct {
	ID       string
	Filename string
	Size     int64
	Status   DownloadStatus
	Date     time.Time
}

// NewDownloadEntry creates a download entry with a generated ID, dated now.
func NewDownloadEntry(filename string, size int64, status DownloadStatus) *DownloadEntry {
	return &DownloadEntry{
		ID:       uuid.NewString(),
		Filename: filename,
		Size:     size,
		Status:   status,
		Date:     time.Now(),
	}
}

// SizeString returns the file size in human readable form, or "—" when the
// size is unknown.
func (d *DownloadEntry) SizeString() string {
	if d.Size <= 0 {
		return "—"
	}
	return humanize.Bytes(uint64(d.Size))
}

// DateString returns the entry date at minute precision for the panel.
func (d *DownloadEntry) DateString() string {
	return d.Date.Format("2006-01-02 15:04")
}
