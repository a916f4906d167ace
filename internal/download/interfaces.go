package download

import (
	"github.com/cactusbrowse/cactus-browser/internal/model"
)

// Tracker defines the interface for the downloads panel backend.
type Tracker interface {
	SetUpdateCallback(func([]*model.DownloadEntry))
	Add(filename string, size int64, status model.DownloadStatus) *model.DownloadEntry
	SetStatus(id string, status model.DownloadStatus) error
	List() []*model.DownloadEntry
	Count() int
	Clear()
}
