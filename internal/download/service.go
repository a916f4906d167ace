package download

import (
	"fmt"
	"sync"

	"github.com/cactusbrowse/cactus-browser/internal/model"
)

// Service keeps the in-memory list of download entries in insertion order.
type Service struct {
	entries      []*model.DownloadEntry
	entriesMutex sync.RWMutex
	onUpdate     func([]*model.DownloadEntry) // callback for UI updates
}

// NewService creates a new download tracking service
func NewService() *Service {
	return &Service{}
}

// SetUpdateCallback sets the callback invoked after every list change
func (s *Service) SetUpdateCallback(callback func([]*model.DownloadEntry)) {
	s.onUpdate = callback
}

// Add appends a new download entry and notifies the UI
func (s *Service) Add(filename string, size int64, status model.DownloadStatus) *model.DownloadEntry {
	s.entriesMutex.Lock()
	entry := model.NewDownloadEntry(filename, size, status)
	s.entries = append(s.entries, entry)
	s.entriesMutex.Unlock()

	s.notifyUpdate()
	return entry
}

// SetStatus updates the status of an entry by ID
func (s *Service) SetStatus(id string, status model.DownloadStatus) error {
	s.entriesMutex.Lock()
	var found *model.DownloadEntry
	for _, entry := range s.entries {
		if entry.ID == id {
			found = entry
			break
		}
	}
	if found == nil {
		s.entriesMutex.Unlock()
		return fmt.Errorf("download entry not found: %s", id)
	}
	found.Status = status
	s.entriesMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// List returns a copy of the current entries
func (s *Service) List() []*model.DownloadEntry {
	s.entriesMutex.RLock()
	defer s.entriesMutex.RUnlock()

	entries := make([]*model.DownloadEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Count returns the number of entries
func (s *Service) Count() int {
	s.entriesMutex.RLock()
	defer s.entriesMutex.RUnlock()
	return len(s.entries)
}

// Clear removes all entries and notifies the UI
func (s *Service) Clear() {
	s.entriesMutex.Lock()
	s.entries = nil
	s.entriesMutex.Unlock()

	s.notifyUpdate()
}

// notifyUpdate calls the update callback with a fresh copy of the list
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate(s.List())
	}
}
