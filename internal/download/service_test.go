package download

import (
	"testing"

	"github.com/cactusbrowse/cactus-browser/internal/model"
)

func TestService_Add(t *testing.T) {
	svc := NewService()

	entry := svc.Add("report.pdf", 2048, model.DownloadStatusCompleted)
	if entry.ID == "" {
		t.Error("Expected generated entry ID")
	}

	if svc.Count() != 1 {
		t.Errorf("Expected 1 entry, got %d", svc.Count())
	}

	entries := svc.List()
	if entries[0].Filename != "report.pdf" {
		t.Errorf("Expected filename 'report.pdf', got '%s'", entries[0].Filename)
	}
}

func TestService_SetStatus(t *testing.T) {
	svc := NewService()
	entry := svc.Add("archive.zip", 0, model.DownloadStatusInProgress)

	if err := svc.SetStatus(entry.ID, model.DownloadStatusCompleted); err != nil {
		t.Fatalf("SetStatus() returned error: %v", err)
	}

	if svc.List()[0].Status != model.DownloadStatusCompleted {
		t.Error("Expected status to be updated")
	}

	if err := svc.SetStatus("no-such-id", model.DownloadStatusFailed); err == nil {
		t.Error("Expected error for unknown entry ID")
	}
}

func TestService_UpdateCallback(t *testing.T) {
	svc := NewService()

	var calls int
	var lastLen int
	svc.SetUpdateCallback(func(entries []*model.DownloadEntry) {
		calls++
		lastLen = len(entries)
	})

	svc.Add("a.bin", 1, model.DownloadStatusInProgress)
	svc.Add("b.bin", 2, model.DownloadStatusInProgress)
	svc.Clear()

	if calls != 3 {
		t.Errorf("Expected 3 callback invocations, got %d", calls)
	}
	if lastLen != 0 {
		t.Errorf("Expected empty list after clear, got %d entries", lastLen)
	}
}

func TestService_ListReturnsCopy(t *testing.T) {
	svc := NewService()
	svc.Add("a.bin", 1, model.DownloadStatusInProgress)

	entries := svc.List()
	entries[0] = nil

	if svc.List()[0] == nil {
		t.Error("Expected List() to return a copy of the slice")
	}
}
