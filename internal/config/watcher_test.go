package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnExternalWrite(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save())

	reloaded := make(chan *Profile, 1)
	w, err := NewWatcher(s, func(p *Profile) {
		select {
		case reloaded <- p:
		default:
		}
	})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	// Simulate an external edit of the profile file.
	data := []byte(`{"theme":"Dark","homepage":"https://example.org","download_path":"/tmp/d","bookmarks":[],"history":[]}`)
	require.NoError(t, os.WriteFile(s.Path(), data, 0644))

	select {
	case p := <-reloaded:
		require.Equal(t, "Dark", p.Theme)
		require.Equal(t, "https://example.org", p.Homepage)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the external profile change")
	}

	require.Equal(t, "Dark", s.Theme())
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	w, err := NewWatcher(s, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
