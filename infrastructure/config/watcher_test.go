package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfigFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestWatcherReloadsViewConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfigFile(t, path, "view:\n  default_page_size: 10\n")

	w, err := NewWatcher(path, ViewConfig{DefaultPageSize: 10, PageSizeOptions: []int{5, 10}}, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan ViewConfig, 1)
	w.OnChange(func(v ViewConfig) {
		select {
		case changed <- v:
		default:
		}
	})

	writeConfigFile(t, path, "view:\n  default_page_size: 20\n")

	select {
	case v := <-changed:
		assert.Equal(t, 20, v.DefaultPageSize)
		assert.Equal(t, 20, w.Current().DefaultPageSize)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not publish the reloaded view config")
	}
}

func TestWatcherRejectsInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfigFile(t, path, "view:\n  default_page_size: 10\n")

	initial := ViewConfig{DefaultPageSize: 10, PageSizeOptions: []int{5, 10}}
	w, err := NewWatcher(path, initial, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	writeConfigFile(t, path, "view:\n  default_page_size: 0\n")

	// Give the debounce and reload a chance to run; the invalid file
	// must not replace the held config.
	time.Sleep(600 * time.Millisecond)
	assert.Equal(t, initial.DefaultPageSize, w.Current().DefaultPageSize)
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfigFile(t, path, "view:\n  default_page_size: 10\n")

	w, err := NewWatcher(path, ViewConfig{DefaultPageSize: 10, PageSizeOptions: []int{5}}, zap.NewNop())
	require.NoError(t, err)

	w.Stop()
	w.Stop()
}
