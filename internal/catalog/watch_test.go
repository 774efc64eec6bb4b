package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePack(t *testing.T, path, id string) {
	t.Helper()
	src := "[[playlists]]\nid = \"" + id + "\"\ntitle = \"T\"\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
}

func waitReload(t *testing.T, w *Watcher) Reload {
	t.Helper()
	select {
	case r := <-w.Reloads():
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return Reload{}
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.toml")
	writePack(t, path, "first")

	w, err := Watch(path, 20*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	writePack(t, path, "second")
	r := waitReload(t, w)
	require.NoError(t, r.Err)
	require.Len(t, r.Pack.Playlists, 1)
	assert.Equal(t, "second", r.Pack.Playlists[0].ID)
}

func TestWatcher_ReportsInvalidPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.toml")
	writePack(t, path, "first")

	w, err := Watch(path, 20*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	require.NoError(t, os.WriteFile(path, []byte("[[playlists]]\ntitle = \"no id\"\n"), 0o644))
	r := waitReload(t, w)
	assert.ErrorIs(t, r.Err, ErrInvalidPack)
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.toml")
	writePack(t, path, "first")

	w, err := Watch(path, 20*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	writePack(t, filepath.Join(dir, "other.toml"), "other")
	select {
	case r := <-w.Reloads():
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.toml")
	writePack(t, path, "first")

	w, err := Watch(path, 0, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
