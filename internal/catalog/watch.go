package catalog

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultReloadDebounce coalesces the bursts of events editors produce on save.
const DefaultReloadDebounce = 300 * time.Millisecond

// Reload is the result of re-reading a watched content pack.
type Reload struct {
	Path string
	Pack Pack
	Err  error
}

// Watcher reloads a content pack whenever its file changes.
type Watcher struct {
	path     string
	debounce time.Duration
	log      zerolog.Logger
	fs       *fsnotify.Watcher
	out      chan Reload
	done     chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// Watch starts watching path. The parent directory is watched so that
// editors replacing the file by rename keep being observed.
func Watch(path string, debounce time.Duration, log zerolog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		log:      log.With().Str("content", abs).Logger(),
		fs:       fs,
		out:      make(chan Reload, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Reloads delivers parsed packs. Only the latest unread result is kept.
func (w *Watcher) Reloads() <-chan Reload {
	return w.out
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fs.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("content watcher error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}
	pack, err := LoadPackFile(w.path)
	if err != nil {
		w.log.Warn().Err(err).Msg("content reload failed")
	} else {
		w.log.Info().Int("playlists", len(pack.Playlists)).Msg("content changed")
	}
	r := Reload{Path: w.path, Pack: pack, Err: err}

	// Replace an unread result rather than block.
	select {
	case <-w.out:
	default:
	}
	select {
	case w.out <- r:
	default:
	}
}

// LoadContent returns the pack at path, or the built-in pack when path is
// empty.
func LoadContent(path string) (Pack, error) {
	if path == "" {
		return DefaultPack()
	}
	return LoadPackFile(path)
}
