// Command affirm-say plays a playlist in the terminal without the TUI: each
// affirmation is printed as the player reaches it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/affirm/internal/applog"
	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/config"
	"github.com/llehouerou/affirm/internal/playback"
	"github.com/llehouerou/affirm/internal/sequence"
)

func main() {
	var (
		content  = flag.String("content", "", "content pack file (default: built-in pack, or content_file from config)")
		playlist = flag.String("playlist", "", "playlist id (default: first playlist)")
		start    = flag.Int("start", 1, "affirmation to start from, 1-based")
		interval = flag.Duration("interval", 0, "time per affirmation (default: player.interval from config)")
		list     = flag.Bool("list", false, "list playlists and exit")
		level    = flag.String("log-level", "warn", "log level for diagnostics on stderr")
	)
	flag.Parse()

	log := applog.Console(os.Stderr, *level)
	if err := run(os.Stdout, log, options{
		content:  *content,
		playlist: *playlist,
		start:    *start - 1,
		interval: *interval,
		list:     *list,
	}); err != nil {
		log.Error().Err(err).Msg("affirm-say")
		os.Exit(1)
	}
}

type options struct {
	content  string
	playlist string
	start    int
	interval time.Duration
	list     bool
}

func run(out io.Writer, log zerolog.Logger, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.content == "" {
		opts.content = cfg.ContentFile
	}
	pack, err := catalog.LoadContent(opts.content)
	if err != nil {
		return err
	}

	if opts.list {
		for _, p := range pack.Playlists {
			fmt.Fprintf(out, "%-24s %s (%d)\n", p.ID, p.Title, len(p.Affirmations))
		}
		return nil
	}

	pl, err := findPlaylist(pack, opts.playlist)
	if err != nil {
		return err
	}
	seq, err := pl.Sequence()
	if err != nil {
		return err
	}

	pc := cfg.GetPlayerConfig()
	if opts.interval > 0 {
		pc.Interval = opts.interval
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return play(ctx, out, log, seq.Len(), playback.OpenRequest{
		PlaylistID: pl.ID,
		Title:      pl.Title,
		Sequence:   seq,
		StartIndex: opts.start,
		Seeker:     printer(out, seq.Items()),
	}, playback.Options{
		Interval:   pc.Interval,
		RetryDelay: pc.SeekRetryDelay,
		Logger:     log,
	})
}

func findPlaylist(pack catalog.Pack, id string) (catalog.PackPlaylist, error) {
	if len(pack.Playlists) == 0 {
		return catalog.PackPlaylist{}, fmt.Errorf("content pack has no playlists: %w", catalog.ErrNotFound)
	}
	if id == "" {
		return pack.Playlists[0], nil
	}
	for _, p := range pack.Playlists {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.PackPlaylist{}, fmt.Errorf("playlist %q: %w", id, catalog.ErrNotFound)
}

// printer is a display that shows the affirmation it is asked to seek to.
func printer(out io.Writer, items []sequence.Item) playback.Seeker {
	return playback.SeekerFunc(func(index int, _ bool) error {
		if index < 0 || index >= len(items) {
			return fmt.Errorf("index %d out of %d", index, len(items))
		}
		_, err := fmt.Fprintf(out, "[%d/%d] %s\n", index+1, len(items), items[index].Text)
		return err
	})
}

// play runs one session to its end, or until ctx is done.
func play(ctx context.Context, out io.Writer, log zerolog.Logger, n int, req playback.OpenRequest, opts playback.Options) error {
	host := playback.NewHost(opts)
	defer host.Close()

	if n == 0 {
		fmt.Fprintln(out, "Nothing to play in this playlist.")
		return nil
	}

	fmt.Fprintf(out, "%s\n\n", req.Title)
	sess := host.Open(req)
	sub := sess.Subscribe()
	// Sessions seek on open only for a non-zero start.
	if sess.Index() == 0 {
		sess.SeekTo(0, false)
	}
	sess.Play()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("interrupted")
			return nil
		case e := <-sub.Error:
			log.Warn().Err(e.Err).Str("op", e.Operation).Int("index", e.Index).Msg("display error")
		case <-sub.Finished:
			stats := sess.Stats()
			log.Debug().Interface("stats", stats).Msg("session finished")
			fmt.Fprintf(out, "\nSession complete: %d affirmations.\n", n)
			return nil
		case <-sub.Done:
			return nil
		case <-sub.IndexChanged:
		case <-sub.StateChanged:
		}
	}
}
