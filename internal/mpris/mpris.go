//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/affirm/internal/playback"
)

// Adapter exposes the player session to MPRIS over D-Bus, so media keys and
// desktop widgets can play, pause and step through affirmations.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. interval is reported as each
// affirmation's length.
func New(host Host, interval time.Duration) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("affirm", &rootAdapter{}, &playerAdapter{host: host, interval: interval}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Affirm", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return nil, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return nil, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	host     Host
	interval time.Duration
}

func (p *playerAdapter) session() (*playback.Session, error) {
	s, ok := p.host.Current()
	if !ok {
		return nil, playback.ErrNoSession
	}
	return s, nil
}

func (p *playerAdapter) step(delta int) error {
	s, err := p.session()
	if err != nil {
		return err
	}
	s.SeekTo(s.Index()+delta, true)
	return nil
}

func (p *playerAdapter) Next() error {
	return p.step(1)
}

func (p *playerAdapter) Previous() error {
	return p.step(-1)
}

func (p *playerAdapter) Pause() error {
	s, err := p.session()
	if err != nil {
		return err
	}
	s.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	return p.host.TogglePlayPause()
}

func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	s, err := p.session()
	if err != nil {
		return err
	}
	s.Play()
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // positions are whole affirmations
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s, ok := p.host.Current()
	switch {
	case !ok:
		return types.PlaybackStatusStopped, nil
	case s.IsPlaying():
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s, ok := p.host.Current()
	if !ok {
		return types.Metadata{}, nil
	}
	item, ok := s.Current()
	if !ok {
		return types.Metadata{}, nil
	}
	info := s.Info()
	return types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(info.PlaylistID, item.ID)),
		Length:      types.Microseconds(p.interval.Microseconds()),
		Title:       item.Text,
		Artist:      []string{"Affirm"},
		Album:       info.Title,
		TrackNumber: s.Index() + 1,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	s, ok := p.host.Current()
	if !ok {
		return false, nil
	}
	return s.Index() < s.Sequence().Len()-1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	s, ok := p.host.Current()
	if !ok {
		return false, nil
	}
	return s.Index() > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	s, ok := p.host.Current()
	if !ok {
		return false, nil
	}
	return !s.Sequence().IsEmpty(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	_, ok := p.host.Current()
	return ok, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(playlistID, itemID string) string {
	h := fnv.New64a()
	h.Write([]byte(playlistID))
	h.Write([]byte{0})
	h.Write([]byte(itemID))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
