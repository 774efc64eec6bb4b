// internal/app/player.go
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/affirm/internal/app/handler"
	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/errmsg"
	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/keymap"
	"github.com/llehouerou/affirm/internal/notify"
	"github.com/llehouerou/affirm/internal/playback"
	"github.com/llehouerou/affirm/internal/ui/overlay"
	"github.com/llehouerou/affirm/internal/ui/pager"
	"github.com/llehouerou/affirm/internal/ui/playerbar"
	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// PlayerState is the open player session and the pager it drives. It
// outlives the full-screen view: hiding the player keeps it running under
// the browse screens.
type PlayerState struct {
	Session  *playback.Session
	Sub      *playback.Subscription
	Pager    *pager.Pager
	Playlist catalog.Playlist
}

// Open reports whether a session is open.
func (p PlayerState) Open() bool {
	return p.Session != nil
}

// sessionID is the open session's id, empty when none.
func (p PlayerState) sessionID() string {
	if p.Session == nil {
		return ""
	}
	return p.Session.Info().ID
}

// openPlayer opens playlist p at start, replacing any open session, and
// shows the full-screen player.
func (m *Model) openPlayer(p catalog.Playlist, start int) tea.Cmd {
	seq, err := m.Catalog.Sequence(p.ID)
	if err != nil {
		return m.showError(errmsg.OpPlaybackStart, err)
	}

	if m.Player.Pager != nil {
		m.Player.Pager.Close()
	}
	pg := pager.New(seq.Items())
	m.Player = PlayerState{Pager: pg, Playlist: p}
	m.showPlayer()
	m.resize()

	sess := m.Host.Open(playback.OpenRequest{
		PlaylistID: p.ID,
		Title:      p.Title,
		Sequence:   seq,
		StartIndex: start,
		Seeker:     pg,
	})
	m.Player.Session = sess
	m.Player.Sub = sess.Subscribe()
	if m.PlayerCfg.Autoplay {
		sess.Play()
	}

	return tea.Batch(
		pg.WaitSeeked(),
		WatchSessionEvents(sess.Info().ID, m.Player.Sub),
		RecordSessionCmd(m.Catalog, p.ID),
	)
}

// closePlayer ends the session and drops the player.
func (m *Model) closePlayer() {
	if !m.Player.Open() {
		return
	}
	_ = m.Host.Close()
	m.dropPlayer()
}

func (m *Model) dropPlayer() {
	if m.Player.Pager != nil {
		m.Player.Pager.Close()
	}
	m.Player = PlayerState{}
	if m.Screen == ScreenPlayer {
		m.Screen = m.prevScreen
	}
	m.resize()
}

// showPlayer brings up the full-screen player over the current screen.
func (m *Model) showPlayer() {
	if m.Screen != ScreenPlayer {
		m.prevScreen = m.Screen
		m.Screen = ScreenPlayer
	}
}

// hidePlayer returns to the screen under the player. The session keeps
// playing in the player bar.
func (m *Model) hidePlayer() {
	if m.Screen == ScreenPlayer {
		m.Screen = m.prevScreen
	}
}

func (m *Model) handlePlayerAction(a keymap.Action) handler.Result {
	p := m.Player
	if !p.Open() {
		return handler.NotHandled
	}
	switch a {
	case keymap.ActionPlayPause:
		p.Session.TogglePlayPause()
	case keymap.ActionNextItem:
		return handler.Handled(p.Pager.ScrollBy(1))
	case keymap.ActionPrevItem:
		return handler.Handled(p.Pager.ScrollBy(-1))
	case keymap.ActionFirstItem:
		return handler.Handled(p.Pager.ScrollTo(0))
	case keymap.ActionLastItem:
		return handler.Handled(p.Pager.ScrollTo(p.Pager.Len() - 1))
	case keymap.ActionToggleFavorite:
		return handler.Handled(ToggleFavoriteCmd(m.Catalog, p.Playlist.ID))
	case keymap.ActionHidePlayer:
		m.hidePlayer()
	case keymap.ActionClosePlayer:
		m.closePlayer()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handlePagerMsg routes the pager's own messages. Visibility reports feed
// the session's manual position tracking.
func (m *Model) handlePagerMsg(msg tea.Msg) tea.Cmd {
	pg := m.Player.Pager
	if pg == nil {
		return nil
	}
	if v, ok := msg.(pager.VisibleMsg); ok {
		if v.ID == pg.ID() && m.Player.Session != nil {
			m.Player.Session.ObserveVisible(v.Index)
		}
		return nil
	}
	return pg.Update(msg)
}

// handleSessionMsg reacts to a session event and keeps listening while the
// session is the open one.
func (m *Model) handleSessionMsg(id string, msg tea.Msg) tea.Cmd {
	if id != m.Player.sessionID() {
		return nil
	}
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case SessionIndexMsg:
		m.Log.Debug().
			Int("index", msg.Change.Current).
			Str("cause", msg.Change.Cause.String()).
			Msg("position changed")
	case SessionFinishedMsg:
		title := m.Player.Playlist.Title
		n := m.Player.Session.Sequence().Len()
		cmd = tea.Batch(
			m.showToast(icons.Finished()+" Session complete", overlay.Info),
			NotifyCmd(m.notifier(), notify.SessionComplete(title, n)),
		)
	case SessionErrorMsg:
		// A dropped seek resyncs on the next tick or scroll; the engine
		// already logged it.
		m.Log.Debug().Err(msg.Event.Err).
			Str("op", msg.Event.Operation).
			Int("index", msg.Event.Index).
			Msg("display out of sync")
	case SessionClosedMsg:
		// Closed by the host, e.g. from another surface.
		m.dropPlayer()
		return nil
	}
	return tea.Batch(cmd, WatchSessionEvents(id, m.Player.Sub))
}

func (m Model) renderPlayer() string {
	s := styles.T().S()
	width := m.Width
	st := playerbar.NewState(m.Player.Session)

	fav := ""
	if m.Player.Playlist.Favorite {
		fav = s.Favorite.Render(icons.Favorite()) + " "
	}
	header := render.Row(
		" "+styles.Brand(render.TruncateEllipsis(icons.FormatPlaylist(st.Title), width/2)),
		fav+s.Subtle.Render("esc hide  x close "),
		width,
	)

	transport := icons.Transport(st.Playing)
	if st.Finished() {
		transport = icons.Finished()
	}
	controls := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		s.Active.Render(transport)+"   "+s.Base.Render(st.Position()))
	rule := styles.GradientRule(width, int(st.Ratio()*float64(width)))
	hints := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		m.Help.ShortHelpView(keymap.HelpKeys(keymap.ContextPlayer)))

	return strings.Join([]string{
		header,
		m.Player.Pager.View(),
		rule,
		controls,
		render.TruncateEllipsis(hints, width),
	}, "\n")
}
