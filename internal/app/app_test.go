// internal/app/app_test.go
package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/config"
	"github.com/llehouerou/affirm/internal/notify"
	"github.com/llehouerou/affirm/internal/playback"
	"github.com/llehouerou/affirm/internal/search"
	"github.com/llehouerou/affirm/internal/state"
	"github.com/llehouerou/affirm/internal/ui/pager"
	"github.com/llehouerou/affirm/internal/ui/tabbar"
	"github.com/llehouerou/affirm/internal/ui/testutil"
)

const testPlaylist = "mindful-moments"

type recordingNotifier struct {
	sent []notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) (uint32, error) {
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil
}

func (r *recordingNotifier) Close(uint32) error { return nil }

// newTestModel returns a sized model with the built-in pack loaded. The
// engine's interval is long enough that no tick fires during a test.
func newTestModel(t *testing.T) Model {
	t.Helper()
	pack, err := catalog.DefaultPack()
	if err != nil {
		t.Fatalf("DefaultPack() error = %v", err)
	}
	host := playback.NewHost(playback.Options{Interval: time.Hour})
	t.Cleanup(func() { _ = host.Close() })

	m := New(Deps{
		Catalog:  catalog.NewMock(pack),
		Host:     host,
		Notifier: &recordingNotifier{},
		Config:   &config.Config{},
		Logger:   zerolog.Nop(),
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return mustLoadBrowse(t, m)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	if !ok {
		t.Fatal("Update should return Model")
	}
	return result, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, testutil.KeyMsg(k))
	}
	return m
}

// run delivers every message a non-blocking command produces.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range testutil.Drain(cmd) {
		m, _ = update(t, m, msg)
	}
	return m
}

func mustLoadBrowse(t *testing.T, m Model) Model {
	t.Helper()
	return run(t, m, LoadBrowseCmd(m.Catalog))
}

// openDetailPage loads the test playlist's detail page.
func openDetailPage(t *testing.T, m Model) Model {
	t.Helper()
	m = run(t, m, LoadPlaylistCmd(m.Catalog, testPlaylist))
	if m.Screen != ScreenDetail {
		t.Fatalf("Screen = %v, want detail", m.Screen)
	}
	return m
}

func TestUpdate_WindowSizeMsg_ResizesComponents(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	if m.Width != 120 || m.Height != 30 {
		t.Errorf("size = %dx%d, want 120x30", m.Width, m.Height)
	}
	if got := len(strings.Split(m.View(), "\n")); got != 30 {
		t.Errorf("view has %d lines, want 30", got)
	}
}

func TestBrowseLoaded_FillsTabs(t *testing.T) {
	m := newTestModel(t)

	if !m.Home.Loaded || len(m.Home.Rows) == 0 {
		t.Fatal("home rows not loaded")
	}
	if got, want := m.Home.Rows[0].Title, catalog.SectionFeatured.Title(); got != want {
		t.Errorf("first home row = %q, want %q", got, want)
	}
	if len(m.Explore.Categories) == 0 || len(m.Explore.Playlists) == 0 {
		t.Error("explore lists are empty")
	}
	if !m.Favorites.Loaded {
		t.Error("favorites not loaded")
	}
	m.Search.SetQuery("calm")
	if len(m.Search.Matches()) == 0 {
		t.Error("search has no matches for \"calm\"")
	}
}

func TestView_ShowsFrame(t *testing.T) {
	m := newTestModel(t)
	view := testutil.StripANSI(m.View())

	for _, want := range []string{"affirm", "Home", "Settings", catalog.SectionFeatured.Title()} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestKeys_SwitchTabs(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "2")
	if m.Tab != tabbar.Explore {
		t.Errorf("after 2: Tab = %v, want Explore", m.Tab)
	}
	m = press(t, m, "tab")
	if m.Tab != tabbar.Favorites {
		t.Errorf("after tab: Tab = %v, want Favorites", m.Tab)
	}
	m = press(t, m, "shift+tab", "shift+tab")
	if m.Tab != tabbar.Home {
		t.Errorf("after shift+tab x2: Tab = %v, want Home", m.Tab)
	}
}

func TestKeys_SearchTabCapturesTyping(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "4", "q", "1")

	if m.Tab != tabbar.Search {
		t.Fatalf("Tab = %v, want Search", m.Tab)
	}
	if got := m.Search.Query(); got != "q1" {
		t.Errorf("Query() = %q, want %q", got, "q1")
	}

	m = press(t, m, "esc")
	if got := m.Search.Query(); got != "" {
		t.Errorf("esc should clear the query, got %q", got)
	}

	m, cmd := update(t, m, testutil.KeyMsg("esc"))
	m = run(t, m, cmd)
	if m.Tab != tabbar.Home {
		t.Errorf("esc on empty query: Tab = %v, want Home", m.Tab)
	}
}

func TestKeys_HelpOverlay(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "?")
	if !m.ShowHelp {
		t.Fatal("? should open help")
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "Keys") {
		t.Error("help overlay not rendered")
	}
	m = press(t, m, "j")
	if m.ShowHelp {
		t.Error("any key should close help")
	}
}

func TestKeys_QuitClosesPlayer(t *testing.T) {
	m := openDetailPage(t, newTestModel(t))
	m = press(t, m, "enter")

	m, cmd := update(t, m, testutil.KeyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if _, ok := m.Host.Current(); ok {
		t.Error("quit should close the session")
	}
}

func TestHome_SelectOpensDetail(t *testing.T) {
	m := newTestModel(t)
	want, ok := m.Home.Selected()
	if !ok {
		t.Fatal("no home selection")
	}

	m, cmd := update(t, m, testutil.KeyMsg("enter"))
	m = run(t, m, cmd)

	if m.Screen != ScreenDetail {
		t.Fatalf("Screen = %v, want detail", m.Screen)
	}
	if m.Detail.Playlist.ID != want {
		t.Errorf("detail playlist = %q, want %q", m.Detail.Playlist.ID, want)
	}
}

func TestExplore_FilterAndCategory(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "2", "f")
	if m.Explore.Filter != FilterCategories {
		t.Fatalf("Filter = %v, want Categories", m.Explore.Filter)
	}

	m, cmd := update(t, m, testutil.KeyMsg("enter"))
	m = run(t, m, cmd)
	if m.Explore.Open == nil {
		t.Fatal("enter on a category should drill down")
	}

	m = press(t, m, "esc")
	if m.Explore.Open != nil {
		t.Error("esc should close the category")
	}
}

func TestDetail_PlayFromCursor(t *testing.T) {
	m := openDetailPage(t, newTestModel(t))
	m = press(t, m, "j", "j", "o")

	if m.Screen != ScreenPlayer || !m.Player.Open() {
		t.Fatal("o should open the player")
	}
	if got := m.Player.Session.Index(); got != 2 {
		t.Errorf("Index() = %d, want 2", got)
	}
	if m.Player.Session.IsPlaying() {
		t.Error("session should start paused without autoplay")
	}
	if got := m.Player.Pager.Target(); got != 2 {
		t.Errorf("pager Target() = %d, want 2", got)
	}
}

func TestDetail_Autoplay(t *testing.T) {
	m := newTestModel(t)
	m.PlayerCfg.Autoplay = true
	m = openDetailPage(t, m)
	m = press(t, m, "enter")

	if !m.Player.Session.IsPlaying() {
		t.Error("autoplay should start the session")
	}
}

func TestPlayer_HideShowClose(t *testing.T) {
	m := openDetailPage(t, newTestModel(t))
	m = press(t, m, "enter", "esc")

	if m.Screen != ScreenDetail {
		t.Fatalf("esc: Screen = %v, want detail", m.Screen)
	}
	if !m.Player.Open() {
		t.Fatal("hiding the player should keep the session")
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "1 / ") {
		t.Error("player bar not shown while hidden")
	}

	m = press(t, m, "p")
	if m.Screen != ScreenPlayer {
		t.Fatalf("p: Screen = %v, want player", m.Screen)
	}

	m = press(t, m, "x")
	if m.Player.Open() {
		t.Error("x should close the player")
	}
	if m.Screen != ScreenDetail {
		t.Errorf("after close: Screen = %v, want detail", m.Screen)
	}
	if _, ok := m.Host.Current(); ok {
		t.Error("host still holds a session")
	}
}

func TestPlayer_PlayPauseKeys(t *testing.T) {
	m := openDetailPage(t, newTestModel(t))
	m = press(t, m, "enter", "space")
	if !m.Player.Session.IsPlaying() {
		t.Fatal("space should start playing")
	}

	// Global play/pause reaches the session while the player is hidden.
	m = press(t, m, "esc", "esc", "space")
	if m.Screen != ScreenBrowse {
		t.Fatalf("Screen = %v, want browse", m.Screen)
	}
	if m.Player.Session.IsPlaying() {
		t.Error("space on browse should pause the open session")
	}
}

func TestPlayer_ScrollFeedsSession(t *testing.T) {
	m := openDetailPage(t, newTestModel(t))
	m = press(t, m, "enter")

	m, cmd := update(t, m, testutil.KeyMsg("j"))
	if cmd == nil {
		t.Fatal("j should start the page animation")
	}
	if got := m.Player.Pager.Target(); got != 1 {
		t.Errorf("Target() = %d, want 1", got)
	}
	if got := m.Player.Session.Index(); got != 0 {
		t.Errorf("session moved before the scroll settled: Index() = %d", got)
	}

	m, _ = update(t, m, pager.VisibleMsg{ID: m.Player.Pager.ID(), Index: 1})
	if got := m.Player.Session.Index(); got != 1 {
		t.Errorf("Index() = %d, want 1 after VisibleMsg", got)
	}

	// Reports from another pager are ignored.
	m, _ = update(t, m, pager.VisibleMsg{ID: m.Player.Pager.ID() + 1, Index: 4})
	if got := m.Player.Session.Index(); got != 1 {
		t.Errorf("Index() = %d, want 1", got)
	}
}

func TestSearch_AffirmationOpensPlayerAtIndex(t *testing.T) {
	m := newTestModel(t)
	hit := catalog.AffirmationHit{PlaylistID: testPlaylist, Index: 3}

	m, cmd := update(t, m, search.ResultMsg{Item: search.AffirmationItem{AffirmationHit: hit}})
	m = run(t, m, cmd)

	if !m.Player.Open() {
		t.Fatal("affirmation result should open the player")
	}
	if got := m.Player.Session.Index(); got != 3 {
		t.Errorf("Index() = %d, want 3", got)
	}
}

func TestSearch_PlaylistOpensDetail(t *testing.T) {
	m := newTestModel(t)
	p := catalog.Playlist{ID: testPlaylist}

	m, cmd := update(t, m, search.ResultMsg{Item: search.PlaylistItem{Playlist: p}})
	m = run(t, m, cmd)

	if m.Screen != ScreenDetail || m.Detail.Playlist.ID != testPlaylist {
		t.Errorf("Screen = %v, detail = %q", m.Screen, m.Detail.Playlist.ID)
	}
}

func TestFavorites_Toggle(t *testing.T) {
	m := openDetailPage(t, newTestModel(t))

	m, cmd := update(t, m, testutil.KeyMsg("F"))
	for _, msg := range testutil.Drain(cmd) {
		m, _ = update(t, m, msg)
	}
	if !m.Detail.Playlist.Favorite {
		t.Fatal("F should mark the playlist as favorite")
	}
	if !strings.Contains(m.Toast.Text, "Added to favorites") {
		t.Errorf("Toast = %q", m.Toast.Text)
	}

	m = mustLoadBrowse(t, m)
	if got := len(m.Favorites.List.Items()); got != 1 {
		t.Errorf("favorites = %d, want 1", got)
	}
}

func TestSettings_NotificationsToggle(t *testing.T) {
	m := newTestModel(t)
	if _, ok := m.notifier().(notify.Disabled); ok {
		t.Fatal("notifications should default to on")
	}

	m = press(t, m, "5", "j", "enter")
	if m.Notifications {
		t.Fatal("enter on Notifications should turn them off")
	}
	if _, ok := m.notifier().(notify.Disabled); !ok {
		t.Error("notifier() should be disabled")
	}
}

func TestSettings_ClearHistoryConfirmed(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.Catalog.RecordSession(context.Background(), testPlaylist); err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}

	m = press(t, m, "5", "j", "j", "j", "enter")
	if !m.Confirm.Active() {
		t.Fatal("Privacy should ask for confirmation")
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "Clear history?") {
		t.Error("confirmation should be drawn over the screen")
	}

	m, cmd := update(t, m, testutil.KeyMsg("y"))
	if cmd == nil {
		t.Fatal("y should answer the confirmation")
	}
	m, cmd = update(t, m, cmd())
	if cmd == nil {
		t.Fatal("a confirmed answer should clear the history")
	}
	// The follow-up batch holds the toast timer, so it is not drained.
	m, _ = update(t, m, cmd())
	if m.Confirm.Active() {
		t.Error("confirmation should close")
	}
	if m.Toast.Text != "History cleared" {
		t.Errorf("Toast = %q", m.Toast.Text)
	}
	recent, err := m.Catalog.RecentSessions(recentLimit)
	if err != nil || len(recent) != 0 {
		t.Errorf("RecentSessions() = %v, %v; want empty", recent, err)
	}
}

func TestSettings_ClearHistoryCanceled(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.Catalog.RecordSession(context.Background(), testPlaylist); err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}

	m = press(t, m, "5", "j", "j", "j", "enter")
	m, cmd := update(t, m, testutil.KeyMsg("esc"))
	m = run(t, m, cmd)
	if m.Confirm.Active() || m.Tab != tabbar.Settings {
		t.Error("esc should only close the confirmation")
	}
	recent, _ := m.Catalog.RecentSessions(recentLimit)
	if len(recent) != 1 {
		t.Errorf("len(RecentSessions()) = %d, want 1", len(recent))
	}
}

func TestSession_FinishedShowsToast(t *testing.T) {
	m := openDetailPage(t, newTestModel(t))
	m = press(t, m, "enter")
	id := m.Player.Session.Info().ID

	m, cmd := update(t, m, SessionFinishedMsg{SessionID: id})
	if cmd == nil {
		t.Fatal("finished should notify and keep listening")
	}
	if !strings.Contains(m.Toast.Text, "Session complete") {
		t.Errorf("Toast = %q", m.Toast.Text)
	}
}

func TestNotifyCmd_SendsSessionComplete(t *testing.T) {
	n := &recordingNotifier{}
	msgs := testutil.Drain(NotifyCmd(n, notify.SessionComplete("Mindful Moments", 12)))

	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if len(n.sent) != 1 || !strings.Contains(n.sent[0].Title, "Mindful Moments") {
		t.Errorf("sent = %+v", n.sent)
	}
}

func TestSession_EventsOfReplacedSessionIgnored(t *testing.T) {
	m := openDetailPage(t, newTestModel(t))
	m = press(t, m, "enter")
	first := m.Player.Session.Info().ID

	m = run(t, m, PlayPlaylistCmd(m.Catalog, testPlaylist, 1))
	if m.Player.Session.Info().ID == first {
		t.Fatal("replay should open a new session")
	}

	m, cmd := update(t, m, SessionClosedMsg{SessionID: first})
	if cmd != nil || !m.Player.Open() {
		t.Error("close of the replaced session should be ignored")
	}

	m, _ = update(t, m, SessionClosedMsg{SessionID: m.Player.Session.Info().ID})
	if m.Player.Open() {
		t.Error("close of the open session should drop the player")
	}
}

func TestSession_DroppedSeekStaysQuiet(t *testing.T) {
	m := openDetailPage(t, newTestModel(t))
	m = press(t, m, "enter")
	id := m.Player.Session.Info().ID

	m, cmd := update(t, m, SessionErrorMsg{SessionID: id, Event: playback.ErrorEvent{
		Operation: "seek",
		Index:     2,
		Err:       playback.ErrNotMeasured,
	}})
	if cmd == nil {
		t.Error("should keep listening to the session")
	}
	if m.Toast.Text != "" {
		t.Errorf("Toast = %q, want none", m.Toast.Text)
	}
	if !m.Player.Open() {
		t.Error("player should stay open")
	}
}

func TestContentReloaded_ImportsPack(t *testing.T) {
	m := newTestModel(t)
	pack, err := catalog.DefaultPack()
	if err != nil {
		t.Fatal(err)
	}
	pack.Playlists = pack.Playlists[:1]

	_, cmd := update(t, m, ContentReloadedMsg{Reload: catalog.Reload{Path: "pack.toml", Pack: pack}})
	if cmd == nil {
		t.Fatal("reload should import")
	}
	msgs := testutil.Drain(ImportCmd(m.Catalog, pack))
	if len(msgs) != 1 || msgs[0].(ContentImportedMsg).Err != nil {
		t.Fatalf("import = %+v", msgs)
	}

	m = mustLoadBrowse(t, m)
	if got := len(m.Explore.Playlists); got != 1 {
		t.Errorf("playlists after import = %d, want 1", got)
	}
}

func TestContentReloaded_ErrorNamesFile(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, ContentReloadedMsg{Reload: catalog.Reload{
		Path: "/home/me/packs/pack.toml",
		Err:  errors.New("duplicate playlist id"),
	}})
	want := "Failed to reload content pack 'pack.toml': duplicate playlist id"
	if m.Toast.Text != want {
		t.Errorf("Toast = %q, want %q", m.Toast.Text, want)
	}
}

func TestState_RestoredAndSaved(t *testing.T) {
	pack, err := catalog.DefaultPack()
	if err != nil {
		t.Fatal(err)
	}
	host := playback.NewHost(playback.Options{Interval: time.Hour})
	t.Cleanup(func() { _ = host.Close() })
	st := state.NewMock()
	st.SetUI(&state.UIState{Tab: "Explore", ExploreFilter: "Playlists", Notifications: false})

	m := New(Deps{Catalog: catalog.NewMock(pack), Host: host, State: st, Logger: zerolog.Nop()})
	if m.Tab != tabbar.Explore || m.Explore.Filter != FilterPlaylists {
		t.Errorf("restored Tab = %v, Filter = %v", m.Tab, m.Explore.Filter)
	}
	if m.Notifications {
		t.Error("restored notifications should be off")
	}

	m = press(t, m, "3")
	ui, _ := st.GetUI()
	if ui == nil || ui.Tab != "Favorites" {
		t.Errorf("saved state = %+v, want Favorites tab", ui)
	}
}
