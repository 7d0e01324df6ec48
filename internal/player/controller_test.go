package player

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/lynch-universe/internal/model"
)

type fakeChannel struct {
	mu       sync.Mutex
	loads    []string
	commands []Command
	unloads  int
	loadErr  error
}

func (f *fakeChannel) Load(ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loads = append(f.loads, ref)
	return nil
}

func (f *fakeChannel) Send(cmd Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
	return nil
}

func (f *fakeChannel) Unload() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unloads++
	return nil
}

func (f *fakeChannel) funcs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.commands))
	for _, cmd := range f.commands {
		out = append(out, cmd.Func)
	}
	return out
}

func (f *fakeChannel) last() Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commands[len(f.commands)-1]
}

func (f *fakeChannel) count(fn string) int {
	n := 0
	for _, name := range f.funcs() {
		if name == fn {
			n++
		}
	}
	return n
}

type fakeSurface struct {
	requests int
	exits    int
	err      error
}

func (f *fakeSurface) RequestFullscreen() error {
	if f.err != nil {
		return f.err
	}
	f.requests++
	return nil
}

func (f *fakeSurface) ExitFullscreen() error {
	f.exits++
	return nil
}

type fakeMusic struct {
	mu      sync.Mutex
	playing bool
	toggles int
}

func (m *fakeMusic) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

func (m *fakeMusic) TogglePlay() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = !m.playing
	m.toggles++
}

var testItem = model.ContentItem{ID: "df1", Title: "Eraserhead", ExternalVideoRef: "abc123"}

func newTestController() (*Controller, *fakeChannel, *fakeSurface, *fakeMusic, *clockwork.FakeClock) {
	ch := &fakeChannel{}
	surface := &fakeSurface{}
	music := &fakeMusic{}
	clock := clockwork.NewFakeClock()
	return NewController(ch, surface, music, clock), ch, surface, music, clock
}

func withProgress(t *testing.T, c *Controller, current, duration float64) {
	t.Helper()
	c.Play()
	c.HandleInfo(Info{CurrentTime: &current, Duration: &duration})
	snap := c.Snapshot()
	require.Equal(t, current, snap.CurrentTime)
	require.Equal(t, duration, snap.Duration)
}

func TestController_OpenStartsPaused(t *testing.T) {
	c, ch, _, _, _ := newTestController()
	c.Open(testItem)

	snap := c.Snapshot()
	assert.True(t, snap.Active)
	assert.Contains(t, snap.ID, SessionIDPrefix)
	assert.False(t, snap.IsPlaying)
	assert.False(t, snap.Embedded, "player is embedded lazily")
	assert.Equal(t, 0.0, snap.CurrentTime)
	assert.Equal(t, MaxVolume, snap.Volume)
	assert.Empty(t, ch.loads)
}

func TestController_FirstPlayEmbedsAndPolls(t *testing.T) {
	c, ch, _, _, clock := newTestController()
	c.Open(testItem)
	c.Play()

	assert.Equal(t, []string{"abc123"}, ch.loads)
	assert.Equal(t, []string{FuncPlayVideo}, ch.funcs())
	assert.True(t, c.Snapshot().IsPlaying)

	clock.Advance(PollInterval)
	assert.Eventually(t, func() bool {
		return ch.count(FuncGetCurrentTime) == 1 && ch.count(FuncGetDuration) == 1
	}, time.Second, 5*time.Millisecond)

	c.Pause()
	c.Play()
	assert.Len(t, ch.loads, 1, "player loads once per session")
}

func TestController_PauseStopsPolling(t *testing.T) {
	c, ch, _, _, clock := newTestController()
	c.Open(testItem)
	c.Play()
	c.Pause()

	assert.Equal(t, FuncPauseVideo, ch.last().Func)
	assert.False(t, c.Snapshot().IsPlaying)

	clock.Advance(3 * PollInterval)
	assert.Never(t, func() bool {
		return ch.count(FuncGetCurrentTime) > 0
	}, 50*time.Millisecond, 5*time.Millisecond)
}

func TestController_ItemWithoutVideo(t *testing.T) {
	c, ch, _, _, _ := newTestController()
	c.Open(model.ContentItem{ID: "sf1", Title: "Six Men Getting Sick"})
	c.Play()

	assert.True(t, c.Snapshot().IsPlaying)
	assert.Empty(t, ch.loads)
	assert.Empty(t, ch.funcs())
}

func TestController_LoadFailureKeepsPaused(t *testing.T) {
	c, ch, _, _, _ := newTestController()
	ch.loadErr = errors.New("no browser")
	c.Open(testItem)
	c.Play()

	snap := c.Snapshot()
	assert.False(t, snap.IsPlaying)
	assert.False(t, snap.Embedded)
}

func TestController_SkipClamps(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		direction model.SkipDirection
		want      float64
	}{
		{"forward", 5, model.SkipForward, 15},
		{"forward clamped to duration", 95, model.SkipForward, 100},
		{"backward clamped to zero", 5, model.SkipBackward, 0},
		{"backward", 50, model.SkipBackward, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ch, _, _, _ := newTestController()
			c.Open(testItem)
			withProgress(t, c, tt.current, 100)

			c.Skip(tt.direction, 10)

			cmd := ch.last()
			assert.Equal(t, FuncSeekTo, cmd.Func)
			assert.Equal(t, []any{tt.want, true}, cmd.Args)
			snap := c.Snapshot()
			assert.Equal(t, tt.want, snap.CurrentTime)
			assert.Equal(t, tt.direction, snap.SkipIndicator)
		})
	}
}

func TestController_SkipIndicatorClears(t *testing.T) {
	c, _, _, _, clock := newTestController()
	c.Open(testItem)
	withProgress(t, c, 20, 100)

	c.Skip(model.SkipForward, 0)
	assert.Equal(t, 30.0, c.Snapshot().CurrentTime, "zero delta uses the default step")

	clock.Advance(time.Second)
	c.Skip(model.SkipBackward, 0)
	clock.Advance(time.Second + 500*time.Millisecond)
	assert.Never(t, func() bool {
		return c.Snapshot().SkipIndicator == model.SkipNone
	}, 50*time.Millisecond, 5*time.Millisecond, "restarted timer keeps the indicator")

	clock.Advance(time.Second)
	assert.Eventually(t, func() bool {
		return c.Snapshot().SkipIndicator == model.SkipNone
	}, time.Second, 5*time.Millisecond)
}

func TestController_ReplayAndSeek(t *testing.T) {
	c, ch, _, _, _ := newTestController()
	c.Open(testItem)
	withProgress(t, c, 60, 200)

	c.SeekTo(0.25)
	assert.Equal(t, []any{50.0, true}, ch.last().Args)
	assert.Equal(t, 50.0, c.Snapshot().CurrentTime)

	c.SeekTo(1.5)
	assert.Equal(t, 200.0, c.Snapshot().CurrentTime)

	c.Pause()
	c.Replay()
	funcs := ch.funcs()
	assert.Equal(t, []string{FuncSeekTo, FuncPlayVideo}, funcs[len(funcs)-2:])
	snap := c.Snapshot()
	assert.Equal(t, 0.0, snap.CurrentTime)
	assert.True(t, snap.IsPlaying)
}

func TestController_VolumeAndMute(t *testing.T) {
	c, ch, _, _, _ := newTestController()
	c.Open(testItem)
	c.Play()

	c.SetVolume(30)
	assert.Equal(t, []any{30.0}, ch.last().Args)
	assert.False(t, c.Snapshot().IsMuted)

	c.SetVolume(0)
	assert.True(t, c.Snapshot().IsMuted)

	c.ToggleMute()
	assert.Equal(t, FuncUnMute, ch.last().Func)
	snap := c.Snapshot()
	assert.False(t, snap.IsMuted)
	assert.Equal(t, MaxVolume, snap.Volume)

	c.ToggleMute()
	assert.Equal(t, FuncMute, ch.last().Func)
	assert.True(t, c.Snapshot().IsMuted)

	c.SetVolume(250)
	assert.Equal(t, MaxVolume, c.Snapshot().Volume)
}

func TestController_Fullscreen(t *testing.T) {
	c, _, surface, _, _ := newTestController()
	c.Open(testItem)

	c.ToggleFullscreen()
	assert.Equal(t, 1, surface.requests)
	assert.False(t, c.Snapshot().IsFullscreen, "fullscreen waits for the surface to confirm")

	c.HandleFullscreenChange(true)
	assert.True(t, c.Snapshot().IsFullscreen)

	c.HandleEscape()
	assert.Equal(t, 1, surface.exits)
	assert.True(t, c.Snapshot().Active, "escape in fullscreen only exits fullscreen")

	c.HandleFullscreenChange(false)
	assert.False(t, c.Snapshot().IsFullscreen)

	c.HandleEscape()
	assert.False(t, c.Snapshot().Active)
}

func TestController_FullscreenRefusedBySurface(t *testing.T) {
	c, _, surface, _, _ := newTestController()
	c.Open(testItem)

	c.ToggleFullscreen()
	assert.Equal(t, 1, surface.requests)
	c.HandleFullscreenChange(false)
	assert.False(t, c.Snapshot().IsFullscreen)

	c.HandleEscape()
	assert.False(t, c.Snapshot().Active, "escape closes a session that never went fullscreen")
}

func TestController_FullscreenRejected(t *testing.T) {
	c, _, surface, _, _ := newTestController()
	surface.err = errors.New("not allowed")
	c.Open(testItem)

	assert.NotPanics(t, c.ToggleFullscreen)
	assert.False(t, c.Snapshot().IsFullscreen)
}

func TestController_ControlsVisibility(t *testing.T) {
	c, _, _, _, clock := newTestController()
	c.Open(testItem)

	c.PointerLeft()
	assert.True(t, c.Snapshot().ControlsVisible, "paused controls stay visible")

	c.Play()
	c.PointerMoved()
	assert.True(t, c.Snapshot().ControlsVisible)

	clock.Advance(ControlsIdleTimeout)
	assert.Eventually(t, func() bool {
		return !c.Snapshot().ControlsVisible
	}, time.Second, 5*time.Millisecond)

	c.PointerMoved()
	c.Pause()
	clock.Advance(ControlsIdleTimeout)
	assert.Never(t, func() bool {
		return !c.Snapshot().ControlsVisible
	}, 50*time.Millisecond, 5*time.Millisecond)

	c.Play()
	c.PointerLeft()
	assert.False(t, c.Snapshot().ControlsVisible)
}

func TestController_MusicResumesWhenItWasPlaying(t *testing.T) {
	c, _, _, music, _ := newTestController()
	music.playing = true

	c.Open(testItem)
	assert.False(t, music.IsPlaying(), "music suspended while the modal is open")

	c.Close()
	assert.True(t, music.IsPlaying())
	assert.Equal(t, 2, music.toggles)
}

func TestController_MusicStaysStopped(t *testing.T) {
	c, _, _, music, _ := newTestController()

	c.Open(testItem)
	c.Close()

	assert.False(t, music.IsPlaying())
	assert.Equal(t, 0, music.toggles)
}

func TestController_MusicNotDoubleToggled(t *testing.T) {
	c, _, _, music, _ := newTestController()
	music.playing = true

	c.Open(testItem)
	music.TogglePlay()
	c.Close()

	assert.True(t, music.IsPlaying(), "already resumed music is left alone")
	assert.Equal(t, 2, music.toggles)
}

func TestController_ReplaceSessionCarriesMusicFlag(t *testing.T) {
	c, ch, _, music, _ := newTestController()
	music.playing = true

	c.Open(testItem)
	c.Play()
	first := c.Snapshot().ID

	c.Open(model.ContentItem{ID: "ms1", ExternalVideoRef: "xyz"})
	assert.NotEqual(t, first, c.Snapshot().ID)
	assert.Equal(t, 1, ch.unloads, "replaced session unloads its player")
	assert.False(t, music.IsPlaying())

	c.Close()
	assert.True(t, music.IsPlaying())
}

func TestController_NoActivityAfterClose(t *testing.T) {
	c, ch, _, _, clock := newTestController()
	c.Open(testItem)
	withProgress(t, c, 10, 100)
	c.Skip(model.SkipForward, 0)
	c.PointerMoved()

	c.Close()
	sent := len(ch.funcs())
	assert.Equal(t, 1, ch.unloads)

	clock.Advance(10 * time.Second)
	assert.Never(t, func() bool {
		return len(ch.funcs()) != sent || c.Snapshot().Active
	}, 50*time.Millisecond, 5*time.Millisecond)
}

func TestController_TelemetryIgnoredWithoutSession(t *testing.T) {
	c, _, _, _, _ := newTestController()
	now := 5.0
	c.HandleInfo(Info{CurrentTime: &now})
	assert.False(t, c.Snapshot().Active)

	c.Open(testItem)
	c.HandleInfo(Info{CurrentTime: &now})
	assert.Equal(t, 0.0, c.Snapshot().CurrentTime, "telemetry before embedding is ignored")
}

func TestController_UpdateCallback(t *testing.T) {
	c, _, _, _, _ := newTestController()
	var snaps []Snapshot
	c.SetUpdateCallback(func(s Snapshot) { snaps = append(snaps, s) })

	c.Open(testItem)
	c.TogglePlayback()
	c.TogglePlayback()

	require.Len(t, snaps, 3)
	assert.True(t, snaps[1].IsPlaying)
	assert.False(t, snaps[2].IsPlaying)
}
