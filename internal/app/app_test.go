package app

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TillWege/Carnival/internal/config"
	"github.com/TillWege/Carnival/internal/platform"
)

func key(k platform.Key, mod platform.Mod) platform.KeyEvent {
	return platform.KeyEvent{Key: k, Mod: mod, Down: true}
}

func TestNewTakesWindowSize(t *testing.T) {
	f := newFixture(config.ModeDirect)
	s := f.app.State()
	assert.True(t, s.Running)
	assert.Equal(t, platform.DefaultWidth, s.WindowWidth)
	assert.Equal(t, platform.DefaultHeight, s.WindowHeight)
	assert.Equal(t, 300, s.LeftPanelWidth)
}

func TestResizeEvent(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.plat.push(platform.ResizeEvent{Width: 1600, Height: 900})
	f.app.HandleEvents()

	s := f.app.State()
	assert.Equal(t, 1600, s.WindowWidth)
	assert.Equal(t, 900, s.WindowHeight)
	assert.Equal(t, image.Rect(0, 0, 1600, 900), s.DirectViewport())
}

func TestDirectViewportOffset(t *testing.T) {
	s := NewState()
	s.OffsetScene = true
	s.Resize(1600, 900)
	assert.Equal(t, image.Rect(300, 0, 1600, 900), s.DirectViewport())

	// too narrow to offset
	s.Resize(200, 900)
	assert.Equal(t, image.Rect(0, 0, 200, 900), s.DirectViewport())
}

func TestEventsReachOverlayFirst(t *testing.T) {
	f := newFixture(config.ModeDirect)
	evs := []platform.Event{
		platform.MouseMoveEvent{X: 3, Y: 4},
		key(platform.KeyA, 0),
		platform.QuitEvent{},
	}
	f.plat.push(evs...)
	f.app.HandleEvents()

	assert.Equal(t, evs, f.overlay.events)
	assert.False(t, f.app.State().Running)
}

func TestEscapeStops(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.plat.push(key(platform.KeyEscape, 0))
	f.app.HandleEvents()
	assert.False(t, f.app.State().Running)
}

func TestKeyReleaseAndRepeatIgnored(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.plat.push(
		platform.KeyEvent{Key: platform.KeyEscape, Down: false},
		platform.KeyEvent{Key: platform.KeyEscape, Down: true, Repeat: true},
	)
	f.app.HandleEvents()
	assert.True(t, f.app.State().Running)
}

func TestFullscreenToggle(t *testing.T) {
	for _, ev := range []platform.KeyEvent{
		key(platform.KeyF, platform.ModCtrl),
		key(platform.KeyF11, 0),
	} {
		f := newFixture(config.ModeDirect)
		f.plat.push(ev)
		f.app.HandleEvents()
		assert.True(t, f.plat.fullscreen, "%v", ev.Key)

		f.plat.push(ev)
		f.app.HandleEvents()
		assert.False(t, f.plat.fullscreen, "%v", ev.Key)
	}
}

func TestPlainFDoesNothing(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.plat.push(key(platform.KeyF, 0), key(platform.KeyV, 0))
	f.app.HandleEvents()
	assert.False(t, f.plat.fullscreen)
	assert.Equal(t, 1, f.plat.interval)
	assert.True(t, f.app.State().Running)
}

func TestVSyncToggle(t *testing.T) {
	f := newFixture(config.ModeDirect)
	ev := key(platform.KeyV, platform.ModCtrl)

	f.plat.push(ev)
	f.app.HandleEvents()
	assert.Equal(t, 0, f.plat.interval)

	f.plat.push(ev)
	f.app.HandleEvents()
	assert.Equal(t, 1, f.plat.interval)
}

func TestCtrlWithPlainBinding(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.plat.push(key(platform.KeyEscape, platform.ModCtrl|platform.ModShift))
	f.app.HandleEvents()
	assert.False(t, f.app.State().Running)
}

func TestConnectController(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.plat.joysticks = 2
	f.plat.push(key(platform.KeyJ, 0))
	f.app.HandleEvents()

	require.Len(t, f.plat.opened, 1)
	assert.Contains(t, f.plat.calls, "update-joysticks")
	assert.NotNil(t, f.app.input.Controller)
	assert.NotNil(t, f.app.input.Joystick)

	// already connected
	f.plat.push(key(platform.KeyJ, 0))
	f.app.HandleEvents()
	assert.Len(t, f.plat.opened, 1)
}

func TestConnectWithoutJoysticks(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.plat.push(key(platform.KeyJ, 0))
	f.app.HandleEvents()
	assert.Empty(t, f.plat.opened)
	assert.Nil(t, f.app.input.Controller)
}

func TestConnectOpenFails(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.plat.joysticks = 1
	f.plat.openErr = errNoDevice
	f.plat.push(key(platform.KeyJ, 0))
	f.app.HandleEvents()
	assert.Nil(t, f.app.input.Controller)
}

func TestDisconnectController(t *testing.T) {
	f := newFixture(config.ModeDirect)

	// nothing to disconnect
	f.plat.push(key(platform.KeyK, 0))
	f.app.HandleEvents()
	assert.Nil(t, f.app.input.Controller)

	f.plat.joysticks = 1
	f.plat.push(key(platform.KeyJ, 0), key(platform.KeyK, 0))
	f.app.HandleEvents()

	require.Len(t, f.plat.opened, 1)
	assert.True(t, f.plat.opened[0].closed)
	assert.Nil(t, f.app.input.Controller)
	assert.Nil(t, f.app.input.Joystick)
}

func TestRumble(t *testing.T) {
	f := newFixture(config.ModeDirect)

	// no controller: no-op
	f.plat.push(key(platform.KeyH, 0))
	f.app.HandleEvents()

	f.plat.joysticks = 1
	f.plat.push(key(platform.KeyJ, 0), key(platform.KeyH, 0))
	f.app.HandleEvents()

	require.Len(t, f.plat.opened, 1)
	assert.Equal(t, []rumbleCall{{0xFFFF, 0xFFFF, time.Second}}, f.plat.opened[0].joystick.rumbles)
}

func TestRumbleWithoutJoystick(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.app.input.Controller = &fakeController{}
	f.plat.push(key(platform.KeyH, 0))
	f.app.HandleEvents()
	assert.Nil(t, f.app.input.Joystick)
}

func TestQuitBeforeFirstFrame(t *testing.T) {
	f := newFixture(config.ModeOffscreen)
	f.plat.push(platform.QuitEvent{})
	f.app.Run()

	assert.Empty(t, f.scene.draws)
	assert.Zero(t, f.overlay.frames)
	assert.Zero(t, f.plat.swaps)
}

func TestRunDirect(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.overlay.build = func() {
		if f.overlay.frames == 3 {
			f.plat.push(platform.QuitEvent{})
		}
	}
	f.app.Run()

	assert.Len(t, f.scene.draws, 3)
	assert.Equal(t, image.Rect(0, 0, platform.DefaultWidth, platform.DefaultHeight), f.scene.draws[0])
	assert.Equal(t, 3, f.plat.swaps)
	assert.Zero(t, f.plat.preserved)
}

func TestOffscreenRebuildBeforeSampling(t *testing.T) {
	f := newFixture(config.ModeOffscreen)
	sizes := [][2]int{{640, 480}, {640, 480}, {800, 600}}
	var sampled [][2]int
	f.overlay.build = func() {
		n := f.overlay.frames - 1
		f.app.measureViewport(sizes[n][0], sizes[n][1])
		f.target.Texture()
		sampled = append(sampled, f.target.sampled)
		if f.overlay.frames == len(sizes) {
			f.app.State().Running = false
		}
	}
	f.app.Run()

	// every frame samples the image at the size measured in that frame
	assert.Equal(t, sizes, sampled)
	assert.Equal(t, 2, f.target.resizes)
	assert.False(t, f.app.State().ResizeQueued)
	assert.False(t, f.target.bound)

	// frame draws, plus a redraw after each rebuild
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 0, 0),
		image.Rect(0, 0, 640, 480),
		image.Rect(0, 0, 640, 480),
		image.Rect(0, 0, 640, 480),
		image.Rect(0, 0, 800, 600),
	}, f.scene.draws)
}

func TestQueuedResizeRebuildsBeforeSceneDraw(t *testing.T) {
	f := newFixture(config.ModeOffscreen)
	f.app.State().MeasureViewport(320, 200)
	f.overlay.build = func() { f.app.State().Running = false }
	f.app.Run()

	assert.Equal(t, 1, f.target.resizes)
	require.Len(t, f.scene.draws, 1)
	assert.Equal(t, image.Rect(0, 0, 320, 200), f.scene.draws[0])
	assert.False(t, f.app.State().ResizeQueued)
}

func TestPreserveContextWithViewports(t *testing.T) {
	f := newFixture(config.ModeDirect)
	f.overlay.viewports = true
	f.overlay.build = func() { f.app.State().Running = false }
	f.app.Run()

	assert.Equal(t, 1, f.plat.preserved)
	assert.Equal(t, 1, f.overlay.rendered)
	assert.Equal(t, 1, f.plat.swaps)
}

func TestClose(t *testing.T) {
	f := newFixture(config.ModeOffscreen)
	c := &fakeController{}
	f.app.input.Controller = c
	f.app.Close()

	assert.True(t, c.closed)
	assert.True(t, f.overlay.disposed)
	assert.True(t, f.target.deleted)
	assert.True(t, f.scene.deleted)
	assert.True(t, f.plat.destroyed)

	// second close is a no-op
	f.app.Close()
}

func TestCounterEasterEgg(t *testing.T) {
	s := NewState()
	for i := 1; i < EasterEggClicks; i++ {
		assert.False(t, s.Click())
	}
	assert.True(t, s.Click())
	assert.Equal(t, 9, s.Counter)
	assert.True(t, s.EasterEggOpen)

	s.CloseEasterEgg()
	assert.False(t, s.EasterEggOpen)
	assert.Equal(t, 9, s.Counter)

	// only the ninth click opens it
	assert.False(t, s.Click())
	assert.Equal(t, 10, s.Counter)
}

func TestMeasureViewport(t *testing.T) {
	s := NewState()
	assert.True(t, s.MeasureViewport(640, 480))
	assert.True(t, s.ResizeQueued)

	s.ResizeQueued = false
	assert.False(t, s.MeasureViewport(640, 480))
	assert.False(t, s.ResizeQueued)
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 9, 123000000, time.FixedZone("", 3600))
	assert.Equal(t, "05.03.2024 14:07:09.123 +0100", Timestamp(ts))
}
