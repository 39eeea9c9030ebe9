package terminal

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-arduboy/arduboy/backend"
	"github.com/valerio/go-arduboy/arduboy/input/action"
	"github.com/valerio/go-arduboy/arduboy/input/event"
	"github.com/valerio/go-arduboy/arduboy/video"
)

func newSimBackend(t *testing.T) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	screen := tcell.NewSimulationScreen("UTF-8")
	b := newWithScreen(screen)
	require.NoError(t, b.Init(backend.Config{Title: "Test"}))
	screen.SetSize(200, 40)
	t.Cleanup(func() { _ = b.Cleanup() })
	return b, screen
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, width, _ := screen.GetContents()
	cell := cells[y*width+x]
	require.NotEmpty(t, cell.Runes)
	return cell.Runes[0]
}

func TestRenderHalfBlocks(t *testing.T) {
	b, screen := newSimBackend(t)

	frame := video.NewSurface()
	frame.SetPixel(0, 0, true)  // top half of cell (1,1)
	frame.SetPixel(1, 1, true)  // bottom half of cell (2,1)
	frame.SetPixel(2, 2, true)  // both halves of cell (3,2)
	frame.SetPixel(2, 3, true)

	_, err := b.Update(frame)
	require.NoError(t, err)

	assert.Equal(t, '▀', cellRune(t, screen, 1, 1))
	assert.Equal(t, '▄', cellRune(t, screen, 2, 1))
	assert.Equal(t, '█', cellRune(t, screen, 3, 2))
	assert.Equal(t, ' ', cellRune(t, screen, 4, 1))
	assert.Equal(t, '┌', cellRune(t, screen, 0, 0))
}

func TestKeyPressAndExpiry(t *testing.T) {
	b, screen := newSimBackend(t)
	frame := video.NewSurface()

	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	events, err := b.Update(frame)
	require.NoError(t, err)
	assert.Contains(t, events, backend.InputEvent{Action: action.ButtonA, Type: event.Press})

	// still held within the repeat window
	events, err = b.Update(frame)
	require.NoError(t, err)
	assert.Empty(t, events)

	time.Sleep(keyTimeout + 20*time.Millisecond)
	events, err = b.Update(frame)
	require.NoError(t, err)
	assert.Contains(t, events, backend.InputEvent{Action: action.ButtonA, Type: event.Release})
}

func TestSystemKeysAreQueued(t *testing.T) {
	b, screen := newSimBackend(t)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	events, err := b.Update(video.NewSurface())
	require.NoError(t, err)
	assert.Equal(t, []backend.InputEvent{backend.Press(action.SystemQuit)}, events)
}

func TestLogBufferKeepsNewestFirst(t *testing.T) {
	lb := NewLogBuffer(2)
	logger := slog.New(NewLogBufferHandler(lb, slog.LevelInfo)).With("frame", 3)

	logger.Debug("hidden")
	logger.Info("first")
	logger.Info("second")
	logger.Warn("third", "x", 1)

	recent := lb.GetRecent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "third frame=3 x=1", recent[0].Message)
	assert.Equal(t, "second frame=3", recent[1].Message)
	assert.Contains(t, FormatLogEntry(recent[0]), "[WRN]")

	lb.Clear()
	assert.Nil(t, lb.GetRecent(5))
}

func TestLogHandlerLevel(t *testing.T) {
	h := NewLogBufferHandler(NewLogBuffer(1), slog.LevelWarn)
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
