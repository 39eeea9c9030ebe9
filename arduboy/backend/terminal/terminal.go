package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-arduboy/arduboy/backend"
	"github.com/valerio/go-arduboy/arduboy/debug"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/input"
	"github.com/valerio/go-arduboy/arduboy/input/action"
	"github.com/valerio/go-arduboy/arduboy/video"
)

const (
	// two pixel rows per terminal cell
	screenCols = display.Width
	screenRows = display.Height / 2

	logPanelMinWidth = 20
	minTermWidth     = screenCols + 2
	minTermHeight    = screenRows + 3
)

// Key expiry timeout - slightly longer than typical key repeat interval.
// Terminals report no key releases, so a key counts as held until it stops
// repeating.
const keyTimeout = 100 * time.Millisecond

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen    tcell.Screen
	logBuffer *LogBuffer
	logLevel  *slog.LevelVar
	config    backend.Config
	ink       tcell.Color
	paper     tcell.Color

	mu         sync.Mutex
	eventQueue []backend.InputEvent // system events waiting for the next Update

	keyStates  map[action.Action]time.Time // Last time each key was seen
	activeKeys map[action.Action]bool      // Keys active in previous frame
}

// New creates a new terminal backend
func New() *Backend {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return &Backend{logLevel: level}
}

// newWithScreen is used by tests to run against a simulation screen
func newWithScreen(screen tcell.Screen) *Backend {
	b := New()
	b.screen = screen
	return b
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.Config) error {
	t.config = config
	t.keyStates = make(map[action.Action]time.Time)
	t.activeKeys = make(map[action.Action]bool)
	t.ink, t.paper = tcell.ColorWhite, tcell.ColorBlack
	if config.Ink != "" {
		t.ink = tcell.GetColor(config.Ink)
	}
	if config.Paper != "" {
		t.paper = tcell.GetColor(config.Paper)
	}

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Logs go to a side panel instead of corrupting the screen
	t.logBuffer = NewLogBuffer(100)
	slog.SetDefault(slog.New(NewLogBufferHandler(t.logBuffer, t.logLevel)))
	slog.Info("Terminal backend initialized", "title", config.Title)

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	go t.handleSignals()

	return nil
}

// Update renders a frame and processes events
func (t *Backend) Update(frame video.Surface) ([]backend.InputEvent, error) {
	now := time.Now()

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	events := t.buttonEvents(now)

	t.mu.Lock()
	events = append(events, t.eventQueue...)
	t.eventQueue = nil
	t.mu.Unlock()

	for _, evt := range events {
		if evt.Action == action.SystemSnapshot {
			debug.TakeSnapshot(frame)
		}
	}

	t.render(frame)
	t.screen.Show()

	return events, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

// buttonEvents turns the key repeat timestamps into press and release edges
func (t *Backend) buttonEvents(now time.Time) []backend.InputEvent {
	var events []backend.InputEvent
	currentlyActive := make(map[action.Action]bool)

	for act, lastSeen := range t.keyStates {
		if now.Sub(lastSeen) >= keyTimeout {
			delete(t.keyStates, act)
			continue
		}
		currentlyActive[act] = true
		if !t.activeKeys[act] {
			slog.Debug("Key press", "action", act)
			events = append(events, backend.Press(act))
		}
	}

	for act := range t.activeKeys {
		if !currentlyActive[act] {
			slog.Debug("Key release", "action", act)
			events = append(events, backend.Release(act))
		}
	}

	t.activeKeys = currentlyActive
	return events
}

func (t *Backend) queue(evt backend.InputEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eventQueue = append(t.eventQueue, evt)
}

func (t *Backend) handleSignals() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	<-signals
	t.queue(backend.Press(action.SystemQuit))
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyUp:     "Up",
	tcell.KeyDown:   "Down",
	tcell.KeyLeft:   "Left",
	tcell.KeyRight:  "Right",
	tcell.KeyEscape: "Escape",
	tcell.KeyF9:     "F9",
}

// buildKeyMapping creates the key mapping from default mappings
func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.SystemQuit
	return mapping
}

// buildRuneMapping creates the rune mapping from default mappings
func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)
	for key, act := range input.DefaultKeyMap {
		runes := []rune(key)
		if len(runes) == 1 {
			mapping[runes[0]] = act
		}
	}
	mapping[' '] = action.SystemPauseToggle
	return mapping
}

var (
	keyMapping  = buildKeyMapping()
	runeMapping = buildRuneMapping()
)

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	act, ok := keyMapping[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		act, ok = runeMapping[ev.Rune()]
	}
	if !ok {
		return
	}

	if action.GetInfo(act).Category == action.CategoryGameInput {
		t.keyStates[act] = now
		return
	}

	if act == action.SystemPauseToggle || act == action.SystemAudioToggle {
		slog.Info("System action", "action", act)
	}
	t.queue(backend.Press(act))
}

// halfBlock picks the rune and colours for a cell covering two pixel rows
func (t *Backend) halfBlock(top, bottom bool) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch {
	case top && bottom:
		return '█', style.Foreground(t.ink).Background(t.paper)
	case top:
		return '▀', style.Foreground(t.ink).Background(t.paper)
	case bottom:
		return '▄', style.Foreground(t.ink).Background(t.paper)
	default:
		return ' ', style.Background(t.paper)
	}
}

func (t *Backend) render(frame video.Surface) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		drawText(t.screen, 0, termHeight/2, termWidth, msg, style)
		return
	}

	t.drawScreen(frame)
	t.drawBorders(termWidth, termHeight)

	logX := minTermWidth + 1
	if termWidth-logX >= logPanelMinWidth {
		t.drawLogs(logX, 1, termWidth-logX, termHeight-2)
	}
}

func (t *Backend) drawScreen(frame video.Surface) {
	for row := 0; row < screenRows; row++ {
		for x := 0; x < screenCols; x++ {
			ch, style := t.halfBlock(frame.Pixel(x, 2*row), frame.Pixel(x, 2*row+1))
			t.screen.SetContent(x+1, row+1, ch, nil, style)
		}
	}
}

func (t *Backend) drawBorders(termWidth, termHeight int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	right := screenCols + 1
	bottom := screenRows + 1
	for x := 0; x <= right; x++ {
		t.screen.SetContent(x, 0, '─', nil, borderStyle)
		t.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 0; y <= bottom; y++ {
		t.screen.SetContent(0, y, '│', nil, borderStyle)
		t.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	t.screen.SetContent(0, 0, '┌', nil, borderStyle)
	t.screen.SetContent(right, 0, '┐', nil, borderStyle)
	t.screen.SetContent(0, bottom, '└', nil, borderStyle)
	t.screen.SetContent(right, bottom, '┘', nil, borderStyle)

	title := t.config.Title
	if title == "" {
		title = "Arduboy"
	}
	drawText(t.screen, 2, 0, right-2, " "+title+" ", titleStyle)

	help := " arrows/WASD=d-pad Z=A X=B M=audio F9=snapshot ESC=quit "
	drawText(t.screen, 0, termHeight-1, termWidth, help, borderStyle)
}

func (t *Backend) drawLogs(startX, startY, width, height int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, entry := range t.logBuffer.GetRecent(height) {
		drawText(t.screen, startX, startY+i, width, FormatLogEntry(entry), style)
	}
}

func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= maxWidth {
			return
		}
		screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}
