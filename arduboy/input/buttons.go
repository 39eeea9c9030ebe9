package input

import "github.com/valerio/go-arduboy/arduboy/input/action"

// Button is a bit mask over the console's buttons, in the same bit
// positions the hardware reports them.
type Button uint8

const (
	UpButton    Button = 1 << 7
	RightButton Button = 1 << 6
	LeftButton  Button = 1 << 5
	DownButton  Button = 1 << 4
	AButton     Button = 1 << 3
	BButton     Button = 1 << 2
)

// AllButtons has every button bit set.
const AllButtons = UpButton | RightButton | LeftButton | DownButton | AButton | BButton

// ButtonFor maps a game input action to its button bit, or 0.
func ButtonFor(act action.Action) Button {
	switch act {
	case action.ButtonUp:
		return UpButton
	case action.ButtonDown:
		return DownButton
	case action.ButtonLeft:
		return LeftButton
	case action.ButtonRight:
		return RightButton
	case action.ButtonA:
		return AButton
	case action.ButtonB:
		return BButton
	default:
		return 0
	}
}

// Buttons tracks the live button state plus the state sampled by the last
// two polls, so edges can be detected once per frame.
type Buttons struct {
	live     Button
	current  Button
	previous Button
}

// Set marks buttons as held in the live state.
func (b *Buttons) Set(mask Button) {
	b.live |= mask
}

// Unset marks buttons as released in the live state.
func (b *Buttons) Unset(mask Button) {
	b.live &^= mask
}

// Poll samples the live state. Call it once per frame.
func (b *Buttons) Poll() {
	b.previous = b.current
	b.current = b.live
}

// State returns the buttons held at the last poll.
func (b *Buttons) State() Button {
	return b.current
}

// Pressed reports whether every button in mask is held right now.
func (b *Buttons) Pressed(mask Button) bool {
	return b.live&mask == mask
}

// NotPressed reports whether every button in mask is released right now.
func (b *Buttons) NotPressed(mask Button) bool {
	return b.live&mask == 0
}

// JustPressed reports whether button went down between the last two polls.
func (b *Buttons) JustPressed(button Button) bool {
	return b.previous&button == 0 && b.current&button != 0
}

// JustReleased reports whether button went up between the last two polls.
func (b *Buttons) JustReleased(button Button) bool {
	return b.previous&button != 0 && b.current&button == 0
}
