package event

// Type represents the type of input event
type Type int

const (
	Press   Type = iota // Button pressed down
	Release             // Button released
)

func (t Type) String() string {
	if t == Press {
		return "press"
	}
	return "release"
}
