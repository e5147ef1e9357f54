package core

// Key is a logical keyboard key, independent of the input backend.
// Platform layers translate their native key events into these codes.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyX
	KeyLShift
	KeyRShift
	KeyR
	KeyT
	KeyQ
	KeyReturn
	KeyBackspace
	KeyEscape
	KeySpace
	KeyF1

	// KeyCount is the number of logical keys; not a key itself.
	KeyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyH:
		return "H"
	case KeyJ:
		return "J"
	case KeyK:
		return "K"
	case KeyL:
		return "L"
	case KeyX:
		return "X"
	case KeyLShift:
		return "LShift"
	case KeyRShift:
		return "RShift"
	case KeyR:
		return "R"
	case KeyT:
		return "T"
	case KeyQ:
		return "Q"
	case KeyReturn:
		return "Return"
	case KeyBackspace:
		return "Backspace"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyF1:
		return "F1"
	default:
		return "Unknown"
	}
}

// PadButton is a gamepad button in the standard (Xbox 360 style) layout.
type PadButton int

const (
	PadUnknown PadButton = iota
	PadA
	PadB
	PadX
	PadY
	PadBack
	PadGuide
	PadStart
	PadLeftShoulder
	PadRightShoulder
	PadDPadUp
	PadDPadDown
	PadDPadLeft
	PadDPadRight
)

// PadAxis is a gamepad analog axis.
type PadAxis int

const (
	PadLeftX PadAxis = iota
	PadLeftY
	PadRightX
	PadRightY
)

// AxisUnit is the raw axis magnitude that maps to 1.0.
const AxisUnit = 32768

// InputState is the per-frame input snapshot consumed by the simulation.
//
// Movement keys (arrows, WASD, hjkl, d-pad) are alternative bindings for the
// same four logical directions. A press sets the direction flag, a release
// clears it. Backends are expected to deliver matched press/release pairs per
// physical key, so no reference counting is done.
//
// Analog axes keep the raw signed 16-bit value; consumers normalise them.
type InputState struct {
	AxisLX int16 // Left stick, horizontal
	AxisLY int16 // Left stick, vertical (positive = down)

	Up    bool
	Down  bool
	Left  bool
	Right bool

	Slow       bool // Precision movement modifier
	Restart    bool
	ToTitle    bool
	Quit       bool
	AnyKey     bool
	DebugSpawn bool
}

// NewInputState returns a neutral input snapshot.
func NewInputState() *InputState {
	return &InputState{}
}

// ApplyKey records a key press or release.
func (s *InputState) ApplyKey(code Key, pressed bool) {
	s.AnyKey = pressed

	switch code {
	case KeyUp, KeyW, KeyK:
		s.Up = pressed
	case KeyDown, KeyS, KeyJ:
		s.Down = pressed
	case KeyLeft, KeyA, KeyH:
		s.Left = pressed
	case KeyRight, KeyD, KeyL:
		s.Right = pressed
	case KeyLShift, KeyRShift, KeyX:
		s.Slow = pressed
	case KeyR, KeyReturn:
		s.Restart = pressed
	case KeyT, KeyBackspace:
		s.ToTitle = pressed
	case KeyQ, KeyEscape:
		s.Quit = pressed
	case KeyF1:
		s.DebugSpawn = pressed
	}
}

// ApplyPadButton records a gamepad button press or release.
func (s *InputState) ApplyPadButton(button PadButton, pressed bool) {
	s.AnyKey = pressed

	switch button {
	case PadDPadUp:
		s.Up = pressed
	case PadDPadDown:
		s.Down = pressed
	case PadDPadLeft:
		s.Left = pressed
	case PadDPadRight:
		s.Right = pressed
	case PadLeftShoulder, PadRightShoulder:
		s.Slow = pressed
	case PadStart, PadA:
		s.Restart = pressed
	case PadBack, PadB:
		s.ToTitle = pressed
	case PadGuide:
		s.Quit = pressed
	}
}

// ApplyAxis records an analog axis change. Only the left stick is used.
func (s *InputState) ApplyAxis(axis PadAxis, value int16) {
	switch axis {
	case PadLeftX:
		s.AxisLX = value
	case PadLeftY:
		s.AxisLY = value
	}
}

// Reset restores every field to neutral. Called when leaving game over for
// the title so a held key cannot immediately re-trigger an action.
func (s *InputState) Reset() {
	*s = InputState{}
}

// ActiveDirections returns how many of the four direction flags are set.
func (s *InputState) ActiveDirections() int {
	n := 0
	for _, on := range [...]bool{s.Up, s.Down, s.Left, s.Right} {
		if on {
			n++
		}
	}
	return n
}
