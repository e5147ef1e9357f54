package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodge-rock/internal/core"
)

// stickDeadzone filters analog drift around the stick centre.
const stickDeadzone = 0.15

var keyCodes = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyW:          core.KeyW,
	ebiten.KeyA:          core.KeyA,
	ebiten.KeyS:          core.KeyS,
	ebiten.KeyD:          core.KeyD,
	ebiten.KeyH:          core.KeyH,
	ebiten.KeyJ:          core.KeyJ,
	ebiten.KeyK:          core.KeyK,
	ebiten.KeyL:          core.KeyL,
	ebiten.KeyX:          core.KeyX,
	ebiten.KeyShiftLeft:  core.KeyLShift,
	ebiten.KeyShiftRight: core.KeyRShift,
	ebiten.KeyR:          core.KeyR,
	ebiten.KeyT:          core.KeyT,
	ebiten.KeyQ:          core.KeyQ,
	ebiten.KeyEnter:      core.KeyReturn,
	ebiten.KeyBackspace:  core.KeyBackspace,
	ebiten.KeyEscape:     core.KeyEscape,
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyF1:         core.KeyF1,
}

// padButtons maps the standard (Xbox style) gamepad layout.
var padButtons = map[ebiten.StandardGamepadButton]core.PadButton{
	ebiten.StandardGamepadButtonRightBottom:   core.PadA,
	ebiten.StandardGamepadButtonRightRight:    core.PadB,
	ebiten.StandardGamepadButtonRightLeft:     core.PadX,
	ebiten.StandardGamepadButtonRightTop:      core.PadY,
	ebiten.StandardGamepadButtonCenterLeft:    core.PadBack,
	ebiten.StandardGamepadButtonCenterCenter:  core.PadGuide,
	ebiten.StandardGamepadButtonCenterRight:   core.PadStart,
	ebiten.StandardGamepadButtonFrontTopLeft:  core.PadLeftShoulder,
	ebiten.StandardGamepadButtonFrontTopRight: core.PadRightShoulder,
	ebiten.StandardGamepadButtonLeftTop:       core.PadDPadUp,
	ebiten.StandardGamepadButtonLeftBottom:    core.PadDPadDown,
	ebiten.StandardGamepadButtonLeftLeft:      core.PadDPadLeft,
	ebiten.StandardGamepadButtonLeftRight:     core.PadDPadRight,
}

func translateKey(k ebiten.Key) core.Key {
	if code, ok := keyCodes[k]; ok {
		return code
	}
	return core.KeyUnknown
}

// axisValue converts an ebiten stick value in [-1, 1] to the raw signed
// 16-bit range the simulation expects.
func axisValue(v float64) int16 {
	if math.Abs(v) < stickDeadzone {
		return 0
	}
	return int16(math.Round(core.ClampF(v, -1, 1) * math.MaxInt16))
}

// inputReader turns ebiten's polled input into press and release events.
type inputReader struct {
	keys []ebiten.Key
	pads []ebiten.GamepadID
}

// poll applies this tick's input changes to in. Only the first gamepad
// with a standard layout drives the stick.
func (r *inputReader) poll(in *core.InputState) {
	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	for _, k := range r.keys {
		in.ApplyKey(translateKey(k), true)
	}
	r.keys = inpututil.AppendJustReleasedKeys(r.keys[:0])
	for _, k := range r.keys {
		in.ApplyKey(translateKey(k), false)
	}

	r.pads = ebiten.AppendGamepadIDs(r.pads[:0])
	stick := false
	for _, id := range r.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, pb := range padButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				in.ApplyPadButton(pb, true)
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				in.ApplyPadButton(pb, false)
			}
		}
		if stick {
			continue
		}
		stick = true
		in.ApplyAxis(core.PadLeftX, axisValue(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)))
		in.ApplyAxis(core.PadLeftY, axisValue(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)))
	}
}
