package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/LucidFrost/asteroids-sub000/game"
)

// bindings maps each button to its keys, mouse buttons and gamepad buttons
var bindings = [...]struct {
	button  game.Button
	keys    []ebiten.Key
	mouse   []ebiten.MouseButton
	gamepad []ebiten.StandardGamepadButton
}{
	{
		button:  game.ButtonThrust,
		keys:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		mouse:   []ebiten.MouseButton{ebiten.MouseButtonRight},
		gamepad: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft, ebiten.StandardGamepadButtonRightBottom},
	},
	{
		button:  game.ButtonFire,
		keys:    []ebiten.Key{ebiten.KeySpace},
		mouse:   []ebiten.MouseButton{ebiten.MouseButtonLeft},
		gamepad: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight, ebiten.StandardGamepadButtonRightRight},
	},
	{
		button:  game.ButtonRespawn,
		keys:    []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
		gamepad: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

// PlayerInput polls keyboard, mouse and gamepads into a game.Input snapshot
type PlayerInput struct {
	prev     game.Input
	gamepads []ebiten.GamepadID

	// Mouse aiming stays on once the cursor moves, until a stick takes over
	mouseX, mouseY int
	useMouse       bool
}

// NewPlayerInput creates a new player input poller
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{
		gamepads: make([]ebiten.GamepadID, 0, 4),
	}
}

// Poll builds this frame's snapshot. Edges are derived from the previous poll.
func (p *PlayerInput) Poll(camera *Camera) *game.Input {
	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])

	var in game.Input
	for _, b := range bindings {
		in.Set(b.button, p.held(b.keys, b.mouse, b.gamepad), &p.prev)
	}

	for _, id := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if x*x+y*y > in.Stick.LenSq() {
			// Screen-down axis to world-up
			in.Stick = game.Vec2{X: x, Y: -y}
		}
	}
	if in.Stick.LenSq() > 0.25*0.25 {
		p.useMouse = false
	}

	mx, my := ebiten.CursorPosition()
	if mx != p.mouseX || my != p.mouseY || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.useMouse = true
	}
	p.mouseX, p.mouseY = mx, my
	wx, wy := camera.ScreenToWorld(float64(mx), float64(my))
	in.Mouse = game.Vec2{X: wx, Y: wy}
	in.MouseActive = p.useMouse

	p.prev = in
	return &in
}

func (p *PlayerInput) held(keys []ebiten.Key, mouse []ebiten.MouseButton, pads []ebiten.StandardGamepadButton) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, m := range mouse {
		if ebiten.IsMouseButtonPressed(m) {
			return true
		}
	}
	for _, id := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range pads {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return true
			}
		}
	}
	return false
}

// Reset forgets the previous snapshot so no edge carries over
func (p *PlayerInput) Reset() {
	p.prev = game.Input{}
}
