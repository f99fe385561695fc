package game

// Button is a digital input the simulation reacts to
type Button int

const (
	ButtonThrust Button = iota
	ButtonFire
	ButtonRespawn

	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonThrust:
		return "thrust"
	case ButtonFire:
		return "fire"
	case ButtonRespawn:
		return "respawn"
	default:
		return "unknown"
	}
}

// ButtonState holds the edge and level state of a button for one frame
type ButtonState struct {
	Down bool // went down this frame
	Up   bool // went up this frame
	Held bool // is down
}

// Input is the snapshot of player input for one frame. The platform layer
// fills it; the simulation only reads it. A nil *Input reads as idle.
type Input struct {
	Buttons [buttonCount]ButtonState

	// Mouse is the cursor position in world units
	Mouse       Vec2
	MouseActive bool

	// Stick is the left analog stick, each axis in [-1, 1], +Y up
	Stick Vec2
}

// Pressed reports whether b went down this frame
func (in *Input) Pressed(b Button) bool {
	if in == nil || b < 0 || b >= buttonCount {
		return false
	}
	return in.Buttons[b].Down
}

// Held reports whether b is down
func (in *Input) Held(b Button) bool {
	if in == nil || b < 0 || b >= buttonCount {
		return false
	}
	return in.Buttons[b].Held
}

// Set records the level of b, deriving the edges from the previous snapshot
func (in *Input) Set(b Button, held bool, prev *Input) {
	if b < 0 || b >= buttonCount {
		return
	}
	was := prev.Held(b)
	in.Buttons[b] = ButtonState{
		Down: held && !was,
		Up:   !held && was,
		Held: held,
	}
}

// aimDirection returns the direction the player wants to face, in degrees,
// from the stick if it is outside the deadzone, else from the mouse.
func (in *Input) aimDirection(from Vec2, deadzone float64) (float64, bool) {
	if in == nil {
		return 0, false
	}
	if in.Stick.LenSq() > deadzone*deadzone {
		return angleOf(in.Stick), true
	}
	if in.MouseActive {
		d := in.Mouse.Sub(from)
		if d.LenSq() > 0 {
			return angleOf(d), true
		}
	}
	return 0, false
}
