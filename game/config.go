package game

// Capacities holds the fixed size of every slab pool
type Capacities struct {
	Entities  int
	Players   int
	Lasers    int
	Asteroids int
	Enemies   int
	Powerups  int
}

// Config holds the simulation configuration
type Config struct {
	// Width is the world width in world units, centered on the origin
	Width float64

	// Height is the world height in world units, centered on the origin
	Height float64

	// MaxDelta clamps the frame delta in seconds to avoid physics explosions after a stall
	MaxDelta float64

	// Capacity of each pool
	Capacity Capacities

	// AutoWaves spawns a new wave of asteroids whenever the field is clear
	AutoWaves bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:    1280,
		Height:   720,
		MaxDelta: 0.1,
		Capacity: Capacities{
			Entities:  256,
			Players:   2,
			Lasers:    64,
			Asteroids: 96,
			Enemies:   2,
			Powerups:  8,
		},
		AutoWaves: true,
	}
}

// Rect is an axis-aligned rectangle
type Rect struct {
	Left, Bottom, Right, Top float64
}

// Bounds returns the world rectangle
func (c Config) Bounds() Rect {
	return Rect{
		Left:   -c.Width / 2,
		Bottom: -c.Height / 2,
		Right:  c.Width / 2,
		Top:    c.Height / 2,
	}
}
