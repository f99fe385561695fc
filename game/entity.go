package game

import "math"

// EntityID identifies an entity for the lifetime of the process.
// IDs increase monotonically and are never reused.
type EntityID uint64

// InvalidEntityID is never assigned to an entity.
const InvalidEntityID EntityID = 0

// Kind identifies which payload an entity carries
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindLaser
	KindAsteroid
	KindEnemy
	KindPowerup
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPlayer:
		return "player"
	case KindLaser:
		return "laser"
	case KindAsteroid:
		return "asteroid"
	case KindEnemy:
		return "enemy"
	case KindPowerup:
		return "powerup"
	default:
		return "unknown"
	}
}

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LenSq returns the squared length of v
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Collider is a circle centered on the entity's world position.
type Collider struct {
	// Enabled turns collision testing on for the entity
	Enabled bool

	// Radius in world units, set when the entity is created or changes kind
	Radius float64
}

// Entity is the universal game-object record. Entities live in a fixed slab
// and refer to each other through handles, never through pointers.
type Entity struct {
	// ID is unique for the lifetime of the process
	ID EntityID

	// Kind selects the payload pool
	Kind Kind

	ref         Handle
	parent      Handle
	firstChild  Handle
	nextSibling Handle
	payload     Handle

	// Position is local to the parent
	Position Vec2

	// Orientation in degrees, counter-clockwise, 0 pointing along +X
	Orientation float64

	// Scale is uniform
	Scale float64

	// World is recomputed from the parent chain every frame
	World Transform

	// Sprite is drawn by the renderer when Visible is set
	Sprite       SpriteID
	SpriteSize   Vec2
	SpriteOffset Vec2
	SpriteOrder  int
	Visible      bool

	Collider Collider

	// JustCreated is set for the frame the entity was created in and keeps
	// it out of collision testing
	JustCreated bool

	// PendingDestroy marks the entity for removal in the end-of-frame sweep
	PendingDestroy bool
}

// Ref returns the handle of the entity's own slot.
func (e *Entity) Ref() Handle { return e.ref }

// Parent returns the handle of the parent entity. The root has none.
func (e *Entity) Parent() Handle { return e.parent }

// WorldPosition returns the cached world-space origin of the entity.
func (e *Entity) WorldPosition() Vec2 { return e.World.Origin() }

// Facing returns the unit vector the entity's orientation points along.
func (e *Entity) Facing() Vec2 { return facing(e.Orientation) }

// facing converts an angle in degrees to a unit vector
func facing(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// angleOf returns the direction of v in degrees
func angleOf(v Vec2) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// normalizeDegrees wraps an angle into (-180, 180]
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
