package game

// AsteroidSize is the asteroid size class
type AsteroidSize uint8

const (
	AsteroidSmall AsteroidSize = iota
	AsteroidMedium
	AsteroidLarge
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Asteroid is the payload of an asteroid
type Asteroid struct {
	Size     AsteroidSize
	Score    int
	Velocity Vec2
	Spin     float64 // degrees/s
}

// SpawnAsteroid creates an asteroid of the given size at pos with a random
// heading, speed and spin drawn from the size's ranges.
func (w *World) SpawnAsteroid(size AsteroidSize, pos Vec2) (*Entity, error) {
	return w.create(KindAsteroid, nil, func(e *Entity) {
		e.Position = pos
		w.Asteroid(e).Size = size
	})
}

func (w *World) asteroidCreate(e *Entity) {
	a := w.Asteroid(e)
	t := w.tuning.Asteroids.ForSize(a.Size)
	a.Score = t.Score
	a.Velocity = facing(w.rng.Between(0, 360)).Scale(w.rng.Between(t.SpeedMin, t.SpeedMax))
	a.Spin = w.rng.Between(t.SpinMin, t.SpinMax) * w.rng.Sign()

	e.Orientation = w.rng.Between(0, 360)
	e.Scale = t.Scale
	e.Sprite = SpriteAsteroid
	size := w.tuning.Asteroids.SpriteSize
	e.SpriteSize = Vec2{size, size}
	e.SpriteOrder = LayerAsteroid
	e.Collider = Collider{Enabled: true, Radius: t.Radius}
}

func (w *World) asteroidUpdate(e *Entity, dt float64) {
	a := w.Asteroid(e)
	e.Position = e.Position.Add(a.Velocity.Scale(dt))
	e.Orientation = normalizeDegrees(e.Orientation + a.Spin*dt)
}

func (w *World) asteroidCollide(self, other *Entity) {
	switch other.Kind {
	case KindLaser:
		if w.FactionOf(other) == FactionPlayer {
			w.Destroy(self)
		}
	case KindPlayer:
		if !w.Shielded(other) {
			w.Destroy(self)
		}
	}
}

// asteroidDestroy splits medium and large asteroids into two of the next
// smaller size at the parent's last position.
func (w *World) asteroidDestroy(e *Entity) {
	a := w.Asteroid(e)
	switch a.Size {
	case AsteroidSmall:
		w.audio.Play(SoundExplosionSmall, false, 1)
		return
	case AsteroidMedium:
		w.audio.Play(SoundExplosionMedium, false, 1)
	case AsteroidLarge:
		w.audio.Play(SoundExplosionLarge, false, 1)
	}

	size, pos := a.Size-1, e.Position
	for range 2 {
		w.spawn(KindAsteroid, func(c *Entity) {
			c.Position = pos
			w.Asteroid(c).Size = size
		})
	}
}
