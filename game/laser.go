package game

// Laser is the payload of a laser bolt
type Laser struct {
	// Shooter is a weak reference; it stops resolving once the shooter is gone
	Shooter   Handle
	ShooterID EntityID
	Faction   Faction

	Speed    float64
	Lifetime float64
}

// fireLaser spawns a laser at offset along angle from the shooter's position
func (w *World) fireLaser(shooter *Entity, faction Faction, angle, offset float64) *Entity {
	return w.spawn(KindLaser, func(e *Entity) {
		e.Position = shooter.Position.Add(facing(angle).Scale(offset))
		e.Orientation = angle
		l := w.Laser(e)
		l.Shooter = shooter.ref
		l.ShooterID = shooter.ID
		l.Faction = faction
	})
}

// SpawnLaser fires a laser on behalf of shooter, which must be a player or an enemy.
func (w *World) SpawnLaser(shooter *Entity, angle float64) (*Entity, error) {
	faction := w.FactionOf(shooter)
	return w.create(KindLaser, nil, func(e *Entity) {
		e.Position = shooter.Position
		e.Orientation = angle
		l := w.Laser(e)
		l.Shooter = shooter.ref
		l.ShooterID = shooter.ID
		l.Faction = faction
	})
}

func (w *World) laserCreate(e *Entity) {
	t := w.tuning.Laser
	l := w.Laser(e)
	l.Speed = t.Speed
	l.Lifetime = t.Lifetime
	e.Sprite = GetFactionConfig(l.Faction).Sprite
	e.SpriteSize = Vec2{t.SpriteSize, t.SpriteSize / 3}
	e.SpriteOrder = LayerLaser
	e.Collider = Collider{Enabled: true, Radius: t.Radius}

	sound := SoundLaserA
	if w.rng.OneIn(2) {
		sound = SoundLaserB
	}
	w.audio.Play(sound, false, 0.6)
}

func (w *World) laserUpdate(e *Entity, dt float64) {
	l := w.Laser(e)
	e.Position = e.Position.Add(e.Facing().Scale(l.Speed * dt))
	l.Lifetime -= dt
	if l.Lifetime <= 0 {
		w.Destroy(e)
	}
}

func (w *World) laserCollide(self, other *Entity) {
	l := w.Laser(self)
	points := 0
	switch l.Faction {
	case FactionPlayer:
		switch other.Kind {
		case KindAsteroid:
			points = w.Asteroid(other).Score
		case KindEnemy:
			points = w.Enemy(other).Score
		default:
			return
		}
	case FactionEnemy:
		if other.Kind != KindPlayer {
			return
		}
	default:
		return
	}

	w.Destroy(self)
	if points == 0 {
		return
	}
	if shooter, ok := w.Resolve(l.Shooter); ok {
		w.AddScore(shooter, points)
	}
}
