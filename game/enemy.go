package game

import "go.uber.org/zap"

// EnemyState is the saucer state machine
type EnemyState uint8

const (
	EnemyDead EnemyState = iota
	EnemyAlive
)

func (s EnemyState) String() string {
	if s == EnemyAlive {
		return "alive"
	}
	return "dead"
}

// EnemyMode is the saucer difficulty
type EnemyMode uint8

const (
	EnemyEasy EnemyMode = iota
	EnemyHard
)

func (m EnemyMode) String() string {
	if m == EnemyHard {
		return "hard"
	}
	return "easy"
}

// Enemy is the payload of an enemy saucer. The entity lives for the whole
// game and toggles between dead and alive.
type Enemy struct {
	State        EnemyState
	Mode         EnemyMode
	Score        int
	Velocity     Vec2
	Spin         float64
	FireCooldown float64
	RespawnTimer float64

	// Travelled is the distance covered since spawning; the saucer leaves
	// after crossing the world once
	Travelled float64
}

// SpawnEnemy creates a dead saucer waiting on its respawn timer.
func (w *World) SpawnEnemy() (*Entity, error) {
	return w.Create(KindEnemy, nil)
}

func (w *World) enemyCreate(e *Entity) {
	t := w.tuning.Enemy
	e.Sprite = SpriteEnemy
	e.SpriteSize = Vec2{t.SpriteSize, t.SpriteSize}
	e.SpriteOrder = LayerEnemy
	w.enemyDie(e, w.Enemy(e))
}

func (w *World) enemyDestroy(e *Entity) {
	w.log.Debug("enemy removed", zap.Uint64("id", uint64(e.ID)))
}

// enemyDie hides the saucer and arms the respawn timer
func (w *World) enemyDie(e *Entity, en *Enemy) {
	t := w.tuning.Enemy
	en.State = EnemyDead
	en.Velocity = Vec2{}
	en.Travelled = 0
	en.RespawnTimer = w.rng.Between(t.RespawnMin, t.RespawnMax)
	e.Visible = false
	e.Collider.Enabled = false
}

// enemySpawn picks a mode and a side and sends the saucer across the world
func (w *World) enemySpawn(e *Entity, en *Enemy) {
	t := w.tuning.Enemy
	b := w.cfg.Bounds()

	en.Mode = EnemyEasy
	if w.Score() >= t.HardScoreThreshold || w.rng.OneIn(t.HardChance) {
		en.Mode = EnemyHard
	}
	mode := t.ForMode(en.Mode)

	y := w.rng.Between(b.Bottom, b.Top)
	if w.rng.OneIn(2) {
		e.Position = Vec2{b.Left, y}
		en.Velocity = Vec2{X: t.Speed}
	} else {
		e.Position = Vec2{b.Right, y}
		en.Velocity = Vec2{X: -t.Speed}
	}

	en.State = EnemyAlive
	en.Score = mode.Score
	en.Spin = t.Spin
	en.Travelled = 0
	en.FireCooldown = mode.FireInterval
	e.Scale = mode.Scale
	e.Visible = true
	e.Collider = Collider{Enabled: true, Radius: mode.Radius}

	w.audio.Play(SoundEnemySpawn, false, 0.8)
	w.log.Debug("enemy spawned", zap.Stringer("mode", en.Mode), zap.Float64("y", y))
}

func (w *World) enemyUpdate(e *Entity, dt float64) {
	en := w.Enemy(e)

	if en.State == EnemyDead {
		en.RespawnTimer -= dt
		if en.RespawnTimer <= 0 {
			w.enemySpawn(e, en)
		}
		return
	}

	step := en.Velocity.Scale(dt)
	e.Position = e.Position.Add(step)
	e.Orientation = normalizeDegrees(e.Orientation + en.Spin*dt)
	en.Travelled += step.Len()
	if en.Travelled >= w.cfg.Width {
		w.enemyDie(e, en)
		return
	}

	en.FireCooldown -= dt
	if en.FireCooldown <= 0 {
		en.FireCooldown += w.tuning.Enemy.ForMode(en.Mode).FireInterval
		w.fireLaser(e, FactionEnemy, w.enemyAim(e, en), 0)
	}
}

// enemyAim fires at random in easy mode. In hard mode it leads the player,
// give or take the jitter.
func (w *World) enemyAim(e *Entity, en *Enemy) float64 {
	if en.Mode == EnemyHard {
		if target, ok := w.LocalPlayer(); ok && w.Player(target).State == PlayerAlive {
			p := w.Player(target)
			aim := leadTarget(e.Position, target.Position, p.Velocity, w.tuning.Laser.Speed)
			jitter := w.tuning.Enemy.AimJitter
			return angleOf(aim.Sub(e.Position)) + w.rng.Between(-jitter, jitter)
		}
	}
	return w.rng.Between(0, 360)
}

func (w *World) enemyCollide(self, other *Entity) {
	en := w.Enemy(self)
	if en.State != EnemyAlive {
		return
	}
	switch other.Kind {
	case KindLaser:
		if w.FactionOf(other) != FactionPlayer {
			return
		}
	case KindPlayer:
		if w.Shielded(other) {
			return
		}
	default:
		return
	}
	w.enemyDie(self, en)
	w.audio.Play(SoundExplosionMedium, false, 1)
}
