package game

import (
	"math"

	"go.uber.org/zap"
)

// PlayerState is the player ship state machine
type PlayerState uint8

const (
	PlayerAlive PlayerState = iota
	PlayerDead
)

func (s PlayerState) String() string {
	if s == PlayerDead {
		return "dead"
	}
	return "alive"
}

// Player is the payload of a player ship
type Player struct {
	State    PlayerState
	Velocity Vec2

	// Aim is the orientation the ship turns towards, in degrees
	Aim float64

	Lives           int
	Score           int
	ScoreSinceBonus int

	// ShieldTimer counts down while the Shield child exists
	ShieldTimer float64

	Thrust    Handle
	Shield    Handle
	Thrusting bool

	thrustVoice Voice
}

// SpawnPlayer creates the player ship at the world center.
func (w *World) SpawnPlayer() (*Entity, error) {
	e, err := w.Create(KindPlayer, nil)
	if err != nil {
		return nil, err
	}
	w.player = e.ref
	return e, nil
}

func (w *World) playerCreate(e *Entity) {
	t := w.tuning.Player
	p := w.Player(e)
	p.State = PlayerAlive
	p.Lives = t.Lives
	p.Aim = 90
	e.Orientation = 90
	e.Sprite = SpritePlayer
	e.SpriteSize = Vec2{t.SpriteSize, t.SpriteSize}
	e.SpriteOrder = LayerPlayer
	e.Collider = Collider{Enabled: true, Radius: t.Radius}

	if thrust := w.spawnChild(KindNone, e, func(c *Entity) {
		c.Sprite = SpriteThrust
		c.SpriteSize = Vec2{t.SpriteSize / 2, t.SpriteSize / 2}
		c.SpriteOrder = LayerThrust
		c.Position = Vec2{X: -t.SpriteSize * 0.6}
		c.Visible = false
	}); thrust != nil {
		p.Thrust = thrust.ref
	}
	w.spawnShield(e, p)

	p.thrustVoice = w.audio.Play(SoundThrust, true, 0)
}

func (w *World) playerDestroy(e *Entity) {
	if p := w.Player(e); p != nil && p.thrustVoice != nil {
		p.thrustVoice.Stop()
		p.thrustVoice = nil
	}
	if e.ref == w.player {
		w.player = Handle{}
	}
}

// spawnShield gives the ship a fresh grace shield, replacing any current one
func (w *World) spawnShield(e *Entity, p *Player) {
	if old, ok := w.entities.Get(p.Shield); ok {
		w.Destroy(old)
	}
	t := w.tuning.Player
	shield := w.spawnChild(KindNone, e, func(c *Entity) {
		c.Sprite = SpriteShield
		c.SpriteSize = Vec2{t.Radius * 2.5, t.Radius * 2.5}
		c.SpriteOrder = LayerShield
	})
	if shield == nil {
		p.Shield = Handle{}
		return
	}
	p.Shield = shield.ref
	p.ShieldTimer = t.ShieldDuration
}

// Shielded reports whether the player currently ignores lethal contacts
func (w *World) Shielded(e *Entity) bool {
	p := w.Player(e)
	if p == nil {
		return false
	}
	shield, ok := w.entities.Get(p.Shield)
	return ok && !shield.PendingDestroy
}

func (w *World) playerUpdate(e *Entity, dt float64) {
	p := w.Player(e)
	t := w.tuning.Player

	if p.State == PlayerDead {
		if w.input.Pressed(ButtonRespawn) && p.Lives > 0 {
			w.respawnPlayer(e, p)
		}
		return
	}

	if shield, ok := w.entities.Get(p.Shield); ok {
		p.ShieldTimer -= dt
		if p.ShieldTimer <= 0 {
			w.Destroy(shield)
			p.Shield = Handle{}
			p.ShieldTimer = 0
		}
	}

	if aim, ok := w.input.aimDirection(e.Position, t.StickDeadzone); ok {
		p.Aim = aim
	}
	chase := 1 - math.Exp(-t.TurnRate*dt)
	e.Orientation = normalizeDegrees(e.Orientation + normalizeDegrees(p.Aim-e.Orientation)*chase)

	p.Thrusting = w.input.Held(ButtonThrust)
	if p.Thrusting {
		p.Velocity = p.Velocity.Add(e.Facing().Scale(t.Acceleration * dt))
	}
	p.Velocity = p.Velocity.Sub(p.Velocity.Scale(t.Damping * dt))
	e.Position = e.Position.Add(p.Velocity.Scale(dt))

	if thrust, ok := w.entities.Get(p.Thrust); ok {
		thrust.Visible = p.Thrusting
	}
	if p.thrustVoice != nil {
		if p.Thrusting {
			p.thrustVoice.SetVolume(1)
		} else {
			p.thrustVoice.SetVolume(0)
		}
	}

	if w.input.Pressed(ButtonFire) {
		w.fireLaser(e, FactionPlayer, e.Orientation, t.MuzzleOffset)
	}
}

func (w *World) respawnPlayer(e *Entity, p *Player) {
	p.State = PlayerAlive
	p.Velocity = Vec2{}
	p.Aim = 90
	e.Position = Vec2{}
	e.Orientation = 90
	e.Visible = true
	e.Collider.Enabled = true
	w.spawnShield(e, p)
	w.log.Debug("player respawned", zap.Int("lives", p.Lives))
}

func (w *World) playerCollide(self, other *Entity) {
	p := w.Player(self)
	if p.State == PlayerDead || w.Shielded(self) {
		return
	}
	switch other.Kind {
	case KindAsteroid, KindEnemy:
		w.killPlayer(self, p)
	case KindLaser:
		if w.FactionOf(other) == FactionEnemy {
			w.killPlayer(self, p)
		}
	}
}

func (w *World) killPlayer(e *Entity, p *Player) {
	p.State = PlayerDead
	p.Lives--
	p.Velocity = Vec2{}
	p.Thrusting = false
	e.Visible = false
	e.Collider.Enabled = false
	if p.thrustVoice != nil {
		p.thrustVoice.SetVolume(0)
	}
	if thrust, ok := w.entities.Get(p.Thrust); ok {
		thrust.Visible = false
	}
	w.audio.Play(SoundPlayerDeath, false, 1)
	w.log.Debug("player died", zap.Int("lives", p.Lives), zap.Int("score", p.Score))
}

// AddScore credits points to a player and grants a life every
// BonusLifeScore points.
func (w *World) AddScore(e *Entity, points int) {
	p := w.Player(e)
	if p == nil || points <= 0 {
		return
	}
	p.Score += points
	p.ScoreSinceBonus += points
	bonus := w.tuning.Player.BonusLifeScore
	if bonus <= 0 {
		return
	}
	for p.ScoreSinceBonus >= bonus {
		p.ScoreSinceBonus -= bonus
		p.Lives++
		w.audio.Play(SoundBonusLife, false, 1)
	}
}

// GameOver reports whether the player is dead with no lives left
func (w *World) GameOver() bool {
	e, ok := w.LocalPlayer()
	if !ok {
		return false
	}
	p := w.Player(e)
	return p.State == PlayerDead && p.Lives <= 0
}

// Score returns the local player's score
func (w *World) Score() int {
	e, ok := w.LocalPlayer()
	if !ok {
		return 0
	}
	return w.Player(e).Score
}
