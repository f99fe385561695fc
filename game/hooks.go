package game

import "go.uber.org/zap"

// The four kind hooks. Each is a closed switch over Kind; a tag outside the
// set is a programming error and goes to DPanic, which panics under a
// development logger and only logs in production.

func (w *World) onCreate(e *Entity) {
	switch e.Kind {
	case KindNone:
	case KindPlayer:
		w.playerCreate(e)
	case KindLaser:
		w.laserCreate(e)
	case KindAsteroid:
		w.asteroidCreate(e)
	case KindEnemy:
		w.enemyCreate(e)
	case KindPowerup:
		w.powerupCreate(e)
	default:
		w.unhandledKind("create", e)
	}
}

func (w *World) onDestroy(e *Entity) {
	switch e.Kind {
	case KindNone:
	case KindPlayer:
		w.playerDestroy(e)
	case KindLaser:
	case KindAsteroid:
		w.asteroidDestroy(e)
	case KindEnemy:
		w.enemyDestroy(e)
	case KindPowerup:
	default:
		w.unhandledKind("destroy", e)
	}
}

func (w *World) onUpdate(e *Entity, dt float64) {
	switch e.Kind {
	case KindNone:
	case KindPlayer:
		w.playerUpdate(e, dt)
	case KindLaser:
		w.laserUpdate(e, dt)
	case KindAsteroid:
		w.asteroidUpdate(e, dt)
	case KindEnemy:
		w.enemyUpdate(e, dt)
	case KindPowerup:
		w.powerupUpdate(e, dt)
	default:
		w.unhandledKind("update", e)
	}
}

// onCollision runs self's reaction to touching other. Each kind encodes only
// its own side; the pass calls it once per direction.
func (w *World) onCollision(self, other *Entity) {
	switch self.Kind {
	case KindNone:
	case KindPlayer:
		w.playerCollide(self, other)
	case KindLaser:
		w.laserCollide(self, other)
	case KindAsteroid:
		w.asteroidCollide(self, other)
	case KindEnemy:
		w.enemyCollide(self, other)
	case KindPowerup:
	default:
		w.unhandledKind("collide", self)
	}
	if w.onContact != nil {
		w.onContact(self, other)
	}
}

func (w *World) unhandledKind(hook string, e *Entity) {
	w.log.DPanic("unhandled entity kind",
		zap.String("hook", hook),
		zap.Stringer("kind", e.Kind),
		zap.Uint64("id", uint64(e.ID)),
	)
}
