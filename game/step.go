package game

import (
	"math"

	"go.uber.org/zap"
)

// Start populates a fresh world: the player ship, the enemy saucer and the
// first asteroid wave.
func (w *World) Start() error {
	if _, err := w.SpawnPlayer(); err != nil {
		return err
	}
	if _, err := w.SpawnEnemy(); err != nil {
		return err
	}
	w.spawnWave()
	w.RebuildTransforms()
	return nil
}

// Step advances the simulation by dt seconds and returns the draw list.
//
// Order: kind updates over a snapshot of the live entities, waves, world
// wrap, transform rebuild, collision pass, destruction sweep, just-created
// reset, second transform rebuild, draw-list build. The reset follows the
// sweep so pieces spawned by destroy hooks collide from the next frame on.
// The returned slice is reused by the next Step.
func (w *World) Step(dt float64, in *Input) []DrawItem {
	if dt < 0 {
		dt = 0
	}
	if w.cfg.MaxDelta > 0 && dt > w.cfg.MaxDelta {
		dt = w.cfg.MaxDelta
	}
	w.input = in
	w.elapsed += dt
	w.stats = FrameStats{}

	w.update(dt)
	if w.cfg.AutoWaves && w.Count(KindAsteroid) == 0 {
		w.spawnWave()
	}
	w.Wrap()
	w.RebuildTransforms()
	w.DetectCollisions()
	w.Sweep()
	w.ClearJustCreated()
	w.RebuildTransforms()

	w.input = nil
	return w.DrawList()
}

// update runs the update hook of every entity alive at the start of the
// pass. Entities created by a hook are first updated next frame.
func (w *World) update(dt float64) {
	w.snapshot = w.entities.AppendHandles(w.snapshot[:0])
	for _, h := range w.snapshot {
		if h == w.root {
			continue
		}
		e, ok := w.entities.Get(h)
		if !ok || e.PendingDestroy {
			continue
		}
		w.onUpdate(e, dt)
		w.stats.Updated++
	}
}

// spawnWave places base+level large asteroids away from the player
func (w *World) spawnWave() {
	t := w.tuning.Waves
	n := t.Base + w.level
	w.level++

	var center Vec2
	if p, ok := w.LocalPlayer(); ok {
		center = p.Position
	}
	for range n {
		pos := w.safeSpawnPoint(center, t.SafeRadius)
		if _, err := w.SpawnAsteroid(AsteroidLarge, pos); err != nil {
			w.log.Warn("wave truncated", zap.Int("level", w.level), zap.Error(err))
			return
		}
	}
	w.log.Debug("wave spawned", zap.Int("level", w.level), zap.Int("asteroids", n))
}

// safeSpawnPoint draws random points in the world until one is at least
// radius away from center, keeping the last draw if none is
func (w *World) safeSpawnPoint(center Vec2, radius float64) Vec2 {
	b := w.cfg.Bounds()
	var pos Vec2
	for range 16 {
		pos = Vec2{w.rng.Between(b.Left, b.Right), w.rng.Between(b.Bottom, b.Top)}
		if pos.Sub(center).LenSq() >= radius*radius {
			return pos
		}
	}
	// Push the point out to the safe radius along its direction.
	d := pos.Sub(center)
	if l := d.Len(); l > 0 {
		pos = center.Add(d.Scale(radius / l))
	} else {
		pos = center.Add(Vec2{X: radius})
	}
	return Vec2{math.Max(b.Left, math.Min(b.Right, pos.X)), math.Max(b.Bottom, math.Min(b.Top, pos.Y))}
}
