package game

import (
	"fmt"

	"go.uber.org/zap"
)

// FrameStats counts what happened during the last Step
type FrameStats struct {
	Updated   int
	Contacts  int
	Created   int
	Destroyed int
}

// World owns every entity pool, the entity tree and the frame state.
// A World is not safe for concurrent use; it is driven by a single game loop.
type World struct {
	cfg    Config
	tuning Tuning
	log    *zap.Logger
	rng    *RNG
	audio  Audio

	entities  *Pool[Entity]
	players   *Pool[Player]
	lasers    *Pool[Laser]
	asteroids *Pool[Asteroid]
	enemies   *Pool[Enemy]
	powerups  *Pool[Powerup]

	root   Handle
	nextID EntityID

	// Frame state
	input    *Input
	elapsed  float64
	snapshot []Handle
	contacts []*Entity
	drawList []DrawItem
	stats    FrameStats

	// Gameplay state
	player    Handle
	level     int
	onContact func(self, other *Entity)
}

// NewWorld creates an empty world holding only the root entity.
// A nil logger, RNG or audio sink is replaced by a no-op implementation.
func NewWorld(cfg Config, tuning Tuning, log *zap.Logger, rng *RNG, audio Audio) (*World, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = NewRNG(1)
	}
	if audio == nil {
		audio = SilentAudio{}
	}
	if cfg.Capacity.Entities < 1 {
		return nil, fmt.Errorf("entity capacity %d: need room for the root", cfg.Capacity.Entities)
	}

	w := &World{
		cfg:       cfg,
		tuning:    tuning,
		log:       log,
		rng:       rng,
		audio:     audio,
		entities:  NewPool[Entity]("entities", cfg.Capacity.Entities),
		players:   NewPool[Player]("players", cfg.Capacity.Players),
		lasers:    NewPool[Laser]("lasers", cfg.Capacity.Lasers),
		asteroids: NewPool[Asteroid]("asteroids", cfg.Capacity.Asteroids),
		enemies:   NewPool[Enemy]("enemies", cfg.Capacity.Enemies),
		powerups:  NewPool[Powerup]("powerups", cfg.Capacity.Powerups),
		snapshot:  make([]Handle, 0, cfg.Capacity.Entities),
		contacts:  make([]*Entity, 0, cfg.Capacity.Entities),
		drawList:  make([]DrawItem, 0, cfg.Capacity.Entities),
	}

	root, ref, err := w.entities.Acquire()
	if err != nil {
		return nil, fmt.Errorf("create root: %w", err)
	}
	w.nextID++
	root.ID = w.nextID
	root.Kind = KindNone
	root.ref = ref
	root.Scale = 1
	root.Visible = true
	root.World = Identity()
	w.root = ref

	return w, nil
}

// Config returns the world configuration
func (w *World) Config() Config { return w.cfg }

// Tuning returns the kind rule set
func (w *World) Tuning() Tuning { return w.tuning }

// Logger returns the world's logger
func (w *World) Logger() *zap.Logger { return w.log }

// Elapsed returns the simulated time in seconds
func (w *World) Elapsed() float64 { return w.elapsed }

// Stats returns the counters of the last Step
func (w *World) Stats() FrameStats { return w.stats }

// Level returns the number of asteroid waves spawned so far
func (w *World) Level() int { return w.level }

// Root returns the synthetic root entity
func (w *World) Root() *Entity {
	root, _ := w.entities.Get(w.root)
	return root
}

// SetContactObserver registers fn to be called for every collision handler
// invocation, after the handler ran. Pass nil to remove it.
func (w *World) SetContactObserver(fn func(self, other *Entity)) {
	w.onContact = fn
}

// Create adds an entity of the given kind under parent (nil means the root)
// and runs the kind's create hook.
func (w *World) Create(kind Kind, parent *Entity) (*Entity, error) {
	return w.create(kind, parent, nil)
}

// create is Create with an init callback that runs after the entity is linked
// and before the create hook, so spawners can seed the payload.
func (w *World) create(kind Kind, parent *Entity, init func(*Entity)) (*Entity, error) {
	parentRef := w.root
	if parent != nil {
		parentRef = parent.ref
	}
	p, ok := w.entities.Get(parentRef)
	if !ok || p.PendingDestroy {
		return nil, fmt.Errorf("create %s: parent is not active", kind)
	}

	e, ref, err := w.entities.Acquire()
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}
	payload, err := w.acquirePayload(kind)
	if err != nil {
		w.entities.Release(ref)
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}

	w.nextID++
	e.ID = w.nextID
	e.Kind = kind
	e.ref = ref
	e.payload = payload
	e.Scale = 1
	e.Visible = true
	e.JustCreated = true
	w.link(p, e)

	if init != nil {
		init(e)
	}
	w.onCreate(e)
	w.stats.Created++
	return e, nil
}

// spawn creates a root-level entity and logs instead of failing; pool
// exhaustion drops the spawn.
func (w *World) spawn(kind Kind, init func(*Entity)) *Entity {
	return w.spawnChild(kind, nil, init)
}

func (w *World) spawnChild(kind Kind, parent *Entity, init func(*Entity)) *Entity {
	e, err := w.create(kind, parent, init)
	if err != nil {
		w.log.Warn("spawn dropped",
			zap.Stringer("kind", kind),
			zap.Int("entities", w.entities.Len()),
			zap.Int("capacity", w.entities.Cap()),
			zap.Error(err),
		)
		return nil
	}
	return e
}

func (w *World) acquirePayload(kind Kind) (Handle, error) {
	var (
		h   Handle
		err error
	)
	switch kind {
	case KindNone:
		return Handle{}, nil
	case KindPlayer:
		_, h, err = w.players.Acquire()
	case KindLaser:
		_, h, err = w.lasers.Acquire()
	case KindAsteroid:
		_, h, err = w.asteroids.Acquire()
	case KindEnemy:
		_, h, err = w.enemies.Acquire()
	case KindPowerup:
		_, h, err = w.powerups.Acquire()
	default:
		return Handle{}, fmt.Errorf("unknown kind %d", kind)
	}
	return h, err
}

func (w *World) releasePayload(e *Entity) {
	switch e.Kind {
	case KindNone:
	case KindPlayer:
		w.players.Release(e.payload)
	case KindLaser:
		w.lasers.Release(e.payload)
	case KindAsteroid:
		w.asteroids.Release(e.payload)
	case KindEnemy:
		w.enemies.Release(e.payload)
	case KindPowerup:
		w.powerups.Release(e.payload)
	default:
		w.log.DPanic("release payload of unknown kind", zap.Stringer("kind", e.Kind), zap.Uint64("id", uint64(e.ID)))
	}
	e.payload = Handle{}
}

// link appends child to the end of parent's sibling chain
func (w *World) link(parent, child *Entity) {
	child.parent = parent.ref
	child.nextSibling = Handle{}
	if parent.firstChild.IsZero() {
		parent.firstChild = child.ref
		return
	}
	h := parent.firstChild
	for {
		sib, ok := w.entities.Get(h)
		if !ok {
			// Broken chain; start over from the child.
			parent.firstChild = child.ref
			return
		}
		if sib.nextSibling.IsZero() {
			sib.nextSibling = child.ref
			return
		}
		h = sib.nextSibling
	}
}

// unlink removes child from its parent's sibling chain, if the parent is still alive
func (w *World) unlink(child *Entity) {
	parent, ok := w.entities.Get(child.parent)
	if !ok {
		return
	}
	if parent.firstChild == child.ref {
		parent.firstChild = child.nextSibling
	} else {
		for h := parent.firstChild; !h.IsZero(); {
			sib, ok := w.entities.Get(h)
			if !ok {
				break
			}
			if sib.nextSibling == child.ref {
				sib.nextSibling = child.nextSibling
				break
			}
			h = sib.nextSibling
		}
	}
	child.parent = Handle{}
	child.nextSibling = Handle{}
}

// Destroy flags e and its whole subtree for removal at the end of the frame.
// It returns the number of entities newly flagged. Destroying the root or an
// already flagged entity does nothing.
func (w *World) Destroy(e *Entity) int {
	if e == nil || e.PendingDestroy || e.ref == w.root {
		return 0
	}
	if !w.entities.Valid(e.ref) {
		return 0
	}
	return w.flag(e)
}

func (w *World) flag(e *Entity) int {
	n := 0
	if !e.PendingDestroy {
		e.PendingDestroy = true
		n++
	}
	for h := e.firstChild; !h.IsZero(); {
		child, ok := w.entities.Get(h)
		if !ok {
			break
		}
		n += w.flag(child)
		h = child.nextSibling
	}
	return n
}

// Find returns the active entity with the given id. It scans the pool, so
// prefer Resolve when a handle is at hand.
func (w *World) Find(id EntityID) (*Entity, bool) {
	if id == InvalidEntityID {
		return nil, false
	}
	var found *Entity
	w.entities.Each(func(_ Handle, e *Entity) bool {
		if e.ID == id {
			found = e
			return false
		}
		return true
	})
	return found, found != nil
}

// Resolve returns the entity addressed by h, or false if it was released.
func (w *World) Resolve(h Handle) (*Entity, bool) {
	return w.entities.Get(h)
}

// Sweep removes every entity flagged for destruction: it runs the destroy
// hook, releases the kind payload, unlinks the entity from its parent and
// releases its slot. It returns the number of entities removed.
func (w *World) Sweep() int {
	w.snapshot = w.snapshot[:0]
	w.entities.Each(func(h Handle, e *Entity) bool {
		if e.PendingDestroy {
			w.snapshot = append(w.snapshot, h)
		}
		return true
	})

	n := 0
	for _, h := range w.snapshot {
		e, ok := w.entities.Get(h)
		if !ok {
			continue
		}
		w.onDestroy(e)
		w.releasePayload(e)
		w.unlink(e)
		w.entities.Release(h)
		n++
	}
	w.stats.Destroyed += n
	return n
}

// ClearJustCreated makes every active entity eligible for collision testing.
func (w *World) ClearJustCreated() {
	w.entities.Each(func(_ Handle, e *Entity) bool {
		e.JustCreated = false
		return true
	})
}

// Each calls fn for every active entity, including the root, in slot order.
func (w *World) Each(fn func(e *Entity) bool) {
	w.entities.Each(func(_ Handle, e *Entity) bool {
		return fn(e)
	})
}

// Count returns the number of active entities of a kind that are not
// flagged for destruction.
func (w *World) Count(kind Kind) int {
	n := 0
	w.entities.Each(func(h Handle, e *Entity) bool {
		if h != w.root && e.Kind == kind && !e.PendingDestroy {
			n++
		}
		return true
	})
	return n
}

// Len returns the number of occupied entity slots, including the root.
func (w *World) Len() int { return w.entities.Len() }

// Children returns the direct children of e in sibling order.
func (w *World) Children(e *Entity) []*Entity {
	var out []*Entity
	for h := e.firstChild; !h.IsZero(); {
		child, ok := w.entities.Get(h)
		if !ok {
			break
		}
		out = append(out, child)
		h = child.nextSibling
	}
	return out
}

// Player returns the player payload of e, or nil if e is not a player.
func (w *World) Player(e *Entity) *Player {
	if e == nil || e.Kind != KindPlayer {
		return nil
	}
	p, _ := w.players.Get(e.payload)
	return p
}

// Laser returns the laser payload of e, or nil if e is not a laser.
func (w *World) Laser(e *Entity) *Laser {
	if e == nil || e.Kind != KindLaser {
		return nil
	}
	l, _ := w.lasers.Get(e.payload)
	return l
}

// Asteroid returns the asteroid payload of e, or nil if e is not an asteroid.
func (w *World) Asteroid(e *Entity) *Asteroid {
	if e == nil || e.Kind != KindAsteroid {
		return nil
	}
	a, _ := w.asteroids.Get(e.payload)
	return a
}

// Enemy returns the enemy payload of e, or nil if e is not an enemy.
func (w *World) Enemy(e *Entity) *Enemy {
	if e == nil || e.Kind != KindEnemy {
		return nil
	}
	en, _ := w.enemies.Get(e.payload)
	return en
}

// Powerup returns the powerup payload of e, or nil if e is not a powerup.
func (w *World) Powerup(e *Entity) *Powerup {
	if e == nil || e.Kind != KindPowerup {
		return nil
	}
	p, _ := w.powerups.Get(e.payload)
	return p
}

// LocalPlayer returns the player entity spawned by Start, if it still exists.
func (w *World) LocalPlayer() (*Entity, bool) {
	return w.entities.Get(w.player)
}

// Wrap teleports root-level entities that left the world rectangle to the
// opposite edge, independently per axis. Entities exactly on an edge stay.
// Children move with their parents and are never wrapped themselves.
func (w *World) Wrap() {
	root, ok := w.entities.Get(w.root)
	if !ok {
		return
	}
	b := w.cfg.Bounds()
	for h := root.firstChild; !h.IsZero(); {
		e, ok := w.entities.Get(h)
		if !ok {
			break
		}
		e.Position = wrapPoint(e.Position, b, w.cfg.Width, w.cfg.Height)
		h = e.nextSibling
	}
}

func wrapPoint(p Vec2, b Rect, width, height float64) Vec2 {
	if p.X > b.Right {
		p.X -= width
	} else if p.X < b.Left {
		p.X += width
	}
	if p.Y > b.Top {
		p.Y -= height
	} else if p.Y < b.Bottom {
		p.Y += height
	}
	return p
}
