package game

// collides reports whether e takes part in this frame's collision pass
func collides(e *Entity) bool {
	return e.Collider.Enabled && !e.JustCreated && !e.PendingDestroy
}

// Overlaps tests two circle colliders at their cached world positions.
// Touching circles overlap.
func Overlaps(a, b *Entity) bool {
	r := a.Collider.Radius + b.Collider.Radius
	return a.WorldPosition().Sub(b.WorldPosition()).LenSq() <= r*r
}

// DetectCollisions tests every pair of colliding entities and dispatches
// both directions of each contact. It returns the number of contacts.
//
// The candidate set is taken once at the start of the pass, so entities
// created by a handler wait for the next frame. A pair is skipped when
// either side was flagged for destruction or lost its collider earlier in
// the pass, which makes a laser score at most once. Within one pair both
// handlers always run. Cost is O(n^2) in the number of colliders.
func (w *World) DetectCollisions() int {
	w.contacts = w.contacts[:0]
	w.entities.Each(func(h Handle, e *Entity) bool {
		if h != w.root && collides(e) {
			w.contacts = append(w.contacts, e)
		}
		return true
	})

	n := 0
	for i := 0; i < len(w.contacts); i++ {
		a := w.contacts[i]
		for j := i + 1; j < len(w.contacts); j++ {
			if !collides(a) {
				break
			}
			b := w.contacts[j]
			if !collides(b) {
				continue
			}
			if !Overlaps(a, b) {
				continue
			}
			w.onCollision(a, b)
			w.onCollision(b, a)
			n++
		}
	}
	w.stats.Contacts += n
	return n
}
