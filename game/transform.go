package game

import "math"

// Transform is a 2D affine matrix
//
//	| A  C  Tx |
//	| B  D  Ty |
//	| 0  0  1  |
//
// The layout matches ebiten.GeoM element order so the renderer can copy it
// across without reshuffling.
type Transform struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// LocalTransform builds translate(position) · rotate(orientation) · scale(scale).
func LocalTransform(position Vec2, orientation, scale float64) Transform {
	rad := orientation * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Transform{
		A:  cos * scale,
		B:  sin * scale,
		C:  -sin * scale,
		D:  cos * scale,
		Tx: position.X,
		Ty: position.Y,
	}
}

// Mul returns t · o, i.e. o applied first.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		A:  t.A*o.A + t.C*o.B,
		B:  t.B*o.A + t.D*o.B,
		C:  t.A*o.C + t.C*o.D,
		D:  t.B*o.C + t.D*o.D,
		Tx: t.A*o.Tx + t.C*o.Ty + t.Tx,
		Ty: t.B*o.Tx + t.D*o.Ty + t.Ty,
	}
}

// Apply transforms the point p.
func (t Transform) Apply(p Vec2) Vec2 {
	return Vec2{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// Origin is the image of (0,0).
func (t Transform) Origin() Vec2 {
	return Vec2{t.Tx, t.Ty}
}

// localTransform of an entity
func (e *Entity) localTransform() Transform {
	return LocalTransform(e.Position, e.Orientation, e.Scale)
}

// RebuildTransforms recomputes every entity's world transform depth-first
// from the root. Parents are always finished before their children.
func (w *World) RebuildTransforms() {
	root, ok := w.entities.Get(w.root)
	if !ok {
		return
	}
	root.World = root.localTransform()
	w.rebuildChildren(root)
}

func (w *World) rebuildChildren(parent *Entity) {
	for h := parent.firstChild; !h.IsZero(); {
		child, ok := w.entities.Get(h)
		if !ok {
			return
		}
		child.World = parent.World.Mul(child.localTransform())
		w.rebuildChildren(child)
		h = child.nextSibling
	}
}
