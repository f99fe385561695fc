package game

import (
	"image/color"
	"sort"
)

// SpriteID identifies an image in the sprite atlas
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpritePlayer
	SpriteThrust
	SpriteShield
	SpriteLaserPlayer
	SpriteLaserEnemy
	SpriteAsteroid
	SpriteEnemy
	SpritePowerup

	spriteCount
)

// Sprites lists every drawable sprite, for preloading
func Sprites() []SpriteID {
	out := make([]SpriteID, 0, spriteCount-1)
	for s := SpriteID(1); s < spriteCount; s++ {
		out = append(out, s)
	}
	return out
}

// String returns the asset name of the sprite
func (s SpriteID) String() string {
	switch s {
	case SpriteNone:
		return "none"
	case SpritePlayer:
		return "player"
	case SpriteThrust:
		return "thrust"
	case SpriteShield:
		return "shield"
	case SpriteLaserPlayer:
		return "laser_player"
	case SpriteLaserEnemy:
		return "laser_enemy"
	case SpriteAsteroid:
		return "asteroid"
	case SpriteEnemy:
		return "enemy"
	case SpritePowerup:
		return "powerup"
	default:
		return "unknown"
	}
}

// Sprite layers, drawn low to high
const (
	LayerAsteroid = 10
	LayerPowerup  = 15
	LayerLaser    = 20
	LayerEnemy    = 30
	LayerThrust   = 39
	LayerPlayer   = 40
	LayerShield   = 50
)

// DrawItem is one sprite for the renderer. World maps sprite-local units
// (centered, +Y up) to world units.
type DrawItem struct {
	ID     EntityID
	Kind   Kind
	World  Transform
	Sprite SpriteID
	Size   Vec2
	Offset Vec2
	Order  int
	Tint   color.RGBA
	Radius float64 // collider radius, 0 if none
}

var white = color.RGBA{255, 255, 255, 255}

// DrawList walks the tree depth-first, skipping invisible subtrees, and
// returns the visible sprites stably sorted by layer. Within a layer the
// tree order is kept. The slice is reused by the next call.
func (w *World) DrawList() []DrawItem {
	w.drawList = w.drawList[:0]
	root, ok := w.entities.Get(w.root)
	if !ok {
		return w.drawList
	}
	w.collectDraw(root)
	sort.SliceStable(w.drawList, func(i, j int) bool {
		return w.drawList[i].Order < w.drawList[j].Order
	})
	return w.drawList
}

func (w *World) collectDraw(parent *Entity) {
	for h := parent.firstChild; !h.IsZero(); {
		e, ok := w.entities.Get(h)
		if !ok {
			return
		}
		h = e.nextSibling
		if !e.Visible {
			continue
		}
		if e.Sprite != SpriteNone {
			item := DrawItem{
				ID:     e.ID,
				Kind:   e.Kind,
				World:  e.World,
				Sprite: e.Sprite,
				Size:   e.SpriteSize,
				Offset: e.SpriteOffset,
				Order:  e.SpriteOrder,
				Tint:   white,
			}
			if e.Collider.Enabled {
				item.Radius = e.Collider.Radius
			}
			if e.Kind == KindLaser {
				item.Tint = GetFactionConfig(w.FactionOf(e)).Tint
			}
			w.drawList = append(w.drawList, item)
		}
		w.collectDraw(e)
	}
}
