package game

// Powerup is the payload of a powerup. It has no behavior yet.
type Powerup struct{}

// SpawnPowerup creates a powerup at pos.
func (w *World) SpawnPowerup(pos Vec2) (*Entity, error) {
	return w.create(KindPowerup, nil, func(e *Entity) {
		e.Position = pos
	})
}

func (w *World) powerupCreate(e *Entity) {
	e.Sprite = SpritePowerup
	e.SpriteSize = Vec2{24, 24}
	e.SpriteOrder = LayerPowerup
}

func (w *World) powerupUpdate(*Entity, float64) {}
