package game

import "image/color"

// Faction represents which side fired a laser
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// FactionConfig holds configuration for each faction
type FactionConfig struct {
	Faction Faction
	Tint    color.RGBA
	Sprite  SpriteID
}

var (
	// FactionConfigs holds configuration for each faction
	FactionConfigs = map[Faction]FactionConfig{
		FactionPlayer: {
			Faction: FactionPlayer,
			Tint:    color.RGBA{120, 255, 120, 255},
			Sprite:  SpriteLaserPlayer,
		},
		FactionEnemy: {
			Faction: FactionEnemy,
			Tint:    color.RGBA{255, 90, 90, 255},
			Sprite:  SpriteLaserEnemy,
		},
	}
)

// GetFactionConfig returns configuration for a faction
func GetFactionConfig(faction Faction) FactionConfig {
	if config, ok := FactionConfigs[faction]; ok {
		return config
	}
	return FactionConfig{
		Faction: faction,
		Tint:    color.RGBA{255, 100, 0, 255}, // Orange fallback
		Sprite:  SpriteLaserEnemy,
	}
}

// FactionOf returns the side an entity fights for. Lasers carry their
// shooter's faction; everything that is not the player is hostile.
func (w *World) FactionOf(e *Entity) Faction {
	if e == nil {
		return FactionEnemy
	}
	switch e.Kind {
	case KindPlayer:
		return FactionPlayer
	case KindLaser:
		if l := w.Laser(e); l != nil {
			return l.Faction
		}
	}
	return FactionEnemy
}
