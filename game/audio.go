package game

// Sound identifies a sound effect
type Sound int

const (
	SoundLaserA Sound = iota
	SoundLaserB
	SoundThrust
	SoundExplosionSmall
	SoundExplosionMedium
	SoundExplosionLarge
	SoundEnemySpawn
	SoundPlayerDeath
	SoundBonusLife

	soundCount
)

// Sounds lists every sound effect, for preloading
func Sounds() []Sound {
	out := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s Sound) String() string {
	switch s {
	case SoundLaserA:
		return "laser_a"
	case SoundLaserB:
		return "laser_b"
	case SoundThrust:
		return "thrust"
	case SoundExplosionSmall:
		return "explosion_small"
	case SoundExplosionMedium:
		return "explosion_medium"
	case SoundExplosionLarge:
		return "explosion_large"
	case SoundEnemySpawn:
		return "enemy_spawn"
	case SoundPlayerDeath:
		return "player_death"
	case SoundBonusLife:
		return "bonus_life"
	default:
		return "unknown"
	}
}

// Voice is a playing sound. Playing may flip to false from the audio thread.
type Voice interface {
	SetVolume(volume float64)
	Playing() bool
	Stop()
}

// Audio plays sounds fire-and-forget. Volume is in [0, 1].
type Audio interface {
	Play(sound Sound, loop bool, volume float64) Voice
}

// SilentAudio discards every request
type SilentAudio struct{}

// Play implements Audio
func (SilentAudio) Play(Sound, bool, float64) Voice { return silentVoice{} }

type silentVoice struct{}

func (silentVoice) SetVolume(float64) {}
func (silentVoice) Playing() bool     { return false }
func (silentVoice) Stop()             {}
