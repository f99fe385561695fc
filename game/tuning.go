package game

// PlayerTuning holds the player ship constants
type PlayerTuning struct {
	Lives          int     `yaml:"lives"`
	Radius         float64 `yaml:"radius"`
	SpriteSize     float64 `yaml:"sprite_size"`
	Acceleration   float64 `yaml:"acceleration"`    // units/s^2 while thrust is held
	Damping        float64 `yaml:"damping"`         // fraction of velocity lost per second
	TurnRate       float64 `yaml:"turn_rate"`       // exponential chase rate towards the aim direction, 1/s
	MuzzleOffset   float64 `yaml:"muzzle_offset"`   // laser spawn distance along facing
	ShieldDuration float64 `yaml:"shield_duration"` // seconds of invulnerability after (re)spawn
	BonusLifeScore int     `yaml:"bonus_life_score"`
	StickDeadzone  float64 `yaml:"stick_deadzone"`
}

// LaserTuning holds the laser constants
type LaserTuning struct {
	Speed      float64 `yaml:"speed"`
	Lifetime   float64 `yaml:"lifetime"`
	Radius     float64 `yaml:"radius"`
	SpriteSize float64 `yaml:"sprite_size"`
}

// AsteroidSizeTuning holds the constants of one asteroid size class
type AsteroidSizeTuning struct {
	Scale    float64 `yaml:"scale"`
	Radius   float64 `yaml:"radius"`
	Score    int     `yaml:"score"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	SpinMin  float64 `yaml:"spin_min"` // degrees/s, sign is random
	SpinMax  float64 `yaml:"spin_max"`
}

// AsteroidTuning holds the size table
type AsteroidTuning struct {
	SpriteSize float64            `yaml:"sprite_size"`
	Small      AsteroidSizeTuning `yaml:"small"`
	Medium     AsteroidSizeTuning `yaml:"medium"`
	Large      AsteroidSizeTuning `yaml:"large"`
}

// ForSize returns the constants for an asteroid size
func (t AsteroidTuning) ForSize(size AsteroidSize) AsteroidSizeTuning {
	switch size {
	case AsteroidSmall:
		return t.Small
	case AsteroidMedium:
		return t.Medium
	default:
		return t.Large
	}
}

// EnemyModeTuning holds the constants of one enemy difficulty mode
type EnemyModeTuning struct {
	Scale        float64 `yaml:"scale"`
	Radius       float64 `yaml:"radius"`
	Score        int     `yaml:"score"`
	FireInterval float64 `yaml:"fire_interval"`
}

// EnemyTuning holds the enemy saucer constants
type EnemyTuning struct {
	SpriteSize         float64         `yaml:"sprite_size"`
	Speed              float64         `yaml:"speed"`
	Spin               float64         `yaml:"spin"` // degrees/s
	HardScoreThreshold int             `yaml:"hard_score_threshold"`
	HardChance         int             `yaml:"hard_chance"` // one chance in N below the threshold
	RespawnMin         float64         `yaml:"respawn_min"`
	RespawnMax         float64         `yaml:"respawn_max"`
	AimJitter          float64         `yaml:"aim_jitter"` // degrees either side when aiming at the player
	Easy               EnemyModeTuning `yaml:"easy"`
	Hard               EnemyModeTuning `yaml:"hard"`
}

// ForMode returns the constants for an enemy mode
func (t EnemyTuning) ForMode(mode EnemyMode) EnemyModeTuning {
	if mode == EnemyHard {
		return t.Hard
	}
	return t.Easy
}

// WaveTuning controls asteroid wave spawning
type WaveTuning struct {
	Base       int     `yaml:"base"`        // large asteroids in wave 0, one more per wave
	SafeRadius float64 `yaml:"safe_radius"` // minimum spawn distance from the player
}

// Tuning is the complete kind rule set
type Tuning struct {
	Player    PlayerTuning   `yaml:"player"`
	Laser     LaserTuning    `yaml:"laser"`
	Asteroids AsteroidTuning `yaml:"asteroids"`
	Enemy     EnemyTuning    `yaml:"enemy"`
	Waves     WaveTuning     `yaml:"waves"`
}

// DefaultTuning returns the canonical rule set.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Lives:          3,
			Radius:         16,
			SpriteSize:     40,
			Acceleration:   600,
			Damping:        0.5,
			TurnRate:       12,
			MuzzleOffset:   24,
			ShieldDuration: 3,
			BonusLifeScore: 10000,
			StickDeadzone:  0.25,
		},
		Laser: LaserTuning{
			Speed:      900,
			Lifetime:   0.9,
			Radius:     4,
			SpriteSize: 12,
		},
		Asteroids: AsteroidTuning{
			SpriteSize: 100,
			Small: AsteroidSizeTuning{
				Scale: 0.25, Radius: 12, Score: 100,
				SpeedMin: 110, SpeedMax: 180, SpinMin: 60, SpinMax: 140,
			},
			Medium: AsteroidSizeTuning{
				Scale: 0.5, Radius: 24, Score: 50,
				SpeedMin: 70, SpeedMax: 110, SpinMin: 30, SpinMax: 80,
			},
			Large: AsteroidSizeTuning{
				Scale: 1, Radius: 46, Score: 20,
				SpeedMin: 30, SpeedMax: 70, SpinMin: 10, SpinMax: 40,
			},
		},
		Enemy: EnemyTuning{
			SpriteSize:         60,
			Speed:              140,
			Spin:               90,
			HardScoreThreshold: 40000,
			HardChance:         4,
			RespawnMin:         8,
			RespawnMax:         16,
			AimJitter:          10,
			Easy: EnemyModeTuning{
				Scale: 1, Radius: 26, Score: 200, FireInterval: 1.2,
			},
			Hard: EnemyModeTuning{
				Scale: 0.6, Radius: 15, Score: 1000, FireInterval: 0.8,
			},
		},
		Waves: WaveTuning{
			Base:       4,
			SafeRadius: 200,
		},
	}
}
