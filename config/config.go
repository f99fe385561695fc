package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/LucidFrost/asteroids-sub000/game"
)

// Settings is the full game configuration, one field per TOML section
type Settings struct {
	Window  WindowConfig  `toml:"window"`
	World   WorldConfig   `toml:"world"`
	Pools   PoolsConfig   `toml:"pools"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
	Assets  AssetsConfig  `toml:"assets"`
	Scores  ScoresConfig  `toml:"scores"`
	Profile ProfileConfig `toml:"profile"`
	Tuning  TuningConfig  `toml:"tuning"`
}

// WindowConfig holds the window size and title
type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
}

// WorldConfig holds the simulated world size, frame clamp and RNG seed
type WorldConfig struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	MaxDelta  float64 `toml:"max_delta"` // seconds
	Seed      uint64  `toml:"seed"`      // 0 seeds from the clock
	AutoWaves bool    `toml:"auto_waves"`
}

// PoolsConfig holds the fixed capacity of every entity pool
type PoolsConfig struct {
	Entities  int `toml:"entities"`
	Players   int `toml:"players"`
	Lasers    int `toml:"lasers"`
	Asteroids int `toml:"asteroids"`
	Enemies   int `toml:"enemies"`
	Powerups  int `toml:"powerups"`
}

// LoggingConfig selects the log level and encoder
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// AudioConfig toggles sound and sets the master volume
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // master volume, 0-1
}

// AssetsConfig locates sprites and sounds
type AssetsConfig struct {
	Dir string `toml:"dir"`
}

// ScoresConfig locates the high score file
type ScoresConfig struct {
	Path string `toml:"path"`
}

// ProfileConfig controls CPU captures on frame rate drops
type ProfileConfig struct {
	Enabled  bool          `toml:"enabled"`
	Dir      string        `toml:"dir"`
	MinFPS   float64       `toml:"min_fps"`
	Cooldown time.Duration `toml:"cooldown"`
	Duration time.Duration `toml:"duration"`
	Warmup   time.Duration `toml:"warmup"`
}

// TuningConfig locates the kind rule set
type TuningConfig struct {
	Path string `toml:"path"` // optional YAML override of the rule set
}

// Load reads settings from a TOML file over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Settings, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (s *Settings) validate() error {
	if s.World.Width <= 0 || s.World.Height <= 0 {
		return fmt.Errorf("world size %gx%g must be positive", s.World.Width, s.World.Height)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	if s.Pools.Entities < 1 {
		return fmt.Errorf("pools.entities must be at least 1")
	}
	return nil
}

// GameConfig returns the simulation's view of the settings
func (s *Settings) GameConfig() game.Config {
	return game.Config{
		Width:    s.World.Width,
		Height:   s.World.Height,
		MaxDelta: s.World.MaxDelta,
		Capacity: game.Capacities{
			Entities:  s.Pools.Entities,
			Players:   s.Pools.Players,
			Lasers:    s.Pools.Lasers,
			Asteroids: s.Pools.Asteroids,
			Enemies:   s.Pools.Enemies,
			Powerups:  s.Pools.Powerups,
		},
		AutoWaves: s.World.AutoWaves,
	}
}

// Seed returns the configured RNG seed, or one taken from the clock
func (s *Settings) Seed() uint64 {
	if s.World.Seed != 0 {
		return s.World.Seed
	}
	return uint64(time.Now().UnixNano())
}

// LoadTuning reads a YAML rule set over the built-in one. Keys missing from
// the file keep their default. An empty path yields the defaults.
func LoadTuning(path string) (game.Tuning, error) {
	t := game.DefaultTuning()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	return t, nil
}

func defaults() *Settings {
	g := game.DefaultConfig()
	return &Settings{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Asteroids",
		},
		World: WorldConfig{
			Width:     g.Width,
			Height:    g.Height,
			MaxDelta:  g.MaxDelta,
			AutoWaves: g.AutoWaves,
		},
		Pools: PoolsConfig{
			Entities:  g.Capacity.Entities,
			Players:   g.Capacity.Players,
			Lasers:    g.Capacity.Lasers,
			Asteroids: g.Capacity.Asteroids,
			Enemies:   g.Capacity.Enemies,
			Powerups:  g.Capacity.Powerups,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Scores: ScoresConfig{
			Path: "scores.txt",
		},
		Profile: ProfileConfig{
			Enabled:  false,
			Dir:      "profiles",
			MinFPS:   45,
			Cooldown: 10 * time.Second,
			Duration: 5 * time.Second,
			Warmup:   3 * time.Second,
		},
	}
}
