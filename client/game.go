// Package client runs the simulation inside an ebiten window: it polls
// input, steps the world, plays sound and draws the returned draw list.
package client

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/LucidFrost/asteroids-sub000/config"
	"github.com/LucidFrost/asteroids-sub000/game"
	"github.com/LucidFrost/asteroids-sub000/scores"
)

// Game represents the main game state
type Game struct {
	settings *config.Settings
	tuning   game.Tuning
	log      *zap.Logger

	world    *game.World
	camera   *Camera
	renderer *Renderer
	input    *PlayerInput
	audio    game.Audio
	store    *scores.Store
	debug    DebugState

	draw     []game.DrawItem
	best     int
	recorded bool

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	// Performance profiling, nil when disabled
	profiler *Profiler

	// Game start time to ignore FPS drops during startup
	gameStartTime time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance and starts the first round
func NewGame(settings *config.Settings, tuning game.Tuning, audio game.Audio, store *scores.Store, log *zap.Logger) (*Game, error) {
	camera := NewCamera(
		float64(settings.Window.Width), float64(settings.Window.Height),
		settings.World.Width, settings.World.Height,
	)
	atlas := LoadAtlas(settings.Assets.Dir, log.Named("sprites"))

	g := &Game{
		settings:       settings,
		tuning:         tuning,
		log:            log,
		camera:         camera,
		renderer:       NewRenderer(camera, atlas),
		input:          NewPlayerInput(),
		audio:          audio,
		store:          store,
		fps:            60,
		gameStartTime:  time.Now(),
		lastUpdateTime: time.Now(),
	}
	if settings.Profile.Enabled {
		g.profiler = NewProfiler(settings.Profile.Dir, settings.Profile.Cooldown, settings.Profile.Duration, log.Named("profiler"))
	}

	entries, err := store.ReadAll()
	if err != nil {
		log.Warn("score file unreadable", zap.String("path", store.Path()), zap.Error(err))
	}
	g.best = scores.Best(entries)

	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset throws the old world away and starts a fresh round
func (g *Game) reset() error {
	world, err := game.NewWorld(
		g.settings.GameConfig(),
		g.tuning,
		g.log.Named("world"),
		game.NewRNG(g.settings.Seed()),
		g.audio,
	)
	if err != nil {
		return fmt.Errorf("new world: %w", err)
	}
	if err := world.Start(); err != nil {
		return fmt.Errorf("start world: %w", err)
	}
	if g.world != nil {
		g.stopVoices()
	}
	g.world = world
	g.recorded = false
	g.input.Reset()
	g.draw = world.DrawList()
	return nil
}

// stopVoices silences looped sounds of the world being discarded
func (g *Game) stopVoices() {
	if e, ok := g.world.LocalPlayer(); ok {
		g.world.Destroy(e)
		g.world.Sweep()
	}
}

// Update advances one frame
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// F1 toggles the collider overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowColliders = !g.debug.ShowColliders
	}

	g.trackFPS(deltaTime)

	in := g.input.Poll(g.camera)

	if g.world.GameOver() {
		g.recordScore()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := g.reset(); err != nil {
				return err
			}
			return nil
		}
	}

	g.draw = g.world.Step(deltaTime, in)
	return nil
}

// recordScore appends the final score once per round
func (g *Game) recordScore() {
	if g.recorded {
		return
	}
	g.recorded = true
	score := g.world.Score()
	if err := g.store.Append(score, time.Now()); err != nil {
		g.log.Error("save score", zap.Int("score", score), zap.Error(err))
		return
	}
	g.best = max(g.best, score)
	g.log.Info("game over", zap.Int("score", score), zap.Int("wave", g.world.Level()), zap.Int("best", g.best))
}

// trackFPS updates the FPS estimate every half second and triggers the
// profiler on drops
func (g *Game) trackFPS(deltaTime float64) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0

	if g.profiler == nil || g.fps >= g.settings.Profile.MinFPS {
		return
	}
	// Skip the startup frames
	if time.Since(g.gameStartTime) < g.settings.Profile.Warmup {
		return
	}
	reason := fmt.Sprintf("fps%.0f-entities%d", g.fps, g.world.Len())
	if err := g.profiler.CaptureProfile(reason); err != nil {
		g.log.Debug("profile capture skipped", zap.Error(err))
		return
	}
	g.log.Warn("fps drop detected, capturing profile", zap.Float64("fps", g.fps), zap.Int("entities", g.world.Len()))
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 10, 20, 255})
	g.renderer.RenderBounds(screen, g.world.Config().Bounds())
	g.renderer.Render(screen, g.draw, &g.debug)
	g.renderer.RenderHUD(screen, g.hud(), &g.debug)
}

func (g *Game) hud() HUD {
	h := HUD{
		Score:    g.world.Score(),
		Best:     g.best,
		Level:    g.world.Level(),
		FPS:      g.fps,
		Entities: g.world.Len(),
		GameOver: g.world.GameOver(),
		Frame:    g.world.Stats(),
	}
	if g.profiler != nil {
		h.Profiling = g.profiler.IsProfiling()
	}
	if e, ok := g.world.LocalPlayer(); ok {
		p := g.world.Player(e)
		h.Lives = p.Lives
		h.Dead = p.State == game.PlayerDead
	}
	return h
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}
