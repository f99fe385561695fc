package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/LucidFrost/asteroids-sub000/game"
)

// Camera represents the viewport into the world. World space is +Y up,
// screen space is +Y down.
type Camera struct {
	X, Y   float64 // Camera position in world coordinates
	Zoom   float64 // Screen pixels per world unit
	Width  float64 // Viewport width
	Height float64 // Viewport height
}

// NewCamera creates a camera that fits a world of the given size into the viewport
func NewCamera(width, height, worldWidth, worldHeight float64) *Camera {
	c := &Camera{Width: width, Height: height, Zoom: 1}
	c.Fit(worldWidth, worldHeight)
	return c
}

// Fit picks the largest zoom that shows the whole world
func (c *Camera) Fit(worldWidth, worldHeight float64) {
	if worldWidth <= 0 || worldHeight <= 0 {
		return
	}
	c.Zoom = min(c.Width/worldWidth, c.Height/worldHeight)
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + c.Width/2
	sy := c.Height/2 - (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx-c.Width/2)/c.Zoom + c.X
	wy := (c.Height/2-sy)/c.Zoom + c.Y
	return wx, wy
}

// GeoM returns the world-to-screen matrix
func (c *Camera) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-c.X, -c.Y)
	m.Scale(c.Zoom, -c.Zoom)
	m.Translate(c.Width/2, c.Height/2)
	return m
}

// geoMFrom copies a world transform into an ebiten matrix
func geoMFrom(t game.Transform) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t.A)
	m.SetElement(0, 1, t.C)
	m.SetElement(0, 2, t.Tx)
	m.SetElement(1, 0, t.B)
	m.SetElement(1, 1, t.D)
	m.SetElement(1, 2, t.Ty)
	return m
}

// HUD is the text overlay state
type HUD struct {
	Score    int
	Best     int
	Lives    int
	Level    int
	FPS      float64
	Entities int
	GameOver bool
	Dead     bool

	// Debug overlay only
	Frame     game.FrameStats
	Profiling bool
}

// Renderer draws a sorted draw list
type Renderer struct {
	camera *Camera
	atlas  *Atlas
	face   text.Face
	op     ebiten.DrawImageOptions
}

// NewRenderer creates a new renderer
func NewRenderer(camera *Camera, atlas *Atlas) *Renderer {
	return &Renderer{
		camera: camera,
		atlas:  atlas,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Render draws every item in order. The list is already sorted by layer.
func (r *Renderer) Render(screen *ebiten.Image, items []game.DrawItem, debug *DebugState) {
	cam := r.camera.GeoM()
	for i := range items {
		r.RenderItem(screen, &items[i], cam)
	}
	if debug.ShowColliders {
		for i := range items {
			r.renderCollider(screen, &items[i])
		}
	}
}

// RenderItem draws one sprite. Sprite-local space is centered on the entity,
// +Y up, sized to the item's Size before the world transform applies.
func (r *Renderer) RenderItem(screen *ebiten.Image, item *game.DrawItem, cam ebiten.GeoM) {
	img := r.atlas.Image(item.Sprite)
	if img == nil {
		return
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	r.op.GeoM.Reset()
	r.op.GeoM.Translate(-iw/2, -ih/2)
	r.op.GeoM.Scale(item.Size.X/iw, -item.Size.Y/ih)
	r.op.GeoM.Translate(item.Offset.X, item.Offset.Y)
	r.op.GeoM.Concat(geoMFrom(item.World))
	r.op.GeoM.Concat(cam)
	r.op.ColorScale.Reset()
	r.op.ColorScale.ScaleWithColor(item.Tint)
	r.op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &r.op)
}

func (r *Renderer) renderCollider(screen *ebiten.Image, item *game.DrawItem) {
	if item.Radius <= 0 {
		return
	}
	o := item.World.Origin()
	sx, sy := r.camera.WorldToScreen(o.X, o.Y)
	radius := item.Radius * r.camera.Zoom
	vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 1, color.RGBA{0, 255, 0, 255}, true)
}

// RenderBounds outlines the world rectangle
func (r *Renderer) RenderBounds(screen *ebiten.Image, bounds game.Rect) {
	x0, y0 := r.camera.WorldToScreen(bounds.Left, bounds.Top)
	x1, y1 := r.camera.WorldToScreen(bounds.Right, bounds.Bottom)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, color.RGBA{60, 60, 90, 255}, false)
}

// RenderHUD draws score, lives and status text
func (r *Renderer) RenderHUD(screen *ebiten.Image, hud HUD, debug *DebugState) {
	r.drawText(screen, fmt.Sprintf("SCORE %d", hud.Score), 16, 16, color.White)
	r.drawText(screen, fmt.Sprintf("BEST  %d", max(hud.Best, hud.Score)), 16, 32, color.White)
	r.drawText(screen, fmt.Sprintf("LIVES %d", hud.Lives), 16, 48, color.White)
	r.drawText(screen, fmt.Sprintf("WAVE  %d", hud.Level), 16, 64, color.White)

	if debug.ShowColliders {
		green := color.RGBA{0, 255, 0, 255}
		r.drawText(screen, fmt.Sprintf("FPS %.0f  ENTITIES %d", hud.FPS, hud.Entities), 16, r.camera.Height-40, green)
		r.drawText(screen, fmt.Sprintf("UPDATED %d  CONTACTS %d  CREATED %d  DESTROYED %d",
			hud.Frame.Updated, hud.Frame.Contacts, hud.Frame.Created, hud.Frame.Destroyed), 16, r.camera.Height-24, green)
		if hud.Profiling {
			r.drawText(screen, "PROFILING", r.camera.Width-96, r.camera.Height-24, color.RGBA{255, 90, 90, 255})
		}
	}

	switch {
	case hud.GameOver:
		r.drawCentered(screen, "GAME OVER", -10, color.RGBA{255, 90, 90, 255})
		r.drawCentered(screen, "press ENTER to play again", 10, color.White)
	case hud.Dead:
		r.drawCentered(screen, "press R to respawn", 0, color.White)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

func (r *Renderer) drawCentered(screen *ebiten.Image, s string, dy float64, clr color.Color) {
	w, _ := text.Measure(s, r.face, 0)
	r.drawText(screen, s, (r.camera.Width-w)/2, r.camera.Height/2+dy, clr)
}
