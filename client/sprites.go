package client

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"

	"github.com/LucidFrost/asteroids-sub000/game"
)

// svgRasterSize is the edge length SVG sprites are rasterized at
const svgRasterSize = 128

// placeholderColors tints the flat rectangles used for missing sprites
var placeholderColors = map[game.SpriteID]color.RGBA{
	game.SpritePlayer:      {80, 220, 120, 255},
	game.SpriteThrust:      {255, 160, 40, 255},
	game.SpriteShield:      {80, 160, 255, 90},
	game.SpriteLaserPlayer: {255, 255, 255, 255},
	game.SpriteLaserEnemy:  {255, 255, 255, 255},
	game.SpriteAsteroid:    {150, 140, 130, 255},
	game.SpriteEnemy:       {230, 70, 70, 255},
	game.SpritePowerup:     {240, 220, 60, 255},
}

// Atlas holds one image per sprite
type Atlas struct {
	images map[game.SpriteID]*ebiten.Image
}

// LoadAtlas loads <dir>/<sprite>.png, falling back to <dir>/<sprite>.svg.
// A sprite with neither becomes a flat colored rectangle; the failure is
// logged once here and never again.
func LoadAtlas(dir string, log *zap.Logger) *Atlas {
	a := &Atlas{images: make(map[game.SpriteID]*ebiten.Image)}
	for _, id := range game.Sprites() {
		img, err := loadSprite(dir, id.String())
		if err != nil {
			log.Warn("sprite unavailable, using placeholder",
				zap.Stringer("sprite", id),
				zap.String("dir", dir),
				zap.Error(err),
			)
			img = placeholder(id)
		}
		a.images[id] = img
	}
	return a
}

// Image returns the image for a sprite, nil for SpriteNone
func (a *Atlas) Image(id game.SpriteID) *ebiten.Image {
	return a.images[id]
}

func loadSprite(dir, name string) (*ebiten.Image, error) {
	pngPath := filepath.Join(dir, name+".png")
	img, _, err := ebitenutil.NewImageFromFile(pngPath)
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", pngPath, err)
	}

	svgPath := filepath.Join(dir, name+".svg")
	data, err := os.ReadFile(svgPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", svgPath, err)
	}
	rgba, err := svgToImage(data, svgRasterSize, svgRasterSize)
	if err != nil {
		return nil, fmt.Errorf("rasterize %s: %w", svgPath, err)
	}
	return ebiten.NewImageFromImage(rgba), nil
}

// svgToImage converts SVG data to an RGBA image
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func placeholder(id game.SpriteID) *ebiten.Image {
	img := ebiten.NewImage(8, 8)
	clr, ok := placeholderColors[id]
	if !ok {
		clr = color.RGBA{255, 0, 255, 255}
	}
	img.Fill(clr)
	return img
}
