package render

import (
	"image/color"

	"summitgen/internal/level"
)

var terrainColors = map[level.TerrainType]color.NRGBA{
	level.TerrainSoil:    {R: 70, G: 52, B: 32, A: 255},
	level.TerrainGrass:   {R: 70, G: 160, B: 80, A: 255},
	level.TerrainRock:    {R: 130, G: 130, B: 130, A: 255},
	level.TerrainSnow:    {R: 235, G: 240, B: 248, A: 255},
	level.TerrainIce:     {R: 170, G: 210, B: 240, A: 255},
	level.TerrainGlacier: {R: 120, G: 175, B: 220, A: 255},
	level.TerrainLava:    {R: 255, G: 90, B: 40, A: 255},
	level.TerrainCoast:   {R: 180, G: 165, B: 125, A: 255},
}

var (
	startColor = color.NRGBA{R: 60, G: 220, B: 90, A: 255}
	goalColor  = color.NRGBA{R: 250, G: 200, B: 40, A: 255}
)

// TileColor returns the display color for a single tile. Steep ground is
// darkened so the relief reads at a glance, and climbable routes get a warm
// tint so they stand out against plain rock.
func TileColor(td level.TerrainData) color.NRGBA {
	base, ok := terrainColors[td.Type]
	if !ok {
		base = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	}
	if td.Slope > 0 {
		base = blendColors(base, color.NRGBA{A: 255}, td.Slope*0.35)
	}
	if td.Climbable {
		base = blendColors(base, color.NRGBA{R: 225, G: 150, B: 70, A: 255}, 0.3)
	}
	return base
}

// FillLevelRGBA writes the level's tile colors into buf as row-major RGBA,
// with the start and goal tiles marked. buf must hold 4*width*height bytes.
func FillLevelRGBA(buf []byte, lvl *level.LevelDefinition) {
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			putPixel(buf, lvl.Width, x, y, TileColor(lvl.Terrain[y][x]))
		}
	}
	putPixel(buf, lvl.Width, lvl.StartPosition.X, lvl.StartPosition.Y, startColor)
	for _, goal := range lvl.GoalPositions {
		putPixel(buf, lvl.Width, goal.X, goal.Y, goalColor)
	}
}

func putPixel(buf []byte, w, x, y int, c color.NRGBA) {
	base := (y*w + x) * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
