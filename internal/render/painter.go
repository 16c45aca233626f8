//go:build ebiten

package render

import (
	"summitgen/internal/level"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a level's terrain grid.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the level's tile colors into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, lvl *level.LevelDefinition, scale int) {
	if lvl.Width != gp.w || lvl.Height != gp.h {
		return
	}
	FillLevelRGBA(gp.buf, lvl)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
