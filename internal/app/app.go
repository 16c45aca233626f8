//go:build ebiten

package app

import (
	"fmt"
	"time"

	"summitgen/internal/gen"
	"summitgen/internal/level"
	"summitgen/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game displays a generated level and regenerates it on demand.
type Game struct {
	cfg     gen.Config
	lvl     *level.LevelDefinition
	painter *render.GridPainter

	themes     []string
	themeIndex int
	scale      int
	genErr     error
}

// New generates the initial level and constructs the viewer.
func New(cfg gen.Config, scale int) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		themes: gen.ThemeNames(),
		scale:  scale,
	}
	for i, name := range g.themes {
		if name == cfg.Theme {
			g.themeIndex = i
		}
	}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Level reports the currently displayed level.
func (g *Game) Level() *level.LevelDefinition { return g.lvl }

func (g *Game) regenerate() error {
	lvl, err := gen.Generate(g.cfg)
	if err != nil {
		return fmt.Errorf("generate %s level: %w", g.cfg.Theme, err)
	}
	g.lvl = lvl
	if g.painter == nil {
		g.painter = render.NewGridPainter(g.cfg.Width, g.cfg.Height)
	}
	ebiten.SetWindowTitle("summitgen - " + lvl.Name)
	return nil
}

// Update handles per-frame input: R regenerates with the same seed, S
// reseeds from the clock, T cycles the theme, Q or Escape quits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.genErr = g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cfg.Seed = time.Now().UnixNano()
		g.genErr = g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.themeIndex = (g.themeIndex + 1) % len(g.themes)
		g.cfg.Theme = g.themes[g.themeIndex]
		g.genErr = g.regenerate()
	}
	return g.genErr
}

// Draw renders the current level.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.lvl, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.scale, g.cfg.Height * g.scale
}
