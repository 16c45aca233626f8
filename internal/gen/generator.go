package gen

import (
	"fmt"

	"summitgen/internal/level"
	"summitgen/pkg/rng"
)

// Generator runs the generation pipeline for one theme and configuration.
// Output is fully determined by the config seed.
type Generator struct {
	cfg   Config
	theme Theme
}

// New validates the configuration and resolves the theme.
func New(cfg Config) (*Generator, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", cfg.Width, cfg.Height)
	}
	theme, ok := ThemeByName(cfg.Theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", cfg.Theme)
	}
	return &Generator{cfg: cfg, theme: theme}, nil
}

// Theme reports the resolved theme profile.
func (g *Generator) Theme() Theme { return g.theme }

// Generate runs elevation synthesis, classification, the theme's feature
// passes, and population, and assembles the resulting level definition.
//
// Each stage draws from its own RNG derived from the root seed in a fixed
// order, so the number of draws one stage makes never shifts the values
// another stage sees.
func (g *Generator) Generate() (*level.LevelDefinition, error) {
	cfg := g.cfg
	root := rng.New(cfg.Seed)

	elevRNG := root.Derive()
	classifyRNG := root.Derive()
	passRNGs := make([]*rng.RNG, len(g.theme.Passes))
	for i := range passRNGs {
		passRNGs[i] = root.Derive()
	}
	popRNG := root.Derive()
	layoutRNG := root.Derive()

	anchors := themeAnchors(g.theme, cfg.Width, cfg.Height, elevRNG)
	elev := elevationField(cfg, anchors, elevRNG)
	terrain := classifyGrid(cfg, elev, classifyRNG)

	for i, pass := range g.theme.Passes {
		pass.Apply(&PassContext{
			Params:  cfg.Params,
			Width:   cfg.Width,
			Height:  cfg.Height,
			Terrain: terrain,
			Elev:    elev,
			RNG:     passRNGs[i],
		})
	}

	lvl := &level.LevelDefinition{
		ID:            fmt.Sprintf("%s_%d", g.theme.Name, cfg.Seed),
		Name:          g.theme.DisplayName,
		Description:   g.theme.Description,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Terrain:       terrain,
		StartPosition: startPosition(cfg.Width, cfg.Height, layoutRNG),
		GoalPositions: []level.GridPos{goalPosition(g.theme, anchors, cfg.Height)},
		Weather:       g.theme.Weather,
		Wildlife:      populateWildlife(g.theme, cfg.Width, cfg.Height, popRNG),
		NPCs:          populateNPCs(g.theme, cfg.Width, cfg.Height, popRNG),
		Items:         populateItems(g.theme, cfg.Width, cfg.Height, popRNG),
	}

	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// Generate is a convenience wrapper constructing a Generator and running it.
func Generate(cfg Config) (*level.LevelDefinition, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

// startPosition picks a start in the southern (lowland) third of the grid.
func startPosition(w, h int, r *rng.RNG) level.GridPos {
	band := h / 3
	if band < 1 {
		band = 1
	}
	return level.GridPos{
		X: r.IntN(w),
		Y: h - band + r.IntN(band),
	}
}

// goalPosition places the goal at the theme's primary anchor. Summit and
// ridge themes keep the goal in the northern quarter of the map.
func goalPosition(theme Theme, anchors []anchor, h int) level.GridPos {
	primary := anchors[0]
	goal := level.GridPos{X: primary.X, Y: primary.Y}
	if theme.GoalNorthQuart {
		quarter := h / 4
		if quarter < 1 {
			quarter = 1
		}
		if goal.Y >= quarter {
			goal.Y = quarter - 1
		}
	}
	return goal
}
