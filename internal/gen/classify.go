package gen

import (
	"summitgen/internal/level"
	"summitgen/pkg/rng"
)

// classifyGrid runs the baseline terrain classifier over the whole elevation
// field, before any feature pass.
func classifyGrid(cfg Config, elev *Field, r *rng.RNG) [][]level.TerrainData {
	w, h := elev.W, elev.H
	terrain := make([][]level.TerrainData, h)
	for y := 0; y < h; y++ {
		row := make([]level.TerrainData, w)
		for x := 0; x < w; x++ {
			jitter := r.FloatRange(-cfg.Params.SlopeNoise, cfg.Params.SlopeNoise)
			row[x] = classifyTile(cfg.Params, elev.At(x, y), x, y, w, h, jitter)
		}
		terrain[y] = row
	}
	return terrain
}

// classifyTile maps one tile's elevation and position to its baseline
// terrain data. Pure in (params, inputs); the slope jitter is drawn by the
// caller.
func classifyTile(p Params, e float64, x, y, w, h int, slopeJitter float64) level.TerrainData {
	t := terrainFor(p, e, x, y, w, h)
	td := level.TerrainData{
		Type:         t,
		Slope:        clamp01(e*p.SlopeGain + slopeJitter),
		Stability:    baseStability(t),
		RequiredGear: []string{},
	}
	// Steep bare rock is the only baseline climb; everything else needs a
	// feature pass to open a route.
	if t == level.TerrainRock && td.Slope >= 0.5 {
		td.Climbable = true
		td.ClimbingDifficulty = level.Difficulty(1 + 2*td.Slope)
	}
	return td
}

// terrainFor applies the ordered elevation bands, highest first.
func terrainFor(p Params, e float64, x, y, w, h int) level.TerrainType {
	switch {
	case e > p.SnowLine:
		return level.TerrainSnow
	case e > p.RockLine:
		return level.TerrainRock
	case e > p.GrassLine:
		return level.TerrainGrass
	case e > p.LowlandLine:
		if coastRatio(x, y, w, h) > p.CoastBand {
			return level.TerrainSoil
		}
		return level.TerrainCoast
	default:
		return level.TerrainCoast
	}
}

// coastRatio is the tile's distance to the nearest map edge, normalized so
// the grid centre sits at 1.
func coastRatio(x, y, w, h int) float64 {
	edge := minInt(minInt(x, w-1-x), minInt(y, h-1-y))
	half := minInt(w, h) / 2
	if half < 1 {
		half = 1
	}
	return float64(edge) / float64(half)
}

func baseStability(t level.TerrainType) float64 {
	switch t {
	case level.TerrainSoil:
		return 0.9
	case level.TerrainRock:
		return 0.85
	case level.TerrainGrass:
		return 0.7
	case level.TerrainCoast:
		return 0.6
	case level.TerrainSnow:
		return 0.55
	case level.TerrainIce:
		return 0.5
	case level.TerrainGlacier:
		return 0.45
	case level.TerrainLava:
		return 0.05
	default:
		return 0.5
	}
}
