package gen

import (
	"summitgen/internal/level"
	"summitgen/pkg/rng"
)

// PassContext carries the working state a feature pass mutates.
type PassContext struct {
	Params        Params
	Width, Height int
	Terrain       [][]level.TerrainData
	Elev          *Field
	RNG           *rng.RNG
}

// Pass is one named overlay step of the feature pipeline. Later passes
// overwrite earlier ones at the same tile; the order is fixed per theme.
type Pass struct {
	Name  string
	Apply func(ctx *PassContext)
}

// GlacierPass places glacier caps on the high northern half of the map:
// a hard glacier core ringed by easier ice.
func GlacierPass() Pass {
	return Pass{Name: "glacier", Apply: func(ctx *PassContext) {
		p := ctx.Params
		for i := 0; i < p.GlacierCount; i++ {
			cx := ctx.RNG.IntN(ctx.Width)
			cy := ctx.RNG.IntN(maxInt(1, ctx.Height/2))
			radius := ctx.RNG.IntRange(p.GlacierRadiusMin, p.GlacierRadiusMax)
			core := radius / 2
			ForEachInCircle(ctx.Width, ctx.Height, cx, cy, radius, func(x, y, distSq int) {
				if ctx.RNG.Float64() > p.GlacierFill {
					return
				}
				if distSq <= core*core {
					ctx.Terrain[y][x] = level.TerrainData{
						Type:               level.TerrainGlacier,
						Slope:              ctx.RNG.FloatRange(0.7, 1),
						Stability:          0.45,
						Climbable:          true,
						ClimbingDifficulty: level.Difficulty(ctx.RNG.FloatRange(3.5, 5)),
						RequiredGear:       []string{"ice_axe", "crampons"},
					}
					return
				}
				ctx.Terrain[y][x] = level.TerrainData{
					Type:               level.TerrainIce,
					Slope:              ctx.RNG.FloatRange(0.5, 0.8),
					Stability:          0.55,
					Climbable:          true,
					ClimbingDifficulty: level.Difficulty(ctx.RNG.FloatRange(1.5, 3)),
					RequiredGear:       []string{"ice_axe"},
				}
			})
		}
	}}
}

// LavaFieldsPass scatters cooled-edge lava fields. Lava is never climbable
// and carries no gear requirement.
func LavaFieldsPass() Pass {
	return Pass{Name: "lava_fields", Apply: func(ctx *PassContext) {
		p := ctx.Params
		for i := 0; i < p.LavaFieldCount; i++ {
			cx := ctx.RNG.IntN(ctx.Width)
			cy := ctx.RNG.IntN(ctx.Height)
			radius := ctx.RNG.IntRange(p.LavaRadiusMin, p.LavaRadiusMax)
			ForEachInCircle(ctx.Width, ctx.Height, cx, cy, radius, func(x, y, distSq int) {
				if ctx.RNG.Float64() > p.LavaFill {
					return
				}
				ctx.Terrain[y][x] = level.TerrainData{
					Type:         level.TerrainLava,
					Slope:        ctx.RNG.FloatRange(0, 0.2),
					Stability:    0.05,
					RequiredGear: []string{},
				}
			})
		}
	}}
}

// CoastalCliffsPass carves cliff bands into the southern half of the map,
// where the lowlands meet the water.
func CoastalCliffsPass() Pass {
	return Pass{Name: "coastal_cliffs", Apply: func(ctx *PassContext) {
		p := ctx.Params
		for i := 0; i < p.CliffCount; i++ {
			x := ctx.RNG.IntN(ctx.Width)
			y := ctx.Height/2 + ctx.RNG.IntN(maxInt(1, ctx.Height-ctx.Height/2))
			rw := ctx.RNG.IntRange(p.CliffWidthMin, p.CliffWidthMax)
			rh := ctx.RNG.IntRange(p.CliffHeightMin, p.CliffHeightMax)
			ForEachInRect(ctx.Width, ctx.Height, x, y, rw, rh, func(tx, ty int) {
				if ctx.RNG.Float64() > p.CliffFill {
					return
				}
				ctx.Terrain[ty][tx] = level.TerrainData{
					Type:               level.TerrainCoast,
					Slope:              ctx.RNG.FloatRange(0.7, 1),
					Stability:          0.5,
					Climbable:          true,
					ClimbingDifficulty: level.Difficulty(ctx.RNG.FloatRange(2, 4)),
					RequiredGear:       []string{"rope"},
				}
			})
		}
	}}
}

// RockFormationsPass dots the map with climbable outcrops. Difficulty is
// randomized; the hardest formations also demand a harness.
func RockFormationsPass() Pass {
	return Pass{Name: "rock_formations", Apply: func(ctx *PassContext) {
		p := ctx.Params
		for i := 0; i < p.FormationCount; i++ {
			cx := ctx.RNG.IntN(ctx.Width)
			cy := ctx.RNG.IntN(ctx.Height)
			radius := ctx.RNG.IntRange(p.FormationRadMin, p.FormationRadMax)
			ForEachInCircle(ctx.Width, ctx.Height, cx, cy, radius, func(x, y, distSq int) {
				if ctx.RNG.Float64() > p.FormationFill {
					return
				}
				difficulty := 1 + ctx.RNG.Float64()*3
				gear := []string{"rope"}
				if difficulty > 3 {
					gear = []string{"rope", "harness"}
				}
				ctx.Terrain[y][x] = level.TerrainData{
					Type:               level.TerrainRock,
					Slope:              ctx.RNG.FloatRange(0.6, 1),
					Stability:          0.8,
					Climbable:          true,
					ClimbingDifficulty: level.Difficulty(difficulty),
					RequiredGear:       gear,
				}
			})
		}
	}}
}

// VolcanicPeakPass raises a single crater at the map centre: a lava core
// inside a steep climbable rock rim.
func VolcanicPeakPass() Pass {
	return Pass{Name: "volcanic_peak", Apply: func(ctx *PassContext) {
		p := ctx.Params
		cx, cy := ctx.Width/2, ctx.Height/2
		radius := ctx.RNG.IntRange(p.CraterRadiusMin, p.CraterRadiusMax)
		core := radius / 2
		ForEachInCircle(ctx.Width, ctx.Height, cx, cy, radius, func(x, y, distSq int) {
			if ctx.RNG.Float64() > p.CraterFill {
				return
			}
			if distSq <= core*core {
				ctx.Terrain[y][x] = level.TerrainData{
					Type:         level.TerrainLava,
					Slope:        ctx.RNG.FloatRange(0, 0.3),
					Stability:    0.05,
					RequiredGear: []string{},
				}
				return
			}
			ctx.Terrain[y][x] = level.TerrainData{
				Type:               level.TerrainRock,
				Slope:              ctx.RNG.FloatRange(0.8, 1),
				Stability:          0.6,
				Climbable:          true,
				ClimbingDifficulty: level.Difficulty(ctx.RNG.FloatRange(3, 5)),
				RequiredGear:       []string{"rope", "harness"},
			}
		})
	}}
}
