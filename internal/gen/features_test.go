package gen

import (
	"testing"

	"summitgen/internal/level"
	"summitgen/pkg/rng"
)

func uniformTerrain(w, h int) [][]level.TerrainData {
	terrain := make([][]level.TerrainData, h)
	for y := range terrain {
		row := make([]level.TerrainData, w)
		for x := range row {
			row[x] = level.TerrainData{
				Type:         level.TerrainSoil,
				Stability:    0.9,
				RequiredGear: []string{},
			}
		}
		terrain[y] = row
	}
	return terrain
}

func passContext(w, h int, seed int64) *PassContext {
	return &PassContext{
		Params:  DefaultConfig().Params,
		Width:   w,
		Height:  h,
		Terrain: uniformTerrain(w, h),
		Elev:    NewField(w, h),
		RNG:     rng.New(seed),
	}
}

func TestGlacierPassStaysInNorthernHalf(t *testing.T) {
	ctx := passContext(60, 40, 1)
	GlacierPass().Apply(ctx)

	touched := 0
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			td := ctx.Terrain[y][x]
			if td.Type == level.TerrainSoil {
				continue
			}
			touched++
			if td.Type != level.TerrainGlacier && td.Type != level.TerrainIce {
				t.Fatalf("glacier pass wrote %q at (%d,%d)", td.Type, x, y)
			}
			if !td.Climbable || td.ClimbingDifficulty == nil {
				t.Fatalf("glacier tile (%d,%d) not climbable: %+v", x, y, td)
			}
			if len(td.RequiredGear) == 0 || td.RequiredGear[0] != "ice_axe" {
				t.Fatalf("glacier tile (%d,%d) gear = %v", x, y, td.RequiredGear)
			}
		}
	}
	if touched == 0 {
		t.Fatal("glacier pass changed nothing")
	}

	// Centers sit in the northern half, so with the default radius cap no
	// glacier ice can reach the last rows.
	maxRadius := DefaultConfig().Params.GlacierRadiusMax
	for y := ctx.Height/2 + maxRadius + 1; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			if ctx.Terrain[y][x].Type != level.TerrainSoil {
				t.Fatalf("glacier ice at (%d,%d), south of the reachable band", x, y)
			}
		}
	}
}

func TestLavaFieldsPassIsNeverClimbable(t *testing.T) {
	ctx := passContext(60, 40, 2)
	LavaFieldsPass().Apply(ctx)

	touched := 0
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			td := ctx.Terrain[y][x]
			if td.Type != level.TerrainLava {
				continue
			}
			touched++
			if td.Climbable || td.ClimbingDifficulty != nil {
				t.Fatalf("lava at (%d,%d) climbable: %+v", x, y, td)
			}
			if len(td.RequiredGear) != 0 {
				t.Fatalf("lava at (%d,%d) has gear: %v", x, y, td.RequiredGear)
			}
			if td.Stability != 0.05 {
				t.Fatalf("lava stability = %v", td.Stability)
			}
		}
	}
	if touched == 0 {
		t.Fatal("lava pass changed nothing")
	}
}

func TestCoastalCliffsPassStaysInSouthernHalf(t *testing.T) {
	ctx := passContext(60, 40, 3)
	CoastalCliffsPass().Apply(ctx)

	touched := 0
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			td := ctx.Terrain[y][x]
			if td.Type != level.TerrainCoast {
				continue
			}
			touched++
			if y < ctx.Height/2 {
				t.Fatalf("cliff at (%d,%d) in the northern half", x, y)
			}
			if !td.Climbable || *td.ClimbingDifficulty < 2 || *td.ClimbingDifficulty > 4 {
				t.Fatalf("cliff at (%d,%d) wrong difficulty: %+v", x, y, td)
			}
		}
	}
	if touched == 0 {
		t.Fatal("cliff pass changed nothing")
	}
}

func TestRockFormationsPassGearScalesWithDifficulty(t *testing.T) {
	ctx := passContext(60, 40, 4)
	RockFormationsPass().Apply(ctx)

	touched := 0
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			td := ctx.Terrain[y][x]
			if td.Type != level.TerrainRock {
				continue
			}
			touched++
			d := *td.ClimbingDifficulty
			if d < 1 || d > 4 {
				t.Fatalf("formation difficulty %v outside [1,4]", d)
			}
			wantGear := 1
			if d > 3 {
				wantGear = 2
			}
			if len(td.RequiredGear) != wantGear {
				t.Fatalf("formation difficulty %v carries gear %v", d, td.RequiredGear)
			}
		}
	}
	if touched == 0 {
		t.Fatal("formation pass changed nothing")
	}
}

func TestVolcanicPeakPassBuildsCraterAtCentre(t *testing.T) {
	ctx := passContext(60, 40, 5)
	VolcanicPeakPass().Apply(ctx)

	maxRadius := DefaultConfig().Params.CraterRadiusMax
	cx, cy := ctx.Width/2, ctx.Height/2
	sawLava, sawRim := false, false
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			td := ctx.Terrain[y][x]
			if td.Type == level.TerrainSoil {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > maxRadius*maxRadius {
				t.Fatalf("crater tile (%d,%d) beyond the maximum radius", x, y)
			}
			switch td.Type {
			case level.TerrainLava:
				sawLava = true
			case level.TerrainRock:
				sawRim = true
				if !td.Climbable || len(td.RequiredGear) != 2 {
					t.Fatalf("rim tile (%d,%d) wrong: %+v", x, y, td)
				}
			default:
				t.Fatalf("crater pass wrote %q at (%d,%d)", td.Type, x, y)
			}
		}
	}
	if !sawLava || !sawRim {
		t.Fatalf("crater incomplete: lava=%v rim=%v", sawLava, sawRim)
	}
}
