package gen

import (
	"testing"

	"summitgen/internal/level"
)

func TestTerrainBands(t *testing.T) {
	p := DefaultConfig().Params
	w, h := 100, 100
	cx, cy := 50, 50 // grid centre, far from every edge

	cases := []struct {
		elev float64
		want level.TerrainType
	}{
		{0.9, level.TerrainSnow},
		{0.7, level.TerrainRock},
		{0.5, level.TerrainGrass},
		{0.3, level.TerrainSoil},
		{0.1, level.TerrainCoast},
	}
	for _, tc := range cases {
		if got := terrainFor(p, tc.elev, cx, cy, w, h); got != tc.want {
			t.Fatalf("elevation %v classified as %q, want %q", tc.elev, got, tc.want)
		}
	}
}

func TestLowlandEdgeBecomesCoast(t *testing.T) {
	p := DefaultConfig().Params
	if got := terrainFor(p, 0.3, 0, 50, 100, 100); got != level.TerrainCoast {
		t.Fatalf("lowland on the map edge classified as %q, want coast", got)
	}
}

func TestClassifyTileSteepRockIsClimbable(t *testing.T) {
	p := DefaultConfig().Params
	td := classifyTile(p, 0.7, 50, 50, 100, 100, 0)
	if td.Type != level.TerrainRock {
		t.Fatalf("type = %q, want rock", td.Type)
	}
	if !td.Climbable {
		t.Fatal("steep rock not climbable")
	}
	want := 1 + 2*td.Slope
	if *td.ClimbingDifficulty != want {
		t.Fatalf("difficulty = %v, want %v", *td.ClimbingDifficulty, want)
	}
}

func TestClassifyTileGentleGroundIsNotClimbable(t *testing.T) {
	p := DefaultConfig().Params
	td := classifyTile(p, 0.3, 50, 50, 100, 100, 0)
	if td.Climbable || td.ClimbingDifficulty != nil {
		t.Fatalf("gentle ground climbable: %+v", td)
	}
	if len(td.RequiredGear) != 0 {
		t.Fatalf("gentle ground has gear: %v", td.RequiredGear)
	}
}

func TestClassifyTileSlopeIsClamped(t *testing.T) {
	p := DefaultConfig().Params
	td := classifyTile(p, 1, 50, 50, 100, 100, p.SlopeNoise)
	if td.Slope < 0 || td.Slope > 1 {
		t.Fatalf("slope %v outside [0,1]", td.Slope)
	}
}

func TestBaseStabilityOrdering(t *testing.T) {
	if baseStability(level.TerrainSoil) <= baseStability(level.TerrainSnow) {
		t.Fatal("soil should be more stable than snow")
	}
	if baseStability(level.TerrainLava) != 0.05 {
		t.Fatalf("lava stability = %v, want 0.05", baseStability(level.TerrainLava))
	}
	for _, tt := range level.TerrainTypes {
		s := baseStability(tt)
		if s < 0 || s > 1 {
			t.Fatalf("stability for %q outside [0,1]: %v", tt, s)
		}
	}
}
