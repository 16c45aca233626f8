package level

import "path/filepath"

// Hand-authored levels used for tutorial and onboarding purposes. These
// bypass the procedural pipeline entirely; the terrain patches and spawns
// are fixed data.

// TutorialLevel builds the 20x15 introductory level with a single rock
// climbing route and a short ice traverse.
func TutorialLevel() *LevelDefinition {
	const width, height = 20, 15

	terrain := filledGrid(width, height, TerrainData{
		Type:         TerrainSoil,
		Slope:        0,
		Stability:    1,
		Climbable:    false,
		RequiredGear: []string{},
	})

	// A simple climbing route up the middle of the map.
	for y := 5; y < 12; y++ {
		for x := 8; x < 12; x++ {
			terrain[y][x] = TerrainData{
				Type:               TerrainRock,
				Slope:              0.6,
				Stability:          0.8,
				Climbable:          true,
				ClimbingDifficulty: Difficulty(1),
				RequiredGear:       []string{},
			}
		}
	}

	// Ice sections for variety.
	for x := 10; x < 14; x++ {
		terrain[10][x] = TerrainData{
			Type:               TerrainIce,
			Slope:              0.8,
			Stability:          0.6,
			Climbable:          true,
			ClimbingDifficulty: Difficulty(2),
			RequiredGear:       []string{"ice_axe"},
		}
	}

	return &LevelDefinition{
		ID:            "tutorial_01",
		Name:          "First Steps",
		Description:   "A gentle introduction to mountain climbing",
		Width:         width,
		Height:        height,
		Terrain:       terrain,
		StartPosition: GridPos{X: 2, Y: 2},
		GoalPositions: []GridPos{{X: 15, Y: 12}},
		Weather: WeatherConditions{
			BaseTemperature: 10,
			WindSpeed:       5,
			WeatherType:     "clear",
		},
		Wildlife: []WildlifeSpawn{
			{Species: "sheep", Position: WorldPos{X: 100, Y: 150}, Aggression: 0},
		},
		NPCs: []NPCSpawn{
			{
				Name:     "Erik the Guide",
				NPCType:  "guide",
				Position: WorldPos{X: 150, Y: 100},
				Dialogue: "erik_guide.json",
			},
		},
		Items: []ItemSpawn{
			{ItemID: "rope", Position: WorldPos{X: 200, Y: 80}, Quantity: 1},
		},
	}
}

// GlacierLevel builds the 30x25 Icelandic glacier level: a broad ice sheet
// with a crevasse band cutting across it.
func GlacierLevel() *LevelDefinition {
	const width, height = 30, 25

	terrain := filledGrid(width, height, TerrainData{
		Type:         TerrainSnow,
		Slope:        0.2,
		Stability:    0.7,
		Climbable:    false,
		RequiredGear: []string{},
	})

	// The glacier proper.
	for y := 10; y < 20; y++ {
		for x := 5; x < 25; x++ {
			terrain[y][x] = TerrainData{
				Type:               TerrainIce,
				Slope:              0.9,
				Stability:          0.5,
				Climbable:          true,
				ClimbingDifficulty: Difficulty(4),
				RequiredGear:       []string{"ice_axe", "crampons"},
			}
		}
	}

	// Crevasses: near-vertical, badly anchored ice.
	for x := 12; x < 18; x++ {
		terrain[15][x] = TerrainData{
			Type:               TerrainIce,
			Slope:              1,
			Stability:          0.1,
			Climbable:          true,
			ClimbingDifficulty: Difficulty(5),
			RequiredGear:       []string{"rope", "harness"},
		}
	}

	return &LevelDefinition{
		ID:            "iceland_glacier_01",
		Name:          "Vatnajökull Challenge",
		Description:   "Scale the mighty Icelandic glacier with proper gear and Viking courage",
		Width:         width,
		Height:        height,
		Terrain:       terrain,
		StartPosition: GridPos{X: 2, Y: 5},
		GoalPositions: []GridPos{{X: 25, Y: 22}},
		Weather: WeatherConditions{
			BaseTemperature: -15,
			WindSpeed:       25,
			WeatherType:     "blizzard",
		},
		Wildlife: []WildlifeSpawn{
			{Species: "wolf", Position: WorldPos{X: 300, Y: 200}, Aggression: 0.7},
			{Species: "horse", Position: WorldPos{X: 100, Y: 100}, Aggression: 0},
		},
		NPCs: []NPCSpawn{
			{
				Name:     "Björn the Viking",
				NPCType:  "viking",
				Position: WorldPos{X: 400, Y: 150},
				Dialogue: "bjorn_viking.json",
			},
			{
				Name:     "Freydis the Mage",
				NPCType:  "mage",
				Position: WorldPos{X: 500, Y: 300},
				Dialogue: "freydis_mage.json",
			},
		},
		Items: []ItemSpawn{
			{ItemID: "warm_cloak", Position: WorldPos{X: 250, Y: 180}, Quantity: 1},
			{ItemID: "rune_stone", Position: WorldPos{X: 450, Y: 250}, Quantity: 1},
		},
	}
}

// SampleLevels returns the complete hand-authored catalog.
func SampleLevels() []*LevelDefinition {
	return []*LevelDefinition{
		TutorialLevel(),
		GlacierLevel(),
	}
}

// SaveSampleLevels writes every catalog level under dir as <id>.json.
func SaveSampleLevels(dir string) error {
	for _, lvl := range SampleLevels() {
		if err := Save(lvl, filepath.Join(dir, lvl.ID+".json")); err != nil {
			return err
		}
	}
	return nil
}

func filledGrid(width, height int, fill TerrainData) [][]TerrainData {
	terrain := make([][]TerrainData, height)
	for y := range terrain {
		row := make([]TerrainData, width)
		for x := range row {
			tile := fill
			gear := make([]string, len(fill.RequiredGear))
			copy(gear, fill.RequiredGear)
			tile.RequiredGear = gear
			row[x] = tile
		}
		terrain[y] = row
	}
	return terrain
}
