package level

import "fmt"

// TerrainType enumerates the terrain classes a tile can carry.
type TerrainType string

const (
	TerrainSoil    TerrainType = "soil"
	TerrainRock    TerrainType = "rock"
	TerrainIce     TerrainType = "ice"
	TerrainSnow    TerrainType = "snow"
	TerrainGrass   TerrainType = "grass"
	TerrainGlacier TerrainType = "glacier"
	TerrainLava    TerrainType = "lava"
	TerrainCoast   TerrainType = "coast"
)

// TerrainTypes lists every known terrain class in display order.
var TerrainTypes = []TerrainType{
	TerrainSoil,
	TerrainRock,
	TerrainIce,
	TerrainSnow,
	TerrainGrass,
	TerrainGlacier,
	TerrainLava,
	TerrainCoast,
}

// GridPos is a tile coordinate inside the terrain grid.
type GridPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WorldPos is a world-space position. The consuming layer maps tiles to
// world units at a fixed 32-unit tile size.
type WorldPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TerrainData describes one tile of the grid.
//
// ClimbingDifficulty is present iff Climbable is true, and RequiredGear is
// non-empty only for climbable tiles.
type TerrainData struct {
	Type               TerrainType `json:"terrain_type"`
	Slope              float64     `json:"slope"`
	Stability          float64     `json:"stability"`
	Climbable          bool        `json:"climbable"`
	ClimbingDifficulty *float64    `json:"climbing_difficulty"`
	RequiredGear       []string    `json:"required_gear"`
}

// WeatherConditions is the level's weather baseline.
type WeatherConditions struct {
	BaseTemperature float64 `json:"base_temperature"`
	WindSpeed       float64 `json:"wind_speed"`
	WeatherType     string  `json:"weather_type"`
}

// WildlifeSpawn places one animal in the world.
type WildlifeSpawn struct {
	Species    string   `json:"species"`
	Position   WorldPos `json:"position"`
	Aggression float64  `json:"aggression"`
}

// NPCSpawn places one non-player character in the world.
type NPCSpawn struct {
	Name     string   `json:"name"`
	NPCType  string   `json:"npc_type"`
	Position WorldPos `json:"position"`
	Dialogue string   `json:"dialogue_file"`
}

// ItemSpawn places a pickup in the world.
type ItemSpawn struct {
	ItemID   string   `json:"item_id"`
	Position WorldPos `json:"position"`
	Quantity int      `json:"quantity"`
}

// LevelDefinition is the complete persisted description of one playable map.
type LevelDefinition struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	Terrain       [][]TerrainData   `json:"terrain"`
	StartPosition GridPos           `json:"start_position"`
	GoalPositions []GridPos         `json:"goal_positions"`
	Weather       WeatherConditions `json:"weather_conditions"`
	Wildlife      []WildlifeSpawn   `json:"wildlife_spawns"`
	NPCs          []NPCSpawn        `json:"npc_spawns"`
	Items         []ItemSpawn       `json:"items"`
}

// InvalidDimensionsError reports a terrain grid that does not match the
// declared level dimensions. Levels carrying it must not be used downstream.
type InvalidDimensionsError struct {
	ID     string
	Detail string
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("level %q has invalid dimensions: %s", e.ID, e.Detail)
}

// Difficulty returns a pointer suitable for TerrainData.ClimbingDifficulty.
func Difficulty(v float64) *float64 { return &v }

// Validate checks the structural invariants of the level definition.
func (l *LevelDefinition) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return &InvalidDimensionsError{
			ID:     l.ID,
			Detail: fmt.Sprintf("width=%d height=%d", l.Width, l.Height),
		}
	}
	if len(l.Terrain) != l.Height {
		return &InvalidDimensionsError{
			ID:     l.ID,
			Detail: fmt.Sprintf("expected %d rows, found %d", l.Height, len(l.Terrain)),
		}
	}
	for y, row := range l.Terrain {
		if len(row) != l.Width {
			return &InvalidDimensionsError{
				ID:     l.ID,
				Detail: fmt.Sprintf("row %d has %d columns, expected %d", y, len(row), l.Width),
			}
		}
	}
	if !l.inBounds(l.StartPosition) {
		return fmt.Errorf("level %q start position (%d,%d) outside grid", l.ID, l.StartPosition.X, l.StartPosition.Y)
	}
	if len(l.GoalPositions) == 0 {
		return fmt.Errorf("level %q has no goal positions", l.ID)
	}
	for _, goal := range l.GoalPositions {
		if !l.inBounds(goal) {
			return fmt.Errorf("level %q goal position (%d,%d) outside grid", l.ID, goal.X, goal.Y)
		}
	}
	for y, row := range l.Terrain {
		for x, tile := range row {
			if tile.Climbable && tile.ClimbingDifficulty == nil {
				return fmt.Errorf("level %q tile (%d,%d) climbable without difficulty", l.ID, x, y)
			}
			if !tile.Climbable && tile.ClimbingDifficulty != nil {
				return fmt.Errorf("level %q tile (%d,%d) has difficulty but is not climbable", l.ID, x, y)
			}
			if !tile.Climbable && len(tile.RequiredGear) > 0 {
				return fmt.Errorf("level %q tile (%d,%d) has gear requirements but is not climbable", l.ID, x, y)
			}
		}
	}
	return nil
}

func (l *LevelDefinition) inBounds(p GridPos) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// At returns the tile at (x, y). Callers are expected to stay in bounds.
func (l *LevelDefinition) At(x, y int) TerrainData {
	return l.Terrain[y][x]
}
