package gen

import (
	"sort"

	"summitgen/internal/level"
)

// AnchorPlacement selects how a theme positions its elevation anchors.
type AnchorPlacement int

const (
	// AnchorSummit places a single peak near the northern centre of the map.
	AnchorSummit AnchorPlacement = iota
	// AnchorRidge places several peaks along the northern edge.
	AnchorRidge
	// AnchorCone places a single volcanic cone at the centre of the map.
	AnchorCone
)

// SpeciesClass groups wildlife species sharing an aggression range.
type SpeciesClass struct {
	Species       []string
	AggressionMin float64
	AggressionMax float64
}

// Theme is a named generation profile: anchor placement, pass ordering,
// population pools, weather, and level metadata.
type Theme struct {
	Name        string
	DisplayName string
	Description string

	Anchors        AnchorPlacement
	GoalNorthQuart bool
	Weather        level.WeatherConditions
	Passes         []Pass

	Wildlife                 []SpeciesClass
	WildlifeMin, WildlifeMax int
	NPCTypes                 []string
	NPCMin, NPCMax           int
	Items                    []string
	ItemMin, ItemMax         int
}

var themes = map[string]Theme{}

// Register adds a theme under its name.
func Register(t Theme) {
	if t.Name == "" {
		return
	}
	themes[t.Name] = t
}

// Themes exposes the registry of available themes.
func Themes() map[string]Theme {
	return themes
}

// ThemeNames returns the registered theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName looks up a registered theme.
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

func init() {
	Register(Theme{
		Name:           "mountain",
		DisplayName:    "Highland Ascent",
		Description:    "A long climb from the coastal lowlands to a glaciated summit",
		Anchors:        AnchorSummit,
		GoalNorthQuart: true,
		Weather: level.WeatherConditions{
			BaseTemperature: -5,
			WindSpeed:       15,
			WeatherType:     "snow",
		},
		Passes: []Pass{
			GlacierPass(),
			LavaFieldsPass(),
			CoastalCliffsPass(),
			RockFormationsPass(),
		},
		Wildlife: []SpeciesClass{
			{Species: []string{"bear", "puma", "wolf"}, AggressionMin: 0.5, AggressionMax: 0.9},
			{Species: []string{"sheep", "goat"}, AggressionMin: 0, AggressionMax: 0.2},
		},
		WildlifeMin: 4,
		WildlifeMax: 9,
		NPCTypes:    []string{"guide", "climber", "trader"},
		NPCMin:      1,
		NPCMax:      3,
		Items:       []string{"rope", "ice_axe", "crampons", "warm_cloak", "dried_fish", "torch"},
		ItemMin:     2,
		ItemMax:     5,
	})

	Register(Theme{
		Name:           "coastal",
		DisplayName:    "Fjord Cliffs",
		Description:    "Wind-carved sea cliffs above cold northern waters",
		Anchors:        AnchorRidge,
		GoalNorthQuart: true,
		Weather: level.WeatherConditions{
			BaseTemperature: 8,
			WindSpeed:       22,
			WeatherType:     "clear",
		},
		Passes: []Pass{
			CoastalCliffsPass(),
			RockFormationsPass(),
			GlacierPass(),
		},
		Wildlife: []SpeciesClass{
			{Species: []string{"sheep", "horse", "cattle"}, AggressionMin: 0, AggressionMax: 0.2},
			{Species: []string{"wolf"}, AggressionMin: 0.4, AggressionMax: 0.7},
		},
		WildlifeMin: 5,
		WildlifeMax: 10,
		NPCTypes:    []string{"trader", "viking", "guide"},
		NPCMin:      1,
		NPCMax:      4,
		Items:       []string{"rope", "harness", "dried_fish", "tent"},
		ItemMin:     2,
		ItemMax:     5,
	})

	Register(Theme{
		Name:           "volcanic",
		DisplayName:    "Ember Caldera",
		Description:    "An active cone ringed by lava fields and brittle rock",
		Anchors:        AnchorCone,
		GoalNorthQuart: false,
		Weather: level.WeatherConditions{
			BaseTemperature: 18,
			WindSpeed:       10,
			WeatherType:     "storm",
		},
		Passes: []Pass{
			VolcanicPeakPass(),
			LavaFieldsPass(),
			RockFormationsPass(),
		},
		Wildlife: []SpeciesClass{
			{Species: []string{"wolf", "puma"}, AggressionMin: 0.6, AggressionMax: 1},
			{Species: []string{"goat"}, AggressionMin: 0.1, AggressionMax: 0.3},
		},
		WildlifeMin: 3,
		WildlifeMax: 7,
		NPCTypes:    []string{"mage", "viking", "climber"},
		NPCMin:      1,
		NPCMax:      3,
		Items:       []string{"rune_stone", "rope", "torch", "warm_cloak"},
		ItemMin:     2,
		ItemMax:     4,
	})
}
