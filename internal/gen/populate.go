package gen

import (
	"strings"

	"summitgen/internal/level"
	"summitgen/pkg/rng"
)

// TileSize is the world-units-per-tile scale the consuming layer assumes
// when instantiating spawned entities.
const TileSize = 32.0

var npcFirstNames = []string{
	"Erik", "Leif", "Olaf", "Gunnar", "Snorri",
	"Sigrid", "Astrid", "Runa", "Helga", "Freydis",
}

var npcTitles = map[string]string{
	"guide":   "the Guide",
	"climber": "the Climber",
	"trader":  "the Trader",
	"viking":  "the Viking",
	"mage":    "the Mage",
	"hermit":  "the Hermit",
}

var stackableItems = map[string]bool{
	"dried_fish": true,
	"torch":      true,
}

// populateWildlife scatters animals through the lowland half of the map.
// Placement is purely statistical; no overlap checks are performed.
func populateWildlife(theme Theme, w, h int, r *rng.RNG) []level.WildlifeSpawn {
	count := r.IntRange(theme.WildlifeMin, theme.WildlifeMax)
	spawns := make([]level.WildlifeSpawn, 0, count)
	band := ClampRect(w, h, 0, h/2, w, h-h/2)
	for i := 0; i < count; i++ {
		class := theme.Wildlife[r.IntN(len(theme.Wildlife))]
		spawns = append(spawns, level.WildlifeSpawn{
			Species:    class.Species[r.IntN(len(class.Species))],
			Position:   worldPosIn(band, r),
			Aggression: r.FloatRange(class.AggressionMin, class.AggressionMax),
		})
	}
	return spawns
}

// populateNPCs places characters from the theme pools. Mages keep to the
// remote high quarter of the map; everyone else wanders freely.
func populateNPCs(theme Theme, w, h int, r *rng.RNG) []level.NPCSpawn {
	count := r.IntRange(theme.NPCMin, theme.NPCMax)
	spawns := make([]level.NPCSpawn, 0, count)
	full := ClampRect(w, h, 0, 0, w, h)
	highlands := ClampRect(w, h, 0, 0, w, maxInt(1, h/4))
	for i := 0; i < count; i++ {
		npcType := theme.NPCTypes[r.IntN(len(theme.NPCTypes))]
		first := npcFirstNames[r.IntN(len(npcFirstNames))]
		band := full
		if npcType == "mage" {
			band = highlands
		}
		spawns = append(spawns, level.NPCSpawn{
			Name:     first + " " + titleFor(npcType),
			NPCType:  npcType,
			Position: worldPosIn(band, r),
			Dialogue: strings.ToLower(first) + "_" + npcType + ".json",
		})
	}
	return spawns
}

// populateItems drops pickups from the theme pool anywhere on the map.
func populateItems(theme Theme, w, h int, r *rng.RNG) []level.ItemSpawn {
	count := r.IntRange(theme.ItemMin, theme.ItemMax)
	spawns := make([]level.ItemSpawn, 0, count)
	full := ClampRect(w, h, 0, 0, w, h)
	for i := 0; i < count; i++ {
		id := theme.Items[r.IntN(len(theme.Items))]
		quantity := 1
		if stackableItems[id] && r.Float64() < 0.3 {
			quantity = r.IntRange(2, 4)
		}
		spawns = append(spawns, level.ItemSpawn{
			ItemID:   id,
			Position: worldPosIn(full, r),
			Quantity: quantity,
		})
	}
	return spawns
}

func titleFor(npcType string) string {
	if title, ok := npcTitles[npcType]; ok {
		return title
	}
	return "the Wanderer"
}

// worldPosIn draws a uniform world-space position inside a tile rectangle.
func worldPosIn(band Rect, r *rng.RNG) level.WorldPos {
	x1 := maxInt(band.X1, band.X0+1)
	y1 := maxInt(band.Y1, band.Y0+1)
	return level.WorldPos{
		X: r.FloatRange(float64(band.X0), float64(x1)) * TileSize,
		Y: r.FloatRange(float64(band.Y0), float64(y1)) * TileSize,
	}
}
