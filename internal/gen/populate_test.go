package gen

import (
	"strings"
	"testing"

	"summitgen/pkg/rng"
)

func mustTheme(t *testing.T, name string) Theme {
	t.Helper()
	theme, ok := ThemeByName(name)
	if !ok {
		t.Fatalf("theme %q not registered", name)
	}
	return theme
}

func TestPopulateWildlifeStaysInLowlands(t *testing.T) {
	theme := mustTheme(t, "mountain")
	w, h := 60, 40
	spawns := populateWildlife(theme, w, h, rng.New(11))

	if len(spawns) < theme.WildlifeMin || len(spawns) > theme.WildlifeMax {
		t.Fatalf("spawned %d animals, want [%d,%d]", len(spawns), theme.WildlifeMin, theme.WildlifeMax)
	}
	for _, s := range spawns {
		if s.Aggression < 0 || s.Aggression > 1 {
			t.Fatalf("%s aggression %v outside [0,1]", s.Species, s.Aggression)
		}
		if s.Position.Y < float64(h/2)*TileSize || s.Position.Y > float64(h)*TileSize {
			t.Fatalf("%s at y=%v outside the southern half", s.Species, s.Position.Y)
		}
		if s.Position.X < 0 || s.Position.X > float64(w)*TileSize {
			t.Fatalf("%s at x=%v outside the map", s.Species, s.Position.X)
		}
	}
}

func TestPredatorAggressionExceedsLivestock(t *testing.T) {
	theme := mustTheme(t, "mountain")
	spawns := populateWildlife(theme, 120, 90, rng.New(12))
	for _, s := range spawns {
		switch s.Species {
		case "bear", "puma", "wolf":
			if s.Aggression < 0.5 {
				t.Fatalf("predator %s aggression %v below 0.5", s.Species, s.Aggression)
			}
		case "sheep", "goat":
			if s.Aggression > 0.2 {
				t.Fatalf("livestock %s aggression %v above 0.2", s.Species, s.Aggression)
			}
		default:
			t.Fatalf("unexpected species %q for the mountain theme", s.Species)
		}
	}
}

func TestPopulateNPCsNamesAndDialogue(t *testing.T) {
	theme := mustTheme(t, "volcanic")
	w, h := 60, 40
	spawns := populateNPCs(theme, w, h, rng.New(13))

	if len(spawns) < theme.NPCMin || len(spawns) > theme.NPCMax {
		t.Fatalf("spawned %d NPCs, want [%d,%d]", len(spawns), theme.NPCMin, theme.NPCMax)
	}
	for _, s := range spawns {
		first, _, found := strings.Cut(s.Name, " the ")
		if !found {
			t.Fatalf("NPC name %q missing title", s.Name)
		}
		wantDialogue := strings.ToLower(first) + "_" + s.NPCType + ".json"
		if s.Dialogue != wantDialogue {
			t.Fatalf("NPC %q dialogue = %q, want %q", s.Name, s.Dialogue, wantDialogue)
		}
		if s.NPCType == "mage" && s.Position.Y > float64(maxInt(1, h/4))*TileSize {
			t.Fatalf("mage %q at y=%v outside the high quarter", s.Name, s.Position.Y)
		}
	}
}

func TestPopulateItemsQuantities(t *testing.T) {
	theme := mustTheme(t, "coastal")
	spawns := populateItems(theme, 60, 40, rng.New(14))

	if len(spawns) < theme.ItemMin || len(spawns) > theme.ItemMax {
		t.Fatalf("spawned %d items, want [%d,%d]", len(spawns), theme.ItemMin, theme.ItemMax)
	}
	for _, s := range spawns {
		if s.Quantity < 1 {
			t.Fatalf("item %s quantity %d", s.ItemID, s.Quantity)
		}
		if !stackableItems[s.ItemID] && s.Quantity != 1 {
			t.Fatalf("non-stackable %s has quantity %d", s.ItemID, s.Quantity)
		}
		if s.Quantity > 4 {
			t.Fatalf("item %s stack %d above the cap", s.ItemID, s.Quantity)
		}
	}
}
