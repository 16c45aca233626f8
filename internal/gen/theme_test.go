package gen

import "testing"

func TestThemePassOrdering(t *testing.T) {
	want := map[string][]string{
		"mountain": {"glacier", "lava_fields", "coastal_cliffs", "rock_formations"},
		"coastal":  {"coastal_cliffs", "rock_formations", "glacier"},
		"volcanic": {"volcanic_peak", "lava_fields", "rock_formations"},
	}
	for name, order := range want {
		theme := mustTheme(t, name)
		if len(theme.Passes) != len(order) {
			t.Fatalf("theme %s has %d passes, want %d", name, len(theme.Passes), len(order))
		}
		for i, pass := range theme.Passes {
			if pass.Name != order[i] {
				t.Fatalf("theme %s pass %d is %q, want %q", name, i, pass.Name, order[i])
			}
		}
	}
}

func TestThemeNamesSortedAndComplete(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("registered themes: %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("theme names not sorted: %v", names)
		}
	}
	for _, name := range names {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("listed theme %q not resolvable", name)
		}
	}
}
