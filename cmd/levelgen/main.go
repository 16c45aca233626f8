package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"summitgen/internal/gen"
	"summitgen/internal/level"
)

// overrides collects repeated -set key=value generator parameters.
type overrides map[string]string

func (o overrides) String() string {
	pairs := make([]string, 0, len(o))
	for k, v := range o {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (o overrides) Set(s string) error {
	key, value, found := strings.Cut(s, "=")
	if !found || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	o[key] = value
	return nil
}

func main() {
	defaults := gen.DefaultConfig()
	params := overrides{}

	flag.String("theme", defaults.Theme, "generation theme")
	flag.Int("w", defaults.Width, "grid width in tiles")
	flag.Int("h", defaults.Height, "grid height in tiles")
	flag.Int64("seed", defaults.Seed, "generation seed")
	count := flag.Int("count", 1, "number of levels to generate (seed increments per level)")
	out := flag.String("out", "levels", "output directory")
	samples := flag.Bool("samples", false, "also write the hand-authored sample levels")
	flag.Var(params, "set", "generator parameter override as key=value (repeatable)")
	flag.Parse()

	if *samples {
		if err := level.SaveSampleLevels(*out); err != nil {
			log.Fatalf("write sample levels: %v", err)
		}
		log.Printf("wrote %d sample levels to %s", len(level.SampleLevels()), *out)
	}

	// Explicitly passed flags win over -set entries for the same key.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme", "w", "h", "seed":
			params[f.Name] = f.Value.String()
		}
	})
	cfg := gen.FromMap(params)

	base := cfg.Seed
	for i := 0; i < *count; i++ {
		cfg.Seed = base + int64(i)
		lvl, err := gen.Generate(cfg)
		if err != nil {
			log.Fatalf("generate: %v", err)
		}
		path := filepath.Join(*out, lvl.ID+".json")
		if err := level.Save(lvl, path); err != nil {
			log.Fatalf("save %s: %v", lvl.ID, err)
		}
		log.Printf("wrote %s (%dx%d, seed %d)", path, lvl.Width, lvl.Height, cfg.Seed)
	}
}
