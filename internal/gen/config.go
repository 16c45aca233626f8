package gen

import "strconv"

// Params holds the tunable shape, threshold, and probability values used by
// the generation pipeline.
type Params struct {
	// Elevation synthesis.
	FalloffSteepness float64
	NorthBiasMax     float64
	DetailScale      float64
	DetailAmplitude  float64
	JitterAmplitude  float64

	// Terrain classification.
	SnowLine    float64
	RockLine    float64
	GrassLine   float64
	LowlandLine float64
	SlopeGain   float64
	SlopeNoise  float64
	CoastBand   float64

	// Feature passes.
	GlacierCount      int
	GlacierRadiusMin  int
	GlacierRadiusMax  int
	GlacierFill       float64
	LavaFieldCount    int
	LavaRadiusMin     int
	LavaRadiusMax     int
	LavaFill          float64
	CliffCount        int
	CliffWidthMin     int
	CliffWidthMax     int
	CliffHeightMin    int
	CliffHeightMax    int
	CliffFill         float64
	FormationCount    int
	FormationRadMin   int
	FormationRadMax   int
	FormationFill     float64
	CraterRadiusMin   int
	CraterRadiusMax   int
	CraterFill        float64
}

// Config controls one generation run.
type Config struct {
	Width  int
	Height int

	Seed  int64
	Theme string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  120,
		Height: 90,
		Seed:   1337,
		Theme:  "mountain",
		Params: Params{
			FalloffSteepness: 1.3,
			NorthBiasMax:     0.3,
			DetailScale:      0.045,
			DetailAmplitude:  0.08,
			JitterAmplitude:  0.1,

			SnowLine:    0.8,
			RockLine:    0.6,
			GrassLine:   0.4,
			LowlandLine: 0.2,
			SlopeGain:   0.85,
			SlopeNoise:  0.05,
			CoastBand:   0.25,

			GlacierCount:     2,
			GlacierRadiusMin: 4,
			GlacierRadiusMax: 9,
			GlacierFill:      0.8,
			LavaFieldCount:   3,
			LavaRadiusMin:    2,
			LavaRadiusMax:    5,
			LavaFill:         0.65,
			CliffCount:       3,
			CliffWidthMin:    6,
			CliffWidthMax:    14,
			CliffHeightMin:   2,
			CliffHeightMax:   4,
			CliffFill:        0.75,
			FormationCount:   4,
			FormationRadMin:  2,
			FormationRadMax:  6,
			FormationFill:    0.7,
			CraterRadiusMin:  3,
			CraterRadiusMax:  6,
			CraterFill:       0.85,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["theme"]; ok && v != "" {
		c.Theme = v
	}
	if v, ok := cfg["falloff_steepness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.FalloffSteepness = parsed
		}
	}
	if v, ok := cfg["north_bias_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.NorthBiasMax = parsed
		}
	}
	if v, ok := cfg["detail_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DetailAmplitude = parsed
		}
	}
	if v, ok := cfg["jitter_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.JitterAmplitude = parsed
		}
	}
	if v, ok := cfg["glacier_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.GlacierCount = parsed
		}
	}
	if v, ok := cfg["glacier_radius_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.GlacierRadiusMin = parsed
		}
	}
	if v, ok := cfg["glacier_radius_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.GlacierRadiusMax = parsed
		}
	}
	if v, ok := cfg["glacier_fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.GlacierFill = parsed
		}
	}
	if v, ok := cfg["lava_field_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.LavaFieldCount = parsed
		}
	}
	if v, ok := cfg["lava_radius_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.LavaRadiusMin = parsed
		}
	}
	if v, ok := cfg["lava_radius_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.LavaRadiusMax = parsed
		}
	}
	if v, ok := cfg["lava_fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.LavaFill = parsed
		}
	}
	if v, ok := cfg["cliff_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CliffCount = parsed
		}
	}
	if v, ok := cfg["cliff_width_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CliffWidthMin = parsed
		}
	}
	if v, ok := cfg["cliff_width_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CliffWidthMax = parsed
		}
	}
	if v, ok := cfg["cliff_height_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CliffHeightMin = parsed
		}
	}
	if v, ok := cfg["cliff_height_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CliffHeightMax = parsed
		}
	}
	if v, ok := cfg["cliff_fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.CliffFill = parsed
		}
	}
	if v, ok := cfg["formation_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FormationCount = parsed
		}
	}
	if v, ok := cfg["formation_rad_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FormationRadMin = parsed
		}
	}
	if v, ok := cfg["formation_rad_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FormationRadMax = parsed
		}
	}
	if v, ok := cfg["formation_fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.FormationFill = parsed
		}
	}
	if v, ok := cfg["crater_radius_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CraterRadiusMin = parsed
		}
	}
	if v, ok := cfg["crater_radius_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CraterRadiusMax = parsed
		}
	}
	if v, ok := cfg["crater_fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.CraterFill = parsed
		}
	}
	if c.Params.GlacierRadiusMax < c.Params.GlacierRadiusMin {
		c.Params.GlacierRadiusMax = c.Params.GlacierRadiusMin
	}
	if c.Params.LavaRadiusMax < c.Params.LavaRadiusMin {
		c.Params.LavaRadiusMax = c.Params.LavaRadiusMin
	}
	if c.Params.CliffWidthMax < c.Params.CliffWidthMin {
		c.Params.CliffWidthMax = c.Params.CliffWidthMin
	}
	if c.Params.CliffHeightMax < c.Params.CliffHeightMin {
		c.Params.CliffHeightMax = c.Params.CliffHeightMin
	}
	if c.Params.FormationRadMax < c.Params.FormationRadMin {
		c.Params.FormationRadMax = c.Params.FormationRadMin
	}
	if c.Params.CraterRadiusMax < c.Params.CraterRadiusMin {
		c.Params.CraterRadiusMax = c.Params.CraterRadiusMin
	}
	return c
}
