package gen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"summitgen/pkg/rng"
)

type anchor struct {
	X, Y int
}

// themeAnchors picks the elevation anchor tiles for the theme. Anchors are
// always clamped inside the grid.
func themeAnchors(theme Theme, w, h int, r *rng.RNG) []anchor {
	var anchors []anchor
	switch theme.Anchors {
	case AnchorRidge:
		count := 2 + w/64
		for i := 0; i < count; i++ {
			anchors = append(anchors, anchor{
				X: r.IntN(w),
				Y: r.IntN(maxInt(1, h/6)),
			})
		}
	case AnchorCone:
		anchors = append(anchors, anchor{X: w / 2, Y: h / 2})
	default: // AnchorSummit
		span := maxInt(1, w/3)
		anchors = append(anchors, anchor{
			X: w/3 + r.IntN(span),
			Y: r.IntN(maxInt(1, h/4)),
		})
	}
	for i := range anchors {
		anchors[i].X = clampInt(anchors[i].X, 0, w-1)
		anchors[i].Y = clampInt(anchors[i].Y, 0, h-1)
	}
	return anchors
}

// elevationField synthesizes the normalized height field: radial falloff
// from the theme anchors, a north bias, low-frequency simplex detail, and
// per-tile uniform jitter, all clamped to [0,1].
func elevationField(cfg Config, anchors []anchor, r *rng.RNG) *Field {
	p := cfg.Params
	field := NewField(cfg.Width, cfg.Height)
	w, h := field.W, field.H

	noise := opensimplex.New(cfg.Seed)

	// The diagonal keeps distances normalized for any aspect ratio and is
	// never zero, even on a 1x1 grid.
	dMax := math.Hypot(float64(w-1), float64(h-1))
	if dMax < 1 {
		dMax = 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := 0.0
			for _, a := range anchors {
				d := math.Hypot(float64(x-a.X), float64(y-a.Y)) / dMax
				base += math.Max(0, 1-p.FalloffSteepness*d)
			}
			if base > 1 {
				base = 1
			}

			northness := 1.0
			if h > 1 {
				northness = 1 - float64(y)/float64(h-1)
			}
			base += p.NorthBiasMax * northness

			base += noise.Eval2(float64(x)*p.DetailScale, float64(y)*p.DetailScale) * p.DetailAmplitude
			base += (r.Float64()*2 - 1) * p.JitterAmplitude

			field.Set(x, y, clamp01(base))
		}
	}
	return field
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
