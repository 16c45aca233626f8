package gen

// Field stores a 2D grid of float64 values in row-major order.
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a field with the given dimensions.
func NewField(w, h int) *Field {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read values directly.
func (f *Field) Values() []float64 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// At returns the value at (x, y).
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }
