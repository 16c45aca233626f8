package gen

// Rect is a half-open region of grid tiles.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// ClampRect saturates an origin+size rectangle into [0,w)x[0,h). The result
// may be empty when the rectangle lies entirely outside the grid.
func ClampRect(w, h, x, y, rw, rh int) Rect {
	r := Rect{X0: x, Y0: y, X1: x + rw, Y1: y + rh}
	if r.X0 < 0 {
		r.X0 = 0
	}
	if r.Y0 < 0 {
		r.Y0 = 0
	}
	if r.X1 > w {
		r.X1 = w
	}
	if r.Y1 > h {
		r.Y1 = h
	}
	if r.X1 < r.X0 {
		r.X1 = r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y1 = r.Y0
	}
	return r
}

// Empty reports whether the rectangle covers no tiles.
func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// ForEachInRect visits every tile of the rectangle clamped to the grid.
func ForEachInRect(w, h, x, y, rw, rh int, fn func(x, y int)) {
	r := ClampRect(w, h, x, y, rw, rh)
	for ty := r.Y0; ty < r.Y1; ty++ {
		for tx := r.X0; tx < r.X1; tx++ {
			fn(tx, ty)
		}
	}
}

// ForEachInCircle visits every tile within radius r of (cx, cy), clamped to
// the grid. The callback receives the squared distance from the centre so
// passes can shape a core/ring split without recomputing it.
func ForEachInCircle(w, h, cx, cy, r int, fn func(x, y, distSq int)) {
	if r < 0 {
		return
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		ty := cy + dy
		if ty < 0 || ty >= h {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			tx := cx + dx
			if tx < 0 || tx >= w {
				continue
			}
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}
			fn(tx, ty, d2)
		}
	}
}
