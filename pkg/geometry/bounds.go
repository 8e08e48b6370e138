package geometry

// Bounds is the size of a toroidal world whose origin is (0,0).
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBounds returns the bounds of a width x height world.
func NewBounds(width, height float64) Bounds {
	return Bounds{Width: width, Height: height}
}

// Wrap folds p back into [0, Width) x [0, Height): leaving through one edge
// re-enters through the opposite one.
func (b Bounds) Wrap(p Vector2D) Vector2D {
	return p.Mod(b.Width, b.Height)
}

// Center is the middle of the world.
func (b Bounds) Center() Vector2D {
	return Vector2D{X: b.Width / 2, Y: b.Height / 2}
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (b Bounds) Contains(p Vector2D) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}
