package anchor

// Vector2i is an integer point or size in logical pixels.
type Vector2i struct {
	X, Y int
}

// Add returns v + o componentwise.
func (v Vector2i) Add(o Vector2i) Vector2i {
	return Vector2i{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o componentwise.
func (v Vector2i) Sub(o Vector2i) Vector2i {
	return Vector2i{v.X - o.X, v.Y - o.Y}
}

// Div returns v / s componentwise (integer division).
func (v Vector2i) Div(s int) Vector2i {
	return Vector2i{v.X / s, v.Y / s}
}

// IsZero reports whether both components are zero.
func (v Vector2i) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Vector2f is a float point or delta, used for scroll offsets.
type Vector2f struct {
	X, Y float32
}

// Add returns v + o componentwise.
func (v Vector2f) Add(o Vector2f) Vector2f {
	return Vector2f{v.X + o.X, v.Y + o.Y}
}
