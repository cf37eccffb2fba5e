package gamemath

// Vector2 is a 2D vector in world coordinates.
type Vector2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// BoundingBox is an axis-aligned rectangle anchored at its top-left corner.
type BoundingBox struct {
	Position Vector2
	Width    float64
	Height   float64
}

// NewBox builds a BoundingBox from its top-left corner and size.
func NewBox(x, y, w, h float64) BoundingBox {
	return BoundingBox{Position: Vector2{X: x, Y: y}, Width: w, Height: h}
}

// Right returns the x-coordinate of the right edge.
func (b BoundingBox) Right() float64 {
	return b.Position.X + b.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (b BoundingBox) Bottom() float64 {
	return b.Position.Y + b.Height
}

// Overlaps reports whether b and o overlap. Edges are inclusive, so two boxes
// that only share a border still count as touching.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	return b.Right() >= o.Position.X &&
		b.Position.X <= o.Right() &&
		b.Bottom() >= o.Position.Y &&
		b.Position.Y <= o.Bottom()
}
