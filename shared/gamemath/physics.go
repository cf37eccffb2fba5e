package gamemath

// ApplyGravity returns the vertical speed after one tick. A body whose next
// step would reach or pass floorY comes to rest (speed 0); otherwise gravity
// is added.
func ApplyGravity(y, height, speedY, gravity, floorY float64) float64 {
	if y+height+speedY >= floorY {
		return 0
	}
	return speedY + gravity
}

// ClampX keeps a body of the given width inside [0, worldWidth].
func ClampX(x, width, worldWidth float64) float64 {
	if x < 0 {
		return 0
	}
	if x+width > worldWidth {
		return worldWidth - width
	}
	return x
}

// Abs returns the absolute value of v.
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
