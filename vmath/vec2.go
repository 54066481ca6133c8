package vmath

// Vec2 is a float64 2D vector in logical viewport pixels
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// DistSq returns squared Euclidean distance, compare against a squared threshold
func DistSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// ReflectX returns velocity reflected off a vertical wall (left/right edge)
func (v Vec2) ReflectX() Vec2 {
	return Vec2{-v.X, v.Y}
}

// ReflectY returns velocity reflected off a horizontal wall (top/bottom edge)
func (v Vec2) ReflectY() Vec2 {
	return Vec2{v.X, -v.Y}
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
