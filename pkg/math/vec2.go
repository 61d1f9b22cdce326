package math

// Vec2 is a 2D vector, used for texture coordinates and cross-section math.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return Vec3{v.X, v.Y, 0}.Length()
}

// Array returns the components as a [2]float32, for vertex buffers.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}
