package vec

import "math"

// Vec2 is a 2D point or direction in world units. +Y points up.
type Vec2 struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Vec2{}

// Right is the +X unit vector.
var Right = Vec2{X: 1}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Mul(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Length returns the Euclidean norm.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the straight-line distance between v and o.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Length() }

// Normalized returns the unit vector in v's direction, or Zero for a zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// NormalizedOr is Normalized with a fallback for the degenerate case.
func (v Vec2) NormalizedOr(fallback Vec2) Vec2 {
	if v.Length() == 0 {
		return fallback
	}
	return v.Normalized()
}

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Angle returns atan2(y, x).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle returns the unit vector at angle a (radians).
func FromAngle(a float64) Vec2 { return Vec2{X: math.Cos(a), Y: math.Sin(a)} }

// Rect is an axis-aligned box given by its center and full size.
type Rect struct {
	Center Vec2
	Size   Vec2
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return math.Abs(r.Center.X-o.Center.X)*2 < r.Size.X+o.Size.X &&
		math.Abs(r.Center.Y-o.Center.Y)*2 < r.Size.Y+o.Size.Y
}

// Top returns the Y coordinate of the upper edge.
func (r Rect) Top() float64 { return r.Center.Y + r.Size.Y/2 }

// Bottom returns the Y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Center.Y - r.Size.Y/2 }

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.Center.X - r.Size.X/2 }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.Center.X + r.Size.X/2 }
