package collision

import (
	"errors"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ErrUnsupportedShape is raised (as a panic) when a shape that is not a usable convex
// polygon reaches the collision primitive. It always indicates a factory bug.
var ErrUnsupportedShape = errors.New("collision: unsupported shape")

// Position is a world-space centre plus a rotation in radians.
type Position struct {
	X, Y     float64
	Rotation float64
}

// Vec returns the centre as a vector.
func (p Position) Vec() dmath.Vec2 {
	return dmath.NewVec2(p.X, p.Y)
}

// Translate returns the position moved by d. Rotation is kept.
func (p Position) Translate(d dmath.Vec2) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y, Rotation: p.Rotation}
}

type shapeKind uint8

const (
	kindPolygon shapeKind = iota
	kindBox
)

// Shape is a convex polygon in body-local space. The local origin is the body centre.
type Shape struct {
	kind   shapeKind
	points []dmath.Vec2
	w, h   float64
}

// NewBox creates an axis-aligned box centred on the local origin.
func NewBox(w, h float64) *Shape {
	s := &Shape{kind: kindBox}
	s.Resize(w, h)
	return s
}

// NewSegment creates a two point polygon, used for sight rays.
func NewSegment(from, to dmath.Vec2) *Shape {
	return NewPolygon(from, to)
}

// NewPolygon creates a convex polygon from local points in winding order.
func NewPolygon(points ...dmath.Vec2) *Shape {
	pts := make([]dmath.Vec2, len(points))
	copy(pts, points)
	return &Shape{kind: kindPolygon, points: pts}
}

// Resize changes the extents of a box shape in place.
func (s *Shape) Resize(w, h float64) {
	if s.kind != kindBox {
		panic(ErrUnsupportedShape)
	}
	hw, hh := w/2, h/2
	s.w, s.h = w, h
	s.points = []dmath.Vec2{
		dmath.NewVec2(-hw, -hh),
		dmath.NewVec2(hw, -hh),
		dmath.NewVec2(hw, hh),
		dmath.NewVec2(-hw, hh),
	}
}

// Size returns the extents of the shape's local bounding box.
func (s *Shape) Size() (w, h float64) {
	if s.kind == kindBox {
		return s.w, s.h
	}
	min, max := bounds(s.points)
	return max.X - min.X, max.Y - min.Y
}

// World returns the shape's vertices placed at pos.
func (s *Shape) World(pos Position) []dmath.Vec2 {
	s.mustBeValid()
	out := make([]dmath.Vec2, len(s.points))
	sin, cos := math.Sincos(pos.Rotation)
	for i, p := range s.points {
		x, y := p.X, p.Y
		if pos.Rotation != 0 {
			x, y = p.X*cos-p.Y*sin, p.X*sin+p.Y*cos
		}
		out[i] = dmath.NewVec2(x+pos.X, y+pos.Y)
	}
	return out
}

// Bounds returns the world-space bounding box of the shape placed at pos.
func (s *Shape) Bounds(pos Position) (min, max dmath.Vec2) {
	return bounds(s.World(pos))
}

func (s *Shape) mustBeValid() {
	if s == nil || len(s.points) < 2 {
		panic(ErrUnsupportedShape)
	}
}

func bounds(points []dmath.Vec2) (min, max dmath.Vec2) {
	if len(points) == 0 {
		return
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
