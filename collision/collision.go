// Package collision holds the geometric side of the engine: convex shapes, the
// separating-axis overlap test and the static tile broadphase. It knows nothing about
// entities; the movement resolver in systems builds on top of it.
package collision

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Result describes a positive overlap between a query shape A and a candidate B.
//
// Subtracting OverlapVector from A's position separates the two shapes. AInB is set
// when A lies entirely inside B, BInA when B lies entirely inside A.
type Result struct {
	OverlapVector dmath.Vec2
	Overlap       float64
	AInB          bool
	BInA          bool
}

// Test runs a separating-axis test between a placed at pa and b placed at pb.
// It reports ok only for overlaps deeper than zero; touching edges are not a collision.
func Test(a *Shape, pa Position, b *Shape, pb Position) (Result, bool) {
	av := a.World(pa)
	bv := b.World(pb)

	r := Result{Overlap: math.MaxFloat64, AInB: true, BInA: true}
	var normal dmath.Vec2

	for _, poly := range [2][]dmath.Vec2{av, bv} {
		for i := range poly {
			axis, ok := edgeNormal(poly[i], poly[(i+1)%len(poly)])
			if !ok {
				continue
			}
			if separatedOn(av, bv, axis, &r, &normal) {
				return Result{}, false
			}
		}
	}

	if r.Overlap <= 0 || r.Overlap == math.MaxFloat64 {
		return Result{}, false
	}
	r.OverlapVector = normal.MulScalar(r.Overlap)
	return r, true
}

// Overlaps is a shorthand for callers that only need a yes/no answer.
func Overlaps(a *Shape, pa Position, b *Shape, pb Position) bool {
	_, ok := Test(a, pa, b, pb)
	return ok
}

// separatedOn projects both polygons on axis. It narrows the containment flags and
// records the smallest overlap seen so far.
func separatedOn(av, bv []dmath.Vec2, axis dmath.Vec2, r *Result, normal *dmath.Vec2) bool {
	minA, maxA := project(av, axis)
	minB, maxB := project(bv, axis)
	if minA > maxB || minB > maxA {
		return true
	}

	var overlap float64
	if minA < minB {
		r.AInB = false
		if maxA < maxB {
			overlap = maxA - minB
			r.BInA = false
		} else {
			overlap = pickOverlap(maxA-minB, maxB-minA)
		}
	} else {
		r.BInA = false
		if maxA > maxB {
			overlap = minA - maxB
			r.AInB = false
		} else {
			overlap = pickOverlap(maxA-minB, maxB-minA)
		}
	}

	if abs := math.Abs(overlap); abs < r.Overlap {
		r.Overlap = abs
		*normal = axis
		if overlap < 0 {
			*normal = axis.MulScalar(-1)
		}
	}
	return false
}

func pickOverlap(forward, backward float64) float64 {
	if forward < backward {
		return forward
	}
	return -backward
}

func project(points []dmath.Vec2, axis dmath.Vec2) (min, max float64) {
	min, max = math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		d := p.X*axis.X + p.Y*axis.Y
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

func edgeNormal(from, to dmath.Vec2) (dmath.Vec2, bool) {
	ex, ey := to.X-from.X, to.Y-from.Y
	l := math.Hypot(ex, ey)
	if l == 0 {
		return dmath.Vec2{}, false
	}
	return dmath.NewVec2(ey/l, -ex/l), true
}
