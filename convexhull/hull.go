// SPDX-License-Identifier: MIT
// Package: courselab/convexhull
//
// hull.go: brute-force hull edges and random point generation.

package convexhull

import (
	"fmt"
)

// Point is an integer point in the plane.
type Point struct {
	X, Y int
}

// Segment is a hull edge between two input points.
type Segment struct {
	From, To Point
}

// BruteForce returns every segment between two input points that has all
// other points on one side (or on the line itself).
func BruteForce(points []Point) ([]Segment, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	var out []Segment
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			p, q := points[i], points[j]
			if p == q {
				continue
			}
			if oneSided(p, q, points) {
				out = append(out, Segment{From: p, To: q})
			}
		}
	}

	return out, nil
}

// oneSided reports whether no two points fall strictly on opposite sides
// of the line through p and q.
func oneSided(p, q Point, points []Point) bool {
	a := int64(q.Y) - int64(p.Y)
	b := int64(p.X) - int64(q.X)
	c := int64(p.X)*int64(q.Y) - int64(p.Y)*int64(q.X)

	var above, below bool
	for _, r := range points {
		v := a*int64(r.X) + b*int64(r.Y)
		switch {
		case v > c:
			above = true
		case v < c:
			below = true
		}
		if above && below {
			return false
		}
	}

	return true
}

// Vertices returns the distinct segment endpoints in first-seen order.
func Vertices(segments []Segment) []Point {
	seen := make(map[Point]bool, 2*len(segments))
	var out []Point
	for _, s := range segments {
		for _, p := range [2]Point{s.From, s.To} {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	return out
}

// RandomPoints draws n points with coordinates in [1, DefaultRange], or in
// [1, upper] with WithRange(upper).
func RandomPoints(n int, opts ...Option) ([]Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("RandomPoints: n=%d: %w", n, ErrTooFewPoints)
	}
	cfg := newConfig(opts)
	if cfg.maxCoord <= 0 {
		return nil, fmt.Errorf("RandomPoints: range=%d: %w", cfg.maxCoord, ErrBadRange)
	}

	points := make([]Point, n)
	for i := range points {
		points[i].X = cfg.rng.Intn(cfg.maxCoord) + 1
		points[i].Y = cfg.rng.Intn(cfg.maxCoord) + 1
	}

	return points, nil
}
