package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point represents a position in the plane
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt returns the point (x, y)
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the vector p-o as a point
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the euclidean distance between two points
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Line is an infinite line through two distinct points
type Line struct {
	P0 Point `json:"p0" yaml:"p0"`
	P1 Point `json:"p1" yaml:"p1"`
}

// Box is a possibly rotated rectangle. Corners are ordered
// (min-x, min-y), (min-x, max-y), (max-x, max-y), (max-x, min-y)
// in the rectangle's own frame
type Box [4]Point

// Points returns the corners as a new slice
func (b Box) Points() []Point {
	return []Point{b[0], b[1], b[2], b[3]}
}

// Shape is a named polygon. The ring is implicit: the last point connects
// back to the first
type Shape struct {
	ID     string  `json:"id" yaml:"id"`
	Points []Point `json:"points" yaml:"points"`
}

// ParsePoint parses a point written as "x,y"
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

// ParsePoints parses every argument with ParsePoint
func ParsePoints(args []string) ([]Point, error) {
	points := make([]Point, 0, len(args))
	for i, arg := range args {
		p, err := ParsePoint(arg)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}
