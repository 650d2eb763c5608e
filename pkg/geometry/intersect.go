package geometry

import (
	"math"

	"github.com/1F47E/geo-mobb/pkg/models"
)

// IntersectLines returns the point where the infinite lines a and b cross.
// The second result is false when the lines are parallel or coincident.
// The point may lie outside both segments
func IntersectLines(a, b models.Line) (models.Point, bool) {
	return DefaultOptions().IntersectLines(a, b)
}

// IntersectLines is like the package-level IntersectLines but treats lines
// whose determinant is within o.Tolerance of zero as parallel. A negative
// Tolerance counts as zero
func (o Options) IntersectLines(a, b models.Line) (models.Point, bool) {
	x1, y1 := a.P0.X, a.P0.Y
	x2, y2 := a.P1.X, a.P1.Y
	x3, y3 := b.P0.X, b.P0.Y
	x4, y4 := b.P1.X, b.P1.Y

	det := (y2-y1)*(x3-x4) - (x1-x2)*(y4-y3)
	if math.Abs(det) <= o.tolerance() {
		return models.Point{}, false
	}

	c1 := x1*y2 - y1*x2
	c2 := x3*y4 - y3*x4
	xdet := c1*(x3-x4) - (x1-x2)*c2
	ydet := (y2-y1)*c2 - c1*(y4-y3)
	return models.Point{X: xdet / det, Y: ydet / det}, true
}
