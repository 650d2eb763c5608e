package geometry

import (
	"math"

	"github.com/1F47E/geo-mobb/pkg/models"
)

// Area returns the area of a simple polygon using the shoelace formula.
// The result does not depend on winding order. Self-intersecting polygons
// give a well-defined number that is not their enclosed area
func Area(points []models.Point) (float64, error) {
	if err := requirePoints("area", len(points), 3); err != nil {
		return 0, err
	}
	return shoelace(points), nil
}

// BoxArea returns the area of a rectangle given by its corners
func BoxArea(b models.Box) float64 {
	return shoelace(b[:])
}

func shoelace(points []models.Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - p.Y*q.X
	}
	return 0.5 * math.Abs(sum)
}
