package geometry

import (
	"math"

	"github.com/1F47E/geo-mobb/pkg/models"
)

// Angle returns the angle, in radians counter-clockwise from the positive
// x-axis, that the vector p-o makes. The result lies in [0, 2π). A point
// coincident with the origin has angle 0
func Angle(p, o models.Point) float64 {
	x := p.X - o.X
	y := p.Y - o.Y

	// On an axis
	if x == 0 && y == 0 {
		return 0
	}
	if x == 0 {
		if y > 0 {
			return math.Pi / 2
		}
		return math.Pi * 3 / 2
	}
	if y == 0 {
		if x > 0 {
			return 0
		}
		return math.Pi
	}

	theta := math.Atan(math.Abs(y) / math.Abs(x))

	switch {
	case x > 0 && y > 0:
		return theta
	case x < 0 && y > 0:
		return math.Pi - theta
	case x < 0 && y < 0:
		return math.Pi + theta
	default:
		return 2*math.Pi - theta
	}
}
