package geometry

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/1F47E/geo-mobb/pkg/models"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

var approx = cmpopts.EquateApprox(0, epsilon)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func square() []models.Point {
	return []models.Point{models.Pt(0, 0), models.Pt(2, 0), models.Pt(2, 2), models.Pt(0, 2)}
}

// randomConvex returns n points on a circle in counter-clockwise order
func randomConvex(r *rand.Rand, n int) []models.Point {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = r.Float64() * 2 * math.Pi
	}
	sort.Float64s(angles)

	cx := r.Float64()*200 - 100
	cy := r.Float64()*200 - 100
	radius := r.Float64()*50 + 1
	points := make([]models.Point, n)
	for i, a := range angles {
		points[i] = models.Pt(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
	return points
}

// boxContains reports whether p lies inside b, allowing eps of slack
// relative to the box's side lengths
func boxContains(b models.Box, p models.Point, eps float64) bool {
	u := b[3].Sub(b[0])
	v := b[1].Sub(b[0])
	d := p.Sub(b[0])
	inRange := func(axis models.Point) bool {
		ll := axis.X*axis.X + axis.Y*axis.Y
		if ll == 0 {
			return math.Abs(d.X*axis.X+d.Y*axis.Y) <= eps
		}
		s := (d.X*axis.X + d.Y*axis.Y) / ll
		return s >= -eps && s <= 1+eps
	}
	return inRange(u) && inRange(v)
}
