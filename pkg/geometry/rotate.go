package geometry

import (
	"math"

	"github.com/1F47E/geo-mobb/pkg/models"
)

// RotatePoint rotates p counter-clockwise by theta radians about o
func RotatePoint(p, o models.Point, theta float64) models.Point {
	sin, cos := math.Sincos(theta)
	return rotate(p, o, sin, cos)
}

// RotatePoints rotates every point about o, preserving order
func RotatePoints(points []models.Point, o models.Point, theta float64) []models.Point {
	sin, cos := math.Sincos(theta)
	out := make([]models.Point, len(points))
	for i, p := range points {
		out[i] = rotate(p, o, sin, cos)
	}
	return out
}

// RotateBox rotates the corners of b about o
func RotateBox(b models.Box, o models.Point, theta float64) models.Box {
	sin, cos := math.Sincos(theta)
	var out models.Box
	for i, p := range b {
		out[i] = rotate(p, o, sin, cos)
	}
	return out
}

func rotate(p, o models.Point, sin, cos float64) models.Point {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return models.Point{
		X: cos*dx - sin*dy + o.X,
		Y: sin*dx + cos*dy + o.Y,
	}
}
