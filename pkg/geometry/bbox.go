package geometry

import "github.com/1F47E/geo-mobb/pkg/models"

// BoundingBox returns the axis-aligned rectangle enclosing points, with
// corners (xmin, ymin), (xmin, ymax), (xmax, ymax), (xmax, ymin).
// Coincident points give a zero-area box
func BoundingBox(points []models.Point) (models.Box, error) {
	if err := requirePoints("bounding box", len(points), 1); err != nil {
		return models.Box{}, err
	}
	return bounds(points), nil
}

// bounds assumes len(points) > 0
func bounds(points []models.Point) models.Box {
	xmin, ymin := points[0].X, points[0].Y
	xmax, ymax := xmin, ymin
	for _, p := range points[1:] {
		xmin = min(xmin, p.X)
		xmax = max(xmax, p.X)
		ymin = min(ymin, p.Y)
		ymax = max(ymax, p.Y)
	}
	return models.Box{
		{X: xmin, Y: ymin},
		{X: xmin, Y: ymax},
		{X: xmax, Y: ymax},
		{X: xmax, Y: ymin},
	}
}
