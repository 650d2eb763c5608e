package geometry

import "github.com/1F47E/geo-mobb/pkg/models"

// Centroid returns the mean of the vertices. It is not the area centroid;
// repeated points pull the result towards them
func Centroid(points []models.Point) (models.Point, error) {
	if err := requirePoints("centroid", len(points), 1); err != nil {
		return models.Point{}, err
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return models.Point{X: sx / n, Y: sy / n}, nil
}
