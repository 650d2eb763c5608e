package main

import (
	"fmt"
	"math"

	"github.com/1F47E/geo-mobb/pkg/geometry"
	"github.com/1F47E/geo-mobb/pkg/models"
	"github.com/spf13/cobra"
)

type angleResult struct {
	Radians float64 `json:"radians" yaml:"radians"`
	Degrees float64 `json:"degrees" yaml:"degrees"`
}

type boxResult struct {
	Box  models.Box `json:"box" yaml:"box"`
	Area float64    `json:"area" yaml:"area"`

	// AxisAlignedArea is only set for oriented boxes
	AxisAlignedArea float64 `json:"axis_aligned_area,omitempty" yaml:"axis_aligned_area,omitempty"`
}

type intersectResult struct {
	Intersects bool          `json:"intersects" yaml:"intersects"`
	Point      *models.Point `json:"point,omitempty" yaml:"point,omitempty"`
}

func runAngle(cmd *cobra.Command, args []string) error {
	points, err := models.ParsePoints(args)
	if err != nil {
		return err
	}
	theta := geometry.Angle(points[0], points[1])

	return render(cmd, "Angle", angleResult{Radians: theta, Degrees: theta * 180 / math.Pi}, []row{
		{"radians", formatFloat(theta)},
		{"degrees", formatFloat(theta * 180 / math.Pi)},
	})
}

func runRotate(cmd *cobra.Command, args []string) error {
	points, err := models.ParsePoints(args)
	if err != nil {
		return err
	}
	origin, err := models.ParsePoint(rotateOrigin)
	if err != nil {
		return fmt.Errorf("invalid --origin: %w", err)
	}
	theta := rotateTheta
	if rotateDegrees {
		theta = theta * math.Pi / 180
	}

	rotated := geometry.RotatePoints(points, origin, theta)
	rows := make([]row, len(rotated))
	for i, p := range rotated {
		rows[i] = row{points[i].String(), p.String()}
	}
	return render(cmd, "Rotated points", rotated, rows)
}

func runBBox(cmd *cobra.Command, args []string) error {
	points, err := models.ParsePoints(args)
	if err != nil {
		return err
	}
	box, err := geometry.BoundingBox(points)
	if err != nil {
		return err
	}

	area := geometry.BoxArea(box)
	return render(cmd, "Bounding box", boxResult{Box: box, Area: area}, boxRows(box, area))
}

func runMBox(cmd *cobra.Command, args []string) error {
	points, err := models.ParsePoints(args)
	if err != nil {
		return err
	}
	box, err := options().MinBoundingBox(points)
	if err != nil {
		return err
	}
	aabb, err := geometry.BoundingBox(points)
	if err != nil {
		return err
	}

	res := boxResult{Box: box, Area: geometry.BoxArea(box), AxisAlignedArea: geometry.BoxArea(aabb)}
	rows := append(boxRows(box, res.Area), row{"axis-aligned area", formatFloat(res.AxisAlignedArea)})
	return render(cmd, "Minimum oriented bounding box", res, rows)
}

func runArea(cmd *cobra.Command, args []string) error {
	points, err := models.ParsePoints(args)
	if err != nil {
		return err
	}
	area, err := geometry.Area(points)
	if err != nil {
		return err
	}
	return render(cmd, "Area", area, []row{{"area", formatFloat(area)}})
}

func runCentroid(cmd *cobra.Command, args []string) error {
	points, err := models.ParsePoints(args)
	if err != nil {
		return err
	}
	c, err := geometry.Centroid(points)
	if err != nil {
		return err
	}
	return render(cmd, "Centroid", c, []row{{"centroid", c.String()}})
}

func runIntersect(cmd *cobra.Command, args []string) error {
	points, err := models.ParsePoints(args)
	if err != nil {
		return err
	}
	a := models.Line{P0: points[0], P1: points[1]}
	b := models.Line{P0: points[2], P1: points[3]}

	p, ok := options().IntersectLines(a, b)
	if !ok {
		return render(cmd, "Intersection", intersectResult{}, []row{{"intersection", "none (parallel or coincident)"}})
	}
	return render(cmd, "Intersection", intersectResult{Intersects: true, Point: &p}, []row{{"intersection", p.String()}})
}

func boxRows(box models.Box, area float64) []row {
	rows := make([]row, 0, len(box)+1)
	for i, c := range box {
		rows = append(rows, row{fmt.Sprintf("corner %d", i), c.String()})
	}
	return append(rows, row{"area", formatFloat(area)})
}
