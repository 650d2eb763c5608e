package geometry

import (
	"sync"

	"github.com/1F47E/geo-mobb/pkg/models"
)

// edgeFit is the bounding box of a polygon aligned with one of its edges.
// box is in the rotated frame; rotating it by theta about origin restores
// the polygon's frame
type edgeFit struct {
	origin models.Point
	theta  float64
	box    models.Box
	area   float64
}

// MinBoundingBox returns the minimum-area rectangle enclosing points,
// searched over the orientations of the polygon's edges in input order.
// Corners follow the order of BoundingBox in the rectangle's own frame.
// When several edges give the same area the earliest edge wins
func MinBoundingBox(points []models.Point) (models.Box, error) {
	return DefaultOptions().MinBoundingBox(points)
}

// MinBoundingBox is like the package-level MinBoundingBox but uses o's
// tolerance and worker count. The result does not depend on the worker count
func (o Options) MinBoundingBox(points []models.Point) (models.Box, error) {
	if err := requirePoints("minimum bounding box", len(points), 3); err != nil {
		return models.Box{}, err
	}
	if err := o.Validate(); err != nil {
		return models.Box{}, err
	}

	ring := make([]models.Point, len(points)+1)
	copy(ring, points)
	ring[len(points)] = points[0]

	if w := o.workers(); w > 1 {
		return o.minBoxParallel(ring, w), nil
	}
	return o.minBoxSerial(ring), nil
}

func (o Options) minBoxSerial(ring []models.Point) models.Box {
	var best models.Box
	var bestArea float64
	for i := 0; i < len(ring)-1; i++ {
		fit := fitEdge(ring, i)
		if i == 0 || o.smaller(fit.area, bestArea) {
			best = RotateBox(fit.box, fit.origin, fit.theta)
			bestArea = fit.area
		}
	}
	return best
}

// minBoxParallel computes every edge fit concurrently and then reduces in
// edge order with the same comparison as the serial scan
func (o Options) minBoxParallel(ring []models.Point, workers int) models.Box {
	n := len(ring) - 1
	fits := make([]edgeFit, n)

	batchSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += batchSize {
		end := min(start+batchSize, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fits[i] = fitEdge(ring, i)
			}
		}(start, end)
	}
	wg.Wait()

	bestIdx := 0
	for i := 1; i < n; i++ {
		if o.smaller(fits[i].area, fits[bestIdx].area) {
			bestIdx = i
		}
	}
	fit := fits[bestIdx]
	return RotateBox(fit.box, fit.origin, fit.theta)
}

// fitEdge aligns edge i of ring with the x-axis and boxes the whole ring
func fitEdge(ring []models.Point, i int) edgeFit {
	origin := ring[i]
	theta := Angle(ring[i+1], origin)
	box := bounds(RotatePoints(ring, origin, -theta))
	return edgeFit{
		origin: origin,
		theta:  theta,
		box:    box,
		area:   BoxArea(box),
	}
}
