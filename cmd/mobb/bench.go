package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/1F47E/geo-mobb/pkg/geometry"
	"github.com/1F47E/geo-mobb/pkg/models"
	"github.com/1F47E/geo-mobb/pkg/rtree"
	"github.com/spf13/cobra"
)

const worldSize = 10000.0

type BenchmarkResult struct {
	Polygons         int           `json:"polygons" yaml:"polygons"`
	Vertices         int           `json:"vertices" yaml:"vertices"`
	Workers          int           `json:"workers" yaml:"workers"`
	SerialDuration   time.Duration `json:"serial_duration" yaml:"serial_duration"`
	ParallelDuration time.Duration `json:"parallel_duration" yaml:"parallel_duration"`
	IndexDuration    time.Duration `json:"index_duration" yaml:"index_duration"`
	Queries          int           `json:"queries" yaml:"queries"`
	QueryDuration    time.Duration `json:"query_duration" yaml:"query_duration"`
	QueriesPerSec    float64       `json:"queries_per_sec" yaml:"queries_per_sec"`
	TotalResults     int64         `json:"total_results" yaml:"total_results"`
	AvgResults       float64       `json:"avg_results" yaml:"avg_results"`
	Mismatches       int           `json:"mismatches" yaml:"mismatches"`
}

func runBench(cmd *cobra.Command, args []string) error {
	if numPolygons < 1 || numVertices < 3 {
		return fmt.Errorf("need at least 1 polygon with 3 vertices, got %d polygons with %d vertices", numPolygons, numVertices)
	}
	if numQueries < 0 {
		return fmt.Errorf("invalid number of queries %d", numQueries)
	}
	workers := numWorkers
	if workers < 2 {
		workers = runtime.NumCPU()
	}

	log.Printf("Generating %d polygons with %d vertices...\n", numPolygons, numVertices)
	shapes := generateRandomShapes(numPolygons, numVertices, benchSeed, workers)

	result := BenchmarkResult{
		Polygons: numPolygons,
		Vertices: numVertices,
		Workers:  workers,
		Queries:  numQueries,
	}

	serialOpts := options()
	serialOpts.Workers = 1
	parallelOpts := options()
	parallelOpts.Workers = workers

	serialBoxes := make([]models.Box, len(shapes))
	start := time.Now()
	for i, s := range shapes {
		box, err := serialOpts.MinBoundingBox(s.Points)
		if err != nil {
			return fmt.Errorf("failed to compute bounding box: %w", err)
		}
		serialBoxes[i] = box
	}
	result.SerialDuration = time.Since(start)

	start = time.Now()
	for i, s := range shapes {
		box, err := parallelOpts.MinBoundingBox(s.Points)
		if err != nil {
			return fmt.Errorf("failed to compute bounding box: %w", err)
		}
		if box != serialBoxes[i] {
			result.Mismatches++
		}
	}
	result.ParallelDuration = time.Since(start)
	if verbose {
		log.Printf("Serial search %v, parallel search %v\n", result.SerialDuration, result.ParallelDuration)
	}

	log.Println("Building shape index...")
	index := rtree.NewShapeIndexWithOptions(serialOpts)
	start = time.Now()
	if err := index.InsertBatch(shapes); err != nil {
		return fmt.Errorf("failed to index shapes: %w", err)
	}
	result.IndexDuration = time.Since(start)

	queries := randomRegions(numQueries, benchSeed+1)
	totalResults, elapsed := runQueries(index, queries, workers)
	result.QueryDuration = elapsed
	result.TotalResults = totalResults
	if numQueries > 0 {
		result.AvgResults = float64(totalResults) / float64(numQueries)
	}
	if numQueries > 0 && elapsed > 0 {
		result.QueriesPerSec = float64(numQueries) / elapsed.Seconds()
	}

	return render(cmd, "Benchmark Results", result, []row{
		{"polygons", fmt.Sprintf("%d x %d vertices", result.Polygons, result.Vertices)},
		{"serial search", result.SerialDuration.String()},
		{"parallel search", fmt.Sprintf("%v (%d workers)", result.ParallelDuration, result.Workers)},
		{"mismatches", fmt.Sprint(result.Mismatches)},
		{"index build", result.IndexDuration.String()},
		{"queries", fmt.Sprintf("%d in %v (%.0f/s)", result.Queries, result.QueryDuration, result.QueriesPerSec)},
		{"average results per query", fmt.Sprintf("%.1f", result.AvgResults)},
	})
}

func runQueries(index *rtree.ShapeIndex, queries []models.Box, workers int) (int64, time.Duration) {
	var totalResults atomic.Int64

	start := time.Now()

	var wg sync.WaitGroup
	queriesPerWorker := (len(queries) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		startIdx := w * queriesPerWorker
		endIdx := min(startIdx+queriesPerWorker, len(queries))
		if startIdx >= endIdx {
			break
		}

		wg.Add(1)
		go func(workerID, start, end int) {
			defer wg.Done()

			localResults := 0
			for i := start; i < end; i++ {
				results, err := index.QueryIntersect(queries[i])
				if err != nil {
					log.Printf("Worker %d: Query error: %v", workerID, err)
					continue
				}
				localResults += len(results)

				if verbose && i%100 == 0 {
					log.Printf("Worker %d: Query %d found %d shapes\n", workerID, i, len(results))
				}
			}
			totalResults.Add(int64(localResults))
		}(w, startIdx, endIdx)
	}

	wg.Wait()
	return totalResults.Load(), time.Since(start)
}

// generateRandomShapes returns n convex polygons with the given number of
// vertices scattered over the world square
func generateRandomShapes(n, vertices int, seed int64, workers int) []models.Shape {
	shapes := make([]models.Shape, n)

	type workRange struct {
		start, end int
	}
	work := make(chan workRange, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			// Each worker gets its own random generator to avoid contention
			r := rand.New(rand.NewSource(seed + int64(workerID)))

			for wr := range work {
				for i := wr.start; i < wr.end; i++ {
					shapes[i] = models.Shape{
						ID:     fmt.Sprintf("shape_%d", i),
						Points: randomConvexPolygon(r, vertices),
					}
				}
			}
		}(w)
	}

	batchSize := (n + workers - 1) / workers
	for start := 0; start < n; start += batchSize {
		work <- workRange{start: start, end: min(start+batchSize, n)}
	}
	close(work)

	wg.Wait()
	return shapes
}

// randomConvexPolygon places vertices on an ellipse with a random
// orientation so bounding boxes are rarely axis aligned
func randomConvexPolygon(r *rand.Rand, vertices int) []models.Point {
	angles := make([]float64, vertices)
	for i := range angles {
		angles[i] = r.Float64() * 2 * math.Pi
	}
	sort.Float64s(angles)

	center := models.Pt(r.Float64()*worldSize, r.Float64()*worldSize)
	rx := r.Float64()*40 + 5
	ry := r.Float64()*20 + 1

	points := make([]models.Point, vertices)
	for i, a := range angles {
		points[i] = models.Pt(center.X+rx*math.Cos(a), center.Y+ry*math.Sin(a))
	}
	return geometry.RotatePoints(points, center, r.Float64()*math.Pi)
}

func randomRegions(n int, seed int64) []models.Box {
	r := rand.New(rand.NewSource(seed))
	regions := make([]models.Box, n)
	for i := range regions {
		size := r.Float64()*190 + 10
		x := r.Float64() * (worldSize - size)
		y := r.Float64() * (worldSize - size)
		regions[i] = models.Box{
			models.Pt(x, y), models.Pt(x, y+size), models.Pt(x+size, y+size), models.Pt(x+size, y),
		}
	}
	return regions
}
