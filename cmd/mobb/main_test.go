package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/1F47E/geo-mobb/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flags keep their values between runs
	outputFormat, tolerance, numWorkers, verbose = "text", 0, 1, false
	rotateOrigin, rotateTheta, rotateDegrees = "0,0", 0, false
	numPolygons, numVertices, numQueries, benchSeed = 1000, 64, 1000, 1

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAreaText(t *testing.T) {
	out, err := execute(t, "area", "0,0", "2,0", "2,2", "0,2")
	require.NoError(t, err)
	assert.Equal(t, "area: 4\n", out)
}

func TestCentroidJSON(t *testing.T) {
	out, err := execute(t, "-o", "json", "centroid", "0,0", "2,0", "2,2", "0,2")
	require.NoError(t, err)

	var c models.Point
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, models.Pt(1, 1), c)
}

func TestBBoxYAML(t *testing.T) {
	out, err := execute(t, "bbox", "-o", "yaml", "3,1", "0,2", "1,0")
	require.NoError(t, err)

	var res boxResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, models.Box{models.Pt(0, 0), models.Pt(0, 2), models.Pt(3, 2), models.Pt(3, 0)}, res.Box)
	assert.Equal(t, 6.0, res.Area)
	assert.NotContains(t, out, "axis_aligned_area")
}

func TestMBoxJSON(t *testing.T) {
	out, err := execute(t, "mbox", "-o", "json", "--", "0,0", "3,3", "2,4", "-1,1")
	require.NoError(t, err)

	var res boxResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 6.0, res.Area, 1e-9)
	assert.Equal(t, 16.0, res.AxisAlignedArea)
}

func TestMBoxParallelMatchesSerial(t *testing.T) {
	args := []string{"mbox", "-o", "json", "--", "0.3,0.1", "5,-1", "7.5,2", "4,6.25", "-1,3"}

	serial, err := execute(t, args...)
	require.NoError(t, err)

	parallel, err := execute(t, append([]string{"-w", "4"}, args...)...)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

func TestIntersect(t *testing.T) {
	out, err := execute(t, "intersect", "0,0", "2,2", "0,2", "2,0")
	require.NoError(t, err)
	assert.Equal(t, "intersection: (1, 1)\n", out)

	out, err = execute(t, "intersect", "-o", "json", "0,0", "1,0", "0,1", "1,1")
	require.NoError(t, err)

	var res intersectResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Intersects)
	assert.Nil(t, res.Point)
}

func TestAngle(t *testing.T) {
	out, err := execute(t, "angle", "-o", "json", "0,1", "0,0")
	require.NoError(t, err)

	var res angleResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 90.0, res.Degrees, 1e-9)
}

func TestRotate(t *testing.T) {
	out, err := execute(t, "rotate", "-o", "json", "--origin", "1,1", "--theta", "180", "--degrees", "2,1", "1,3")
	require.NoError(t, err)

	var points []models.Point
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	require.Len(t, points, 2)
	assert.InDelta(t, 0.0, points[0].X, 1e-9)
	assert.InDelta(t, 1.0, points[0].Y, 1e-9)
	assert.InDelta(t, 1.0, points[1].X, 1e-9)
	assert.InDelta(t, -1.0, points[1].Y, 1e-9)
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		msg  string
	}{
		{"bad format", []string{"-o", "xml", "area", "0,0", "1,0", "1,1"}, "unknown output format"},
		{"bad point", []string{"centroid", "1;2"}, "invalid point"},
		{"too few points", []string{"mbox", "0,0", "1,1"}, "requires at least 3 arg(s)"},
		{"bad origin", []string{"rotate", "--origin", "x", "1,1"}, "invalid --origin"},
		{"bench vertices", []string{"bench", "-p", "2"}, "need at least 1 polygon"},
		{"bench queries", []string{"bench", "-n", "5", "-p", "4", "--queries=-1"}, "invalid number of queries"},
		{"negative tolerance", []string{"--tolerance=-1", "intersect", "0,0", "1,0", "0,1", "1,1"}, "invalid tolerance"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "-o", "json", "-n", "50", "-p", "12", "-q", "20", "-w", "3")
	require.NoError(t, err)

	var res BenchmarkResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 50, res.Polygons)
	assert.Equal(t, 3, res.Workers)
	assert.Equal(t, 20, res.Queries)
	assert.Equal(t, 0, res.Mismatches)
}

func TestBenchNoQueries(t *testing.T) {
	out, err := execute(t, "bench", "-o", "json", "-n", "5", "-p", "4", "-q", "0")
	require.NoError(t, err)

	var res BenchmarkResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 0, res.Queries)
	assert.Equal(t, 0.0, res.QueriesPerSec)
	assert.Equal(t, 0.0, res.AvgResults)
}
