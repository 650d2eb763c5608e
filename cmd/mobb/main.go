package main

import (
	"fmt"
	"os"

	"github.com/1F47E/geo-mobb/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	tolerance    float64
	numWorkers   int
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "mobb",
	Short: "Planar geometry toolbox: oriented bounding boxes, areas, rotations",
	Long: `Compute minimum oriented bounding boxes and related geometry for point sets.

Points are given as x,y arguments. Put -- before the points when the first
coordinate is negative so it is not read as a flag:

  mobb mbox -- -1,0 2,3 1,4 -2,1`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(outputFormat); err != nil {
			return err
		}
		return options().Validate()
	},
}

var angleCmd = &cobra.Command{
	Use:   "angle P O",
	Short: "Angle of P around origin O",
	Long:  `Print the counter-clockwise angle from the positive x-axis of the vector from O to P, in [0, 2π).`,
	Args:  cobra.ExactArgs(2),
	RunE:  runAngle,
}

var rotateCmd = &cobra.Command{
	Use:   "rotate P...",
	Short: "Rotate points about an origin",
	Long:  `Rotate every point counter-clockwise about --origin by --theta (radians, or degrees with --degrees).`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRotate,
}

var bboxCmd = &cobra.Command{
	Use:   "bbox P...",
	Short: "Axis-aligned bounding box",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBBox,
}

var mboxCmd = &cobra.Command{
	Use:   "mbox P1 P2 P3...",
	Short: "Minimum-area oriented bounding box of a polygon",
	Long: `Search every edge orientation of the polygon for the smallest enclosing rectangle.
The result is exact for convex polygons; for concave input pass the convex hull.`,
	Args: cobra.MinimumNArgs(3),
	RunE: runMBox,
}

var areaCmd = &cobra.Command{
	Use:   "area P1 P2 P3...",
	Short: "Polygon area (shoelace formula)",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runArea,
}

var centroidCmd = &cobra.Command{
	Use:   "centroid P...",
	Short: "Mean of the vertices",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCentroid,
}

var intersectCmd = &cobra.Command{
	Use:   "intersect A B C D",
	Short: "Crossing point of line AB and line CD",
	Long:  `Intersect the infinite lines through A,B and C,D. Parallel or coincident lines have no unique intersection.`,
	Args:  cobra.ExactArgs(4),
	RunE:  runIntersect,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark bounding box search and the shape index",
	Long:  `Generate random convex polygons, time serial and parallel bounding box search, build a shape index and run region queries.`,
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

var (
	rotateOrigin  string
	rotateTheta   float64
	rotateDegrees bool

	numPolygons int
	numVertices int
	numQueries  int
	benchSeed   int64
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().Float64VarP(&tolerance, "tolerance", "t", 0, "Tolerance for area and parallel-line comparisons (0 = exact)")
	rootCmd.PersistentFlags().IntVarP(&numWorkers, "workers", "w", 1, "Worker goroutines for the edge search (-1 = one per CPU)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rotateCmd.Flags().StringVar(&rotateOrigin, "origin", "0,0", "Rotation origin as x,y")
	rotateCmd.Flags().Float64Var(&rotateTheta, "theta", 0, "Rotation angle, counter-clockwise")
	rotateCmd.Flags().BoolVar(&rotateDegrees, "degrees", false, "Interpret --theta in degrees")

	benchCmd.Flags().IntVarP(&numPolygons, "polygons", "n", 1000, "Number of polygons to generate")
	benchCmd.Flags().IntVarP(&numVertices, "vertices", "p", 64, "Vertices per polygon")
	benchCmd.Flags().IntVarP(&numQueries, "queries", "q", 1000, "Number of region queries to run")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "Random seed")

	rootCmd.AddCommand(angleCmd, rotateCmd, bboxCmd, mboxCmd, areaCmd, centroidCmd, intersectCmd, benchCmd)
}

func options() geometry.Options {
	opts := geometry.DefaultOptions()
	opts.Tolerance = tolerance
	opts.Workers = numWorkers
	return opts
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
