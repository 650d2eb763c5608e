// Package geometry implements planar helpers over point sequences: polar
// angles, rotation about an origin, axis-aligned and minimum-area oriented
// bounding boxes, shoelace area, vertex centroids and line intersection.
//
// Point sequences describe polygons in order. The ring is implicit; a
// polygon is never passed with its first point repeated at the end.
//
// The minimum oriented bounding box is found by aligning each polygon edge
// with the x-axis in turn and keeping the smallest axis-aligned box. For
// convex polygons one side of the optimal rectangle is collinear with an
// edge, so this finds the true minimum. Non-convex input is accepted as is
// and the result is then only an upper bound; pass a convex hull if the
// exact minimum matters.
//
// All comparisons are exact by default. Options.Tolerance relaxes the area
// comparison in MinBoundingBox and the parallel-line test in IntersectLines
package geometry
