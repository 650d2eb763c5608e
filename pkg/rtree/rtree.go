// Package rtree implements a thread-safe in-memory R-Tree of polygons keyed
// by the envelope of their minimum oriented bounding box
package rtree

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/1F47E/geo-mobb/pkg/geometry"
	"github.com/1F47E/geo-mobb/pkg/models"
	"github.com/dhconnelly/rtreego"
	"golang.org/x/sync/errgroup"
)

const (
	minChildren = 25
	maxChildren = 50
	dimensions  = 2

	// rtreego rejects zero-length sides; flat envelopes are widened to this
	minExtent = 1e-9
)

// ErrMissingID is returned when a shape without an ID is inserted
var ErrMissingID = errors.New("shape has no id")

// Entry is an indexed shape together with its derived geometry
type Entry struct {
	Shape    models.Shape `json:"shape" yaml:"shape"`
	Box      models.Box   `json:"box" yaml:"box"`
	Area     float64      `json:"area" yaml:"area"`
	Centroid models.Point `json:"centroid" yaml:"centroid"`

	// Envelope is the axis-aligned box around Box
	Envelope models.Box `json:"envelope" yaml:"envelope"`
}

// spatialEntry wraps an Entry to implement rtreego.Spatial
type spatialEntry struct {
	*Entry
	rect *rtreego.Rect
}

func (se *spatialEntry) Bounds() *rtreego.Rect {
	return se.rect
}

// ShapeIndex is a thread-safe R-Tree based index of shapes
type ShapeIndex struct {
	tree      *rtreego.Rtree
	byID      map[string]*spatialEntry
	opts      geometry.Options
	mu        sync.RWMutex
	itemCount atomic.Int64
}

// NewShapeIndex creates an index using exact geometry comparisons
func NewShapeIndex() *ShapeIndex {
	return NewShapeIndexWithOptions(geometry.DefaultOptions())
}

// NewShapeIndexWithOptions creates an index that computes bounding boxes
// with opts
func NewShapeIndexWithOptions(opts geometry.Options) *ShapeIndex {
	return &ShapeIndex{
		tree: rtreego.NewTree(dimensions, minChildren, maxChildren),
		byID: make(map[string]*spatialEntry),
		opts: opts,
	}
}

// Insert computes the shape's minimum bounding box and adds it to the
// index, replacing any shape with the same ID
func (s *ShapeIndex) Insert(shape models.Shape) (Entry, error) {
	se, err := s.newEntry(shape)
	if err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(se)
	return *se.Entry, nil
}

// InsertBatch computes bounding boxes for all shapes in parallel and then
// inserts them. If any shape is invalid nothing is inserted
func (s *ShapeIndex) InsertBatch(shapes []models.Shape) error {
	if len(shapes) == 0 {
		return nil
	}

	entries := make([]*spatialEntry, len(shapes))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range shapes {
		i := i
		g.Go(func() error {
			se, err := s.newEntry(shapes[i])
			if err != nil {
				return fmt.Errorf("shape %d: %w", i, err)
			}
			entries[i] = se
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Insert into the tree (this part must be synchronized)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, se := range entries {
		s.put(se)
	}
	return nil
}

// Get returns the entry stored under id
func (s *ShapeIndex) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	se, ok := s.byID[id]
	if !ok {
		return Entry{}, false
	}
	return *se.Entry, true
}

// Remove deletes the shape stored under id and reports whether it existed
func (s *ShapeIndex) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	se, ok := s.byID[id]
	if !ok {
		return false
	}
	s.tree.Delete(se)
	delete(s.byID, id)
	s.itemCount.Store(int64(len(s.byID)))
	return true
}

// QueryIntersect returns the entries whose envelope intersects the
// axis-aligned envelope of region, ordered by ID
func (s *ShapeIndex) QueryIntersect(region models.Box) ([]Entry, error) {
	return s.query(region, func(e *Entry, env models.Box) bool {
		return e.Envelope[0].X <= env[2].X && e.Envelope[2].X >= env[0].X &&
			e.Envelope[0].Y <= env[2].Y && e.Envelope[2].Y >= env[0].Y
	})
}

// QueryWithin returns the entries whose oriented box lies entirely inside
// the axis-aligned envelope of region, ordered by ID
func (s *ShapeIndex) QueryWithin(region models.Box) ([]Entry, error) {
	return s.query(region, func(e *Entry, env models.Box) bool {
		for _, c := range e.Box {
			if c.X < env[0].X || c.X > env[2].X || c.Y < env[0].Y || c.Y > env[2].Y {
				return false
			}
		}
		return true
	})
}

// NearestNeighbors returns up to k entries ordered by the distance from p
// to their envelope. Entries whose envelope contains p come first
func (s *ShapeIndex) NearestNeighbors(p models.Point, k int) []Entry {
	if k <= 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := s.tree.NearestNeighbors(k, rtreego.Point{p.X, p.Y})
	entries := make([]Entry, 0, len(results))
	for _, result := range results {
		se, ok := result.(*spatialEntry)
		if !ok || se == nil {
			continue
		}
		entries = append(entries, *se.Entry)
	}
	return entries
}

// Count returns the number of indexed shapes
func (s *ShapeIndex) Count() int64 {
	return s.itemCount.Load()
}

// Clear removes all shapes from the index
func (s *ShapeIndex) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree = rtreego.NewTree(dimensions, minChildren, maxChildren)
	s.byID = make(map[string]*spatialEntry)
	s.itemCount.Store(0)
}

func (s *ShapeIndex) query(region models.Box, keep func(*Entry, models.Box) bool) ([]Entry, error) {
	env, err := geometry.BoundingBox(region.Points())
	if err != nil {
		return nil, err
	}
	rect, err := searchRect(env)
	if err != nil {
		return nil, fmt.Errorf("invalid query region: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := s.tree.SearchIntersect(rect)

	// Filter candidates against the unpadded region
	entries := make([]Entry, 0, len(results))
	for _, result := range results {
		se, ok := result.(*spatialEntry)
		if !ok || se.Entry == nil {
			continue
		}
		if keep(se.Entry, env) {
			entries = append(entries, *se.Entry)
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Shape.ID, b.Shape.ID)
	})
	return entries, nil
}

// put stores se, replacing an entry with the same ID. Callers hold s.mu
func (s *ShapeIndex) put(se *spatialEntry) {
	if old, ok := s.byID[se.Shape.ID]; ok {
		s.tree.Delete(old)
	}
	s.byID[se.Shape.ID] = se
	s.tree.Insert(se)
	s.itemCount.Store(int64(len(s.byID)))
}

func (s *ShapeIndex) newEntry(shape models.Shape) (*spatialEntry, error) {
	if shape.ID == "" {
		return nil, ErrMissingID
	}

	points := slices.Clone(shape.Points)
	box, err := s.opts.MinBoundingBox(points)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", shape.ID, err)
	}
	centroid, err := geometry.Centroid(points)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", shape.ID, err)
	}
	env, err := geometry.BoundingBox(box.Points())
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", shape.ID, err)
	}
	rect, err := envelopeRect(env)
	if err != nil {
		return nil, fmt.Errorf("shape %q: invalid envelope: %w", shape.ID, err)
	}

	return &spatialEntry{
		Entry: &Entry{
			Shape:    models.Shape{ID: shape.ID, Points: points},
			Box:      box,
			Area:     geometry.BoxArea(box),
			Centroid: centroid,
			Envelope: env,
		},
		rect: rect,
	}, nil
}

// envelopeRect converts an axis-aligned box into an R-Tree rectangle
func envelopeRect(env models.Box) (*rtreego.Rect, error) {
	bottomLeft := rtreego.Point{env[0].X, env[0].Y}
	lengths := []float64{
		max(env[2].X-env[0].X, minExtent),
		max(env[2].Y-env[0].Y, minExtent),
	}
	return rtreego.NewRect(bottomLeft, lengths)
}

// searchRect widens env by minExtent on every side. rtreego does not report
// rectangles that only touch, so the exact filter decides boundary cases
func searchRect(env models.Box) (*rtreego.Rect, error) {
	bottomLeft := rtreego.Point{env[0].X - minExtent, env[0].Y - minExtent}
	lengths := []float64{
		env[2].X - env[0].X + 2*minExtent,
		env[2].Y - env[0].Y + 2*minExtent,
	}
	return rtreego.NewRect(bottomLeft, lengths)
}
