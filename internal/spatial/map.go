// Package spatial provides a grid-bucketed index over region
// rectangles for fast approximate visibility queries. It is the
// broad-phase half of culling: queries return a conservative superset
// of the regions intersecting a viewport, never omitting a true
// intersection, and callers filter the few candidates precisely.
package spatial

import (
	"sort"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/halfcell/chop/internal/layout"
)

// Grid bucket dimensions, in cells. Sized so a typical terminal
// viewport touches a handful of buckets per query.
const (
	DefaultCellWidth  = 64
	DefaultCellHeight = 16
)

// Option configures a Map at build time.
type Option func(*Map)

// WithCellSize overrides the grid bucket dimensions. Values below one
// are ignored.
func WithCellSize(width, height int) Option {
	return func(m *Map) {
		if width > 0 {
			m.cellW = width
		}
		if height > 0 {
			m.cellH = height
		}
	}
}

type entry struct {
	id   layout.RegionID
	rect cellbuf.Rectangle
}

// Map buckets region rectangles into a fixed grid. Once built it is
// read-only: concurrent queries are safe, and it must be rebuilt after
// any region rectangle changes.
type Map struct {
	cellW, cellH int

	// entries holds the indexed regions in the order they were given,
	// which callers rely on being the stacking order.
	entries []entry

	// buckets maps a grid coordinate to the entry indexes whose
	// rectangle overlaps that bucket, in ascending order.
	buckets map[cellbuf.Position][]int
}

// New builds an index over the given regions. Region rectangles must
// be final for this layout pass. Zero-area regions land in no bucket.
func New(regions []layout.Region, opts ...Option) *Map {
	m := &Map{
		cellW:   DefaultCellWidth,
		cellH:   DefaultCellHeight,
		buckets: make(map[cellbuf.Position][]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, region := range regions {
		if region.Empty() {
			continue
		}
		m.entries = append(m.entries, entry{id: region.ID, rect: region.Rect})
		idx := len(m.entries) - 1
		m.eachBucket(region.Rect, func(pos cellbuf.Position) {
			m.buckets[pos] = append(m.buckets[pos], idx)
		})
	}
	return m
}

// Query returns the identifiers of all regions whose rectangle might
// intersect the viewport, in the stacking order they were indexed in.
// The result is a conservative superset: it never omits a region that
// intersects the viewport, but may include ones that only share a grid
// bucket with it.
func (m *Map) Query(viewport cellbuf.Rectangle) []layout.RegionID {
	return m.query(viewport, false)
}

// QueryExact is Query followed by a precise rectangle-intersection
// filter, returning only regions that actually intersect the viewport.
func (m *Map) QueryExact(viewport cellbuf.Rectangle) []layout.RegionID {
	return m.query(viewport, true)
}

// Len returns the number of indexed regions.
func (m *Map) Len() int {
	return len(m.entries)
}

func (m *Map) query(viewport cellbuf.Rectangle, exact bool) []layout.RegionID {
	if viewport.Empty() || len(m.entries) == 0 {
		return nil
	}
	seen := make(map[int]struct{})
	var hits []int
	m.eachBucket(viewport, func(pos cellbuf.Position) {
		for _, idx := range m.buckets[pos] {
			if _, ok := seen[idx]; ok {
				continue
			}
			seen[idx] = struct{}{}
			if exact && !m.entries[idx].rect.Overlaps(viewport) {
				continue
			}
			hits = append(hits, idx)
		}
	})
	// Bucket traversal order is arbitrary; restore stacking order.
	sort.Ints(hits)
	ids := make([]layout.RegionID, len(hits))
	for i, idx := range hits {
		ids[i] = m.entries[idx].id
	}
	return ids
}

// eachBucket visits every grid coordinate the rectangle overlaps.
func (m *Map) eachBucket(rect cellbuf.Rectangle, visit func(cellbuf.Position)) {
	if rect.Empty() {
		return
	}
	minX := floorDiv(rect.Min.X, m.cellW)
	maxX := floorDiv(rect.Max.X-1, m.cellW)
	minY := floorDiv(rect.Min.Y, m.cellH)
	maxY := floorDiv(rect.Max.Y-1, m.cellH)
	for gy := minY; gy <= maxY; gy++ {
		for gx := minX; gx <= maxX; gx++ {
			visit(cellbuf.Pos(gx, gy))
		}
	}
}

// floorDiv divides rounding toward negative infinity, so buckets tile
// correctly across negative coordinates.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
