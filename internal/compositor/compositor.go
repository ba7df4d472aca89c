// Package compositor merges overlapping styled regions into
// conflict-free frames for a character-cell terminal.
//
// Composition is a pure, synchronous computation: given a back-to-front
// list of regions and a target rectangle it produces, for every row,
// a single non-overlapping sequence of styled runs covering the row
// exactly. Region rectangles and content must be stable for the
// duration of a pass; the caller owns that snapshot discipline.
package compositor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/halfcell/chop/internal/layout"
	"github.com/halfcell/chop/internal/screen"
	"github.com/halfcell/chop/internal/spatial"
)

// DefaultCacheCapacity bounds the line cache when Options leaves it
// unset.
const DefaultCacheCapacity = 4096

// Options configure a Compositor.
type Options struct {
	// BackgroundRune fills cells no region covers. Zero means space.
	BackgroundRune rune

	// BackgroundStyle styles the background fill.
	BackgroundStyle lipgloss.Style

	// GridCellWidth and GridCellHeight override the spatial index
	// bucket size. Zero keeps the spatial package defaults.
	GridCellWidth  int
	GridCellHeight int

	// CacheCapacity bounds the region line cache in entries. Zero
	// means DefaultCacheCapacity; negative disables caching.
	CacheCapacity int
}

// Compositor computes frames from stacked regions. It keeps no state
// across calls beyond the line cache, so a Compositor must not be
// shared between goroutines.
type Compositor struct {
	opts  Options
	cache *lineCache
}

// New creates a Compositor with the given options.
func New(opts Options) *Compositor {
	if opts.BackgroundRune == 0 {
		opts.BackgroundRune = ' '
	}
	capacity := opts.CacheCapacity
	if capacity == 0 {
		capacity = DefaultCacheCapacity
	}
	c := &Compositor{opts: opts}
	if capacity > 0 {
		c.cache = newLineCache(capacity)
	}
	return c
}

// Compose merges the regions, given back to front, over the full
// viewport. Region IDs must be unique within a pass. Re-running with
// identical inputs yields identical output.
func (c *Compositor) Compose(regions []layout.Region, viewport cellbuf.Rectangle) Frame {
	return c.compose(regions, viewport)
}

// ComposeRect merges only the rows and columns of viewport that fall
// within dirty, for partial redraws. Splicing the result into a prior
// full frame is equivalent to a fresh full composition as long as
// nothing outside dirty changed.
func (c *Compositor) ComposeRect(regions []layout.Region, viewport, dirty cellbuf.Rectangle) Frame {
	return c.compose(regions, dirty.Intersect(viewport))
}

func (c *Compositor) compose(regions []layout.Region, target cellbuf.Rectangle) Frame {
	frame := Frame{Rect: target}
	if target.Empty() {
		return frame
	}
	frame.Lines = make([]screen.Line, target.Dy())

	index := spatial.New(regions, spatial.WithCellSize(c.opts.GridCellWidth, c.opts.GridCellHeight))
	byID := make(map[layout.RegionID]*layout.Region, len(regions))
	for i := range regions {
		byID[regions[i].ID] = &regions[i]
	}

	for y := target.Min.Y; y < target.Max.Y; y++ {
		row := cellbuf.Rect(target.Min.X, y, target.Dx(), 1)
		candidates := index.QueryExact(row)
		frame.Lines[y-target.Min.Y] = c.composeRow(byID, candidates, target.Min.X, target.Max.X, y)
	}
	return frame
}

// chopSpan is one region's visible horizontal extent on a row, clipped
// to the composition target.
type chopSpan struct {
	region   *layout.Region
	min, max int
}

// composeRow merges the candidate regions' content for one row into a
// single line covering [left, right) exactly.
//
// Cut points are the union of all candidate span edges, so any two
// chops occupying the same slot between adjacent cut points have
// identical width; occlusion then reduces to keeping the topmost chop
// per slot, with no partial-overlap reconciliation.
func (c *Compositor) composeRow(byID map[layout.RegionID]*layout.Region, candidates []layout.RegionID, left, right, y int) screen.Line {
	width := right - left
	if len(candidates) == 0 {
		return c.background(width)
	}

	spans := make([]chopSpan, 0, len(candidates))
	cuts := make([]int, 0, 2*len(candidates)+2)
	cuts = append(cuts, left, right)
	for _, id := range candidates {
		region := byID[id]
		lo := max(region.Rect.Min.X, left)
		hi := min(region.Rect.Max.X, right)
		if lo >= hi {
			continue
		}
		spans = append(spans, chopSpan{region: region, min: lo, max: hi})
		cuts = append(cuts, lo, hi)
	}
	if len(spans) == 0 {
		return c.background(width)
	}
	sort.Ints(cuts)
	cuts = dedupe(cuts)

	// Front to back: the first region to claim a slot owns it. A region
	// claims maximal runs of adjacent unclaimed slots and clips each run
	// once, so a cut point contributed by a fully occluded region never
	// bisects a glyph of the region actually visible there. Claimed
	// continuation slots hold an empty, non-nil line.
	slots := make([]screen.Line, len(cuts)-1)
	remaining := len(slots)
	for i := len(spans) - 1; i >= 0 && remaining > 0; i-- {
		span := spans[i]
		var line screen.Line
		first := sort.SearchInts(cuts, span.min)
		for s := first; s < len(cuts)-1 && cuts[s] < span.max; s++ {
			if slots[s] != nil {
				continue
			}
			if line == nil {
				line = c.regionLine(span.region, y)
			}
			end := s
			for end+1 < len(cuts)-1 && cuts[end+1] < span.max && slots[end+1] == nil {
				end++
			}
			origin := span.region.Rect.Min.X
			slots[s] = line.Clip(cuts[s]-origin, cuts[end+1]-origin)
			remaining--
			for claimed := s + 1; claimed <= end; claimed++ {
				slots[claimed] = screen.Line{}
				remaining--
			}
			s = end
		}
	}

	out := make(screen.Line, 0, len(slots))
	for s, slot := range slots {
		if slot == nil {
			slot = c.background(cuts[s+1] - cuts[s])
		}
		out = append(out, slot...)
	}
	return out
}

// regionLine returns the region's full-width content for a screen row,
// served from the cache when the region's version still matches.
func (c *Compositor) regionLine(region *layout.Region, screenRow int) screen.Line {
	if c.cache == nil {
		return region.LineAt(screenRow)
	}
	key := cacheKey{id: region.ID, version: region.Version, row: screenRow}
	if line, ok := c.cache.get(key); ok {
		return line
	}
	line := region.LineAt(screenRow)
	c.cache.put(key, line)
	return line
}

func (c *Compositor) background(width int) screen.Line {
	return screen.Fill(width, c.opts.BackgroundRune, c.opts.BackgroundStyle)
}

// dedupe removes duplicates from a sorted slice in place.
func dedupe(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
