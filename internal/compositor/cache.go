package compositor

import (
	"github.com/halfcell/chop/internal/layout"
	"github.com/halfcell/chop/internal/screen"
)

type cacheKey struct {
	id      layout.RegionID
	version uint64
	row     int
}

// lineCache memoizes computed region lines so repeated compositions of
// unchanged regions skip their sources entirely. Version churn keeps it
// correct; the capacity bound keeps it small by dropping everything
// once full.
type lineCache struct {
	capacity int
	lines    map[cacheKey]screen.Line
}

func newLineCache(capacity int) *lineCache {
	return &lineCache{
		capacity: capacity,
		lines:    make(map[cacheKey]screen.Line, capacity),
	}
}

func (c *lineCache) get(key cacheKey) (screen.Line, bool) {
	line, ok := c.lines[key]
	return line, ok
}

func (c *lineCache) put(key cacheKey, line screen.Line) {
	if len(c.lines) >= c.capacity {
		clear(c.lines)
	}
	c.lines[key] = line
}

func (c *lineCache) len() int {
	return len(c.lines)
}
