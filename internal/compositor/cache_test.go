package compositor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halfcell/chop/internal/screen"
)

func TestLineCache_GetPut(t *testing.T) {
	c := newLineCache(4)
	key := cacheKey{id: 1, version: 1, row: 0}

	_, ok := c.get(key)
	assert.False(t, ok)

	c.put(key, screen.Line{&screen.Segment{Text: "ab"}})
	line, ok := c.get(key)
	assert.True(t, ok)
	assert.Equal(t, "ab", line.Text())

	// A different version is a different entry.
	_, ok = c.get(cacheKey{id: 1, version: 2, row: 0})
	assert.False(t, ok)
}

func TestLineCache_DropsAllWhenFull(t *testing.T) {
	c := newLineCache(2)
	c.put(cacheKey{id: 1, row: 0}, nil)
	c.put(cacheKey{id: 1, row: 1}, nil)
	assert.Equal(t, 2, c.len())

	c.put(cacheKey{id: 1, row: 2}, nil)
	assert.Equal(t, 1, c.len())

	_, ok := c.get(cacheKey{id: 1, row: 0})
	assert.False(t, ok)
	_, ok = c.get(cacheKey{id: 1, row: 2})
	assert.True(t, ok)
}
