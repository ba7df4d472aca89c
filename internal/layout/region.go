// Package layout defines the rectangular content regions the compositor
// merges into frames. Regions are immutable-for-the-frame snapshots: the
// enclosing application recomputes their rectangles on resize or
// structural change and hands them over in back-to-front stacking order.
package layout

import (
	"image"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/halfcell/chop/internal/screen"
)

// RegionID identifies one content-producing region for the duration of
// its mount.
type RegionID int

// LineSource produces the styled content of a region one row at a time.
// Rows are region-local, starting at zero, before scrolling. A source
// returns nil for rows it has no content for.
//
// Sources must be pure for the duration of a composition pass: the
// compositor may call Line any number of times (or not at all, when a
// cached copy exists) and in any row order.
type LineSource interface {
	Line(row int) screen.Line
}

// Region is an axis-aligned rectangle of terminal cells owned by one
// content producer.
type Region struct {
	ID RegionID

	// Rect is the region's screen rectangle, finalized for this frame
	// and already clipped to any parent.
	Rect cellbuf.Rectangle

	// Scroll offsets the content relative to the rectangle: the cell at
	// the rectangle's origin shows content cell (Scroll.X, Scroll.Y).
	Scroll image.Point

	// Version identifies the generation of this region's content and
	// geometry. It must change whenever the rectangle, scroll offset,
	// or produced lines change; the compositor caches computed lines
	// keyed by it.
	Version uint64

	Source LineSource
}

// Rect is a convenience constructor for a rectangle at x,y with the
// given width and height.
func Rect(x, y, w, h int) cellbuf.Rectangle {
	return cellbuf.Rect(x, y, w, h)
}

// Empty reports whether the region has zero area and therefore
// produces no visible output.
func (r Region) Empty() bool {
	return r.Rect.Dx() <= 0 || r.Rect.Dy() <= 0
}

// LineAt returns the region's content for the given absolute screen
// row: the source line for that row, scrolled, clipped and padded to
// exactly the region's width. Rows outside the rectangle, and rows the
// source has nothing for, come back as blank padding rather than nil,
// so a misbehaving source can never shift later content horizontally.
func (r Region) LineAt(screenRow int) screen.Line {
	width := r.Rect.Dx()
	if width <= 0 {
		return screen.Line{}
	}
	row := screenRow - r.Rect.Min.Y + r.Scroll.Y
	var line screen.Line
	if r.Source != nil && row >= 0 {
		line = r.Source.Line(row)
	}
	if r.Scroll.X != 0 || line.Width() > width {
		return line.Clip(r.Scroll.X, r.Scroll.X+width)
	}
	return line.PadTo(width)
}

// ClipTo clips the region to a parent rectangle, adjusting the scroll
// offset so the surviving cells keep showing the same content.
func (r Region) ClipTo(parent cellbuf.Rectangle) Region {
	clipped := r.Rect.Intersect(parent)
	if clipped.Empty() {
		r.Rect = cellbuf.Rectangle{}
		return r
	}
	r.Scroll.X += clipped.Min.X - r.Rect.Min.X
	r.Scroll.Y += clipped.Min.Y - r.Rect.Min.Y
	r.Rect = clipped
	return r
}
