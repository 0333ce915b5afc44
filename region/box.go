// Package region implements the Y-X-banded rectangle-list geometry engine
// used to describe clip areas: a Region is a set of non-overlapping boxes,
// stored sorted top-to-bottom then left-to-right and maximally coalesced,
// so that two Regions covering the same area always compare structurally
// equal.
//
// Grounded on the classic X11/X-Consortium region algorithm
// (original_source's Fog/Fog/Graphics/Region.cpp, itself descended from
// miregion.c): a band is a maximal run of boxes sharing the same Y1/Y2,
// and a canonical region never has two adjacent bands with identical X
// spans (those get merged into one taller box by _coalesce).
package region

// Box is an axis-aligned rectangle, half-open on both the right and the
// bottom: it covers x in [X1, X2) and y in [Y1, Y2). A Box with X1>=X2 or
// Y1>=Y2 is empty.
type Box struct {
	X1, Y1, X2, Y2 int32
}

// NewBox returns the Box [x1, x2) x [y1, y2).
func NewBox(x1, y1, x2, y2 int32) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Empty reports whether the Box covers no area.
func (b Box) Empty() bool { return b.X1 >= b.X2 || b.Y1 >= b.Y2 }

// Width returns X2-X1, or 0 if the Box is empty.
func (b Box) Width() int32 {
	if b.Empty() {
		return 0
	}
	return b.X2 - b.X1
}

// Height returns Y2-Y1, or 0 if the Box is empty.
func (b Box) Height() int32 {
	if b.Empty() {
		return 0
	}
	return b.Y2 - b.Y1
}

// Contains reports whether the point (x, y) lies within the Box.
func (b Box) Contains(x, y int32) bool {
	return x >= b.X1 && x < b.X2 && y >= b.Y1 && y < b.Y2
}

// Intersects reports whether b and o overlap.
func (b Box) Intersects(o Box) bool {
	return b.X1 < o.X2 && o.X1 < b.X2 && b.Y1 < o.Y2 && o.Y1 < b.Y2
}

// Intersect returns the overlapping area of b and o, or the empty Box if
// they don't overlap.
func (b Box) Intersect(o Box) Box {
	x1, y1 := max(b.X1, o.X1), max(b.Y1, o.Y1)
	x2, y2 := min(b.X2, o.X2), min(b.Y2, o.Y2)
	if x1 >= x2 || y1 >= y2 {
		return Box{}
	}
	return Box{x1, y1, x2, y2}
}

// BoundingBox returns the smallest Box covering both b and o. Unlike
// Region.Unite, this discards the shape of the union, keeping only its
// extent.
func (b Box) BoundingBox(o Box) Box {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Box{min(b.X1, o.X1), min(b.Y1, o.Y1), max(b.X2, o.X2), max(b.Y2, o.Y2)}
}

// Translated returns b shifted by (dx, dy).
func (b Box) Translated(dx, dy int32) Box {
	return Box{b.X1 + dx, b.Y1 + dy, b.X2 + dx, b.Y2 + dy}
}

// Inset returns b shrunk by dx on the left/right edges and dy on the
// top/bottom edges (negative values grow the Box).
func (b Box) Inset(dx, dy int32) Box {
	return Box{b.X1 + dx, b.Y1 + dy, b.X2 - dx, b.Y2 - dy}
}
