package region

import "github.com/mrjoshuak/fog/internal/refcount"

// Region is a copy-on-write set of non-overlapping Boxes, stored Y-X
// sorted and maximally coalesced. The zero value is the empty Region, so
// var r region.Region is ready to use without a constructor.
//
// Region is a small value type (one pointer) cheap to pass around and
// copy; the backing band list is only copied (detached) the first time a
// mutating method is called on a Region that shares it with another.
type Region struct {
	data *data
}

// data is the shared backing block. A nil *data means "empty region";
// Region never allocates a data block to represent emptiness, unlike the
// original's sharedNull singleton — Go's nil already serves that role.
type data struct {
	handle *refcount.Handle
	boxes  []Box
	extent Box
}

// fromBoxes builds a Region directly from an already Y-X-sorted,
// maximally-coalesced, non-overlapping box list and its extent. Internal
// constructors use this once they've finished building; it does not
// re-validate the invariants.
func fromBoxes(boxes []Box, extent Box) Region {
	if len(boxes) == 0 {
		return Region{}
	}
	return Region{data: &data{handle: refcount.New(), boxes: boxes, extent: extent}}
}

// FromBox returns a Region containing exactly one Box, or the empty Region
// if b is empty.
func FromBox(b Box) Region {
	if b.Empty() {
		return Region{}
	}
	return fromBoxes([]Box{b}, b)
}

// FromBoxes returns the union of an arbitrary, possibly-overlapping set of
// boxes, normalized to the canonical Y-X-banded form.
func FromBoxes(boxes []Box) Region {
	var r Region
	for _, b := range boxes {
		r = r.Unite(FromBox(b))
	}
	return r
}

// IsEmpty reports whether the Region covers no area.
func (r Region) IsEmpty() bool { return r.data == nil }

// IsRect reports whether the Region is exactly one rectangle.
func (r Region) IsRect() bool { return r.data != nil && len(r.data.boxes) == 1 }

// Extents returns the smallest Box enclosing the whole Region.
func (r Region) Extents() Box {
	if r.data == nil {
		return Box{}
	}
	return r.data.extent
}

// Boxes returns the Region's boxes in Y-X order. The returned slice must
// not be modified; it may be shared with other Regions.
func (r Region) Boxes() []Box {
	if r.data == nil {
		return nil
	}
	return r.data.boxes
}

// NumBoxes returns the number of boxes in the Region.
func (r Region) NumBoxes() int {
	if r.data == nil {
		return 0
	}
	return len(r.data.boxes)
}

// Equals reports whether r and o cover exactly the same area. Because
// every Region is kept in canonical Y-X-banded, coalesced form, this is a
// structural comparison of the box lists, not a geometric one.
func (r Region) Equals(o Region) bool {
	if r.data == o.data {
		return true
	}
	if r.IsEmpty() != o.IsEmpty() {
		return false
	}
	if r.IsEmpty() {
		return true
	}
	if r.data.extent != o.data.extent || len(r.data.boxes) != len(o.data.boxes) {
		return false
	}
	for i, b := range r.data.boxes {
		if b != o.data.boxes[i] {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether (x, y) lies within the Region. Boxes are
// sorted Y-X, so this could binary-search the band; a Region's box count
// is small enough in practice (clip paths, widget frames) that a linear
// scan stays simple and just as fast.
func (r Region) ContainsPoint(x, y int32) bool {
	if r.data == nil || !r.data.extent.Contains(x, y) {
		return false
	}
	for _, b := range r.data.boxes {
		if b.Y2 <= y {
			continue
		}
		if b.Y1 > y {
			break
		}
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

// ContainsBoxResult classifies how a Box relates to a Region.
type ContainsBoxResult int

const (
	// BoxOut means the Region and the Box don't overlap at all.
	BoxOut ContainsBoxResult = iota
	// BoxIn means the Box lies entirely within the Region.
	BoxIn
	// BoxPart means the Box partially overlaps the Region.
	BoxPart
)

// ContainsBox classifies how b relates to r.
func (r Region) ContainsBox(b Box) ContainsBoxResult {
	if b.Empty() {
		return BoxOut
	}
	boxRegion := FromBox(b)
	if r.data == nil || !r.data.extent.Intersects(b) {
		return BoxOut
	}
	remaining := boxRegion.Subtract(r)
	switch {
	case remaining.IsEmpty():
		return BoxIn
	case remaining.Equals(boxRegion):
		return BoxOut
	default:
		return BoxPart
	}
}
