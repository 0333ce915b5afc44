package region

import "github.com/mrjoshuak/fog/internal/refcount"

// Clone returns a Region sharing r's backing data block and marks it
// retained, so that a later in-place mutation through either Region detaches
// (copies) before writing rather than corrupting the other's view. Plain Go
// assignment (r2 := r1) does not retain — only Clone does — so Clone is the
// explicit "I intend to keep a second handle to this" operation; an
// unshared Region mutated in place never pays the copy.
func (r Region) Clone() Region {
	if r.data != nil {
		r.data.handle.Retain()
	}
	return r
}

// detach ensures r's data block is exclusively owned before an in-place
// write touches its fields: a writer requires the caller to have detached
// (COW), the same refcounted copy-on-write lifecycle image.Buffer follows.
// A Region nobody has Cloned detaches for free — Shared reports false and
// detach does nothing.
func (r *Region) detach() {
	if r.data == nil || !r.data.handle.Shared() {
		return
	}
	boxes := make([]Box, len(r.data.boxes))
	copy(boxes, r.data.boxes)
	r.data.handle.Release()
	r.data = &data{handle: refcount.New(), boxes: boxes, extent: r.data.extent}
}

// Set replaces r's contents with o's, releasing whatever r held before.
func (r *Region) Set(o Region) {
	if r.data == o.data {
		return
	}
	if r.data != nil {
		r.data.handle.Release()
	}
	if o.data != nil {
		o.data.handle.Retain()
	}
	r.data = o.data
}

// Clear empties r, releasing its data block.
func (r *Region) Clear() { r.Set(Region{}) }

// SetBox replaces r's contents with exactly one Box, or empties r if b is
// empty.
func (r *Region) SetBox(b Box) { r.Set(FromBox(b)) }

// SetRegion is Set under the name given to the region-argument overload of
// set(box|rect|region).
func (r *Region) SetRegion(o Region) { r.Set(o) }

// SetUnite sets r to the union of a and b — the three-argument form of
// Unite, alongside the in-place and value-returning forms. All three share
// the same band-walking kernel in algebra.go.
func (r *Region) SetUnite(a, b Region) { r.replaceWith(a.Unite(b)) }

// SetIntersect sets r to the intersection of a and b.
func (r *Region) SetIntersect(a, b Region) { r.replaceWith(a.Intersect(b)) }

// SetSubtract sets r to a with b's area removed.
func (r *Region) SetSubtract(a, b Region) { r.replaceWith(a.Subtract(b)) }

// SetXor sets r to the symmetric difference of a and b.
func (r *Region) SetXor(a, b Region) { r.replaceWith(a.Xor(b)) }

// UniteWith is the in-place form of Unite: r = r.Unite(o). The three-arg
// kernel tolerates dst aliasing either input, since combine always builds
// a fresh box list before replaceWith ever touches *r.
func (r *Region) UniteWith(o Region) { r.replaceWith(r.Unite(o)) }

// IntersectWith is the in-place form of Intersect.
func (r *Region) IntersectWith(o Region) { r.replaceWith(r.Intersect(o)) }

// SubtractWith is the in-place form of Subtract.
func (r *Region) SubtractWith(o Region) { r.replaceWith(r.Subtract(o)) }

// XorWith is the in-place form of Xor.
func (r *Region) XorWith(o Region) { r.replaceWith(r.Xor(o)) }

// replaceWith installs result's boxes and extent into r's own data block,
// detaching first so a Region someone Cloned from r keeps seeing r as it was
// at Clone time instead of observing the mutation.
func (r *Region) replaceWith(result Region) {
	if result.IsEmpty() {
		r.Clear()
		return
	}
	r.detach()
	if r.data == nil {
		r.data = &data{handle: refcount.New()}
	}
	r.data.boxes = result.data.boxes
	r.data.extent = result.data.extent
}
