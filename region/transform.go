package region

// Translate returns r shifted by (dx, dy).
func (r Region) Translate(dx, dy int32) Region {
	if r.IsEmpty() {
		return Region{}
	}
	boxes := make([]Box, len(r.data.boxes))
	for i, b := range r.data.boxes {
		boxes[i] = b.Translated(dx, dy)
	}
	return fromBoxes(boxes, r.data.extent.Translated(dx, dy))
}

// Shrink insets every box of r by dx horizontally and dy vertically, then
// re-unites the results. This matches the original's shrink() for the
// common case of boxes that don't touch after insetting; it is not a true
// morphological erosion of the combined area (where two adjacent boxes'
// shared edge would need to disappear together): each box is inset on its
// own, so edges shared between boxes shrink too.
func (r Region) Shrink(dx, dy int32) Region {
	if r.IsEmpty() {
		return Region{}
	}
	var out Region
	for _, b := range r.data.boxes {
		nb := b.Inset(dx, dy)
		if nb.Empty() {
			continue
		}
		out = out.Unite(FromBox(nb))
	}
	return out
}

// Frame returns the border ring obtained by subtracting r.Shrink(dx, dy)
// from r, matching the original's frame().
func (r Region) Frame(dx, dy int32) Region {
	return r.Subtract(r.Shrink(dx, dy))
}
