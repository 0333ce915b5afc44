package region

import "sort"

// ispan is a single half-open horizontal run [X1, X2) within one row of
// the breakpoint sweep below.
type ispan struct {
	X1, X2 int32
}

// Unite returns the set union of r and o.
func (r Region) Unite(o Region) Region {
	switch {
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	default:
		return combine(r, o, unionSpans)
	}
}

// Intersect returns the set intersection of r and o.
func (r Region) Intersect(o Region) Region {
	if r.IsEmpty() || o.IsEmpty() || !r.Extents().Intersects(o.Extents()) {
		return Region{}
	}
	return combine(r, o, intersectSpans)
}

// Subtract returns the area of r with o removed.
func (r Region) Subtract(o Region) Region {
	switch {
	case r.IsEmpty():
		return Region{}
	case o.IsEmpty():
		return r
	default:
		return combine(r, o, subtractSpans)
	}
}

// Xor returns the symmetric difference of r and o: area in exactly one of
// the two Regions, matching the original's eor() (exclusive-or).
func (r Region) Xor(o Region) Region {
	switch {
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	default:
		return combine(r, o, xorSpans)
	}
}

// combine performs a breakpoint sweep over the union of r's and o's
// horizontal band boundaries: between each pair of consecutive distinct Y
// values, both Regions present a fixed, unambiguous set of X spans (no
// box edge falls strictly inside the interval), so op can combine them as
// ordinary 1-D interval arithmetic. The resulting per-row spans are then
// coalesced vertically wherever two adjacent rows carry identical spans,
// reproducing the same "no two adjacent bands with equal X spans" rule
// the original's _coalesce enforces after its band-by-band merge.
func combine(a, b Region, op func(as, bs []ispan) []ispan) Region {
	breaks := collectBreaks(a, b)
	if len(breaks) < 2 {
		return Region{}
	}

	type rowSpans struct {
		y0, y1 int32
		spans  []ispan
	}
	var rows []rowSpans
	for i := 0; i+1 < len(breaks); i++ {
		y0, y1 := breaks[i], breaks[i+1]
		combined := op(spansAt(a, y0, y1), spansAt(b, y0, y1))
		if len(combined) == 0 {
			continue
		}
		rows = append(rows, rowSpans{y0: y0, y1: y1, spans: combined})
	}
	if len(rows) == 0 {
		return Region{}
	}

	var boxes []Box
	var extent Box
	i := 0
	for i < len(rows) {
		j := i + 1
		for j < len(rows) && rows[j].y0 == rows[j-1].y1 && spansEqual(rows[j].spans, rows[i].spans) {
			j++
		}
		y1 := rows[j-1].y1
		for _, s := range rows[i].spans {
			box := Box{s.X1, rows[i].y0, s.X2, y1}
			boxes = append(boxes, box)
			extent = extent.BoundingBox(box)
		}
		i = j
	}
	return fromBoxes(boxes, extent)
}

func spansEqual(a, b []ispan) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// collectBreaks returns the sorted, deduplicated set of every Y1 and Y2
// value across both Regions' boxes.
func collectBreaks(a, b Region) []int32 {
	seen := map[int32]bool{}
	var ys []int32
	add := func(v int32) {
		if !seen[v] {
			seen[v] = true
			ys = append(ys, v)
		}
	}
	for _, r := range [2]Region{a, b} {
		if r.data == nil {
			continue
		}
		for _, box := range r.data.boxes {
			add(box.Y1)
			add(box.Y2)
		}
	}
	sort.Slice(ys, func(i, j int) bool { return ys[i] < ys[j] })
	return ys
}

// spansAt returns r's X spans active across the whole interval [y0, y1).
// r.data.boxes is Y-X sorted, so the scan can stop as soon as a box's Y1
// reaches y1: boxes is sorted by Y1, so every Box on the list afterward is
// for a strictly deeper row.
func spansAt(r Region, y0, y1 int32) []ispan {
	if r.data == nil {
		return nil
	}
	var out []ispan
	for _, b := range r.data.boxes {
		if b.Y2 <= y0 {
			continue
		}
		if b.Y1 >= y1 {
			break
		}
		if b.Y1 <= y0 && b.Y2 >= y1 {
			out = append(out, ispan{b.X1, b.X2})
		}
	}
	return out
}

func unionSpans(a, b []ispan) []ispan {
	all := make([]ispan, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	sort.Slice(all, func(i, j int) bool { return all[i].X1 < all[j].X1 })

	var out []ispan
	for _, s := range all {
		if len(out) > 0 && s.X1 <= out[len(out)-1].X2 {
			if s.X2 > out[len(out)-1].X2 {
				out[len(out)-1].X2 = s.X2
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

func intersectSpans(a, b []ispan) []ispan {
	var out []ispan
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := max(a[i].X1, b[j].X1)
		hi := min(a[i].X2, b[j].X2)
		if lo < hi {
			out = append(out, ispan{lo, hi})
		}
		if a[i].X2 < b[j].X2 {
			i++
		} else if b[j].X2 < a[i].X2 {
			j++
		} else {
			i++
			j++
		}
	}
	return out
}

// subtractSpans returns a with every span of b removed.
func subtractSpans(a, b []ispan) []ispan {
	var out []ispan
	bi := 0
	for _, as := range a {
		cur := as.X1
		for bi < len(b) && b[bi].X2 <= cur {
			bi++
		}
		j := bi
		for j < len(b) && b[j].X1 < as.X2 {
			if b[j].X1 > cur {
				out = append(out, ispan{cur, b[j].X1})
			}
			if b[j].X2 > cur {
				cur = b[j].X2
			}
			j++
		}
		if cur < as.X2 {
			out = append(out, ispan{cur, as.X2})
		}
	}
	return out
}

func xorSpans(a, b []ispan) []ispan {
	return unionSpans(subtractSpans(a, b), subtractSpans(b, a))
}
