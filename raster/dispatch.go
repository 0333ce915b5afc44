// Package raster holds the Porter-Duff-style span compositor table that
// package convert and the region-driven blitter both read from: a
// three-dimensional table keyed by (destination format, source format,
// operator) whose entries are hand-written specializations faster than the
// general ConvertPass pivot. A missing entry means "fall through" —
// convert.Setup's first decision step checks here before building a
// general pipeline, and the blitter does the same before falling back to a
// Converter-built span.Func per span.
//
// The table is a read-only, process-wide constant built once at init; no
// entry is ever added or removed after package init runs.
package raster

import (
	"github.com/mrjoshuak/fog/pixel"
	"github.com/mrjoshuak/fog/span"
)

// Operator names a Porter-Duff-style compositing rule. The zero value, Src,
// is plain replacement — a format conversion with no regard for dst's
// existing contents, which is the only operator convert.Setup's direct
// dispatch step ever looks up.
type Operator int

const (
	// Src replaces dst's contents with src, converted to dst's format.
	// Equivalent to a plain format conversion; the fast paths registered
	// under Src are what convert.Setup's step 1 hits.
	Src Operator = iota
	// SrcOver composites src over dst ("normal" alpha blending).
	SrcOver
	// DstOver composites dst over src, writing the result back to dst.
	DstOver
	// Clear ignores src and sets dst to fully transparent.
	Clear
	operatorCount
)

var operatorNames = [operatorCount]string{Src: "Src", SrcOver: "SrcOver", DstOver: "DstOver", Clear: "Clear"}

func (op Operator) String() string {
	if op >= 0 && int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "Operator(?)"
}

type key struct {
	Dst, Src pixel.FormatID
	Op       Operator
}

var table map[key]span.Func

func register(dst, src pixel.FormatID, op Operator, fn span.Func) {
	table[key{dst, src, op}] = fn
}

func init() {
	table = make(map[key]span.Func)
	registerCompositors()
	registerFastPaths()
}

// Lookup returns the specialized span.Func registered for converting src to
// dst under op, or ok=false if the table has no direct entry — a missing
// entry means fall through to the Converter's general pipeline. Both dst
// and src must be canonical format IDs; FormatCustom never has a table
// entry.
func Lookup(dst, src pixel.FormatID, op Operator) (fn span.Func, ok bool) {
	if dst == pixel.FormatCustom || src == pixel.FormatCustom {
		return nil, false
	}
	fn, ok = table[key{dst, src, op}]
	return fn, ok
}
