// Package convert implements the pixel-format conversion decision
// procedure: given a destination and source Descriptor, assemble the
// cheapest correct chain of span.Func calls that moves pixels between
// them.
package convert

import (
	"errors"

	"github.com/mrjoshuak/fog/pixel"
	"github.com/mrjoshuak/fog/raster"
	"github.com/mrjoshuak/fog/span"
)

// ErrUnsupported is returned by Setup when no conversion path exists
// between the two formats — currently only when the destination is an
// indexed format, since no quantizer is defined for converting color data
// down to a palette.
var ErrUnsupported = errors.New("convert: unsupported conversion")

// Setup builds a Plan converting pixels from src's format to dst's format,
// following a fixed-order decision procedure: a direct raster dispatch
// entry first, then an identity MemCopy when the formats match exactly, a
// ByteSwap when they differ only in byte order, a direct
// premultiply/demultiply when they differ only in alpha mode and share the
// canonical ARGB layout, and otherwise a pivot through the ARGB32 or
// ARGB64 intermediate format, chosen by whether either side carries a
// wider-than-8-bit channel.
func Setup(dst, src pixel.Descriptor) (Plan, error) {
	if fn, ok := raster.Lookup(dst.ID(), src.ID(), raster.Src); ok {
		return Plan{kind: planDispatch, dispatchFn: fn, dstDesc: dst, srcDesc: src}, nil
	}

	if dst.Equals(src) {
		return Plan{kind: planMemCopy, bpp: dst.BytesPerPixel(), dstDesc: dst, srcDesc: src}, nil
	}

	if sameShapeDifferentByteOrder(dst, src) {
		return Plan{kind: planByteSwap, bpp: dst.BytesPerPixel(), dstDesc: dst, srcDesc: src}, nil
	}

	if sameShapeSameByteOrder(dst, src) && dst.Premultiplied != src.Premultiplied {
		if plan, ok := alphaMiddlewarePlan(dst, src); ok {
			return plan, nil
		}
		// Masks match but the layout isn't the canonical ARGB shape the
		// direct premultiply/demultiply routines assume; fall through to
		// the general pivot path, which reaches the same result via the
		// intermediate format instead.
	}

	if dst.Indexed {
		return Plan{}, ErrUnsupported
	}

	wide := needsWide(dst) || needsWide(src)
	pivot := pivot32
	if wide {
		pivot = pivot64
	}

	plan := Plan{kind: planPivot, dstDesc: dst, srcDesc: src, pivotBPP: pivot.BytesPerPixel()}

	switch {
	case src.Indexed:
		plan.unpackFn = span.FromIndexed
	case src.Equals(pivot):
		// src already is the pivot format; the tile loop copies it through.
	default:
		plan.unpackPass = buildUnpack(src, pivot)
		plan.unpackFn = span.Generic
	}

	switch {
	case dst.Equals(pivot):
		// dst already is the pivot format; the tile loop copies it through.
	default:
		pass := buildPack(pivot, dst)
		plan.packPass = pass
		if !wide && needsDither(pivot, dst) {
			applyDitherBits(pass, pivot, dst)
			plan.packFn = span.GenericDither
		} else {
			plan.packFn = span.Generic
		}
	}

	if src.Premultiplied {
		plan.postUnpack = demultiplyFor(pivot)
	}
	if dst.Premultiplied {
		plan.prePack = premultiplyFor(pivot)
	}

	return plan, nil
}

func demultiplyFor(pivot pixel.Descriptor) span.Func {
	if pivot.BytesPerPixel() == 8 {
		return span.DemultiplyARGB64
	}
	return span.DemultiplyARGB32
}

func premultiplyFor(pivot pixel.Descriptor) span.Func {
	if pivot.BytesPerPixel() == 8 {
		return span.PremultiplyARGB64
	}
	return span.PremultiplyARGB32
}

// sameShapeDifferentByteOrder reports whether dst and src describe the
// same channel layout and only differ in ByteSwapped — the fast path for
// depth-16 byte-swapped variants that FromFields leaves unfolded.
func sameShapeDifferentByteOrder(dst, src pixel.Descriptor) bool {
	return sameChannels(dst, src) && dst.ByteSwapped != src.ByteSwapped
}

func sameShapeSameByteOrder(dst, src pixel.Descriptor) bool {
	return sameChannels(dst, src) && dst.ByteSwapped == src.ByteSwapped
}

func sameChannels(dst, src pixel.Descriptor) bool {
	return dst.Depth == src.Depth &&
		dst.A == src.A && dst.R == src.R && dst.G == src.G && dst.B == src.B &&
		dst.Indexed == src.Indexed
}

// alphaMiddlewarePlan builds the direct premultiply/demultiply fast path
// for the canonical ARGB32/PRGB32 and ARGB64/PRGB64 pairs, whose channel
// shifts span.PremultiplyARGB32 and friends assume directly. ok is false
// for any other same-masks-different-alpha-mode pair, which the caller
// routes through the general pivot path instead.
func alphaMiddlewarePlan(dst, src pixel.Descriptor) (Plan, bool) {
	bpp := dst.BytesPerPixel()
	if !isCanonicalARGBShape(dst, bpp) {
		return Plan{}, false
	}
	var fn span.Func
	switch {
	case bpp == 4 && src.Premultiplied:
		fn = span.DemultiplyARGB32
	case bpp == 4 && !src.Premultiplied:
		fn = span.PremultiplyARGB32
	case bpp == 8 && src.Premultiplied:
		fn = span.DemultiplyARGB64
	case bpp == 8 && !src.Premultiplied:
		fn = span.PremultiplyARGB64
	default:
		return Plan{}, false
	}
	return Plan{kind: planAlphaMiddleware, alphaFn: fn, dstDesc: dst, srcDesc: src}, true
}

func isCanonicalARGBShape(d pixel.Descriptor, bpp int) bool {
	switch bpp {
	case 4:
		return d.A == pivot32.A && d.R == pivot32.R && d.G == pivot32.G && d.B == pivot32.B
	case 8:
		return d.A == pivot64.A && d.R == pivot64.R && d.G == pivot64.G && d.B == pivot64.B
	default:
		return false
	}
}
