// Package span implements the inner-loop pixel transforms the converter and
// the raster dispatch table assemble pipelines from.
//
// Every routine in this package has the same shape: it reads widthPx pixels
// from src and writes widthPx pixels to dst, does no allocation, and cannot
// fail — any failure in building a pipeline is caught at setup time by
// package convert, never here. Pixel buffers are addressed as packed
// little-endian words of BytesPerPixel width; package pixel's ByteSwapped
// flag flips a format to the big-endian-packed encoding of the same masks,
// so every span routine only ever needs to deal with one byte order.
package span

// Closure carries the per-call state a Func needs beyond the raw buffers:
// an optional palette for indexed formats, the ordered-dither phase, and an
// opaque constants block (typically a *ConvertPass) the Func type-asserts
// to its own private type.
type Closure struct {
	// Palette holds 256 ARGB32 entries, used by FromIndexed. Nil unless the
	// source format is indexed.
	Palette *[256]uint32

	// DitherX, DitherY give the (x, y) position of the first pixel in this
	// call, for routines that consult the ordered-dither table. DitherX
	// advances by widthPx (or by the tile step, for multi-pass converts)
	// across successive calls so the dither phase stays continuous along a
	// row; see convert.Plan's tile loop.
	DitherX, DitherY int

	// Data is the routine's private constants block, set by whatever
	// assembled the pipeline (almost always a *ConvertPass).
	Data any
}

// Func transforms one row segment of widthPx pixels from src into dst.
// Aliasing (dst and src backed by the same memory) is permitted only when
// the two sides share the same bytes-per-pixel; callers that built the
// pipeline are responsible for only constructing aliased calls when that
// holds (package convert never does otherwise for non-identical formats).
type Func func(dst, src []byte, widthPx int, c *Closure)
