package convert

import (
	"github.com/mrjoshuak/fog/pixel"
	"github.com/mrjoshuak/fog/span"
)

type planKind int

const (
	planMemCopy planKind = iota
	planByteSwap
	planAlphaMiddleware
	planDispatch
	planPivot
)

// Plan is the result of Setup: a reusable, allocation-free recipe for
// converting spans of pixels from one Descriptor to another. A Plan is
// immutable and safe for concurrent use by multiple goroutines, the same
// way a compiled span.Func is.
type Plan struct {
	kind    planKind
	dstDesc pixel.Descriptor
	srcDesc pixel.Descriptor

	bpp int // planMemCopy / planByteSwap

	alphaFn    span.Func // planAlphaMiddleware
	dispatchFn span.Func // planDispatch, a raster.Lookup hit

	// planPivot fields.
	pivotBPP   int
	unpackFn   span.Func
	unpackPass *span.ConvertPass
	postUnpack span.Func // demultiply, when src is premultiplied
	prePack    span.Func // premultiply, when dst wants premultiplied
	packFn     span.Func
	packPass   *span.ConvertPass
}

// Dst and Src return the formats this Plan converts between.
func (p Plan) Dst() pixel.Descriptor { return p.dstDesc }
func (p Plan) Src() pixel.Descriptor { return p.srcDesc }

// Convert writes widthPx pixels read from src in Src's format to dst in
// Dst's format. c carries the palette (required when Src is indexed) and
// the dither origin; c.DitherX must be the x coordinate of the first pixel
// in this call for ordered dithering to stay phase-continuous across tiles
// and across successive calls along a row.
func (p Plan) Convert(dst, src []byte, widthPx int, c *span.Closure) {
	switch p.kind {
	case planMemCopy:
		span.MemCopy(p.bpp)(dst, src, widthPx, c)
	case planByteSwap:
		span.ByteSwap(p.bpp)(dst, src, widthPx, c)
	case planAlphaMiddleware:
		p.alphaFn(dst, src, widthPx, c)
	case planDispatch:
		p.dispatchFn(dst, src, widthPx, c)
	case planPivot:
		p.convertPivot(dst, src, widthPx, c)
	}
}

func (p Plan) convertPivot(dst, src []byte, widthPx int, c *span.Closure) {
	scratch := globalScratch.get(p.pivotBPP)
	defer globalScratch.put(scratch, p.pivotBPP)

	srcBPP := p.srcDesc.BytesPerPixel()
	if p.srcDesc.Indexed {
		srcBPP = 1
	}
	dstBPP := p.dstDesc.BytesPerPixel()

	for off := 0; off < widthPx; off += TilePixels {
		n := widthPx - off
		if n > TilePixels {
			n = TilePixels
		}
		tile := scratch[:n*p.pivotBPP]
		srcSlice := src[off*srcBPP : (off+n)*srcBPP]
		dstSlice := dst[off*dstBPP : (off+n)*dstBPP]

		tc := &span.Closure{Palette: c.Palette, DitherX: c.DitherX + off, DitherY: c.DitherY, Data: p.unpackPass}
		if p.unpackFn != nil {
			p.unpackFn(tile, srcSlice, n, tc)
		} else {
			copy(tile, srcSlice)
		}

		if p.postUnpack != nil {
			p.postUnpack(tile, tile, n, tc)
		}
		if p.prePack != nil {
			p.prePack(tile, tile, n, tc)
		}

		tc.Data = p.packPass
		if p.packFn != nil {
			p.packFn(dstSlice, tile, n, tc)
		} else {
			copy(dstSlice, tile)
		}
	}
}
