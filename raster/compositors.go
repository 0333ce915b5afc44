package raster

import (
	"github.com/mrjoshuak/fog/pixel"
	"github.com/mrjoshuak/fog/span"
)

// registerCompositors wires the Porter-Duff operators for the two
// premultiplied canonical formats — PRGB32 and PRGB64 — since the simple
// per-channel "src + dst*(1-alpha)" math these routines use is only correct
// when both buffers already carry premultiplied alpha. Straight-alpha or
// mixed-mode compositing goes through convert's alpha middleware first.
func registerCompositors() {
	register(pixel.PRGB32, pixel.PRGB32, SrcOver, srcOverPRGB32)
	register(pixel.PRGB32, pixel.PRGB32, DstOver, dstOverPRGB32)
	register(pixel.PRGB32, pixel.PRGB32, Clear, clearBytes(4))

	register(pixel.PRGB64, pixel.PRGB64, SrcOver, srcOverPRGB64)
	register(pixel.PRGB64, pixel.PRGB64, DstOver, dstOverPRGB64)
	register(pixel.PRGB64, pixel.PRGB64, Clear, clearBytes(8))
}

// srcOverPRGB32 composites src over dst: dst = src + dst*(1-srcA), the
// classic premultiplied "normal" blend mode. Channel order in memory is
// B,G,R,A (PRGB32's little-endian byte layout), but the formula is
// channel-order-agnostic so it applies uniformly across all four bytes.
func srcOverPRGB32(dst, src []byte, widthPx int, c *span.Closure) {
	for p := 0; p < widthPx; p++ {
		off := p * 4
		s := src[off : off+4 : off+4]
		d := dst[off : off+4 : off+4]
		inv := 255 - s[3]
		d[0] = s[0] + mulDiv255(d[0], inv)
		d[1] = s[1] + mulDiv255(d[1], inv)
		d[2] = s[2] + mulDiv255(d[2], inv)
		d[3] = s[3] + mulDiv255(d[3], inv)
	}
}

// dstOverPRGB32 composites dst over src, the mirror image of SrcOver used
// when painting behind existing content: dst = dst + src*(1-dstA).
func dstOverPRGB32(dst, src []byte, widthPx int, c *span.Closure) {
	for p := 0; p < widthPx; p++ {
		off := p * 4
		s := src[off : off+4 : off+4]
		d := dst[off : off+4 : off+4]
		inv := 255 - d[3]
		d[0] += mulDiv255(s[0], inv)
		d[1] += mulDiv255(s[1], inv)
		d[2] += mulDiv255(s[2], inv)
		d[3] += mulDiv255(s[3], inv)
	}
}

func srcOverPRGB64(dst, src []byte, widthPx int, c *span.Closure) {
	for p := 0; p < widthPx; p++ {
		off := p * 8
		srcA := load16(src[off+6:])
		inv := 65535 - srcA
		store16(dst[off:], load16(src[off:])+mulDiv65535(load16(dst[off:]), inv))
		store16(dst[off+2:], load16(src[off+2:])+mulDiv65535(load16(dst[off+2:]), inv))
		store16(dst[off+4:], load16(src[off+4:])+mulDiv65535(load16(dst[off+4:]), inv))
		store16(dst[off+6:], srcA+mulDiv65535(load16(dst[off+6:]), inv))
	}
}

func dstOverPRGB64(dst, src []byte, widthPx int, c *span.Closure) {
	for p := 0; p < widthPx; p++ {
		off := p * 8
		dstA := load16(dst[off+6:])
		inv := 65535 - dstA
		store16(dst[off:], load16(dst[off:])+mulDiv65535(load16(src[off:]), inv))
		store16(dst[off+2:], load16(dst[off+2:])+mulDiv65535(load16(src[off+2:]), inv))
		store16(dst[off+4:], load16(dst[off+4:])+mulDiv65535(load16(src[off+4:]), inv))
		store16(dst[off+6:], dstA+mulDiv65535(load16(src[off+6:]), inv))
	}
}

// clearBytes returns a Func that ignores src and zeroes widthPx*bpp bytes
// of dst — Clear never looks at its source at all.
func clearBytes(bpp int) span.Func {
	return func(dst, src []byte, widthPx int, c *span.Closure) {
		n := widthPx * bpp
		for i := range dst[:n] {
			dst[i] = 0
		}
	}
}

func mulDiv255(v, a uint8) uint8 {
	return uint8((uint32(v)*uint32(a) + 127) / 255)
}

func mulDiv65535(v, a uint32) uint32 {
	return uint32((uint64(v)*uint64(a) + 32767) / 65535)
}

func load16(b []byte) uint32 { return uint32(b[0]) | uint32(b[1])<<8 }

func store16(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}
