package raster

import (
	"github.com/mrjoshuak/fog/pixel"
	"github.com/mrjoshuak/fog/span"
)

// registerFastPaths wires destination-format-specific Src fast paths
// alongside the generic operators — hand-written specializations for
// common canonical pairs that convert.Setup's step 1 picks up before ever
// building a ConvertPass pivot. These are the static specializations that
// stand in for a JIT's dynamically emitted fast paths.
//
// Only the lossless expand direction (565 -> 32-bit) gets a direct entry.
// The narrowing direction is deliberately left to the generic pivot, which
// picks GenericDither over Generic once it sees the destination loses
// precision — a hand-written Src fast path here would bypass that choice
// and always truncate.
func registerFastPaths() {
	register(pixel.ARGB32, pixel.RGB16_565, Src, argb32FromRGB565)
	register(pixel.XRGB32, pixel.RGB16_565, Src, argb32FromRGB565)
}

// argb32FromRGB565 expands a 565 pixel to 32-bit color by shifting each
// channel into the high bits of its byte and leaving the low bits zero
// (rrrrr -> rrrrr000), forcing alpha to 0xFF — e.g. 0xF81F -> 0xFF_F8_00_F8.
func argb32FromRGB565(dst, src []byte, widthPx int, c *span.Closure) {
	for p := 0; p < widthPx; p++ {
		px := uint16(src[p*2]) | uint16(src[p*2+1])<<8
		r5 := px >> 11 & 0x1F
		g6 := px >> 5 & 0x3F
		b5 := px & 0x1F

		r := byte(r5 << 3)
		g := byte(g6 << 2)
		b := byte(b5 << 3)

		off := p * 4
		dst[off] = b
		dst[off+1] = g
		dst[off+2] = r
		dst[off+3] = 0xFF
	}
}
