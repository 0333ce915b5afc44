package span

// PremultiplyARGB32 multiplies each of an ARGB32 pixel's R/G/B channels by
// its alpha, rounding to nearest — used when the destination wants
// premultiplied alpha and the source is straight.
func PremultiplyARGB32(dst, src []byte, widthPx int, c *Closure) {
	for p := 0; p < widthPx; p++ {
		off := p * 4
		px := src[off : off+4 : off+4]
		b, g, r, a := px[0], px[1], px[2], px[3]
		out := dst[off : off+4 : off+4]
		out[0] = mulDiv255(b, a)
		out[1] = mulDiv255(g, a)
		out[2] = mulDiv255(r, a)
		out[3] = a
	}
}

// DemultiplyARGB32 is the inverse of PremultiplyARGB32: it divides each
// color channel by alpha, clamping to 255 where rounding would overflow. A
// zero-alpha pixel demultiplies to zero color, matching the convention that
// a fully transparent pixel carries no recoverable color information.
func DemultiplyARGB32(dst, src []byte, widthPx int, c *Closure) {
	for p := 0; p < widthPx; p++ {
		off := p * 4
		px := src[off : off+4 : off+4]
		b, g, r, a := px[0], px[1], px[2], px[3]
		out := dst[off : off+4 : off+4]
		out[0] = divAlpha(b, a)
		out[1] = divAlpha(g, a)
		out[2] = divAlpha(r, a)
		out[3] = a
	}
}

// PremultiplyARGB64 is PremultiplyARGB32 over 16-bit channels.
func PremultiplyARGB64(dst, src []byte, widthPx int, c *Closure) {
	for p := 0; p < widthPx; p++ {
		off := p * 8
		b := loadLE(src[off:], 2)
		g := loadLE(src[off+2:], 2)
		r := loadLE(src[off+4:], 2)
		a := loadLE(src[off+6:], 2)
		storeLE(dst[off:], mulDiv65535(uint32(b), uint32(a)), 2)
		storeLE(dst[off+2:], mulDiv65535(uint32(g), uint32(a)), 2)
		storeLE(dst[off+4:], mulDiv65535(uint32(r), uint32(a)), 2)
		storeLE(dst[off+6:], a, 2)
	}
}

// DemultiplyARGB64 is DemultiplyARGB32 over 16-bit channels.
func DemultiplyARGB64(dst, src []byte, widthPx int, c *Closure) {
	for p := 0; p < widthPx; p++ {
		off := p * 8
		b := loadLE(src[off:], 2)
		g := loadLE(src[off+2:], 2)
		r := loadLE(src[off+4:], 2)
		a := loadLE(src[off+6:], 2)
		storeLE(dst[off:], divAlpha16(uint32(b), uint32(a)), 2)
		storeLE(dst[off+2:], divAlpha16(uint32(g), uint32(a)), 2)
		storeLE(dst[off+4:], divAlpha16(uint32(r), uint32(a)), 2)
		storeLE(dst[off+6:], a, 2)
	}
}

func mulDiv255(v, a uint8) uint8 {
	return uint8((uint32(v)*uint32(a) + 127) / 255)
}

func divAlpha(v, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	out := (uint32(v)*255 + uint32(a)/2) / uint32(a)
	if out > 255 {
		out = 255
	}
	return uint8(out)
}

func mulDiv65535(v, a uint32) uint64 {
	return uint64((uint64(v)*uint64(a) + 32767) / 65535)
}

func divAlpha16(v, a uint32) uint64 {
	if a == 0 {
		return 0
	}
	out := (uint64(v)*65535 + uint64(a)/2) / uint64(a)
	if out > 65535 {
		out = 65535
	}
	return out
}
