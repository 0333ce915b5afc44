package span

// FromIndexed expands widthPx one-byte palette indices in src to ARGB32
// pixels in dst, using c.Palette. Package convert only ever builds this as
// the unpack half of a pass — indexed is a source-only category, since no
// quantizer exists to convert color data down to a palette, so nothing
// ever converts into I8.
func FromIndexed(dst, src []byte, widthPx int, c *Closure) {
	pal := c.Palette
	for p := 0; p < widthPx; p++ {
		entry := pal[src[p]]
		storeLE(dst[p*4:], uint64(entry), 4)
	}
}
