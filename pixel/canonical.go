package pixel

// canonicalDescriptors holds the pre-registered formats, keyed by
// FormatID. They are built once at package init and never mutated;
// Descriptor.Equals and the converter's dispatch table rely on comparing
// against these by identity (the id field) rather than by field.
var canonicalDescriptors map[FormatID]Descriptor

func ch(mask uint64, shift, size uint8) Channel { return Channel{Mask: mask, Shift: shift, Size: size} }

func newCanonical(id FormatID, depth uint8, a, r, g, b Channel, premultiplied, indexed, fillUnused bool) Descriptor {
	d := Descriptor{
		Depth: depth, Premultiplied: premultiplied, Indexed: indexed, FillUnusedBits: fillUnused,
		A: a, R: r, G: g, B: b, id: id,
	}
	if err := d.validate(); err != nil {
		panic("pixel: invalid canonical descriptor " + id.String() + ": " + err.Error())
	}
	return d
}

func init() {
	canonicalDescriptors = map[FormatID]Descriptor{
		ARGB32: newCanonical(ARGB32, 32,
			ch(0xFF000000, 24, 8), ch(0x00FF0000, 16, 8), ch(0x0000FF00, 8, 8), ch(0x000000FF, 0, 8),
			false, false, false),
		PRGB32: newCanonical(PRGB32, 32,
			ch(0xFF000000, 24, 8), ch(0x00FF0000, 16, 8), ch(0x0000FF00, 8, 8), ch(0x000000FF, 0, 8),
			true, false, false),
		XRGB32: newCanonical(XRGB32, 32,
			Channel{}, ch(0x00FF0000, 16, 8), ch(0x0000FF00, 8, 8), ch(0x000000FF, 0, 8),
			false, false, true),
		ARGB64: newCanonical(ARGB64, 64,
			ch(0xFFFF000000000000, 48, 16), ch(0x0000FFFF00000000, 32, 16), ch(0x00000000FFFF0000, 16, 16), ch(0x000000000000FFFF, 0, 16),
			false, false, false),
		PRGB64: newCanonical(PRGB64, 64,
			ch(0xFFFF000000000000, 48, 16), ch(0x0000FFFF00000000, 32, 16), ch(0x00000000FFFF0000, 16, 16), ch(0x000000000000FFFF, 0, 16),
			true, false, false),
		A8: newCanonical(A8, 8,
			ch(0xFF, 0, 8), Channel{}, Channel{}, Channel{},
			false, false, false),
		I8: newCanonical(I8, 8,
			Channel{}, Channel{}, Channel{}, Channel{},
			false, true, false),
		RGB24: newCanonical(RGB24, 24,
			Channel{}, ch(0xFF0000, 16, 8), ch(0x00FF00, 8, 8), ch(0x0000FF, 0, 8),
			false, false, false),
		BGR24: newCanonical(BGR24, 24,
			Channel{}, ch(0x0000FF, 0, 8), ch(0x00FF00, 8, 8), ch(0xFF0000, 16, 8),
			false, false, false),
		RGB16_555: newCanonical(RGB16_555, 16,
			Channel{}, ch(0x7C00, 10, 5), ch(0x03E0, 5, 5), ch(0x001F, 0, 5),
			false, false, false),
		RGB16_565: newCanonical(RGB16_565, 16,
			Channel{}, ch(0xF800, 11, 5), ch(0x07E0, 5, 6), ch(0x001F, 0, 5),
			false, false, false),
		ARGB16_4444: newCanonical(ARGB16_4444, 16,
			ch(0xF000, 12, 4), ch(0x0F00, 8, 4), ch(0x00F0, 4, 4), ch(0x000F, 0, 4),
			false, false, false),
	}
}

// FromFormatID returns the pre-registered Descriptor for a canonical
// FormatID. ok is false for FormatCustom or an out-of-range id.
func FromFormatID(id FormatID) (d Descriptor, ok bool) {
	d, ok = canonicalDescriptors[id]
	return d, ok
}

// MustFormat is FromFormatID but panics on an unknown id; useful for
// package-level variables built from a canonical format.
func MustFormat(id FormatID) Descriptor {
	d, ok := FromFormatID(id)
	if !ok {
		panic("pixel: unknown canonical format id")
	}
	return d
}
