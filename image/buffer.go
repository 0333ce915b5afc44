// Package image implements the reference-counted pixel buffer that the
// convert and raster packages read and write, and that a region.Region
// clips against: data, width, height, stride, format, and an optional
// palette.
package image

import (
	"errors"

	"github.com/mrjoshuak/fog/internal/refcount"
	"github.com/mrjoshuak/fog/pixel"
)

// ErrInvalidSize is returned by Create when width or height is non-positive.
var ErrInvalidSize = errors.New("image: width and height must be positive")

// Buffer is a copy-on-write rectangular array of pixels in a single
// PixelDescriptor format. The zero value is not valid; construct one with
// Create. Like region.Region, Buffer is a small value type (one pointer)
// and concurrent readers of a single Buffer are safe as long as no one
// mutates it — any caller who wants to write must call Detach first.
type Buffer struct {
	data *data
}

// data is the shared backing block. Palette is non-nil only when Format
// is an indexed descriptor; it holds 256 ARGB32-encoded entries.
type data struct {
	handle  *refcount.Handle
	width   int
	height  int
	stride  int // bytes per row; may exceed width*bpp for alignment padding
	format  pixel.Descriptor
	pix     []byte
	palette *[256]uint32
}

// wordAlign rounds n up to a multiple of 8, so SIMD-width inner loops never
// read past a row without a bounds check.
func wordAlign(n int) int {
	const word = 8
	return (n + word - 1) &^ (word - 1)
}

// Create allocates a new Buffer of the given dimensions and format, with a
// stride rounded up to a platform-word multiple.
func Create(width, height int, format pixel.Descriptor) (Buffer, error) {
	if width <= 0 || height <= 0 {
		return Buffer{}, ErrInvalidSize
	}
	bpp := format.BytesPerPixel()
	stride := wordAlign(width * bpp)
	d := &data{
		handle: refcount.New(),
		width:  width,
		height: height,
		stride: stride,
		format: format,
		pix:    make([]byte, stride*height),
	}
	if format.Indexed {
		d.palette = &[256]uint32{}
	}
	return Buffer{data: d}, nil
}

// Width returns the buffer's width in pixels.
func (b Buffer) Width() int {
	if b.data == nil {
		return 0
	}
	return b.data.width
}

// Height returns the buffer's height in pixels.
func (b Buffer) Height() int {
	if b.data == nil {
		return 0
	}
	return b.data.height
}

// Stride returns the number of bytes between the start of one row and the
// start of the next.
func (b Buffer) Stride() int {
	if b.data == nil {
		return 0
	}
	return b.data.stride
}

// Format returns the buffer's pixel format.
func (b Buffer) Format() pixel.Descriptor {
	if b.data == nil {
		return pixel.Descriptor{}
	}
	return b.data.format
}

// IsValid reports whether b refers to allocated storage.
func (b Buffer) IsValid() bool { return b.data != nil }

// Row returns the bytes of row y, read-only. Callers that intend to write
// must hold a Buffer obtained through Detach first; Row itself never
// copies or checks exclusivity — concurrent readers of a Buffer are
// always safe, only a writer needs exclusivity.
func (b Buffer) Row(y int) []byte {
	off := y * b.data.stride
	return b.data.pix[off : off+b.data.stride]
}

// Palette returns the buffer's 256-entry ARGB32 color table and true, or
// (nil, false) when Format().Indexed is false: palette access is only
// defined for indexed formats.
func (b Buffer) Palette() (*[256]uint32, bool) {
	if b.data == nil || b.data.palette == nil {
		return nil, false
	}
	return b.data.palette, true
}

// Clone returns a Buffer sharing the same backing storage as b, bumping
// the reference count. The returned value and b observe the same pixels
// until one of them is mutated through Detach.
func (b Buffer) Clone() Buffer {
	if b.data != nil {
		b.data.handle.Retain()
	}
	return b
}

// Detach ensures exclusive ownership of b's backing storage, copying it
// first if another Buffer still shares it. Safe to call on every buffer
// before every write; it is a no-op once exclusive.
func (b *Buffer) Detach() {
	if b.data == nil || !b.data.handle.Shared() {
		return
	}
	pix := make([]byte, len(b.data.pix))
	copy(pix, b.data.pix)
	var pal *[256]uint32
	if b.data.palette != nil {
		pal = &[256]uint32{}
		*pal = *b.data.palette
	}
	b.data.handle.Release()
	b.data = &data{
		handle:  refcount.New(),
		width:   b.data.width,
		height:  b.data.height,
		stride:  b.data.stride,
		format:  b.data.format,
		pix:     pix,
		palette: pal,
	}
}

// MutableRow detaches b if necessary and returns row y's bytes for
// writing — the usual way a caller gets at a row it intends to modify in
// place.
func (b *Buffer) MutableRow(y int) []byte {
	b.Detach()
	off := y * b.data.stride
	return b.data.pix[off : off+b.data.stride]
}

// Release drops b's reference, freeing the backing storage if b held the
// last one. A Buffer must not be used again after Release.
func (b *Buffer) Release() {
	if b.data == nil {
		return
	}
	b.data.handle.Release()
	b.data = nil
}
